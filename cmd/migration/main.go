package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pressly/goose/v3"

	_ "github.com/lib/pq"
)

// Config is the subset of settings the migrator needs.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
}

func main() {
	command := flag.String("command", "up", "Goose command: up, down, status, version")
	dir := flag.String("dir", "./db/migration", "Migrations directory")
	flag.Parse()

	var cfg Config
	log.Println("Loading configuration...")

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process config: %v", err)
	}

	if _, err := os.Stat(*dir); os.IsNotExist(err) {
		log.Fatalf("Migrations directory not found: %s", *dir)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	log.Printf("Running goose %q on %s", *command, *dir)
	if err := goose.Run(*command, db, *dir); err != nil {
		log.Fatalf("Migration %q failed: %v", *command, err)
	}

	log.Println("Migrations completed successfully!")
}
