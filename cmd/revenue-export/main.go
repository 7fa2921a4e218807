package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thrillee/revenuereport/internal/config"
	"github.com/thrillee/revenuereport/internal/database"
	"github.com/thrillee/revenuereport/internal/logging"
	"github.com/thrillee/revenuereport/internal/orderstore"
	"github.com/thrillee/revenuereport/internal/render"
	"github.com/thrillee/revenuereport/internal/revenue"
)

func main() {
	country := flag.String("country", string(revenue.DefaultCountry), "Billing country (FR, BE, LU, CH)")
	month := flag.String("month", "", "Month to export, YYYY-MM (default: current month)")
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// Logs go to stderr so stdout stays a clean CSV stream.
	logging.Setup(os.Stderr, cfg.LogLevel)

	if err := run(ctx, cfg, *country, *month, *out); err != nil {
		slog.Error("Revenue export failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, country, month, out string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	req, warnings := revenue.NewReportRequest(country, month, time.Now().In(loc))
	for _, w := range warnings {
		slog.Warn("Report parameter replaced by default", slog.Any("reason", w))
	}

	dbpool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbpool.Close()

	queryCtx, cancel := context.WithTimeout(ctx, cfg.Report.QueryTimeout)
	defer cancel()

	rep, err := revenue.Generate(queryCtx, orderstore.New(database.New(dbpool)), req)
	if err != nil {
		return err
	}

	if out == "" {
		return render.CSV(os.Stdout, rep)
	}
	if err := writeFileAtomic(out, func(w io.Writer) error { return render.CSV(w, rep) }); err != nil {
		return err
	}
	slog.Info("Revenue report exported",
		slog.String("country", req.Country.String()),
		slog.String("month", req.Month.String()),
		slog.String("file", out),
	)
	return nil
}

// writeFileAtomic writes through a temp file in the target directory and renames it into
// place, so a failed export never leaves a partial file behind.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".revenue-*.csv")
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move output into place: %w", err)
	}
	return nil
}
