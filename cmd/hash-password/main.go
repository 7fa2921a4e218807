package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/thrillee/revenuereport/internal/auth"
)

// Prints a bcrypt hash for REPORT_ADMIN_PASSWORD_HASH.
func main() {
	password := flag.String("password", "", "Password to hash (read from stdin when empty)")
	flag.Parse()

	pw := *password
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("Failed to read password from stdin: %v", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
