package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/api/handlers"
	"github.com/linesmerrill/court-docket-api/config"
)

// Migrates passwords stored with the legacy reversible transform to bcrypt
// in the store selected by STORE_DRIVER.
// Usage: go run scripts/rehash_passwords.go [--dry-run]
func main() {
	dryRun := len(os.Args) > 1 && os.Args[1] == "--dry-run"

	a := handlers.App{Config: *config.New()}
	if err := a.Initialize(); err != nil {
		fmt.Printf("Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	n, err := a.Service.RehashLegacyPasswords(context.Background(), dryRun)
	if err != nil {
		zap.S().Errorw("rehash failed", "migrated", n, "error", err)
		os.Exit(1)
	}
	if dryRun {
		fmt.Printf("%d legacy password(s) would be rehashed\n", n)
		return
	}
	fmt.Printf("Rehashed %d legacy password(s) with bcrypt\n", n)
}
