package main

import (
	"fmt"
	"os"
	"storemap/internal/config"
	"storemap/internal/db/migrations"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := migrations.Up(cfg.PostgresqlURL); err != nil {
		fmt.Fprintf(os.Stderr, "could not apply migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied.")
}
