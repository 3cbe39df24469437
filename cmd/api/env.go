package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from .env (or DOTENV_FILE) when
// present. Existing process environment variables are not overridden.
func loadDotEnv() error {
	file := os.Getenv("DOTENV_FILE")
	if file == "" {
		file = ".env"
	}

	err := godotenv.Load(file)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.Wrapf(err, "load %s", file)
}
