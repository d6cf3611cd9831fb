package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/spendcli/spend/internal/commands"
)

func main() {
	// Optional: a .env in the working directory may set SPEND_* variables.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
