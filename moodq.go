package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/moodq/pkg/commands"
)

func main() {
	// Local runs keep the sheet path in .env; missing file is fine.
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
