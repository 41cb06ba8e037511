package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/moodq/pkg/commands"
)

func main() {
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
