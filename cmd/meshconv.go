package main

import (
	"log"
	"meshconv/internal/cli"
	"meshconv/pkg/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	cli.Execute()
}
