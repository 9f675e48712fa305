package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/app"
)

func main() {
	// Configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	app.Run(cfg)
}
