package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Mental-Health-Matters/Psych/internal/app"
	"github.com/Mental-Health-Matters/Psych/internal/config"
)

func main() {
	// Local development keeps secrets in .env; production injects real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
