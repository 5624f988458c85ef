package main

import (
	"log"

	"cargolink_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment and config.yaml")
	}

	app.Run()
}
