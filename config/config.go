package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment")
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}
