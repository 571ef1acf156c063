package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the full external configuration surface: where to listen.
// Everything else about the game is fixed at build time.
type Config struct {
	Addr string
}

const defaultAddr = ":8765"

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found.")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	return Config{Addr: addr}
}
