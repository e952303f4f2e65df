package configs

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string        `env:"DB_SOURCE" envDefault:"foodie.db"`
	Port      string        `env:"PORT" envDefault:"8000"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"changeme"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func LoadConfig() *Config {
	// .env is optional; real env always wins
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	return &cfg
}
