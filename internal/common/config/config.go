package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"3000"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:5173"`
	}

	Storage struct {
		// Driver selects the collection backend: file or redis.
		Driver     string `env:"STORAGE_DRIVER" envDefault:"file"`
		DataDir    string `env:"DATA_DIR" envDefault:"./data"`
		UploadsDir string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Admin struct {
		Username   string `env:"ADMIN_USERNAME" envDefault:"slime"`
		Password   string `env:"ADMIN_PASSWORD" envDefault:"crypto26"`
		SessionTTL int    `env:"ADMIN_SESSION_TTL_MINUTES" envDefault:"720"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional: in production the variables are set directly.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
