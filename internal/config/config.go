package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App      *App
		DB       *DB
		HTTP     *HTTP
		Redis    *Redis
		Provider *Provider
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Path          string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	Provider struct {
		URL string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	db := &DB{
		Path:          os.Getenv("DB_PATH"),
		MigrationsDir: os.Getenv("DB_MIGRATIONS_DIR"),
	}
	if db.Path == "" {
		db.Path = "intake.db"
	}
	if db.MigrationsDir == "" {
		db.MigrationsDir = "./internal/adapter/sqlite/migrations"
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	provider := &Provider{
		URL: os.Getenv("PROVIDER_URL"),
	}
	if provider.URL == "" {
		provider.URL = "https://randomuser.me/api/"
	}

	return &Container{
		App:      app,
		DB:       db,
		HTTP:     http,
		Redis:    redis,
		Provider: provider,
	}, nil
}
