package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Rates    *Rates
	Uploads  *Uploads
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

// Database selects the Postgres repository when a DSN is set; the service
// runs on the in-memory store otherwise.
type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Rates struct {
	BaseURL string `env:"RATES_API_URL"`
	APIKey  string `env:"RATES_API_KEY"`
}

type Uploads struct {
	Dir         string `env:"UPLOAD_DIR"`
	MaxFileSize int64  `env:"UPLOAD_MAX_BYTES"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var rates Rates
	var uploads Uploads
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&rates.BaseURL, "r", `https://api.exchangeratesapi.io/v1/latest`, "Exchange rate API URL")
	flag.StringVar(&rates.APIKey, "k", "", "Exchange rate API access key")
	flag.StringVar(&uploads.Dir, "u", `./uploads`, "Uploaded image directory")
	flag.Int64Var(&uploads.MaxFileSize, "s", 5<<20, "Max uploaded image size in bytes")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	err = env.Parse(&rates)
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	err = env.Parse(&uploads)
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}

	return &Config{
		Database: &db,
		HTTP:     &http,
		Rates:    &rates,
		Uploads:  &uploads,
		App:      &app,
	}, nil
}
