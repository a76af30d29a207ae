package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// плейсхолдер из .env.example — считаем, что база не настроена
const dsnPlaceholder = "your-database-dsn"

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// DemoMode выставляется один раз на старте и дальше не
	// перепроверяется: без настроенной базы весь процесс живёт
	// на фикстуре в памяти.
	DemoMode bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	cfg.DemoMode = cfg.DBDSN == "" || cfg.DBDSN == dsnPlaceholder

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		if !cfg.DemoMode {
			log.Fatal("SESSION_SECRET is not set")
		}
		// в демо-режиме секрет не критичен, данные и так живут до рестарта
		cfg.SessionSecret = "demo-session-secret"
	}

	return cfg
}
