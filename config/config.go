// Package config loads runtime settings and opens the database.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config mirrors the expected configuration shape. Values come from
// config.yaml when present, overridden by APP_ environment variables.
type Config struct {
	AppName       string `mapstructure:"app_name"`
	Env           string `mapstructure:"env"` // dev|staging|prod
	HTTPPort      string `mapstructure:"http_port"`
	SessionSecret string `mapstructure:"session_secret"`

	DBDriver    string `mapstructure:"db_driver"` // postgres|sqlite
	PostgresDSN string `mapstructure:"postgres_dsn"`
	SQLitePath  string `mapstructure:"sqlite_path"`
}

func Load() *Config {
	// Best-effort .env load so local runs can keep secrets out of the shell.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "eternity-admin")
	v.SetDefault("env", "dev")
	v.SetDefault("http_port", "3000")
	v.SetDefault("session_secret", "secret")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("sqlite_path", "eternity.db")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults/env: %v", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}
	return &c
}
