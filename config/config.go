package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env              string
	Server           Server
	Database         Database
	LogLevel         string
	Timezone         string
	RecentExamsLimit int
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// Location returns the configured school timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", c.Timezone).Msg("Unknown APP_TIMEZONE, using UTC")
		return time.UTC
	}
	return loc
}

func NewConfig() (*Config, error) {
	env := strings.ToLower(os.Getenv("ENV")) // dev (default), test, prod
	if env == "" {
		env = "dev"
	}

	// config/.env.<env> overrides nothing that is already exported
	overlay := filepath.Join("config", ".env."+env)
	if _, err := os.Stat(overlay); err == nil {
		if err := godotenv.Load(overlay); err != nil {
			log.Warn().Err(err).Str("path", overlay).Msg("Error loading env overlay")
		}
	}

	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	v.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("RECENT_EXAMS_LIMIT", 5)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Env = env
	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.LogLevel = v.GetString("LOG_LEVEL")
	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = v.GetInt("DATABASE_MAX_IDLE_CONNS")
	config.Timezone = v.GetString("APP_TIMEZONE")
	config.RecentExamsLimit = v.GetInt("RECENT_EXAMS_LIMIT")

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Str("timezone", config.Timezone).
		Msg("Config loaded")
	return &config, nil
}
