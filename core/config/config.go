package config

import (
	"honeydew-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	S3       S3Config
	LogLevel string
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type S3Config struct {
	Region    string
	Bucket    string
	PublicURL string
}

var cfg *Config

// Get returns the loaded config. Load must have been called first.
func Get() *Config {
	return cfg
}

// Load reads configuration from .env (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "honeydew")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "honeydew-dev-secret-change-in-production")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET_NAME", "")
	v.SetDefault("S3_PUBLIC_URL", "")
	v.SetDefault("LOG_LEVEL", "info")

	cfg = &Config{
		Server: ServerConfig{
			Port:           v.GetInt("SERVER_PORT"),
			AllowedOrigins: v.GetStringSlice("ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		S3: S3Config{
			Region:    v.GetString("AWS_REGION"),
			Bucket:    v.GetString("S3_BUCKET_NAME"),
			PublicURL: v.GetString("S3_PUBLIC_URL"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	return cfg, nil
}
