package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string
	Server         Server
	Database       Database
	Gemini         Gemini
	Otel           Otel
	AllowedOrigins []string
}

type Server struct {
	Port string `validate:"required,numeric"`
}

type Database struct {
	Driver     string `validate:"oneof=postgres sqlite"`
	Host       string `validate:"required_if=Driver postgres"`
	Port       string `validate:"required_if=Driver postgres"`
	User       string `validate:"required_if=Driver postgres"`
	Password   string `json:"-"`
	Name       string `validate:"required_if=Driver postgres"`
	SSLMode    string
	SQLitePath string `validate:"required_if=Driver sqlite"`
}

type Gemini struct {
	ApiKey string `json:"-"`
	Model  string
}

type Otel struct {
	Enabled      bool
	ServiceName  string
	Endpoint     string
	SamplerRatio float64 `validate:"gte=0,lte=1"`
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("SQLITE_PATH", "surveyor.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OTEL_SERVICE_NAME", "surveyor")
	viper.SetDefault("OTEL_SAMPLER_RATIO", 0.1)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	var config Config

	config.AppEnv = v.GetString("APP_ENV")
	config.Server.Port = v.GetString("SERVER_PORT")

	config.Database.Driver = strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER")))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = v.GetString("SQLITE_PATH")

	config.Gemini.ApiKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")

	config.Otel.Enabled = v.GetBool("OTEL_ENABLED")
	config.Otel.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	config.Otel.Endpoint = v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")
	config.Otel.SamplerRatio = v.GetFloat64("OTEL_SAMPLER_RATIO")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.AllowedOrigins = append(config.AllowedOrigins, origin)
		}
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.AppEnv)
	return env == "production" || env == "prod"
}
