package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"handicraft-catalog/internal/models"
)

type Config struct {
	Port            string `validate:"required,numeric"`
	GinMode         string `validate:"oneof=debug release test"`
	LogLevel        string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat       string `validate:"oneof=text json"`
	CacheTTL        time.Duration
	DefaultSort     models.SortCriterion
	DefaultPageSize int      `validate:"min=1,max=100"`
	AllowedOrigins  []string `validate:"min=1,dive,required"`
}

// LoadConfig lee la configuración de variables de entorno, con .env opcional
func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Warn("⚠️ Error loading .env file: ", err)
		} else {
			log.Info("✅ .env file loaded successfully")
		}
	} else {
		log.Info("🌐 Using system environment variables")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	pageSize, err := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_PAGE_SIZE: %w", err)
	}

	sort, err := models.ParseSortCriterion(getEnv("DEFAULT_SORT", string(models.SortNewest)))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_SORT: %w", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		CacheTTL:        cacheTTL,
		DefaultSort:     sort,
		DefaultPageSize: pageSize,
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica que los valores estén dentro de los rangos aceptados
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("invalid configuration: CACHE_TTL cannot be negative")
	}
	if !c.DefaultSort.Valid() {
		return fmt.Errorf("invalid configuration: unknown DEFAULT_SORT %q", c.DefaultSort)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
