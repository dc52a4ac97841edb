package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog store backends
const (
	CatalogStoreMemory   = "memory"
	CatalogStorePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type CatalogConfig struct {
	SeedFile            string // optional yaml/json/toml seed document
	Store               string // memory | postgres
	HomeSectionLimit    int
	RequireConfirmation bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	defaultLevel := "info"
	if environment == "development" {
		defaultLevel = "debug"
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: environment,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", defaultLevel),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "storefront"),
			Password: getEnv("DB_PASSWORD", "storefront"),
			DBName:   getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Catalog: CatalogConfig{
			SeedFile:            getEnv("CATALOG_SEED_FILE", ""),
			Store:               strings.ToLower(getEnv("CATALOG_STORE", CatalogStoreMemory)),
			HomeSectionLimit:    parseInt(getEnv("HOME_SECTION_LIMIT", "5"), 5),
			RequireConfirmation: parseBool(getEnv("CATALOG_REQUIRE_CONFIRMATION", "true"), true),
		},
	}

	if config.Catalog.Store != CatalogStoreMemory && config.Catalog.Store != CatalogStorePostgres {
		return nil, fmt.Errorf("unsupported CATALOG_STORE %q", config.Catalog.Store)
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Printf("Invalid positive integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Invalid boolean %s, using default %t", s, fallback)
		return fallback
	}
	return b
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
