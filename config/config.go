package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string `validate:"required,numeric"`
	CorsOrigins string `validate:"required"`

	DBDriver   string `validate:"required,oneof=sqlite postgres mysql"`
	DBName     string `validate:"required"`
	DBHost     string
	DBPort     string `validate:"omitempty,numeric"`
	DBUser     string
	DBPassword string
	DBDsn      string // Full DSN, overrides the individual DB_* values
	DBDebug    bool

	CSVFile           string `validate:"required"`
	LoadBatchSize     int    `validate:"min=1"`
	LoadTransactional bool
}

var validate = validator.New()

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.DBDriver == "sqlite" && cfg.DBName == "bank_branches.db" {
		log.Println("Warning: Using default DB_NAME. Update it in your environment.")
	}

	return cfg
}

// FromEnv builds a Config from the current process environment
func FromEnv() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		CorsOrigins: getEnv("CORS_ORIGINS", "*"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBName:     getEnv("DB_NAME", "bank_branches.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBDsn:      os.Getenv("DB_DSN"),
		DBDebug:    getEnvBool("DB_DEBUG", false),

		CSVFile:           getEnv("CSV_FILE", "bank_branches.csv"),
		LoadBatchSize:     getEnvInt("LOAD_BATCH_SIZE", 500),
		LoadTransactional: getEnvBool("LOAD_TRANSACTIONAL", true),
	}
}

// Validate checks the struct tags on Config
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DSN returns the connection string for the configured driver. DB_DSN wins
// when set.
func (c *Config) DSN() string {
	if c.DBDsn != "" {
		return c.DBDsn
	}
	switch c.DBDriver {
	case "postgres":
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port,
		)
	case "mysql":
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName,
		)
	default:
		return c.DBName
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
