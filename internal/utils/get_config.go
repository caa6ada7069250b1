package utils

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER" validate:"required"`
	DBName     string `yaml:"DB_NAME" validate:"required"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" validate:"required,numeric"`
	DBHost     string `yaml:"DB_HOST" validate:"required"`

	// HTTP server
	ServerPort string `yaml:"SERVER_PORT" validate:"omitempty,numeric"`

	// Ingestion
	DatasetPath string `yaml:"DATASET_PATH"`
}

var config Config

var Validate = validator.New()

// LoadConfig reads config.yaml and lets environment variables override
// individual keys, so a .env file (loaded by the caller) or container
// environment wins over the checked-in defaults.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	overrideFromEnv("DB_USER", &config.DBUser)
	overrideFromEnv("DB_NAME", &config.DBName)
	overrideFromEnv("DB_PASSWORD", &config.DBPassword)
	overrideFromEnv("DB_PORT", &config.DBPort)
	overrideFromEnv("DB_HOST", &config.DBHost)
	overrideFromEnv("SERVER_PORT", &config.ServerPort)
	overrideFromEnv("DATASET_PATH", &config.DatasetPath)

	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if config.DatasetPath == "" {
		config.DatasetPath = "data/recipes.json"
	}

	if err := Validate.Struct(&config); err != nil {
		log.Printf("Invalid configuration: %s\n", err)
	}
}

func overrideFromEnv(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SERVER_PORT":
		return config.ServerPort
	case "DATASET_PATH":
		return config.DatasetPath
	default:
		return ""
	}
}
