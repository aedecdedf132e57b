package utils

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
	"time"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	Timezone     string `yaml:"TIMEZONE"`
	LogDir       string `yaml:"LOG_DIR"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`

	// Storage configuration, "memory" or "postgres"
	StorageDriver string `yaml:"STORAGE_DRIVER"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":       "8080",
	"TIMEZONE":       "Local",
	"LOG_DIR":        "./logs",
	"RATE_LIMIT_MAX": "20",
	"STORAGE_DRIVER": "memory",
	"SMTP_PORT":      "587",
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"TIMEZONE":           &c.Timezone,
		"LOG_DIR":            &c.LogDir,
		"RATE_LIMIT_MAX":     &c.RateLimitMax,
		"STORAGE_DRIVER":     &c.StorageDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
	}
}

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

// LoadConfigFile reads path, then lets the environment (including a .env
// file in the working directory) override any key. Missing keys fall back
// to defaults.
func LoadConfigFile(path string) {
	config = Config{}

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Warnf("Error parsing YAML file: %s", err)
	}

	for key, field := range config.fields() {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*field = value
		}
		if *field == "" {
			*field = defaults[key]
		}
	}
}

func GetConfig(key string) string {
	field, ok := config.fields()[key]
	if !ok {
		return ""
	}
	return *field
}

// GetLocation resolves TIMEZONE; calendar dates are interpreted there.
func GetLocation() *time.Location {
	name := GetConfig("TIMEZONE")
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf("unknown TIMEZONE %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}
