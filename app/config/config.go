package config

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the runtime settings, all sourced from the environment.
type Config struct {
	ServerAddr     string
	DatasetPath    string
	ModelPath      string
	ReloadInterval time.Duration

	AdvisorEmail        string
	AdvisorName         string
	AdvisorPasswordHash string
}

// AppConfig is the loaded configuration, populated by Load at startup.
var AppConfig *Config

// Load reads the environment and populates AppConfig. When no
// ADVISOR_PASSWORD_HASH is set, the plain ADVISOR_PASSWORD (default
// "changeme") is hashed at startup so login always compares bcrypt hashes.
func Load() *Config {
	hash := getEnv("ADVISOR_PASSWORD_HASH", "")
	if hash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADVISOR_PASSWORD", "changeme")), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash advisor password:", err)
		}
		hash = string(h)
	}

	AppConfig = &Config{
		ServerAddr:          getEnv("SERVER_ADDR", ":8080"),
		DatasetPath:         getEnv("DATASET_PATH", "data/student-mat.csv"),
		ModelPath:           getEnv("MODEL_PATH", "models/risk_model.json"),
		ReloadInterval:      getEnvDuration("DATASET_RELOAD_INTERVAL", time.Minute),
		AdvisorEmail:        getEnv("ADVISOR_EMAIL", "advisor@school.local"),
		AdvisorName:         getEnv("ADVISOR_NAME", "Student Advisor"),
		AdvisorPasswordHash: hash,
	}
	return AppConfig
}

// Get returns the loaded configuration.
func Get() *Config {
	return AppConfig
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
