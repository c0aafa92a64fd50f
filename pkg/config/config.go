package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	JWTSecret       string
	JWTAccessExpiry time.Duration

	// Firestore access. ProjectID is required against a real store.
	// CredentialsFile and CredentialsJSON are alternatives: a service
	// account file path, or the JSON payload inline. When both are empty
	// the client falls back to application default credentials.
	FirestoreProjectID string
	CredentialsFile    string
	CredentialsJSON    string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:    accessExpiry,
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
		CredentialsFile:    getEnv("FIRESTORE_CREDENTIALS_FILE", ""),
		CredentialsJSON:    getEnv("FIRESTORE_CREDENTIALS_JSON", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
