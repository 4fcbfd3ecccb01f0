package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/LBGeo/gestion-repuestos/internal/utils"
)

// Config agrupa la configuración de la consola y del almacén de referencia.
type Config struct {
	Console  ConsoleConfig
	Store    StoreConfig
	Database DatabaseConfig
}

// ConsoleConfig configura el backend de la consola.
type ConsoleConfig struct {
	Port        string
	StoreAPIURL string
	Timeout     time.Duration
	CORSOrigins []string
}

// StoreConfig configura el servidor REST de entidades.
type StoreConfig struct {
	Port        string
	CORSOrigins []string
}

// DatabaseConfig se llena con las variables DB_*.
type DatabaseConfig struct {
	Host       string
	Port       uint
	Name       string
	Username   string
	Password   string
	SecretID   string
	SSLDisable bool
	Embedded   bool
}

// Load lee .env si existe y luego las variables de entorno.
func Load() *Config {
	_ = godotenv.Load()

	origins := utils.SplitCSV(getEnv("CORS_ORIGINS", "*"))
	return &Config{
		Console: ConsoleConfig{
			Port:        getEnv("CONSOLE_PORT", "8081"),
			StoreAPIURL: getEnv("STORE_API_URL", "http://localhost:8080"),
			Timeout:     time.Duration(getEnvInt("STORE_API_TIMEOUT", 15)) * time.Second,
			CORSOrigins: origins,
		},
		Store: StoreConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: origins,
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       uint(getEnvInt("DB_PORT", 5432)),
			Name:       getEnv("DB_NAME", "lbgeo"),
			Username:   os.Getenv("DB_USERNAME"),
			Password:   os.Getenv("DB_PASSWORD"),
			SecretID:   os.Getenv("DB_SECRET_ID"),
			SSLDisable: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
			Embedded:   os.Getenv("DB_EMBEDDED") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
