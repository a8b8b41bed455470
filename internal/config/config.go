package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	MongoURI       string
	MongoDatabase  string
	RabbitMQURI    string
	EventExchange  string
	ConsulAddress  string
	ServiceAddress string
	LLMProvider    string
	LLMBaseURL     string
	LLMAPIKey      string
	LLMModel       string
	JWTSecret      string
	ServiceID      string
	ServiceName    string
	ServiceVersion string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnvOrDefault("MONGO_DATABASE", "intellipath"),
		RabbitMQURI:    getEnvOrDefault("RABBITMQ_URI", ""),
		EventExchange:  getEnvOrDefault("RABBITMQ_EXCHANGE", "intellipath.events"),
		ConsulAddress:  getEnvOrDefault("CONSUL_ADDRESS", ""),
		ServiceAddress: getEnvOrDefault("SERVICE_ADDRESS", "localhost"),
		LLMProvider:    getEnvOrDefault("PROVIDER", "ollama"),
		LLMBaseURL:     getEnvOrDefault("BASE_URL", "http://localhost:11434"),
		LLMAPIKey:      getEnvOrDefault("API_KEY", ""),
		LLMModel:       getEnvOrDefault("MODEL", "llama3"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "intellipath-dev-secret"),
		ServiceID:      getEnvOrDefault("SERVICE_ID", "intellipath-1"),
		ServiceName:    getEnvOrDefault("SERVICE_NAME", "intellipath"),
		ServiceVersion: getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
