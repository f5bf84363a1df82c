package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	RedisAddress     string
	RedisPassword    string
	RedisDB          int
	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	JWTSecret        string
	ServiceName      string

	// Standard mock-test marking scheme. Per-question values on a
	// question override these defaults.
	MockTestCorrectMarks  float64
	MockTestNegativeMarks float64

	// Fraction of a mock-test percentage credited to the leaderboard
	// score. Quizzes always credit the full percentage.
	MockTestScoreWeight float64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		GinMode:               getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:              getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:         getEnvOrDefault("MONGO_DATABASE", "prep_service"),
		RabbitMQURI:           getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange:      getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		RedisAddress:          getEnvOrDefault("REDIS_ADDRESS", ""),
		RedisPassword:         getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:               getEnvIntOrDefault("REDIS_DB", 0),
		LLMAPIKey:             getEnvOrDefault("LLM_API_KEY", ""),
		LLMBaseURL:            getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMModel:              getEnvOrDefault("LLM_MODEL", "qwen3:1.7b"),
		JWTSecret:             getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		ServiceName:           getEnvOrDefault("SERVICE_NAME", "prep-service"),
		MockTestCorrectMarks:  getEnvFloatOrDefault("MOCKTEST_CORRECT_MARKS", 4),
		MockTestNegativeMarks: getEnvFloatOrDefault("MOCKTEST_NEGATIVE_MARKS", 1),
		MockTestScoreWeight:   getEnvFloatOrDefault("MOCKTEST_SCORE_WEIGHT", 0.5),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
