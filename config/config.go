package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Gemini Gemini
	Redis  Redis
	App    App
}

type Server struct {
	Port string
}

type Gemini struct {
	APIKey            string
	PlanModel         string
	ChatModel         string
	TTSModel          string
	ImageModel        string
	Voice             string
	Temperature       float32
	RequestsPerMinute int
}

type Redis struct {
	Addr        string
	Password    string
	DB          int
	ProjectsKey string
}

type App struct {
	Environment    string
	Version        string
	ServiceAPIKey  string
	AllowedOrigins []string
	SessionTTL     time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Gemini: Gemini{
			APIKey:            getEnv("GEMINI_API_KEY", ""),
			PlanModel:         getEnv("GEMINI_PLAN_MODEL", "gemini-2.5-flash"),
			ChatModel:         getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),
			TTSModel:          getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
			ImageModel:        getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
			Voice:             getEnv("GEMINI_TTS_VOICE", "Charon"),
			Temperature:       getEnvAsFloat32("GEMINI_TEMPERATURE", 0.6),
			RequestsPerMinute: getEnvAsInt("GEMINI_REQUESTS_PER_MINUTE", 30),
		},
		Redis: Redis{
			Addr:        getEnv("REDIS_ADDR", "localhost:6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			ProjectsKey: getEnv("REDIS_PROJECTS_KEY", "advisor:saved_projects"),
		},
		App: App{
			Environment:    getEnv("APP_ENV", "development"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			ServiceAPIKey:  getEnv("API_KEY", ""),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", "http://localhost:5173"),
			SessionTTL:     getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	// GEMINI_API_KEY is deliberately not validated here: the service can
	// start without it, and plan/chat requests fail with a configuration
	// error instead of taking the whole process down.
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 32)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return float32(value)
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key, defaultValue string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
