package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("google api key not found: set google.api_key in the secrets file or GOOGLE_API_KEY")

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Upload  UploadConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Title              string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SecretsPath        string
}

type APIKeys struct {
	GoogleAPIKey string
}

type AIConfig struct {
	GeminiBaseURL string
	GeminiModel   string
}

type UploadConfig struct {
	MaxBodyMB    int
	OCRLanguages []string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Title:              getEnv("APP_TITLE", "PaperTrail AI"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			SecretsPath:        getEnv("SECRETS_PATH", ".streamlit/secrets.toml"),
		},
		Ai: AIConfig{
			GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			GeminiModel:   getEnv("GEMINI_MODEL", "models/gemini-1.5-flash-latest"),
		},
		Upload: UploadConfig{
			MaxBodyMB:    getEnvAsInt("UPLOAD_MAX_MB", 25),
			OCRLanguages: getEnvAsList("OCR_LANGUAGES", []string{"eng"}),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}

	key, err := ResolveGoogleAPIKey(cfg.App.SecretsPath, os.LookupEnv)
	if err != nil {
		log.Printf("[WARN] %v", err)
	}
	cfg.Keys.GoogleAPIKey = key

	return cfg
}

// Validate reports configuration the process cannot start without.
func (c *Config) Validate() error {
	if c.Keys.GoogleAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
