package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseDSN string

	GeminiModel string

	PDFExtractorURL string
	PDFExtractorKey string

	DefaultWordCount int
}

var (
	C        *Config
	Validate = validator.New()
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(lvl)
	}

	C = &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "ieltslab.db"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		PDFExtractorURL:  getEnv("PDF_EXTRACTOR_URL", ""),
		PDFExtractorKey:  getEnv("PDF_EXTRACTOR_KEY", ""),
		DefaultWordCount: getEnvInt("DEFAULT_WORD_COUNT", 350),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
