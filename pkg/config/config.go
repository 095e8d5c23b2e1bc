package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	EmbeddingsAPIKey  string
	EmbeddingsBaseURL string
	EmbeddingsModel   string

	CourseCatalogPath string
	CoursesTopN       int

	OCREnabled      bool
	OCRLang         string
	PDFMinTextChars int
	PDFRenderDPI    int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "cvmatch-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		EmbeddingsAPIKey:  os.Getenv("EMBEDDINGS_API_KEY"),
		EmbeddingsBaseURL: getEnv("EMBEDDINGS_BASE_URL", ""),
		EmbeddingsModel:   getEnv("EMBEDDINGS_MODEL", ""),

		CourseCatalogPath: getEnv("COURSE_CATALOG_PATH", "data/courses.csv"),
		CoursesTopN:       getEnvInt("COURSES_TOP_N", 3),

		OCREnabled:      getEnvBool("OCR_ENABLED", true),
		OCRLang:         getEnv("OCR_LANG", "eng"),
		PDFMinTextChars: getEnvInt("PDF_MIN_TEXT_CHARS", 50),
		PDFRenderDPI:    getEnvInt("PDF_RENDER_DPI", 300),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
