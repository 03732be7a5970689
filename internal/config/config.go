package config

import (
	"os"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	LogLevel    string
	CatalogFile string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	StoreOwnerEmail string
	EmailFrom       string
	ResendAPIKey    string
	ResendBaseURL   string

	// FunctionsBaseURL switches checkout and order creation to remote
	// function calls when set.
	FunctionsBaseURL  string
	ServiceRoleKey    string
	HTTPClientTimeout time.Duration

	CartClearDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:        getEnv("PRINTVOGUE_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CatalogFile: os.Getenv("CATALOG_FILE"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		StoreOwnerEmail: getEnv("STORE_OWNER_EMAIL", "ashitachauhan2006@gmail.com"),
		EmailFrom:       getEnv("EMAIL_FROM", "PrintVogue <orders@printvogue.com>"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ResendBaseURL:   getEnv("RESEND_BASE_URL", "https://api.resend.com"),

		FunctionsBaseURL:  os.Getenv("FUNCTIONS_BASE_URL"),
		ServiceRoleKey:    os.Getenv("SERVICE_ROLE_KEY"),
		HTTPClientTimeout: getDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),

		CartClearDelay: getDuration("CART_CLEAR_DELAY", 3*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go duration strings ("3s", "500ms"); malformed values
// fall back to the default.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
