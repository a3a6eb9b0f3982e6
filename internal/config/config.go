// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rprasanth/content-journal/backend/internal/domain"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the slog handler: "json" (default) for production,
	// "pretty" for colorized development output.
	LogFormat string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// UserPasswords maps each user in the closed set to the secret gating
	// that user's export download. Required; every user must be covered.
	// Set USER_PASSWORDS to a comma-separated list of user:password pairs.
	UserPasswords map[string]string

	// AdminPassword gates the all-users export. Required. Kept separate from
	// the per-user secrets; it matches no individual user.
	AdminPassword string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, plus any
// user in the closed set missing from USER_PASSWORDS.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}

	rawPasswords := os.Getenv("USER_PASSWORDS")
	if rawPasswords == "" {
		missing = append(missing, "USER_PASSWORDS")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	passwords, err := parseUserPasswords(rawPasswords)
	if err != nil {
		return Config{}, err
	}
	cfg.UserPasswords = passwords

	return cfg, nil
}

// parseUserPasswords parses "user:password,user:password" into a map and
// verifies every user in the closed set has a non-empty secret.
func parseUserPasswords(raw string) (map[string]string, error) {
	passwords := make(map[string]string, len(domain.Users))
	for _, pair := range splitCSV(raw) {
		user, password, ok := strings.Cut(pair, ":")
		if !ok || password == "" {
			return nil, fmt.Errorf("USER_PASSWORDS: malformed pair %q (want user:password)", pair)
		}
		if !domain.ValidUser(user) {
			return nil, fmt.Errorf("USER_PASSWORDS: unknown user %q", user)
		}
		passwords[user] = password
	}

	var uncovered []string
	for _, u := range domain.Users {
		if passwords[u] == "" {
			uncovered = append(uncovered, u)
		}
	}
	if len(uncovered) > 0 {
		return nil, fmt.Errorf("USER_PASSWORDS: missing password for: %s", strings.Join(uncovered, ", "))
	}

	return passwords, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
