package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          int
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	AdminEmails   []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var adminEmails string
	var sessionTTL string

	fs := flag.NewFlagSet("pollbooth", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")
	fs.StringVar(&sessionTTL, "session-ttl", "", "Session token lifetime, e.g. 24h")
	fs.StringVar(&adminEmails, "admin-emails", "", "Comma-separated emails granted admin on registration")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if sessionTTL == "" {
		sessionTTL = os.Getenv("SESSION_TTL")
	}
	if sessionTTL == "" {
		cfg.SessionTTL = 24 * time.Hour // default
	} else {
		ttl, err := time.ParseDuration(sessionTTL)
		if err != nil || ttl <= 0 {
			return Config{}, errors.New("invalid SESSION_TTL, want a positive duration like 24h")
		}
		cfg.SessionTTL = ttl
	}

	if adminEmails == "" {
		adminEmails = os.Getenv("ADMIN_EMAILS")
	}
	for _, email := range strings.Split(adminEmails, ",") {
		email = strings.TrimSpace(strings.ToLower(email))
		if email != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, email)
		}
	}

	return cfg, nil
}

// IsAdminEmail reports whether a registration email is on the admin list.
// Comparison is case-insensitive.
func (c Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(email)
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}
