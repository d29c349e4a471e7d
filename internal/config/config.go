package config

import "os"

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Mail     MailConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port string
	// PublicBaseURL is the externally reachable base URL of this API,
	// used to build dev-mail preview links.
	PublicBaseURL string
	// ClientURL is the frontend base URL embedded in password-reset links.
	ClientURL      string
	AllowedOrigins string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL string
	ResetTTL   string
}

type MailConfig struct {
	SMTPHost   string
	SMTPPort   string
	Username   string
	Password   string
	FromName   string
	FromAddr   string
	Encryption string
	// AlertTo receives the new-adoption-request alert emails.
	AlertTo string
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			PublicBaseURL:  getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
			ClientURL:      getenv("CLIENT_URL", "http://localhost:5173"),
			AllowedOrigins: getenv("ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			SessionTTL: getenv("SESSION_TOKEN_TTL", "720h"),
			ResetTTL:   getenv("RESET_TOKEN_TTL", "15m"),
		},
		Mail: MailConfig{
			SMTPHost:   os.Getenv("SMTP_HOST"),
			SMTPPort:   getenv("SMTP_PORT", "465"),
			Username:   os.Getenv("ADMIN_EMAIL"),
			Password:   os.Getenv("ADMIN_EMAIL_PASSWORD"),
			FromName:   getenv("MAIL_FROM_NAME", "DoggyWorld"),
			FromAddr:   getenv("MAIL_FROM_ADDR", "no-reply@doggyworld.example"),
			Encryption: getenv("SMTP_ENCRYPTION", "SSL/TLS"),
			AlertTo:    os.Getenv("ADMIN_EMAIL"),
		},
		Seed: SeedConfig{
			AdminEmail:    os.Getenv("SEED_ADMIN_EMAIL"),
			AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
			AdminName:     getenv("SEED_ADMIN_NAME", "Super Admin"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
