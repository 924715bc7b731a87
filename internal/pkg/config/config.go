package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMemory    = "memory"

	AuthDriverFirebase = "firebase"
	AuthDriverLocal    = "local"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	Firebase FirebaseConfig
	Auth     AuthConfig
	JWT      JWTConfig
	Mail     MailConfig
	Cookie   CookieConfig
	CORS     CORSConfig
	Log      LogConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"firestore"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type FirebaseConfig struct {
	ProjectID       string `envconfig:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `envconfig:"FIREBASE_CREDENTIALS_FILE"`
	// Web API key for the Identity Toolkit REST endpoints (password sign-in, reset mails).
	APIKey      string `envconfig:"FIREBASE_API_KEY"`
	AuthBaseURL string `envconfig:"FIREBASE_AUTH_BASE_URL" default:"https://identitytoolkit.googleapis.com/v1"`
}

type AuthConfig struct {
	Driver string `envconfig:"AUTH_DRIVER" default:"firebase"`
	// Link sent in local password-reset mails; the reset code is appended as ?code=.
	ResetURL string `envconfig:"AUTH_RESET_URL" default:"http://localhost:3000/reset-password"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	ResetTTL string `envconfig:"JWT_RESET_TTL" default:"1h"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@booking.local"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Accept-Language,Authorization,X-Client-Id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// empty disables the rotating file sink
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type I18nConfig struct {
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *JWTConfig) TokenDuration() (time.Duration, error) {
	return time.ParseDuration(c.Duration)
}

func (c *JWTConfig) ResetDuration() (time.Duration, error) {
	return time.ParseDuration(c.ResetTTL)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFirestore, StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Auth.Driver {
	case AuthDriverFirebase:
		if c.Firebase.APIKey == "" {
			return fmt.Errorf("FIREBASE_API_KEY is required when AUTH_DRIVER=%s", AuthDriverFirebase)
		}
	case AuthDriverLocal:
		if c.JWT.Secret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_DRIVER=%s", AuthDriverLocal)
		}
	default:
		return fmt.Errorf("unknown AUTH_DRIVER %q", c.Auth.Driver)
	}

	if c.Store.Driver == StoreDriverFirestore || c.Auth.Driver == AuthDriverFirebase {
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firebase backends")
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Auth: AuthConfig{
			Driver:   AuthDriverLocal,
			ResetURL: "http://localhost:3000/reset-password",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-unit-tests-only",
			Duration: "1h",
			ResetTTL: "15m",
		},
		Mail: MailConfig{
			From: "no-reply@booking.local",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		I18n: I18nConfig{
			DefaultLanguage: "en",
		},
	}
}
