package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DSN            string
	LogLevel       string
	LogFormat      string
	MigrateOnStart bool
	APIURL         string

	// Args holds the positional arguments left after flag parsing.
	Args []string

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

// Load reads an optional .env file, then environment variables, then the
// given command line flags, each layer overriding the previous one.
func Load(name string, args []string) (Config, error) {
	cfg := Config{
		EnvFileLoaded: godotenv.Load() == nil,
		DBHost:        os.Getenv("POSTGRES_HOST"),
		DBPort:        envDefault("POSTGRES_PORT", "5432"),
		DBUser:        os.Getenv("POSTGRES_USER"),
		DBPassword:    os.Getenv("POSTGRES_PASSWORD"),
		DBName:        os.Getenv("POSTGRES_DB"),
		DSN:           strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		LogLevel:      envDefault("LOG_LEVEL", "info"),
		LogFormat:     envDefault("LOG_FORMAT", "text"),
		APIURL:        envDefault("POLLS_API_URL", "http://localhost:8080"),
	}

	port, err := strconv.Atoi(envDefault("PORT", "8080"))
	if err != nil {
		return Config{}, errors.New("invalid PORT env variable")
	}
	cfg.Port = port

	migrate, err := strconv.ParseBool(envDefault("MIGRATE_ON_START", "true"))
	if err != nil {
		return Config{}, errors.New("invalid MIGRATE_ON_START env variable")
	}
	cfg.MigrateOnStart = migrate

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	fs.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "Database host")
	fs.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "Database port")
	fs.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "Database user")
	fs.StringVar(&cfg.DBPassword, "db-pass", cfg.DBPassword, "Database password")
	fs.StringVar(&cfg.DBName, "db-name", cfg.DBName, "Database name")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "Full database URL, overrides the db-* flags")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text or json)")
	fs.BoolVar(&cfg.MigrateOnStart, "migrate", cfg.MigrateOnStart, "Apply migrations on start")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Base URL of the API used by pollctl")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// DatabaseURL returns the DSN, building it from the parts when no full URL
// was given. It is empty when no database is configured.
func (c Config) DatabaseURL() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.DBHost == "" || c.DBName == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c Config) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
