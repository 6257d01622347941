package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = 5000
	DefaultDBName   = "mealsDb"
	DefaultDBHost   = "cluster0.ml8mugs.mongodb.net"
	DefaultTokenTTL = 365 * 24 * time.Hour
	DefaultQueue    = "hostel.events"
)

// DefaultCORSOrigins is the allow-list the web clients are served from.
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"https://hostel-management-client.web.app",
	"https://euphonious-shortbread-98a6aa.netlify.app",
}

type Config struct {
	Port         int
	MongoURI     string
	DBName       string
	MongoTimeout time.Duration

	TokenSecret string
	TokenTTL    time.Duration

	// CORSOrigins holds the allowed origins; a single "*" allows any origin.
	CORSOrigins []string
	AdminRoutes bool
	Swagger     bool

	AMQPURL   string
	AMQPQueue string

	LogLevel slog.Level
}

// AllowAnyOrigin reports whether CORS is wide open.
func (c Config) AllowAnyOrigin() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Load reads the .env file for APP_ENV, then environment variables, then
// flags from args. Flags win over the environment.
func Load(args []string) (Config, error) {
	envFile := ".env"
	if os.Getenv("APP_ENV") == "production" {
		envFile = ".env.production"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	var cfg Config
	fs := flag.NewFlagSet("hostelhub", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.MongoURI, "mongo", "", "MongoDB connection URI")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil || port <= 0 {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGO_URI")
	}
	if cfg.MongoURI == "" {
		user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
		if user == "" || pass == "" {
			return Config{}, errors.New("MONGO_URI or DB_USER and DB_PASS required")
		}
		cfg.MongoURI = atlasURI(user, pass, envOr("DB_HOST", DefaultDBHost))
	}
	cfg.DBName = envOr("DB_NAME", DefaultDBName)

	timeout, err := strconv.Atoi(envOr("MONGO_TIMEOUT", "10"))
	if err != nil || timeout <= 0 {
		return Config{}, errors.New("invalid MONGO_TIMEOUT env variable")
	}
	cfg.MongoTimeout = time.Duration(timeout) * time.Second

	cfg.TokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("ACCESS_TOKEN_SECRET required")
	}
	cfg.TokenTTL = DefaultTokenTTL
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid TOKEN_TTL env variable")
		}
		cfg.TokenTTL = d
	}

	cfg.CORSOrigins = DefaultCORSOrigins
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if cfg.AdminRoutes, err = envBool("ADMIN_ROUTES", true); err != nil {
		return Config{}, err
	}
	if cfg.Swagger, err = envBool("SWAGGER", true); err != nil {
		return Config{}, err
	}

	cfg.AMQPURL = os.Getenv("AMQP_URL")
	cfg.AMQPQueue = envOr("AMQP_QUEUE", DefaultQueue)

	if err := cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func atlasURI(user, pass, host string) string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable", key)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
