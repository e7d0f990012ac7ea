package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config agrupa todo lo que el binario necesita para arrancar.
// Orden de precedencia: defaults < archivo YAML (opcional) < variables de entorno.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
	Auth     Auth     `yaml:"auth"`
	Seed     Seed     `yaml:"seed"`
}

type Server struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

type Database struct {
	// Driver: "pgx" (Postgres), "sqlite" o vacío (repos in-memory).
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type Auth struct {
	CookieName  string `yaml:"cookieName"`
	CookieValue string `yaml:"cookieValue"`
}

type Seed struct {
	Dir     string `yaml:"dir"`
	OnStart bool   `yaml:"onStart"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
			App:    "contact-manager",
		},
		Auth: Auth{
			CookieName:  "Auth-Key",
			CookieValue: "A100",
		},
		Seed: Seed{
			OnStart: true,
		},
	}
}

// Load arma la config. path puede ser vacío (solo defaults + env).
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(`failed to read config file "%s": %w`, path, err)
	}
	if err := yaml.Unmarshal(fileData, c); err != nil {
		return fmt.Errorf(`failed to unmarshal config file "%s": %w`, path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DB_DSN", c.Database.DSN)
	// compat: DB_DSN sin driver explícito => Postgres
	if c.Database.Driver == "" && c.Database.DSN != "" {
		c.Database.Driver = "pgx"
	}

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.App = getEnv("APP_NAME", c.Log.App)

	c.Auth.CookieName = getEnv("AUTH_COOKIE_NAME", c.Auth.CookieName)
	c.Auth.CookieValue = getEnv("AUTH_COOKIE_VALUE", c.Auth.CookieValue)

	c.Seed.Dir = getEnv("SEED_DIR", c.Seed.Dir)
	c.Seed.OnStart = getEnvBool("SEED_ON_START", c.Seed.OnStart)
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "", "pgx", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver != "" && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database driver %q requires a dsn", c.Database.Driver)
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth cookie name required")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
