package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/pkg/domain"
)

const (
	// EnvPrefix scopes the environment variables read by Load.
	// VENDING_JOURNAL_REDIS_ADDR maps to journal.redis.addr.
	EnvPrefix = "VENDING_"
	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"
)

// Journal backends.
const (
	JournalNone   = "none"
	JournalMemory = "memory"
	JournalRedis  = "redis"
)

// Config is the runtime configuration of the vending CLI.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Admin   AdminConfig   `koanf:"admin"`
	Journal JournalConfig `koanf:"journal"`
	Metrics MetricsConfig `koanf:"metrics"`
	UI      UIConfig      `koanf:"ui"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	Debug bool   `koanf:"debug"`
}

type AdminConfig struct {
	Password string `koanf:"password" validate:"required"`
}

type JournalConfig struct {
	Backend string      `koanf:"backend" validate:"oneof=none memory redis"`
	Redis   RedisConfig `koanf:"redis"`
}

type RedisConfig struct {
	Addr   string        `koanf:"addr" validate:"omitempty,hostname_port"`
	DB     int           `koanf:"db" validate:"gte=0"`
	Prefix string        `koanf:"prefix"`
	TTL    time.Duration `koanf:"ttl" validate:"gte=0"`

	// Enabled is derived from journal.backend, it is not read from sources.
	Enabled bool `koanf:"-"`
}

type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint. Empty disables it.
	Addr string `koanf:"addr" validate:"omitempty,hostname_port"`
}

type UIConfig struct {
	Banner   bool `koanf:"banner"`
	Markdown bool `koanf:"markdown"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":            "info",
		"log.debug":            false,
		"admin.password":       domain.DefaultAdminPassword,
		"journal.backend":      JournalMemory,
		"journal.redis.addr":   "localhost:6379",
		"journal.redis.db":     0,
		"journal.redis.prefix": "vending:",
		"journal.redis.ttl":    "0s",
		"metrics.addr":         "",
		"ui.banner":            true,
		"ui.markdown":          false,
	}
}

// Options selects the sources read by Load.
type Options struct {
	// File is an optional YAML file. A missing file is not an error when
	// the path was not set explicitly.
	File string
	// EnvFile is the dotenv file; defaults to DefaultEnvFile.
	EnvFile string
	// Overrides are applied last, e.g. from command line flags.
	Overrides map[string]any
	// Logger receives warnings about unreadable optional sources.
	Logger *slog.Logger
}

// Load reads, in increasing priority: defaults, the YAML file, the dotenv
// file, the process environment and the overrides. The result is validated.
func Load(opts Options) (*Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. YAML file
	if opts.File != "" {
		if err := k.Load(file.Provider(opts.File), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config file '%s': %w", opts.File, err)
		}
	}

	// 3. Dotenv file
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if envFileMap, err := godotenv.Read(envFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if strings.HasPrefix(strings.ToUpper(key), EnvPrefix) {
				envMap[envKey(key)] = value
			}
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			logger.Warn("error loading .env config", "file", envFile, "error", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("error reading .env file", "file", envFile, "error", err)
	}

	// 4. Process environment, above every file
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		logger.Warn("error loading env vars", "error", err)
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("error loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Journal.Backend = strings.ToLower(cfg.Journal.Backend)
	cfg.Journal.Redis.Enabled = cfg.Journal.Backend == JournalRedis

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// ErrRedisAddr is returned when the redis journal is selected without an address.
var ErrRedisAddr = errors.New("journal.redis.addr is required for the redis journal")

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Journal.Redis.Enabled && c.Journal.Redis.Addr == "" {
		return ErrRedisAddr
	}
	return nil
}

// SlogLevel maps log.level to a slog level. log.debug forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Log.Debug {
		return slog.LevelDebug
	}
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// String renders the configuration with secrets masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	fmt.Fprintf(&b, "  level: %s\n  debug: %t\n", c.Log.Level, c.Log.Debug)
	b.WriteString("--- Admin ---\n")
	fmt.Fprintf(&b, "  password: %s\n", mask(c.Admin.Password))
	b.WriteString("--- Journal ---\n")
	fmt.Fprintf(&b, "  backend: %s\n", c.Journal.Backend)
	if c.Journal.Redis.Enabled {
		fmt.Fprintf(&b, "  redis.addr: %s\n  redis.db: %d\n  redis.prefix: %s\n  redis.ttl: %v\n",
			c.Journal.Redis.Addr, c.Journal.Redis.DB, c.Journal.Redis.Prefix, c.Journal.Redis.TTL)
	}
	b.WriteString("--- Metrics ---\n")
	fmt.Fprintf(&b, "  addr: %s\n", orNone(c.Metrics.Addr))
	b.WriteString("--- UI ---\n")
	fmt.Fprintf(&b, "  banner: %t\n  markdown: %t\n", c.UI.Banner, c.UI.Markdown)
	return b.String()
}

// envKey turns VENDING_JOURNAL_REDIS_ADDR into journal.redis.addr.
func envKey(key string) string {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(key, "_", ".")
}

func mask(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}

func orNone(s string) string {
	if s == "" {
		return "<disabled>"
	}
	return s
}
