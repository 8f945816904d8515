package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	NoteStore  NoteStoreConfig
	Session    SessionConfig
	Collection CollectionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// NoteStoreConfig points at the remote Note Store API.
type NoteStoreConfig struct {
	URL             string
	AccessToken     string // used when a session does not bring its own token
	Timeout         time.Duration
	RateLimitPerSec float64
	RateBurst       int
}

type SessionConfig struct {
	MaxSessions int
	TTL         time.Duration
}

type CollectionConfig struct {
	DefaultPageSize int
}

// Option adjusts the viper instance before the configuration is read.
type Option func(v *viper.Viper)

// WithOverride forces key to value, above file and environment values.
func WithOverride(key string, value any) Option {
	return func(v *viper.Viper) { v.Set(key, value) }
}

// Load reads config.yaml from ./config, . or /etc/pr-notes/ and applies env overrides.
func Load(opts ...Option) (*Config, error) {
	v := viper.New()
	for _, opt := range opts {
		opt(v)
	}
	return load(v, "./config", ".", "/etc/pr-notes/")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.NoteStore.URL = v.GetString("note_store.url")
	cfg.NoteStore.AccessToken = expandEnvVar(v, v.GetString("note_store.access_token"))
	cfg.NoteStore.Timeout = v.GetDuration("note_store.timeout")
	cfg.NoteStore.RateLimitPerSec = v.GetFloat64("note_store.rate_limit_per_sec")
	cfg.NoteStore.RateBurst = v.GetInt("note_store.rate_burst")

	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Collection.DefaultPageSize = v.GetInt("collection.default_page_size")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.NoteStore.URL) == "" {
		return errors.New("note_store.url is required (or set NOTE_STORE_URL)")
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 600)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("note_store.timeout", "15s")
	v.SetDefault("note_store.rate_limit_per_sec", 10)
	v.SetDefault("note_store.rate_burst", 20)

	v.SetDefault("session.max_sessions", 1000)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("collection.default_page_size", 10)
}

// expandEnvVar resolves a "${VAR}" placeholder from viper or the process environment.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return ""
}
