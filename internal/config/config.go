// Package config loads wq settings from a TOML file and WORKIQ_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "WORKIQ"
	ConfigFileEnv = "WORKIQ_CONFIG"

	configName = "config"
	configType = "toml"
	appDir     = "workiq"

	keyTenantID            = "tenant_id"
	keyToolPath            = "tool.path"
	keyQueryTimeout        = "query.timeout"
	keyCacheEnabled        = "cache.enabled"
	keyCacheDir            = "cache.dir"
	keyCacheTTL            = "cache.ttl"
	keyOutputDir           = "output.dir"
	keyBriefingConcurrency = "briefing.concurrency"
	keySMTPHost            = "smtp.host"
	keySMTPPort            = "smtp.port"
	keySMTPUsername        = "smtp.username"
	keySMTPPassword        = "smtp.password"
	keySMTPFrom            = "smtp.from"
	keyLogLevel            = "log.level"
	keyLogDebug            = "log.debug"
)

type CacheConfig struct {
	Enabled bool
	Dir     string
	TTL     time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	// Password is a secret reference (env:, pass:, file:) or a literal value.
	Password string
	From     string
}

type Config struct {
	TenantID            string
	ToolPath            string
	QueryTimeout        time.Duration
	Cache               CacheConfig
	OutputDir           string
	BriefingConcurrency int
	SMTP                SMTPConfig
	LogLevel            slog.Level
	// File is the config file that was read, empty when none was found.
	File string
}

func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, appDir, "queries")
}

func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDir)
}

// Load reads the config file, if any, and applies environment overrides. An
// explicit WORKIQ_CONFIG that does not exist is an error; a missing default
// file is not.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return Config{}, err
	}

	v.SetConfigType(configType)
	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		TenantID:     strings.TrimSpace(v.GetString(keyTenantID)),
		ToolPath:     v.GetString(keyToolPath),
		QueryTimeout: v.GetDuration(keyQueryTimeout),
		Cache: CacheConfig{
			Enabled: v.GetBool(keyCacheEnabled),
			Dir:     v.GetString(keyCacheDir),
			TTL:     v.GetDuration(keyCacheTTL),
		},
		OutputDir:           v.GetString(keyOutputDir),
		BriefingConcurrency: v.GetInt(keyBriefingConcurrency),
		SMTP: SMTPConfig{
			Host:     v.GetString(keySMTPHost),
			Port:     v.GetInt(keySMTPPort),
			Username: v.GetString(keySMTPUsername),
			Password: v.GetString(keySMTPPassword),
			From:     v.GetString(keySMTPFrom),
		},
		File: v.ConfigFileUsed(),
	}

	level, err := parseLogLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, err
	}
	if v.GetBool(keyLogDebug) {
		level = slog.LevelDebug
	}
	cfg.LogLevel = level

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTenantID, "")
	v.SetDefault(keyToolPath, "workiq")
	v.SetDefault(keyQueryTimeout, 30*time.Second)
	v.SetDefault(keyCacheEnabled, true)
	v.SetDefault(keyCacheDir, DefaultCacheDir())
	v.SetDefault(keyCacheTTL, time.Hour)
	v.SetDefault(keyOutputDir, "output")
	v.SetDefault(keyBriefingConcurrency, 1)
	v.SetDefault(keySMTPHost, "")
	v.SetDefault(keySMTPPort, 465)
	v.SetDefault(keySMTPUsername, "")
	v.SetDefault(keySMTPPassword, "")
	v.SetDefault(keySMTPFrom, "")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogDebug, false)
}

// bindEnv maps every key to WORKIQ_<KEY> and keeps the bare SMTP_* and
// ENABLE_DEBUG_LOGGING names working as fallbacks.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	aliases := map[string]string{
		keySMTPHost:     "SMTP_HOST",
		keySMTPPort:     "SMTP_PORT",
		keySMTPUsername: "SMTP_USER",
		keySMTPPassword: "SMTP_PASS",
		keyLogDebug:     "ENABLE_DEBUG_LOGGING",
	}
	for key, alias := range aliases {
		primary := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, primary, alias); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ToolPath) == "" {
		return errors.New("tool.path must not be empty")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("query.timeout must be positive, got %s", c.QueryTimeout)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if strings.TrimSpace(c.Cache.Dir) == "" {
		return errors.New("cache.dir must not be empty")
	}
	if c.BriefingConcurrency < 1 {
		return fmt.Errorf("briefing.concurrency must be at least 1, got %d", c.BriefingConcurrency)
	}
	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port out of range: %d", c.SMTP.Port)
	}

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log.level %q", s)
	}
}
