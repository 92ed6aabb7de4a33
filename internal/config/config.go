package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "NX"

	KeyPlatformBaseURL = "platform.base_url"
	KeyContentAPIKey   = "content.api_key"
	KeyContentModel    = "content.model"
	KeyContentLanguage = "content.language"
	KeyContentBaseURL  = "content.base_url"
	KeySamplerInterval = "sampler.interval"
	KeyStepDelay       = "operation.step_delay"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"

	// MinSamplerInterval is the finest schedule the sampler can keep.
	MinSamplerInterval = time.Second

	configDir  = ".nx"
	configName = "config"
	configType = "toml"
)

type Config struct {
	PlatformBaseURL string
	ContentAPIKey   string
	ContentModel    string
	ContentLanguage string
	ContentBaseURL  string
	SamplerInterval time.Duration
	StepDelay       time.Duration
	LogLevel        string
	LogFile         string
}

var defaults = map[string]any{
	KeyPlatformBaseURL: "https://discord.com/api/v10",
	KeyContentModel:    "gemini-3-flash-preview",
	KeyContentLanguage: "Bengali",
	KeySamplerInterval: 4 * time.Second,
	KeyStepDelay:       700 * time.Millisecond,
	KeyLogLevel:        "warn",
}

// New returns a viper instance reading ~/.nx/config.toml and NX_* variables.
// NX_CONFIG_FILE points it at another file. A missing file is not an error.
func New() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.BindEnv(KeyContentAPIKey, "NX_CONTENT_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind content api key env: %w", err)
	}

	if path := os.Getenv("NX_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		PlatformBaseURL: strings.TrimRight(strings.TrimSpace(v.GetString(KeyPlatformBaseURL)), "/"),
		ContentAPIKey:   strings.TrimSpace(v.GetString(KeyContentAPIKey)),
		ContentModel:    strings.TrimSpace(v.GetString(KeyContentModel)),
		ContentLanguage: strings.TrimSpace(v.GetString(KeyContentLanguage)),
		ContentBaseURL:  strings.TrimSpace(v.GetString(KeyContentBaseURL)),
		SamplerInterval: v.GetDuration(KeySamplerInterval),
		StepDelay:       v.GetDuration(KeyStepDelay),
		LogLevel:        strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogFile:         strings.TrimSpace(v.GetString(KeyLogFile)),
	}

	if cfg.PlatformBaseURL == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyPlatformBaseURL)
	}
	if cfg.SamplerInterval < MinSamplerInterval {
		return Config{}, fmt.Errorf("%s must be at least %s, got %s", KeySamplerInterval, MinSamplerInterval, cfg.SamplerInterval)
	}
	if cfg.StepDelay < 0 {
		return Config{}, fmt.Errorf("%s must not be negative, got %s", KeyStepDelay, cfg.StepDelay)
	}

	return cfg, nil
}
