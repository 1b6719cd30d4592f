// Package config resolves itimer settings from defaults, an optional TOML
// config file and ITIMER_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/itimer"
	envPrefix  = "ITIMER"

	KeyBaseURL        = "base_url"
	KeyRequestTimeout = "request_timeout"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeySecretsDir     = "secrets.dir"
	KeyPollInterval   = "poller.poll_interval"
	KeyStartupDelay   = "poller.startup_delay"
	KeyTickSeconds    = "poller.tick_seconds"
	KeyStopOnEnded    = "poller.stop_on_ended"
	KeyDedupeWindow   = "dedupe.window"
	KeyDedupeHigh     = "dedupe.high_water"
	KeyEnterDuration  = "notifications.enter"
	KeyDisplayPeriod  = "notifications.display"
	KeyExitDuration   = "notifications.exit"
)

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	Log            LogConfig
	SecretsDir     string
	Poller         PollerConfig
	Dedupe         DedupeConfig
	Notifications  NotificationConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type LogConfig struct {
	Level string
	File  string
}

type PollerConfig struct {
	PollInterval time.Duration
	StartupDelay time.Duration
	TickSeconds  int
	StopOnEnded  bool
}

type DedupeConfig struct {
	Window    time.Duration
	HighWater int
}

type NotificationConfig struct {
	Enter   time.Duration
	Display time.Duration
	Exit    time.Duration
}

type Options struct {
	// ConfigFile, when set, must exist and replaces the default lookup.
	ConfigFile string
	HomeDir    string
}

func Load(v *viper.Viper, opts Options) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	setDefaults(v, homeDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:        strings.TrimSpace(v.GetString(KeyBaseURL)),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		SecretsDir: v.GetString(KeySecretsDir),
		Poller: PollerConfig{
			PollInterval: v.GetDuration(KeyPollInterval),
			StartupDelay: v.GetDuration(KeyStartupDelay),
			TickSeconds:  v.GetInt(KeyTickSeconds),
			StopOnEnded:  v.GetBool(KeyStopOnEnded),
		},
		Dedupe: DedupeConfig{
			Window:    v.GetDuration(KeyDedupeWindow),
			HighWater: v.GetInt(KeyDedupeHigh),
		},
		Notifications: NotificationConfig{
			Enter:   v.GetDuration(KeyEnterDuration),
			Display: v.GetDuration(KeyDisplayPeriod),
			Exit:    v.GetDuration(KeyExitDuration),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(KeyBaseURL, "http://127.0.0.1:8000")
	v.SetDefault(KeyRequestTimeout, 10*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySecretsDir, filepath.Join(homeDir, configDir, "secrets"))
	v.SetDefault(KeyPollInterval, 8*time.Second)
	v.SetDefault(KeyStartupDelay, 2*time.Second)
	v.SetDefault(KeyTickSeconds, 8)
	v.SetDefault(KeyStopOnEnded, false)
	v.SetDefault(KeyDedupeWindow, 30*time.Second)
	v.SetDefault(KeyDedupeHigh, 100)
	v.SetDefault(KeyEnterDuration, 300*time.Millisecond)
	v.SetDefault(KeyDisplayPeriod, 10*time.Second)
	v.SetDefault(KeyExitDuration, 320*time.Millisecond)
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid %s %q: want an http(s) url", KeyBaseURL, c.BaseURL)
	}

	positive := []struct {
		key   string
		value time.Duration
	}{
		{KeyRequestTimeout, c.RequestTimeout},
		{KeyPollInterval, c.Poller.PollInterval},
		{KeyDedupeWindow, c.Dedupe.Window},
		{KeyDisplayPeriod, c.Notifications.Display},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid %s %s: must be positive", p.key, p.value)
		}
	}

	if c.Poller.StartupDelay < 0 || c.Notifications.Enter < 0 || c.Notifications.Exit < 0 {
		return errors.New("startup delay and animation durations must not be negative")
	}
	if c.Poller.TickSeconds <= 0 {
		return fmt.Errorf("invalid %s %d: must be positive", KeyTickSeconds, c.Poller.TickSeconds)
	}
	if c.Dedupe.HighWater <= 0 {
		return fmt.Errorf("invalid %s %d: must be positive", KeyDedupeHigh, c.Dedupe.HighWater)
	}
	if c.SecretsDir == "" {
		return fmt.Errorf("%s is empty", KeySecretsDir)
	}
	return nil
}
