// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the YAML file.
const DefaultPath = "configs/config.yaml"

type Config struct {
	Port string `yaml:"port" env:"PORT"`

	//Target site
	BaseURL       string `yaml:"base_url"`
	PageSize      int    `yaml:"page_size"`
	FallbackCount int    `yaml:"fallback_count"`

	//Cache
	CacheTTL      time.Duration `yaml:"cache_ttl" env:"CACHE_TTL"`
	CacheCapacity int           `yaml:"cache_capacity"`
	SweepSchedule string        `yaml:"sweep_schedule"`
	Coalesce      bool          `yaml:"coalesce"`

	//Deadlines
	BrowserTimeout time.Duration `yaml:"browser_timeout" env:"BROWSER_TIMEOUT"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`

	//Browser
	Headless          bool     `yaml:"headless" env:"HEADLESS"`
	UserAgents        []string `yaml:"user_agents"`
	CookiesPath       string   `yaml:"cookies_path"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	ScreenshotDir     string   `yaml:"screenshot_dir"`

	//Alerts
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:              "8080",
		BaseURL:           "https://www.linkedin.com/jobs/search",
		PageSize:          25,
		FallbackCount:     10,
		CacheTTL:          30 * time.Minute,
		SweepSchedule:     "@every 5m",
		BrowserTimeout:    25 * time.Second,
		RequestTimeout:    55 * time.Second,
		Headless:          true,
		RequestsPerSecond: 1,
	}
}

// Load reads .env, then the YAML file at path, then environment overrides.
// A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Headless: true}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"CACHE_TTL", &c.CacheTTL},
		{"BROWSER_TIMEOUT", &c.BrowserTimeout},
		{"REQUEST_TIMEOUT", &c.RequestTimeout},
	}
	for _, d := range durations {
		raw := os.Getenv(d.name)
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = v
	}

	if headless := os.Getenv("HEADLESS"); headless != "" {
		v, err := strconv.ParseBool(headless)
		if err != nil {
			return fmt.Errorf("invalid HEADLESS: %w", err)
		}
		c.Headless = v
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Port == "" {
		c.Port = def.Port
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.PageSize == 0 {
		c.PageSize = def.PageSize
	}
	if c.FallbackCount == 0 {
		c.FallbackCount = def.FallbackCount
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.SweepSchedule == "" {
		c.SweepSchedule = def.SweepSchedule
	}
	if c.BrowserTimeout == 0 {
		c.BrowserTimeout = def.BrowserTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = def.RequestsPerSecond
	}
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.PageSize < 1 {
		errs = append(errs, errors.New("page_size must be positive"))
	}
	if c.FallbackCount < 0 || c.FallbackCount > c.PageSize {
		errs = append(errs, fmt.Errorf("fallback_count must be between 0 and page_size (%d)", c.PageSize))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("cache_ttl must not be negative"))
	}
	if c.CacheCapacity < 0 {
		errs = append(errs, errors.New("cache_capacity must not be negative"))
	}
	if c.BrowserTimeout <= 0 {
		errs = append(errs, errors.New("browser_timeout must be positive"))
	}
	if c.RequestTimeout < c.BrowserTimeout {
		errs = append(errs, errors.New("request_timeout must not be shorter than browser_timeout"))
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together"))
	}
	return errors.Join(errs...)
}

// AlertsEnabled reports whether degradation alerts should go to Telegram.
func (c *Config) AlertsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
