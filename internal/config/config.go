package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DrawDateLayout is the layout of Draw.BaseDate and of rendered draw dates
const DrawDateLayout = "2006-01-02"

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Share  ShareConfig
	Draw   DrawConfig
	Log    LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	Mode           string // gin mode: debug, release or test
	// ShutdownTimeout is the grace period in seconds for in-flight requests
	ShutdownTimeout int
}

// Bootstrap holds the process settings needed before config.yaml is located
type Bootstrap struct {
	ConfigPath string
	SkipDotenv bool
}

// ShareConfig holds signing settings for result share tokens
type ShareConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// DrawConfig holds settings for fabricated draws
type DrawConfig struct {
	Seed          int64 // 0 seeds every draw from the clock
	BaseRound     int
	BaseDate      string
	MinTotalPrize int64
	MaxTotalPrize int64
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// ReadBootstrap reads LOTTO_CONFIG_PATH and LOTTO_SKIP_DOTENV
func ReadBootstrap() Bootstrap {
	v := viper.New()
	v.SetDefault("configPath", ".")
	v.SetDefault("skipDotenv", false)
	_ = v.BindEnv("configPath", "LOTTO_CONFIG_PATH")
	_ = v.BindEnv("skipDotenv", "LOTTO_SKIP_DOTENV")

	return Bootstrap{
		ConfigPath: v.GetString("configPath"),
		SkipDotenv: v.GetBool("skipDotenv"),
	}
}

// Load loads configuration from config.yaml (in path or path/config) and
// LOTTO_* environment variables, then validates it
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation. Tools that never sign share tokens use it
// so they do not need a secret.
func Read(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(path + "/config")
	v.SetEnvPrefix("LOTTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("Server.ShutdownTimeout", 5)
	v.SetDefault("Share.Secret", "")
	v.SetDefault("Share.ExpiresIn", 7*24*60*60) // 7 days
	v.SetDefault("Draw.Seed", 0)
	v.SetDefault("Draw.BaseRound", 1100)
	v.SetDefault("Draw.BaseDate", "2023-12-30")
	v.SetDefault("Draw.MinTotalPrize", int64(1_000_000_000))
	v.SetDefault("Draw.MaxTotalPrize", int64(2_000_000_000))
	v.SetDefault("Log.Level", "info")
	v.SetDefault("Log.Format", "json")
}

// Validate checks values that would otherwise fail at request time
func (c *Config) Validate() error {
	if c.Share.Secret == "" {
		return errors.New("Share.Secret is required (set LOTTO_SHARE_SECRET)")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("Server.ShutdownTimeout must be positive, got %d", c.Server.ShutdownTimeout)
	}
	if c.Share.ExpiresIn <= 0 {
		return fmt.Errorf("Share.ExpiresIn must be positive, got %d", c.Share.ExpiresIn)
	}
	if c.Draw.MinTotalPrize < 0 || c.Draw.MaxTotalPrize < c.Draw.MinTotalPrize {
		return fmt.Errorf("invalid total prize bounds [%d, %d]", c.Draw.MinTotalPrize, c.Draw.MaxTotalPrize)
	}
	if c.Draw.BaseRound <= 0 {
		return fmt.Errorf("Draw.BaseRound must be positive, got %d", c.Draw.BaseRound)
	}
	if _, err := c.Draw.BaseDrawDate(); err != nil {
		return fmt.Errorf("invalid Draw.BaseDate %q: %w", c.Draw.BaseDate, err)
	}
	return nil
}

// BaseDrawDate parses BaseDate
func (d DrawConfig) BaseDrawDate() (time.Time, error) {
	return time.Parse(DrawDateLayout, d.BaseDate)
}

// ShutdownGrace is ShutdownTimeout as a duration
func (s ServerConfig) ShutdownGrace() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// ShareTTL is ExpiresIn as a duration
func (s ShareConfig) ShareTTL() time.Duration {
	return time.Duration(s.ExpiresIn) * time.Second
}
