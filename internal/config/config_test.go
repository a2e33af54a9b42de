package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("LOTTO_SHARE_SECRET", "env-secret")
	t.Setenv("LOTTO_SERVER_PORT", "9000")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Server.Port)
	}
	if cfg.Share.Secret != "env-secret" {
		t.Errorf("expected secret from env, got %q", cfg.Share.Secret)
	}
	if cfg.Draw.BaseRound != 1100 {
		t.Errorf("expected base round 1100, got %d", cfg.Draw.BaseRound)
	}
	if cfg.Draw.MinTotalPrize != 1_000_000_000 || cfg.Draw.MaxTotalPrize != 2_000_000_000 {
		t.Errorf("unexpected prize bounds [%d, %d]", cfg.Draw.MinTotalPrize, cfg.Draw.MaxTotalPrize)
	}
	if cfg.Share.ShareTTL() != 7*24*time.Hour {
		t.Errorf("expected 7 day TTL, got %s", cfg.Share.ShareTTL())
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "8081"
  allowedOrigins: ["https://lotto.example"]
share:
  secret: file-secret
draw:
  seed: 42
  baseRound: 1000
  baseDate: "2022-01-29"
log:
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "8081" {
		t.Errorf("expected port 8081, got %s", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://lotto.example" {
		t.Errorf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Draw.Seed != 42 || cfg.Draw.BaseRound != 1000 {
		t.Errorf("unexpected draw config %+v", cfg.Draw)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected an error without a share secret")
	}
}

func TestRead_SkipsValidation(t *testing.T) {
	t.Setenv("LOTTO_SHARE_SECRET", "")

	cfg, err := Read(t.TempDir())
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if cfg.Share.Secret != "" {
		t.Errorf("expected empty secret, got %q", cfg.Share.Secret)
	}
	if cfg.Draw.BaseDate != "2023-12-30" {
		t.Errorf("expected default base date, got %q", cfg.Draw.BaseDate)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{ShutdownTimeout: 5},
			Share:  ShareConfig{Secret: "s", ExpiresIn: 60},
			Draw: DrawConfig{
				BaseRound:     1100,
				BaseDate:      "2023-12-30",
				MinTotalPrize: 10,
				MaxTotalPrize: 20,
			},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"equal bounds", func(c *Config) { c.Draw.MaxTotalPrize = 10 }, false},
		{"inverted bounds", func(c *Config) { c.Draw.MaxTotalPrize = 5 }, true},
		{"bad date", func(c *Config) { c.Draw.BaseDate = "30/12/2023" }, true},
		{"zero ttl", func(c *Config) { c.Share.ExpiresIn = 0 }, true},
		{"zero base round", func(c *Config) { c.Draw.BaseRound = 0 }, true},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestReadBootstrap(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LOTTO_CONFIG_PATH", "")
		t.Setenv("LOTTO_SKIP_DOTENV", "")

		got := ReadBootstrap()
		if got.ConfigPath != "." || got.SkipDotenv {
			t.Errorf("unexpected bootstrap %+v", got)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("LOTTO_CONFIG_PATH", "/etc/lotto")
		t.Setenv("LOTTO_SKIP_DOTENV", "true")

		got := ReadBootstrap()
		if got.ConfigPath != "/etc/lotto" || !got.SkipDotenv {
			t.Errorf("unexpected bootstrap %+v", got)
		}
	})
}

func TestLoad_ShutdownTimeout(t *testing.T) {
	t.Setenv("LOTTO_SHARE_SECRET", "env-secret")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.ShutdownGrace() != 5*time.Second {
		t.Errorf("expected 5s default, got %s", cfg.Server.ShutdownGrace())
	}

	t.Setenv("LOTTO_SERVER_SHUTDOWNTIMEOUT", "30")
	cfg, err = Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.ShutdownGrace() != 30*time.Second {
		t.Errorf("expected 30s from env, got %s", cfg.Server.ShutdownGrace())
	}
}
