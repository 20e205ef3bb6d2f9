package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("HARVESTER_SERVER_PORT")
		os.Unsetenv("HARVESTER_SERVER_ENVIRONMENT")
		os.Unsetenv("HARVESTER_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("HARVESTER_CSE_API_KEY")
		os.Unsetenv("HARVESTER_CSE_CX")
		os.Unsetenv("HARVESTER_CSE_BASE_URL")
		os.Unsetenv("HARVESTER_FETCH_TIMEOUT")
		os.Unsetenv("HARVESTER_FETCH_USER_AGENT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.CSE.BaseURL != "https://www.googleapis.com/customsearch/v1" {
			t.Errorf("CSE.BaseURL = %s, want https://www.googleapis.com/customsearch/v1", cfg.CSE.BaseURL)
		}
		if cfg.Fetch.Timeout != 10*time.Second {
			t.Errorf("Fetch.Timeout = %v, want 10s", cfg.Fetch.Timeout)
		}
		if cfg.Fetch.UserAgent == "" {
			t.Error("Fetch.UserAgent is empty, want browser-like default")
		}
	})

	t.Run("missing CSE credentials is not an error", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.CSE.APIKey != "" {
			t.Errorf("CSE.APIKey = %s, want empty", cfg.CSE.APIKey)
		}
		if cfg.CSE.CX != "" {
			t.Errorf("CSE.CX = %s, want empty", cfg.CSE.CX)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HARVESTER_SERVER_PORT", "9090")
		os.Setenv("HARVESTER_SERVER_ENVIRONMENT", "production")
		os.Setenv("HARVESTER_CSE_API_KEY", "custom-api-key")
		os.Setenv("HARVESTER_CSE_CX", "custom-cx")
		os.Setenv("HARVESTER_CSE_BASE_URL", "https://custom.api.com")
		os.Setenv("HARVESTER_FETCH_TIMEOUT", "5s")
		os.Setenv("HARVESTER_FETCH_USER_AGENT", "test-agent/1.0")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.CSE.APIKey != "custom-api-key" {
			t.Errorf("CSE.APIKey = %s, want custom-api-key", cfg.CSE.APIKey)
		}
		if cfg.CSE.CX != "custom-cx" {
			t.Errorf("CSE.CX = %s, want custom-cx", cfg.CSE.CX)
		}
		if cfg.CSE.BaseURL != "https://custom.api.com" {
			t.Errorf("CSE.BaseURL = %s, want https://custom.api.com", cfg.CSE.BaseURL)
		}
		if cfg.Fetch.Timeout != 5*time.Second {
			t.Errorf("Fetch.Timeout = %v, want 5s", cfg.Fetch.Timeout)
		}
		if cfg.Fetch.UserAgent != "test-agent/1.0" {
			t.Errorf("Fetch.UserAgent = %s, want test-agent/1.0", cfg.Fetch.UserAgent)
		}
	})

	t.Run("rejects non-positive fetch timeout", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HARVESTER_FETCH_TIMEOUT", "0s")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want invalid configuration error")
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			CSE:    CSEConfig{BaseURL: "https://www.googleapis.com/customsearch/v1"},
			Fetch: FetchConfig{
				Timeout:   10 * time.Second,
				UserAgent: "test-agent/1.0",
			},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("empty port fails", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("empty CSE base URL fails", func(t *testing.T) {
		cfg := base()
		cfg.CSE.BaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("empty user agent fails", func(t *testing.T) {
		cfg := base()
		cfg.Fetch.UserAgent = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
