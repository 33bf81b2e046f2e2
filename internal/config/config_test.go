package config_test

import (
	"testing"
	"time"

	"repo-catalog/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_ORG", "")
	t.Setenv("CACHE_DRIVER", "")
	t.Setenv("MAX_PAGES", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GitHub.Org != "azerothcore" {
		t.Errorf("Org = %v, want azerothcore", cfg.GitHub.Org)
	}
	if cfg.Cache.Key != "azerothcore_repositories_cache" {
		t.Errorf("Cache.Key = %v, want azerothcore_repositories_cache", cfg.Cache.Key)
	}
	if cfg.Cache.Driver != config.CacheDriverFile {
		t.Errorf("Cache.Driver = %v, want file", cfg.Cache.Driver)
	}
	if cfg.GitHub.MaxPages != 50 {
		t.Errorf("MaxPages = %v, want 50", cfg.GitHub.MaxPages)
	}
	if cfg.GitHub.ProgressEstimate != 300 {
		t.Errorf("ProgressEstimate = %v, want 300", cfg.GitHub.ProgressEstimate)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GITHUB_ORG", "golang")
	t.Setenv("GITHUB_API_URL", "http://localhost:9999/")
	t.Setenv("GITHUB_TIMEOUT", "5")
	t.Setenv("CACHE_DRIVER", "MEMORY")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GitHub.Org != "golang" {
		t.Errorf("Org = %v, want golang", cfg.GitHub.Org)
	}
	if cfg.GitHub.APIURL != "http://localhost:9999" {
		t.Errorf("APIURL = %v, want trailing slash trimmed", cfg.GitHub.APIURL)
	}
	if cfg.GitHub.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.GitHub.Timeout)
	}
	if cfg.Cache.Driver != config.CacheDriverMemory {
		t.Errorf("Cache.Driver = %v, want memory", cfg.Cache.Driver)
	}
	if len(cfg.Server.CorsAllowedOrigins) != 2 || cfg.Server.CorsAllowedOrigins[1] != "http://b.test" {
		t.Errorf("CorsAllowedOrigins = %v", cfg.Server.CorsAllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			GitHub: config.GitHubConfig{
				APIURL:           "https://api.github.com",
				Org:              "azerothcore",
				MaxPages:         10,
				ProgressEstimate: 300,
			},
			Cache: config.CacheConfig{Driver: config.CacheDriverFile, Dir: "/tmp", Key: "k"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"missing org", func(c *config.Config) { c.GitHub.Org = "" }, true},
		{"bad api url", func(c *config.Config) { c.GitHub.APIURL = "api.github.com" }, true},
		{"zero max pages", func(c *config.Config) { c.GitHub.MaxPages = 0 }, true},
		{"zero estimate", func(c *config.Config) { c.GitHub.ProgressEstimate = 0 }, true},
		{"missing key", func(c *config.Config) { c.Cache.Key = "" }, true},
		{"postgres without dsn", func(c *config.Config) { c.Cache.Driver = config.CacheDriverPostgres }, true},
		{"postgres with dsn", func(c *config.Config) {
			c.Cache.Driver = config.CacheDriverPostgres
			c.Database.DSN = "postgres://localhost/cache"
		}, false},
		{"unknown driver", func(c *config.Config) { c.Cache.Driver = "redis" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
