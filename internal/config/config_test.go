package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("APP_TMDB_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.TMDB.BaseURL != DefaultTMDBBaseURL {
		t.Errorf("Expected base URL %q, got %q", DefaultTMDBBaseURL, cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.ImageBaseURL != DefaultTMDBImageBaseURL {
		t.Errorf("Expected image base URL %q, got %q", DefaultTMDBImageBaseURL, cfg.TMDB.ImageBaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("Expected language en-US, got %q", cfg.TMDB.Language)
	}
	if cfg.SiteName != "Project Movies" {
		t.Errorf("Expected site name 'Project Movies', got %q", cfg.SiteName)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.ClientTimeout != "" {
		t.Errorf("Expected no client timeout by default, got %q", cfg.ClientTimeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected default user agent, got %q", cfg.UserAgent)
	}
	if !errors.Is(cfg.Validate(), ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey without a key, got %v", cfg.Validate())
	}
}

func TestLoadConfig_APIKeyFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_TMDB_API_KEY", "")
	t.Setenv("TMDB_API_KEY", "secret-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TMDB.APIKey != "secret-key" {
		t.Errorf("Expected API key from TMDB_API_KEY, got %q", cfg.TMDB.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("APP_TMDB_API_KEY", "")
	t.Setenv("TMDB_API_KEY", "")
	os.Unsetenv("TMDB_API_KEY")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TMDB_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TMDB.APIKey != "from-dotenv" {
		t.Errorf("Expected API key from .env, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("APP_TMDB_API_KEY", "")

	yaml := `
tmdb:
  api_key: yaml-key
  base_url: http://localhost:8081/
  language: fr-fr
site_name: My Movies
server:
  port: 8080
metrics:
  enabled: true
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("Failed to write config.yaml: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TMDB.APIKey != "yaml-key" {
		t.Errorf("Expected API key 'yaml-key', got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "http://localhost:8081" {
		t.Errorf("Expected trailing slash to be trimmed, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "fr-FR" {
		t.Errorf("Expected normalized language fr-FR, got %q", cfg.TMDB.Language)
	}
	if cfg.SiteName != "My Movies" {
		t.Errorf("Expected site name 'My Movies', got %q", cfg.SiteName)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Expected metrics to be enabled")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en-US"},
		{"en-US", "en-US"},
		{"en-us", "en-US"},
		{"pt-br", "pt-BR"},
		{"de", "de"},
		{"not a tag!", "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeLanguage(tt.in); got != tt.want {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_HandBuiltConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.TMDB.BaseURL != DefaultTMDBBaseURL {
		t.Errorf("Expected base URL default, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.SiteName != DefaultSiteName {
		t.Errorf("Expected site name default, got %q", cfg.SiteName)
	}
	if cfg.TMDB.Language != DefaultLanguage {
		t.Errorf("Expected language default, got %q", cfg.TMDB.Language)
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "site.log")
	var console strings.Builder

	l := newLogger(&console, logFile)
	l.Info().Str("component", "test").Msg("hello file")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Expected log file to be written: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello file"`) {
		t.Errorf("Expected JSON log line in file, got %q", string(data))
	}
	if !strings.Contains(console.String(), "hello file") {
		t.Errorf("Expected console output to contain message, got %q", console.String())
	}
}

func TestGetUserAgent(t *testing.T) {
	saved := globalConfig
	t.Cleanup(func() { globalConfig = saved })

	globalConfig = nil
	if got := GetUserAgent(); got != DefaultUserAgent {
		t.Errorf("Expected default user agent without config, got %q", got)
	}

	globalConfig = &Config{UserAgent: "custom/1.0"}
	if got := GetUserAgent(); got != "custom/1.0" {
		t.Errorf("Expected configured user agent, got %q", got)
	}
}
