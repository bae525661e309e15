package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Auth struct {
		JWT struct {
			Secret string `mapstructure:"secret"`
		} `mapstructure:"jwt"`
	} `mapstructure:"auth"`
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	writeFile(t, cfgFile, "server:\n  port: 9090\nauth:\n  jwt:\n    secret: from-yaml\n")

	var cfg testConfig
	if err := Load("storefront", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Auth.JWT.Secret != "from-yaml" {
		t.Errorf("expected secret from-yaml, got %q", cfg.Auth.JWT.Secret)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	writeFile(t, cfgFile, "auth:\n  jwt:\n    secret: from-yaml\n")

	t.Setenv("AUTH_JWT_SECRET", "from-env")

	var cfg testConfig
	if err := Load("storefront", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWT.Secret != "from-env" {
		t.Errorf("expected env to win, got %q", cfg.Auth.JWT.Secret)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "AUTH_JWT_SECRET=from-dotenv\n")

	var cfg testConfig
	if err := Load("storefront", &cfg, WithEnvFile(envFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWT.Secret != "from-dotenv" {
		t.Errorf("expected secret from-dotenv, got %q", cfg.Auth.JWT.Secret)
	}
}

func TestLoad_MissingFilesIsNotAnError(t *testing.T) {
	var cfg testConfig
	if err := Load("no-such-service", &cfg); err != nil {
		t.Fatalf("Load without files should succeed, got: %v", err)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("AUTH_JWT_SECRET")
	want := map[string]bool{
		"auth_jwt_secret": false,
		"auth.jwt.secret": false,
		"auth.jwt_secret": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("expected variant %q in %v", key, variants)
		}
	}
}
