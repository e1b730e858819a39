package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 0},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{}},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_NegativeDB(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}, DB: -1},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative database index")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("read timeout default = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("write timeout default = %d, want 10", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("readiness timeout default = %d, want 10", cfg.Database.ReadinessTimeout)
	}
}

func TestCheckCleanupAfter(t *testing.T) {
	data := []byte("check:\n  cleanup_after: true\n")

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !cfg.Check.CleanupAfter {
		t.Error("cleanup_after not parsed")
	}

	// Flushing must be opt-in
	if (Config{}).Check.CleanupAfter {
		t.Error("cleanup_after must default to false")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("KEYCHECK_TEST_PASSWORD", "s3cret")

	in := []byte("password: ${KEYCHECK_TEST_PASSWORD}\nport: ${KEYCHECK_TEST_PORT:-8080}\n")
	out := string(expandEnvVars(in))

	want := "password: s3cret\nport: 8080\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
