package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"addr: ':9090'\nlog_level: debug\nstore_path: /tmp/m.json\n",
		"pg:\n  host: localhost\n  port: 5432\n  user: u\n  password: p\n  dbname: medinsure\n")

	cfg := MustLoad(dir)

	if cfg.Public.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Public.Addr)
	}
	if cfg.Public.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.Public.LogLevel)
	}
	if !cfg.Private.Pg.Enabled() {
		t.Error("pg should be enabled when host is set")
	}
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfigs(t, "log_json: true\n", "pg: {}\n")

	cfg := MustLoad(dir)

	if cfg.Public.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.Public.Addr)
	}
	if cfg.Public.StorePath == "" {
		t.Error("store_path default missing")
	}
	if cfg.Private.Pg.Enabled() {
		t.Error("pg should be disabled without a host")
	}
}

func TestMustLoad_MissingFilePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config folder, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
