package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Storage.Path != "rolodex.json" {
		t.Errorf("default storage path = %q, want %q", cfg.Storage.Path, "rolodex.json")
	}
	if cfg.Session.PageSize != 5 {
		t.Errorf("default page size = %d, want 5", cfg.Session.PageSize)
	}
}

func TestLoadLayered_ValidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
storage:
  path: /tmp/contacts.json
session:
  page_size: 10
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(cfgPath)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.Storage.Path != "/tmp/contacts.json" {
		t.Errorf("storage path = %q, want %q", cfg.Storage.Path, "/tmp/contacts.json")
	}
	if cfg.Session.PageSize != 10 {
		t.Errorf("page size = %d, want 10", cfg.Session.PageSize)
	}
}

func TestLoadLayered_MissingFilesReturnDefaults(t *testing.T) {
	cfg, err := LoadLayered("/nonexistent/rolodex.yaml")
	if err != nil {
		t.Fatalf("LoadLayered() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("LoadLayered(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadLayered_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte("{{invalid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLayered(cfgPath); err == nil {
		t.Fatal("LoadLayered(invalid YAML) should return error")
	}
}

func TestLoadLayered_UnknownFieldsRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
storage:
  location: /tmp/contacts.json
`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLayered(cfgPath); err == nil {
		t.Fatal("LoadLayered(unknown field) should return error")
	}
}

func TestLoadLayered_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
session:
  page_size: 3
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(cfgPath)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.Session.PageSize != 3 {
		t.Errorf("page size = %d, want 3", cfg.Session.PageSize)
	}
	// Unset fields should retain defaults.
	if cfg.Storage.Path != "rolodex.json" {
		t.Errorf("storage path = %q, want default %q", cfg.Storage.Path, "rolodex.json")
	}
}

func TestLoadLayered_LaterLayersWin(t *testing.T) {
	userDir := t.TempDir()
	projectDir := t.TempDir()

	userCfg := filepath.Join(userDir, "rolodex.yaml")
	if err := os.WriteFile(userCfg, []byte(`
storage:
  path: /home/user/contacts.json
session:
  page_size: 20
`), 0o644); err != nil {
		t.Fatal(err)
	}

	projectCfg := filepath.Join(projectDir, "rolodex.yaml")
	if err := os.WriteFile(projectCfg, []byte(`
storage:
  path: ./project.json
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Project layer overrides path; user layer's page size survives.
	if cfg.Storage.Path != "./project.json" {
		t.Errorf("storage path = %q, want %q", cfg.Storage.Path, "./project.json")
	}
	if cfg.Session.PageSize != 20 {
		t.Errorf("page size = %d, want 20", cfg.Session.PageSize)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLODEX_STORE_PATH", "/tmp/env.json")
	t.Setenv("ROLODEX_PAGE_SIZE", "7")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Storage.Path != "/tmp/env.json" {
		t.Errorf("storage path = %q, want %q", cfg.Storage.Path, "/tmp/env.json")
	}
	if cfg.Session.PageSize != 7 {
		t.Errorf("page size = %d, want 7", cfg.Session.PageSize)
	}
}

func TestApplyEnv_InvalidPageSize(t *testing.T) {
	t.Setenv("ROLODEX_PAGE_SIZE", "lots")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Fatal("ApplyEnv() error = nil, want parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}, wantErr: false},
		{name: "empty path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.Session.PageSize = 0 }, wantErr: true},
		{name: "negative page size", mutate: func(c *Config) { c.Session.PageSize = -2 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
