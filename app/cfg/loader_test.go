package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"GRANTS_FILE", "IMPORT_PROFILE", "DATASTORE", "SUPABASE_URL",
		"SUPABASE_SERVICE_ROLE_KEY", "DATABASE_URL", "USER_AGENT",
		"HTTP_TIMEOUT", "LOG_FILE", "ENV_FILE", "DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadArgsRESTDatastore(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "missing.env")

	cfg, err := LoadArgs([]string{
		"--env-file", envFile,
		"--supabase-url", "https://project.supabase.co",
		"--supabase-key", "service-key",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Datastore != DatastoreREST {
		t.Errorf("Expected datastore '%s', got '%s'", DatastoreREST, cfg.Datastore)
	}
	if cfg.SupabaseURL != "https://project.supabase.co" {
		t.Errorf("Expected supabase URL 'https://project.supabase.co', got '%s'", cfg.SupabaseURL)
	}
	if cfg.UserAgent != "Grants Import/1.0" {
		t.Errorf("Expected default user agent, got '%s'", cfg.UserAgent)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("Expected no HTTP timeout by default, got %d", cfg.HTTPTimeout)
	}
	if !cfg.RemoteMode() {
		t.Error("Expected remote mode when no file is given")
	}
	if Get() != cfg {
		t.Error("Expected Get to return the loaded configuration")
	}
}

func TestLoadArgsFromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "import.env")
	content := "SUPABASE_URL=https://env.supabase.co\nSUPABASE_SERVICE_ROLE_KEY=env-key\nGRANTS_FILE=./extract.xml\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SUPABASE_URL")
		os.Unsetenv("SUPABASE_SERVICE_ROLE_KEY")
		os.Unsetenv("GRANTS_FILE")
	})

	cfg, err := LoadArgs([]string{"--env-file=" + envFile})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.SupabaseURL != "https://env.supabase.co" {
		t.Errorf("Expected supabase URL from env file, got '%s'", cfg.SupabaseURL)
	}
	if cfg.SupabaseKey != "env-key" {
		t.Errorf("Expected supabase key from env file, got '%s'", cfg.SupabaseKey)
	}
	if cfg.File != "./extract.xml" {
		t.Errorf("Expected file './extract.xml', got '%s'", cfg.File)
	}
	if cfg.RemoteMode() {
		t.Error("Expected file mode when a file is given")
	}
}

func TestLoadArgsValidation(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "missing.env")

	tests := []struct {
		name string
		args []string
	}{
		{"rest without url", []string{"--supabase-key", "key"}},
		{"rest without key", []string{"--supabase-url", "https://project.supabase.co"}},
		{"sqlite without dsn", []string{"--datastore", "sqlite"}},
		{"postgres without dsn", []string{"--datastore", "postgres"}},
		{"unknown datastore", []string{"--datastore", "mongo", "--dsn", "x"}},
		{"negative timeout", []string{"--datastore", "sqlite", "--dsn", "grants.db", "--http-timeout", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			args := append([]string{"--env-file", envFile}, tt.args...)
			if _, err := LoadArgs(args); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadArgsSQLiteDatastore(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "missing.env")

	cfg, err := LoadArgs([]string{
		"--env-file", envFile,
		"--datastore", "sqlite",
		"--dsn", "grants.db",
		"--file", "extract.xml",
		"--debug",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Datastore != DatastoreSQLite {
		t.Errorf("Expected datastore '%s', got '%s'", DatastoreSQLite, cfg.Datastore)
	}
	if cfg.DSN != "grants.db" {
		t.Errorf("Expected DSN 'grants.db', got '%s'", cfg.DSN)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
