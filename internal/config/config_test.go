package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oba.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Address != ":389" {
		t.Errorf("expected default address ':389', got %q", cfg.Server.Address)
	}
	if cfg.Storage.PageSize != 4096 {
		t.Errorf("expected default page size 4096, got %d", cfg.Storage.PageSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.Logging.Level)
	}
	if errs := ValidateConfig(cfg); len(errs) != 0 {
		t.Errorf("expected default config to validate cleanly, got %v", errs)
	}
}

func TestLoadFullConfig(t *testing.T) {
	content := `
server {
    address        = 0.0.0.0:1389
    tlsAddress     = 0.0.0.0:1636
    maxConnections = 500
    readTimeout    = 10s
    writeTimeout   = 10s
}

directory {
    baseDN = dc=example,dc=com
    rootDN = cn=admin,dc=example,dc=com
}

storage {
    dataDir            = /var/lib/oba-test
    pageSize           = 8192
    bufferPoolSize     = 128MB
    checkpointInterval = 1m
}

logging {
    level  = debug
    format = text
    output = stdout
}

security {
    passwordPolicy {
        enabled          = yes
        minLength        = 12
        requireUppercase = yes
        requireSpecial   = yes
    }
    rateLimit {
        enabled         = yes
        maxAttempts     = 3
        lockoutDuration = 5m
    }
}

acl_file = /etc/oba/acl.conf
`
	path := writeConf(t, content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Address != "0.0.0.0:1389" {
		t.Errorf("address = %q", cfg.Server.Address)
	}
	if cfg.Server.MaxConnections != 500 {
		t.Errorf("maxConnections = %d", cfg.Server.MaxConnections)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("readTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Storage.PageSize != 8192 {
		t.Errorf("pageSize = %d", cfg.Storage.PageSize)
	}
	if cfg.Storage.CheckpointInterval != time.Minute {
		t.Errorf("checkpointInterval = %v", cfg.Storage.CheckpointInterval)
	}
	if !cfg.Security.PasswordPolicy.Enabled || cfg.Security.PasswordPolicy.MinLength != 12 {
		t.Errorf("passwordPolicy = %+v", cfg.Security.PasswordPolicy)
	}
	if !cfg.Security.RateLimit.Enabled || cfg.Security.RateLimit.MaxAttempts != 3 {
		t.Errorf("rateLimit = %+v", cfg.Security.RateLimit)
	}
	if cfg.ACLFile != "/etc/oba/acl.conf" {
		t.Errorf("aclFile = %q", cfg.ACLFile)
	}
}

func TestLoadSectionTargetsSubtree(t *testing.T) {
	content := `
server {
    address = :389
}

security {
    passwordPolicy {
        enabled   = yes
        minLength = 10
    }
    rateLimit {
        enabled = no
    }
}
`
	path := writeConf(t, content)

	cfg, err := LoadSection(path, "security/passwordPolicy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Security.PasswordPolicy.Enabled || cfg.Security.PasswordPolicy.MinLength != 10 {
		t.Errorf("passwordPolicy = %+v", cfg.Security.PasswordPolicy)
	}
	// Server was never dispatched under this selector, so it still holds
	// whatever DefaultConfig seeded it with.
	if cfg.Server.Address != DefaultConfig().Server.Address {
		t.Errorf("expected server.address untouched by the selector, got %q", cfg.Server.Address)
	}
}

func TestLoadUnknownSectionIsError(t *testing.T) {
	path := writeConf(t, "bogus {\n}\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unrecognized top-level section")
	}
}

func TestLoadUnknownKeyIsError(t *testing.T) {
	path := writeConf(t, "server {\n    bogus = yes\n}\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unrecognized key")
	}
}

func TestLoadEnvSubstitution(t *testing.T) {
	t.Setenv("OBA_TEST_ROOT_PASSWORD", "s3cret")
	path := writeConf(t, "directory {\n    rootPassword = $ENV:OBA_TEST_ROOT_PASSWORD\n}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Directory.RootPassword != "s3cret" {
		t.Errorf("rootPassword = %q, want s3cret", cfg.Directory.RootPassword)
	}
}

func TestValidateConfigCatchesBadAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Address = "not-an-address"

	errs := ValidateConfig(cfg)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a malformed address")
	}
}

func TestValidateConfigCatchesRelativeDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = "relative/path"

	errs := ValidateConfig(cfg)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a relative dataDir")
	}
}

func TestManagerReload(t *testing.T) {
	path := writeConf(t, "server {\n    maxConnections = 100\n}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mgr := NewManager(cfg, path, nil)

	if mgr.Current().Server.MaxConnections != 100 {
		t.Fatalf("expected initial maxConnections 100, got %d", mgr.Current().Server.MaxConnections)
	}

	if err := os.WriteFile(path, []byte("server {\n    maxConnections = 250\n}\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	if err := mgr.Reload(); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	if mgr.Current().Server.MaxConnections != 250 {
		t.Errorf("expected reloaded maxConnections 250, got %d", mgr.Current().Server.MaxConnections)
	}
}

func TestManagerOnChangeFiresOnReload(t *testing.T) {
	path := writeConf(t, "server {\n    maxConnections = 100\n}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mgr := NewManager(cfg, path, nil)

	done := make(chan *Config, 1)
	mgr.OnChange(func(old, new *Config) {
		done <- new
	})

	if err := os.WriteFile(path, []byte("server {\n    maxConnections = 300\n}\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	if err := mgr.Reload(); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}

	select {
	case newCfg := <-done:
		if newCfg.Server.MaxConnections != 300 {
			t.Errorf("expected 300, got %d", newCfg.Server.MaxConnections)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for OnChange callback")
	}
}

func TestManagerReloadWithoutPathFails(t *testing.T) {
	mgr := NewManager(DefaultConfig(), "", nil)
	if err := mgr.Reload(); err == nil {
		t.Fatal("expected an error reloading a Manager with no backing file")
	}
}

func TestConfigWatcherDetectsChange(t *testing.T) {
	path := writeConf(t, "server {\n    maxConnections = 1\n}\n")

	changed := make(chan *Config, 1)
	w, err := NewConfigWatcher(path, 50*time.Millisecond, nil, func(cfg *Config) {
		changed <- cfg
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Start()
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("server {\n    maxConnections = 2\n}\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-changed:
		if cfg.Server.MaxConnections != 2 {
			t.Errorf("expected 2, got %d", cfg.Server.MaxConnections)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher to detect change")
	}
}
