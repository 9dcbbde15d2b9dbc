package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns every problem
// found; an empty slice means the configuration is usable.
func ValidateConfig(config *Config) []error {
	var errs []error
	errs = append(errs, validateServerConfig(&config.Server)...)
	errs = append(errs, validateDirectoryConfig(&config.Directory)...)
	errs = append(errs, validateStorageConfig(&config.Storage)...)
	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateSecurityConfig(&config.Security)...)
	if config.ACLFile != "" && !filepath.IsAbs(config.ACLFile) {
		errs = append(errs, ValidationError{Field: "acl_file", Message: "must be an absolute path"})
	}
	return errs
}

func validateServerConfig(config *ServerConfig) []error {
	var errs []error

	if config.Address != "" {
		if err := validateAddress(config.Address); err != nil {
			errs = append(errs, ValidationError{Field: "server.address", Message: err.Error()})
		}
	}
	if config.TLSAddress != "" {
		if err := validateAddress(config.TLSAddress); err != nil {
			errs = append(errs, ValidationError{Field: "server.tlsAddress", Message: err.Error()})
		}
	}
	if config.TLSCert != "" || config.TLSKey != "" {
		if config.TLSCert == "" {
			errs = append(errs, ValidationError{Field: "server.tlsCert", Message: "required when tlsKey is set"})
		}
		if config.TLSKey == "" {
			errs = append(errs, ValidationError{Field: "server.tlsKey", Message: "required when tlsCert is set"})
		}
	}
	if config.MaxConnections < 0 {
		errs = append(errs, ValidationError{Field: "server.maxConnections", Message: "must be non-negative"})
	}
	if config.ReadTimeout < 0 {
		errs = append(errs, ValidationError{Field: "server.readTimeout", Message: "must be non-negative"})
	}
	if config.WriteTimeout < 0 {
		errs = append(errs, ValidationError{Field: "server.writeTimeout", Message: "must be non-negative"})
	}
	return errs
}

func validateDirectoryConfig(config *DirectoryConfig) []error {
	var errs []error
	if config.BaseDN != "" {
		if err := validateDN(config.BaseDN); err != nil {
			errs = append(errs, ValidationError{Field: "directory.baseDN", Message: err.Error()})
		}
	}
	if config.RootDN != "" {
		if err := validateDN(config.RootDN); err != nil {
			errs = append(errs, ValidationError{Field: "directory.rootDN", Message: err.Error()})
		}
	}
	return errs
}

func validateStorageConfig(config *StorageConfig) []error {
	var errs []error

	if config.DataDir == "" {
		errs = append(errs, ValidationError{Field: "storage.dataDir", Message: "is required"})
	} else if !filepath.IsAbs(config.DataDir) {
		errs = append(errs, ValidationError{Field: "storage.dataDir", Message: "must be an absolute path"})
	}
	if config.WALDir != "" && !filepath.IsAbs(config.WALDir) {
		errs = append(errs, ValidationError{Field: "storage.walDir", Message: "must be an absolute path"})
	}

	validPageSizes := map[int]bool{4096: true, 8192: true, 16384: true, 32768: true}
	if config.PageSize != 0 && !validPageSizes[config.PageSize] {
		errs = append(errs, ValidationError{Field: "storage.pageSize", Message: "must be 4096, 8192, 16384, or 32768"})
	}
	if config.BufferPoolSize != "" {
		if _, err := parseSize(config.BufferPoolSize); err != nil {
			errs = append(errs, ValidationError{Field: "storage.bufferPoolSize", Message: err.Error()})
		}
	}
	if config.CheckpointInterval < 0 {
		errs = append(errs, ValidationError{Field: "storage.checkpointInterval", Message: "must be non-negative"})
	}
	return errs
}

func validateLogConfig(config *LogConfig) []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{Field: "logging.level", Message: "must be debug, info, warn, or error"})
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{Field: "logging.format", Message: "must be text or json"})
	}
	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		if !filepath.IsAbs(config.Output) {
			errs = append(errs, ValidationError{Field: "logging.output", Message: "must be stdout, stderr, or an absolute file path"})
		} else if dir := filepath.Dir(config.Output); dirMissing(dir) {
			errs = append(errs, ValidationError{Field: "logging.output", Message: fmt.Sprintf("directory %s does not exist", dir)})
		}
	}
	return errs
}

func dirMissing(dir string) bool {
	_, err := os.Stat(dir)
	return os.IsNotExist(err)
}

func validateSecurityConfig(config *SecurityConfig) []error {
	var errs []error
	errs = append(errs, validatePasswordPolicyConfig(&config.PasswordPolicy)...)
	errs = append(errs, validateRateLimitConfig(&config.RateLimit)...)
	return errs
}

func validatePasswordPolicyConfig(config *PasswordPolicyConfig) []error {
	var errs []error
	if config.Enabled {
		if config.MinLength < 1 {
			errs = append(errs, ValidationError{Field: "security.passwordPolicy.minLength", Message: "must be at least 1 when enabled"})
		}
		if config.HistoryCount < 0 {
			errs = append(errs, ValidationError{Field: "security.passwordPolicy.historyCount", Message: "must be non-negative"})
		}
		if config.MaxAge < 0 {
			errs = append(errs, ValidationError{Field: "security.passwordPolicy.maxAge", Message: "must be non-negative"})
		}
	}
	return errs
}

func validateRateLimitConfig(config *RateLimitConfig) []error {
	var errs []error
	if config.Enabled {
		if config.MaxAttempts < 1 {
			errs = append(errs, ValidationError{Field: "security.rateLimit.maxAttempts", Message: "must be at least 1 when enabled"})
		}
		if config.LockoutDuration <= 0 {
			errs = append(errs, ValidationError{Field: "security.rateLimit.lockoutDuration", Message: "must be positive when enabled"})
		}
	}
	return errs
}

func validateAddress(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address format: %v", err)
	}
	if port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}

func validateDN(dn string) error {
	if dn == "" {
		return nil
	}
	for _, part := range strings.Split(dn, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, "=") {
			return fmt.Errorf("invalid RDN format: %s", part)
		}
	}
	return nil
}

func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, nil
	}

	multipliers := []struct {
		suffix string
		mult   int64
	}{
		{"TB", 1024 * 1024 * 1024 * 1024},
		{"GB", 1024 * 1024 * 1024},
		{"MB", 1024 * 1024},
		{"KB", 1024},
		{"B", 1},
	}
	for _, m := range multipliers {
		if strings.HasSuffix(s, m.suffix) {
			numStr := strings.TrimSuffix(s, m.suffix)
			var num int64
			if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
				return 0, fmt.Errorf("invalid size format: %s", s)
			}
			return num * m.mult, nil
		}
	}

	var num int64
	if _, err := fmt.Sscanf(s, "%d", &num); err != nil {
		return 0, fmt.Errorf("invalid size format: %s", s)
	}
	return num, nil
}
