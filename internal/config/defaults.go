package config

import "time"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:        ":389",
			TLSAddress:     ":636",
			MaxConnections: 10000,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
		Storage: StorageConfig{
			DataDir:            "/var/lib/oba",
			PageSize:           4096,
			BufferPoolSize:     "256MB",
			CheckpointInterval: 5 * time.Minute,
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Security: SecurityConfig{
			PasswordPolicy: PasswordPolicyConfig{
				Enabled:          false,
				MinLength:        8,
				RequireUppercase: true,
				RequireLowercase: true,
				RequireDigit:     true,
			},
			RateLimit: RateLimitConfig{
				Enabled:         false,
				MaxAttempts:     5,
				LockoutDuration: 15 * time.Minute,
			},
		},
	}
}
