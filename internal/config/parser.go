package config

import (
	"fmt"
	"time"

	"github.com/KilimcininKorOglu/oba/internal/confparse"
)

// Load reads a settings file at path into a Config seeded from
// DefaultConfig, using confparse.Parse over the whole tree (no selector).
func Load(path string) (*Config, error) {
	return LoadSection(path, "")
}

// LoadSection reads a settings file at path, restricting the parse to the
// path-addressed selector (e.g. "security/passwordPolicy"); pass "" for the
// whole file. See spec on confparse.Parse for selector semantics.
func LoadSection(path, selector string) (*Config, error) {
	cfg := DefaultConfig()

	p := &parser{cfg: cfg}
	cb := confparse.Callbacks{
		KeyValue: p.keyValue,
		Section:  p.section,
		Close:    p.close,
	}

	if err := confparse.Parse(path, selector, cb, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parser tracks which section (and, for security, which subsection) is
// currently open so KeyValue can be routed to the right struct.
type parser struct {
	cfg   *Config
	stack []string
}

func (p *parser) top() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) section(typ, name string) (bool, error) {
	switch p.top() {
	case "":
		switch typ {
		case "server", "directory", "storage", "logging", "security":
			p.stack = append(p.stack, typ)
			return true, nil
		default:
			return false, fmt.Errorf("Unknown section: %s", typ)
		}
	case "security":
		switch typ {
		case "passwordPolicy", "rateLimit":
			p.stack = append(p.stack, typ)
			return true, nil
		default:
			return false, fmt.Errorf("Unknown section: %s", typ)
		}
	default:
		return false, fmt.Errorf("Unknown section: %s", typ)
	}
}

func (p *parser) close() error {
	if len(p.stack) == 0 {
		return nil
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) keyValue(key, value string) error {
	switch p.top() {
	case "":
		if key != "acl_file" {
			return fmt.Errorf("Unknown setting: %s", key)
		}
		p.cfg.ACLFile = value
		return nil
	case "server":
		return applyServerSetting(&p.cfg.Server, key, value)
	case "directory":
		return applyDirectorySetting(&p.cfg.Directory, key, value)
	case "storage":
		return applyStorageSetting(&p.cfg.Storage, key, value)
	case "logging":
		return applyLogSetting(&p.cfg.Logging, key, value)
	case "passwordPolicy":
		return applyPasswordPolicySetting(&p.cfg.Security.PasswordPolicy, key, value)
	case "rateLimit":
		return applyRateLimitSetting(&p.cfg.Security.RateLimit, key, value)
	default:
		return fmt.Errorf("Unknown setting: %s", key)
	}
}

func hasSetting(defs []confparse.SettingDef, key string) bool {
	for _, d := range defs {
		if d.Name == key {
			return true
		}
	}
	return false
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("Invalid duration for %s: %s", key, value)
	}
	return d, nil
}

func applyServerSetting(s *ServerConfig, key, value string) error {
	defs := []confparse.SettingDef{
		confparse.StringSetting("address", &s.Address),
		confparse.StringSetting("tlsAddress", &s.TLSAddress),
		confparse.StringSetting("tlsCert", &s.TLSCert),
		confparse.StringSetting("tlsKey", &s.TLSKey),
	}
	if hasSetting(defs, key) {
		return confparse.ApplySetting(defs, key, value)
	}
	switch key {
	case "maxConnections":
		n, err := confparse.ParseUint(value)
		if err != nil {
			return err
		}
		s.MaxConnections = int(n)
		return nil
	case "readTimeout":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		s.ReadTimeout = d
		return nil
	case "writeTimeout":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		s.WriteTimeout = d
		return nil
	default:
		return fmt.Errorf("Unknown setting: %s", key)
	}
}

func applyDirectorySetting(d *DirectoryConfig, key, value string) error {
	defs := []confparse.SettingDef{
		confparse.StringSetting("baseDN", &d.BaseDN),
		confparse.StringSetting("rootDN", &d.RootDN),
		confparse.StringSetting("rootPassword", &d.RootPassword),
	}
	return confparse.ApplySetting(defs, key, value)
}

func applyStorageSetting(s *StorageConfig, key, value string) error {
	defs := []confparse.SettingDef{
		confparse.StringSetting("dataDir", &s.DataDir),
		confparse.StringSetting("walDir", &s.WALDir),
		confparse.StringSetting("bufferPoolSize", &s.BufferPoolSize),
	}
	if hasSetting(defs, key) {
		return confparse.ApplySetting(defs, key, value)
	}
	switch key {
	case "pageSize":
		n, err := confparse.ParseUint(value)
		if err != nil {
			return err
		}
		s.PageSize = int(n)
		return nil
	case "checkpointInterval":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		s.CheckpointInterval = d
		return nil
	default:
		return fmt.Errorf("Unknown setting: %s", key)
	}
}

func applyLogSetting(l *LogConfig, key, value string) error {
	defs := []confparse.SettingDef{
		confparse.StringSetting("level", &l.Level),
		confparse.StringSetting("format", &l.Format),
		confparse.StringSetting("output", &l.Output),
	}
	return confparse.ApplySetting(defs, key, value)
}

func applyPasswordPolicySetting(pp *PasswordPolicyConfig, key, value string) error {
	defs := []confparse.SettingDef{
		confparse.BoolSetting("enabled", &pp.Enabled),
		confparse.BoolSetting("requireUppercase", &pp.RequireUppercase),
		confparse.BoolSetting("requireLowercase", &pp.RequireLowercase),
		confparse.BoolSetting("requireDigit", &pp.RequireDigit),
		confparse.BoolSetting("requireSpecial", &pp.RequireSpecial),
	}
	if hasSetting(defs, key) {
		return confparse.ApplySetting(defs, key, value)
	}
	switch key {
	case "minLength":
		n, err := confparse.ParseUint(value)
		if err != nil {
			return err
		}
		pp.MinLength = int(n)
		return nil
	case "historyCount":
		n, err := confparse.ParseUint(value)
		if err != nil {
			return err
		}
		pp.HistoryCount = int(n)
		return nil
	case "maxAge":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		pp.MaxAge = d
		return nil
	default:
		return fmt.Errorf("Unknown setting: %s", key)
	}
}

func applyRateLimitSetting(rl *RateLimitConfig, key, value string) error {
	defs := []confparse.SettingDef{
		confparse.BoolSetting("enabled", &rl.Enabled),
	}
	if hasSetting(defs, key) {
		return confparse.ApplySetting(defs, key, value)
	}
	switch key {
	case "maxAttempts":
		n, err := confparse.ParseUint(value)
		if err != nil {
			return err
		}
		rl.MaxAttempts = int(n)
		return nil
	case "lockoutDuration":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		rl.LockoutDuration = d
		return nil
	default:
		return fmt.Errorf("Unknown setting: %s", key)
	}
}
