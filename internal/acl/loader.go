package acl

import (
	"fmt"
	"strings"

	"github.com/KilimcininKorOglu/oba/internal/confparse"
)

// LoadFromFile loads an ACL configuration from a settings-format file using
// confparse.Parse targeted at the "acl" section, so the same rule file can
// either stand alone (an "acl { ... }" block at the top level) or live
// embedded as one subtree of the server's main oba.conf.
//
//	acl {
//	    default_policy = deny
//
//	    rule {
//	        target     = ou=users,dc=example,dc=com
//	        subject    = authenticated
//	        scope      = subtree
//	        rights     = read,search
//	        attributes = cn,mail
//	        deny       = no
//	    }
//	}
func LoadFromFile(path string) (*Config, error) {
	config := NewConfig()

	var current *fileRule
	inACL := false
	cb := confparse.Callbacks{
		KeyValue: func(key, value string) error {
			if current == nil {
				if key != "default_policy" {
					return fmt.Errorf("Unknown setting: %s", key)
				}
				config.DefaultPolicy = strings.ToLower(strings.TrimSpace(value))
				return nil
			}
			return current.set(key, value)
		},
		Section: func(typ, name string) (bool, error) {
			if typ == "acl" && !inACL {
				inACL = true
				return true, nil
			}
			if typ != "rule" {
				return false, fmt.Errorf("Unknown section: %s", typ)
			}
			current = &fileRule{}
			return true, nil
		},
		Close: func() error {
			if current == nil {
				return nil
			}
			rule, err := current.toACL()
			if err != nil {
				return err
			}
			config.AddRule(rule)
			current = nil
			return nil
		},
	}

	if err := confparse.Parse(path, "acl", cb, nil); err != nil {
		return nil, err
	}

	if config.DefaultPolicy != "allow" && config.DefaultPolicy != "deny" {
		return nil, fmt.Errorf("invalid default_policy %q: must be allow or deny", config.DefaultPolicy)
	}

	return config, nil
}

// fileRule accumulates the key/value pairs of one "rule { }" block before it
// is converted to an *ACL when the section closes.
type fileRule struct {
	target     string
	subject    string
	scope      string
	rights     []string
	attributes []string
	deny       bool
}

func (r *fileRule) set(key, value string) error {
	switch key {
	case "target":
		r.target = value
	case "subject":
		r.subject = value
	case "scope":
		r.scope = value
	case "rights":
		r.rights = splitList(value)
	case "attributes":
		r.attributes = splitList(value)
	case "deny":
		deny, err := confparse.ParseBool(value)
		if err != nil {
			return err
		}
		r.deny = deny
	default:
		return fmt.Errorf("Unknown setting: %s", key)
	}
	return nil
}

func (r *fileRule) toACL() (*ACL, error) {
	if r.target == "" {
		return nil, fmt.Errorf("rule: missing target")
	}
	if r.subject == "" {
		return nil, fmt.Errorf("rule: missing subject")
	}
	if len(r.rights) == 0 {
		return nil, fmt.Errorf("rule: missing rights")
	}

	rights, err := ParseRights(r.rights)
	if err != nil {
		return nil, err
	}

	rule := NewACL(r.target, r.subject, rights)
	if r.scope != "" {
		scope, err := ParseScope(r.scope)
		if err != nil {
			return nil, err
		}
		rule.WithScope(scope)
	}
	if len(r.attributes) > 0 {
		rule.WithAttributes(r.attributes...)
	}
	rule.WithDeny(r.deny)
	return rule, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseRights converts a list of right names (e.g. "read", "write", "all")
// into a combined Right bitmask.
func ParseRights(names []string) (Right, error) {
	var rights Right
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "read":
			rights |= Read
		case "write":
			rights |= Write
		case "add":
			rights |= Add
		case "delete":
			rights |= Delete
		case "search":
			rights |= Search
		case "compare":
			rights |= Compare
		case "all":
			rights |= All
		default:
			return 0, fmt.Errorf("%w: %s", ErrInvalidRight, name)
		}
	}
	if rights == 0 {
		return 0, fmt.Errorf("%w: empty rights list", ErrInvalidRight)
	}
	return rights, nil
}

// ParseScope converts a scope name into a Scope value.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base":
		return ScopeBase, nil
	case "one":
		return ScopeOne, nil
	case "subtree":
		return ScopeSubtree, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidScope, name)
	}
}
