// Package acl provides the typed record that an "acl { }" settings subtree
// is loaded into: rule target, subject, scope, rights, and the per-rule
// allow/deny decision, plus shape-level validation of that record.
//
// # Overview
//
// The acl package does not evaluate access — deciding whether a given bind
// DN may perform a given operation against a given target is out of scope,
// the same way confparse never evaluates a filter predicate. What it
// provides is the loaded, validated shape a caller needs to build its own
// evaluator from:
//
//   - ACL rule definitions with target, subject, and rights
//   - Scope tagging (base, one-level, subtree)
//   - Attribute-level allow/deny lists
//   - An ordered rule list plus a default policy
//
// # Access Rights
//
// Rights are bit flags that can be combined:
//
//	acl.Read     // Read entry attributes
//	acl.Write    // Modify entry attributes
//	acl.Add      // Create new entries
//	acl.Delete   // Remove entries
//	acl.Search   // Search for entries
//	acl.Compare  // Compare attribute values
//	acl.All      // All rights combined
//
// Example:
//
//	rights := acl.Read | acl.Search
//	if rights.Has(acl.Read) {
//	    // Read access granted
//	}
//
// # ACL Rules
//
// Build ACL rules directly:
//
//	// Allow admin full access to everything
//	rule := acl.NewACL("*", "cn=admin,dc=example,dc=com", acl.All)
//
//	// Allow authenticated users to read user entries
//	rule := acl.NewACL("ou=users,dc=example,dc=com", "authenticated", acl.Read|acl.Search).
//	    WithScope(acl.ScopeSubtree).
//	    WithAttributes("cn", "mail", "uid")
//
//	// Deny anonymous access to passwords
//	rule := acl.NewACL("*", "anonymous", acl.Read).
//	    WithAttributes("userPassword").
//	    WithDeny(true)
//
// # Subject Types
//
// The Subject field carries no special meaning to this package — it is an
// opaque string a caller's evaluator interprets ("anonymous",
// "authenticated", "self", a literal DN, "*"). acl only stores it.
//
// # Loading Rules From a File
//
// LoadFromFile reads an "acl { }" settings subtree using confparse, the
// same way internal/config reads the rest of oba.conf:
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
//	    }
//
//	    rule {
//	        target  = *
//	        subject = anonymous
//	        rights  = read
//	        deny    = yes
//	    }
//	}
//
//	config, err := acl.LoadFromFile("/etc/oba/acl.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := acl.ValidateConfig(config); len(errs) > 0 {
//	    log.Fatal(errs[0])
//	}
//
// Because the file is loaded with confparse's path-targeted selector
// ("acl"), the same rule block can also live as one subtree inside a larger
// oba.conf that also has server {}, directory {}, and logging {} sections —
// LoadFromFile only ever sees the "acl" subtree's events.
//
// # Rule Order and Default Policy
//
// Config.Rules preserves file order. A caller's evaluator is expected to
// walk rules in order and apply the first match; Config.IsDefaultAllow
// reports what to do once nothing matches.
package acl
