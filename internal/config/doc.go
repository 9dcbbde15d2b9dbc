// Package config loads the Oba server suite's settings tree — the concrete
// "external collaborator" consumer of internal/confparse for this project's
// own file format — and keeps the active Config current across reloads.
//
// # Overview
//
// The config package handles loading, validating, and hot-reloading server
// configuration from settings files shaped like:
//
//	server {
//	    address        = :389
//	    tlsAddress     = :636
//	    maxConnections = 10000
//	    readTimeout    = 30s
//	    writeTimeout   = 30s
//	}
//
//	directory {
//	    baseDN       = dc=example,dc=com
//	    rootDN       = cn=admin,dc=example,dc=com
//	    rootPassword = $ENV:OBA_ROOT_PASSWORD
//	}
//
//	storage {
//	    dataDir            = /var/lib/oba
//	    pageSize           = 4096
//	    bufferPoolSize     = 256MB
//	    checkpointInterval = 5m
//	}
//
//	logging {
//	    level  = info
//	    format = json
//	    output = stdout
//	}
//
//	security {
//	    passwordPolicy {
//	        enabled          = yes
//	        minLength        = 8
//	        requireUppercase = yes
//	    }
//	    rateLimit {
//	        enabled         = no
//	        maxAttempts     = 5
//	        lockoutDuration = 15m
//	    }
//	}
//
//	acl_file = /etc/oba/acl.conf
//
// ACL rules live in their own file, loaded through internal/acl.LoadFromFile
// — that package is a second, independent consumer of confparse, not a
// subtree this package itself parses.
//
// # Loading Configuration
//
//	cfg, err := config.Load("/etc/oba/oba.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or restrict the parse to one targeted subtree (see confparse's
// path-addressed selector):
//
//	securityOnly, err := config.LoadSection("/etc/oba/oba.conf", "security/passwordPolicy")
//
// Or use defaults:
//
//	cfg := config.DefaultConfig()
//
// # Environment Variables
//
// Values can reference environment variables inline, using confparse's
// "$ENV:NAME" substitution rather than a separate templating pass:
//
//	rootPassword = $ENV:OBA_ROOT_PASSWORD
//
// # Validation
//
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    log.Fatal(errs[0])
//	}
//
// # Hot Reload
//
// Manager holds the active Config and swaps it in atomically:
//
//	mgr := config.NewManager(cfg, "/etc/oba/oba.conf", logger)
//	mgr.OnChange(func(old, new *config.Config) {
//	    // react to the change
//	})
//	if err := mgr.Watch(0); err != nil { // fsnotify-backed, 200ms debounce
//	    log.Fatal(err)
//	}
//	defer mgr.StopWatch()
//
//	// elsewhere
//	current := mgr.Current()
package config
