package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "1.0.1"
	commit    = "unknown"
	buildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "oba",
		Short: "Load, validate, and hot-reload Oba LDAP server configuration",
		Long: `oba is the configuration-management CLI for the Oba LDAP server suite.

It parses the server's settings tree (server{}, directory{}, storage{},
logging{}, security{}) and the separate ACL rule file it references, checks
them for structural and field-level errors, and can dump the resolved
configuration or archive prior check logs.`,
	}

	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return nil
			}
			fmt.Fprintf(out, "oba version %s\n", version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", buildDate)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "show only the version number")
	return cmd
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}

// GetCommit returns the current commit hash.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build date.
func GetBuildDate() string {
	return buildDate
}
