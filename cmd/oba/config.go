package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/oba/internal/acl"
	"github.com/KilimcininKorOglu/oba/internal/config"
	"github.com/KilimcininKorOglu/oba/internal/logging"
)

// newConfigCmd groups the configuration-management subcommands: check,
// dump, and archive.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(newConfigCheckCmd())
	cmd.AddCommand(newConfigDumpCmd())
	cmd.AddCommand(newConfigArchiveCmd())
	return cmd
}

// newConfigCheckCmd parses a root settings file and reports success or the
// first error to stderr with a non-zero exit code.
func newConfigCheckCmd() *cobra.Command {
	var section string
	var logFile string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			logger := checkLogger(logFile).WithRequestID(logging.GenerateRequestID())

			cfg, err := config.LoadSection(path, section)
			if err != nil {
				logger.Error("configuration check failed", "file", path, "error", err.Error())
				return err
			}
			if errs := config.ValidateConfig(cfg); len(errs) > 0 {
				logger.Error("configuration check failed", "file", path, "error", errs[0].Error())
				return errs[0]
			}

			if cfg.ACLFile != "" {
				aclCfg, err := acl.LoadFromFile(cfg.ACLFile)
				if err != nil {
					logger.Error("acl file check failed", "file", cfg.ACLFile, "error", err.Error())
					return fmt.Errorf("acl_file %s: %w", cfg.ACLFile, err)
				}
				if errs := acl.ValidateConfig(aclCfg); len(errs) > 0 {
					logger.Error("acl file check failed", "file", cfg.ACLFile, "error", errs[0].Error())
					return fmt.Errorf("acl_file %s: %w", cfg.ACLFile, errs[0])
				}
			}

			logger.Info("configuration is valid", "file", path)
			fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "restrict the check to one path-addressed subtree, e.g. security/passwordPolicy")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append the check result as a JSON log line to this file, for later use by 'oba config archive'")
	return cmd
}

// checkLogger returns a JSON-formatted Logger writing to path, or a no-op
// logger when path is empty so check runs without -log-file stay quiet.
func checkLogger(path string) logging.Logger {
	if path == "" {
		return logging.NewNop()
	}
	return logging.New(logging.Config{Level: "info", Format: "json", Output: path})
}

// newConfigDumpCmd walks the resolved Config and prints it.
func newConfigDumpCmd() *cobra.Command {
	var section string
	var format string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the resolved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSection(args[0], section)
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unknown format %q: supported formats are: json", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "parse only one path-addressed subtree, e.g. security/passwordPolicy; other sections are dumped with their defaults")
	cmd.Flags().StringVar(&format, "format", "json", "output format")
	return cmd
}

// newConfigArchiveCmd rotates and compresses the JSON-lines log that
// 'config check -log-file' accumulates, using internal/logging's archive
// support.
func newConfigArchiveCmd() *cobra.Command {
	var logFile string
	var archiveDir string
	var compress bool
	var retainDays int

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive prior config-check logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readLogEntries(logFile)
			if err != nil {
				return err
			}

			archive, err := logging.NewLogArchive(logging.ArchiveConfig{
				Enabled:    true,
				ArchiveDir: archiveDir,
				Compress:   compress,
				RetainDays: retainDays,
			})
			if err != nil {
				return err
			}

			archived, err := archive.Archive(entries)
			if err != nil {
				return err
			}
			if archived == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no log entries to archive")
				return nil
			}

			if err := os.Truncate(logFile, 0); err != nil {
				return fmt.Errorf("truncate %s: %w", logFile, err)
			}

			deleted, err := archive.CleanupOldArchives()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "archived %d entries to %s\n", archived.Count, archived.Path)
			if deleted > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired archive(s)\n", deleted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "JSON-lines config-check log to archive (required)")
	cmd.Flags().StringVar(&archiveDir, "archive-dir", "", "directory to write the archive file into (required)")
	cmd.Flags().BoolVar(&compress, "compress", true, "gzip-compress the archive file")
	cmd.Flags().IntVar(&retainDays, "retain-days", 0, "delete archives older than this many days (0 = keep forever)")
	cmd.MarkFlagRequired("log-file")
	cmd.MarkFlagRequired("archive-dir")
	return cmd
}

// readLogEntries reads a JSON-lines log file into LogEntry values, skipping
// any line that fails to parse.
func readLogEntries(path string) ([]logging.LogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var entries []logging.LogEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry logging.LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}
