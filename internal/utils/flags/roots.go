// Package flags binds the flags shared by pysweep subcommands to Cobra commands.
package flags

import (
	"strings"

	"github.com/spf13/cobra"
)

const (
	// RootFlagName exposes the shared source root flag name.
	RootFlagName = "root"
	// RootFlagUsage describes the shared source root flag purpose.
	RootFlagUsage = "Source tree roots to scan (repeatable)"
	// AutoApplyFlagName exposes the fixer auto-apply toggle name.
	AutoApplyFlagName = "auto-apply"
	// AutoApplyFlagUsage describes the fixer auto-apply toggle purpose.
	AutoApplyFlagUsage = "Rewrite test modules with the corrected lines"
	// DefaultRootConstant is the root scanned when neither flags nor configuration provide one.
	DefaultRootConstant = "."
)

// BindRootFlag registers the repeatable --root flag on the command.
func BindRootFlag(command *cobra.Command) {
	if command == nil {
		return
	}
	command.Flags().StringSlice(RootFlagName, nil, RootFlagUsage)
}

// ResolveRoots prefers roots passed on the command line, then configured roots, then the working directory.
func ResolveRoots(command *cobra.Command, configuredRoots []string) []string {
	if command != nil && command.Flags().Changed(RootFlagName) {
		flagRoots, _ := command.Flags().GetStringSlice(RootFlagName)
		if sanitized := SanitizeRoots(flagRoots); len(sanitized) > 0 {
			return sanitized
		}
	}

	if sanitized := SanitizeRoots(configuredRoots); len(sanitized) > 0 {
		return sanitized
	}

	return []string{DefaultRootConstant}
}

// SanitizeRoots trims whitespace and drops empty entries.
func SanitizeRoots(rawRoots []string) []string {
	sanitized := make([]string, 0, len(rawRoots))
	for _, rawRoot := range rawRoots {
		trimmed := strings.TrimSpace(rawRoot)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
