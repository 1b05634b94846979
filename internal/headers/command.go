package headers

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pysweep/internal/reporting"
	"github.com/temirov/pysweep/internal/sources/discovery"
	"github.com/temirov/pysweep/internal/sources/filesystem"
	"github.com/temirov/pysweep/internal/utils/flags"
)

const (
	commandNameConstant             = "headers"
	commandShortDescriptionConstant = "Report python sources whose import header is not alphabetized"
	commandLongDescriptionConstant  = "headers walks the source roots, compares every file's leading import block with its sorted form, and prints the files that differ. A statement interrupting an import block aborts the run."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current headers configuration.
type ConfigurationProvider func() CommandConfiguration

// HighlightProvider reports whether report output should be colourized.
type HighlightProvider func() bool

// CommandBuilder assembles the headers cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	HighlightProvider     HighlightProvider
	Discoverer            SourceDiscoverer
	FileSystem            filesystem.FileSystem
}

// Build constructs the cobra command for the header audit.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	flags.BindRootFlag(command)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	options := Options{Roots: flags.ResolveRoots(command, configuration.Roots)}

	discoverer := builder.Discoverer
	if discoverer == nil {
		discoverer = discovery.NewFilesystemSourceDiscoverer(configuration.SkipDirectories)
	}

	fileSystem := builder.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}

	reporter := reporting.NewWriterReporter(command.OutOrStdout(), builder.resolveHighlight())
	service := NewService(discoverer, fileSystem, reporter, builder.resolveLogger())

	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveHighlight() bool {
	if builder.HighlightProvider == nil {
		return false
	}
	return builder.HighlightProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
