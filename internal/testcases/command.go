package testcases

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pysweep/internal/reporting"
	"github.com/temirov/pysweep/internal/sources/discovery"
	"github.com/temirov/pysweep/internal/sources/filesystem"
	"github.com/temirov/pysweep/internal/utils/flags"
)

const (
	nameCommandShortDescriptionConstant   = "Rename test cases so their prefix matches the test module name"
	nameCommandLongDescriptionConstant    = "test-names walks the source roots, finds test_*.py modules, and rewrites every test case whose name prefix differs from the module name. The numeric suffix is preserved."
	numberCommandShortDescriptionConstant = "Renumber test cases 01, 02, ... in file order"
	numberCommandLongDescriptionConstant  = "test-numbers walks the source roots, finds test_*.py modules, and rewrites the two digit suffix of every test case so the Nth case of a module ends with N."
	unsupportedRuleMessageConstant        = "unsupported test case rule"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current fixer configuration.
type ConfigurationProvider func() CommandConfiguration

// HighlightProvider reports whether report output should be colourized.
type HighlightProvider func() bool

// CommandBuilder assembles a fixer cobra command for the configured rule.
type CommandBuilder struct {
	Rule                  Rule
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	HighlightProvider     HighlightProvider
	Discoverer            SourceDiscoverer
	FileSystem            filesystem.FileSystem
}

// Build constructs the cobra command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	var shortDescription, longDescription string
	switch builder.Rule.(type) {
	case NameRule, *NameRule:
		shortDescription, longDescription = nameCommandShortDescriptionConstant, nameCommandLongDescriptionConstant
	case NumberRule, *NumberRule:
		shortDescription, longDescription = numberCommandShortDescriptionConstant, numberCommandLongDescriptionConstant
	default:
		return nil, errors.New(unsupportedRuleMessageConstant)
	}

	command := &cobra.Command{
		Use:   builder.Rule.Name(),
		Short: shortDescription,
		Long:  longDescription,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	flags.BindRootFlag(command)
	var autoApply bool
	flags.AddToggleFlag(command.Flags(), &autoApply, flags.AutoApplyFlagName, DefaultCommandConfiguration().AutoApply, flags.AutoApplyFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	options := Options{
		Roots:     flags.ResolveRoots(command, configuration.Roots),
		AutoApply: configuration.AutoApply,
	}
	if command.Flags().Changed(flags.AutoApplyFlagName) {
		autoApplyValue, _ := command.Flags().GetBool(flags.AutoApplyFlagName)
		options.AutoApply = autoApplyValue
	}

	discoverer := builder.Discoverer
	if discoverer == nil {
		discoverer = discovery.NewFilesystemSourceDiscoverer(configuration.SkipDirectories)
	}

	fileSystem := builder.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}

	reporter := reporting.NewWriterReporter(command.OutOrStdout(), builder.resolveHighlight())
	service := NewService(builder.Rule, discoverer, fileSystem, reporter, builder.resolveLogger())

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
