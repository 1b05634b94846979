package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/pysweep/internal/headers"
	"github.com/temirov/pysweep/internal/testcases"
	"github.com/temirov/pysweep/internal/utils"
	"github.com/temirov/pysweep/internal/utils/flags"
)

const (
	applicationNameConstant                 = "pysweep"
	applicationShortDescriptionConstant     = "Maintenance checks for python source trees"
	applicationLongDescriptionConstant      = "pysweep audits import headers and keeps test case names and numbering consistent across a python source tree."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	colorFlagNameConstant                   = "color"
	colorFlagUsageConstant                  = "Highlight report output"
	colorModeAutoConstant                   = "auto"
	colorModeOnConstant                     = "on"
	colorModeOffConstant                    = "off"
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	commonColorConfigKeyConstant            = commonConfigurationKeyConstant + ".color"
	environmentPrefixConstant               = "PYSWEEP"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationColorFieldConstant         = "color"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	colorModeErrorTemplateConstant          = "invalid color mode: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	rootCommandInfoMessageConstant          = "pysweep CLI executed"
	rootCommandDebugMessageConstant         = "pysweep CLI diagnostics"
	logFieldCommandNameConstant             = "command_name"
	logFieldArgumentCountConstant           = "argument_count"
	logFieldArgumentsConstant               = "arguments"
	loggerNotInitializedMessageConstant     = "logger not initialized"
	defaultConfigurationSearchPathConstant  = "."
	toolsConfigurationKeyConstant           = "tools"
	headersConfigurationKeyConstant         = toolsConfigurationKeyConstant + ".headers"
	testNamesConfigurationKeyConstant       = toolsConfigurationKeyConstant + ".test_names"
	testNumbersConfigurationKeyConstant     = toolsConfigurationKeyConstant + ".test_numbers"
)

var colorModeChoices = []string{colorModeAutoConstant, colorModeOnConstant, colorModeOffConstant}

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging and output configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Color     string `mapstructure:"color"`
}

// ApplicationToolsConfiguration holds configuration for CLI subcommands.
type ApplicationToolsConfiguration struct {
	Headers     headers.CommandConfiguration   `mapstructure:"headers"`
	TestNames   testcases.CommandConfiguration `mapstructure:"test_names"`
	TestNumbers testcases.CommandConfiguration `mapstructure:"test_numbers"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
	colorFlagValue        string
	colorMode             string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
		colorMode:           colorModeOffConstant,
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(
		&application.colorFlagValue,
		colorFlagNameConstant,
		"",
		flags.FormatChoiceUsage(colorModeAutoConstant, colorModeChoices, colorFlagUsageConstant),
	)

	application.rootCommand = cobraCommand

	for _, subcommandBuilder := range application.subcommandBuilders() {
		subcommand, buildError := subcommandBuilder.Build()
		if buildError != nil {
			continue
		}
		cobraCommand.AddCommand(subcommand)
	}

	return application
}

type commandBuilder interface {
	Build() (*cobra.Command, error)
}

func (application *Application) subcommandBuilders() []commandBuilder {
	loggerProvider := func() *zap.Logger {
		return application.logger
	}

	return []commandBuilder{
		&headers.CommandBuilder{
			LoggerProvider:    loggerProvider,
			HighlightProvider: application.highlightEnabled,
			ConfigurationProvider: func() headers.CommandConfiguration {
				return application.configuration.Tools.Headers
			},
		},
		&testcases.CommandBuilder{
			Rule:              testcases.NameRule{},
			LoggerProvider:    loggerProvider,
			HighlightProvider: application.highlightEnabled,
			ConfigurationProvider: func() testcases.CommandConfiguration {
				return application.configuration.Tools.TestNames
			},
		},
		&testcases.CommandBuilder{
			Rule:              testcases.NumberRule{},
			LoggerProvider:    loggerProvider,
			HighlightProvider: application.highlightEnabled,
			ConfigurationProvider: func() testcases.CommandConfiguration {
				return application.configuration.Tools.TestNumbers
			},
		},
	}
}

// Execute runs the command hierarchy with the process arguments.
func (application *Application) Execute() error {
	return application.ExecuteArguments(os.Args[1:])
}

// ExecuteArguments runs the command hierarchy with the provided arguments and flushes the logger.
func (application *Application) ExecuteArguments(arguments []string) error {
	normalizedArguments := flags.NormalizeToggleArguments(arguments)
	if normalizedArguments == nil {
		normalizedArguments = []string{}
	}
	application.rootCommand.SetArgs(normalizedArguments)

	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// SetOutput redirects report output and cobra diagnostics.
func (application *Application) SetOutput(output io.Writer, errorOutput io.Writer) {
	application.rootCommand.SetOut(output)
	application.rootCommand.SetErr(errorOutput)
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

// ExecuteCommand runs a single subcommand, forwarding any process arguments to it.
func ExecuteCommand(commandName string) error {
	arguments := append([]string{commandName}, os.Args[1:]...)
	return NewApplication().ExecuteArguments(arguments)
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
		commonColorConfigKeyConstant:     colorModeAutoConstant,
	}
	for configurationKey, configurationValue := range headers.DefaultConfigurationValues(headersConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range testcases.DefaultConfigurationValues(testNamesConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range testcases.DefaultConfigurationValues(testNumbersConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	if application.persistentFlagChanged(command, colorFlagNameConstant) {
		application.configuration.Common.Color = application.colorFlagValue
	}

	colorMode, colorModeError := flags.NormalizeChoice(application.configuration.Common.Color, colorModeAutoConstant, colorModeChoices)
	if colorModeError != nil {
		return fmt.Errorf(colorModeErrorTemplateConstant, colorModeError)
	}
	application.colorMode = colorMode

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationColorFieldConstant, application.colorMode),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) highlightEnabled() bool {
	switch application.colorMode {
	case colorModeOnConstant:
		return true
	case colorModeAutoConstant:
		return isTerminal(application.rootCommand.OutOrStdout())
	default:
		return false
	}
}

func isTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Info(
		rootCommandInfoMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	application.logger.Debug(
		rootCommandDebugMessageConstant,
		zap.Strings(logFieldArgumentsConstant, arguments),
	)

	return command.Help()
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
