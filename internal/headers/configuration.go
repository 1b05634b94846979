package headers

const (
	rootsConfigurationKeySuffixConstant           = ".roots"
	skipDirectoriesConfigurationKeySuffixConstant = ".skip_directories"
)

// CommandConfiguration captures persistent settings for the headers command.
type CommandConfiguration struct {
	Roots           []string `mapstructure:"roots"`
	SkipDirectories []string `mapstructure:"skip_directories"`
}

// DefaultCommandConfiguration returns baseline configuration values for the headers command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:           []string{},
		SkipDirectories: []string{},
	}
}

// DefaultConfigurationValues exposes the defaults keyed under the provided configuration prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + rootsConfigurationKeySuffixConstant:           defaults.Roots,
		configurationKeyPrefix + skipDirectoriesConfigurationKeySuffixConstant: defaults.SkipDirectories,
	}
}
