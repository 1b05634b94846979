package testcases

const (
	rootsConfigurationKeySuffixConstant           = ".roots"
	skipDirectoriesConfigurationKeySuffixConstant = ".skip_directories"
	autoApplyConfigurationKeySuffixConstant       = ".auto_apply"
)

// CommandConfiguration captures persistent settings for a fixer command.
type CommandConfiguration struct {
	Roots           []string `mapstructure:"roots"`
	SkipDirectories []string `mapstructure:"skip_directories"`
	AutoApply       bool     `mapstructure:"auto_apply"`
}

// DefaultCommandConfiguration returns baseline configuration values; corrections are applied by default.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:           []string{},
		SkipDirectories: []string{},
		AutoApply:       true,
	}
}

// DefaultConfigurationValues exposes the defaults keyed under the provided configuration prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + rootsConfigurationKeySuffixConstant:           defaults.Roots,
		configurationKeyPrefix + skipDirectoriesConfigurationKeySuffixConstant: defaults.SkipDirectories,
		configurationKeyPrefix + autoApplyConfigurationKeySuffixConstant:       defaults.AutoApply,
	}
}
