package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/pysweep/cmd/cli"
	"github.com/temirov/pysweep/internal/headers"
	"github.com/temirov/pysweep/internal/testcases"
)

const (
	testConfigurationFileNameConstant    = "config.yaml"
	testAutoApplyDisabledConfigConstant  = "tools:\n  test_numbers:\n    auto_apply: false\n"
	testAutoApplyEnvironmentNameConstant = "PYSWEEP_TOOLS_TEST_NUMBERS_AUTO_APPLY"
	testUnnumberedSourceConstant         = "import pytest\n\n\ndef test_select_04():\n    pass\n"
	testNumberedSourceConstant           = "import pytest\n\n\ndef test_select_01():\n    pass\n"
	testSelectModuleNameConstant         = "test_select.py"
)

func writeSourceTree(testInstance *testing.T, sources map[string]string) string {
	testInstance.Helper()
	rootDirectory := testInstance.TempDir()
	for relativePath, content := range sources {
		absolutePath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))
		require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
		require.NoError(testInstance, os.WriteFile(absolutePath, []byte(content), 0o644))
	}
	return rootDirectory
}

func executeApplication(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()
	outputBuffer := &bytes.Buffer{}
	application := cli.NewApplication()
	application.SetOutput(outputBuffer, outputBuffer)
	executionError := application.ExecuteArguments(arguments)
	return outputBuffer.String(), executionError
}

func readTreeFile(testInstance *testing.T, rootDirectory string, relativePath string) string {
	testInstance.Helper()
	content, readError := os.ReadFile(filepath.Join(rootDirectory, filepath.FromSlash(relativePath)))
	require.NoError(testInstance, readError)
	return string(content)
}

func TestApplicationRunsSubcommands(testInstance *testing.T) {
	testCases := []struct {
		name           string
		sources        map[string]string
		argumentsFor   func(rootDirectory string) []string
		expectedOutput string
		expectedSource string
	}{
		{
			name:    "headers",
			sources: map[string]string{"abjad/select.py": "import pytest\nimport abjad\n\n"},
			argumentsFor: func(rootDirectory string) []string {
				return []string{"headers", "--root", rootDirectory}
			},
			expectedOutput: "Total files scanned: 1\nTotal non-alphabetized headers: 1\n",
		},
		{
			name:    "test_names",
			sources: map[string]string{testSelectModuleNameConstant: "def testbar01():\n"},
			argumentsFor: func(rootDirectory string) []string {
				return []string{"test-names", "--root", rootDirectory, "--color", "off"}
			},
			expectedOutput: "  - def testbar01():\n  + def test_select01():\n",
			expectedSource: "def test_select01():\n",
		},
		{
			name:    "test_numbers",
			sources: map[string]string{testSelectModuleNameConstant: testUnnumberedSourceConstant},
			argumentsFor: func(rootDirectory string) []string {
				return []string{"--log-level", "error", "test-numbers", "--root", rootDirectory}
			},
			expectedOutput: "Total mismatches corrected: 1\n",
			expectedSource: testNumberedSourceConstant,
		},
		{
			name:    "test_numbers_report_only",
			sources: map[string]string{testSelectModuleNameConstant: testUnnumberedSourceConstant},
			argumentsFor: func(rootDirectory string) []string {
				return []string{"test-numbers", "--root", rootDirectory, "--auto-apply", "no"}
			},
			expectedOutput: "Total mismatches found (not applied): 1\n",
			expectedSource: testUnnumberedSourceConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testCase := testCase
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subTest *testing.T) {
			rootDirectory := writeSourceTree(subTest, testCase.sources)

			output, executionError := executeApplication(subTest, testCase.argumentsFor(rootDirectory)...)
			require.NoError(subTest, executionError)
			require.Contains(subTest, output, testCase.expectedOutput)

			if len(testCase.expectedSource) > 0 {
				require.Equal(subTest, testCase.expectedSource, readTreeFile(subTest, rootDirectory, testSelectModuleNameConstant))
			}
		})
	}
}

func TestApplicationSurfacesMalformedHeaders(testInstance *testing.T) {
	rootDirectory := writeSourceTree(testInstance, map[string]string{"select.py": "import abjad\nclass Selection:\n"})

	output, executionError := executeApplication(testInstance, "headers", "--root", rootDirectory)
	require.Error(testInstance, executionError)

	var malformedError *headers.MalformedHeaderError
	require.True(testInstance, errors.As(executionError, &malformedError))
	require.Contains(testInstance, output, "MALFORMED HEADER")
}

func TestApplicationAutoApplyConfigurationSources(testInstance *testing.T) {
	testInstance.Run("0_configuration_file", func(subTest *testing.T) {
		rootDirectory := writeSourceTree(subTest, map[string]string{testSelectModuleNameConstant: testUnnumberedSourceConstant})
		configurationPath := filepath.Join(subTest.TempDir(), testConfigurationFileNameConstant)
		require.NoError(subTest, os.WriteFile(configurationPath, []byte(testAutoApplyDisabledConfigConstant), 0o600))

		output, executionError := executeApplication(subTest, "--config", configurationPath, "test-numbers", "--root", rootDirectory)
		require.NoError(subTest, executionError)
		require.Contains(subTest, output, "Total mismatches found (not applied): 1\n")
		require.Equal(subTest, testUnnumberedSourceConstant, readTreeFile(subTest, rootDirectory, testSelectModuleNameConstant))
	})

	testInstance.Run("1_environment", func(subTest *testing.T) {
		subTest.Setenv(testAutoApplyEnvironmentNameConstant, "false")
		rootDirectory := writeSourceTree(subTest, map[string]string{testSelectModuleNameConstant: testUnnumberedSourceConstant})

		_, executionError := executeApplication(subTest, "test-numbers", "--root", rootDirectory)
		require.NoError(subTest, executionError)
		require.Equal(subTest, testUnnumberedSourceConstant, readTreeFile(subTest, rootDirectory, testSelectModuleNameConstant))
	})

	testInstance.Run("2_flag_overrides_environment", func(subTest *testing.T) {
		subTest.Setenv(testAutoApplyEnvironmentNameConstant, "false")
		rootDirectory := writeSourceTree(subTest, map[string]string{testSelectModuleNameConstant: testUnnumberedSourceConstant})

		_, executionError := executeApplication(subTest, "test-numbers", "--root", rootDirectory, "--auto-apply", "yes")
		require.NoError(subTest, executionError)
		require.Equal(subTest, testNumberedSourceConstant, readTreeFile(subTest, rootDirectory, testSelectModuleNameConstant))
	})
}

func TestApplicationRejectsInvalidSettings(testInstance *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "color_mode", arguments: []string{"--color", "purple", "headers", "--root", "."}},
		{name: "log_level", arguments: []string{"--log-level", "verbose", "headers", "--root", "."}},
		{name: "positional_argument", arguments: []string{"headers", "abjad"}},
	}

	for testCaseIndex, testCase := range testCases {
		testCase := testCase
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subTest *testing.T) {
			_, executionError := executeApplication(subTest, testCase.arguments...)
			require.Error(subTest, executionError)
		})
	}
}

func TestApplicationEmbeddedDefaults(testInstance *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	var document map[string]map[string]any
	require.NoError(testInstance, yaml.Unmarshal(configurationData, &document))
	require.ElementsMatch(testInstance, []string{"log_level", "log_format", "color"}, mapKeys(document["common"]))
	require.ElementsMatch(testInstance, []string{"headers", "test_names", "test_numbers"}, mapKeys(document["tools"]))

	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(configurationData)))

	var configuration cli.ApplicationConfiguration
	require.NoError(testInstance, viperInstance.Unmarshal(&configuration))
	require.Equal(testInstance, "auto", configuration.Common.Color)
	require.Equal(testInstance, []string{"."}, configuration.Tools.Headers.Roots)
	require.True(testInstance, configuration.Tools.TestNames.AutoApply)
	require.True(testInstance, configuration.Tools.TestNumbers.AutoApply)
	require.Contains(testInstance, configuration.Tools.TestNumbers.SkipDirectories, "__pycache__")

	var fixerConfiguration testcases.CommandConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &fixerConfiguration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(document["tools"]["test_names"]))
	require.Equal(testInstance, []string{"."}, fixerConfiguration.Roots)
	require.True(testInstance, fixerConfiguration.AutoApply)
}

func mapKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	return keys
}
