package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pysweep/internal/sources/discovery"
)

const (
	pythonExtensionConstant        = ".py"
	sourceDirectoryPermissions     = 0o755
	sourceFilePermissions          = 0o644
	singleRootSubtestTitle         = "discoversSourcesFromSingleRoot"
	overlappingRootsSubtestTitle   = "reportsOverlappingRootsOnce"
	skippedDirectorySubtestTitle   = "prunesSkippedDirectories"
	versionControlDirectoryName    = ".git"
	selectionModuleRelativePath    = "abjad/tools/topleveltools/select.py"
	testModuleRelativePath         = "abjad/tools/scoretools/test/test_scoretools_Measure.py"
	readmeRelativePath             = "abjad/README.rst"
	versionControlHookRelativePath = ".git/hooks/pre_commit.py"
)

type filesystemDiscoveryTestScenario struct {
	title           string
	skipDirectories []string
	roots           func(rootDirectory string) []string
	expected        func(rootDirectory string) []string
}

func writeSourceTree(testFramework *testing.T, rootDirectory string, relativePaths []string) {
	testFramework.Helper()
	for _, relativePath := range relativePaths {
		absolutePath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))
		require.NoError(testFramework, os.MkdirAll(filepath.Dir(absolutePath), sourceDirectoryPermissions))
		require.NoError(testFramework, os.WriteFile(absolutePath, []byte("import abjad\n"), sourceFilePermissions))
	}
}

func TestFilesystemSourceDiscovererDiscoversPythonSources(testFramework *testing.T) {
	relativePaths := []string{selectionModuleRelativePath, testModuleRelativePath, readmeRelativePath, versionControlHookRelativePath}

	joinAll := func(rootDirectory string, relativePaths ...string) []string {
		joined := make([]string, 0, len(relativePaths))
		for _, relativePath := range relativePaths {
			joined = append(joined, filepath.Join(rootDirectory, filepath.FromSlash(relativePath)))
		}
		return joined
	}

	testScenarios := []filesystemDiscoveryTestScenario{
		{
			title: singleRootSubtestTitle,
			roots: func(rootDirectory string) []string { return []string{rootDirectory} },
			expected: func(rootDirectory string) []string {
				return joinAll(rootDirectory, versionControlHookRelativePath, testModuleRelativePath, selectionModuleRelativePath)
			},
		},
		{
			title:           overlappingRootsSubtestTitle,
			skipDirectories: []string{versionControlDirectoryName},
			roots: func(rootDirectory string) []string {
				return []string{rootDirectory, filepath.Join(rootDirectory, "abjad", "tools")}
			},
			expected: func(rootDirectory string) []string {
				return joinAll(rootDirectory, testModuleRelativePath, selectionModuleRelativePath)
			},
		},
		{
			title:           skippedDirectorySubtestTitle,
			skipDirectories: []string{versionControlDirectoryName, "test"},
			roots:           func(rootDirectory string) []string { return []string{rootDirectory} },
			expected: func(rootDirectory string) []string {
				return joinAll(rootDirectory, selectionModuleRelativePath)
			},
		},
	}

	for _, testScenario := range testScenarios {
		testScenario := testScenario
		testFramework.Run(testScenario.title, func(testFramework *testing.T) {
			rootDirectory := testFramework.TempDir()
			writeSourceTree(testFramework, rootDirectory, relativePaths)

			discoverer := discovery.NewFilesystemSourceDiscoverer(testScenario.skipDirectories)
			discovered, discoveryError := discoverer.DiscoverFiles(testScenario.roots(rootDirectory), discovery.ExtensionPredicate(pythonExtensionConstant))
			require.NoError(testFramework, discoveryError)
			require.Equal(testFramework, testScenario.expected(rootDirectory), discovered)
		})
	}
}

func TestFilesystemSourceDiscovererFailsForMissingRoot(testFramework *testing.T) {
	discoverer := discovery.NewFilesystemSourceDiscoverer(nil)
	_, discoveryError := discoverer.DiscoverFiles([]string{filepath.Join(testFramework.TempDir(), "missing")}, nil)
	require.Error(testFramework, discoveryError)
	require.ErrorIs(testFramework, discoveryError, os.ErrNotExist)
}
