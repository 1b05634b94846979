package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pysweep/internal/sources/filesystem"
)

func TestSplitLinesPreservesTerminators(testInstance *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expectedLines []string
	}{
		{name: "empty", content: "", expectedLines: nil},
		{name: "terminated", content: "import abjad\nimport pytest\n", expectedLines: []string{"import abjad\n", "import pytest\n"}},
		{name: "unterminated_tail", content: "import abjad\nx = 1", expectedLines: []string{"import abjad\n", "x = 1"}},
		{name: "blank_lines", content: "\n\nimport abjad\n", expectedLines: []string{"\n", "\n", "import abjad\n"}},
		{name: "carriage_returns", content: "import abjad\r\n", expectedLines: []string{"import abjad\r\n"}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			lines := filesystem.SplitLines(testCase.content)
			require.Equal(testInstance, testCase.expectedLines, lines)
			require.Equal(testInstance, testCase.content, filesystem.JoinLines(lines))
		})
	}
}

func TestWriteLinesKeepsPermissions(testInstance *testing.T) {
	filePath := filepath.Join(testInstance.TempDir(), "test_example.py")
	require.NoError(testInstance, os.WriteFile(filePath, []byte("def test_example_01():\n"), 0o640))

	fileSystem := filesystem.OSFileSystem{}
	lines, readError := filesystem.ReadLines(fileSystem, filePath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, []string{"def test_example_01():\n"}, lines)

	require.NoError(testInstance, filesystem.WriteLines(fileSystem, filePath, append(lines, "    pass\n")))

	content, contentError := os.ReadFile(filePath)
	require.NoError(testInstance, contentError)
	require.Equal(testInstance, "def test_example_01():\n    pass\n", string(content))

	fileInfo, statError := os.Stat(filePath)
	require.NoError(testInstance, statError)
	require.Equal(testInstance, os.FileMode(0o640), fileInfo.Mode().Perm())
}

func TestReadLinesWrapsMissingFile(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), "missing.py")
	_, readError := filesystem.ReadLines(filesystem.OSFileSystem{}, missingPath)
	require.ErrorIs(testInstance, readError, os.ErrNotExist)
	require.Contains(testInstance, readError.Error(), missingPath)
}
