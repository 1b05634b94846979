package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	lineTerminatorConstant           = "\n"
	readSourceErrorTemplateConstant  = "unable to read %s: %w"
	statSourceErrorTemplateConstant  = "unable to stat %s: %w"
	writeSourceErrorTemplateConstant = "unable to write %s: %w"
)

// FileSystem provides the file operations pysweep commands rely on.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

// SplitLines splits content into lines that keep their terminators.
// A final line without a terminator is kept as is, so JoinLines(SplitLines(x)) == x.
func SplitLines(content string) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.SplitAfter(content, lineTerminatorConstant)
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines produced by SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// ReadLines loads the file and splits it with SplitLines.
func ReadLines(fileSystem FileSystem, path string) ([]string, error) {
	content, readError := fileSystem.ReadFile(path)
	if readError != nil {
		return nil, fmt.Errorf(readSourceErrorTemplateConstant, path, readError)
	}
	return SplitLines(string(content)), nil
}

// WriteLines replaces the file contents with the joined lines, keeping its permission bits.
func WriteLines(fileSystem FileSystem, path string, lines []string) error {
	fileInfo, statError := fileSystem.Stat(path)
	if statError != nil {
		return fmt.Errorf(statSourceErrorTemplateConstant, path, statError)
	}

	if writeError := fileSystem.WriteFile(path, []byte(JoinLines(lines)), fileInfo.Mode().Perm()); writeError != nil {
		return fmt.Errorf(writeSourceErrorTemplateConstant, path, writeError)
	}
	return nil
}
