package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FilePredicate reports whether a discovered file should be processed.
type FilePredicate func(path string) bool

// FilesystemSourceDiscoverer locates source files on disk.
type FilesystemSourceDiscoverer struct {
	skipDirectories map[string]struct{}
}

// NewFilesystemSourceDiscoverer constructs a discoverer that prunes directories with the provided base names.
func NewFilesystemSourceDiscoverer(skipDirectories []string) *FilesystemSourceDiscoverer {
	skipped := make(map[string]struct{}, len(skipDirectories))
	for _, directoryName := range skipDirectories {
		trimmed := strings.TrimSpace(directoryName)
		if len(trimmed) == 0 {
			continue
		}
		skipped[trimmed] = struct{}{}
	}
	return &FilesystemSourceDiscoverer{skipDirectories: skipped}
}

// DiscoverFiles walks the roots depth first and returns the regular files accepted by the predicate.
// Files reachable from more than one root are reported once, at their first position.
func (discoverer *FilesystemSourceDiscoverer) DiscoverFiles(roots []string, predicate FilePredicate) ([]string, error) {
	seen := make(map[string]struct{})
	var discovered []string

	for _, root := range roots {
		walkError := filepath.WalkDir(root, func(path string, directoryEntry fs.DirEntry, walkError error) error {
			if walkError != nil {
				return walkError
			}

			if directoryEntry.IsDir() {
				if path == root {
					return nil
				}
				if _, skip := discoverer.skipDirectories[directoryEntry.Name()]; skip {
					return fs.SkipDir
				}
				return nil
			}

			if !directoryEntry.Type().IsRegular() {
				return nil
			}

			if predicate != nil && !predicate(path) {
				return nil
			}

			cleanedPath := filepath.Clean(path)
			if _, alreadySeen := seen[cleanedPath]; alreadySeen {
				return nil
			}
			seen[cleanedPath] = struct{}{}
			discovered = append(discovered, path)
			return nil
		})
		if walkError != nil {
			return nil, walkError
		}
	}

	return discovered, nil
}

// ExtensionPredicate accepts files whose base name ends with the extension.
func ExtensionPredicate(extension string) FilePredicate {
	return func(path string) bool {
		return strings.HasSuffix(filepath.Base(path), extension)
	}
}
