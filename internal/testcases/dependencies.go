package testcases

import "github.com/temirov/pysweep/internal/sources/discovery"

// SourceDiscoverer finds test modules under the provided roots.
type SourceDiscoverer interface {
	DiscoverFiles(roots []string, predicate discovery.FilePredicate) ([]string, error)
}
