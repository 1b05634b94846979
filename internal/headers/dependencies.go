package headers

import "github.com/temirov/pysweep/internal/sources/discovery"

// SourceDiscoverer finds the files to audit under the provided roots.
type SourceDiscoverer interface {
	DiscoverFiles(roots []string, predicate discovery.FilePredicate) ([]string, error)
}
