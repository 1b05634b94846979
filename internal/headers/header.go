package headers

import (
	"sort"
	"strings"
)

const (
	importStatementPrefixConstant     = "import "
	fromStatementPrefixConstant       = "from "
	legacyTestMarkerPrefixConstant    = "py.test."
	frameworkTestMarkerPrefixConstant = "pytest."
)

var headerTerminatingMarkers = []string{legacyTestMarkerPrefixConstant, frameworkTestMarkerPrefixConstant}

// Header holds the leading import lines of a source file, terminators included.
type Header []string

// ExtractHeader collects the import lines at the top of the file.
//
// Collection stops at the first blank line, the first test framework marker
// line, or the first other statement. Another statement directly following
// imports yields a MalformedHeaderError carrying the lines collected so far.
func ExtractHeader(path string, lines []string) (Header, error) {
	header := Header{}
	for _, line := range lines {
		switch {
		case isBlankLine(line), isTestMarkerLine(line):
			return header, nil
		case isImportLine(line):
			header = append(header, line)
		case len(header) == 0:
			return header, nil
		default:
			return header, &MalformedHeaderError{
				Path:           path,
				CollectedLines: append([]string(nil), header...),
				OffendingLine:  line,
			}
		}
	}
	return header, nil
}

// Sorted returns a lexicographically ordered copy of the header.
func (header Header) Sorted() Header {
	sorted := append(Header(nil), header...)
	sort.Strings(sorted)
	return sorted
}

// IsAlphabetized reports whether the header equals its sorted copy. An empty header is alphabetized.
func (header Header) IsAlphabetized() bool {
	return sort.StringsAreSorted(header)
}

func isBlankLine(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}

func isImportLine(line string) bool {
	return strings.HasPrefix(line, importStatementPrefixConstant) || strings.HasPrefix(line, fromStatementPrefixConstant)
}

func isTestMarkerLine(line string) bool {
	for _, marker := range headerTerminatingMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
