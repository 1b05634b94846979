package headers

import (
	"fmt"
	"strings"
)

const malformedHeaderTemplateConstant = "malformed import header in %s: %q follows %d import line(s)"

// MalformedHeaderError reports a statement that interrupts an import header.
type MalformedHeaderError struct {
	Path           string
	CollectedLines []string
	OffendingLine  string
}

// Error describes the offending file and line.
func (malformedError *MalformedHeaderError) Error() string {
	return fmt.Sprintf(malformedHeaderTemplateConstant, malformedError.Path, strings.TrimRight(malformedError.OffendingLine, "\r\n"), len(malformedError.CollectedLines))
}
