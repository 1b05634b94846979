package testcases

import (
	"fmt"
	"strings"
)

const (
	disabledMarkerConstant       = "#"
	definitionKeywordConstant    = "def "
	testNamePrefixConstant       = "test"
	parameterListOpeningConstant = "("
	nameSeparatorConstant        = "_"
	suffixLengthConstant         = 2
	suffixTemplateConstant       = "%02d"
)

// TestCase is a single test case definition line.
type TestCase struct {
	Line     string
	Name     string
	Disabled bool
	// Position is the 1-based ordinal of the case within its module.
	Position int

	nameOffset int
}

// ParseTestCase recognizes a test case definition line. The returned case has no position yet.
func ParseTestCase(line string) (TestCase, bool) {
	definition := line
	disabled := strings.HasPrefix(definition, disabledMarkerConstant)
	if disabled {
		definition = strings.TrimPrefix(definition, disabledMarkerConstant)
	}

	name, found := FunctionName(definition)
	if !found {
		return TestCase{}, false
	}

	return TestCase{
		Line:       line,
		Name:       name,
		Disabled:   disabled,
		nameOffset: len(line) - len(definition) + len(definitionKeywordConstant),
	}, true
}

// FunctionName extracts the name between the def keyword and the parameter list of an enabled test case line.
func FunctionName(definition string) (string, bool) {
	if !strings.HasPrefix(definition, definitionKeywordConstant+testNamePrefixConstant) {
		return "", false
	}

	remainder := strings.TrimPrefix(definition, definitionKeywordConstant)
	openingIndex := strings.Index(remainder, parameterListOpeningConstant)
	if openingIndex < 0 {
		return "", false
	}

	return remainder[:openingIndex], true
}

// NamePrefix drops the numeric suffix and its separating underscore, if any.
func NamePrefix(name string) string {
	return strings.TrimSuffix(name[:len(name)-suffixLength(name)], nameSeparatorConstant)
}

// NumericSuffix returns the ordinal at the end of the name: the trailing two
// characters, or the whole trailing digit run when it is longer (test_x_100).
func NumericSuffix(name string) string {
	return name[len(name)-suffixLength(name):]
}

func suffixLength(name string) int {
	digitCount := 0
	for digitCount < len(name) && isDigit(name[len(name)-1-digitCount]) {
		digitCount++
	}
	if digitCount > suffixLengthConstant {
		return digitCount
	}
	if len(name) < suffixLengthConstant {
		return len(name)
	}
	return suffixLengthConstant
}

func isDigit(character byte) bool {
	return character >= '0' && character <= '9'
}

// FormatSuffix renders the ordinal zero padded to two digits.
func FormatSuffix(position int) string {
	return fmt.Sprintf(suffixTemplateConstant, position)
}

// Prefix returns the case's name prefix.
func (testCase TestCase) Prefix() string {
	return NamePrefix(testCase.Name)
}

// Suffix returns the case's numeric suffix.
func (testCase TestCase) Suffix() string {
	return NumericSuffix(testCase.Name)
}

// WithPrefix returns the line with the name prefix replaced. Everything else is kept byte for byte.
func (testCase TestCase) WithPrefix(prefix string) string {
	start := testCase.nameOffset
	end := start + len(testCase.Prefix())
	return testCase.Line[:start] + prefix + testCase.Line[end:]
}

// WithSuffix returns the line with the numeric suffix replaced. Everything else is kept byte for byte.
func (testCase TestCase) WithSuffix(suffix string) string {
	end := testCase.nameOffset + len(testCase.Name)
	start := end - len(testCase.Suffix())
	return testCase.Line[:start] + suffix + testCase.Line[end:]
}
