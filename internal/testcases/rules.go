package testcases

// Rule decides whether a test case line matches a convention and, if not, how to rewrite it.
type Rule interface {
	// Name identifies the rule in commands and logs.
	Name() string
	Correct(module Module, testCase TestCase) (string, bool)
}

const (
	nameRuleNameConstant   = "test-names"
	numberRuleNameConstant = "test-numbers"
)

// NameRule requires each test case name prefix to equal the module short name.
type NameRule struct{}

// Name identifies the rule.
func (NameRule) Name() string {
	return nameRuleNameConstant
}

// Correct swaps the name prefix for the module short name, keeping the numeric suffix.
func (NameRule) Correct(module Module, testCase TestCase) (string, bool) {
	if testCase.Prefix() == module.ShortName {
		return testCase.Line, false
	}
	return testCase.WithPrefix(module.ShortName), true
}

// NumberRule requires the Nth test case of a module to end with the two digit ordinal N.
type NumberRule struct{}

// Name identifies the rule.
func (NumberRule) Name() string {
	return numberRuleNameConstant
}

// Correct rewrites the numeric suffix to the case position.
func (NumberRule) Correct(_ Module, testCase TestCase) (string, bool) {
	desiredSuffix := FormatSuffix(testCase.Position)
	if testCase.Suffix() == desiredSuffix {
		return testCase.Line, false
	}
	return testCase.WithSuffix(desiredSuffix), true
}
