package testcases

import (
	"path/filepath"
	"strings"
)

const (
	testModulePrefixConstant      = "test_"
	pythonSourceExtensionConstant = ".py"
)

// Module is a python test module and the short name its test cases must carry.
type Module struct {
	Path      string
	ShortName string
}

// IsTestModule reports whether the file name marks a python test module.
func IsTestModule(path string) bool {
	fileName := filepath.Base(path)
	return strings.HasPrefix(fileName, testModulePrefixConstant) && strings.HasSuffix(fileName, pythonSourceExtensionConstant)
}

// NewModule derives the module short name from the file name.
func NewModule(path string) Module {
	return Module{
		Path:      path,
		ShortName: strings.TrimSuffix(filepath.Base(path), pythonSourceExtensionConstant),
	}
}

// ModuleResult is the outcome of applying a rule to a module's lines.
type ModuleResult struct {
	Lines       []string
	TestCases   []TestCase
	Corrections []Correction
}

// Correction records a rewritten test case line.
type Correction struct {
	TestCase TestCase
	Before   string
	After    string
}

// ApplyRule scans the lines in order, numbering test cases from 1 and replacing
// every line the rule corrects. The input slice is not modified.
func ApplyRule(rule Rule, module Module, lines []string) ModuleResult {
	result := ModuleResult{Lines: append([]string(nil), lines...)}

	position := 0
	for lineIndex, line := range lines {
		testCase, isTestCase := ParseTestCase(line)
		if !isTestCase {
			continue
		}

		position++
		testCase.Position = position
		result.TestCases = append(result.TestCases, testCase)

		correctedLine, mismatched := rule.Correct(module, testCase)
		if !mismatched {
			continue
		}

		result.Lines[lineIndex] = correctedLine
		result.Corrections = append(result.Corrections, Correction{TestCase: testCase, Before: line, After: correctedLine})
	}

	return result
}
