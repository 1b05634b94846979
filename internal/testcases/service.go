package testcases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/pysweep/internal/reporting"
	"github.com/temirov/pysweep/internal/sources/filesystem"
)

const (
	ruleMissingMessageConstant       = "test case rule not configured"
	discoveryErrorTemplateConstant   = "unable to discover test modules: %w"
	moduleHeadingTemplateConstant    = "%s"
	appliedSummaryTemplateConstant   = "Total test modules: %d\nTotal test cases: %d\nTotal mismatches corrected: %d\n"
	reportedSummaryTemplateConstant  = "Total test modules: %d\nTotal test cases: %d\nTotal mismatches found (not applied): %d\n"
	runStartedMessageConstant        = "test case fix started"
	modulesDiscoveredMessageConstant = "test modules discovered"
	moduleScannedMessageConstant     = "test module scanned"
	moduleRewrittenMessageConstant   = "test module rewritten"
	runCompletedMessageConstant      = "test case fix completed"
	logFieldRuleConstant             = "rule"
	logFieldRootsConstant            = "roots"
	logFieldAutoApplyConstant        = "auto_apply"
	logFieldModuleConstant           = "module"
	logFieldDiscoveredConstant       = "discovered"
	logFieldTestCasesConstant        = "test_cases"
	logFieldMismatchesConstant       = "mismatches"
	logFieldModulesVisitedConstant   = "modules_visited"
)

// Options configures a fixer run.
type Options struct {
	Roots []string
	// AutoApply rewrites every visited module with its corrected lines. When
	// false, mismatches are reported and files are left untouched.
	AutoApply bool
}

// Summary aggregates the outcome of a fixer run.
type Summary struct {
	ModulesVisited   int
	TestCasesFound   int
	Mismatches       int
	ModulesRewritten int
}

func (summary Summary) add(outcome moduleOutcome) Summary {
	summary.ModulesVisited++
	summary.TestCasesFound += outcome.testCases
	summary.Mismatches += outcome.mismatches
	if outcome.rewritten {
		summary.ModulesRewritten++
	}
	return summary
}

type moduleOutcome struct {
	testCases  int
	mismatches int
	rewritten  bool
}

// Service applies a Rule to every test module under the configured roots.
type Service struct {
	rule       Rule
	discoverer SourceDiscoverer
	fileSystem filesystem.FileSystem
	reporter   *reporting.Reporter
	logger     *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(rule Rule, discoverer SourceDiscoverer, fileSystem filesystem.FileSystem, reporter *reporting.Reporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{rule: rule, discoverer: discoverer, fileSystem: fileSystem, reporter: reporter, logger: logger}
}

// Run visits every test module, prints each correction, rewrites the modules
// when AutoApply is set, and prints the totals.
func (service *Service) Run(executionContext context.Context, options Options) (Summary, error) {
	if service.rule == nil {
		return Summary{}, errors.New(ruleMissingMessageConstant)
	}

	service.logger.Info(
		runStartedMessageConstant,
		zap.String(logFieldRuleConstant, service.rule.Name()),
		zap.Strings(logFieldRootsConstant, options.Roots),
		zap.Bool(logFieldAutoApplyConstant, options.AutoApply),
	)

	modulePaths, discoveryError := service.discoverer.DiscoverFiles(options.Roots, IsTestModule)
	if discoveryError != nil {
		return Summary{}, fmt.Errorf(discoveryErrorTemplateConstant, discoveryError)
	}
	service.logger.Debug(modulesDiscoveredMessageConstant, zap.Int(logFieldDiscoveredConstant, len(modulePaths)))

	summary := Summary{}
	for _, modulePath := range modulePaths {
		if contextError := executionContext.Err(); contextError != nil {
			return summary, contextError
		}

		outcome, moduleError := service.fixModule(NewModule(modulePath), options.AutoApply)
		if moduleError != nil {
			return summary, moduleError
		}
		summary = summary.add(outcome)
	}

	summaryTemplate := appliedSummaryTemplateConstant
	if !options.AutoApply {
		summaryTemplate = reportedSummaryTemplateConstant
	}
	service.reporter.Printf(summaryTemplate, summary.ModulesVisited, summary.TestCasesFound, summary.Mismatches)

	service.logger.Info(
		runCompletedMessageConstant,
		zap.String(logFieldRuleConstant, service.rule.Name()),
		zap.Int(logFieldModulesVisitedConstant, summary.ModulesVisited),
		zap.Int(logFieldTestCasesConstant, summary.TestCasesFound),
		zap.Int(logFieldMismatchesConstant, summary.Mismatches),
	)

	return summary, nil
}

func (service *Service) fixModule(module Module, autoApply bool) (moduleOutcome, error) {
	lines, readError := filesystem.ReadLines(service.fileSystem, module.Path)
	if readError != nil {
		return moduleOutcome{}, readError
	}

	result := ApplyRule(service.rule, module, lines)
	service.logger.Debug(
		moduleScannedMessageConstant,
		zap.String(logFieldModuleConstant, module.Path),
		zap.Int(logFieldTestCasesConstant, len(result.TestCases)),
		zap.Int(logFieldMismatchesConstant, len(result.Corrections)),
	)

	if len(result.Corrections) > 0 {
		service.reporter.Heading(moduleHeadingTemplateConstant, module.Path)
		for _, correction := range result.Corrections {
			service.reporter.Correction(correction.Before, correction.After)
		}
	}

	outcome := moduleOutcome{testCases: len(result.TestCases), mismatches: len(result.Corrections)}
	if !autoApply {
		return outcome, nil
	}

	if writeError := filesystem.WriteLines(service.fileSystem, module.Path, result.Lines); writeError != nil {
		return moduleOutcome{}, writeError
	}
	service.logger.Debug(moduleRewrittenMessageConstant, zap.String(logFieldModuleConstant, module.Path))
	outcome.rewritten = true

	return outcome, nil
}
