package headers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/pysweep/internal/reporting"
	"github.com/temirov/pysweep/internal/sources/discovery"
	"github.com/temirov/pysweep/internal/sources/filesystem"
)

const (
	pythonSourceExtensionConstant     = ".py"
	unsortedHeadingTemplateConstant   = "%s"
	originalHeaderLabelConstant       = "  original:\n"
	sortedHeaderLabelConstant         = "  sorted:\n"
	malformedHeadingTemplateConstant  = "MALFORMED HEADER: %s"
	collectedLinesLabelConstant       = "  collected:\n"
	offendingLineLabelConstant        = "  offending line:\n"
	summaryTemplateConstant           = "Total files scanned: %d\nTotal non-alphabetized headers: %d\n"
	discoveryErrorTemplateConstant    = "unable to discover python sources: %w"
	auditAbortedErrorTemplateConstant = "header audit aborted: %w"
	auditStartedMessageConstant       = "header audit started"
	auditDiscoveredMessageConstant    = "python sources discovered"
	auditFileMessageConstant          = "inspecting header"
	auditUnsortedMessageConstant      = "header is not alphabetized"
	auditMalformedMessageConstant     = "malformed header"
	auditCompletedMessageConstant     = "header audit completed"
	logFieldRootsConstant             = "roots"
	logFieldFileConstant              = "file"
	logFieldHeaderLengthConstant      = "header_lines"
	logFieldFilesScannedConstant      = "files_scanned"
	logFieldNonAlphabetizedConstant   = "non_alphabetized"
	logFieldDiscoveredConstant        = "discovered"
)

// Options configures a header audit run.
type Options struct {
	Roots []string
}

// Summary aggregates the outcome of an audit run.
type Summary struct {
	FilesScanned    int
	NonAlphabetized int
}

func (summary Summary) add(outcome fileOutcome) Summary {
	summary.FilesScanned++
	if !outcome.alphabetized {
		summary.NonAlphabetized++
	}
	return summary
}

type fileOutcome struct {
	alphabetized bool
}

// Service audits import headers across source trees.
type Service struct {
	discoverer SourceDiscoverer
	fileSystem filesystem.FileSystem
	reporter   *reporting.Reporter
	logger     *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer SourceDiscoverer, fileSystem filesystem.FileSystem, reporter *reporting.Reporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{discoverer: discoverer, fileSystem: fileSystem, reporter: reporter, logger: logger}
}

// Run audits every python source under the roots and prints the final count.
// A malformed header stops the run before any further file is read.
func (service *Service) Run(executionContext context.Context, options Options) (Summary, error) {
	service.logger.Info(auditStartedMessageConstant, zap.Strings(logFieldRootsConstant, options.Roots))

	sourcePaths, discoveryError := service.discoverer.DiscoverFiles(options.Roots, discovery.ExtensionPredicate(pythonSourceExtensionConstant))
	if discoveryError != nil {
		return Summary{}, fmt.Errorf(discoveryErrorTemplateConstant, discoveryError)
	}
	service.logger.Debug(auditDiscoveredMessageConstant, zap.Int(logFieldDiscoveredConstant, len(sourcePaths)))

	summary := Summary{}
	for _, sourcePath := range sourcePaths {
		if contextError := executionContext.Err(); contextError != nil {
			return summary, contextError
		}

		outcome, auditError := service.auditFile(sourcePath)
		if auditError != nil {
			return summary, fmt.Errorf(auditAbortedErrorTemplateConstant, auditError)
		}
		summary = summary.add(outcome)
	}

	service.reporter.Printf(summaryTemplateConstant, summary.FilesScanned, summary.NonAlphabetized)
	service.logger.Info(
		auditCompletedMessageConstant,
		zap.Int(logFieldFilesScannedConstant, summary.FilesScanned),
		zap.Int(logFieldNonAlphabetizedConstant, summary.NonAlphabetized),
	)

	return summary, nil
}

func (service *Service) auditFile(sourcePath string) (fileOutcome, error) {
	lines, readError := filesystem.ReadLines(service.fileSystem, sourcePath)
	if readError != nil {
		return fileOutcome{}, readError
	}

	header, extractionError := ExtractHeader(sourcePath, lines)
	if extractionError != nil {
		var malformedError *MalformedHeaderError
		if errors.As(extractionError, &malformedError) {
			service.reportMalformed(malformedError)
		}
		return fileOutcome{}, extractionError
	}

	service.logger.Debug(auditFileMessageConstant, zap.String(logFieldFileConstant, sourcePath), zap.Int(logFieldHeaderLengthConstant, len(header)))

	if header.IsAlphabetized() {
		return fileOutcome{alphabetized: true}, nil
	}

	service.logger.Debug(auditUnsortedMessageConstant, zap.String(logFieldFileConstant, sourcePath))
	service.reporter.Heading(unsortedHeadingTemplateConstant, sourcePath)
	service.reporter.Printf(originalHeaderLabelConstant)
	service.reporter.Lines(header)
	service.reporter.Printf(sortedHeaderLabelConstant)
	service.reporter.Lines(header.Sorted())

	return fileOutcome{alphabetized: false}, nil
}

func (service *Service) reportMalformed(malformedError *MalformedHeaderError) {
	service.logger.Error(auditMalformedMessageConstant, zap.String(logFieldFileConstant, malformedError.Path), zap.Error(malformedError))
	service.reporter.Heading(malformedHeadingTemplateConstant, malformedError.Path)
	service.reporter.Printf(collectedLinesLabelConstant)
	service.reporter.Lines(malformedError.CollectedLines)
	service.reporter.Printf(offendingLineLabelConstant)
	service.reporter.Lines([]string{malformedError.OffendingLine})
}
