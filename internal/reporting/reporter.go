package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/temirov/pysweep/internal/utils"
)

const (
	lineTerminatorConstant      = "\n"
	listedLineTemplateConstant  = "    %s\n"
	removedLineTemplateConstant = "  - %s\n"
	addedLineTemplateConstant   = "  + %s\n"
)

// Reporter streams human readable audit output. Every write is flushed so
// progress stays visible when a run aborts.
type Reporter struct {
	writer       io.Writer
	removedColor *color.Color
	addedColor   *color.Color
	headingColor *color.Color
}

// NewWriterReporter constructs a Reporter writing to the provided writer.
// Highlighting wraps corrections and headings in ANSI colours.
func NewWriterReporter(writer io.Writer, highlight bool) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	reporter := &Reporter{
		writer:       utils.NewFlushingWriter(writer),
		removedColor: color.New(color.FgRed),
		addedColor:   color.New(color.FgGreen),
		headingColor: color.New(color.Bold),
	}

	for _, palette := range []*color.Color{reporter.removedColor, reporter.addedColor, reporter.headingColor} {
		if highlight {
			palette.EnableColor()
		} else {
			palette.DisableColor()
		}
	}

	return reporter
}

// Printf writes a formatted message.
func (reporter *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(reporter.writer, format, args...)
}

// Heading writes a highlighted single-line title.
func (reporter *Reporter) Heading(format string, args ...any) {
	fmt.Fprintln(reporter.writer, reporter.headingColor.Sprintf(format, args...))
}

// Lines writes each source line indented, without doubling terminators.
func (reporter *Reporter) Lines(lines []string) {
	for _, line := range lines {
		fmt.Fprintf(reporter.writer, listedLineTemplateConstant, trimTerminator(line))
	}
}

// Correction writes a before/after pair for a rewritten line.
func (reporter *Reporter) Correction(before string, after string) {
	fmt.Fprintf(reporter.writer, removedLineTemplateConstant, reporter.removedColor.Sprint(trimTerminator(before)))
	fmt.Fprintf(reporter.writer, addedLineTemplateConstant, reporter.addedColor.Sprint(trimTerminator(after)))
}

func trimTerminator(line string) string {
	return strings.TrimRight(line, "\r"+lineTerminatorConstant)
}
