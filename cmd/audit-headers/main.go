// Command audit-headers reports python sources whose import header is not alphabetized.
package main

import (
	"fmt"
	"os"

	"github.com/temirov/pysweep/cmd/cli"
)

const (
	commandNameConstant       = "headers"
	exitErrorTemplateConstant = "%v\n"
)

func main() {
	if executionError := cli.ExecuteCommand(commandNameConstant); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
