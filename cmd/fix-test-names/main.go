// Command fix-test-names renames test cases so their prefix matches the containing test module.
package main

import (
	"fmt"
	"os"

	"github.com/temirov/pysweep/cmd/cli"
)

const (
	commandNameConstant       = "test-names"
	exitErrorTemplateConstant = "%v\n"
)

func main() {
	if executionError := cli.ExecuteCommand(commandNameConstant); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
