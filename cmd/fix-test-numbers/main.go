// Command fix-test-numbers renumbers the test cases of every test module 01, 02, ... in file order.
package main

import (
	"fmt"
	"os"

	"github.com/temirov/pysweep/cmd/cli"
)

const (
	commandNameConstant       = "test-numbers"
	exitErrorTemplateConstant = "%v\n"
)

func main() {
	if executionError := cli.ExecuteCommand(commandNameConstant); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
