// Package cli constructs the pysweep command-line interface, wiring the Cobra
// command hierarchy, configuration loader, and structured logging primitives.
// Standalone binaries reuse it through ExecuteCommand to run one subcommand.
package cli
