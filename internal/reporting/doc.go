// Package reporting renders the human readable output of pysweep commands.
package reporting
