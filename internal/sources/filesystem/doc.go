// Package filesystem wraps file access for pysweep and converts file contents
// to and from terminator-preserving line slices.
package filesystem
