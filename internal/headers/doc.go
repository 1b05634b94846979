// Package headers audits the import header of Python sources.
//
// The header is the contiguous block of import/from lines at the top of a
// file. Service walks the configured roots, reports every header that is not
// in lexicographic order and stops the run at the first malformed header. It
// never modifies the files it reads.
package headers
