// Package testcases keeps test case names in Python test modules consistent
// with the module that contains them.
//
// A test module is a file named test_<something>.py. Every test case line
// (`def test...(` or the disabled `#def test...(`) is expected to carry the
// module's short name followed by a two digit ordinal. NameRule rewrites the
// name prefix, NumberRule renumbers the cases 01, 02, ... in file order, and
// Service applies either rule across a source tree.
package testcases
