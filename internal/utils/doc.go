// Package utils hosts the plumbing shared by every pysweep command.
//
// ConfigurationLoader layers the embedded defaults, an optional configuration
// file and PYSWEEP_* environment variables through Viper. LoggerFactory builds
// the zap diagnostic logger that writes to standard error, and FlushingWriter
// keeps streamed report output visible while a walk is still in progress.
package utils
