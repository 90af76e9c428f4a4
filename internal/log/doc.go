// Package log provides run diagnostics built on top of the standard slog package.
//
// This package extends slog to provide:
//   - A second stream that receives only error-level records, so the
//     problems of a run can be read apart from its progress messages
//   - Per-level counts of the records logged during a run
//   - Configurable log levels with verbose mode support
//
// # Usage
//
//	// Create a run logger writing everything to stderr and errors to a file
//	logger, handler := log.NewRunLogger(os.Stderr, errFile, verbose)
//
//	// Use as a standard slog.Logger
//	logger.Error("unparseable date", "series", "Boskone", "cell", "TBD")
//
//	// Read the counts for the run summary
//	warnings, errors := handler.Counts().Warnings(), handler.Counts().Errors()
package log
