// Package logging constructs the slog loggers used across the pipeline.
//
// It offers a human-oriented console handler for interactive runs and a
// JSON handler for captured output, plus small attr helpers so call sites
// stay terse. Components obtain a child logger via NewComponentLogger; the
// component name is rendered as a message prefix on the console and as a
// regular attribute in JSON output.
//
// Log output is diagnostic only. Nothing the pipeline publishes is derived
// from it, so timestamps and run ids in log lines do not threaten the
// byte-identical-output guarantee.
package logging
