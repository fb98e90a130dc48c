// Package source discovers and normalizes the raw CSV vote exports.
//
// Two closed source formats are recognized by filename: quarterly
// FileMaker extractions (LAUSD-YYYY-QN-Votes.csv) and annual Legistar
// extractions (LAUSD-YYYY-Votes.csv). Both share a fixed set of reserved
// columns; every other non-blank header is treated as a board member vote
// column and mapped through the taxonomy name-correction table.
//
// The normalizer emits immutable RawRecord values. It decodes vote tokens
// into canonical choices, normalizes outcomes (with the FLAG sentinel for
// anything ambiguous), and defaults unparseable agenda sequence numbers to
// zero rather than aborting a run. A missing or unreadable file is the one
// hard failure: the pipeline will not guess a schema.
package source
