// Package pipeline orchestrates a full reduction run: discover and load
// the CSV exports, build the roster, meetings and votes, compute
// statistics and alignment, validate the graph, and hand it to the
// publisher and optional archive snapshot.
//
// Each run carries a generated run id on its log records so interleaved
// runs (watch mode) stay distinguishable.
package pipeline
