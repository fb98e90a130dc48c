// Package votes extracts decided agenda items from aggregated meetings.
//
// Votes order deterministically by (event date, agenda sequence) and take
// ids 1..V in that order. Tallies are always recomputed from the decoded
// member choices; the upstream tally string is provenance, never
// authoritative. Topic labels come from the taxonomy keyword table.
package votes
