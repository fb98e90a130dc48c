// Package stats computes per-member voting behavior and pairwise
// alignment over the constructed vote list.
//
// Dissent is only defined on decided votes (PASS or FAIL) where the
// member cast a substantive choice; a dissent is a NAY on a PASS or an
// AYE on a FAIL, and counts as close when the vote's margin is within the
// configured bound. Alignment pairs materialize only past a minimum
// shared-vote threshold so small samples do not produce noisy rates.
package stats
