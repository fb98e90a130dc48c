// Package roster derives the canonical board member registry from the
// normalized record set.
//
// A member is anyone whose canonical name carries at least one decoded
// vote. Current status comes from presence in the chronologically latest
// extraction batch, not from the member's last vote date, so a member who
// simply stops appearing in newer exports is marked former even when the
// roster spans gaps. Member ids are a pure function of the name set:
// members sort by last-name key (full name breaking ties) and ids run 1..N
// in that order, independent of file scan order.
package roster
