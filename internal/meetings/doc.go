// Package meetings groups normalized records into calendar sessions.
//
// Records group primarily by source event id (falling back to event date),
// then all groups sharing a date merge into one meeting: independent
// extraction batches assign different event ids to the same real session.
// Document links merge by first non-empty value in group encounter order,
// a pragmatic source-priority rule rather than a correctness guarantee.
// Two genuinely distinct same-day sessions would be combined as well; see
// DESIGN.md for the known limitation.
//
// No record is created or destroyed: every RawRecord lands in exactly one
// meeting. Meetings sort by date ascending and take ids 1..M.
package meetings
