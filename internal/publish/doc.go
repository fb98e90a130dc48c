// Package publish renders the reduced graph into the fixed JSON document
// tree consumed by the site.
//
// Documents are compact JSON with stable key order, written atomically
// (temp file plus rename) under a file lock so a crashed or concurrent
// run never leaves a half-written tree. Output is a pure function of the
// graph: identical input produces byte-identical documents.
package publish
