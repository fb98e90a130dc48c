// Package integrity cross-checks the reduced graph before publication.
//
// Checks are diagnostic, not fatal: a broken reference is reported and
// logged so the operator can inspect the source exports, but the
// pipeline still publishes what it has.
package integrity
