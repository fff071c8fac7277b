// Package batch holds the Batch aggregate: the numbering and reporting scope
// that is ACTIVE for one staff member at a time.
//
// A batch moves ACTIVE -> CLOSED exactly once and is never deleted. Closing a
// CLOSED batch is a no-op. The "at most one ACTIVE per staff code" rule spans
// aggregates and is enforced by the batch use cases together with storage.
package batch
