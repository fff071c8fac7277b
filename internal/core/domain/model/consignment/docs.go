// Package consignment provides the shipment aggregate and its lifecycle state machine.
//
// The package includes:
//   - Consignment: identity (CN), booking details, current status, document holders per phase
//     and an append-only history log
//   - Status: the forward-only lifecycle table consumed by the hub document engine and by
//     direct status updates
//   - HistoryEntry: one line of the remarks log (TRANSITION, ANNOTATION or OVERRIDE)
//
// Key business rules:
//   - Every transition appends exactly one history entry with previous status, new status,
//     actor, timestamp and note
//   - VOIDED needs a non-empty reason and is reachable only before AT_HUB
//   - Administrative overrides bypass the table and are logged as OVERRIDE entries
package consignment
