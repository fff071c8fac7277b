// Package hubdoc models the three grouping documents a consignment passes
// through at a hub: arrival scan sheets, manifests and delivery sheets.
//
// The documents are isomorphic. A Document carries a Kind, and the Kind's
// Policy supplies everything that differs between them:
//
//	kind      add moves consignment to   member on add   resolutions                   default on complete
//	ARRIVAL   AT_HUB                     RECEIVED        (resolved on add)             -
//	MANIFEST  IN_TRANSIT                 LOADED          UNLOADED                      SHORT
//	DELIVERY  OUT_FOR_DELIVERY           DISPATCHED      DELIVERED RETURNED REFUSED    PENDING
//
// A document is OPEN until completed. Membership changes only while OPEN, a
// CN appears at most once per document, and completion gives every
// unresolved member the kind's default so nothing is left silently stuck.
package hubdoc
