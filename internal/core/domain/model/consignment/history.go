package consignment

import (
	"fmt"
	"time"

	"hubops/internal/pkg/errs"
)

// EntryKind classifies history entries.
type EntryKind int

const (
	UnknownEntry EntryKind = iota
	// TransitionEntry records a forward step of the lifecycle table.
	TransitionEntry
	// AnnotationEntry records an event that leaves the status unchanged,
	// such as a short mark on document completion or a member removal.
	AnnotationEntry
	// OverrideEntry records an administrative status change outside the table.
	OverrideEntry
)

func (k EntryKind) String() string {
	switch k {
	case TransitionEntry:
		return "TRANSITION"
	case AnnotationEntry:
		return "ANNOTATION"
	case OverrideEntry:
		return "OVERRIDE"
	default:
		return "UNKNOWN"
	}
}

// ParseEntryKind is the inverse of EntryKind.String.
func ParseEntryKind(s string) (EntryKind, error) {
	for _, k := range []EntryKind{TransitionEntry, AnnotationEntry, OverrideEntry} {
		if k.String() == s {
			return k, nil
		}
	}
	return UnknownEntry, errs.NewValueIsInvalidErrorWithCause("entry kind", fmt.Errorf("%q is not a known entry kind", s))
}

// HistoryEntry is one immutable line of a consignment's remarks log.
type HistoryEntry struct {
	Kind  EntryKind
	From  Status
	To    Status
	Actor string
	At    time.Time
	Note  string
}
