package hubdoc

import (
	"fmt"
	"strings"

	"hubops/internal/pkg/errs"
)

// Status of a grouping document.
//
//	Open ──> Completed
type Status int

const (
	Unknown Status = iota
	Open
	Completed
)

func (s Status) Validate() error {
	if s != Open && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a document status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Completed:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OPEN":
		return Open, nil
	case "COMPLETED":
		return Completed, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a document status", s))
	}
}
