package batch

import (
	"fmt"
	"strings"

	"hubops/internal/pkg/errs"
)

// Status of a batch.
//
//	Active ──> Closed
type Status int

const (
	Unknown Status = iota
	Active
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Active:  "ACTIVE",
		Closed:  "CLOSED",
	}
}

func (s Status) Validate() error {
	if s != Active && s != Closed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid batch status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps "ACTIVE"/"CLOSED" to a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTIVE":
		return Active, nil
	case "CLOSED":
		return Closed, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a batch status", s))
	}
}
