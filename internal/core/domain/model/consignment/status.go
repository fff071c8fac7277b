package consignment

import (
	"fmt"
	"strings"

	"hubops/internal/pkg/errs"
)

// Status is the lifecycle state of a consignment.
//
// Forward order:
//
//	PENDING ─> BOOKED ─> PICKUP_REQUESTED ─> RIDER_ON_WAY ─┐
//	   │          │              │                │         │
//	   └──────────┴──────────────┴────────────────┴──> AT_HUB ─> IN_TRANSIT ─┐
//	                                                      │                   │
//	                                                      └──> OUT_FOR_DELIVERY <┘
//	                                                                 │
//	                                                  DELIVERED | RETURNED | REFUSED
//
// VOIDED is absorbing and reachable only from the pre-AT_HUB states.
// There is no backward edge; administrative overrides bypass the table and
// are recorded as OVERRIDE history entries.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Booked
	PickupRequested
	RiderOnWay
	AtHub
	InTransit
	OutForDelivery
	Delivered
	Returned
	Refused
	Voided
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		Booked:          "BOOKED",
		PickupRequested: "PICKUP_REQUESTED",
		RiderOnWay:      "RIDER_ON_WAY",
		AtHub:           "AT_HUB",
		InTransit:       "IN_TRANSIT",
		OutForDelivery:  "OUT_FOR_DELIVERY",
		Delivered:       "DELIVERED",
		Returned:        "RETURNED",
		Refused:         "REFUSED",
		Voided:          "VOIDED",
	}
}

// getTransitions is the authoritative forward transition table.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal states have no outgoing edges
	return map[Status][]Status{
		Pending:         {Booked, AtHub, Voided},
		Booked:          {PickupRequested, AtHub, Voided},
		PickupRequested: {RiderOnWay, AtHub, Voided},
		RiderOnWay:      {AtHub, Voided},
		AtHub:           {InTransit, OutForDelivery},
		InTransit:       {OutForDelivery},
		OutForDelivery:  {Delivered, Returned, Refused},
	}
}

// ParseStatus maps the wire name (e.g. "AT_HUB") to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Voided {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Rank orders statuses along the forward lifecycle. The three delivery
// outcomes share a rank; VOIDED ranks after everything.
func (s Status) Rank() int {
	switch s {
	case Delivered, Returned, Refused:
		return int(Delivered)
	case Voided:
		return int(Voided)
	default:
		return int(s)
	}
}

// IsPreHub reports whether the consignment has not reached a hub yet.
func (s Status) IsPreHub() bool {
	return s >= Pending && s <= RiderOnWay
}

// IsTerminal reports whether no forward transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Refused || s == Voided
}

// IsDirectTarget reports whether s may be set by a direct status update.
// Hub statuses and delivery outcomes are reached through grouping documents.
func (s Status) IsDirectTarget() bool {
	return s == Booked || s == PickupRequested || s == RiderOnWay
}

// CanTransitionTo reports whether next is a legal forward step from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next when the edge s -> next exists in the table.
//
//	newStatus, err := current.Transition(consignment.AtHub)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // e.g. the consignment is already DELIVERED
//	}
func (s Status) Transition(subject string, next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(subject, s.String(), next.String())
	}
	return next, nil
}
