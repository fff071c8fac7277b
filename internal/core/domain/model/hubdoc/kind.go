package hubdoc

import (
	"fmt"
	"strings"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/pkg/errs"
)

type Kind int

const (
	UnknownKind Kind = iota
	Arrival
	Manifest
	Delivery
)

// Policy is the capability set that parameterizes the document engine for
// one kind.
type Policy struct {
	// CodeKind is the sequence kind used to mint document codes.
	CodeKind sequence.Kind
	// Phase is the consignment holder slot a member occupies while OPEN.
	Phase consignment.Phase
	// OnAdd is the consignment status a member is moved to when scanned in.
	OnAdd consignment.Status
	// Initial is the sub-status of a freshly added member.
	Initial MemberStatus
	// ResolvedOnAdd marks kinds whose members need no later outcome.
	ResolvedOnAdd bool
	// Resolutions maps allowed member outcomes to the consignment status
	// they move to; consignment.Unknown means no status change.
	Resolutions map[MemberStatus]consignment.Status
	// OnComplete is the default given to unresolved members at completion.
	OnComplete MemberStatus
}

func getPolicies() map[Kind]Policy {
	return map[Kind]Policy{
		Arrival: {
			CodeKind:      sequence.KindArrival,
			Phase:         consignment.PhaseArrival,
			OnAdd:         consignment.AtHub,
			Initial:       MemberReceived,
			ResolvedOnAdd: true,
			Resolutions:   map[MemberStatus]consignment.Status{},
		},
		Manifest: {
			CodeKind: sequence.KindManifest,
			Phase:    consignment.PhaseManifest,
			OnAdd:    consignment.InTransit,
			Initial:  MemberLoaded,
			Resolutions: map[MemberStatus]consignment.Status{
				MemberUnloaded: consignment.Unknown,
			},
			OnComplete: MemberShort,
		},
		Delivery: {
			CodeKind: sequence.KindDelivery,
			Phase:    consignment.PhaseDelivery,
			OnAdd:    consignment.OutForDelivery,
			Initial:  MemberDispatched,
			Resolutions: map[MemberStatus]consignment.Status{
				MemberDelivered: consignment.Delivered,
				MemberReturned:  consignment.Returned,
				MemberRefused:   consignment.Refused,
			},
			OnComplete: MemberPending,
		},
	}
}

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Arrival:  "ARRIVAL",
		Manifest: "MANIFEST",
		Delivery: "DELIVERY",
	}
}

// ParseKind maps "ARRIVAL", "MANIFEST" or "DELIVERY" to a Kind.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range getKindStrings() {
		if name == normalized {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a document kind", s))
}

func (k Kind) Validate() error {
	if _, ok := getPolicies()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a document kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Policy returns the capability set for k. Callers validate k first.
func (k Kind) Policy() Policy {
	return getPolicies()[k]
}

// Resolution reports the consignment status an outcome moves to and whether
// the outcome is allowed for k at all.
func (p Policy) Resolution(outcome MemberStatus) (consignment.Status, bool) {
	status, ok := p.Resolutions[outcome]
	return status, ok
}
