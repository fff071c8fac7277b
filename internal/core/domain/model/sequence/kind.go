// Package sequence describes the human-readable codes minted for
// consignments, batches and grouping documents.
//
// A code is <prefix><yy><digits>, where yy is the two-digit year of the
// allocation clock and digits are zero-padded to a minimum width. Padding
// never truncates: a number wider than the minimum is printed in full.
package sequence

import (
	"fmt"
	"strings"
	"time"

	"hubops/internal/pkg/errs"
)

// DefaultWidth is the minimum number of digits after the year.
const DefaultWidth = 6

// MaxWidth keeps the random draw bound 10^width within int64.
const MaxWidth = 18

type Kind int

const (
	UnknownKind Kind = iota
	KindCN
	KindBatch
	KindArrival
	KindManifest
	KindDelivery
)

type kindInfo struct {
	name   string
	prefix string
}

func getKinds() map[Kind]kindInfo {
	return map[Kind]kindInfo{
		KindCN:       {name: "CN", prefix: "CN"},
		KindBatch:    {name: "BATCH", prefix: "BT"},
		KindArrival:  {name: "ARRIVAL", prefix: "AR"},
		KindManifest: {name: "MANIFEST", prefix: "MF"},
		KindDelivery: {name: "DELIVERY", prefix: "DS"},
	}
}

// ParseKind accepts the kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for k, info := range getKinds() {
		if info.name == normalized {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a sequence kind", s))
}

func (k Kind) Validate() error {
	if _, ok := getKinds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a sequence kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if info, ok := getKinds()[k]; ok {
		return info.name
	}
	return "UNKNOWN"
}

func (k Kind) Prefix() string {
	return getKinds()[k].prefix
}

// Year returns the two-digit year used in codes allocated at t.
func Year(t time.Time) int {
	return t.Year() % 100
}

// Format renders a code for kind at the given year.
//
//	sequence.Format(sequence.KindArrival, 25, 1, 6) // "AR25000001"
func Format(kind Kind, yy int, number int64, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return fmt.Sprintf("%s%02d%0*d", kind.Prefix(), yy, width, number)
}
