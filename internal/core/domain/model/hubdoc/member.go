package hubdoc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrMemberIsNotConstructed = errors.New("Member must be created through a Document")

// MemberStatus is the per-document sub-status of a member consignment.
type MemberStatus int

const (
	MemberUnknown MemberStatus = iota
	MemberReceived
	MemberLoaded
	MemberUnloaded
	MemberShort
	MemberDispatched
	MemberDelivered
	MemberReturned
	MemberRefused
	MemberPending
	// MemberVoided marks a member whose consignment was voided before the
	// document completed. It is excluded from the short/pending defaults.
	MemberVoided
)

func getMemberStatusStrings() map[MemberStatus]string {
	return map[MemberStatus]string{
		MemberReceived:   "RECEIVED",
		MemberLoaded:     "LOADED",
		MemberUnloaded:   "UNLOADED",
		MemberShort:      "SHORT",
		MemberDispatched: "DISPATCHED",
		MemberDelivered:  "DELIVERED",
		MemberReturned:   "RETURNED",
		MemberRefused:    "REFUSED",
		MemberPending:    "PENDING",
		MemberVoided:     "VOIDED",
	}
}

func ParseMemberStatus(s string) (MemberStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getMemberStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return MemberUnknown, errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%q is not a member status", s))
}

func (s MemberStatus) Validate() error {
	if _, ok := getMemberStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("member status", fmt.Errorf("%d is not a member status", s))
	}
	return nil
}

func (s MemberStatus) String() string {
	if str, ok := getMemberStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Member is the join record between a document and one consignment.
type Member struct {
	id         kernel.UUID
	cn         string
	status     MemberStatus
	scannedAt  time.Time
	resolvedAt *time.Time

	guard guard.ConstructorGuard
}

func newMember(id kernel.UUID, cn string, status MemberStatus, scannedAt time.Time, resolved bool) (*Member, error) {
	cn = strings.TrimSpace(cn)
	if err := errors.Join(id.Validate(), requireCN(cn)); err != nil {
		return nil, err
	}

	m := &Member{
		id:        id,
		cn:        cn,
		status:    status,
		scannedAt: scannedAt,
		guard:     guard.NewConstructorGuard(),
	}
	if resolved {
		at := scannedAt
		m.resolvedAt = &at
	}
	return m, nil
}

// RestoreMember rebuilds a member loaded from storage.
func RestoreMember(
	id kernel.UUID,
	cn string,
	status MemberStatus,
	scannedAt time.Time,
	resolvedAt *time.Time,
) (*Member, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	m, err := newMember(id, cn, status, scannedAt, false)
	if err != nil {
		return nil, err
	}
	m.resolvedAt = resolvedAt
	return m, nil
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) CN() string {
	return m.cn
}

func (m *Member) Status() MemberStatus {
	return m.status
}

func (m *Member) ScannedAt() time.Time {
	return m.scannedAt
}

func (m *Member) ResolvedAt() *time.Time {
	return m.resolvedAt
}

// IsResolved reports whether the member already carries an outcome.
func (m *Member) IsResolved() bool {
	return m.resolvedAt != nil
}

func (m *Member) resolve(status MemberStatus, at time.Time) {
	m.status = status
	m.resolvedAt = &at
}

func requireCN(cn string) error {
	if cn == "" {
		return errs.NewValueIsRequiredError("cn")
	}
	return nil
}
