package hubdoc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"
)

var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or RestoreDocument")

// Attributes are free-form assignment details. They are stored as given and
// never checked against reference data.
type Attributes struct {
	StationCode   string
	BatchCode     string
	RiderCode     string
	DriverCode    string
	VehicleNumber string
	RouteCode     string
	Remarks       string
}

// Document is a grouping document of one Kind.
type Document struct {
	id          kernel.UUID
	code        string
	kind        Kind
	status      Status
	attributes  Attributes
	createdAt   time.Time
	completedAt *time.Time
	members     []*Member

	guard guard.ConstructorGuard
}

// NewDocument creates an OPEN document with no members.
func NewDocument(id kernel.UUID, code string, kind Kind, attributes Attributes, createdAt time.Time) (*Document, error) {
	d := &Document{
		status:     Open,
		attributes: attributes,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCode(code),
		d.setKind(kind),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDocument rebuilds a document loaded from storage. Members are kept
// in scan order.
func RestoreDocument(
	id kernel.UUID,
	code string,
	kind Kind,
	status Status,
	attributes Attributes,
	createdAt time.Time,
	completedAt *time.Time,
	members []*Member,
) (*Document, error) {
	d := &Document{
		status:      status,
		attributes:  attributes,
		createdAt:   createdAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	errList := []error{d.setID(id), d.setCode(code), d.setKind(kind), status.Validate()}
	for _, m := range members {
		errList = append(errList, m.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	d.members = append([]*Member(nil), members...)
	sort.SliceStable(d.members, func(i, j int) bool {
		return d.members[i].scannedAt.Before(d.members[j].scannedAt)
	})
	return d, nil
}

func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d *Document) ID() kernel.UUID {
	return d.id
}

func (d *Document) Code() string {
	return d.code
}

func (d *Document) Kind() Kind {
	return d.kind
}

func (d *Document) Policy() Policy {
	return d.kind.Policy()
}

func (d *Document) Status() Status {
	return d.status
}

func (d *Document) IsOpen() bool {
	return d.status == Open
}

func (d *Document) Attributes() Attributes {
	return d.attributes
}

func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Document) CompletedAt() *time.Time {
	return d.completedAt
}

// Members returns the members in scan order.
func (d *Document) Members() []*Member {
	return append([]*Member(nil), d.members...)
}

// Member finds a member by its id.
func (d *Document) Member(memberID kernel.UUID) (*Member, bool) {
	for _, m := range d.members {
		if m.id.IsEqual(memberID) {
			return m, true
		}
	}
	return nil, false
}

// MemberByCN finds the member holding cn.
func (d *Document) MemberByCN(cn string) (*Member, bool) {
	cn = strings.TrimSpace(cn)
	for _, m := range d.members {
		if m.cn == cn {
			return m, true
		}
	}
	return nil, false
}

// AddMember appends cn with the kind's initial sub-status. A CN already in
// the document is rejected with DuplicateMember and nothing changes.
func (d *Document) AddMember(memberID kernel.UUID, cn string, scannedAt time.Time) (*Member, error) {
	if !d.IsOpen() {
		return nil, errs.NewAlreadyClosedError(d.kind.String(), d.code)
	}
	if _, exists := d.MemberByCN(cn); exists {
		return nil, errs.NewDuplicateMemberError(strings.TrimSpace(cn), d.code)
	}

	policy := d.Policy()
	m, err := newMember(memberID, cn, policy.Initial, scannedAt, policy.ResolvedOnAdd)
	if err != nil {
		return nil, err
	}
	d.members = append(d.members, m)
	return m, nil
}

// RemoveMember drops a member from an OPEN document and returns it.
func (d *Document) RemoveMember(memberID kernel.UUID) (*Member, error) {
	if !d.IsOpen() {
		return nil, errs.NewAlreadyClosedError(d.kind.String(), d.code)
	}
	for i, m := range d.members {
		if m.id.IsEqual(memberID) {
			d.members = append(d.members[:i], d.members[i+1:]...)
			return m, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("member", memberID.String())
}

// ResolveMember records an outcome for one member. It returns the
// consignment status the outcome moves to, or consignment.Unknown when the
// outcome is recorded on the document only.
func (d *Document) ResolveMember(
	memberID kernel.UUID,
	outcome MemberStatus,
	at time.Time,
) (*Member, consignment.Status, error) {
	if !d.IsOpen() {
		return nil, consignment.Unknown, errs.NewAlreadyClosedError(d.kind.String(), d.code)
	}
	m, ok := d.Member(memberID)
	if !ok {
		return nil, consignment.Unknown, errs.NewObjectNotFoundError("member", memberID.String())
	}

	target, allowed := d.Policy().Resolution(outcome)
	if !allowed {
		return nil, consignment.Unknown, errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%s is not an outcome of a %s document", outcome, d.kind))
	}
	if m.IsResolved() {
		return nil, consignment.Unknown, errs.NewInvalidTransitionError(m.cn, m.status.String(), outcome.String())
	}

	m.resolve(outcome, at)
	return m, target, nil
}

// Complete freezes the document. Unresolved members whose CN is in voided get
// VOIDED, every other unresolved member gets the kind's default. It returns
// the members that received the default, in scan order, and false when the
// document was already COMPLETED.
func (d *Document) Complete(at time.Time, voided map[string]bool) ([]*Member, bool) {
	if !d.IsOpen() {
		return nil, false
	}

	policy := d.Policy()
	var defaulted []*Member
	for _, m := range d.members {
		if m.IsResolved() {
			continue
		}
		if voided[m.cn] {
			m.resolve(MemberVoided, at)
			continue
		}
		m.resolve(policy.OnComplete, at)
		defaulted = append(defaulted, m)
	}

	d.status = Completed
	d.completedAt = &at
	return defaulted, true
}

// Unresolved returns the members still waiting for an outcome.
func (d *Document) Unresolved() []*Member {
	var result []*Member
	for _, m := range d.members {
		if !m.IsResolved() {
			result = append(result, m)
		}
	}
	return result
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	d.code = code
	return nil
}

func (d *Document) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}
