package consignment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
	"hubops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrConsignmentIsNotConstructed = errors.New("Consignment must be created via NewConsignment or RestoreConsignment")

// Details carries the booking attributes of a consignment. The core stores
// them as supplied by the booking collaborator.
type Details struct {
	OriginCityID      string
	DestinationCityID string
	ServiceID         string
	Weight            decimal.Decimal
	Pieces            int
	PaymentMode       PaymentMode
	TotalAmount       decimal.Decimal
	CODAmount         decimal.Decimal
}

func (d Details) validate() error {
	var errList []error
	if strings.TrimSpace(d.OriginCityID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("originCityId"))
	}
	if strings.TrimSpace(d.DestinationCityID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("destinationCityId"))
	}
	if strings.TrimSpace(d.ServiceID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("serviceId"))
	}
	if !d.Weight.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%s is not greater than 0", d.Weight)))
	}
	if d.Pieces <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"pieces", fmt.Errorf("%d is not greater than 0", d.Pieces)))
	}
	if err := d.PaymentMode.Validate(); err != nil {
		errList = append(errList, err)
	}
	if d.TotalAmount.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%s is negative", d.TotalAmount)))
	}
	if d.CODAmount.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"codAmount", fmt.Errorf("%s is negative", d.CODAmount)))
	}
	if d.PaymentMode != PaymentCOD && !d.CODAmount.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"codAmount", fmt.Errorf("cod amount set for %s payment", d.PaymentMode)))
	}
	return errors.Join(errList...)
}

// Consignment is the shipment aggregate. Its CN never changes, its status only
// moves forward through the lifecycle table (or an explicit override), and its
// history is append-only.
type Consignment struct {
	cn      string
	details Details
	status  Status

	history []HistoryEntry
	// persisted is the number of history entries already stored.
	persisted int

	holders map[Phase]kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsignment registers a consignment in PENDING status. The registration
// itself is logged as an annotation.
func NewConsignment(cn string, details Details, actor string, at time.Time) (*Consignment, error) {
	c := &Consignment{
		status:  Pending,
		holders: make(map[Phase]kernel.UUID),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setCN(cn), c.setDetails(details)); err != nil {
		return nil, err
	}

	c.append(AnnotationEntry, Pending, Pending, actor, at, "registered")
	return c, nil
}

// RestoreConsignment rebuilds a consignment from storage. All supplied history
// entries count as persisted.
func RestoreConsignment(
	cn string,
	details Details,
	status Status,
	history []HistoryEntry,
	holders map[Phase]kernel.UUID,
) (*Consignment, error) {
	c := &Consignment{
		history:   append([]HistoryEntry(nil), history...),
		persisted: len(history),
		holders:   make(map[Phase]kernel.UUID, len(holders)),
		guard:     guard.NewConstructorGuard(),
	}
	for phase, id := range holders {
		c.holders[phase] = id
	}

	if err := errors.Join(c.setCN(cn), c.setDetails(details), status.Validate()); err != nil {
		return nil, err
	}
	c.status = status
	return c, nil
}

func (c *Consignment) Validate() error {
	if c == nil {
		return ErrConsignmentIsNotConstructed
	}
	return c.guard.Validate(ErrConsignmentIsNotConstructed)
}

func (c *Consignment) CN() string {
	return c.cn
}

func (c *Consignment) Details() Details {
	return c.details
}

func (c *Consignment) Status() Status {
	return c.status
}

// History returns a copy of the full remarks log in append order.
func (c *Consignment) History() []HistoryEntry {
	return append([]HistoryEntry(nil), c.history...)
}

// UncommittedHistory returns the entries appended since the last MarkCommitted.
func (c *Consignment) UncommittedHistory() []HistoryEntry {
	return append([]HistoryEntry(nil), c.history[c.persisted:]...)
}

// MarkCommitted is called once the transaction that stored the pending
// entries has committed.
func (c *Consignment) MarkCommitted() {
	c.persisted = len(c.history)
}

// HeldBy returns the document currently recorded for the phase, if any.
func (c *Consignment) HeldBy(phase Phase) (kernel.UUID, bool) {
	id, ok := c.holders[phase]
	return id, ok
}

// Attach records docID as the holder for the phase.
func (c *Consignment) Attach(phase Phase, docID kernel.UUID) error {
	if err := docID.Validate(); err != nil {
		return err
	}
	c.holders[phase] = docID
	return nil
}

// Detach clears the holder for the phase when it is docID.
func (c *Consignment) Detach(phase Phase, docID kernel.UUID) {
	if current, ok := c.holders[phase]; ok && current.IsEqual(docID) {
		delete(c.holders, phase)
	}
}

// TransitionTo applies one forward step from the lifecycle table and logs it.
// VOIDED is reachable only through Void.
func (c *Consignment) TransitionTo(next Status, actor string, note string, at time.Time) error {
	if next == Voided {
		return errs.NewInvalidTransitionErrorWithCause(c.cn, c.status.String(), next.String(),
			errors.New("use void with a reason"))
	}

	newStatus, err := c.status.Transition(c.cn, next)
	if err != nil {
		return err
	}

	c.append(TransitionEntry, c.status, newStatus, actor, at, note)
	c.status = newStatus
	return nil
}

// Advance applies a direct status update from the booking and pickup flow.
func (c *Consignment) Advance(next Status, actor string, note string, at time.Time) error {
	if !next.IsDirectTarget() {
		return errs.NewInvalidTransitionErrorWithCause(c.cn, c.status.String(), next.String(),
			errors.New("status is set by hub documents"))
	}
	return c.TransitionTo(next, actor, note, at)
}

// Void moves a pre-hub consignment to the absorbing VOIDED status.
func (c *Consignment) Void(reason string, actor string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	newStatus, err := c.status.Transition(c.cn, Voided)
	if err != nil {
		return err
	}

	c.append(TransitionEntry, c.status, newStatus, actor, at, reason)
	c.status = newStatus
	return nil
}

// Override sets the status outside the lifecycle table. It is an administrative
// correction and is logged as an OVERRIDE entry with the mandatory reason.
func (c *Consignment) Override(to Status, reason string, actor string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if to == c.status {
		return errs.NewInvalidTransitionErrorWithCause(c.cn, c.status.String(), to.String(),
			errors.New("status is unchanged"))
	}

	c.append(OverrideEntry, c.status, to, actor, at, reason)
	c.status = to
	return nil
}

// Annotate logs a note without changing the status.
func (c *Consignment) Annotate(note string, actor string, at time.Time) {
	c.append(AnnotationEntry, c.status, c.status, actor, at, note)
}

func (c *Consignment) append(kind EntryKind, from Status, to Status, actor string, at time.Time, note string) {
	c.history = append(c.history, HistoryEntry{
		Kind:  kind,
		From:  from,
		To:    to,
		Actor: actor,
		At:    at,
		Note:  note,
	})
}

func (c *Consignment) setCN(cn string) error {
	cn = strings.TrimSpace(cn)
	if cn == "" {
		return errs.NewValueIsRequiredError("cn")
	}
	c.cn = cn
	return nil
}

func (c *Consignment) setDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
