package services

import (
	"fmt"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"
)

// DocumentEngine is the single engine behind arrival scan sheets, manifests
// and delivery sheets. Everything kind-specific comes from the document's
// hubdoc.Policy. It works on loaded aggregates only; callers persist them.
type DocumentEngine struct{}

func NewDocumentEngine() DocumentEngine {
	return DocumentEngine{}
}

// AddMember scans c into doc and moves c to the kind's forward status.
//
// A CN already in doc, or held by another OPEN document of the same kind,
// is a DuplicateMember and leaves both aggregates untouched. A consignment
// whose status cannot make the forward step is an InvalidTransition.
//
// A consignment already at the kind's forward status with a free holder
// slot (removed from a document, or defaulted on completion) is re-scanned:
// it is attached and annotated without a transition.
func (e DocumentEngine) AddMember(
	doc *hubdoc.Document,
	c *consignment.Consignment,
	memberID kernel.UUID,
	actor string,
	at time.Time,
) (*hubdoc.Member, error) {
	if err := validate(doc, c); err != nil {
		return nil, err
	}

	policy := doc.Policy()
	if holder, held := c.HeldBy(policy.Phase); held && !holder.IsEqual(doc.ID()) {
		return nil, errs.NewDuplicateMemberError(c.CN(), holder.String())
	}

	member, err := doc.AddMember(memberID, c.CN(), at)
	if err != nil {
		return nil, err
	}

	if c.Status() == policy.OnAdd {
		c.Annotate(scanNote("re-scanned into", doc), actor, at)
	} else if err = c.TransitionTo(policy.OnAdd, actor, scanNote("scanned into", doc), at); err != nil {
		_, _ = doc.RemoveMember(member.ID())
		return nil, err
	}
	if err = c.Attach(policy.Phase, doc.ID()); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember drops a member from an OPEN document. The consignment keeps
// its status; the removal is logged as an annotation.
func (e DocumentEngine) RemoveMember(
	doc *hubdoc.Document,
	c *consignment.Consignment,
	memberID kernel.UUID,
	actor string,
	at time.Time,
) (*hubdoc.Member, error) {
	if err := validate(doc, c); err != nil {
		return nil, err
	}
	if m, ok := doc.Member(memberID); ok && m.CN() != c.CN() {
		return nil, errs.NewValueIsInvalidErrorWithCause("cn",
			fmt.Errorf("member %s holds %s, not %s", memberID, m.CN(), c.CN()))
	}

	member, err := doc.RemoveMember(memberID)
	if err != nil {
		return nil, err
	}

	c.Annotate(scanNote("removed from", doc), actor, at)
	c.Detach(doc.Policy().Phase, doc.ID())
	return member, nil
}

// ResolveMember records a per-member outcome. Outcomes that carry a
// consignment status (delivery phase 2) apply that transition; the others
// (manifest unload) are logged as annotations.
func (e DocumentEngine) ResolveMember(
	doc *hubdoc.Document,
	c *consignment.Consignment,
	memberID kernel.UUID,
	outcome hubdoc.MemberStatus,
	actor string,
	at time.Time,
) (*hubdoc.Member, error) {
	if err := validate(doc, c); err != nil {
		return nil, err
	}
	if !doc.IsOpen() {
		return nil, errs.NewAlreadyClosedError(doc.Kind().String(), doc.Code())
	}
	m, ok := doc.Member(memberID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("member", memberID.String())
	}
	if m.CN() != c.CN() {
		return nil, errs.NewValueIsInvalidErrorWithCause("cn",
			fmt.Errorf("member %s holds %s, not %s", memberID, m.CN(), c.CN()))
	}

	// Check the consignment step before the member is marked resolved.
	target, allowed := doc.Policy().Resolution(outcome)
	if allowed && !m.IsResolved() && target != consignment.Unknown && !c.Status().CanTransitionTo(target) {
		return nil, errs.NewInvalidTransitionError(c.CN(), c.Status().String(), target.String())
	}

	member, target, err := doc.ResolveMember(memberID, outcome, at)
	if err != nil {
		return nil, err
	}

	note := fmt.Sprintf("%s on %s %s", outcome, doc.Kind(), doc.Code())
	if target == consignment.Unknown {
		c.Annotate(note, actor, at)
		return member, nil
	}
	if err = c.TransitionTo(target, actor, note, at); err != nil {
		return nil, err
	}
	return member, nil
}

// Complete freezes doc. Each unresolved member gets the kind's default and
// an annotation in its consignment's history, unless the consignment has
// already moved past the kind's forward status; members whose consignment
// is VOIDED are marked VOIDED and skipped. Every member is released from the
// document's holder slot. Completing a COMPLETED document changes nothing
// and reports false.
//
// members maps CN to the loaded consignment for every member of doc.
func (e DocumentEngine) Complete(
	doc *hubdoc.Document,
	members map[string]*consignment.Consignment,
	actor string,
	at time.Time,
) (bool, error) {
	if err := doc.Validate(); err != nil {
		return false, err
	}
	if !doc.IsOpen() {
		return false, nil
	}

	voided := make(map[string]bool)
	for _, m := range doc.Members() {
		c, ok := members[m.CN()]
		if !ok {
			return false, errs.NewObjectNotFoundError("consignment", m.CN())
		}
		if err := c.Validate(); err != nil {
			return false, err
		}
		if c.Status() == consignment.Voided {
			voided[m.CN()] = true
		}
	}

	policy := doc.Policy()
	defaulted, changed := doc.Complete(at, voided)
	for _, m := range defaulted {
		if members[m.CN()].Status().Rank() > policy.OnAdd.Rank() {
			continue
		}
		note := fmt.Sprintf("%s on completion of %s %s", m.Status(), doc.Kind(), doc.Code())
		members[m.CN()].Annotate(note, actor, at)
	}

	for _, m := range doc.Members() {
		members[m.CN()].Detach(policy.Phase, doc.ID())
	}
	return changed, nil
}

func validate(doc *hubdoc.Document, c *consignment.Consignment) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return c.Validate()
}

func scanNote(verb string, doc *hubdoc.Document) string {
	return fmt.Sprintf("%s %s %s", verb, doc.Kind(), doc.Code())
}
