package hubdoc_test

import (
	"testing"
	"time"

	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2025, 2, 3, 7, 0, 0, 0, time.UTC)

func newDocument(t *testing.T, kind hubdoc.Kind, code string) *hubdoc.Document {
	t.Helper()
	d, err := hubdoc.NewDocument(kernel.NewUUID(), code, kind, hubdoc.Attributes{RiderCode: "RD-9"}, created)
	require.NoError(t, err)
	return d
}

func TestNewDocument(t *testing.T) {
	t.Run("should start open and empty", func(t *testing.T) {
		d := newDocument(t, hubdoc.Manifest, "MF25000001")

		require.NoError(t, d.Validate())
		assert.Equal(t, hubdoc.Open, d.Status())
		assert.Equal(t, hubdoc.Manifest, d.Kind())
		assert.Equal(t, "RD-9", d.Attributes().RiderCode)
		assert.Empty(t, d.Members())
		assert.Nil(t, d.CompletedAt())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		d, err := hubdoc.NewDocument(kernel.UUID{}, "", hubdoc.UnknownKind, hubdoc.Attributes{}, created)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "code")
		assert.Contains(t, err.Error(), "kind")
	})
}

func TestDocument_AddMember(t *testing.T) {
	t.Run("arrival members are resolved on add", func(t *testing.T) {
		d := newDocument(t, hubdoc.Arrival, "AR2501")

		m, err := d.AddMember(kernel.NewUUID(), "CN000123", created.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, hubdoc.MemberReceived, m.Status())
		assert.True(t, m.IsResolved())
		assert.Empty(t, d.Unresolved())
	})

	t.Run("manifest members wait for unload", func(t *testing.T) {
		d := newDocument(t, hubdoc.Manifest, "MF2501")

		m, err := d.AddMember(kernel.NewUUID(), "CN000123", created)

		require.NoError(t, err)
		assert.Equal(t, hubdoc.MemberLoaded, m.Status())
		assert.False(t, m.IsResolved())
	})

	t.Run("same cn twice is a duplicate", func(t *testing.T) {
		d := newDocument(t, hubdoc.Arrival, "AR2501")
		_, err := d.AddMember(kernel.NewUUID(), "CN000123", created)
		require.NoError(t, err)

		_, err = d.AddMember(kernel.NewUUID(), " CN000123 ", created)

		require.ErrorIs(t, err, errs.ErrDuplicateMember)
		assert.Len(t, d.Members(), 1)
	})

	t.Run("completed document is closed for adds", func(t *testing.T) {
		d := newDocument(t, hubdoc.Arrival, "AR2501")
		d.Complete(created, nil)

		_, err := d.AddMember(kernel.NewUUID(), "CN1", created)

		require.ErrorIs(t, err, errs.ErrAlreadyClosed)
	})
}

func TestDocument_RemoveMember(t *testing.T) {
	d := newDocument(t, hubdoc.Delivery, "DS2501")
	m, err := d.AddMember(kernel.NewUUID(), "CN1", created)
	require.NoError(t, err)

	_, err = d.RemoveMember(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	removed, err := d.RemoveMember(m.ID())
	require.NoError(t, err)
	assert.Equal(t, "CN1", removed.CN())
	assert.Empty(t, d.Members())

	t.Run("re-adding after removal is allowed", func(t *testing.T) {
		_, err := d.AddMember(kernel.NewUUID(), "CN1", created)
		require.NoError(t, err)
	})

	t.Run("removal after completion is rejected", func(t *testing.T) {
		d.Complete(created, nil)
		_, err := d.RemoveMember(d.Members()[0].ID())
		require.ErrorIs(t, err, errs.ErrAlreadyClosed)
	})
}

func TestDocument_ResolveMember(t *testing.T) {
	d := newDocument(t, hubdoc.Delivery, "DS2501")
	m, err := d.AddMember(kernel.NewUUID(), "CN1", created)
	require.NoError(t, err)

	_, _, err = d.ResolveMember(m.ID(), hubdoc.MemberUnloaded, created)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	resolved, target, err := d.ResolveMember(m.ID(), hubdoc.MemberRefused, created.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, consignment.Refused, target)
	assert.Equal(t, hubdoc.MemberRefused, resolved.Status())
	require.NotNil(t, resolved.ResolvedAt())

	_, _, err = d.ResolveMember(m.ID(), hubdoc.MemberDelivered, created)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	t.Run("manifest unload changes no consignment status", func(t *testing.T) {
		mf := newDocument(t, hubdoc.Manifest, "MF2501")
		member, err := mf.AddMember(kernel.NewUUID(), "CN2", created)
		require.NoError(t, err)

		_, target, err := mf.ResolveMember(member.ID(), hubdoc.MemberUnloaded, created)

		require.NoError(t, err)
		assert.Equal(t, consignment.Unknown, target)
	})
}

func TestDocument_Complete(t *testing.T) {
	d := newDocument(t, hubdoc.Manifest, "MF2501")
	unloaded, err := d.AddMember(kernel.NewUUID(), "CN1", created)
	require.NoError(t, err)
	_, err = d.AddMember(kernel.NewUUID(), "CN2", created.Add(time.Second))
	require.NoError(t, err)
	_, err = d.AddMember(kernel.NewUUID(), "CN3", created.Add(2*time.Second))
	require.NoError(t, err)
	_, _, err = d.ResolveMember(unloaded.ID(), hubdoc.MemberUnloaded, created)
	require.NoError(t, err)

	completedAt := created.Add(time.Hour)
	defaulted, changed := d.Complete(completedAt, map[string]bool{"CN3": true})

	require.True(t, changed)
	require.Len(t, defaulted, 1)
	assert.Equal(t, "CN2", defaulted[0].CN())
	assert.Equal(t, hubdoc.MemberShort, defaulted[0].Status())
	assert.Equal(t, hubdoc.Completed, d.Status())
	assert.Equal(t, completedAt, *d.CompletedAt())

	cn3, ok := d.MemberByCN("CN3")
	require.True(t, ok)
	assert.Equal(t, hubdoc.MemberVoided, cn3.Status())
	assert.Equal(t, hubdoc.MemberUnloaded, unloaded.Status())

	t.Run("completing again changes nothing", func(t *testing.T) {
		again, changed := d.Complete(completedAt.Add(time.Hour), nil)

		assert.False(t, changed)
		assert.Empty(t, again)
		assert.Equal(t, completedAt, *d.CompletedAt())
	})
}

func TestRestoreDocument_SortsMembersByScan(t *testing.T) {
	late, err := hubdoc.RestoreMember(kernel.NewUUID(), "CN2", hubdoc.MemberDispatched, created.Add(time.Minute), nil)
	require.NoError(t, err)
	early, err := hubdoc.RestoreMember(kernel.NewUUID(), "CN1", hubdoc.MemberDispatched, created, nil)
	require.NoError(t, err)

	d, err := hubdoc.RestoreDocument(kernel.NewUUID(), "DS1", hubdoc.Delivery, hubdoc.Open,
		hubdoc.Attributes{}, created, nil, []*hubdoc.Member{late, early})

	require.NoError(t, err)
	members := d.Members()
	assert.Equal(t, "CN1", members[0].CN())
	assert.Equal(t, "CN2", members[1].CN())

	_, err = hubdoc.RestoreMember(kernel.NewUUID(), "CN1", hubdoc.MemberUnknown, created, nil)
	require.Error(t, err)
}

func TestKindPolicies(t *testing.T) {
	tests := []struct {
		kind    hubdoc.Kind
		onAdd   consignment.Status
		initial hubdoc.MemberStatus
		def     hubdoc.MemberStatus
		phase   consignment.Phase
	}{
		{hubdoc.Arrival, consignment.AtHub, hubdoc.MemberReceived, hubdoc.MemberUnknown, consignment.PhaseArrival},
		{hubdoc.Manifest, consignment.InTransit, hubdoc.MemberLoaded, hubdoc.MemberShort, consignment.PhaseManifest},
		{hubdoc.Delivery, consignment.OutForDelivery, hubdoc.MemberDispatched, hubdoc.MemberPending, consignment.PhaseDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := tt.kind.Policy()
			assert.Equal(t, tt.onAdd, p.OnAdd)
			assert.Equal(t, tt.initial, p.Initial)
			assert.Equal(t, tt.def, p.OnComplete)
			assert.Equal(t, tt.phase, p.Phase)

			parsed, err := hubdoc.ParseKind(tt.kind.String())
			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed)
		})
	}

	status, err := hubdoc.ParseMemberStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, hubdoc.MemberDelivered, status)
}
