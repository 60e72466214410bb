package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkempf/kontoflow/internal/common"
)

func TestSession_CreateList(t *testing.T) {
	s := New()

	refund := s.CreateList("Refundable", "#0000ff", true, false)
	plain := s.CreateList("Shared flat", "#0000ff", false, true)

	assert.Equal(t, 1, refund.ID)
	assert.True(t, refund.RefundList)
	assert.False(t, refund.ListAsCat)
	assert.Equal(t, 2, plain.ID)
	assert.False(t, plain.RefundList)
	assert.True(t, plain.ListAsCat)
}

func TestSession_AddToList(t *testing.T) {
	s := newSessionWithTransactions(3)
	lst := s.CreateList("Refundable", "#0000ff", true, false)

	require.NoError(t, s.AddToList(1, lst.ID))

	// Duplicate add is a distinct no-op, not a hard failure.
	err := s.AddToList(1, lst.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyMember)

	// Out-of-range positions are rejected before any mutation.
	assert.ErrorIs(t, s.AddToList(3, lst.ID), common.ErrInvalidPosition)
	assert.ErrorIs(t, s.AddToList(-1, lst.ID), common.ErrInvalidPosition)

	// Unknown list.
	assert.ErrorIs(t, s.AddToList(0, 42), common.ErrNotFound)

	got, err := s.List(lst.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.TransactionIDs)
}

func TestSession_RemoveFromList(t *testing.T) {
	s := newSessionWithTransactions(3)
	lst := s.CreateList("Refundable", "#0000ff", true, false)
	require.NoError(t, s.AddToList(0, lst.ID))
	require.NoError(t, s.AddToList(2, lst.ID))

	require.NoError(t, s.RemoveFromList(0, lst.ID))
	assert.ErrorIs(t, s.RemoveFromList(0, lst.ID), common.ErrNotMember)
	assert.ErrorIs(t, s.RemoveFromList(1, 42), common.ErrNotFound)

	got, err := s.List(lst.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got.TransactionIDs)
}

func TestSession_MembershipPredicates(t *testing.T) {
	s := newSessionWithTransactions(4)
	refund := s.CreateList("Refund", "#0000ff", true, false)
	plain := s.CreateList("Plain", "#0000ff", false, false)

	require.NoError(t, s.AddToList(0, refund.ID))
	require.NoError(t, s.AddToList(1, plain.ID))
	// Position 2 is in both.
	require.NoError(t, s.AddToList(2, refund.ID))
	require.NoError(t, s.AddToList(2, plain.ID))

	tests := []struct {
		name       string
		position   int
		inAnyList  bool
		refundable bool
	}{
		{name: "refund list only", position: 0, inAnyList: true, refundable: true},
		{name: "plain list only", position: 1, inAnyList: true, refundable: false},
		{name: "both lists", position: 2, inAnyList: true, refundable: true},
		{name: "no list", position: 3, inAnyList: false, refundable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inAnyList, s.IsInAnyList(tt.position))
			assert.Equal(t, tt.refundable, s.IsRefundable(tt.position))
		})
	}
}

func TestSession_ToggleRefund(t *testing.T) {
	s := New()
	lst := s.CreateList("Maybe refund", "#0000ff", false, false)

	on, err := s.ToggleRefund(lst.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := s.ToggleRefund(lst.ID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = s.ToggleRefund(42)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSession_DeleteList(t *testing.T) {
	s := newSessionWithTransactions(2)
	lst := s.CreateList("Doomed", "#0000ff", true, false)
	require.NoError(t, s.AddToList(0, lst.ID))

	require.NoError(t, s.DeleteList(lst.ID))
	assert.ErrorIs(t, s.DeleteList(lst.ID), common.ErrNotFound)

	// Membership went with the list.
	assert.False(t, s.IsInAnyList(0))
	assert.False(t, s.IsRefundable(0))
}

func TestSession_RenameRecolorList(t *testing.T) {
	s := New()
	lst := s.CreateList("Old", "#0000ff", false, false)

	require.NoError(t, s.RenameList(lst.ID, "New"))
	require.NoError(t, s.RecolorList(lst.ID, "#00ff00"))

	got, err := s.List(lst.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "#00ff00", got.Color)

	assert.ErrorIs(t, s.RenameList(42, "x"), common.ErrNotFound)
}
