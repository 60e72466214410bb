package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/session"
)

func TestClassify(t *testing.T) {
	categories := []model.Category{
		{ID: 1, Name: "Housing", Rules: []string{"rent", "miete"}},
		{ID: 2, Name: "Groceries", Rules: []string{"rewe", "aldi"}},
		{ID: 3, Name: "Everything rent-ish", Rules: []string{"rent"}},
	}

	tests := []struct {
		want *int
		name string
		trx  model.Transaction
	}{
		{
			name: "matches by booking text",
			trx:  model.Transaction{BookingText: "Monthly rent payment", Amount: -950.0},
			want: intPtr(1),
		},
		{
			name: "matching is case-insensitive",
			trx:  model.Transaction{BookingText: "MIETE Januar"},
			want: intPtr(1),
		},
		{
			name: "matches by partner name",
			trx:  model.Transaction{PartnerName: "REWE Markt GmbH"},
			want: intPtr(2),
		},
		{
			name: "matches by purpose",
			trx:  model.Transaction{Purpose: "Einkauf ALDI danke"},
			want: intPtr(2),
		},
		{
			name: "first category in registry order wins",
			trx:  model.Transaction{BookingText: "rent"},
			want: intPtr(1),
		},
		{
			name: "no rule matches",
			trx:  model.Transaction{BookingText: "Apotheke"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.trx, categories)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestClassify_IsPure(t *testing.T) {
	categories := []model.Category{{ID: 1, Name: "Housing", Rules: []string{"rent"}}}
	trx := model.Transaction{BookingText: "Monthly rent payment"}

	first := Classify(&trx, categories)
	second := Classify(&trx, categories)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestClassify_NoCategories(t *testing.T) {
	trx := model.Transaction{BookingText: "anything"}
	assert.Nil(t, Classify(&trx, nil))
}

func TestReclassifyAll_OverwritesManualAssignments(t *testing.T) {
	s := session.New()
	housing := s.CreateCategory("Housing", "#ff0000")
	require.NoError(t, s.AddRule(housing.ID, "rent"))
	other := s.CreateCategory("Other", "#00ff00")

	s.Append(model.Transaction{BookingText: "Monthly rent payment", Amount: -950})
	s.Append(model.Transaction{BookingText: "Apotheke", Amount: -12})

	// Manually point the rent transaction somewhere else; reclassification
	// does not protect it.
	require.NoError(t, s.AssignCategory(0, other.ID))

	matched := ReclassifyAll(s)
	assert.Equal(t, 1, matched)

	trx, err := s.Transaction(0)
	require.NoError(t, err)
	require.NotNil(t, trx.CategoryID)
	assert.Equal(t, housing.ID, *trx.CategoryID)

	trx, err = s.Transaction(1)
	require.NoError(t, err)
	assert.Nil(t, trx.CategoryID)
}

func TestReclassifyAll_Idempotent(t *testing.T) {
	s := session.New()
	housing := s.CreateCategory("Housing", "#ff0000")
	require.NoError(t, s.AddRule(housing.ID, "miete"))
	s.Append(model.Transaction{BookingText: "Miete Januar", Amount: -950})
	s.Append(model.Transaction{BookingText: "Gehalt", Amount: 2450})

	ReclassifyAll(s)
	first := snapshotAssignments(s)

	ReclassifyAll(s)
	assert.Equal(t, first, snapshotAssignments(s))
}

func snapshotAssignments(s *session.Session) []int {
	assignments := make([]int, 0, s.TransactionCount())
	for _, trx := range s.Transactions() {
		if trx.CategoryID == nil {
			assignments = append(assignments, 0)
			continue
		}
		assignments = append(assignments, *trx.CategoryID)
	}
	return assignments
}

func intPtr(v int) *int {
	return &v
}
