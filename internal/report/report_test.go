package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/session"
)

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		name    string
		want    SortMode
		wantErr bool
	}{
		{name: "lowest", want: SortAmountAsc},
		{name: "highest", want: SortAmountDesc},
		{name: "most", want: SortCountDesc},
		{name: "least", want: SortCountAsc},
		{name: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortMode(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// reportSession: categories A (-60, 2 trx), B (-20, 1 trx), one
// uncategorized expense (-20), one income (+100).
func reportSession(t *testing.T) *session.Session {
	t.Helper()

	s := session.New()
	a := s.CreateCategory("A", "#111111")
	b := s.CreateCategory("B", "#222222")

	s.Append(model.Transaction{BookingText: "a1", Amount: -50})
	s.Append(model.Transaction{BookingText: "a2", Amount: -10})
	s.Append(model.Transaction{BookingText: "b1", Amount: -20})
	s.Append(model.Transaction{BookingText: "free", Amount: -20})
	s.Append(model.Transaction{BookingText: "salary", Amount: 100})

	require.NoError(t, s.AssignCategory(0, a.ID))
	require.NoError(t, s.AssignCategory(1, a.ID))
	require.NoError(t, s.AssignCategory(2, b.ID))

	return s
}

func TestCategoryReport(t *testing.T) {
	s := reportSession(t)

	entries := CategoryReport(s, SortAmountAsc)
	require.Len(t, entries, 3)

	// Amount ascending: A (-60), then B and UNK tied at -20. The tie
	// keeps prior relative order: B was built before the synthetic entry.
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, "B", entries[1].Name)
	assert.Equal(t, model.UnassignedName, entries[2].Name)
	assert.Nil(t, entries[2].CategoryID)

	assert.InDelta(t, -60.0, entries[0].Amount, tolerance)
	assert.Equal(t, 2, entries[0].Count)
	assert.InDelta(t, -20.0, entries[2].Amount, tolerance)
	assert.Equal(t, 1, entries[2].Count)

	// Total expenses are -100, so shares are straightforward.
	assert.InDelta(t, 60.0, entries[0].Percent, tolerance)
	assert.InDelta(t, 20.0, entries[1].Percent, tolerance)
}

func TestCategoryReport_SortModes(t *testing.T) {
	s := reportSession(t)

	tests := []struct {
		name  string
		mode  SortMode
		first string
	}{
		{name: "amount ascending", mode: SortAmountAsc, first: "A"},
		{name: "amount descending", mode: SortAmountDesc, first: "B"},
		{name: "count descending", mode: SortCountDesc, first: "A"},
		{name: "count ascending", mode: SortCountAsc, first: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := CategoryReport(s, tt.mode)
			require.NotEmpty(t, entries)
			assert.Equal(t, tt.first, entries[0].Name)
		})
	}
}

func TestCategoryReport_NoUnassignedEntryWhenAllCategorized(t *testing.T) {
	s := session.New()
	cat := s.CreateCategory("A", "#111111")
	s.Append(model.Transaction{Amount: -10})
	require.NoError(t, s.AssignCategory(0, cat.ID))

	entries := CategoryReport(s, SortAmountAsc)
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Name)
}

func TestCategoryReport_PercentageGuard(t *testing.T) {
	// Income only: the expense total is not strictly negative, so every
	// percentage is forced to 0.
	s := session.New()
	s.CreateCategory("A", "#111111")
	s.Append(model.Transaction{Amount: 100})

	for _, e := range CategoryReport(s, SortAmountAsc) {
		assert.Zero(t, e.Percent)
	}

	// Empty store behaves the same.
	empty := session.New()
	empty.CreateCategory("A", "#111111")
	for _, e := range CategoryReport(empty, SortAmountAsc) {
		assert.Zero(t, e.Percent)
	}
}

func TestGroupReport(t *testing.T) {
	s := reportSession(t)
	grp := s.CreateGroup("Living", "#888888")

	categories := s.Categories()
	require.NoError(t, s.AssignGroup(categories[0].ID, grp.ID))
	require.NoError(t, s.AssignGroup(categories[1].ID, grp.ID))

	entries := GroupReport(s, SortAmountAsc)
	require.Len(t, entries, 1)

	assert.Equal(t, grp.ID, entries[0].GroupID)
	assert.InDelta(t, -80.0, entries[0].Amount, tolerance)
	assert.Equal(t, 3, entries[0].Count)
	assert.InDelta(t, 80.0, entries[0].Percent, tolerance)
}

func TestGroupReport_PseudoGroups(t *testing.T) {
	s := reportSession(t)
	grp := s.CreateGroup("Living", "#888888")

	a := s.Categories()[0]
	require.NoError(t, s.AssignGroup(a.ID, grp.ID))
	_, err := s.ToggleShowAsGroup(a.ID)
	require.NoError(t, err)

	entries := GroupReport(s, SortAmountAsc)
	require.Len(t, entries, 2)

	// A contributes to its real group and appears standalone with the
	// negative-id sentinel.
	var real, pseudo *GroupEntry
	for i := range entries {
		if entries[i].GroupID == grp.ID {
			real = &entries[i]
		}
		if entries[i].GroupID == -a.ID {
			pseudo = &entries[i]
		}
	}
	require.NotNil(t, real)
	require.NotNil(t, pseudo)

	assert.InDelta(t, -60.0, real.Amount, tolerance)
	assert.Equal(t, PseudoGroupPrefix+"A", pseudo.Name)
	assert.InDelta(t, -60.0, pseudo.Amount, tolerance)
	assert.Equal(t, 2, pseudo.Count)
}

func TestGroupReport_UngroupedCategoriesExcluded(t *testing.T) {
	s := reportSession(t)
	s.CreateGroup("Empty", "#888888")

	entries := GroupReport(s, SortAmountAsc)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].Amount)
	assert.Zero(t, entries[0].Count)
}
