package report

import (
	"fmt"
	"sort"

	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/session"
)

// SortMode selects the ordering of report entries.
type SortMode int

const (
	// SortAmountAsc orders by amount ascending, i.e. largest expense
	// first (expense sums are negative).
	SortAmountAsc SortMode = iota
	// SortAmountDesc orders by amount descending.
	SortAmountDesc
	// SortCountAsc orders by transaction count ascending.
	SortCountAsc
	// SortCountDesc orders by transaction count descending.
	SortCountDesc
)

// ParseSortMode maps the user-facing sort names onto a SortMode.
func ParseSortMode(name string) (SortMode, error) {
	switch name {
	case "lowest":
		return SortAmountAsc, nil
	case "highest":
		return SortAmountDesc, nil
	case "least":
		return SortCountAsc, nil
	case "most":
		return SortCountDesc, nil
	default:
		return SortAmountAsc, fmt.Errorf("unknown sort mode %q", name)
	}
}

// Entry is one row of the category report.
type Entry struct {
	// CategoryID is nil for the synthetic unassigned entry.
	CategoryID *int
	Name       string
	Color      string
	Amount     float64
	Count      int
	// Percent is the entry's share of the global expense total, or 0
	// when there is no expense activity.
	Percent float64
}

// GroupEntry is one row of the group report.
type GroupEntry struct {
	// GroupID is the group's id, or the negative of a category id for a
	// pseudo-group entry generated from a show-up-as-group category.
	GroupID int
	Name    string
	Color   string
	Amount  float64
	Count   int
	Percent float64
}

// PseudoGroupPrefix labels group-report entries generated from categories
// flagged to show up as a group.
const PseudoGroupPrefix = "[CatAsGroup] "

// CategoryReport returns one entry per category with its expense sum and
// transaction count, followed by a synthetic unassigned entry when any
// expense transaction has no category. Sorting is stable: ties keep their
// prior relative order.
func CategoryReport(s *session.Session, mode SortMode) []Entry {
	totals := expenseTotalsByCategory(s)

	entries := make([]Entry, 0, len(s.Categories())+1)
	for _, cat := range s.Categories() {
		id := cat.ID
		entries = append(entries, Entry{
			CategoryID: &id,
			Name:       cat.Name,
			Color:      cat.Color,
			Amount:     totals.sums[cat.ID],
			Count:      totals.counts[cat.ID],
		})
	}

	if totals.unassignedCount > 0 {
		entries = append(entries, Entry{
			Name:   model.UnassignedName,
			Color:  model.UnassignedColor,
			Amount: totals.unassignedSum,
			Count:  totals.unassignedCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(mode, entries[i].Amount, entries[i].Count, entries[j].Amount, entries[j].Count)
	})

	total, _, _ := GlobalExpenses(s)
	for i := range entries {
		entries[i].Percent = percentage(entries[i].Amount, total)
	}

	return entries
}

// GroupReport returns one entry per group, each summing the categories
// assigned to it, followed by a pseudo-group entry for every category
// flagged show-up-as-group. A category with both a real group and the flag
// appears twice: folded into its group's sum and standalone.
func GroupReport(s *session.Session, mode SortMode) []GroupEntry {
	totals := expenseTotalsByCategory(s)

	groupSums := make(map[int]float64, len(s.Groups()))
	groupCounts := make(map[int]int, len(s.Groups()))
	for _, cat := range s.Categories() {
		if cat.GroupID == nil {
			continue
		}
		groupSums[*cat.GroupID] += totals.sums[cat.ID]
		groupCounts[*cat.GroupID] += totals.counts[cat.ID]
	}

	entries := make([]GroupEntry, 0, len(s.Groups()))
	for _, grp := range s.Groups() {
		entries = append(entries, GroupEntry{
			GroupID: grp.ID,
			Name:    grp.Name,
			Color:   grp.Color,
			Amount:  groupSums[grp.ID],
			Count:   groupCounts[grp.ID],
		})
	}

	for _, cat := range s.Categories() {
		if !cat.ShowUpAsGroup {
			continue
		}
		entries = append(entries, GroupEntry{
			GroupID: -cat.ID,
			Name:    PseudoGroupPrefix + cat.Name,
			Color:   cat.Color,
			Amount:  totals.sums[cat.ID],
			Count:   totals.counts[cat.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(mode, entries[i].Amount, entries[i].Count, entries[j].Amount, entries[j].Count)
	})

	total, _, _ := GlobalExpenses(s)
	for i := range entries {
		entries[i].Percent = percentage(entries[i].Amount, total)
	}

	return entries
}

type categoryTotals struct {
	sums            map[int]float64
	counts          map[int]int
	unassignedSum   float64
	unassignedCount int
}

func expenseTotalsByCategory(s *session.Session) categoryTotals {
	totals := categoryTotals{
		sums:   make(map[int]float64, len(s.Categories())),
		counts: make(map[int]int, len(s.Categories())),
	}

	for _, trx := range s.Transactions() {
		if !trx.IsExpense() {
			continue
		}
		if trx.CategoryID == nil {
			totals.unassignedSum += trx.Amount
			totals.unassignedCount++
			continue
		}
		totals.sums[*trx.CategoryID] += trx.Amount
		totals.counts[*trx.CategoryID]++
	}

	return totals
}

// percentage guards against a non-negative expense total: with no expense
// activity (or a sign-flipped total) the share is forced to 0 rather than
// producing a divide-by-zero or a negative-looking percentage.
func percentage(amount, total float64) float64 {
	if total >= 0 {
		return 0
	}
	return amount / total * 100
}

func less(mode SortMode, amountI float64, countI int, amountJ float64, countJ int) bool {
	switch mode {
	case SortAmountDesc:
		return amountI > amountJ
	case SortCountAsc:
		return countI < countJ
	case SortCountDesc:
		return countI > countJ
	default:
		return amountI < amountJ
	}
}
