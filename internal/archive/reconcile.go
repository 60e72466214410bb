package archive

import (
	"log/slog"

	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/session"
)

// Import replaces the session's taxonomy with the document's collections
// and reconciles each list's transaction keys against the currently loaded
// store. The store itself is untouched; transactions whose category no
// longer exists lose their assignment, and id counters restart above the
// imported maxima.
//
// Callers that want rule-derived assignments to reflect the imported
// categories run engine.ReclassifyAll afterwards.
func Import(s *session.Session, doc Document) {
	categories := doc.Categories
	for i := range categories {
		if categories[i].Rules == nil {
			categories[i].Rules = []string{}
		}
	}

	lists := make([]model.List, 0, len(doc.Lists))
	for _, entry := range doc.Lists {
		lists = append(lists, model.List{
			ID:             entry.ID,
			Name:           entry.Name,
			Color:          entry.Color,
			RefundList:     entry.RefundList,
			ListAsCat:      entry.ListAsCat,
			TransactionIDs: reconcile(s, entry),
		})
	}

	s.ReplaceTaxonomy(categories, doc.Groups, lists)
}

// reconcile resolves a list's transaction keys to store positions. Each key
// resolves to the first transaction in store order whose date and text
// match exactly and whose amount matches within the float tolerance; keys
// with no match are dropped without surfacing an error.
func reconcile(s *session.Session, entry ListEntry) []int {
	positions := make([]int, 0, len(entry.TransactionKeys))
	dropped := 0

	transactions := s.Transactions()
	for _, key := range entry.TransactionKeys {
		pos := firstMatch(transactions, key)
		if pos < 0 {
			dropped++
			continue
		}
		if containsPosition(positions, pos) {
			// Duplicate keys collapse onto the same first occurrence;
			// membership is a set.
			continue
		}
		positions = append(positions, pos)
	}

	if dropped > 0 {
		slog.Debug("dropped unmatched transaction keys during import",
			"list", entry.Name,
			"dropped", dropped,
			"resolved", len(positions))
	}

	return positions
}

func firstMatch(transactions []model.Transaction, key model.TransactionKey) int {
	for i := range transactions {
		if key.Matches(&transactions[i]) {
			return i
		}
	}
	return -1
}

func containsPosition(positions []int, pos int) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
