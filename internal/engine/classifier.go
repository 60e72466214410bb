// Package engine implements the rule-based classification engine that maps
// transactions to categories.
package engine

import (
	"log/slog"
	"strings"

	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/session"
)

// Classify returns the id of the first category whose first rule matches
// the transaction, or nil if no rule matches. A rule matches when it is a
// case-insensitive substring of the transaction's combined booking,
// partner, and purpose text. Categories are tried in registry order and
// rules in list order, so both orders carry priority.
//
// Classify never fails; an unmatched transaction is simply unclassified.
func Classify(trx *model.Transaction, categories []model.Category) *int {
	text := trx.SearchText()
	for i := range categories {
		for _, rule := range categories[i].Rules {
			if strings.Contains(text, strings.ToLower(rule)) {
				id := categories[i].ID
				return &id
			}
		}
	}
	return nil
}

// ReclassifyAll runs Classify over every transaction in the store and
// overwrites the existing assignment unconditionally. Manual assignments
// are not distinguished from rule-derived ones and are overwritten too.
// It returns the number of transactions that ended up with a category.
func ReclassifyAll(s *session.Session) int {
	categories := s.Categories()
	matched := 0

	transactions := s.Transactions()
	for i := range transactions {
		transactions[i].CategoryID = Classify(&transactions[i], categories)
		if transactions[i].CategoryID != nil {
			matched++
		}
	}

	slog.Info("reclassified transactions",
		"total", len(transactions),
		"matched", matched,
		"categories", len(categories))

	return matched
}
