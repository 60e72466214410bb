// Package report computes aggregate statistics over a session. Everything
// here is recomputed from the current session state on each call; there is
// no cache to invalidate.
package report

import (
	"github.com/mkempf/kontoflow/internal/session"
)

// CategoryStats summarizes the expense transactions of one category.
// All sums carry the sign of the underlying amounts, so expense totals are
// negative.
type CategoryStats struct {
	// TotalOverall is the sum over every expense transaction of the
	// category.
	TotalOverall float64
	// TotalExcludingLists and TotalListItems partition TotalOverall by
	// list membership: every expense transaction lands in exactly one of
	// the two.
	TotalExcludingLists float64
	TotalListItems      float64
	// RefundableSum is the sum over transactions covered by a refund
	// list. It is tracked independently of the list partition above,
	// although refund membership implies list membership.
	RefundableSum float64
	// AfterRefund is TotalOverall minus RefundableSum.
	AfterRefund float64
}

// Stats computes the per-category sums for the given category id. A nil id
// selects the unassigned transactions.
func Stats(s *session.Session, categoryID *int) CategoryStats {
	var st CategoryStats

	transactions := s.Transactions()
	for idx := range transactions {
		trx := &transactions[idx]
		if !trx.IsExpense() || !sameCategory(trx.CategoryID, categoryID) {
			continue
		}

		st.TotalOverall += trx.Amount

		if s.IsInAnyList(idx) {
			st.TotalListItems += trx.Amount
		} else {
			st.TotalExcludingLists += trx.Amount
		}

		if s.IsRefundable(idx) {
			st.RefundableSum += trx.Amount
		}
	}

	st.AfterRefund = st.TotalOverall - st.RefundableSum
	return st
}

// GlobalExpenses sums all expense transactions regardless of category and
// returns the total, the refundable share, and the total after refunds.
func GlobalExpenses(s *session.Session) (total, refundable, afterRefund float64) {
	transactions := s.Transactions()
	for idx := range transactions {
		if !transactions[idx].IsExpense() {
			continue
		}
		total += transactions[idx].Amount
		if s.IsRefundable(idx) {
			refundable += transactions[idx].Amount
		}
	}
	return total, refundable, total - refundable
}

// GlobalIncome sums all transactions with a non-negative amount.
func GlobalIncome(s *session.Session) float64 {
	var total float64
	for _, trx := range s.Transactions() {
		if !trx.IsExpense() {
			total += trx.Amount
		}
	}
	return total
}

func sameCategory(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
