package model

// List is an ad-hoc named subset of transactions, addressed by store
// position. Positions are only meaningful for the currently loaded store;
// export replaces them with TransactionKeys.
type List struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	// TransactionIDs holds store positions of the members, in insertion
	// order.
	TransactionIDs []int `json:"transaction_ids"`
	ID             int   `json:"id"`
	// RefundList marks the members as reimbursable: they reduce the
	// "after refund" totals in reports.
	RefundList bool `json:"refund_list"`
	// ListAsCat is reserved for treating a list as a category in stats.
	// It round-trips through export/import but aggregation ignores it.
	ListAsCat bool `json:"list_as_cat"`
}

// Contains reports whether the given store position is a member.
func (l *List) Contains(position int) bool {
	for _, id := range l.TransactionIDs {
		if id == position {
			return true
		}
	}
	return false
}
