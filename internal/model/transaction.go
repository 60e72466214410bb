// Package model defines the core records shared across the application.
package model

import (
	"math"
	"strings"
)

// Column names recognized in bank statement exports. Columns outside this
// set ride along in Transaction.Extra untouched.
const (
	ColumnBookingDate = "Buchungsdatum"
	ColumnBookingText = "Buchungstext"
	ColumnPartnerName = "Name des Partners"
	ColumnPurpose     = "Verwendungszweck"
	ColumnAmount      = "Betrag"
)

// AmountTolerance is the absolute tolerance used when comparing amounts
// that went through a float round-trip (export/import).
const AmountTolerance = 1e-9

// Transaction represents a single bank statement record.
//
// Within one loaded session a transaction is identified by its position in
// the store; that position is not durable across reloads, which is why list
// membership is exported as content keys (see Key).
type Transaction struct {
	Extra       map[string]string // source columns not mapped to a typed field
	CategoryID  *int
	BookingDate string // source format, usually YYYY-MM-DD; not guaranteed parseable
	BookingText string
	PartnerName string
	Purpose     string
	Amount      float64 // negative = expense, non-negative = income
}

// SearchText returns the lowercase text the rule classifier matches against.
func (t *Transaction) SearchText() string {
	return strings.ToLower(t.BookingText + " " + t.PartnerName + " " + t.Purpose)
}

// IsExpense reports whether the transaction counts as an expense.
// Zero-amount transactions fall on the income side.
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0
}

// Key returns the content-derived reconciliation key for this transaction.
func (t *Transaction) Key() TransactionKey {
	return TransactionKey{
		BookingDate: t.BookingDate,
		BookingText: t.BookingText,
		Amount:      t.Amount,
	}
}

// TransactionKey re-identifies a transaction across store reloads by
// (booking date, booking text, amount). It is a convention, not a unique
// identifier: two identical records are indistinguishable by it.
//
// The JSON field names follow the source column names so exported documents
// stay readable next to the statement files.
type TransactionKey struct {
	BookingDate string  `json:"Buchungsdatum"`
	BookingText string  `json:"Buchungstext"`
	Amount      float64 `json:"Betrag"`
}

// Matches reports whether trx is identified by this key. Date and text
// compare exactly; the amount compares within AmountTolerance.
func (k TransactionKey) Matches(trx *Transaction) bool {
	return trx.BookingDate == k.BookingDate &&
		trx.BookingText == k.BookingText &&
		math.Abs(trx.Amount-k.Amount) < AmountTolerance
}
