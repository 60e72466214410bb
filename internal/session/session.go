// Package session owns the in-memory state of one loaded dataset: the
// transaction store and the category/group/list taxonomy.
//
// A Session is not safe for concurrent use. Callers are expected to run
// operations to completion one at a time, which matches the single-user
// request model of the application.
package session

import (
	"fmt"

	"github.com/mkempf/kontoflow/internal/common"
	"github.com/mkempf/kontoflow/internal/model"
)

// Session holds the transaction store and the taxonomy registry. The store
// is append-only: nothing mutates a transaction after ingestion except its
// category assignment.
type Session struct {
	transactions []model.Transaction
	categories   []model.Category
	groups       []model.Group
	lists        []model.List

	nextCategoryID int
	nextGroupID    int
	nextListID     int
}

// New creates an empty session.
func New() *Session {
	return &Session{
		nextCategoryID: 1,
		nextGroupID:    1,
		nextListID:     1,
	}
}

// Append adds a transaction to the end of the store and returns its
// position.
func (s *Session) Append(trx model.Transaction) int {
	s.transactions = append(s.transactions, trx)
	return len(s.transactions) - 1
}

// Transactions returns the store in ingestion order.
func (s *Session) Transactions() []model.Transaction {
	return s.transactions
}

// Transaction returns the transaction at the given store position.
func (s *Session) Transaction(position int) (*model.Transaction, error) {
	if position < 0 || position >= len(s.transactions) {
		return nil, fmt.Errorf("position %d: %w", position, common.ErrInvalidPosition)
	}
	return &s.transactions[position], nil
}

// TransactionCount returns the number of transactions in the store.
func (s *Session) TransactionCount() int {
	return len(s.transactions)
}

// AssignCategory sets the category of the transaction at the given
// position. The category must exist.
func (s *Session) AssignCategory(position, categoryID int) error {
	trx, err := s.Transaction(position)
	if err != nil {
		return err
	}
	if s.findCategory(categoryID) == nil {
		return fmt.Errorf("category %d: %w", categoryID, common.ErrNotFound)
	}
	id := categoryID
	trx.CategoryID = &id
	return nil
}

// UnassignCategory clears the category of the transaction at the given
// position.
func (s *Session) UnassignCategory(position int) error {
	trx, err := s.Transaction(position)
	if err != nil {
		return err
	}
	trx.CategoryID = nil
	return nil
}

// ReplaceTaxonomy swaps in a complete new taxonomy, as produced by a
// document import. The three collections replace the current ones
// wholesale; id counters are recomputed from the observed maxima, and any
// transaction whose category no longer exists loses its assignment. The
// transaction store itself is untouched.
func (s *Session) ReplaceTaxonomy(categories []model.Category, groups []model.Group, lists []model.List) {
	s.categories = categories
	s.groups = groups
	s.lists = lists

	s.nextCategoryID = 1
	for _, c := range s.categories {
		if c.ID >= s.nextCategoryID {
			s.nextCategoryID = c.ID + 1
		}
	}
	s.nextGroupID = 1
	for _, g := range s.groups {
		if g.ID >= s.nextGroupID {
			s.nextGroupID = g.ID + 1
		}
	}
	s.nextListID = 1
	for _, l := range s.lists {
		if l.ID >= s.nextListID {
			s.nextListID = l.ID + 1
		}
	}

	for i := range s.transactions {
		cid := s.transactions[i].CategoryID
		if cid != nil && s.findCategory(*cid) == nil {
			s.transactions[i].CategoryID = nil
		}
	}
}
