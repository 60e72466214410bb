package session

import (
	"fmt"

	"github.com/mkempf/kontoflow/internal/common"
	"github.com/mkempf/kontoflow/internal/model"
)

// Lists returns all lists in registry order.
func (s *Session) Lists() []model.List {
	return s.lists
}

// List returns the list with the given id.
func (s *Session) List(id int) (*model.List, error) {
	lst := s.findList(id)
	if lst == nil {
		return nil, fmt.Errorf("list %d: %w", id, common.ErrNotFound)
	}
	return lst, nil
}

// CreateList adds a new list with the next free id and returns it. The
// refund and list-as-category flags are fixed at creation; the refund flag
// can be flipped later with ToggleRefund.
func (s *Session) CreateList(name, color string, refundList, listAsCat bool) model.List {
	lst := model.List{
		ID:             s.nextListID,
		Name:           name,
		Color:          color,
		RefundList:     refundList,
		ListAsCat:      listAsCat,
		TransactionIDs: []int{},
	}
	s.lists = append(s.lists, lst)
	s.nextListID++
	return lst
}

// RenameList updates the list's name.
func (s *Session) RenameList(id int, name string) error {
	lst := s.findList(id)
	if lst == nil {
		return fmt.Errorf("list %d: %w", id, common.ErrNotFound)
	}
	lst.Name = name
	return nil
}

// RecolorList updates the list's color.
func (s *Session) RecolorList(id int, color string) error {
	lst := s.findList(id)
	if lst == nil {
		return fmt.Errorf("list %d: %w", id, common.ErrNotFound)
	}
	lst.Color = color
	return nil
}

// ToggleRefund flips the list's refund flag and returns the new value.
func (s *Session) ToggleRefund(id int) (bool, error) {
	lst := s.findList(id)
	if lst == nil {
		return false, fmt.Errorf("list %d: %w", id, common.ErrNotFound)
	}
	lst.RefundList = !lst.RefundList
	return lst.RefundList, nil
}

// DeleteList removes the list; its membership is discarded with it.
func (s *Session) DeleteList(id int) error {
	idx := -1
	for i := range s.lists {
		if s.lists[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("list %d: %w", id, common.ErrNotFound)
	}
	s.lists = append(s.lists[:idx], s.lists[idx+1:]...)
	return nil
}

// AddToList adds the transaction at the given store position to the list.
// Adding an existing member reports ErrAlreadyMember and changes nothing;
// an out-of-range position is a hard error.
func (s *Session) AddToList(position, listID int) error {
	lst := s.findList(listID)
	if lst == nil {
		return fmt.Errorf("list %d: %w", listID, common.ErrNotFound)
	}
	if position < 0 || position >= len(s.transactions) {
		return fmt.Errorf("position %d: %w", position, common.ErrInvalidPosition)
	}
	if lst.Contains(position) {
		return fmt.Errorf("position %d in list %q: %w", position, lst.Name, common.ErrAlreadyMember)
	}
	lst.TransactionIDs = append(lst.TransactionIDs, position)
	return nil
}

// RemoveFromList removes the transaction at the given store position from
// the list. Removing a non-member reports ErrNotMember and changes nothing.
func (s *Session) RemoveFromList(position, listID int) error {
	lst := s.findList(listID)
	if lst == nil {
		return fmt.Errorf("list %d: %w", listID, common.ErrNotFound)
	}
	for i, id := range lst.TransactionIDs {
		if id == position {
			lst.TransactionIDs = append(lst.TransactionIDs[:i], lst.TransactionIDs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("position %d in list %q: %w", position, lst.Name, common.ErrNotMember)
}

// IsInAnyList reports whether the position is a member of any list,
// regardless of the refund flag.
func (s *Session) IsInAnyList(position int) bool {
	for i := range s.lists {
		if s.lists[i].Contains(position) {
			return true
		}
	}
	return false
}

// IsRefundable reports whether the position is a member of at least one
// refund list. Membership in several refund lists counts once; membership
// in non-refund lists does not count at all.
func (s *Session) IsRefundable(position int) bool {
	for i := range s.lists {
		if s.lists[i].RefundList && s.lists[i].Contains(position) {
			return true
		}
	}
	return false
}

func (s *Session) findList(id int) *model.List {
	for i := range s.lists {
		if s.lists[i].ID == id {
			return &s.lists[i]
		}
	}
	return nil
}
