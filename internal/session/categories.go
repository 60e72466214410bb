package session

import (
	"fmt"

	"github.com/mkempf/kontoflow/internal/common"
	"github.com/mkempf/kontoflow/internal/model"
)

// Categories returns all categories in registry order (creation order, or
// document order after an import). The classifier depends on this order:
// earlier categories win over later ones.
func (s *Session) Categories() []model.Category {
	return s.categories
}

// Category returns the category with the given id.
func (s *Session) Category(id int) (*model.Category, error) {
	cat := s.findCategory(id)
	if cat == nil {
		return nil, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	return cat, nil
}

// CreateCategory adds a new category with the next free id and returns it.
func (s *Session) CreateCategory(name, color string) model.Category {
	cat := model.Category{
		ID:    s.nextCategoryID,
		Name:  name,
		Color: color,
		Rules: []string{},
	}
	s.categories = append(s.categories, cat)
	s.nextCategoryID++
	return cat
}

// RenameCategory updates the category's name.
func (s *Session) RenameCategory(id int, name string) error {
	cat := s.findCategory(id)
	if cat == nil {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	cat.Name = name
	return nil
}

// RecolorCategory updates the category's color.
func (s *Session) RecolorCategory(id int, color string) error {
	cat := s.findCategory(id)
	if cat == nil {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	cat.Color = color
	return nil
}

// AddRule appends a classification rule to the category. Duplicates are
// not deduplicated.
func (s *Session) AddRule(id int, rule string) error {
	if rule == "" {
		return fmt.Errorf("rule must not be empty")
	}
	cat := s.findCategory(id)
	if cat == nil {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	cat.Rules = append(cat.Rules, rule)
	return nil
}

// RemoveRule deletes every occurrence of the exact rule string from the
// category.
func (s *Session) RemoveRule(id int, rule string) error {
	cat := s.findCategory(id)
	if cat == nil {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	kept := cat.Rules[:0]
	for _, r := range cat.Rules {
		if r != rule {
			kept = append(kept, r)
		}
	}
	cat.Rules = kept
	return nil
}

// AssignGroup puts the category into the given group. Both must exist.
func (s *Session) AssignGroup(categoryID, groupID int) error {
	cat := s.findCategory(categoryID)
	if cat == nil {
		return fmt.Errorf("category %d: %w", categoryID, common.ErrNotFound)
	}
	if s.findGroup(groupID) == nil {
		return fmt.Errorf("group %d: %w", groupID, common.ErrNotFound)
	}
	id := groupID
	cat.GroupID = &id
	return nil
}

// UnassignGroup removes the category from its group, if any.
func (s *Session) UnassignGroup(categoryID int) error {
	cat := s.findCategory(categoryID)
	if cat == nil {
		return fmt.Errorf("category %d: %w", categoryID, common.ErrNotFound)
	}
	cat.GroupID = nil
	return nil
}

// ToggleShowAsGroup flips the category's pseudo-group flag and returns the
// new value.
func (s *Session) ToggleShowAsGroup(id int) (bool, error) {
	cat := s.findCategory(id)
	if cat == nil {
		return false, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	cat.ShowUpAsGroup = !cat.ShowUpAsGroup
	return cat.ShowUpAsGroup, nil
}

// DeleteCategory removes the category and clears the assignment on every
// transaction that referenced it.
func (s *Session) DeleteCategory(id int) error {
	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)

	for i := range s.transactions {
		cid := s.transactions[i].CategoryID
		if cid != nil && *cid == id {
			s.transactions[i].CategoryID = nil
		}
	}
	return nil
}

func (s *Session) findCategory(id int) *model.Category {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i]
		}
	}
	return nil
}
