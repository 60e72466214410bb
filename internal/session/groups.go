package session

import (
	"fmt"

	"github.com/mkempf/kontoflow/internal/common"
	"github.com/mkempf/kontoflow/internal/model"
)

// Groups returns all groups in registry order.
func (s *Session) Groups() []model.Group {
	return s.groups
}

// Group returns the group with the given id.
func (s *Session) Group(id int) (*model.Group, error) {
	grp := s.findGroup(id)
	if grp == nil {
		return nil, fmt.Errorf("group %d: %w", id, common.ErrNotFound)
	}
	return grp, nil
}

// CreateGroup adds a new group with the next free id and returns it.
func (s *Session) CreateGroup(name, color string) model.Group {
	grp := model.Group{
		ID:    s.nextGroupID,
		Name:  name,
		Color: color,
	}
	s.groups = append(s.groups, grp)
	s.nextGroupID++
	return grp
}

// RenameGroup updates the group's name.
func (s *Session) RenameGroup(id int, name string) error {
	grp := s.findGroup(id)
	if grp == nil {
		return fmt.Errorf("group %d: %w", id, common.ErrNotFound)
	}
	grp.Name = name
	return nil
}

// RecolorGroup updates the group's color.
func (s *Session) RecolorGroup(id int, color string) error {
	grp := s.findGroup(id)
	if grp == nil {
		return fmt.Errorf("group %d: %w", id, common.ErrNotFound)
	}
	grp.Color = color
	return nil
}

// DeleteGroup removes the group and detaches every category that
// referenced it.
func (s *Session) DeleteGroup(id int) error {
	idx := -1
	for i := range s.groups {
		if s.groups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("group %d: %w", id, common.ErrNotFound)
	}
	s.groups = append(s.groups[:idx], s.groups[idx+1:]...)

	for i := range s.categories {
		gid := s.categories[i].GroupID
		if gid != nil && *gid == id {
			s.categories[i].GroupID = nil
		}
	}
	return nil
}

func (s *Session) findGroup(id int) *model.Group {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return &s.groups[i]
		}
	}
	return nil
}
