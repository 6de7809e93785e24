// Package shortlist manages a signed-in user's saved catalog items. Unlike
// the comparison set there is no cap; entries carry a status label and notes.
package shortlist

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sahilchouksey/study-abroad-api/model"
)

var (
	ErrBadItemType    = errors.New("item type must be course or scholarship")
	ErrBadStatus      = errors.New("unknown shortlist status")
	ErrItemNotFound   = errors.New("item not found")
	ErrNotShortlisted = errors.New("item is not on the shortlist")
)

// Entry is a shortlist row joined with its catalog item.
type Entry struct {
	model.ShortlistEntry
	Course      *model.Course      `json:"course,omitempty"`
	Scholarship *model.Scholarship `json:"scholarship,omitempty"`
}

// Service manages shortlist entries.
type Service struct {
	db *gorm.DB
}

// NewService creates a shortlist service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Add saves an item to the user's shortlist. Re-adding an existing item is a
// no-op success; the composite unique index backstops races.
func (s *Service) Add(ctx context.Context, userID uint, itemType string, itemID uint) error {
	if itemType != model.ItemTypeCourse && itemType != model.ItemTypeScholarship {
		return ErrBadItemType
	}
	if err := s.itemExists(ctx, itemType, itemID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ShortlistEntry{
			UserID:   userID,
			ItemType: itemType,
			ItemID:   itemID,
			Status:   model.ShortlistStatusInterested,
		}).Error
}

// Remove deletes a shortlist entry. Removing an absent entry succeeds.
func (s *Service) Remove(ctx context.Context, userID uint, itemType string, itemID uint) error {
	if itemType != model.ItemTypeCourse && itemType != model.ItemTypeScholarship {
		return ErrBadItemType
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&model.ShortlistEntry{}).Error
}

// SetStatus updates the status label on an entry. Any label may move to any
// other; statuses are bookkeeping, not a workflow.
func (s *Service) SetStatus(ctx context.Context, userID uint, itemType string, itemID uint, status string) error {
	if !model.ValidShortlistStatus(status) {
		return ErrBadStatus
	}
	return s.update(ctx, userID, itemType, itemID, map[string]interface{}{"status": status})
}

// SetNotes replaces the free-text notes on an entry.
func (s *Service) SetNotes(ctx context.Context, userID uint, itemType string, itemID uint, notes string) error {
	return s.update(ctx, userID, itemType, itemID, map[string]interface{}{"notes": notes})
}

func (s *Service) update(ctx context.Context, userID uint, itemType string, itemID uint, fields map[string]interface{}) error {
	if itemType != model.ItemTypeCourse && itemType != model.ItemTypeScholarship {
		return ErrBadItemType
	}
	result := s.db.WithContext(ctx).
		Model(&model.ShortlistEntry{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update shortlist entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotShortlisted
	}
	return nil
}

// List returns the user's shortlist, newest first, with catalog rows joined.
func (s *Service) List(ctx context.Context, userID uint) ([]Entry, error) {
	var rows []model.ShortlistEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shortlist: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entry := Entry{ShortlistEntry: row}
		switch row.ItemType {
		case model.ItemTypeCourse:
			var course model.Course
			if err := s.db.WithContext(ctx).First(&course, row.ItemID).Error; err == nil {
				entry.Course = &course
			}
		case model.ItemTypeScholarship:
			var scholarship model.Scholarship
			if err := s.db.WithContext(ctx).First(&scholarship, row.ItemID).Error; err == nil {
				entry.Scholarship = &scholarship
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Service) itemExists(ctx context.Context, itemType string, itemID uint) error {
	var count int64
	var err error
	switch itemType {
	case model.ItemTypeCourse:
		err = s.db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", itemID).Count(&count).Error
	case model.ItemTypeScholarship:
		err = s.db.WithContext(ctx).Model(&model.Scholarship{}).Where("id = ?", itemID).Count(&count).Error
	}
	if err != nil {
		return fmt.Errorf("failed to look up item: %w", err)
	}
	if count == 0 {
		return ErrItemNotFound
	}
	return nil
}
