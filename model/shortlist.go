package model

import (
	"time"

	"gorm.io/gorm"
)

// Shortlist statuses. These are labels, not a workflow: any status may move
// to any other.
const (
	ShortlistStatusInterested = "interested"
	ShortlistStatusApplied    = "applied"
	ShortlistStatusAccepted   = "accepted"
	ShortlistStatusRejected   = "rejected"
	ShortlistStatusPending    = "pending"
)

// ValidShortlistStatus reports whether s is one of the known status labels.
func ValidShortlistStatus(s string) bool {
	switch s {
	case ShortlistStatusInterested, ShortlistStatusApplied, ShortlistStatusAccepted,
		ShortlistStatusRejected, ShortlistStatusPending:
		return true
	}
	return false
}

// ShortlistEntry is one saved catalog item on a user's shortlist, keyed by
// (user, item-type, item-id). No cap, no automatic expiry.
type ShortlistEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   uint   `gorm:"not null;uniqueIndex:idx_shortlist_member" json:"user_id"`
	ItemType string `gorm:"type:varchar(20);not null;uniqueIndex:idx_shortlist_member" json:"item_type"`
	ItemID   uint   `gorm:"not null;uniqueIndex:idx_shortlist_member" json:"item_id"`
	Status   string `gorm:"type:varchar(20);default:'interested'" json:"status"`
	Notes    string `gorm:"type:text" json:"notes,omitempty"`
}
