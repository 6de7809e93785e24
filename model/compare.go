package model

import "time"

// Catalog item kinds a selection can reference.
const (
	ItemTypeCourse      = "course"
	ItemTypeScholarship = "scholarship"
)

// MaxCompareItems is the hard cap on a comparison set. Adding a 4th item is
// rejected, never silently evicted.
const MaxCompareItems = 3

// CompareSelection is one member of a signed-in user's comparison set.
// The composite unique index makes duplicate adds surface as a constraint
// conflict, which the service treats as a no-op success.
type CompareSelection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint   `gorm:"not null;uniqueIndex:idx_compare_member" json:"user_id"`
	ItemType string `gorm:"type:varchar(20);not null;uniqueIndex:idx_compare_member" json:"item_type"`
	ItemID   uint   `gorm:"not null;uniqueIndex:idx_compare_member" json:"item_id"`
}
