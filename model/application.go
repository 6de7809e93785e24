package model

import (
	"time"

	"gorm.io/gorm"
)

// Verification states for an uploaded application document.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusRejected = "rejected"
)

// Document kinds students upload during an application.
const (
	DocumentKindPassport   = "passport"
	DocumentKindTranscript = "transcript"
	DocumentKindTestScore  = "test_score"
	DocumentKindSOP        = "sop"
	DocumentKindLOR        = "lor"
	DocumentKindOther      = "other"
)

// ApplicationDocument is the metadata row for one uploaded document. The file
// itself lives in object storage under ObjectKey; agency staff review the row
// and set Status plus an optional ReviewNote.
type ApplicationDocument struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Kind       string `gorm:"type:varchar(30);not null" json:"kind"`
	FileName   string `gorm:"not null" json:"file_name"`
	ObjectKey  string `gorm:"uniqueIndex;not null" json:"-"`
	SizeBytes  int64  `json:"size_bytes"`
	Status     string `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReviewNote string `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedBy *uint  `json:"reviewed_by,omitempty"`
}
