package model

import (
	"time"

	"gorm.io/gorm"
)

// CountryRegionAll is the sentinel catalog value meaning "matches any
// profile country".
const CountryRegionAll = "All"

// Scholarship represents one scholarship row in the catalog.
//
// CountryRegion may hold the sentinel "All". DegreeLevel is free text and is
// matched by substring against canonical level tokens, never by equality.
// Deadline is free text: an ISO date, "rolling" and "varies" are all valid.
type Scholarship struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CountryRegion *string `gorm:"index" json:"country_region,omitempty"`
	Name          *string `gorm:"index" json:"name,omitempty"`
	Provider      *string `json:"provider,omitempty"`
	DegreeLevel   *string `json:"degree_level,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	Eligibility   *string `gorm:"type:text" json:"eligibility,omitempty"`
	Link          *string `json:"link,omitempty"`
}
