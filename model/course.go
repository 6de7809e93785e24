package model

import (
	"time"

	"gorm.io/gorm"
)

// Study levels a course can be offered at. Catalog rows imported from agency
// spreadsheets use exactly these spellings.
const (
	StudyLevelUndergraduate = "Undergraduate"
	StudyLevelPostgraduate  = "Postgraduate"
	StudyLevelPhD           = "PhD"
	StudyLevelUGDiploma     = "UG-Diploma"
	StudyLevelPGDiploma     = "PG-Diploma"
)

// Course represents one program row in the study-abroad catalog.
//
// The source data is sparse: agencies fill in whatever columns they have, so
// every attribute except the id is nullable. Absent fields must degrade
// gracefully (zero score contribution, omitted from JSON), never error.
type Course struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	InstitutionName   *string `gorm:"index" json:"institution_name,omitempty"`
	Ranking           *int    `json:"ranking,omitempty"`
	ProgramName       *string `gorm:"index" json:"program_name,omitempty"`
	Concentration     *string `json:"concentration,omitempty"`
	Campus            *string `json:"campus,omitempty"`
	Country           *string `gorm:"index" json:"country,omitempty"`
	StudyLevel        *string `gorm:"type:varchar(20);index" json:"study_level,omitempty"`
	Duration          *string `json:"duration,omitempty"`
	OpenIntakes       *string `json:"open_intakes,omitempty"` // free-text season tokens, e.g. "Springjan, Fallsep"
	IntakeYear        *string `json:"intake_year,omitempty"`
	EntryRequirements *string `gorm:"type:text" json:"entry_requirements,omitempty"`

	// Standardized-test thresholds, each optional.
	IELTSScore *float64 `json:"ielts_score,omitempty"`
	TOEFLScore *float64 `json:"toefl_score,omitempty"`
	PTEScore   *float64 `json:"pte_score,omitempty"`
	DETScore   *float64 `json:"det_score,omitempty"`

	ApplicationDeadline  *string  `json:"application_deadline,omitempty"` // free text or ISO date
	YearlyTuitionFees    *float64 `json:"yearly_tuition_fees,omitempty"`
	ScholarshipAvailable *bool    `json:"scholarship_available,omitempty"`
	BacklogRange         *string  `json:"backlog_range,omitempty"`
	Remarks              *string  `gorm:"type:text" json:"remarks,omitempty"`
}
