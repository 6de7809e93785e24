package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a registered user in the system
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Name         string         `gorm:"not null" json:"name"`
	Role         string         `gorm:"type:varchar(20);default:'student'" json:"role"` // student, agency, admin
	TokenVersion int            `gorm:"default:0" json:"-"`                             // Increment to invalidate all user tokens

	// Relationships
	Profile    *StudentProfile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Compares   []CompareSelection    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Shortlist  []ShortlistEntry      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Documents  []ApplicationDocument `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ExamScore is one (exam-name, score) pair on a profile, stored inside the
// profile's JSON column.
type ExamScore struct {
	Exam  string  `json:"exam"`
	Score float64 `json:"score"`
}

// StudentProfile holds a student's stated study preferences. Recommendation
// mode is gated on TargetCountries, TargetDegree and TargetProgram being set;
// the remaining fields only refine results.
type StudentProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`

	TargetCountries datatypes.JSON `gorm:"type:jsonb" json:"target_countries,omitempty"` // []string
	TargetDegree    string         `json:"target_degree,omitempty"`                      // e.g. "Bachelors", "Masters", "PhD"
	TargetProgram   string         `json:"target_program,omitempty"`                     // free text, e.g. "computer science"
	BudgetBracket   string         `json:"budget_bracket,omitempty"`
	AcademicScore   *float64       `json:"academic_score,omitempty"`
	ExamScores      datatypes.JSON `gorm:"type:jsonb" json:"exam_scores,omitempty"` // []ExamScore
	HasWorkExp      bool           `json:"has_work_experience"`
	WorkExpYears    int            `json:"work_experience_years,omitempty"`
}
