// Package application implements the derived application-progress endpoint.
package application

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/services/progress"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// ApplicationHandler handles application-progress requests
type ApplicationHandler struct {
	db *gorm.DB
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{db: db}
}

// ProgressResponse reports the derived stage with the full journey for
// progress-bar rendering.
type ProgressResponse struct {
	Stage  progress.Stage   `json:"stage"`
	Index  int              `json:"index"`
	Stages []progress.Stage `json:"stages"`
}

// Progress derives the user's application stage from their records. Nothing
// is stored; each request recomputes from profile, documents and shortlist.
func (h *ApplicationHandler) Progress(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	facts, err := h.factsFor(userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to derive progress")
	}

	stage := progress.Derive(facts)
	return response.Success(c, ProgressResponse{
		Stage:  stage,
		Index:  progress.Index(stage),
		Stages: progress.Stages(),
	})
}

func (h *ApplicationHandler) factsFor(userID uint) (progress.Facts, error) {
	var facts progress.Facts

	var profile model.StudentProfile
	err := h.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return facts, err
	}
	if err == nil {
		facts.ProfileComplete = profileComplete(&profile)
	}

	var total, verified int64
	err = h.db.Model(&model.ApplicationDocument{}).
		Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return facts, err
	}
	facts.DocumentsUploaded = total > 0

	err = h.db.Model(&model.ApplicationDocument{}).
		Where("user_id = ? AND status = ?", userID, model.DocumentStatusVerified).
		Count(&verified).Error
	if err != nil {
		return facts, err
	}
	// Verified means every uploaded document passed review.
	facts.DocumentsVerified = total > 0 && verified == total

	// Finalized means the student marked at least one shortlisted item as
	// applied.
	var applied int64
	err = h.db.Model(&model.ShortlistEntry{}).
		Where("user_id = ? AND status = ?", userID, model.ShortlistStatusApplied).
		Count(&applied).Error
	if err != nil {
		return facts, err
	}
	facts.Finalized = applied > 0

	return facts, nil
}

// profileComplete mirrors the matcher's gating fields: countries, degree and
// program must all be present.
func profileComplete(p *model.StudentProfile) bool {
	if p.TargetDegree == "" || p.TargetProgram == "" {
		return false
	}
	var countries []string
	if len(p.TargetCountries) > 0 {
		_ = json.Unmarshal(p.TargetCountries, &countries)
	}
	return len(countries) > 0
}
