package auth

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
	"github.com/sahilchouksey/study-abroad-api/utils/validation"
)

// ProfileRequest represents a profile create/update request. All fields are
// optional; recommendations stay gated until countries, degree and program
// are all present.
type ProfileRequest struct {
	TargetCountries []string          `json:"target_countries"`
	TargetDegree    string            `json:"target_degree"`
	TargetProgram   string            `json:"target_program"`
	BudgetBracket   string            `json:"budget_bracket"`
	AcademicScore   *float64          `json:"academic_score"`
	ExamScores      []model.ExamScore `json:"exam_scores"`
	HasWorkExp      bool              `json:"has_work_experience"`
	WorkExpYears    int               `json:"work_experience_years"`
}

// GetProfile returns the authenticated user's study profile.
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var profile model.StudentProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Profile not set up yet")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, profile)
}

// UpdateProfile creates or replaces the authenticated user's study profile.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.TargetDegree = validation.SanitizeString(req.TargetDegree)
	req.TargetProgram = validation.SanitizeString(req.TargetProgram)

	countriesJSON, err := json.Marshal(req.TargetCountries)
	if err != nil {
		return response.BadRequest(c, "Invalid target countries")
	}
	examsJSON, err := json.Marshal(req.ExamScores)
	if err != nil {
		return response.BadRequest(c, "Invalid exam scores")
	}

	var profile model.StudentProfile
	err = h.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Failed to load profile")
	}

	profile.UserID = userID
	profile.TargetCountries = datatypes.JSON(countriesJSON)
	profile.TargetDegree = req.TargetDegree
	profile.TargetProgram = req.TargetProgram
	profile.BudgetBracket = req.BudgetBracket
	profile.AcademicScore = req.AcademicScore
	profile.ExamScores = datatypes.JSON(examsJSON)
	profile.HasWorkExp = req.HasWorkExp
	profile.WorkExpYears = req.WorkExpYears

	if err := h.db.Save(&profile).Error; err != nil {
		return response.InternalServerError(c, "Failed to save profile")
	}

	return response.SuccessWithMessage(c, "Profile saved", profile)
}
