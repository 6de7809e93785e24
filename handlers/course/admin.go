package course

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// CourseRequest is the admin create/update payload. Fields mirror the sparse
// catalog columns; absent fields stay null.
type CourseRequest struct {
	InstitutionName   *string `json:"institution_name"`
	Ranking           *int    `json:"ranking"`
	ProgramName       *string `json:"program_name"`
	Concentration     *string `json:"concentration"`
	Campus            *string `json:"campus"`
	Country           *string `json:"country"`
	StudyLevel        *string `json:"study_level" validate:"omitempty,oneof=Undergraduate Postgraduate PhD UG-Diploma PG-Diploma"`
	Duration          *string `json:"duration"`
	OpenIntakes       *string `json:"open_intakes"`
	IntakeYear        *string `json:"intake_year"`
	EntryRequirements *string `json:"entry_requirements"`

	IELTSScore *float64 `json:"ielts_score"`
	TOEFLScore *float64 `json:"toefl_score"`
	PTEScore   *float64 `json:"pte_score"`
	DETScore   *float64 `json:"det_score"`

	ApplicationDeadline  *string  `json:"application_deadline"`
	YearlyTuitionFees    *float64 `json:"yearly_tuition_fees"`
	ScholarshipAvailable *bool    `json:"scholarship_available"`
	BacklogRange         *string  `json:"backlog_range"`
	Remarks              *string  `json:"remarks"`
}

func (r *CourseRequest) apply(course *model.Course) {
	course.InstitutionName = r.InstitutionName
	course.Ranking = r.Ranking
	course.ProgramName = r.ProgramName
	course.Concentration = r.Concentration
	course.Campus = r.Campus
	course.Country = r.Country
	course.StudyLevel = r.StudyLevel
	course.Duration = r.Duration
	course.OpenIntakes = r.OpenIntakes
	course.IntakeYear = r.IntakeYear
	course.EntryRequirements = r.EntryRequirements
	course.IELTSScore = r.IELTSScore
	course.TOEFLScore = r.TOEFLScore
	course.PTEScore = r.PTEScore
	course.DETScore = r.DETScore
	course.ApplicationDeadline = r.ApplicationDeadline
	course.YearlyTuitionFees = r.YearlyTuitionFees
	course.ScholarshipAvailable = r.ScholarshipAvailable
	course.BacklogRange = r.BacklogRange
	course.Remarks = r.Remarks
}

// Create adds a catalog row. Admin only.
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var course model.Course
	req.apply(&course)

	if err := h.db.Create(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}
	return response.Created(c, course)
}

// Update replaces a catalog row's attributes. Admin only.
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to load course")
	}

	req.apply(&course)
	if err := h.db.Save(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to update course")
	}
	return response.SuccessWithMessage(c, "Course updated", course)
}

// Delete soft-deletes a catalog row. Admin only. The nightly purge removes
// it permanently after 30 days.
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}

	result := h.db.Delete(&model.Course{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete course")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Course not found")
	}
	return response.SuccessWithMessage(c, "Course deleted", nil)
}
