package scholarship

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// ScholarshipRequest is the admin create/update payload.
type ScholarshipRequest struct {
	CountryRegion *string `json:"country_region"`
	Name          *string `json:"name"`
	Provider      *string `json:"provider"`
	DegreeLevel   *string `json:"degree_level"`
	Deadline      *string `json:"deadline"`
	Eligibility   *string `json:"eligibility"`
	Link          *string `json:"link"`
}

func (r *ScholarshipRequest) apply(s *model.Scholarship) {
	s.CountryRegion = r.CountryRegion
	s.Name = r.Name
	s.Provider = r.Provider
	s.DegreeLevel = r.DegreeLevel
	s.Deadline = r.Deadline
	s.Eligibility = r.Eligibility
	s.Link = r.Link
}

// Create adds a scholarship row. Admin only.
func (h *ScholarshipHandler) Create(c *fiber.Ctx) error {
	var req ScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var scholarship model.Scholarship
	req.apply(&scholarship)

	if err := h.db.Create(&scholarship).Error; err != nil {
		return response.InternalServerError(c, "Failed to create scholarship")
	}
	return response.Created(c, scholarship)
}

// Update replaces a scholarship row's attributes. Admin only.
func (h *ScholarshipHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid scholarship id")
	}

	var req ScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var scholarship model.Scholarship
	if err := h.db.First(&scholarship, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Scholarship not found")
		}
		return response.InternalServerError(c, "Failed to load scholarship")
	}

	req.apply(&scholarship)
	if err := h.db.Save(&scholarship).Error; err != nil {
		return response.InternalServerError(c, "Failed to update scholarship")
	}
	return response.SuccessWithMessage(c, "Scholarship updated", scholarship)
}

// Delete soft-deletes a scholarship row. Admin only.
func (h *ScholarshipHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid scholarship id")
	}

	result := h.db.Delete(&model.Scholarship{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete scholarship")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Scholarship not found")
	}
	return response.SuccessWithMessage(c, "Scholarship deleted", nil)
}
