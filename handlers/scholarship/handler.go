// Package scholarship implements the scholarship catalog endpoints: filtered
// listing, detail, and admin CRUD.
package scholarship

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/services/catalog"
	"github.com/sahilchouksey/study-abroad-api/utils/pagination"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// ScholarshipHandler handles scholarship catalog requests
type ScholarshipHandler struct {
	db     *gorm.DB
	loader *catalog.Loader
}

// NewScholarshipHandler creates a new scholarship handler
func NewScholarshipHandler(db *gorm.DB) *ScholarshipHandler {
	return &ScholarshipHandler{
		db:     db,
		loader: catalog.NewLoader(db),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// List returns one page of the scholarship catalog, filtered by optional
// region, degree-level text and free-text search.
func (h *ScholarshipHandler) List(c *fiber.Ctx) error {
	scholarships, err := h.loader.Scholarships(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load scholarships")
	}

	region := c.Query("region")
	level := c.Query("degree_level")
	search := c.Query("search")

	filtered := make([]model.Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		if region != "" && deref(s.CountryRegion) != region {
			continue
		}
		// Degree level is free text in the catalog, so filter by containment.
		if level != "" && !containsFold(deref(s.DegreeLevel), level) {
			continue
		}
		if search != "" &&
			!containsFold(deref(s.Name), search) &&
			!containsFold(deref(s.Provider), search) {
			continue
		}
		filtered = append(filtered, s)
	}

	page := pagination.Paginate(len(filtered), c.QueryInt("page", 0), c.QueryInt("size", 10))
	return response.Paginated(c, filtered[page.Start:page.End], page)
}

// Get returns one scholarship by id.
func (h *ScholarshipHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid scholarship id")
	}

	var scholarship model.Scholarship
	if err := h.db.First(&scholarship, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Scholarship not found")
		}
		return response.InternalServerError(c, "Failed to load scholarship")
	}

	return response.Success(c, scholarship)
}
