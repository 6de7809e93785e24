package course

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/services/catalogfilter"
	"github.com/sahilchouksey/study-abroad-api/utils/pagination"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// filterFromQuery builds the facet state from listing query parameters. The
// setters run in dependency order so a country or level change arriving with
// stale downstream selections resets them, same as the UI does.
func filterFromQuery(c *fiber.Ctx) catalogfilter.FilterState {
	var f catalogfilter.FilterState
	f.Search = c.Query("search")
	f.SetCountry(c.Query("country"))
	f.SetStudyLevel(c.Query("study_level"))
	f.University = c.Query("university")
	f.IntakeSeason = c.Query("intake_season")
	if text := c.Query("program_text"); text != "" {
		f.SetProgramText(text)
	}
	if exact := c.Query("program_exact"); exact != "" {
		f.SetProgramExact(exact)
	}
	return f
}

// List returns one page of the filtered course catalog.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.loader.Courses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}

	filtered := catalogfilter.Apply(courses, filterFromQuery(c))

	page := pagination.Paginate(len(filtered), c.QueryInt("page", 0), c.QueryInt("size", 10))
	return response.Paginated(c, filtered[page.Start:page.End], page)
}

// FacetsResponse carries the dropdown option sets for the current selection.
type FacetsResponse struct {
	Countries    []string `json:"countries"`
	StudyLevels  []string `json:"study_levels"`
	Universities []string `json:"universities"`
	Programs     []string `json:"programs"`
}

// Facets returns the dependent dropdown options. Countries and study levels
// span the whole catalog; universities and programs narrow by the current
// upstream selections.
func (h *CourseHandler) Facets(c *fiber.Ctx) error {
	courses, err := h.loader.Courses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}

	f := filterFromQuery(c)
	return response.Success(c, FacetsResponse{
		Countries:    catalogfilter.Countries(courses),
		StudyLevels:  catalogfilter.StudyLevels(courses),
		Universities: catalogfilter.Universities(courses, f),
		Programs:     catalogfilter.Programs(courses, f),
	})
}

// Get returns one course by id.
func (h *CourseHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to load course")
	}

	return response.Success(c, course)
}
