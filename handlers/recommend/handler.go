// Package recommend implements the profile-driven recommendation endpoints
// for courses and scholarships.
package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/services/catalog"
	"github.com/sahilchouksey/study-abroad-api/services/matcher"
	"github.com/sahilchouksey/study-abroad-api/utils/cache"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// countTTL is how long per-user recommendation counts are served from cache.
const countTTL = 5 * time.Minute

// RecommendHandler handles recommendation requests
type RecommendHandler struct {
	db     *gorm.DB
	loader *catalog.Loader
	counts *cache.TTLCache[Counts]
}

// Counts summarizes how many recommendations each catalog holds for a user.
type Counts struct {
	Courses      int `json:"courses"`
	Scholarships int `json:"scholarships"`
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(db *gorm.DB) *RecommendHandler {
	return &RecommendHandler{
		db:     db,
		loader: catalog.NewLoader(db),
		counts: cache.NewTTLCache[Counts](countTTL, nil),
	}
}

// profileFor loads the matcher profile for the user. An incomplete or absent
// profile surfaces through Validate in the ranking calls.
func (h *RecommendHandler) profileFor(userID uint) (matcher.Profile, error) {
	var stored model.StudentProfile
	err := h.db.Where("user_id = ?", userID).First(&stored).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return matcher.Profile{}, nil
		}
		return matcher.Profile{}, err
	}
	return matcher.ProfileFromModel(&stored), nil
}

// profileError maps the matcher's incomplete-profile sentinels to a 422 with
// the corrective message, or nil for other errors.
func profileError(c *fiber.Ctx, err error) error {
	if errors.Is(err, matcher.ErrProfileCountries) ||
		errors.Is(err, matcher.ErrProfileDegree) ||
		errors.Is(err, matcher.ErrProfileProgram) {
		return response.UnprocessableEntity(c, err.Error())
	}
	return nil
}

// Courses returns the user's ranked course recommendations.
func (h *RecommendHandler) Courses(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	profile, err := h.profileFor(userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load profile")
	}

	courses, err := h.loader.Courses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}

	ranked, err := matcher.RankCourses(courses, profile, c.QueryInt("quota", matcher.DefaultQuota))
	if err != nil {
		if resp := profileError(c, err); resp != nil {
			return resp
		}
		return response.InternalServerError(c, "Failed to rank courses")
	}

	return response.Success(c, ranked)
}

// Scholarships returns the user's ranked scholarship recommendations.
func (h *RecommendHandler) Scholarships(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	profile, err := h.profileFor(userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load profile")
	}

	scholarships, err := h.loader.Scholarships(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load scholarships")
	}

	ranked, err := matcher.RankScholarships(scholarships, profile, c.QueryInt("quota", matcher.DefaultQuota))
	if err != nil {
		if resp := profileError(c, err); resp != nil {
			return resp
		}
		return response.InternalServerError(c, "Failed to rank scholarships")
	}

	return response.Success(c, ranked)
}

// Count returns how many recommendations the user currently has, cached for
// five minutes per user so the dashboard badge does not re-rank the catalog
// on every navigation.
func (h *RecommendHandler) Count(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	key := fmt.Sprintf("user:%d", userID)
	if counts, ok := h.counts.Get(key); ok {
		return response.Success(c, counts)
	}

	profile, err := h.profileFor(userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load profile")
	}

	courses, err := h.loader.Courses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}
	scholarships, err := h.loader.Scholarships(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load scholarships")
	}

	rankedCourses, err := matcher.RankCourses(courses, profile, matcher.DefaultQuota)
	if err != nil {
		if resp := profileError(c, err); resp != nil {
			return resp
		}
		return response.InternalServerError(c, "Failed to rank courses")
	}
	rankedScholarships, err := matcher.RankScholarships(scholarships, profile, matcher.DefaultQuota)
	if err != nil {
		if resp := profileError(c, err); resp != nil {
			return resp
		}
		return response.InternalServerError(c, "Failed to rank scholarships")
	}

	counts := Counts{
		Courses:      len(rankedCourses),
		Scholarships: len(rankedScholarships),
	}
	h.counts.Set(key, counts)

	return response.Success(c, counts)
}

// InvalidateCounts drops the cached counts for a user, called after profile
// updates.
func (h *RecommendHandler) InvalidateCounts(userID uint) {
	h.counts.Invalidate(fmt.Sprintf("user:%d", userID))
}
