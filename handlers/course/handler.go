// Package course implements the course catalog endpoints: filtered listing,
// dependent facet options, detail, and admin CRUD.
package course

import (
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/services/catalog"
	"github.com/sahilchouksey/study-abroad-api/utils/validation"
)

// CourseHandler handles course catalog requests
type CourseHandler struct {
	db        *gorm.DB
	loader    *catalog.Loader
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		loader:    catalog.NewLoader(db),
		validator: validation.NewValidator(),
	}
}
