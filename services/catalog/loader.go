// Package catalog loads the full course and scholarship catalogs for the
// scoring and filtering paths, which need every row in memory at once.
package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
)

// batchSize is the page size for catalog loads. The catalog is read in id
// order so pages are stable while rows are being appended.
const batchSize = 1000

// Loader fetches catalog rows in batches.
type Loader struct {
	db *gorm.DB
}

// NewLoader creates a catalog loader.
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Courses loads the entire course catalog, accumulating batches into a single
// slice. Cancellation is checked between batches, so a dropped request stops
// the load instead of paging through the whole table.
func (l *Loader) Courses(ctx context.Context) ([]model.Course, error) {
	var all []model.Course
	lastID := uint(0)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var batch []model.Course
		err := l.db.WithContext(ctx).
			Where("id > ?", lastID).
			Order("id ASC").
			Limit(batchSize).
			Find(&batch).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load courses: %w", err)
		}
		if len(batch) == 0 {
			return all, nil
		}

		all = append(all, batch...)
		lastID = batch[len(batch)-1].ID

		if len(batch) < batchSize {
			return all, nil
		}
	}
}

// Scholarships loads the entire scholarship catalog, batched the same way as
// Courses.
func (l *Loader) Scholarships(ctx context.Context) ([]model.Scholarship, error) {
	var all []model.Scholarship
	lastID := uint(0)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var batch []model.Scholarship
		err := l.db.WithContext(ctx).
			Where("id > ?", lastID).
			Order("id ASC").
			Limit(batchSize).
			Find(&batch).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load scholarships: %w", err)
		}
		if len(batch) == 0 {
			return all, nil
		}

		all = append(all, batch...)
		lastID = batch[len(batch)-1].ID

		if len(batch) < batchSize {
			return all, nil
		}
	}
}
