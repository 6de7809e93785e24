package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/services/compare"
)

// purgeAfter is how long soft-deleted catalog rows are kept before the
// nightly purge removes them permanently.
const purgeAfter = 30 * 24 * time.Hour

// PurgeDeletedCatalog permanently removes courses and scholarships that were
// soft-deleted more than 30 days ago. Runs nightly.
func (m *Manager) PurgeDeletedCatalog() {
	jobName := "purge_deleted_catalog"
	cutoff := time.Now().Add(-purgeAfter)

	courses := m.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&model.Course{})
	if courses.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to purge courses: %w", courses.Error))
		return
	}

	scholarships := m.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&model.Scholarship{})
	if scholarships.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to purge scholarships: %w", scholarships.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf(
		"Purged %d courses, %d scholarships", courses.RowsAffected, scholarships.RowsAffected))
}

// SweepAnonymousCompare deletes anonymous comparison blobs that have no
// expiry set. Every write sets a TTL, so a persistent key is leftover state
// from an interrupted write. Runs hourly.
func (m *Manager) SweepAnonymousCompare() {
	jobName := "sweep_anonymous_compare"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	keys, err := m.cache.Keys(ctx, compare.AnonKeyPrefix+"*")
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to scan comparison keys: %w", err))
		return
	}

	swept := 0
	for _, key := range keys {
		ttl, err := m.cache.TTL(ctx, key)
		if err != nil {
			log.Printf("[CRON] Failed to read TTL for %s: %v", key, err)
			continue
		}
		if ttl >= 0 {
			continue
		}
		if err := m.cache.Delete(ctx, key); err != nil {
			log.Printf("[CRON] Failed to delete %s: %v", key, err)
			continue
		}
		swept++
	}

	m.logJobComplete(jobName, fmt.Sprintf("Scanned %d keys, swept %d", len(keys), swept))
}
