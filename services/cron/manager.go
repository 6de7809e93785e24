// Package cron runs the scheduled maintenance jobs: purging soft-deleted
// catalog rows and sweeping stale anonymous comparison state.
package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/cache"
)

// Manager owns the cron scheduler and the resources jobs need.
type Manager struct {
	cron  *cron.Cron
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewManager creates a cron manager.
func NewManager(db *gorm.DB, redisCache *cache.RedisCache) *Manager {
	return &Manager{
		cron:  cron.New(cron.WithSeconds()),
		db:    db,
		cache: redisCache,
	}
}

// Start registers all jobs and starts the scheduler.
func (m *Manager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (m *Manager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

func (m *Manager) registerJobs() error {
	// Daily at 3 AM: purge catalog rows soft-deleted more than 30 days ago.
	_, err := m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("purge_deleted_catalog")
		m.PurgeDeletedCatalog()
	})
	if err != nil {
		return err
	}

	// Hourly: drop anonymous comparison blobs left without an expiry.
	_, err = m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("sweep_anonymous_compare")
		m.SweepAnonymousCompare()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *Manager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	jobLog := model.JobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: time.Now(),
	}
	m.db.Create(&jobLog)
}

// logJobComplete logs successful completion of a cron job
func (m *Manager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)
	m.finishJob(jobName, "completed", message)
}

// logJobError logs a cron job error
func (m *Manager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)
	m.finishJob(jobName, "failed", err.Error())
}

func (m *Manager) finishJob(jobName, status, message string) {
	now := time.Now()
	var jobLog model.JobLog
	err := m.db.
		Where("job_name = ? AND status = ?", jobName, "running").
		Order("started_at DESC").
		First(&jobLog).Error
	if err != nil {
		return
	}

	m.db.Model(&jobLog).Updates(map[string]interface{}{
		"status":      status,
		"message":     message,
		"finished_at": now,
		"duration_ms": now.Sub(jobLog.StartedAt).Milliseconds(),
	})
}
