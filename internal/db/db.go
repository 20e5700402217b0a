package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the history database connection
type DB struct {
	conn *gorm.DB
}

// Open opens or creates the history database and migrates its schema
func Open(dbPath string) (*DB, error) {
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// SQLite only supports one writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := conn.AutoMigrate(&Run{}, &RunStep{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateRun inserts a running entry started at startTime and returns it with
// a fresh ID
func (db *DB) CreateRun(recipe string, total int, startTime time.Time) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Recipe:    recipe,
		Status:    StatusRunning,
		Total:     total,
		StartTime: startTime,
	}
	if err := db.conn.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// InsertStep records one attempted step of a run
func (db *DB) InsertStep(step *RunStep) error {
	if err := db.conn.Create(step).Error; err != nil {
		return fmt.Errorf("failed to insert step: %w", err)
	}
	return nil
}

// FinishRun stores the final state of a run that took duration since its
// start. An empty errMsg marks success.
func (db *DB) FinishRun(run *Run, completed int, errMsg string, duration time.Duration) error {
	end := run.StartTime.Add(duration)
	run.Completed = completed
	run.Error = errMsg
	run.EndTime = &end
	run.DurationMs = duration.Milliseconds()
	run.Status = StatusSuccess
	if errMsg != "" {
		run.Status = StatusFailed
	}

	err := db.conn.Model(&Run{}).Where("id = ?", run.ID).Updates(map[string]interface{}{
		"status":      run.Status,
		"completed":   run.Completed,
		"error":       run.Error,
		"end_time":    run.EndTime,
		"duration_ms": run.DurationMs,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first, optionally filtered by recipe
func (db *DB) ListRuns(limit int, recipe string) ([]Run, error) {
	query := db.conn.Order("start_time DESC")
	if recipe != "" {
		query = query.Where("recipe = ?", recipe)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var runs []Run
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run including its steps in execution order
func (db *DB) GetRun(id string) (*Run, error) {
	var run Run
	err := db.conn.Preload("Steps", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).First(&run, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}
