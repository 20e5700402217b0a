package db

import (
	"time"
)

const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Run represents a single executed conversion plan
type Run struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Recipe     string     `gorm:"index;not null" json:"recipe"`
	Status     string     `gorm:"index;not null" json:"status"` // running, success, failed
	Total      int        `json:"total"`
	Completed  int        `json:"completed"`
	Error      string     `json:"error"`
	StartTime  time.Time  `gorm:"index" json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	DurationMs int64      `json:"duration_ms"`
	Steps      []RunStep  `gorm:"constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

// RunStep represents one attempted command of a run
type RunStep struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID       string `gorm:"index;size:36;not null" json:"run_id"`
	Position    int    `json:"position"`
	CommandLine string `json:"command_line"`
	InputPath   string `json:"input_path"`
	InputMD5    string `json:"input_md5"`
	OutputPath  string `json:"output_path"`
	Status      string `json:"status"` // success, failed
	ExitCode    int    `json:"exit_code"`
	DurationMs  int64  `json:"duration_ms"`
	Error       string `json:"error"`
}
