// Package history stores executed plans in the run database.
package history

import (
	"github.com/EdJoPaTo/edc/internal/db"
	"github.com/EdJoPaTo/edc/internal/logging"
	"github.com/EdJoPaTo/edc/internal/utils"
	"github.com/EdJoPaTo/edc/internal/workflow"
)

// Recorder writes execution results to the history database
type Recorder struct {
	db           *db.DB
	md5ChunkSize int
	log          *logging.Logger
}

func NewRecorder(database *db.DB, md5ChunkSize int, logger *logging.Logger) *Recorder {
	return &Recorder{db: database, md5ChunkSize: md5ChunkSize, log: logger}
}

// Record stores a run with all attempted steps. runErr is the error Execute
// returned, nil for a successful run.
func (r *Recorder) Record(recipe string, result *workflow.ExecutionResult, runErr error) (*db.Run, error) {
	run, err := r.db.CreateRun(recipe, result.Total, result.StartTime)
	if err != nil {
		return nil, err
	}

	for _, sr := range result.StepResults {
		step := &db.RunStep{
			RunID:       run.ID,
			Position:    sr.Index,
			CommandLine: sr.Line,
			InputPath:   sr.Step.Input,
			OutputPath:  sr.Step.Output,
			Status:      db.StatusSuccess,
			ExitCode:    sr.ExitCode,
			DurationMs:  sr.Duration.Milliseconds(),
			Error:       sr.Error,
		}
		if !sr.Success {
			step.Status = db.StatusFailed
		}
		if sr.Step.Input != "" {
			sum, err := utils.FileMD5(sr.Step.Input, r.md5ChunkSize)
			if err != nil {
				r.log.Warn("Failed to hash %s: %v", sr.Step.Input, err)
			}
			step.InputMD5 = sum
		}
		if err := r.db.InsertStep(step); err != nil {
			return run, err
		}
	}

	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
	}
	if err := r.db.FinishRun(run, result.Completed(), errMsg, result.Duration); err != nil {
		return run, err
	}
	r.log.Debug("Recorded run %s (%d/%d steps)", run.ID, run.Completed, run.Total)
	return run, nil
}
