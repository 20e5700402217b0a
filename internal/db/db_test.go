package db

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestRunLifecycle(t *testing.T) {
	database := openTestDB(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	run, err := database.CreateRun("photo", 3, start)
	if err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	if len(run.ID) != 36 || run.Status != StatusRunning {
		t.Errorf("Unexpected new run: %+v", run)
	}

	steps := []RunStep{
		{RunID: run.ID, Position: 2, CommandLine: "convert a.png converted/a.jpg", InputPath: "a.png", Status: StatusFailed, ExitCode: 1},
		{RunID: run.ID, Position: 1, CommandLine: "mkdir -p converted", Status: StatusSuccess},
	}
	for i := range steps {
		if err := database.InsertStep(&steps[i]); err != nil {
			t.Fatalf("InsertStep failed: %v", err)
		}
	}

	if err := database.FinishRun(run, 1, "step 2/3 failed", 1500*time.Millisecond); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	got, err := database.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Status != StatusFailed || got.Completed != 1 || got.Error != "step 2/3 failed" {
		t.Errorf("Unexpected finished run: %+v", got)
	}
	if !got.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, expected %v", got.StartTime, start)
	}
	if got.EndTime == nil || !got.EndTime.Equal(start.Add(1500*time.Millisecond)) {
		t.Errorf("EndTime = %v, expected start + 1.5s", got.EndTime)
	}
	if got.DurationMs != 1500 {
		t.Errorf("DurationMs = %d, expected 1500", got.DurationMs)
	}
	if len(got.Steps) != 2 || got.Steps[0].Position != 1 || got.Steps[1].ExitCode != 1 {
		t.Errorf("Unexpected steps: %+v", got.Steps)
	}
}

func TestFinishRunSuccess(t *testing.T) {
	database := openTestDB(t)

	run, err := database.CreateRun("sound", 1, time.Now())
	if err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	if err := database.FinishRun(run, 1, "", time.Second); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}
	if run.Status != StatusSuccess {
		t.Errorf("Status = %s, expected %s", run.Status, StatusSuccess)
	}
}

func TestListRuns(t *testing.T) {
	database := openTestDB(t)

	start := time.Now().Add(-time.Hour)
	for i, recipe := range []string{"photo", "sound", "photo", "video"} {
		if _, err := database.CreateRun(recipe, 1, start.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("CreateRun failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		limit    int
		recipe   string
		expected []string
	}{
		{"all newest first", 0, "", []string{"video", "photo", "sound", "photo"}},
		{"limited", 2, "", []string{"video", "photo"}},
		{"filtered", 0, "photo", []string{"photo", "photo"}},
		{"no match", 0, "opus", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := database.ListRuns(tt.limit, tt.recipe)
			if err != nil {
				t.Fatalf("ListRuns failed: %v", err)
			}
			if len(runs) != len(tt.expected) {
				t.Fatalf("Expected %d runs, got %d", len(tt.expected), len(runs))
			}
			for i, want := range tt.expected {
				if runs[i].Recipe != want {
					t.Errorf("run %d recipe = %s, expected %s", i, runs[i].Recipe, want)
				}
			}
		})
	}
}

func TestGetRunMissing(t *testing.T) {
	database := openTestDB(t)
	if _, err := database.GetRun("does-not-exist"); err == nil {
		t.Error("Expected an error for a missing run")
	}
}
