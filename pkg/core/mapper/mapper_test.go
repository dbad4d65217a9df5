package mapper

import (
	"testing"

	"airiskmodel/pkg/models"
)

func sampleTasksAndTools() ([]models.Task, []models.Tool) {
	tasks := []models.Task{
		{SOCCode: "43-9061", TaskID: "1", Text: "write business reports and summaries", Type: models.TaskCore, Weight: 1},
		{SOCCode: "53-7051", TaskID: "2", Text: "operate heavy machinery on the loading dock", Type: models.TaskCore, Weight: 0.25},
	}
	tools := []models.Tool{
		{Source: models.SourceDirectory, ToolID: "a", Name: "Report Writer", Text: "automated report writer generates business summaries", Tags: nil},
		{Source: models.SourceAPI, ToolID: "b", Name: "Forklift Controller", Text: "controls heavy machinery on a warehouse loading dock", Tags: nil},
		{Source: models.SourceReadme, ToolID: "c", Name: "Unrelated", Text: "completely unrelated gardening tips", Tags: nil},
	}
	return tasks, tools
}

func TestLenientScoreBounds(t *testing.T) {
	tasks, tools := sampleTasksAndTools()
	scores := LenientScore(tasks, tools)
	if len(scores) != len(tasks) {
		t.Fatalf("expected %d scores, got %d", len(tasks), len(scores))
	}
	for _, s := range scores {
		if s.Score < 0.02 || s.Score > 1 {
			t.Errorf("lenient score out of [0.02,1]: %v", s.Score)
		}
	}
}

func TestStrictScoreBounds(t *testing.T) {
	tasks, tools := sampleTasksAndTools()
	scores := StrictScore(tasks, tools)
	if len(scores) != len(tasks) {
		t.Fatalf("expected %d strict scores (all Core), got %d", len(tasks), len(scores))
	}
	for _, s := range scores {
		if s.Score < 0 || s.Score > 1 {
			t.Errorf("strict score out of [0,1]: %v", s.Score)
		}
	}
}

func TestStrictScoreExcludesSupplemental(t *testing.T) {
	tasks := []models.Task{
		{SOCCode: "43-9061", TaskID: "1", Text: "write reports", Type: models.TaskSupplemental, Weight: 1},
	}
	_, tools := sampleTasksAndTools()
	scores := StrictScore(tasks, tools)
	if scores != nil {
		t.Fatalf("expected no strict scores for supplemental-only task set, got %d", len(scores))
	}
}
