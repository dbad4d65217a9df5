package exposure

import (
	"testing"

	"airiskmodel/pkg/models"
)

func TestAggregateDominantTaskWeight(t *testing.T) {
	tasks := []models.Task{
		{SOCCode: "15-1252", TaskID: "1", Weight: 1.0},
		{SOCCode: "15-1252", TaskID: "2", Weight: 0.01},
	}
	scores := []models.TaskScore{
		{SOCCode: "15-1252", TaskID: "1", Score: 0.9},
		{SOCCode: "15-1252", TaskID: "2", Score: 0.1},
	}
	occs := []models.Occupation{{SOCCode: "15-1252", Title: "Software Developers"}}

	result := Aggregate(tasks, scores, occs)
	if len(result) != 1 {
		t.Fatalf("expected 1 occupation, got %d", len(result))
	}
	if result[0].Value < 0 || result[0].Value > 1 {
		t.Fatalf("E_occ out of [0,1]: %v", result[0].Value)
	}
	if result[0].Value < 0.88 {
		t.Errorf("expected E_occ dominated by task 1's weight, got %v", result[0].Value)
	}
}

func TestAggregateMissingScoreDefaultsZero(t *testing.T) {
	tasks := []models.Task{{SOCCode: "15-1252", TaskID: "1", Weight: 0.5}}
	result := Aggregate(tasks, nil, nil)
	if result[0].Value != 0 {
		t.Errorf("expected 0 exposure with no scores, got %v", result[0].Value)
	}
}
