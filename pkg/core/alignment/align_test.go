package alignment

import (
	"math"
	"testing"

	"airiskmodel/pkg/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{SOCCode: "15-1252", TaskID: "t1", Text: "write and debug application code in multiple languages", Weight: 0.8},
		{SOCCode: "15-1252", TaskID: "t2", Text: "review pull requests and mentor junior engineers", Weight: 0.6},
		{SOCCode: "15-1252", TaskID: "t3", Text: "design database schemas for new services", Weight: 0.5},
		{SOCCode: "43-9061", TaskID: "t4", Text: "sort and deliver incoming office mail", Weight: 0.3},
	}
}

func sampleScores() []models.TaskScore {
	return []models.TaskScore{
		{SOCCode: "15-1252", TaskID: "t1", Score: 0.7},
		{SOCCode: "15-1252", TaskID: "t2", Score: 0.2},
		{SOCCode: "15-1252", TaskID: "t3", Score: 0.5},
		{SOCCode: "43-9061", TaskID: "t4", Score: 0.1},
	}
}

func TestAlignPromptWeightsTowardClosestCandidate(t *testing.T) {
	candidates := CandidateTasks(sampleTasks(), []string{"15-1252"})
	scores := scoreIndex(sampleScores())
	value, used := AlignPrompt("write application code and debug it", candidates, scores, 2)
	if used == 0 {
		t.Fatalf("expected at least one candidate used")
	}
	if value <= 0 || value > 1 {
		t.Errorf("expected aligned value in (0,1], got %v", value)
	}
	// Only t1 shares terms with the prompt, so all weight lands on its score.
	if math.Abs(value-0.7) > 1e-9 {
		t.Errorf("expected aligned value to equal t1's score 0.7, got %v", value)
	}
}

func TestAlignByOccupationEmptyPartition(t *testing.T) {
	prompts := []models.GoldPrompt{
		{TaskID: "g1", Occupation: "Ghost Occupation", Prompt: "do something nobody does"},
	}
	mappings := []models.NameMapping{
		{BenchmarkOccupation: "Ghost Occupation", SOCCodes: []string{"99-9999"}, Method: models.MatchExact},
	}
	results, notes := AlignByOccupation(prompts, sampleTasks(), sampleScores(), mappings, 3)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !math.IsNaN(results[0].Value) {
		t.Errorf("expected NaN value for empty-partition occupation, got %v", results[0].Value)
	}
	if results[0].TopK != 0 {
		t.Errorf("expected TopK 0 for empty-partition occupation, got %d", results[0].TopK)
	}
	if len(notes) != 1 || notes[0].Occupation != "Ghost Occupation" {
		t.Fatalf("expected one EmptyPartitionNote for Ghost Occupation, got %+v", notes)
	}
}

func TestAlignByOccupationSkipsUnmatched(t *testing.T) {
	prompts := []models.GoldPrompt{
		{TaskID: "g1", Occupation: "Unmapped Role", Prompt: "anything"},
	}
	mappings := []models.NameMapping{
		{BenchmarkOccupation: "Unmapped Role", Method: models.MatchUnmatched},
	}
	results, notes := AlignByOccupation(prompts, sampleTasks(), sampleScores(), mappings, 3)
	if len(results) != 0 || len(notes) != 0 {
		t.Fatalf("expected no results or notes for an unmatched occupation, got %+v / %+v", results, notes)
	}
}

func TestAdjustedExposureFallsBackToBaselineOnEmptyPartition(t *testing.T) {
	baseline := []models.OccupationExposure{
		{SOCCode: "99-9999", Value: 0.33},
		{SOCCode: "15-1252", Value: 0.40},
	}
	occAlignments := []OccupationAlignment{
		{Occupation: "Ghost Occupation", SOCCodes: []string{"99-9999"}, Value: math.NaN(), TopK: 0},
		{Occupation: "Software Developers", SOCCodes: []string{"15-1252"}, Value: 0.55, TopK: 2},
	}
	adjusted := AdjustedExposure(baseline, occAlignments)
	var byCode = make(map[string]models.AlignedExposure, len(adjusted))
	for _, a := range adjusted {
		byCode[a.SOCCode] = a
	}
	if byCode["99-9999"].Value != 0.33 {
		t.Errorf("expected baseline fallback 0.33 for empty-partition SOC, got %v", byCode["99-9999"].Value)
	}
	if byCode["99-9999"].AlignmentTopK != 0 {
		t.Errorf("expected AlignmentTopK 0 on fallback, got %d", byCode["99-9999"].AlignmentTopK)
	}
	if byCode["15-1252"].Value != 0.55 {
		t.Errorf("expected aligned value 0.55 for 15-1252, got %v", byCode["15-1252"].Value)
	}
	for _, a := range adjusted {
		if math.IsNaN(a.Value) {
			t.Fatalf("adjusted exposure must never be NaN, got NaN for %s", a.SOCCode)
		}
	}
}
