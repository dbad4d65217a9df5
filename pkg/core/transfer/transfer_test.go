package transfer

import (
	"testing"

	"airiskmodel/pkg/models"
)

func sampleTransferOccupations() []models.Occupation {
	return []models.Occupation{
		{SOCCode: "15-1252", Title: "Software Developers"},
		{SOCCode: "15-1251", Title: "Computer Programmers"},
		{SOCCode: "43-9061", Title: "Office Clerks, General"},
	}
}

func sampleTransferTasks() []models.Task {
	return []models.Task{
		{SOCCode: "15-1252", TaskID: "t1", Text: "write code to build software applications", Type: models.TaskCore},
		{SOCCode: "15-1251", TaskID: "t2", Text: "write and modify computer programs", Type: models.TaskCore},
		{SOCCode: "43-9061", TaskID: "t3", Text: "sort mail and answer phones", Type: models.TaskCore},
	}
}

func TestBuildOccupationCorpusBuildsDocumentPerOccupation(t *testing.T) {
	corpus := BuildOccupationCorpus(sampleTransferOccupations(), sampleTransferTasks())
	if corpus["15-1252"] == "" {
		t.Fatalf("expected a non-empty corpus document for 15-1252")
	}
	if corpus["43-9061"] == "" {
		t.Fatalf("expected a non-empty corpus document for 43-9061")
	}
}

func TestFitTransferAssignsPositiveWeightToOnlyAnchor(t *testing.T) {
	corpus := BuildOccupationCorpus(sampleTransferOccupations(), sampleTransferTasks())
	rows := FitTransfer(corpus, []string{"15-1251"}, 1)

	var target TransferRow
	for _, r := range rows {
		if r.SOCCode == "15-1252" {
			target = r
		}
	}
	if target.SOCCode == "" {
		t.Fatalf("expected a transfer row for 15-1252")
	}
	if target.Weights["15-1251"] <= 0 {
		t.Errorf("expected positive transfer weight from the only anchor, got %v", target.Weights["15-1251"])
	}
}

func TestShrinkageAlphaClipsToUnitRange(t *testing.T) {
	rows := []TransferRow{
		{SOCCode: "a", Strength: 0.1},
		{SOCCode: "b", Strength: 0.5},
		{SOCCode: "c", Strength: 0.9},
	}
	alphas := ShrinkageAlpha(rows)
	for soc, a := range alphas {
		if a < 0 || a > 1 {
			t.Errorf("alpha for %s out of [0,1]: %v", soc, a)
		}
	}
	if alphas["a"] >= alphas["c"] {
		t.Errorf("expected lower strength to produce lower alpha: a=%v c=%v", alphas["a"], alphas["c"])
	}
}

func TestComputeWinProbabilitiesAnchoredBeatsGlobal(t *testing.T) {
	totals := []models.ModelBenchmark{{ModelID: "gpt-5", GlobalWinRate: 0.5}}
	occWinRates := []models.OccupationWinRate{
		{ModelID: "gpt-5", Sector: "54", Occupation: "Software Developers", WinRate: 0.9},
	}
	mappings := []models.NameMapping{
		{BenchmarkOccupation: "Software Developers", SOCCodes: []string{"15-1252"}, Method: models.MatchExact},
	}
	transferRows := []TransferRow{
		{SOCCode: "15-1251", Weights: map[string]float64{"15-1252": 1.0}, Strength: 0.8},
	}
	alphas := map[string]float64{"15-1251": 0.5}

	out := ComputeWinProbabilities(totals, occWinRates, mappings, transferRows, alphas, []string{"15-1252", "15-1251"})

	byCode := make(map[string]models.OccupationWinProbability, len(out))
	for _, o := range out {
		byCode[o.SOCCode] = o
	}
	if !byCode["15-1252"].Anchored {
		t.Errorf("expected 15-1252 to be anchored")
	}
	if byCode["15-1252"].POcc != 0.9 {
		t.Errorf("expected anchored POcc 0.9, got %v", byCode["15-1252"].POcc)
	}
	if byCode["15-1251"].Anchored {
		t.Errorf("expected 15-1251 to be transferred, not anchored")
	}
	// alpha=0.5, weighted = 1.0*0.9 = 0.9, so p = 0.5*0.9 + 0.5*0.5 = 0.7
	if got, want := byCode["15-1251"].POcc, 0.7; got != want {
		t.Errorf("expected transferred POcc %v, got %v", want, got)
	}
}
