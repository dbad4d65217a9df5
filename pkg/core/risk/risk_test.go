package risk

import (
	"math"
	"testing"

	"airiskmodel/pkg/models"
)

func sampleWinProbs() []models.OccupationWinProbability {
	return []models.OccupationWinProbability{
		{ModelID: "gpt-5", SOCCode: "15-1252", POcc: 0.6},
		{ModelID: "gpt-5", SOCCode: "43-9061", POcc: 0.8},
	}
}

func sampleExposures() []models.OccupationExposure {
	return []models.OccupationExposure{
		{SOCCode: "15-1252", Value: 0.5},
		{SOCCode: "43-9061", Value: 0.2},
	}
}

func sampleEmploymentBySector() []models.EmploymentRow {
	return []models.EmploymentRow{
		{SectorCode: "54", SOCCode: "15-1252", TotalEmp: 1000},
		{SectorCode: "54", SOCCode: "43-9061", TotalEmp: 4000},
		{SectorCode: "56", SOCCode: "43-9061", TotalEmp: 2000},
	}
}

func TestComposeOccupationRisk(t *testing.T) {
	rows := ComposeOccupationRisk(ExposureMap(sampleExposures()), sampleWinProbs())
	if len(rows) != 2 {
		t.Fatalf("expected 2 risk rows, got %d", len(rows))
	}
	for _, r := range rows {
		want := r.Exposure * r.POcc
		if math.Abs(r.Risk-want) > 1e-12 {
			t.Errorf("risk for %s mismatched: got %v want %v", r.SOCCode, r.Risk, want)
		}
	}
}

func TestComposeSectorAndNationalRiskRollUp(t *testing.T) {
	riskRows := ComposeOccupationRisk(ExposureMap(sampleExposures()), sampleWinProbs())
	sectorRisk := ComposeSectorRisk(riskRows, sampleEmploymentBySector())
	if len(sectorRisk) != 2 {
		t.Fatalf("expected 2 sector rows (54 and 56), got %d", len(sectorRisk))
	}

	national := ComposeNationalRisk(sectorRisk)
	if len(national) != 1 {
		t.Fatalf("expected 1 national row, got %d", len(national))
	}

	contributed := AttachContribution(sectorRisk)
	var sumContribution float64
	for _, sr := range contributed {
		sumContribution += sr.WeightedContribution
	}
	if math.Abs(sumContribution-national[0].RiskNat) > 1e-9 {
		t.Errorf("sector contributions must sum to national risk: got %v want %v", sumContribution, national[0].RiskNat)
	}
}

func TestBestModelPicksHighestRiskNat(t *testing.T) {
	rows := []models.NationalRisk{
		{ModelID: "gpt-4", RiskNat: 0.10},
		{ModelID: "gpt-5", RiskNat: 0.18},
		{ModelID: "claude", RiskNat: 0.15},
	}
	best, ok := BestModel(rows)
	if !ok || best.ModelID != "gpt-5" {
		t.Fatalf("expected gpt-5 to be the highest-risk model, got %+v", best)
	}
}

func TestBestModelEmptyInput(t *testing.T) {
	if _, ok := BestModel(nil); ok {
		t.Fatalf("expected ok=false for an empty national-risk slice")
	}
}
