package industry

import (
	"math"
	"testing"

	"airiskmodel/pkg/models"
)

func sampleEmployment() []models.EmploymentRow {
	return []models.EmploymentRow{
		{Year: 2023, NAICS6: "541511", SectorCode: "54", SOCCode: "15-1252", TotalEmp: 1000},
		{Year: 2023, NAICS6: "541511", SectorCode: "54", SOCCode: "43-9061", TotalEmp: 500},
		{Year: 2023, NAICS6: "622110", SectorCode: "62", SOCCode: "29-1141", TotalEmp: 2000},
		{Year: 2023, SOCCode: "15-1252", TotalEmp: 5000, IsNational: true},
		{Year: 2023, SOCCode: "43-9061", TotalEmp: 3000, IsNational: true},
	}
}

func sampleExposures() []models.OccupationExposure {
	return []models.OccupationExposure{
		{SOCCode: "15-1252", Value: 0.8},
		{SOCCode: "43-9061", Value: 0.2},
		{SOCCode: "29-1141", Value: 0.0},
	}
}

func TestAggregateIndustrySkipsNationalRows(t *testing.T) {
	rows := AggregateIndustry(sampleEmployment(), sampleExposures())
	if len(rows) != 2 {
		t.Fatalf("expected 2 industry-year rows (541511, 622110), got %d", len(rows))
	}
	for _, r := range rows {
		if r.Code == "541511" {
			want := (1000*0.8 + 500*0.2) / 1500
			if math.Abs(r.IndustryExposure-want) > 1e-9 {
				t.Errorf("541511 exposure: got %v want %v", r.IndustryExposure, want)
			}
			if r.MatchRate != 1.0 {
				t.Errorf("541511 match rate: got %v want 1.0", r.MatchRate)
			}
		}
		if r.Code == "622110" {
			if r.IndustryExposure != 0 {
				t.Errorf("622110 exposure should be 0 (exposure value 0), got %v", r.IndustryExposure)
			}
			if r.MatchRate != 0 {
				t.Errorf("622110 match rate should be 0 (no positive-exposure match), got %v", r.MatchRate)
			}
		}
	}
}

func TestAggregateSectorRollsUpByNormalizedCode(t *testing.T) {
	industryRows := AggregateIndustry(sampleEmployment(), sampleExposures())
	sectorRows := AggregateSector(industryRows)
	if len(sectorRows) != 2 {
		t.Fatalf("expected 2 sector rows, got %d", len(sectorRows))
	}
	for _, s := range sectorRows {
		if s.Code != "54" && s.Code != "62" {
			t.Errorf("unexpected sector code %q", s.Code)
		}
		if s.Title == "" {
			t.Errorf("expected a non-empty sector title for %q", s.Code)
		}
	}
}

func TestComputeGrowthNaNOnSinglePoint(t *testing.T) {
	g := ComputeGrowth("54", map[int]float64{2023: 0.3})
	if !math.IsNaN(g.AbsChange) || !math.IsNaN(g.PctChange) || !math.IsNaN(g.CAGR) || !math.IsNaN(g.YoY) {
		t.Errorf("expected all-NaN growth stats for a single-point series, got %+v", g)
	}
}

func TestComputeGrowthMultiYear(t *testing.T) {
	g := ComputeGrowth("54", map[int]float64{2019: 0.1, 2022: 0.15, 2023: 0.2})
	if g.StartYear != 2019 || g.EndYear != 2023 {
		t.Fatalf("expected span 2019-2023, got %d-%d", g.StartYear, g.EndYear)
	}
	if math.Abs(g.AbsChange-0.1) > 1e-9 {
		t.Errorf("abs change: got %v want 0.1", g.AbsChange)
	}
	wantYoY := 0.2/0.15 - 1
	if math.Abs(g.YoY-wantYoY) > 1e-9 {
		t.Errorf("yoy: got %v want %v (latest vs immediately prior year, not a gap)", g.YoY, wantYoY)
	}
}

func TestComputeGrowthZeroStartYieldsNaNPctChange(t *testing.T) {
	g := ComputeGrowth("54", map[int]float64{2019: 0, 2023: 0.2})
	if !math.IsNaN(g.PctChange) {
		t.Errorf("expected NaN pct change on a zero start value, got %v", g.PctChange)
	}
	if math.IsNaN(g.AbsChange) {
		t.Errorf("abs change should still be defined, got NaN")
	}
}

func TestPivotByCodeAndComputeGrowthAll(t *testing.T) {
	rows := []models.IndustryYear{
		{Year: 2022, Code: "54", IndustryExposure: 0.3},
		{Year: 2023, Code: "54", IndustryExposure: 0.4},
		{Year: 2022, Code: "62", IndustryExposure: 0.1},
	}
	pivoted := PivotByCode(rows)
	all := ComputeGrowthAll(pivoted)
	if len(all) != 2 {
		t.Fatalf("expected growth stats for 2 codes, got %d", len(all))
	}
	if all[0].Code != "54" || all[1].Code != "62" {
		t.Errorf("expected codes sorted lexically, got %s then %s", all[0].Code, all[1].Code)
	}
}

func TestNationalExposureSeriesUsesOnlyNationalRows(t *testing.T) {
	series := NationalExposureSeries(sampleEmployment(), sampleExposures())
	if len(series) != 1 {
		t.Fatalf("expected a single national year, got %d", len(series))
	}
	want := (5000*0.8 + 3000*0.2) / 8000
	if math.Abs(series[2023]-want) > 1e-9 {
		t.Errorf("national exposure for 2023: got %v want %v", series[2023], want)
	}
}
