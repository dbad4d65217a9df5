package growth

import (
	"math"
	"testing"
	"time"

	"airiskmodel/pkg/models"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleReleases() []models.ModelBenchmark {
	return []models.ModelBenchmark{
		{ModelID: "gpt-4", ReleaseDate: mustDate("2023-03-01"), GlobalWinRate: 0.30},
		{ModelID: "gpt-4o", ReleaseDate: mustDate("2024-05-01"), GlobalWinRate: 0.45},
		{ModelID: "lagging-model", ReleaseDate: mustDate("2024-11-01"), GlobalWinRate: 0.40},
		{ModelID: "gpt-5", ReleaseDate: mustDate("2025-08-01"), GlobalWinRate: 0.65},
	}
}

func TestBuildFrontierMonotonic(t *testing.T) {
	frontier := BuildFrontier(sampleReleases())
	if len(frontier) != 4 {
		t.Fatalf("expected 4 frontier points, got %d", len(frontier))
	}
	for i := 1; i < len(frontier); i++ {
		if frontier[i].Value < frontier[i-1].Value {
			t.Fatalf("frontier not monotonic at index %d: %v -> %v", i, frontier[i-1].Value, frontier[i].Value)
		}
	}
	// lagging-model's 0.40 must not pull the running max below gpt-4o's 0.45.
	if frontier[2].Value != 0.45 {
		t.Errorf("expected frontier to hold at 0.45 through lagging-model, got %v", frontier[2].Value)
	}
	if frontier[3].Value != 0.65 {
		t.Errorf("expected frontier to reach 0.65 at gpt-5, got %v", frontier[3].Value)
	}
}

func TestExposureTrendCAGR(t *testing.T) {
	series := map[int]float64{2020: 0.10, 2021: 0.12, 2022: 0.15, 2023: 0.19, 2024: 0.24}
	cagr, _, beta, yearMin := ExposureTrend(series)
	if yearMin != 2020 {
		t.Errorf("expected yearMin 2020, got %d", yearMin)
	}
	if cagr <= 0 {
		t.Errorf("expected positive CAGR for a growing series, got %v", cagr)
	}
	if beta <= 0 {
		t.Errorf("expected positive log-linear slope for a growing series, got %v", beta)
	}
}

func TestComputeAnchorsLastMonthToCurrentRisk(t *testing.T) {
	in := Inputs{
		NationalExposureSeries: map[int]float64{2021: 0.20, 2022: 0.24, 2023: 0.28, 2024: 0.33},
		ModelReleases:          sampleReleases(),
		CurrentNationalRisk:    0.12,
		SectorExposureSeries: map[string]map[int]float64{
			"54": {2021: 0.25, 2022: 0.30, 2023: 0.35, 2024: 0.40},
		},
		SectorCurrentRisk: map[string]float64{"54": 0.18},
	}
	out, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if len(out.MonthlySeries) == 0 {
		t.Fatalf("expected a non-empty monthly series")
	}
	last := out.MonthlySeries[len(out.MonthlySeries)-1]
	if math.Abs(last.Risk-in.CurrentNationalRisk) > 1e-9 {
		t.Errorf("expected last anchored risk to equal current national risk %v, got %v", in.CurrentNationalRisk, last.Risk)
	}
	if !math.IsNaN(out.MonthlySeries[0].DeltaPP) {
		t.Errorf("expected first month's DeltaPP to be NaN, got %v", out.MonthlySeries[0].DeltaPP)
	}
	if len(out.IndustryProjections) != 1 || out.IndustryProjections[0].Sector != "54" {
		t.Fatalf("expected one projection row for sector 54, got %+v", out.IndustryProjections)
	}
}

func TestComputeFailsFastOnMissingReleaseDate(t *testing.T) {
	releases := sampleReleases()
	releases = append(releases, models.ModelBenchmark{ModelID: "mystery-model"})
	_, err := Compute(Inputs{
		NationalExposureSeries: map[int]float64{2021: 0.2, 2022: 0.25},
		ModelReleases:          releases,
		CurrentNationalRisk:    0.1,
	})
	if err == nil {
		t.Fatalf("expected an error for a model release missing its date")
	}
}

func TestBuildMonthlySeriesFlatWhenRawSeriesIsZero(t *testing.T) {
	grid := MonthlyGrid(mustDate("2023-01-01"), mustDate("2023-03-01"))
	points := BuildMonthlySeries(grid, nil, 0, 0, 2023, 0.07)
	for _, p := range points {
		if p.Risk != 0.07 {
			t.Errorf("expected flat anchor at currentRisk when raw series is zero, got %v", p.Risk)
		}
	}
}
