package growth

import (
	"fmt"
	"math"

	"airiskmodel/pkg/core/pipeline"
	"airiskmodel/pkg/models"
)

// Inputs bundles everything the Temporal Growth Engine needs for one run:
// the annual national exposure series from the Industry/Sector Aggregator,
// the resolved model release reference rows, the current national risk to
// anchor to, and each sector's annual exposure series plus its current risk
// (from the Risk Composer) for the per-industry projections.
type Inputs struct {
	NationalExposureSeries map[int]float64
	ModelReleases          []models.ModelBenchmark
	CurrentNationalRisk    float64
	SectorExposureSeries   map[string]map[int]float64
	SectorCurrentRisk      map[string]float64
}

// Output is the full set of temporal-engine artifacts for one run.
type Output struct {
	MonthlySeries []models.MonthlyRiskPoint

	ExposureCAGR  float64
	ExposureBeta  float64
	FrontierCAGR  float64
	FrontierBeta  float64

	MeanDeltaPP    float64
	MedianDeltaPP  float64
	OLSSlopePP     float64
	TheilSenSlopePP float64

	CombinedMonthlyGrowth float64
	RiskSeriesCAGR        float64

	IndustryProjections []models.IndustryProjection
}

// Compute runs the full Temporal Growth Engine (§4.11). Every model in
// in.ModelReleases must carry a non-zero ReleaseDate; callers resolve
// release dates against config.ModelReleases before calling, per §7's
// ModelReleaseMissing contract ("fail fast listing the offending model ids").
func Compute(in Inputs) (Output, error) {
	var missing []string
	for _, m := range in.ModelReleases {
		if m.ReleaseDate.IsZero() {
			missing = append(missing, m.ModelID)
		}
	}
	if len(missing) > 0 {
		return Output{}, pipeline.ModelReleaseMissing(missing)
	}
	if len(in.NationalExposureSeries) < 2 {
		return Output{}, fmt.Errorf("temporal growth engine: national exposure series needs at least 2 years, got %d", len(in.NationalExposureSeries))
	}
	if len(in.ModelReleases) == 0 {
		return Output{}, fmt.Errorf("temporal growth engine: no model releases supplied")
	}

	expCAGR, expAlpha, expBeta, yearMin := ExposureTrend(in.NationalExposureSeries)

	frontier := BuildFrontier(in.ModelReleases)
	frontierCAGR, _, frontierBeta := FrontierTrend(frontier)

	var monthly []models.MonthlyRiskPoint
	if len(frontier) > 0 {
		grid := MonthlyGrid(frontier[0].Date, frontier[len(frontier)-1].Date)
		monthly = BuildMonthlySeries(grid, frontier, expAlpha, expBeta, yearMin, in.CurrentNationalRisk)
	}

	meanD, medianD, olsD, theilD := Increments(monthly)
	combined := CombinedMonthlyGrowth(expBeta, frontierBeta)
	riskCAGR := RiskSeriesCAGR(monthly)

	gCap := math.Exp(frontierBeta) - 1
	t := float64(0)
	if len(monthly) > 0 {
		t = float64(len(monthly) - 1)
	}
	projections := IndustryProjections(in.SectorExposureSeries, in.SectorCurrentRisk, gCap, t)

	return Output{
		MonthlySeries:         monthly,
		ExposureCAGR:          expCAGR,
		ExposureBeta:          expBeta,
		FrontierCAGR:          frontierCAGR,
		FrontierBeta:          frontierBeta,
		MeanDeltaPP:           meanD,
		MedianDeltaPP:         medianD,
		OLSSlopePP:            olsD,
		TheilSenSlopePP:       theilD,
		CombinedMonthlyGrowth: combined,
		RiskSeriesCAGR:        riskCAGR,
		IndustryProjections:   projections,
	}, nil
}
