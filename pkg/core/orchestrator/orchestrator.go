// Package orchestrator sequences the pipeline components that follow the
// Tool Corpus Builder (§2's data-flow order; the tool corpus is built by
// cmd/pipeline and passed in as RawInputs.Tools) and reports stage-boundary progress with the
// fmt.Printf banner style used throughout this codebase's other
// orchestrators. Every stage's actual computation lives in its own
// package; this one only wires inputs to outputs and persists the
// derived artifacts through an additive store.Sink.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"airiskmodel/pkg/core/alignment"
	"airiskmodel/pkg/core/benchmark"
	"airiskmodel/pkg/core/config"
	"airiskmodel/pkg/core/employment"
	"airiskmodel/pkg/core/exposure"
	"airiskmodel/pkg/core/growth"
	"airiskmodel/pkg/core/industry"
	"airiskmodel/pkg/core/mapper"
	"airiskmodel/pkg/core/pipeline"
	"airiskmodel/pkg/core/risk"
	"airiskmodel/pkg/core/store"
	"airiskmodel/pkg/core/taxonomy"
	"airiskmodel/pkg/core/transfer"
	"airiskmodel/pkg/models"
)

// RawInputs bundles every already-tabular external input the orchestrator
// needs. Reading these files from disk/HTTP is glue owned by cmd/pipeline's
// main, per §1's Non-goals ("fetching/caching of raw source files ... CSV
// I/O details"); this package only consumes the parsed rows.
type RawInputs struct {
	TaskStatementRows []map[string]string
	TaskRatingRows    []map[string]string
	OccupationRows    []map[string]string

	IndustryEmploymentByYear map[int][]map[string]string
	NationalEmploymentByYear map[int][]map[string]string

	BenchmarkAsset []byte
	GoldPrompts    []models.GoldPrompt

	Tools []models.Tool
}

// Result is everything the orchestrator produces, the union of §6's listed
// output tables plus the JSON method summaries.
type Result struct {
	RunID string

	TaskScoresLenient []models.TaskScore
	TaskScoresStrict  []models.TaskScore

	OccupationExposure []models.OccupationExposure

	IndustryYears []models.IndustryYear
	SectorYears   []models.IndustryYear
	GrowthTables  []models.GrowthStats

	BenchmarkTotals       []models.ModelBenchmark
	BenchmarkBySector     []models.SectorWinRate
	BenchmarkByOccupation []models.OccupationWinRate

	NameMappings     []models.NameMapping
	WinProbabilities []models.OccupationWinProbability
	OccAlignments    []alignment.OccupationAlignment
	AdjustedExposure []models.AlignedExposure

	RigorousRisk      []models.RiskRow
	RigorousSector    []models.SectorRisk
	RigorousNational  []models.NationalRisk

	TaskAlignedRisk     []models.RiskRow
	TaskAlignedSector   []models.SectorRisk
	TaskAlignedNational []models.NationalRisk

	GrowthOutput growth.Output

	BestModel models.NationalRisk
}

// Orchestrator runs the full pipeline against a fixed set of RawInputs and
// config.Options, optionally persisting a copy of the derived artifacts to
// Postgres through an additive store.Sink.
type Orchestrator struct {
	Opts config.Options
	Sink *store.Sink
}

// New builds an Orchestrator with a fresh run ID via uuid.New(), the same
// way this codebase stamps other long-lived session identifiers.
func New(opts config.Options) *Orchestrator {
	return &Orchestrator{Opts: opts, Sink: store.NewSink(uuid.New().String())}
}

// Run executes the ten components after the Tool Corpus Builder in the
// data-flow order named in §2, consuming the prebuilt in.Tools, and
// returns the full Result. Fatal input problems surface as the §7 error
// kinds instead of being swallowed.
func (o *Orchestrator) Run(ctx context.Context, in RawInputs) (Result, error) {
	result := Result{RunID: o.Sink.RunID()}
	start := time.Now()

	fmt.Println("================================================================================")
	fmt.Println("                      AI OCCUPATIONAL RISK PIPELINE")
	fmt.Printf("                      run %s\n", result.RunID)
	fmt.Println("================================================================================")

	// §4.2 Task Ratings Loader
	occupations := taxonomy.LoadOccupations(in.OccupationRows)
	tasks := taxonomy.LoadTasks(in.TaskStatementRows, in.TaskRatingRows)
	fmt.Printf("[1] taxonomy: %d occupations, %d tasks\n", len(occupations), len(tasks))

	// §4.3 Task-to-Tool Mapper
	result.TaskScoresLenient = mapper.LenientScore(tasks, in.Tools)
	result.TaskScoresStrict = mapper.StrictScore(tasks, in.Tools)
	fmt.Printf("[2] mapper: %d tools, %d lenient scores, %d strict scores\n", len(in.Tools), len(result.TaskScoresLenient), len(result.TaskScoresStrict))

	// §4.4 Occupation Exposure Aggregator
	result.OccupationExposure = exposure.Aggregate(tasks, result.TaskScoresLenient, occupations)
	fmt.Printf("[3] exposure: %d occupation baselines\n", len(result.OccupationExposure))

	// §4.5 Employment Loader
	var employmentRows []models.EmploymentRow
	for year := o.Opts.YearStart; year <= o.Opts.YearEnd; year++ {
		employmentRows = append(employmentRows, employment.LoadIndustryOccupation(year, in.IndustryEmploymentByYear[year])...)
		employmentRows = append(employmentRows, employment.LoadNationalOccupation(year, in.NationalEmploymentByYear[year])...)
	}
	fmt.Printf("[4] employment: %d rows across %d-%d\n", len(employmentRows), o.Opts.YearStart, o.Opts.YearEnd)

	// §4.6 Industry/Sector Aggregator
	result.IndustryYears = industry.AggregateIndustry(employmentRows, result.OccupationExposure)
	result.SectorYears = industry.AggregateSector(result.IndustryYears)
	pivoted := industry.PivotByCode(append(append([]models.IndustryYear{}, result.IndustryYears...), result.SectorYears...))
	result.GrowthTables = industry.ComputeGrowthAll(pivoted)
	fmt.Printf("[5] industry/sector: %d industry-year rows, %d sector-year rows, %d growth rows\n", len(result.IndustryYears), len(result.SectorYears), len(result.GrowthTables))

	// §4.7 Benchmark Parser
	parsed, err := benchmark.Parse(in.BenchmarkAsset)
	if err != nil {
		return result, fmt.Errorf("benchmark parser: %w", err)
	}
	parsed = benchmark.FilterHuman(parsed)
	result.BenchmarkTotals, result.BenchmarkBySector, result.BenchmarkByOccupation = parsed.Totals, parsed.BySector, parsed.ByOccupation
	fmt.Printf("[6] benchmark: %d models, %d by-sector rows, %d by-occupation rows\n", len(result.BenchmarkTotals), len(result.BenchmarkBySector), len(result.BenchmarkByOccupation))

	// §4.8 Capability Transfer Engine
	var benchmarkTitles []string
	seenTitle := make(map[string]bool)
	for _, r := range result.BenchmarkByOccupation {
		if !seenTitle[r.Occupation] {
			seenTitle[r.Occupation] = true
			benchmarkTitles = append(benchmarkTitles, r.Occupation)
		}
	}
	sort.Strings(benchmarkTitles)
	manualOverride := config.MergeOverrides(config.ManualOccSplit, o.Opts.Overrides)
	result.NameMappings = transfer.MapNames(benchmarkTitles, occupations, manualOverride, o.Opts.NameMatchCutoff)

	var anchorSOCs []string
	for _, m := range result.NameMappings {
		if m.Method != models.MatchUnmatched {
			anchorSOCs = append(anchorSOCs, m.SOCCodes...)
		}
	}
	corpus := transfer.BuildOccupationCorpus(occupations, tasks)
	transferRows := transfer.FitTransfer(corpus, anchorSOCs, o.Opts.KNeighbors)
	alphas := transfer.ShrinkageAlpha(transferRows)

	allSOCs := make([]string, 0, len(occupations))
	for _, occ := range occupations {
		allSOCs = append(allSOCs, occ.SOCCode)
	}
	result.WinProbabilities = transfer.ComputeWinProbabilities(result.BenchmarkTotals, result.BenchmarkByOccupation, result.NameMappings, transferRows, alphas, allSOCs)
	fmt.Printf("[7] transfer: %d name mappings, %d transfer rows, %d win probabilities\n", len(result.NameMappings), len(transferRows), len(result.WinProbabilities))

	// §4.9 Task Alignment Engine
	var notes []pipeline.EmptyPartitionNote
	result.OccAlignments, notes = alignment.AlignByOccupation(in.GoldPrompts, tasks, result.TaskScoresLenient, result.NameMappings, o.Opts.AlignTopK)
	for _, n := range notes {
		fmt.Printf("    ⚠️  %s\n", n.String())
	}
	result.AdjustedExposure = alignment.AdjustedExposure(result.OccupationExposure, result.OccAlignments)
	fmt.Printf("[8] alignment: %d occupation alignments (%d empty partitions), %d adjusted exposures\n", len(result.OccAlignments), len(notes), len(result.AdjustedExposure))

	// §4.10 Risk Composer — both the rigorous and task-aligned paths.
	baselineExposure := risk.ExposureMap(result.OccupationExposure)
	adjustedExposure := risk.AdjustedExposureMap(result.AdjustedExposure)

	result.RigorousRisk = risk.ComposeOccupationRisk(baselineExposure, result.WinProbabilities)
	result.RigorousSector = risk.AttachContribution(risk.ComposeSectorRisk(result.RigorousRisk, employmentRows))
	result.RigorousNational = risk.ComposeNationalRisk(result.RigorousSector)

	result.TaskAlignedRisk = risk.ComposeOccupationRisk(adjustedExposure, result.WinProbabilities)
	result.TaskAlignedSector = risk.AttachContribution(risk.ComposeSectorRisk(result.TaskAlignedRisk, employmentRows))
	result.TaskAlignedNational = risk.ComposeNationalRisk(result.TaskAlignedSector)

	if best, ok := risk.BestModel(result.RigorousNational); ok {
		result.BestModel = best
	}
	fmt.Printf("[9] risk: %d rigorous rows, %d task-aligned rows, best model %s (risk_nat=%.4f)\n", len(result.RigorousRisk), len(result.TaskAlignedRisk), result.BestModel.ModelID, result.BestModel.RiskNat)

	// §4.11 Temporal Growth Engine
	releases := resolveReleaseDates(result.BenchmarkTotals)
	nationalSeries := industry.NationalExposureSeries(employmentRows, result.OccupationExposure)
	sectorSeries := make(map[string]map[int]float64)
	for sector, series := range pivoted {
		if _, ok := config.SectorTitle[sector]; ok {
			sectorSeries[sector] = series
		}
	}
	sectorCurrentRisk := make(map[string]float64)
	for _, sr := range result.RigorousSector {
		if sr.ModelID == result.BestModel.ModelID {
			sectorCurrentRisk[sr.Sector] = sr.RiskSector
		}
	}
	growthOut, err := growth.Compute(growth.Inputs{
		NationalExposureSeries: nationalSeries,
		ModelReleases:          releases,
		CurrentNationalRisk:    result.BestModel.RiskNat,
		SectorExposureSeries:   sectorSeries,
		SectorCurrentRisk:      sectorCurrentRisk,
	})
	if err != nil {
		var pe *pipeline.Error
		if errors.As(err, &pe) && pe.Kind == pipeline.KindModelReleaseMissing {
			return result, fmt.Errorf("temporal growth engine: %w", err)
		}
		fmt.Printf("    ⚠️  temporal growth engine skipped: %v\n", err)
	} else {
		result.GrowthOutput = growthOut
		fmt.Printf("[10] growth: %d monthly points, combined monthly growth %.4f\n", len(growthOut.MonthlySeries), growthOut.CombinedMonthlyGrowth)
	}

	if err := o.persist(ctx, result); err != nil {
		fmt.Printf("    ⚠️  persistence sink: %v\n", err)
	}

	fmt.Println("================================================================================")
	fmt.Printf("run %s complete in %s\n", result.RunID, time.Since(start).Round(time.Millisecond))
	return result, nil
}

func resolveReleaseDates(totals []models.ModelBenchmark) []models.ModelBenchmark {
	out := make([]models.ModelBenchmark, len(totals))
	for i, m := range totals {
		out[i] = m
		if d, ok := config.ReleaseDateFor(m.ModelID); ok {
			out[i].ReleaseDate = d
		}
	}
	return out
}

func (o *Orchestrator) persist(ctx context.Context, r Result) error {
	if err := o.Sink.SaveOccupationExposure(ctx, r.OccupationExposure); err != nil {
		return err
	}
	if err := o.Sink.SaveNationalRisk(ctx, r.RigorousNational); err != nil {
		return err
	}
	if err := o.Sink.SaveMonthlySeries(ctx, r.GrowthOutput.MonthlySeries); err != nil {
		return err
	}
	return nil
}
