// Command pipeline runs the full AI occupational-risk pipeline end to end:
// load the taxonomy, employment, tool-corpus, and benchmark inputs named in
// spec §6, run all eleven components in order, and write the reproducible
// CSV/JSON outputs.
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"airiskmodel/pkg/core/config"
	"airiskmodel/pkg/core/ingest"
	"airiskmodel/pkg/core/orchestrator"
	"airiskmodel/pkg/core/pipeline"
	"airiskmodel/pkg/core/store"
	"airiskmodel/pkg/core/taxonomy"
	"airiskmodel/pkg/core/toolcorpus"
	"airiskmodel/pkg/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	inputDir := envOr("PIPELINE_INPUT_DIR", "data")
	outputDir := envOr("PIPELINE_OUTPUT_DIR", "output")

	fmt.Println("🚀 AI Occupational Risk Pipeline Starting...")

	opts, err := config.LoadYAML(filepath.Join(inputDir, "pipeline.yaml"))
	if err != nil {
		log.Fatalf("Error: loading run options: %v", err)
	}
	if hjsonOpts, err := config.LoadHjson(filepath.Join(inputDir, "overrides.hjson")); err == nil {
		opts.Overrides = append(opts.Overrides, hjsonOpts.Overrides...)
	}

	ctx := context.Background()
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		if err := store.InitDB(ctx); err != nil {
			log.Printf("Warning: DATABASE_URL set but pool init failed, continuing without the optional sink: %v", err)
		} else {
			defer store.Close()
		}
	}

	fetcher := ingest.NewFetcher(opts.CacheDir, opts.ForceRefresh, 45*time.Second)

	fmt.Println("📂 Building tool corpus (sources A, B, C)...")
	tools, err := toolcorpus.Build(ctx, fetcher, toolcorpus.BuilderConfig{
		DirectoryBaseURL: envOr("TOOL_DIRECTORY_URL", ""),
		APIBaseURL:       envOr("TOOL_API_URL", ""),
		ReadmeURL:        envOr("TOOL_README_URL", ""),
		DetailWorkers:    20,
		DetailLimit:      opts.DetailLimit,
		RetryAttempts:    3,
		RetryBackoff:     2 * time.Second,
		PageLimit:        100,
	})
	if err != nil {
		log.Fatalf("Critical: tool corpus build failed: %v", err)
	}
	fmt.Printf("📂 Tool corpus: %d tools\n", len(tools))

	in := orchestrator.RawInputs{
		Tools:                    tools,
		IndustryEmploymentByYear: map[int][]map[string]string{},
		NationalEmploymentByYear: map[int][]map[string]string{},
	}

	in.TaskStatementRows = mustReadTSV(inputDir, "task_statements.txt", taxonomy.TaskStatementColumns, "task_statements")
	in.TaskRatingRows = mustReadTSV(inputDir, "task_ratings.txt", taxonomy.TaskRatingColumns, "task_ratings")
	in.OccupationRows = mustReadTSV(inputDir, "occupation_data.txt", taxonomy.OccupationColumns, "occupation_data")

	industryCols := []string{"naics", "naics_title", "occ_code", "occ_title", "o_group", "tot_emp", "area"}
	nationalCols := []string{"occ_code", "occ_title", "o_group", "tot_emp"}
	for year := opts.YearStart; year <= opts.YearEnd; year++ {
		in.IndustryEmploymentByYear[year] = readTSVIfPresent(inputDir, fmt.Sprintf("industry_occupation_%d.txt", year), industryCols, "industry_employment")
		in.NationalEmploymentByYear[year] = readTSVIfPresent(inputDir, fmt.Sprintf("national_occupation_%d.txt", year), nationalCols, "national_employment")
	}

	benchmarkPath := filepath.Join(inputDir, "benchmark_asset.js")
	in.BenchmarkAsset, err = os.ReadFile(benchmarkPath)
	if err != nil {
		log.Fatalf("Critical: benchmark asset %s not found: %v", benchmarkPath, err)
	}

	goldPromptRows := mustReadTSV(inputDir, "gold_task_prompts.txt", []string{"task_id", "sector", "occupation", "prompt"}, "gold_task_prompts")
	in.GoldPrompts = make([]models.GoldPrompt, 0, len(goldPromptRows))
	for _, row := range goldPromptRows {
		in.GoldPrompts = append(in.GoldPrompts, models.GoldPrompt{
			TaskID:     row["task_id"],
			Sector:     row["sector"],
			Occupation: row["occupation"],
			Prompt:     row["prompt"],
		})
	}

	orch := orchestrator.New(opts)
	result, err := orch.Run(ctx, in)
	if err != nil {
		log.Fatalf("Error: pipeline run failed: %v", err)
	}

	if err := writeOutputs(outputDir, result); err != nil {
		log.Fatalf("Error: writing outputs: %v", err)
	}

	fmt.Printf("✅ Report written to %s\n", outputDir)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustReadTSV(dir, name string, required []string, subject string) []map[string]string {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Critical: required input file not found: %s (%v)", path, err)
	}
	rows, err := taxonomy.ReadTSV(data, required, subject)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	return rows
}

func readTSVIfPresent(dir, name string, required []string, subject string) []map[string]string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil
	}
	rows, err := taxonomy.ReadTSV(data, required, subject)
	if err != nil {
		fmt.Printf("    ⚠️  %v\n", err)
		return nil
	}
	return rows
}

// writeOutputs renders every table named in spec §6 to its own CSV, plus the
// method-summary and monthly-growth-summary JSON reports.
func writeOutputs(dir string, r orchestrator.Result) error {
	writers := []func() error{
		func() error {
			rows := make([][]string, 0, len(r.OccupationExposure))
			for _, o := range r.OccupationExposure {
				rows = append(rows, []string{o.SOCCode, o.Title, f(o.Value)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "occupation_exposure.csv"), []string{"soc_code", "title", "exposure"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.TaskScoresLenient))
			for _, s := range r.TaskScoresLenient {
				rows = append(rows, []string{s.SOCCode, s.TaskID, f(s.Score), s.TopToolName})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "task_tool_mapping_lenient.csv"), []string{"soc_code", "task_id", "score", "top_tool"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.TaskScoresStrict))
			for _, s := range r.TaskScoresStrict {
				rows = append(rows, []string{s.SOCCode, s.TaskID, f(s.Score), s.TopToolName})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "task_tool_mapping_strict.csv"), []string{"soc_code", "task_id", "score", "top_tool"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.IndustryYears))
			for _, y := range r.IndustryYears {
				rows = append(rows, []string{strconv.Itoa(y.Year), y.Code, y.Title, f(y.TotalEmp), f(y.IndustryExposure), f(y.MatchRate)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "industry_series.csv"), []string{"year", "code", "title", "total_emp", "exposure", "match_rate"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.SectorYears))
			for _, y := range r.SectorYears {
				rows = append(rows, []string{strconv.Itoa(y.Year), y.Code, y.Title, f(y.TotalEmp), f(y.IndustryExposure), f(y.MatchRate)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "sector_series.csv"), []string{"year", "code", "title", "total_emp", "exposure", "match_rate"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.GrowthTables))
			for _, g := range r.GrowthTables {
				rows = append(rows, []string{g.Code, strconv.Itoa(g.StartYear), strconv.Itoa(g.EndYear), f(g.StartValue), f(g.EndValue), f(g.AbsChange), f(g.PctChange), f(g.CAGR), f(g.YoY)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "growth.csv"), []string{"code", "start_year", "end_year", "start_value", "end_value", "abs_change", "pct_change", "cagr", "yoy"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.BenchmarkTotals))
			for _, m := range r.BenchmarkTotals {
				rows = append(rows, []string{m.ModelID, f(m.GlobalWinRate), f(m.GlobalWinOrTie)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "benchmark_totals.csv"), []string{"model_id", "win_rate", "win_or_tie_rate"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.BenchmarkBySector))
			for _, m := range r.BenchmarkBySector {
				rows = append(rows, []string{m.ModelID, m.Sector, f(m.WinRate), f(m.WinOrTie)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "benchmark_by_sector.csv"), []string{"model_id", "sector", "win_rate", "win_or_tie_rate"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.BenchmarkByOccupation))
			for _, m := range r.BenchmarkByOccupation {
				rows = append(rows, []string{m.ModelID, m.Sector, m.Occupation, f(m.WinRate), f(m.WinOrTie)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "benchmark_by_occupation.csv"), []string{"model_id", "sector", "occupation", "win_rate", "win_or_tie_rate"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.NameMappings))
			for _, m := range r.NameMappings {
				rows = append(rows, []string{m.BenchmarkOccupation, strings.Join(m.SOCCodes, ";"), string(m.Method), f(m.Similarity)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "name_mapping.csv"), []string{"benchmark_occupation", "soc_codes", "method", "similarity"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.WinProbabilities))
			for _, w := range r.WinProbabilities {
				rows = append(rows, []string{w.ModelID, w.SOCCode, f(w.POcc), strconv.FormatBool(w.Anchored), f(w.Alpha)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "occupation_win_probability.csv"), []string{"model_id", "soc_code", "p_occ", "anchored", "alpha"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.OccAlignments))
			for _, a := range r.OccAlignments {
				rows = append(rows, []string{a.Occupation, strings.Join(a.SOCCodes, ";"), f(a.Value), strconv.Itoa(a.TopK)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "task_alignment.csv"), []string{"occupation", "soc_codes", "value", "topk"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.AdjustedExposure))
			for _, a := range r.AdjustedExposure {
				rows = append(rows, []string{a.SOCCode, f(a.Value), strconv.Itoa(a.AlignmentTopK)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "adjusted_exposure.csv"), []string{"soc_code", "value", "alignment_topk"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.RigorousRisk))
			for _, row := range r.RigorousRisk {
				rows = append(rows, []string{row.ModelID, row.SOCCode, f(row.Exposure), f(row.POcc), f(row.Risk)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "risk_rigorous.csv"), []string{"model_id", "soc_code", "exposure", "p_occ", "risk"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.TaskAlignedRisk))
			for _, row := range r.TaskAlignedRisk {
				rows = append(rows, []string{row.ModelID, row.SOCCode, f(row.Exposure), f(row.POcc), f(row.Risk)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "risk_task_aligned.csv"), []string{"model_id", "soc_code", "exposure", "p_occ", "risk"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.RigorousSector))
			for _, s := range r.RigorousSector {
				rows = append(rows, []string{s.ModelID, s.Sector, f(s.ExposureEmp), f(s.AffectedEmp), f(s.TotalEmp), f(s.RiskSector), f(s.EffectiveWin), f(s.WeightedContribution)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "sector_risk.csv"), []string{"model_id", "sector", "exposure_emp", "affected_emp", "total_emp", "risk_sector", "effective_win", "weighted_contribution"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.RigorousNational))
			for _, n := range r.RigorousNational {
				rows = append(rows, []string{n.ModelID, f(n.RiskNat), f(n.ExposureNat)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "national_risk.csv"), []string{"model_id", "risk_nat", "exposure_nat"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.GrowthOutput.MonthlySeries))
			for _, p := range r.GrowthOutput.MonthlySeries {
				rows = append(rows, []string{p.Month.Format("2006-01"), f(p.Frontier), f(p.ExposureHat), f(p.RiskRaw), f(p.Risk), f(p.DeltaPP)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "monthly_risk_series.csv"), []string{"month", "frontier", "exposure_hat", "risk_raw", "risk", "delta_pp"}, rows)
		},
		func() error {
			rows := make([][]string, 0, len(r.GrowthOutput.IndustryProjections))
			for _, p := range r.GrowthOutput.IndustryProjections {
				rows = append(rows, []string{p.Sector, f(p.CurrentRisk), f(p.ExposureGrowth), f(p.CombinedGrowth), f(p.CurrentDeltaPP), f(p.HistoricalAvgPP)})
			}
			return pipeline.WriteCSV(filepath.Join(dir, "industry_projection.csv"), []string{"sector", "current_risk", "exposure_growth", "combined_growth", "current_delta_pp", "historical_avg_pp"}, rows)
		},
	}
	for _, w := range writers {
		if err := w(); err != nil {
			return err
		}
	}

	summary := map[string]interface{}{
		"run_id":             r.RunID,
		"best_model":         r.BestModel.ModelID,
		"best_model_risk_nat": r.BestModel.RiskNat,
		"exposure_cagr":      r.GrowthOutput.ExposureCAGR,
		"frontier_cagr":      r.GrowthOutput.FrontierCAGR,
		"combined_monthly_g": r.GrowthOutput.CombinedMonthlyGrowth,
		"risk_series_cagr":   r.GrowthOutput.RiskSeriesCAGR,
		"mean_delta_pp":      r.GrowthOutput.MeanDeltaPP,
		"median_delta_pp":    r.GrowthOutput.MedianDeltaPP,
		"ols_slope_pp":       r.GrowthOutput.OLSSlopePP,
		"theil_sen_slope_pp": r.GrowthOutput.TheilSenSlopePP,
	}
	if err := pipeline.WriteJSON(filepath.Join(dir, "method_summary.json"), summary); err != nil {
		return err
	}
	return pipeline.WriteJSON(filepath.Join(dir, "monthly_growth_summary.json"), r.GrowthOutput)
}

func f(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
