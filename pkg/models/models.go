// Package models holds the row-level entity types shared across the risk
// pipeline's stages. Nothing here performs computation; these are the
// vocabulary types that flow between toolcorpus, taxonomy, mapper, exposure,
// employment, industry, benchmark, transfer, alignment, risk and growth.
package models

import "time"

// ToolSource identifies which of the three catalog sources a Tool came from.
type ToolSource string

const (
	SourceDirectory ToolSource = "A"
	SourceAPI       ToolSource = "B"
	SourceReadme    ToolSource = "C"
)

// Tool is a single AI-accessible tool/integration entry, normalized across
// all three catalog sources.
type Tool struct {
	Source      ToolSource
	ToolID      string
	Name        string
	Headline    string
	Description string
	Tags        []string
	URL         string
	Text        string // clean(name + ". " + headline + ". " + description + ". " + tags)
}

// Occupation is a single O*NET-style occupation.
type Occupation struct {
	SOCCode     string
	Title       string
	BaseVariant bool // true when the raw onet_soc_code ends in ".00"
}

// TaskType distinguishes Core tasks (the ones used for the strict mapper and
// for occupation-corpus construction) from Supplemental ones.
type TaskType string

const (
	TaskCore         TaskType = "Core"
	TaskSupplemental TaskType = "Supplemental"
)

// Task is a single occupation/task taxonomy row with its derived weight.
type Task struct {
	SOCCode string
	TaskID  string
	Text    string
	Type    TaskType

	ImportanceNorm float64 // (mean IM - 1)/4, clipped [0,1]
	Prevalence     float64 // 0.5*rt_norm + 0.5*ft_norm with fallback cascade
	Weight         float64 // max(ImportanceNorm*Prevalence, 0.01)
}

// TaskScore is the per-task automatability output of the Task-to-Tool Mapper.
type TaskScore struct {
	SOCCode      string
	TaskID       string
	Score        float64 // in [0,1]; lenient floored at 0.02, strict unfloored
	TopToolIndex int
	TopToolName  string
	TopSource    ToolSource
}

// OccupationExposure is the weighted-mean automatability of one occupation.
type OccupationExposure struct {
	SOCCode string
	Title   string
	Value   float64 // E_occ, in [0,1]
}

// EmploymentRow is one (year, naics6, soc) employment observation.
type EmploymentRow struct {
	Year       int
	NAICS6     string
	SectorCode string
	SOCCode    string
	OccTitle   string
	TotalEmp   float64
	IsNational bool // true for national-occupation rows (no industry breakout)
}

// IndustryYear is one (year, naics-or-sector) aggregate row.
type IndustryYear struct {
	Year             int
	Code             string // naics6 or sector code
	Title            string
	TotalEmp         float64
	ExposedEmp       float64
	MatchedEmp       float64
	IndustryExposure float64
	MatchRate        float64
}

// GrowthStats holds the absolute/percent/CAGR/YoY figures for a single
// (entity, start-year, end-year) pair. NaN fields use math.NaN() per the
// boundary rules in the Industry/Sector Aggregator.
type GrowthStats struct {
	Code       string
	StartYear  int
	EndYear    int
	StartValue float64
	EndValue   float64
	AbsChange  float64
	PctChange  float64
	CAGR       float64
	YoY        float64
}

// ModelBenchmark is one AI model's leaderboard summary plus release metadata.
type ModelBenchmark struct {
	ModelID        string
	Family         string
	ReleaseDate    time.Time
	SourceURL      string
	Assumption     string
	GlobalWinRate  float64
	GlobalWinOrTie float64
}

// SectorWinRate is a (model, sector) win-rate row from the benchmark asset.
type SectorWinRate struct {
	ModelID    string
	Sector     string
	WinRate    float64
	WinOrTie   float64
}

// OccupationWinRate is a (model, sector, occupation) win-rate row from the
// benchmark asset.
type OccupationWinRate struct {
	ModelID    string
	Sector     string
	Occupation string
	WinRate    float64
	WinOrTie   float64
}

// NameMappingMethod records how a benchmark occupation title was resolved to
// taxonomy SOC codes.
type NameMappingMethod string

const (
	MatchExact        NameMappingMethod = "exact"
	MatchFuzzy        NameMappingMethod = "fuzzy"
	MatchManualSplit  NameMappingMethod = "manual_split"
	MatchUnmatched    NameMappingMethod = "unmatched"
)

// NameMapping is the result of matching one benchmark occupation title to
// zero or more taxonomy SOC codes.
type NameMapping struct {
	BenchmarkOccupation string
	SOCCodes            []string
	Method              NameMappingMethod
	Similarity          float64 // fuzzy ratio used, 0 for exact/manual/unmatched
}

// OccupationWinProbability is the final per-(model, soc) transferred win
// probability, after shrinkage or direct anchoring.
type OccupationWinProbability struct {
	ModelID  string
	SOCCode  string
	POcc     float64 // in [0,1]
	Anchored bool    // true for SOCs mapped from a benchmark title (direct rate, or the model's global rate when it has none)
	Alpha    float64 // shrinkage weight used, 0 when Anchored
}

// GoldPrompt is one gold-labeled benchmark task prompt, keyed to the
// benchmark occupation/sector it was sampled from (§6 gold task prompts).
type GoldPrompt struct {
	TaskID     string
	Sector     string
	Occupation string
	Prompt     string
}

// AlignedExposure is the per-SOC adjusted exposure produced by the Task
// Alignment Engine. Every baseline SOC gets a row; SOCs without an alignment
// keep their baseline E_occ as Value.
type AlignedExposure struct {
	SOCCode        string
	Value          float64 // never NaN: baseline E_occ when no alignment exists
	AlignmentTopK  int     // 0 on EmptyPartition
}

// RiskRow is one (model, soc) risk figure.
type RiskRow struct {
	ModelID string
	SOCCode string
	Exposure float64
	POcc     float64
	Risk     float64 // Exposure * POcc
}

// SectorRisk is one (model, sector) aggregate risk row.
type SectorRisk struct {
	ModelID            string
	Sector             string
	ExposureEmp        float64
	AffectedEmp        float64
	TotalEmp           float64
	RiskSector         float64
	EffectiveWin       float64
	WeightedContribution float64
}

// NationalRisk is one model's national roll-up.
type NationalRisk struct {
	ModelID     string
	RiskNat     float64
	ExposureNat float64
}

// MonthlyRiskPoint is one month of the anchored risk series.
type MonthlyRiskPoint struct {
	Month      time.Time
	Frontier   float64
	ExposureHat float64
	RiskRaw    float64
	Risk       float64
	DeltaPP    float64
}

// IndustryProjection is the per-sector temporal projection row from the
// Temporal Growth Engine (§4.11 step 6).
type IndustryProjection struct {
	Sector          string
	CurrentRisk     float64
	ExposureGrowth  float64 // gE_s
	CombinedGrowth  float64 // gR_s
	CurrentDeltaPP  float64 // R_s(now)*gR_s*100
	HistoricalAvgPP float64 // (R_s(now)-R_s(0))/T * 100
}
