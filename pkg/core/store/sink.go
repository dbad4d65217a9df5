package store

import (
	"context"
	"fmt"

	"airiskmodel/pkg/models"
)

// Sink persists derived pipeline artifacts to Postgres as an additive
// side-channel; the CSV/JSON files written by pkg/core/pipeline remain the
// authoritative outputs per spec §6. A Sink over a nil pool is a no-op, so
// callers can construct one unconditionally and only pay the cost when
// DATABASE_URL is actually configured.
type Sink struct {
	runID string
}

// NewSink returns a Sink tagging every row it writes with runID.
func NewSink(runID string) *Sink {
	return &Sink{runID: runID}
}

func (s *Sink) ready() bool { return GetPool() != nil }

// RunID returns the run identifier this sink tags every persisted row with.
func (s *Sink) RunID() string { return s.runID }

// SaveOccupationExposure bulk-inserts (CopyFrom) the baseline occupation exposure table.
func (s *Sink) SaveOccupationExposure(ctx context.Context, rows []models.OccupationExposure) error {
	if !s.ready() {
		return nil
	}
	pool := GetPool()
	batch := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		batch = append(batch, []interface{}{s.runID, r.SOCCode, r.Title, r.Value})
	}
	_, err := pool.CopyFrom(
		ctx,
		[]string{"occupation_exposure"},
		[]string{"run_id", "soc_code", "title", "value"},
		copyRowSource(batch),
	)
	if err != nil {
		return fmt.Errorf("persisting occupation exposure: %w", err)
	}
	return nil
}

// SaveNationalRisk bulk-inserts (CopyFrom) the per-model national risk roll-up.
func (s *Sink) SaveNationalRisk(ctx context.Context, rows []models.NationalRisk) error {
	if !s.ready() {
		return nil
	}
	pool := GetPool()
	batch := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		batch = append(batch, []interface{}{s.runID, r.ModelID, r.RiskNat, r.ExposureNat})
	}
	_, err := pool.CopyFrom(
		ctx,
		[]string{"national_risk"},
		[]string{"run_id", "model_id", "risk_nat", "exposure_nat"},
		copyRowSource(batch),
	)
	if err != nil {
		return fmt.Errorf("persisting national risk: %w", err)
	}
	return nil
}

// SaveMonthlySeries bulk-inserts (CopyFrom) one model's anchored monthly risk series.
func (s *Sink) SaveMonthlySeries(ctx context.Context, points []models.MonthlyRiskPoint) error {
	if !s.ready() {
		return nil
	}
	pool := GetPool()
	batch := make([][]interface{}, 0, len(points))
	for _, p := range points {
		batch = append(batch, []interface{}{s.runID, p.Month, p.Frontier, p.ExposureHat, p.Risk, p.DeltaPP})
	}
	_, err := pool.CopyFrom(
		ctx,
		[]string{"monthly_risk_series"},
		[]string{"run_id", "month", "frontier", "exposure_hat", "risk", "delta_pp"},
		copyRowSource(batch),
	)
	if err != nil {
		return fmt.Errorf("persisting monthly risk series: %w", err)
	}
	return nil
}

type rowSource struct {
	rows [][]interface{}
	idx  int
}

func copyRowSource(rows [][]interface{}) *rowSource {
	return &rowSource{rows: rows, idx: -1}
}

func (s *rowSource) Next() bool {
	s.idx++
	return s.idx < len(s.rows)
}

func (s *rowSource) Values() ([]interface{}, error) {
	return s.rows[s.idx], nil
}

func (s *rowSource) Err() error { return nil }
