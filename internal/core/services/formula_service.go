package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"
)

// formulaService implements the formula engine. Formulas are restricted
// arithmetic expressions over measure short names, compiled once per
// formula string and cached; evaluation happens against a per-call scope
// where every measure resolves to its current value or zero.
//
// Failures are silent-degrade by design: a malformed formula, an unknown
// identifier or a non-finite result stores null for that measure and never
// blocks the rest of the pipeline.
type formulaService struct {
	BaseService
	cellRepo portsrepo.CellRepositoryFacade

	mu       sync.RWMutex
	programs map[string]*vm.Program
}

// NewFormulaService creates a new formula engine.
func NewFormulaService(cellRepo portsrepo.CellRepositoryFacade) portssvc.FormulaSvcFacade {
	return &formulaService{
		cellRepo: cellRepo,
		programs: make(map[string]*vm.Program),
	}
}

var _ portssvc.FormulaSvcFacade = (*formulaService)(nil)

// Recalculate implements portssvc.FormulaSvcFacade.
func (s *formulaService) Recalculate(ctx context.Context, measures *domain.MeasureSet, nodeID, periodID, versionID, editorID string) error {
	derived := measures.FormulaMeasures()
	if len(derived) == 0 {
		return nil
	}

	all := measures.All()
	measureIDs := make([]string, len(all))
	for i, m := range all {
		measureIDs[i] = m.MeasureID
	}
	stored, err := s.cellRepo.GetValues(ctx, []string{nodeID}, measureIDs, []string{periodID}, versionID)
	if err != nil {
		return fmt.Errorf("failed to read formula scope for node %s: %w", nodeID, err)
	}

	// Absent cells and stored nulls both bind to zero so a formula can
	// evaluate before its upstream measures are populated.
	scope := make(map[string]interface{}, len(all))
	for _, m := range all {
		value := 0.0
		if v := stored[domain.CellKey(nodeID, m.MeasureID, periodID)]; v != nil {
			value = v.InexactFloat64()
		}
		scope[m.ShortName] = value
	}

	now := time.Now().UTC()
	writes := make([]domain.Cell, 0, len(derived))
	for _, m := range derived {
		result := s.evaluate(ctx, m, scope)
		writes = append(writes, domain.Cell{
			NodeID:    nodeID,
			MeasureID: m.MeasureID,
			PeriodID:  periodID,
			VersionID: versionID,
			Value:     result,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     editorID,
				LastUpdatedAt: now,
				LastUpdatedBy: editorID,
			},
		})
	}

	if err := s.cellRepo.SaveCells(ctx, writes); err != nil {
		return fmt.Errorf("failed to persist formula results: %w", err)
	}
	s.LogDebug(ctx, "Formulas recalculated",
		slog.String("node_id", nodeID),
		slog.String("period_id", periodID),
		slog.Int("measures", len(derived)))
	return nil
}

// evaluate runs one measure's formula against the scope, returning nil on
// any failure or non-finite result.
func (s *formulaService) evaluate(ctx context.Context, m domain.Measure, scope map[string]interface{}) *decimal.Decimal {
	program, err := s.program(*m.Formula)
	if err != nil {
		s.LogDebug(ctx, "Formula failed to compile",
			slog.String("measure_id", m.MeasureID),
			slog.String("error", err.Error()))
		return nil
	}

	out, err := expr.Run(program, scope)
	if err != nil {
		s.LogDebug(ctx, "Formula evaluation failed",
			slog.String("measure_id", m.MeasureID),
			slog.String("error", err.Error()))
		return nil
	}

	f, ok := toFloat(out)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	result := decimal.NewFromFloat(f)
	return &result
}

// program returns the cached compiled form of a formula, compiling on the
// first encounter.
func (s *formulaService) program(formula string) (*vm.Program, error) {
	s.mu.RLock()
	program, ok := s.programs[formula]
	s.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(formula)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.programs[formula] = program
	s.mu.Unlock()
	return program, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
