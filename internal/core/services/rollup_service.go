package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rollupService implements the aggregation engine: strict upward sweeps
// that recompute each ancestor from its children, never touching siblings
// or descendants. The node axis and the time axis are separate sweeps with
// separate semantics (WEIGHTED_AVG only applies on the node axis).
type rollupService struct {
	BaseService
	cellRepo portsrepo.CellRepositoryFacade
}

// NewRollupService creates a new aggregation engine.
func NewRollupService(cellRepo portsrepo.CellRepositoryFacade) portssvc.RollupSvcFacade {
	return &rollupService{cellRepo: cellRepo}
}

var _ portssvc.RollupSvcFacade = (*rollupService)(nil)

// AggregateUp implements portssvc.RollupSvcFacade.
func (s *rollupService) AggregateUp(ctx context.Context, tree *domain.HierarchyTree, nodeID string, measure domain.Measure, periodID, versionID, editorID string) error {
	if measure.AggregationType == domain.AggNone {
		return nil
	}

	now := time.Now().UTC()
	// Values computed earlier in this sweep, keyed by cell key. The parent
	// written at one level is a sibling input at the next level up, so reads
	// must see the pending writes before they commit.
	overlay := make(map[string]*decimal.Decimal)
	var writes []domain.Cell

	measureIDs := []string{measure.MeasureID}
	weighted := measure.AggregationType == domain.AggWeightedAvg && measure.WeightMeasureID != nil
	if weighted {
		measureIDs = append(measureIDs, *measure.WeightMeasureID)
	}

	cur := nodeID
	for {
		parent, ok := tree.ParentOf(cur)
		if !ok {
			break // root reached
		}

		siblings := tree.ChildrenOf(parent.NodeID)
		siblingIDs := make([]string, len(siblings))
		for i, sib := range siblings {
			siblingIDs[i] = sib.NodeID
		}

		stored, err := s.cellRepo.GetValues(ctx, siblingIDs, measureIDs, []string{periodID}, versionID)
		if err != nil {
			return fmt.Errorf("failed to read sibling values for node %s: %w", parent.NodeID, err)
		}
		read := func(nID, mID string) *decimal.Decimal {
			key := domain.CellKey(nID, mID, periodID)
			if v, ok := overlay[key]; ok {
				return v
			}
			return stored[key]
		}

		var agg *decimal.Decimal
		if weighted {
			agg = weightedAverage(siblingIDs, measure.MeasureID, *measure.WeightMeasureID, read)
		} else {
			values := make([]*decimal.Decimal, len(siblingIDs))
			for i, id := range siblingIDs {
				values[i] = read(id, measure.MeasureID)
			}
			agg = aggregate(measure.AggregationType, values)
		}

		key := domain.CellKey(parent.NodeID, measure.MeasureID, periodID)
		overlay[key] = agg
		writes = append(writes, domain.Cell{
			NodeID:    parent.NodeID,
			MeasureID: measure.MeasureID,
			PeriodID:  periodID,
			VersionID: versionID,
			Value:     agg,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     editorID,
				LastUpdatedAt: now,
				LastUpdatedBy: editorID,
			},
		})
		cur = parent.NodeID
	}

	if len(writes) == 0 {
		return nil
	}
	if err := s.cellRepo.SaveCells(ctx, writes); err != nil {
		return fmt.Errorf("failed to persist node rollup: %w", err)
	}
	s.LogDebug(ctx, "Node rollup completed",
		slog.String("node_id", nodeID),
		slog.String("measure_id", measure.MeasureID),
		slog.Int("ancestors_written", len(writes)))
	return nil
}

// AggregateTimeUp implements portssvc.RollupSvcFacade. WEIGHTED_AVG is
// treated as AVG here: no weight measure is consulted across time cohorts.
func (s *rollupService) AggregateTimeUp(ctx context.Context, periods *domain.PeriodTree, nodeID string, measure domain.Measure, periodID, versionID, editorID string) error {
	if measure.AggregationType == domain.AggNone {
		return nil
	}

	policy := measure.AggregationType
	if policy == domain.AggWeightedAvg {
		policy = domain.AggAvg
	}

	now := time.Now().UTC()
	overlay := make(map[string]*decimal.Decimal)
	var writes []domain.Cell

	cur := periodID
	for {
		parent, ok := periods.ParentOf(cur)
		if !ok {
			break // top of the calendar
		}

		siblings := periods.ChildrenOf(parent.PeriodID)
		siblingIDs := make([]string, len(siblings))
		for i, sib := range siblings {
			siblingIDs[i] = sib.PeriodID
		}

		stored, err := s.cellRepo.GetValues(ctx, []string{nodeID}, []string{measure.MeasureID}, siblingIDs, versionID)
		if err != nil {
			return fmt.Errorf("failed to read sibling period values for %s: %w", parent.PeriodID, err)
		}

		values := make([]*decimal.Decimal, len(siblingIDs))
		for i, pID := range siblingIDs {
			key := domain.CellKey(nodeID, measure.MeasureID, pID)
			if v, ok := overlay[key]; ok {
				values[i] = v
			} else {
				values[i] = stored[key]
			}
		}
		agg := aggregate(policy, values)

		key := domain.CellKey(nodeID, measure.MeasureID, parent.PeriodID)
		overlay[key] = agg
		writes = append(writes, domain.Cell{
			NodeID:    nodeID,
			MeasureID: measure.MeasureID,
			PeriodID:  parent.PeriodID,
			VersionID: versionID,
			Value:     agg,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     editorID,
				LastUpdatedAt: now,
				LastUpdatedBy: editorID,
			},
		})
		cur = parent.PeriodID
	}

	if len(writes) == 0 {
		return nil
	}
	if err := s.cellRepo.SaveCells(ctx, writes); err != nil {
		return fmt.Errorf("failed to persist time rollup: %w", err)
	}
	s.LogDebug(ctx, "Time rollup completed",
		slog.String("node_id", nodeID),
		slog.String("measure_id", measure.MeasureID),
		slog.Int("periods_written", len(writes)))
	return nil
}

// aggregate combines sibling values per the given policy. Null and absent
// inputs are skipped; when nothing remains the result is null, never zero.
// WEIGHTED_AVG callers resolve weights before reaching here.
func aggregate(policy domain.AggregationType, values []*decimal.Decimal) *decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		sum = sum.Add(*v)
		count++
	}
	if count == 0 {
		return nil
	}
	switch policy {
	case domain.AggAvg, domain.AggWeightedAvg:
		avg := sum.Div(decimal.NewFromInt(int64(count)))
		return &avg
	default: // SUM
		return &sum
	}
}

// weightedAverage computes sum(value*weight)/sum(weight) over the siblings
// that carry a value. Null weights contribute weight 0; a zero weight total
// yields null.
func weightedAverage(siblingIDs []string, measureID, weightMeasureID string, read func(nodeID, measureID string) *decimal.Decimal) *decimal.Decimal {
	numerator := decimal.Zero
	weightSum := decimal.Zero
	for _, id := range siblingIDs {
		v := read(id, measureID)
		if v == nil {
			continue
		}
		w := decimal.Zero
		if wv := read(id, weightMeasureID); wv != nil {
			w = *wv
		}
		numerator = numerator.Add(v.Mul(w))
		weightSum = weightSum.Add(w)
	}
	if weightSum.IsZero() {
		return nil
	}
	result := numerator.Div(weightSum)
	return &result
}
