package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/utils/allocation"
	"github.com/shopspring/decimal"
)

// spreadService implements the disaggregation engine. One Spread call
// pushes an edited value down to every leaf-reachable descendant: each
// internal node's value is apportioned across its direct children, then
// each child's computed share becomes the value to apportion one level
// deeper. All writes of one call commit as a single transaction.
type spreadService struct {
	BaseService
	cellRepo portsrepo.CellRepositoryFacade
}

// NewSpreadService creates a new disaggregation engine.
func NewSpreadService(cellRepo portsrepo.CellRepositoryFacade) portssvc.SpreadSvcFacade {
	return &spreadService{cellRepo: cellRepo}
}

var _ portssvc.SpreadSvcFacade = (*spreadService)(nil)

// allocation of one value onto one node, pending deeper apportionment.
type pendingAlloc struct {
	nodeID string
	value  decimal.Decimal
}

// Spread implements portssvc.SpreadSvcFacade.
//
// Child shares are rounded to 2 decimals before being stored and before
// entering the running total; the last child by sort order receives the
// exact remainder so the children always sum to the parent value exactly.
// This concentrates rounding error in the last-sorted child, a documented
// and reproducible tie-break.
func (s *spreadService) Spread(ctx context.Context, tree *domain.HierarchyTree, mode domain.SpreadMode, nodeID, measureID, periodID, versionID string, newValue decimal.Decimal, weightMeasureID *string, editorID string) ([]string, error) {
	if mode == "" {
		mode = domain.SpreadProportional
	}
	if mode == domain.SpreadWeighted && weightMeasureID == nil {
		return nil, fmt.Errorf("%w: weighted spread requires a weight measure", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	var touched []string
	var writes []domain.Cell

	queue := []pendingAlloc{{nodeID: nodeID, value: newValue}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		children := tree.ChildrenOf(cur.nodeID)
		if len(children) == 0 {
			// Leaf: the value already landed here via the parent's write
			// (or the orchestrator's direct save at the top node).
			continue
		}

		ratios, err := s.childRatios(ctx, mode, children, measureID, periodID, versionID, weightMeasureID)
		if err != nil {
			return nil, err
		}

		running := decimal.Zero
		for i, child := range children {
			var share decimal.Decimal
			if i == len(children)-1 {
				share = cur.value.Sub(running)
			} else {
				share = allocation.Round2(cur.value.Mul(ratios[i]))
				running = running.Add(share)
			}
			v := share
			writes = append(writes, domain.Cell{
				NodeID:    child.NodeID,
				MeasureID: measureID,
				PeriodID:  periodID,
				VersionID: versionID,
				Value:     &v,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     editorID,
					LastUpdatedAt: now,
					LastUpdatedBy: editorID,
				},
			})
			touched = append(touched, child.NodeID)
			queue = append(queue, pendingAlloc{nodeID: child.NodeID, value: share})
		}
	}

	if len(writes) == 0 {
		return nil, nil
	}
	if err := s.cellRepo.SaveCells(ctx, writes); err != nil {
		return nil, fmt.Errorf("failed to persist spread cells: %w", err)
	}

	s.LogDebug(ctx, "Spread completed",
		slog.String("node_id", nodeID),
		slog.String("measure_id", measureID),
		slog.String("mode", string(mode)),
		slog.Int("cells_written", len(writes)))
	return touched, nil
}

// childRatios returns one apportionment ratio per child, in sibling order.
// The ratios need not sum exactly to one; the remainder rule absorbs the
// difference at the last child.
func (s *spreadService) childRatios(ctx context.Context, mode domain.SpreadMode, children []domain.HierarchyNode, measureID, periodID, versionID string, weightMeasureID *string) ([]decimal.Decimal, error) {
	childIDs := make([]string, len(children))
	for i, c := range children {
		childIDs[i] = c.NodeID
	}

	switch mode {
	case domain.SpreadEven:
		return allocation.EvenRatios(len(children)), nil

	case domain.SpreadWeighted:
		weights, err := s.cellRepo.GetValues(ctx, childIDs, []string{*weightMeasureID}, []string{periodID}, versionID)
		if err != nil {
			return nil, fmt.Errorf("failed to read weight values: %w", err)
		}
		return ratiosFrom(children, *weightMeasureID, periodID, weights), nil

	default: // proportional to the children's current values
		current, err := s.cellRepo.GetValues(ctx, childIDs, []string{measureID}, []string{periodID}, versionID)
		if err != nil {
			return nil, fmt.Errorf("failed to read current child values: %w", err)
		}
		return ratiosFrom(children, measureID, periodID, current), nil
	}
}

// ratiosFrom builds per-child ratios from stored basis values. Children
// with no stored value (or a stored null) contribute zero. A zero basis
// total falls back to an even split.
func ratiosFrom(children []domain.HierarchyNode, measureID, periodID string, basis map[string]*decimal.Decimal) []decimal.Decimal {
	values := make([]decimal.Decimal, len(children))
	for i, c := range children {
		if v := basis[domain.CellKey(c.NodeID, measureID, periodID)]; v != nil {
			values[i] = *v
		}
	}
	if ratios := allocation.Ratios(values); ratios != nil {
		return ratios
	}
	return allocation.EvenRatios(len(children))
}
