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
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/shopspring/decimal"
)

// planningService is the cell edit orchestrator. It sequences the engines
// for one user edit: Save, Classify, Disaggregate, Recalc, AggregateNode,
// AggregateTime, Reload. The stages commit independently, so a failure
// partway leaves a partially-propagated but individually-consistent state;
// retrying the whole edit is idempotent at the cell level.
type planningService struct {
	BaseService
	hierarchyRepo portsrepo.HierarchyRepositoryFacade
	periodRepo    portsrepo.PeriodRepositoryFacade
	measureRepo   portsrepo.MeasureRepositoryFacade
	versionRepo   portsrepo.VersionRepositoryFacade
	cellRepo      portsrepo.CellRepositoryFacade
	spreadSvc     portssvc.SpreadSvcFacade
	rollupSvc     portssvc.RollupSvcFacade
	formulaSvc    portssvc.FormulaSvcFacade
}

// NewPlanningService creates the cell edit orchestrator.
func NewPlanningService(
	repos portsrepo.RepositoryProvider,
	spreadSvc portssvc.SpreadSvcFacade,
	rollupSvc portssvc.RollupSvcFacade,
	formulaSvc portssvc.FormulaSvcFacade,
) portssvc.PlanningSvcFacade {
	return &planningService{
		hierarchyRepo: repos.HierarchyRepo,
		periodRepo:    repos.PeriodRepo,
		measureRepo:   repos.MeasureRepo,
		versionRepo:   repos.VersionRepo,
		cellRepo:      repos.CellRepo,
		spreadSvc:     spreadSvc,
		rollupSvc:     rollupSvc,
		formulaSvc:    formulaSvc,
	}
}

var _ portssvc.PlanningSvcFacade = (*planningService)(nil)

// catalogs bundles the immutable per-request snapshots every pipeline
// invocation starts from.
type catalogs struct {
	tree     *domain.HierarchyTree
	periods  *domain.PeriodTree
	measures *domain.MeasureSet
}

func (s *planningService) loadCatalogs(ctx context.Context) (*catalogs, error) {
	nodes, err := s.hierarchyRepo.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load hierarchy nodes: %w", err)
	}
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load time periods: %w", err)
	}
	measures, err := s.measureRepo.ListMeasures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load measure catalog: %w", err)
	}
	return &catalogs{
		tree:     domain.NewHierarchyTree(nodes),
		periods:  domain.NewPeriodTree(periods),
		measures: domain.NewMeasureSet(measures),
	}, nil
}

// EditCell implements portssvc.PlanningSvcFacade.
func (s *planningService) EditCell(ctx context.Context, req dto.EditCellRequest, editorID string) (*dto.GridResponse, error) {
	logger := s.GetLogger(ctx)

	cat, err := s.loadCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	// Referential checks happen before any write so a bad reference aborts
	// the whole pipeline cleanly.
	if _, err := s.versionRepo.FindVersionByID(ctx, req.VersionID); err != nil {
		return nil, fmt.Errorf("version %s: %w", req.VersionID, err)
	}
	if _, ok := cat.tree.Node(req.NodeID); !ok {
		return nil, fmt.Errorf("%w: node %s", apperrors.ErrNotFound, req.NodeID)
	}
	measure, ok := cat.measures.Measure(req.MeasureID)
	if !ok {
		return nil, fmt.Errorf("%w: measure %s", apperrors.ErrNotFound, req.MeasureID)
	}
	if _, ok := cat.periods.Period(req.PeriodID); !ok {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrNotFound, req.PeriodID)
	}

	// Step 1: Save the raw edited value.
	now := time.Now().UTC()
	value := req.Value
	if err := s.cellRepo.SaveCells(ctx, []domain.Cell{{
		NodeID:    req.NodeID,
		MeasureID: req.MeasureID,
		PeriodID:  req.PeriodID,
		VersionID: req.VersionID,
		Value:     &value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     editorID,
			LastUpdatedAt: now,
			LastUpdatedBy: editorID,
		},
	}}); err != nil {
		return nil, fmt.Errorf("failed to save edited cell: %w", err)
	}

	// Step 2: Classify. Disaggregation requires children and a directly
	// editable, non-derived measure. The engines themselves never check
	// editability; the guard lives here at the orchestration boundary.
	var touched []string
	if cat.tree.HasChildren(req.NodeID) && measure.IsEditable && !measure.HasFormula() {
		mode := req.SpreadMode
		if mode == "" {
			mode = domain.SpreadProportional
		}
		weightID := req.WeightMeasureID
		if mode == domain.SpreadWeighted && weightID == nil {
			weightID = measure.WeightMeasureID
			if weightID == nil {
				return nil, fmt.Errorf("%w: weighted spread requires a weight measure", apperrors.ErrValidation)
			}
		}

		// Step 3: Disaggregate down to the leaves.
		touched, err = s.spreadSvc.Spread(ctx, cat.tree, mode, req.NodeID, req.MeasureID, req.PeriodID, req.VersionID, req.Value, weightID, editorID)
		if err != nil {
			return nil, fmt.Errorf("disaggregation failed: %w", err)
		}
	}

	// Step 4: Recalculate formulas at the edited node, then at every
	// descendant the spread touched. Each node's evaluation reads only its
	// own cells, so the order across nodes is immaterial.
	if err := s.formulaSvc.Recalculate(ctx, cat.measures, req.NodeID, req.PeriodID, req.VersionID, editorID); err != nil {
		return nil, fmt.Errorf("formula recalculation failed at node %s: %w", req.NodeID, err)
	}
	for _, descendantID := range touched {
		if err := s.formulaSvc.Recalculate(ctx, cat.measures, descendantID, req.PeriodID, req.VersionID, editorID); err != nil {
			return nil, fmt.Errorf("formula recalculation failed at node %s: %w", descendantID, err)
		}
	}

	// Steps 5+6: Aggregate up the node axis for the edited measure, then
	// one independent sweep per formula measure.
	sweepMeasures := []domain.Measure{measure}
	for _, m := range cat.measures.FormulaMeasures() {
		if m.MeasureID != measure.MeasureID {
			sweepMeasures = append(sweepMeasures, m)
		}
	}
	for _, m := range sweepMeasures {
		if err := s.rollupSvc.AggregateUp(ctx, cat.tree, req.NodeID, m, req.PeriodID, req.VersionID, editorID); err != nil {
			return nil, fmt.Errorf("node rollup failed for measure %s: %w", m.MeasureID, err)
		}
	}

	// Step 7: Aggregate up the time axis for the same measures, from the
	// edited node and from every touched descendant.
	timeOrigins := append([]string{req.NodeID}, touched...)
	for _, originNodeID := range timeOrigins {
		for _, m := range sweepMeasures {
			if err := s.rollupSvc.AggregateTimeUp(ctx, cat.periods, originNodeID, m, req.PeriodID, req.VersionID, editorID); err != nil {
				return nil, fmt.Errorf("time rollup failed for measure %s at node %s: %w", m.MeasureID, originNodeID, err)
			}
		}
	}

	logger.Info("Cell edit pipeline completed",
		slog.String("node_id", req.NodeID),
		slog.String("measure_id", req.MeasureID),
		slog.String("period_id", req.PeriodID),
		slog.String("version_id", req.VersionID),
		slog.Int("descendants_touched", len(touched)))

	// Step 8: Respond with a fresh read of persisted state, scoped to the
	// root of the edited node's tree.
	scopeRoot := req.NodeID
	for {
		parent, ok := cat.tree.ParentOf(scopeRoot)
		if !ok {
			break
		}
		scopeRoot = parent.NodeID
	}
	return s.buildGrid(ctx, cat, scopeRoot, req.VersionID)
}

// GetGrid implements portssvc.PlanningSvcFacade.
func (s *planningService) GetGrid(ctx context.Context, rootNodeID, versionID string) (*dto.GridResponse, error) {
	cat, err := s.loadCatalogs(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.versionRepo.FindVersionByID(ctx, versionID); err != nil {
		return nil, fmt.Errorf("version %s: %w", versionID, err)
	}
	if rootNodeID != "" {
		if _, ok := cat.tree.Node(rootNodeID); !ok {
			return nil, fmt.Errorf("%w: node %s", apperrors.ErrNotFound, rootNodeID)
		}
	}
	return s.buildGrid(ctx, cat, rootNodeID, versionID)
}

// buildGrid re-reads the store and assembles the grid payload: the visible
// subtree, the calendar, the measure catalog, and one entry per visible
// node x measure x leaf period, null for absent cells.
func (s *planningService) buildGrid(ctx context.Context, cat *catalogs, rootNodeID, versionID string) (*dto.GridResponse, error) {
	var nodes []domain.HierarchyNode
	if rootNodeID == "" {
		for _, root := range cat.tree.Roots() {
			nodes = append(nodes, cat.tree.SubtreeOf(root.NodeID)...)
		}
	} else {
		nodes = cat.tree.SubtreeOf(rootNodeID)
	}

	leafPeriods := cat.periods.LeafPeriods()
	measures := cat.measures.All()

	nodeIDs := make([]string, len(nodes))
	for i, n := range nodes {
		nodeIDs[i] = n.NodeID
	}
	periodIDs := make([]string, len(leafPeriods))
	for i, p := range leafPeriods {
		periodIDs[i] = p.PeriodID
	}
	measureIDs := make([]string, len(measures))
	for i, m := range measures {
		measureIDs[i] = m.MeasureID
	}

	stored, err := s.cellRepo.GetValues(ctx, nodeIDs, measureIDs, periodIDs, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid cells: %w", err)
	}

	cells := make(map[string]*decimal.Decimal, len(nodeIDs)*len(measureIDs)*len(periodIDs))
	for _, nID := range nodeIDs {
		for _, mID := range measureIDs {
			for _, pID := range periodIDs {
				key := domain.CellKey(nID, mID, pID)
				cells[key] = stored[key]
			}
		}
	}

	allPeriods := make([]domain.TimePeriod, 0)
	for _, root := range cat.periods.Roots() {
		allPeriods = append(allPeriods, collectPeriods(cat.periods, root)...)
	}

	return &dto.GridResponse{
		VersionID: versionID,
		Nodes:     dto.ToNodeResponses(nodes),
		Periods:   dto.ToPeriodResponses(allPeriods),
		Measures:  dto.ToMeasureResponses(measures),
		Cells:     cells,
	}, nil
}

// collectPeriods flattens a period subtree in depth-first order, parents
// before children, for the response payload.
func collectPeriods(tree *domain.PeriodTree, root domain.TimePeriod) []domain.TimePeriod {
	out := []domain.TimePeriod{root}
	stack := append([]domain.TimePeriod(nil), tree.ChildrenOf(root.PeriodID)...)
	for len(stack) > 0 {
		p := stack[0]
		stack = stack[1:]
		out = append(out, p)
		stack = append(stack, tree.ChildrenOf(p.PeriodID)...)
	}
	return out
}
