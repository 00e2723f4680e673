package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
)

// fakeCellRepo is an in-memory cell store for engine tests. It mirrors the
// sparse semantics of the real store: absent rows are not the same as
// stored nulls, and SaveCells replaces whole rows.
type fakeCellRepo struct {
	mu        sync.Mutex
	cells     map[string]map[string]*decimal.Decimal // versionID -> cell key -> value
	saveCalls int
}

func newFakeCellRepo() *fakeCellRepo {
	return &fakeCellRepo{cells: make(map[string]map[string]*decimal.Decimal)}
}

var _ portsrepo.CellRepositoryFacade = (*fakeCellRepo)(nil)

// set seeds one stored cell. A nil value seeds a stored null.
func (f *fakeCellRepo) set(versionID, nodeID, measureID, periodID string, value *decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cells[versionID] == nil {
		f.cells[versionID] = make(map[string]*decimal.Decimal)
	}
	f.cells[versionID][domain.CellKey(nodeID, measureID, periodID)] = value
}

// get reads one stored cell, reporting presence separately from value.
func (f *fakeCellRepo) get(versionID, nodeID, measureID, periodID string) (*decimal.Decimal, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.cells[versionID][domain.CellKey(nodeID, measureID, periodID)]
	return v, ok
}

func (f *fakeCellRepo) GetValue(ctx context.Context, nodeID, measureID, periodID, versionID string) (portsrepo.CellValue, error) {
	v, ok := f.get(versionID, nodeID, measureID, periodID)
	return portsrepo.CellValue{Value: v, Present: ok}, nil
}

func (f *fakeCellRepo) GetValues(ctx context.Context, nodeIDs, measureIDs, periodIDs []string, versionID string) (map[string]*decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make(map[string]*decimal.Decimal)
	stored := f.cells[versionID]
	for _, n := range nodeIDs {
		for _, m := range measureIDs {
			for _, p := range periodIDs {
				key := domain.CellKey(n, m, p)
				if v, ok := stored[key]; ok {
					result[key] = v
				}
			}
		}
	}
	return result, nil
}

func (f *fakeCellRepo) SaveCells(ctx context.Context, cells []domain.Cell) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	for _, c := range cells {
		if f.cells[c.VersionID] == nil {
			f.cells[c.VersionID] = make(map[string]*decimal.Decimal)
		}
		f.cells[c.VersionID][c.Key()] = c.Value
	}
	return nil
}

func strptr(s string) *string { return &s }

func dptr(v decimal.Decimal) *decimal.Decimal { return &v }

// twoLevelTree builds company -> {region-a, region-b}.
func twoLevelTree() *domain.HierarchyTree {
	return domain.NewHierarchyTree([]domain.HierarchyNode{
		{NodeID: "company", Name: "Company", LevelID: "lvl-0"},
		{NodeID: "region-a", Name: "Region A", LevelID: "lvl-1", ParentID: strptr("company"), SortOrder: 1},
		{NodeID: "region-b", Name: "Region B", LevelID: "lvl-1", ParentID: strptr("company"), SortOrder: 2},
	})
}

// threeLevelTree builds company -> {region-a -> {store-1, store-2},
// region-b -> {store-3, store-4}}.
func threeLevelTree() *domain.HierarchyTree {
	return domain.NewHierarchyTree([]domain.HierarchyNode{
		{NodeID: "company", Name: "Company", LevelID: "lvl-0"},
		{NodeID: "region-a", Name: "Region A", LevelID: "lvl-1", ParentID: strptr("company"), SortOrder: 1},
		{NodeID: "region-b", Name: "Region B", LevelID: "lvl-1", ParentID: strptr("company"), SortOrder: 2},
		{NodeID: "store-1", Name: "Store 1", LevelID: "lvl-2", ParentID: strptr("region-a"), SortOrder: 1},
		{NodeID: "store-2", Name: "Store 2", LevelID: "lvl-2", ParentID: strptr("region-a"), SortOrder: 2},
		{NodeID: "store-3", Name: "Store 3", LevelID: "lvl-2", ParentID: strptr("region-b"), SortOrder: 1},
		{NodeID: "store-4", Name: "Store 4", LevelID: "lvl-2", ParentID: strptr("region-b"), SortOrder: 2},
	})
}

// seasonCalendar builds season -> {month-1, month-2, month-3}.
func seasonCalendar() *domain.PeriodTree {
	day := func(m int) time.Time { return time.Date(2026, time.Month(m), 1, 0, 0, 0, 0, time.UTC) }
	return domain.NewPeriodTree([]domain.TimePeriod{
		{PeriodID: "season", Label: "Spring", StartDate: day(2), EndDate: day(5).AddDate(0, 0, -1), Depth: 0},
		{PeriodID: "month-1", Label: "Feb", StartDate: day(2), EndDate: day(3).AddDate(0, 0, -1), ParentID: strptr("season"), Depth: 1},
		{PeriodID: "month-2", Label: "Mar", StartDate: day(3), EndDate: day(4).AddDate(0, 0, -1), ParentID: strptr("season"), Depth: 1},
		{PeriodID: "month-3", Label: "Apr", StartDate: day(4), EndDate: day(5).AddDate(0, 0, -1), ParentID: strptr("season"), Depth: 1},
	})
}

func salesMeasure() domain.Measure {
	return domain.Measure{
		MeasureID:       "m-sales",
		ShortName:       "Sales",
		Name:            "Sales Retail",
		DataType:        domain.DataTypeCurrency,
		IsEditable:      true,
		AggregationType: domain.AggSum,
	}
}

func cogsMeasure() domain.Measure {
	return domain.Measure{
		MeasureID:       "m-cogs",
		ShortName:       "COGS",
		Name:            "Cost of Goods Sold",
		DataType:        domain.DataTypeCurrency,
		IsEditable:      true,
		AggregationType: domain.AggSum,
	}
}

func unitsMeasure() domain.Measure {
	return domain.Measure{
		MeasureID:       "m-units",
		ShortName:       "Units",
		Name:            "Units Sold",
		DataType:        domain.DataTypeUnits,
		IsEditable:      true,
		AggregationType: domain.AggSum,
	}
}

func aspMeasure() domain.Measure {
	return domain.Measure{
		MeasureID:       "m-asp",
		ShortName:       "ASP",
		Name:            "Average Selling Price",
		DataType:        domain.DataTypeCurrency,
		IsEditable:      true,
		AggregationType: domain.AggWeightedAvg,
		WeightMeasureID: strptr("m-units"),
	}
}

func marginMeasure() domain.Measure {
	return domain.Measure{
		MeasureID:       "m-margin",
		ShortName:       "MarginPct",
		Name:            "Margin Percent",
		DataType:        domain.DataTypePercentage,
		IsEditable:      false,
		Formula:         strptr("(Sales - COGS) / Sales * 100"),
		AggregationType: domain.AggAvg,
	}
}
