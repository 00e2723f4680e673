package domain

import (
	"sort"
	"time"
)

// TimePeriod is a node of the planning calendar. A nil ParentID marks the
// top of the calendar. Depth 0 is the coarsest grain (e.g. a fiscal year).
type TimePeriod struct {
	PeriodID  string
	Label     string
	StartDate time.Time
	EndDate   time.Time
	ParentID  *string
	Depth     int
	AuditFields
}

// PeriodTree is an immutable per-request snapshot of the calendar,
// mirroring HierarchyTree for the time axis.
type PeriodTree struct {
	periods  map[string]TimePeriod
	children map[string][]TimePeriod
	roots    []TimePeriod
}

// NewPeriodTree indexes the given periods. Children are ordered by
// StartDate, then PeriodID as a stable tie-break.
func NewPeriodTree(periods []TimePeriod) *PeriodTree {
	t := &PeriodTree{
		periods:  make(map[string]TimePeriod, len(periods)),
		children: make(map[string][]TimePeriod),
	}
	for _, p := range periods {
		t.periods[p.PeriodID] = p
		if p.ParentID == nil {
			t.roots = append(t.roots, p)
		} else {
			t.children[*p.ParentID] = append(t.children[*p.ParentID], p)
		}
	}
	sortPeriods(t.roots)
	for _, siblings := range t.children {
		sortPeriods(siblings)
	}
	return t
}

func sortPeriods(ps []TimePeriod) {
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].StartDate.Equal(ps[j].StartDate) {
			return ps[i].StartDate.Before(ps[j].StartDate)
		}
		return ps[i].PeriodID < ps[j].PeriodID
	})
}

// Period returns the period with the given ID, if present.
func (t *PeriodTree) Period(periodID string) (TimePeriod, bool) {
	p, ok := t.periods[periodID]
	return p, ok
}

// ChildrenOf returns the ordered direct child periods.
func (t *PeriodTree) ChildrenOf(periodID string) []TimePeriod {
	return t.children[periodID]
}

// ParentOf returns the parent period, or false at the top of the calendar.
func (t *PeriodTree) ParentOf(periodID string) (TimePeriod, bool) {
	p, ok := t.periods[periodID]
	if !ok || p.ParentID == nil {
		return TimePeriod{}, false
	}
	parent, ok := t.periods[*p.ParentID]
	return parent, ok
}

// Roots returns the ordered top-level periods.
func (t *PeriodTree) Roots() []TimePeriod {
	return t.roots
}

// LeafPeriods returns every period with no children, in breadth-first
// order starting from the roots. These are the grain the grid is edited at.
func (t *PeriodTree) LeafPeriods() []TimePeriod {
	var out []TimePeriod
	queue := append([]TimePeriod(nil), t.roots...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		kids := t.children[p.PeriodID]
		if len(kids) == 0 {
			out = append(out, p)
			continue
		}
		queue = append(queue, kids...)
	}
	return out
}
