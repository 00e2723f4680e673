package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

func TestMeasure_HasFormula(t *testing.T) {
	assert.False(t, domain.Measure{}.HasFormula())
	assert.False(t, domain.Measure{Formula: strptr("")}.HasFormula())
	assert.True(t, domain.Measure{Formula: strptr("Sales - COGS")}.HasFormula())
}

func TestMeasureSet_PreservesCatalogOrder(t *testing.T) {
	set := domain.NewMeasureSet([]domain.Measure{
		{MeasureID: "m-sales", ShortName: "Sales"},
		{MeasureID: "m-cogs", ShortName: "COGS"},
		{MeasureID: "m-margin", ShortName: "MarginPct", Formula: strptr("Sales - COGS")},
	})

	all := set.All()
	require.Len(t, all, 3)
	assert.Equal(t, "m-sales", all[0].MeasureID)
	assert.Equal(t, "m-margin", all[2].MeasureID)
}

func TestMeasureSet_Lookup(t *testing.T) {
	set := domain.NewMeasureSet([]domain.Measure{{MeasureID: "m-sales", ShortName: "Sales"}})

	m, ok := set.Measure("m-sales")
	require.True(t, ok)
	assert.Equal(t, "Sales", m.ShortName)

	_, ok = set.Measure("m-ghost")
	assert.False(t, ok)
}

func TestMeasureSet_FormulaMeasures(t *testing.T) {
	set := domain.NewMeasureSet([]domain.Measure{
		{MeasureID: "m-sales", ShortName: "Sales"},
		{MeasureID: "m-margin", ShortName: "MarginPct", Formula: strptr("Sales - COGS")},
		{MeasureID: "m-empty", ShortName: "Empty", Formula: strptr("")},
	})

	derived := set.FormulaMeasures()
	require.Len(t, derived, 1)
	assert.Equal(t, "m-margin", derived[0].MeasureID)
}

func TestCellKey(t *testing.T) {
	assert.Equal(t, "n1:m1:p1", domain.CellKey("n1", "m1", "p1"))
	cell := domain.Cell{NodeID: "n1", MeasureID: "m1", PeriodID: "p1", VersionID: "v1"}
	assert.Equal(t, "n1:m1:p1", cell.Key(), "the version is carried separately from the key")
}
