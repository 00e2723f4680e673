package domain

// AggregationType defines how a measure rolls up from children to parent.
type AggregationType string

const (
	AggSum         AggregationType = "SUM"
	AggAvg         AggregationType = "AVG"
	AggWeightedAvg AggregationType = "WEIGHTED_AVG"
	AggNone        AggregationType = "NONE"
)

// MeasureDataType is display metadata only; the engines treat every value
// as a plain numeric.
type MeasureDataType string

const (
	DataTypeCurrency   MeasureDataType = "CURRENCY"
	DataTypeUnits      MeasureDataType = "UNITS"
	DataTypePercentage MeasureDataType = "PERCENTAGE"
	DataTypeRatio      MeasureDataType = "RATIO"
)

// Measure is one planning measure (Sales, COGS, Margin%, ...). ShortName is
// the identifier token usable in other measures' formulas. A measure with a
// non-empty Formula is derived: it is recomputed, never disaggregated, and
// the orchestration layer refuses direct edits to it at internal nodes.
type Measure struct {
	MeasureID       string
	ShortName       string
	Name            string
	DataType        MeasureDataType
	IsEditable      bool
	Formula         *string
	AggregationType AggregationType
	WeightMeasureID *string // required for WEIGHTED_AVG node rollups
	AuditFields
}

// HasFormula reports whether the measure is formula-derived.
func (m Measure) HasFormula() bool {
	return m.Formula != nil && *m.Formula != ""
}

// MeasureSet is an immutable per-request snapshot of the measure catalog.
type MeasureSet struct {
	measures []Measure
	byID     map[string]Measure
}

// NewMeasureSet indexes the given measures, preserving catalog order.
func NewMeasureSet(measures []Measure) *MeasureSet {
	s := &MeasureSet{
		measures: measures,
		byID:     make(map[string]Measure, len(measures)),
	}
	for _, m := range measures {
		s.byID[m.MeasureID] = m
	}
	return s
}

// All returns every measure in catalog order.
func (s *MeasureSet) All() []Measure {
	return s.measures
}

// Measure returns the measure with the given ID, if present.
func (s *MeasureSet) Measure(measureID string) (Measure, bool) {
	m, ok := s.byID[measureID]
	return m, ok
}

// FormulaMeasures returns the derived measures in catalog order.
func (s *MeasureSet) FormulaMeasures() []Measure {
	var out []Measure
	for _, m := range s.measures {
		if m.HasFormula() {
			out = append(out, m)
		}
	}
	return out
}
