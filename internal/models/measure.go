package models

// Measure represents one column definition of the planning grid.
type Measure struct {
	MeasureID       string  `db:"measure_id"`
	ShortName       string  `db:"short_name"`
	Name            string  `db:"name"`
	DataType        string  `db:"data_type"`
	IsEditable      bool    `db:"is_editable"`
	Formula         *string `db:"formula"`
	AggregationType string  `db:"aggregation_type"`
	WeightMeasureID *string `db:"weight_measure_id"`
	AuditFields
}
