package model

import "fmt"

// SummaryRecord holds the point estimate and 95% central credible interval
// for one scalar parameter's posterior draws.
type SummaryRecord struct {
	Value  string  `json:"value"`
	Median float64 `json:"median"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
}

// CredibleRegion formats the interval bounds as "[lower, upper]".
func (r *SummaryRecord) CredibleRegion() string {
	return fmt.Sprintf("[%v, %v]", r.Lower, r.Upper)
}

// BandTable holds per-column quantiles of a predictive-sample table, keyed by
// (quantile level, column name), together with the experimental condition
// recovered from each column name. Columns are ordered by condition.
type BandTable struct {
	ValueLabel string

	levels     []float64
	columns    []string
	conditions []int
	values     map[float64]map[string]float64
}

func NewBandTable(valueLabel string, levels []float64) *BandTable {
	values := make(map[float64]map[string]float64, len(levels))
	for _, level := range levels {
		values[level] = map[string]float64{}
	}
	return &BandTable{
		ValueLabel: valueLabel,
		levels:     append([]float64{}, levels...),
		values:     values,
	}
}

// AddColumn registers a column with its condition and one value per level,
// in the same order the table's levels were given.
func (b *BandTable) AddColumn(column string, condition int, values []float64) {
	b.columns = append(b.columns, column)
	b.conditions = append(b.conditions, condition)
	for i, level := range b.levels {
		b.values[level][column] = values[i]
	}
}

func (b *BandTable) Levels() []float64 {
	return b.levels
}

// Conditions returns the condition of every column, in column order.
func (b *BandTable) Conditions() []int {
	return b.conditions
}

func (b *BandTable) Value(level float64, column string) (float64, bool) {
	row, ok := b.values[level]
	if !ok {
		return 0, false
	}
	v, ok := row[column]
	return v, ok
}

// Curve returns the quantile values at one level across all columns, in
// column order, suitable for drawing against Conditions.
func (b *BandTable) Curve(level float64) []float64 {
	row, ok := b.values[level]
	if !ok {
		return nil
	}
	res := make([]float64, len(b.columns))
	for i, column := range b.columns {
		res[i] = row[column]
	}
	return res
}
