package model

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/kineticlab/posterior/common"
	"github.com/kineticlab/posterior/utils"
)

// SampleTable is a column-major labeled table of posterior predictive draws:
// one row per MCMC draw, one column per sampled variable. Columns all hold
// the same number of draws.
type SampleTable struct {
	columns []string
	data    map[string][]float64
	rows    int
}

func NewSampleTable() *SampleTable {
	return &SampleTable{
		columns: []string{},
		data:    map[string][]float64{},
	}
}

// AddColumn copies values into the table. The first column fixes the row
// count; later columns must match it.
func (t *SampleTable) AddColumn(name string, values []float64) error {
	if name == "" || len(values) == 0 {
		return fmt.Errorf("add column %q: empty name or values: %w", name, common.ErrorInvalidInput)
	}
	if _, ok := t.data[name]; ok {
		return fmt.Errorf("add column %q: duplicate column: %w", name, common.ErrorInvalidInput)
	}
	if len(t.columns) > 0 && len(values) != t.rows {
		return fmt.Errorf("add column %q: %d values, table has %d rows: %w",
			name, len(values), t.rows, common.ErrorInvalidInput)
	}

	t.columns = append(t.columns, name)
	t.data[name] = append([]float64{}, values...)
	t.rows = len(values)
	return nil
}

func (t *SampleTable) Rows() int {
	return t.rows
}

// Columns returns the column names in insertion order.
func (t *SampleTable) Columns() []string {
	return append([]string{}, t.columns...)
}

// Column returns a copy of the named column's draws, so callers can't reach
// the stored values.
func (t *SampleTable) Column(name string) ([]float64, bool) {
	values, ok := t.data[name]
	if !ok {
		return nil, false
	}
	return append([]float64{}, values...), true
}

// ColumnQuantiles computes the quantile of one column at every level, in the
// given order. The stored column is never reordered; the reduction sorts a
// copy.
func (t *SampleTable) ColumnQuantiles(name string, levels []float64) ([]float64, error) {
	values, ok := t.data[name]
	if !ok {
		return nil, fmt.Errorf("column %q not in table: %w", name, common.ErrorInvalidInput)
	}

	sorted := append([]float64{}, values...)
	stat.SortWeighted(sorted, nil)

	res := make([]float64, len(levels))
	for i, level := range levels {
		res[i] = utils.Quantile(sorted, level)
	}
	return res, nil
}
