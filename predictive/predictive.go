// Package predictive renders posterior-predictive-check samples as nested
// credible-region bands plus a median line over a condition axis.
package predictive

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/kineticlab/posterior/chart"
	"github.com/kineticlab/posterior/common"
	"github.com/kineticlab/posterior/model"
	"github.com/kineticlab/posterior/utils"
)

// Options configures one regression chart. Zero-valued fields fall back to
// the package defaults.
type Options struct {
	// Percentiles are credible-region widths in (0, 100), outermost first.
	Percentiles []float64
	XLabel      string
	YLabel      string
	Width       int
	Height      int
	// Colors are "#rrggbb" strings, one per band from outermost in, plus a
	// final entry for the median line.
	Colors []string
}

func (o *Options) withDefaults() Options {
	res := Options{}
	if o != nil {
		res = *o
	}
	if len(res.Percentiles) == 0 {
		res.Percentiles = DefaultPercentiles
	}
	if res.XLabel == "" {
		res.XLabel = DefaultXLabel
	}
	if res.YLabel == "" {
		res.YLabel = DefaultYLabel
	}
	if res.Width == 0 {
		res.Width = DefaultWidth
	}
	if res.Height == 0 {
		res.Height = DefaultHeight
	}
	if len(res.Colors) == 0 {
		res.Colors = DefaultColors
	}
	return res
}

// Regression builds the credible-region chart for the predictive variable
// base: per-condition quantile bands at every requested percentile width,
// shaded outermost first, with the median drawn as a line in the last color.
// The chart is returned for the caller to render; the table is only read.
func Regression(ctx context.Context, table *model.SampleTable, base string, opts *Options) (*chart.Chart, error) {
	logger := utils.GetLogger(ctx)

	o := opts.withDefaults()
	levels := QuantileLevels(o.Percentiles)
	bands := (len(levels) - 1) / 2

	if len(o.Colors) < bands+1 {
		err := fmt.Errorf("regression %q: %d bands and a median need %d colors, have %d: %w",
			base, bands, bands+1, len(o.Colors), common.ErrorConfigMismatch)
		logger.Error("Regression failed", zap.Error(err))
		return nil, err
	}

	bandTable, err := buildBandTable(table, base, levels, o.YLabel)
	if err != nil {
		logger.Error("Regression failed", zap.Error(err))
		return nil, err
	}

	conditions := bandTable.Conditions()
	xs := make([]float64, len(conditions))
	for i, c := range conditions {
		xs[i] = float64(c)
	}

	ch := chart.New(o.Width, o.Height, o.XLabel, o.YLabel)

	// Outermost band first: level i from the start paired with its mirror
	// from the end.
	for i := 0; i < bands; i++ {
		col, err := chart.ParseHexColor(o.Colors[i])
		if err != nil {
			return nil, err
		}
		upper := bandTable.Curve(levels[len(levels)-1-i])
		lower := bandTable.Curve(levels[i])
		if err := ch.AddBand(xs, upper, lower, col); err != nil {
			return nil, err
		}
	}

	medianColor, err := chart.ParseHexColor(o.Colors[len(o.Colors)-1])
	if err != nil {
		return nil, err
	}
	if err := ch.AddLine(chart.XYPairs(xs, bandTable.Curve(medianLevel)), medianColor, vg.Points(2)); err != nil {
		return nil, err
	}

	return ch, nil
}

// buildBandTable reduces every base[k] column to its quantiles at the given
// levels and indexes the result by (level, column), with columns ordered by
// their recovered condition.
func buildBandTable(table *model.SampleTable, base string, levels []float64, valueLabel string) (*model.BandTable, error) {
	columns := selectColumns(table, base)
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns match %s[index]: %w", base, common.ErrorInvalidInput)
	}

	conditions := make(map[string]int, len(columns))
	for _, column := range columns {
		condition, err := parseCondition(column, base)
		if err != nil {
			return nil, err
		}
		conditions[column] = condition
	}
	sort.SliceStable(columns, func(i, j int) bool {
		return conditions[columns[i]] < conditions[columns[j]]
	})

	res := model.NewBandTable(valueLabel, levels)
	for _, column := range columns {
		values, err := table.ColumnQuantiles(column, levels)
		if err != nil {
			return nil, err
		}
		res.AddColumn(column, conditions[column], values)
	}
	return res, nil
}
