// Package summary condenses one-dimensional posterior sample draws into a
// median plus 95% central credible interval, optionally with an empirical
// CDF chart of the draws.
package summary

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/kineticlab/posterior/chart"
	"github.com/kineticlab/posterior/common"
	"github.com/kineticlab/posterior/model"
	"github.com/kineticlab/posterior/utils"
)

const (
	DefaultPlotWidth  = 400
	DefaultPlotHeight = 300

	crLower = 0.025
	crUpper = 0.975
)

// Summarize reduces posterior draws for one scalar parameter to its median
// and 2.5th/97.5th percentiles, rounded to 3 decimals. When withPlot is set
// it also builds an ECDF scatter chart (x axis named after the parameter,
// y axis "ECDF"); the chart is returned, never displayed, and is nil
// otherwise. Units, when given, are folded into the display name as
// "name (units)".
func Summarize(ctx context.Context, data []float64, name, units string, withPlot bool) (*model.SummaryRecord, *chart.Chart, error) {
	logger := utils.GetLogger(ctx)

	if len(data) == 0 {
		err := fmt.Errorf("summarize: empty sample array: %w", common.ErrorInvalidInput)
		logger.Error("Summarize failed", zap.Error(err))
		return nil, nil, err
	}

	display := name
	if units != "" {
		display = fmt.Sprintf("%s (%s)", display, units)
	}
	if withPlot && display == "" {
		err := fmt.Errorf("summarize: ECDF plot requested without a parameter name: %w", common.ErrorInvalidInput)
		logger.Error("Summarize failed", zap.Error(err))
		return nil, nil, err
	}

	sorted := append([]float64{}, data...)
	stat.SortWeighted(sorted, nil)

	record := &model.SummaryRecord{
		Value:  display,
		Median: utils.RoundTo(utils.Quantile(sorted, 0.5), 3),
		Lower:  utils.RoundTo(utils.Quantile(sorted, crLower), 3),
		Upper:  utils.RoundTo(utils.Quantile(sorted, crUpper), 3),
	}

	if !withPlot {
		return record, nil, nil
	}

	ch := chart.New(DefaultPlotWidth, DefaultPlotHeight, display, "ECDF")
	if err := ch.AddScatter(ECDF(data), nil); err != nil {
		logger.Error("Summarize failed", zap.Error(err))
		return nil, nil, err
	}
	return record, ch, nil
}
