package summary

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// ECDF evaluates the empirical cumulative distribution of samples at each
// distinct value: one point per unique sample, y = fraction of samples at or
// below x. The input is left untouched.
func ECDF(samples []float64) plotter.XYs {
	sorted := append([]float64{}, samples...)
	stat.SortWeighted(sorted, nil)

	xys := make(plotter.XYs, 0, len(sorted))
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		xys = append(xys, plotter.XY{
			X: v,
			Y: stat.CDF(v, stat.Empirical, sorted, nil),
		})
	}
	return xys
}
