package predictive

// QuantileLevels expands percentile widths into the ordered quantile levels
// needed to draw nested symmetric bands: the lower tail of each width in the
// given order, the median, then the upper tails in reverse order, so the
// sequence is palindromic around 0.5. Widths that aren't positive are
// dropped.
//
// Widths [95, 75, 50, 25] give
// [0.025, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 0.975].
func QuantileLevels(percentiles []float64) []float64 {
	widths := make([]float64, 0, len(percentiles))
	for _, w := range percentiles {
		if w > 0 {
			widths = append(widths, w)
		}
	}

	levels := make([]float64, 0, 2*len(widths)+1)
	for _, w := range widths {
		levels = append(levels, (50-w/2)/100)
	}
	levels = append(levels, medianLevel)
	for i := len(widths) - 1; i >= 0; i-- {
		levels = append(levels, (50+widths[i]/2)/100)
	}
	return levels
}
