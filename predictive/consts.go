package predictive

const (
	DefaultXLabel = "[indole] (µM)"
	DefaultYLabel = "k (per sec)"
	DefaultWidth  = 500
	DefaultHeight = 400

	medianLevel = 0.5
)

var (
	// DefaultPercentiles are the credible-region widths drawn when the
	// caller gives none, outermost first.
	DefaultPercentiles = []float64{95, 75, 50, 25}

	// DefaultColors are six greens, lightest first; the last entry colors
	// the median line.
	DefaultColors = []string{
		"#bfd3bf",
		"#99b899",
		"#739d73",
		"#4d824d",
		"#266826",
		"#004D00",
	}
)
