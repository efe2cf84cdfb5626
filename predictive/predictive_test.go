package predictive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kineticlab/posterior/common"
	"github.com/kineticlab/posterior/model"
)

func ppcTable(t *testing.T) *model.SampleTable {
	t.Helper()
	table := model.NewSampleTable()
	require.NoError(t, table.AddColumn("lp__", []float64{-3, -2, -4, -1, -2}))
	require.NoError(t, table.AddColumn("ppc[1]", []float64{1, 2, 3, 4, 5}))
	require.NoError(t, table.AddColumn("ppc[2]", []float64{2, 4, 6, 8, 10}))
	require.NoError(t, table.AddColumn("ppc[3]", []float64{3, 6, 9, 12, 15}))
	return table
}

func TestQuantileLevels(t *testing.T) {
	levels := QuantileLevels([]float64{95, 75, 50, 25})
	require.Equal(t, []float64{0.025, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 0.975}, levels)
}

func TestQuantileLevelsDropNonPositive(t *testing.T) {
	levels := QuantileLevels([]float64{95, 0, -10})
	require.Equal(t, []float64{0.025, 0.5, 0.975}, levels)

	require.Equal(t, []float64{0.5}, QuantileLevels(nil), "no widths leaves only the median")
}

func TestParseCondition(t *testing.T) {
	for _, tc := range []struct {
		column string
		want   int
	}{
		{"ppc[1]", 0},
		{"ppc[2]", 1},
		{"ppc[10]", 9},
	} {
		got, err := parseCondition(tc.column, "ppc")
		require.NoError(t, err, tc.column)
		require.Equal(t, tc.want, got, tc.column)
	}

	for _, column := range []string{"ppc[x]", "ppc[]", "ppc[1", "ppc1]", "ppc_rep[1]", "ppc[1]extra"} {
		_, err := parseCondition(column, "ppc")
		require.ErrorIs(t, err, common.ErrorInvalidInput, column)
	}
}

func TestBuildBandTableRecoversConditions(t *testing.T) {
	levels := QuantileLevels([]float64{95})
	band, err := buildBandTable(ppcTable(t), "ppc", levels, DefaultYLabel)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, band.Conditions())
	require.InDeltaSlice(t, []float64{3, 6, 9}, band.Curve(0.5), 1e-12)
	require.InDeltaSlice(t, []float64{1.1, 2.2, 3.3}, band.Curve(0.025), 1e-12)
	require.InDeltaSlice(t, []float64{4.9, 9.8, 14.7}, band.Curve(0.975), 1e-12)
}

func TestRegressionSingleBand(t *testing.T) {
	ch, err := Regression(context.Background(), ppcTable(t), "ppc", &Options{
		Percentiles: []float64{95},
	})
	require.NoError(t, err)
	require.Equal(t, 2, ch.Layers(), "one band plus the median line")
	require.Equal(t, DefaultXLabel, ch.Plot.X.Label.Text)
	require.Equal(t, DefaultYLabel, ch.Plot.Y.Label.Text)
	require.Equal(t, DefaultWidth, ch.Width)
	require.Equal(t, DefaultHeight, ch.Height)
}

func TestRegressionDefaults(t *testing.T) {
	ch, err := Regression(context.Background(), ppcTable(t), "ppc", nil)
	require.NoError(t, err)
	require.Equal(t, len(DefaultPercentiles)+1, ch.Layers())
}

func TestRegressionColorMismatch(t *testing.T) {
	_, err := Regression(context.Background(), ppcTable(t), "ppc", &Options{
		Colors: []string{"#bfd3bf", "#99b899", "#739d73"},
	})
	require.ErrorIs(t, err, common.ErrorConfigMismatch, "4 bands and a median need 5 colors")
}

func TestRegressionMalformedColumn(t *testing.T) {
	table := model.NewSampleTable()
	require.NoError(t, table.AddColumn("ppc[one]", []float64{1, 2, 3}))

	_, err := Regression(context.Background(), table, "ppc", nil)
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestRegressionNoMatchingColumns(t *testing.T) {
	table := model.NewSampleTable()
	require.NoError(t, table.AddColumn("lp__", []float64{1, 2, 3}))

	_, err := Regression(context.Background(), table, "ppc", nil)
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestRegressionDoesNotMutateTable(t *testing.T) {
	table := model.NewSampleTable()
	require.NoError(t, table.AddColumn("ppc[1]", []float64{5, 1, 4, 2, 3}))
	require.NoError(t, table.AddColumn("ppc[2]", []float64{10, 2, 8, 4, 6}))

	_, err := Regression(context.Background(), table, "ppc", nil)
	require.NoError(t, err)

	first, ok := table.Column("ppc[1]")
	require.True(t, ok)
	require.Equal(t, []float64{5, 1, 4, 2, 3}, first)
	second, ok := table.Column("ppc[2]")
	require.True(t, ok)
	require.Equal(t, []float64{10, 2, 8, 4, 6}, second)
}

func TestRegressionBadColor(t *testing.T) {
	_, err := Regression(context.Background(), ppcTable(t), "ppc", &Options{
		Percentiles: []float64{95},
		Colors:      []string{"bfd3bf", "#004D00"},
	})
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}
