package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadatools/binldpc/beliefprop"
	"github.com/wadatools/binldpc/channel"
	"github.com/wadatools/binldpc/simulate"
	"github.com/wadatools/binldpc/tanner"
)

func smallGraph(t *testing.T) *tanner.Graph {
	t.Helper()
	g, err := tanner.Build(3, 3,
		[]int{2, 2, 2},
		[]int{2, 2, 2},
		[][]int{{0, 1}, {1, 2}, {0, 2}},
	)
	require.NoError(t, err)
	return g
}

// Stop-policy check (high noise, sigma2=2.0, small code): the driver must
// be able to stop on an error-blocks policy and report the threshold met.
func TestDriverStopsOnErrorBlocks(t *testing.T) {
	g := smallGraph(t)
	dec, err := beliefprop.NewDecoder(g, beliefprop.WithIterationCap(20))
	require.NoError(t, err)
	sampler := channel.NewSeededSampler(1234)

	drv, err := simulate.NewDriver(dec, sampler, 2.0,
		simulate.WithStopPolicy(simulate.StopOnErrorBlocks, 5))
	require.NoError(t, err)

	stats, err := drv.Run()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.ErrorBlocks, 5)
	assert.Equal(t, stats, drv.Stats())
}

func TestDriverStopsOnErrorBits(t *testing.T) {
	g := smallGraph(t)
	dec, err := beliefprop.NewDecoder(g, beliefprop.WithIterationCap(20))
	require.NoError(t, err)
	sampler := channel.NewSeededSampler(42)

	drv, err := simulate.NewDriver(dec, sampler, 2.0,
		simulate.WithStopPolicy(simulate.StopOnErrorBits, 3))
	require.NoError(t, err)

	stats, err := drv.Run()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.ErrorBits, 3)
}

func TestDriverOnBlockHookFires(t *testing.T) {
	g := smallGraph(t)
	dec, err := beliefprop.NewDecoder(g, beliefprop.WithIterationCap(20))
	require.NoError(t, err)
	sampler := channel.NewSeededSampler(99)

	calls := 0
	drv, err := simulate.NewDriver(dec, sampler, 2.0,
		simulate.WithStopPolicy(simulate.StopOnErrorBlocks, 2),
		simulate.WithOnBlock(func(bs simulate.BlockStats) { calls++ }))
	require.NoError(t, err)

	stats, err := drv.Run()
	require.NoError(t, err)
	assert.Equal(t, stats.TotalBlocks, calls)
}

func TestNewDriverValidatesInputs(t *testing.T) {
	g := smallGraph(t)
	dec, err := beliefprop.NewDecoder(g, beliefprop.WithIterationCap(20))
	require.NoError(t, err)
	sampler := channel.NewSeededSampler(1)

	_, err = simulate.NewDriver(nil, sampler, 1.0)
	require.Error(t, err)

	_, err = simulate.NewDriver(dec, nil, 1.0)
	require.Error(t, err)

	_, err = simulate.NewDriver(dec, sampler, 0)
	require.Error(t, err)
}

func TestReportLineFormat(t *testing.T) {
	r := simulate.Report{
		SNR: 2.0, Sigma2: 0.3, Seed: 1234, IMax: 20,
		N: 16, M: 4, MatrixFile: "h16.spmat",
		StopMode: simulate.StopOnErrorBlocks, Threshold: 100,
		Stats: simulate.Stats{ErrorBits: 3, TotalBits: 1600, ErrorBlocks: 2, TotalBlocks: 100, TotalIterations: 150},
	}
	line := r.Line()
	assert.Contains(t, line, "h16.spmat")
	assert.NotEmpty(t, simulate.Header())
}
