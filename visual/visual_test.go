// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package visual

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i + 1)
	}
	return values
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	m, err := Build(sequence(100), config.Default())
	require.NoError(t, err)
	require.Len(t, m.Bins, 8)
	require.NotNil(t, m.XAxis)
	require.NotNil(t, m.YAxis)

	assert.Equal(530.0, m.PlotWidth())
	assert.Equal(350.0, m.PlotHeight())
	assert.Equal([]float64{1, 100}, []float64(m.XAxis.DataDomain))
	assert.NotEmpty(m.XAxis.TickValues)
	assert.Len(m.XAxis.FormattedTickValues, len(m.XAxis.TickValues))

	for _, v := range m.YAxis.TickValues {
		assert.Equal(0.0, math.Mod(v, 1), "y tick %v", v)
	}
	assert.Equal(m.YAxis.ScaleRange[0], m.PlotHeight())

	require.Len(t, m.DataLabels, 8)
	for _, l := range m.DataLabels {
		b := m.Bins[l.Bin]
		assert.Equal(m.YAxis.Formatter.Format(b.Y), l.Text)
		assert.GreaterOrEqual(l.X, 0.0)
		assert.LessOrEqual(l.X, m.PlotWidth())
		assert.GreaterOrEqual(l.Y, 0.0)
		assert.LessOrEqual(l.Y, m.PlotHeight())
	}
}

func TestBuildRelative(t *testing.T) {
	conf := config.Default()
	conf.Frequency = false

	m, err := Build(sequence(100), conf)
	require.NoError(t, err)
	require.NotEmpty(t, m.YAxis.FormattedTickValues)
	for _, label := range m.YAxis.FormattedTickValues {
		assert.True(t, strings.HasSuffix(label, "%"), label)
	}
	for _, l := range m.DataLabels {
		assert.True(t, strings.HasSuffix(l.Text, "%"), l.Text)
	}
}

func TestBuildHiddenAxes(t *testing.T) {
	conf := config.Default()
	conf.XAxisShow = false
	conf.YAxisShow = false

	m, err := Build(sequence(10), conf)
	require.NoError(t, err)
	assert.Nil(t, m.XAxis)
	assert.Nil(t, m.YAxis)
	assert.NotEmpty(t, m.DataLabels)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "xAxis")
}

func TestBuildRangeOverride(t *testing.T) {
	conf := config.Default()
	start, end := 0.0, 200.0
	conf.XAxisStart, conf.XAxisEnd = &start, &end
	top := 50.0
	conf.YAxisEnd = &top

	m, err := Build(sequence(100), conf)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 200}, []float64(m.XAxis.DataDomain))
	assert.Equal(t, []float64{0, 50}, []float64(m.YAxis.DataDomain))
}

func TestBuildEmpty(t *testing.T) {
	m, err := Build(nil, config.Default())
	require.NoError(t, err)
	assert.Empty(t, m.Bins)
	assert.Empty(t, m.DataLabels)
	assert.True(t, m.XAxis.UsingDefaultDomain)
	assert.Empty(t, m.XAxis.TickValues)
}

func TestBuildInvalid(t *testing.T) {
	conf := config.Default()
	conf.Width = 60
	_, err := Build(sequence(3), conf)
	assert.True(t, errors.Is(err, errors.NotValid))

	conf = config.Default()
	conf.BinRule = "nope"
	_, err = Build(sequence(3), conf)
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestOverride(t *testing.T) {
	one, five := 1.0, 5.0

	assert.Equal(t, []float64{2, 3}, override([]float64{2, 3}, config.Axis{}))
	assert.Equal(t, []float64{1, 3}, override([]float64{2, 3}, config.Axis{Start: &one}))
	assert.Equal(t, []float64{2, 5}, override([]float64{2, 3}, config.Axis{End: &five}))
	assert.Nil(t, override(nil, config.Axis{Start: &one}))
	assert.Equal(t, []float64{1, 5}, override(nil, config.Axis{Start: &one, End: &five}))
}
