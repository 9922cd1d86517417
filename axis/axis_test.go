// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package axis

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func ms(t time.Time) float64 { return float64(t.UnixMilli()) }

func TestRecommendedTickCounts(t *testing.T) {
	var tests = []struct {
		span float64
		x, y int
	}{
		{100, 3, 3},
		{200, 3, 5},
		{299, 3, 5},
		{300, 5, 8},
		{499, 5, 8},
		{500, 8, 8},
	}
	for _, tt := range tests {
		if got := RecommendedTickCountForXAxis(tt.span); got != tt.x {
			t.Errorf("RecommendedTickCountForXAxis(%v) = %d, want %d", tt.span, got, tt.x)
		}
		if got := RecommendedTickCountForYAxis(tt.span); got != tt.y {
			t.Errorf("RecommendedTickCountForYAxis(%v) = %d, want %d", tt.span, got, tt.y)
		}
	}
}

func TestBestNumberOfTicks(t *testing.T) {
	integer := []*ColumnMetadata{{Type: IntegerType}}
	numeric := []*ColumnMetadata{{Type: NumericType}}

	var tests = []struct {
		name     string
		min, max float64
		metas    []*ColumnMetadata
		maxTicks int
		dateTime bool
		want     int
	}{
		{"single date", 5, 5, nil, 8, true, 1},
		{"single number", 5, 5, nil, 8, false, 3},
		{"integers", 2, 5, integer, 8, false, 4},
		{"many integers", 0, 100, integer, 8, false, 8},
		{"non integer data", 2, 5, numeric, 8, false, 8},
		{"nan bound", math.NaN(), 5, integer, 8, false, 3},
		{"unit range", -1, 1, integer, 8, false, 8},
		{"single tick budget", 0, 100, integer, 1, false, 1},
		{"untyped", 9, 14, nil, 8, false, 6},
	}
	for _, tt := range tests {
		if got := BestNumberOfTicks(tt.min, tt.max, tt.metas, tt.maxTicks, tt.dateTime); got != tt.want {
			t.Errorf("%s: BestNumberOfTicks() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOrdinalTickValues(t *testing.T) {
	assert := assert.New(t)
	labels := []string{"a", "b", "c", "d", "e", "f"}

	assert.Equal([]string{"a", "c", "e"}, RecommendedTickValuesForAnOrdinalRange(3, labels))
	assert.Equal([]string{"a", "c", "e"}, RecommendedTickValuesForAnOrdinalRange(4, labels))
	assert.Equal(labels, RecommendedTickValuesForAnOrdinalRange(6, labels))
	assert.Equal(labels, RecommendedTickValuesForAnOrdinalRange(10, labels))
	assert.Empty(RecommendedTickValuesForAnOrdinalRange(0, labels))
	assert.Equal([]string{"a", "d"}, RecommendedTickValuesForAnOrdinalRange(2, labels[:5]))
}

func TestSnapToZero(t *testing.T) {
	assert.Equal(t, []float64{-2, -1, 0, 3, 4}, SnapToZero([]float64{-2, -1, 1e-10, 3, 4}, TrueZeroEpsilon))
	assert.Equal(t, []float64{1e-10}, SnapToZero([]float64{1e-10}, TrueZeroEpsilon))
	assert.Equal(t, []float64{-0.2, 0, 0.2}, SnapToZero([]float64{-0.2, 2.7755575615628914e-17, 0.2}, TrueZeroEpsilon))
}

func TestIsLogScalePossible(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsLogScalePossible([]float64{5, 10}, NumericType))
	assert.True(IsLogScalePossible([]float64{-10, -5}, NumericType))
	assert.False(IsLogScalePossible([]float64{-5, 5}, NumericType))
	assert.False(IsLogScalePossible([]float64{0, 5}, NumericType))
	assert.False(IsLogScalePossible(nil, NumericType))
	assert.False(IsLogScalePossible([]float64{5, 10}, DateTimeType))
}

func TestPowerOfTen(t *testing.T) {
	for _, v := range []float64{1, 10, 100, 1000, 1e6, 0.1, 0.001, -100} {
		assert.True(t, PowerOfTen(v), "%v", v)
	}
	for _, v := range []float64{0, 2, 20, 300, 0.5, math.NaN()} {
		assert.False(t, PowerOfTen(v), "%v", v)
	}
}

func TestNormalizeLinearDomain(t *testing.T) {
	var tests = []struct {
		in, out Interval
	}{
		{Interval{5, 5}, Interval{4, 6}},
		{Interval{-5, -5}, Interval{-6, -4}},
		{Interval{0, 0}, Interval{0, 1}},
		{Interval{0.00001, 100}, Interval{0, 100}},
		{Interval{1, 10}, Interval{1, 10}},
		{Interval{math.NaN(), 3}, Interval{0, 0}},
	}
	for _, tt := range tests {
		got := NormalizeLinearDomain(tt.in)
		assert.InDelta(t, tt.out[0], got[0], 1e-12, "%v", tt.in)
		assert.InDelta(t, tt.out[1], got[1], 1e-12, "%v", tt.in)
	}

	for _, v := range []float64{-1e6, -3.5, -1e-9, 1e-9, 2, 1e300} {
		d := NormalizeLinearDomain(Interval{v, v})
		assert.Less(t, d[0], d[1], "degenerate domain %v", v)
	}
}

func TestEnsureValuesInRange(t *testing.T) {
	assert.Equal(t, []float64{2, 3}, EnsureValuesInRange([]float64{1, 2, 3, 4}, 2, 3))
	assert.Equal(t, []float64{2, 3.5}, EnsureValuesInRange([]float64{1, 3, 4}, 2, 3.5))
	assert.Equal(t, []float64{0, 1}, EnsureValuesInRange(nil, 0, 1))
}

func TestNormalizeInfinity(t *testing.T) {
	assert.Equal(t, Interval{-math.MaxFloat64, 5}, NormalizeInfinity(Interval{math.Inf(-1), 5}))
	assert.Equal(t, Interval{-math.MaxFloat64, math.MaxFloat64}, NormalizeInfinity(Interval{math.Inf(-1), math.Inf(1)}))
}

func TestCreateScaleRange(t *testing.T) {
	assert := assert.New(t)

	res := CreateScale(AxisOptions{PixelSpan: 500, DataDomain: []float64{0, 100}, IsScalar: true, OuterPadding: 10})
	assert.Equal(Interval{10, 490}, res.Scale.Range())
	assert.Equal(KindQuantitative, res.Kind)
	assert.False(res.UsingDefaultDomain)

	res = CreateScale(AxisOptions{PixelSpan: 500, DataDomain: []float64{0, 100}, IsScalar: true, OuterPadding: 10, IsVertical: true})
	assert.Equal(Interval{490, 10}, res.Scale.Range())

	res = CreateScale(AxisOptions{PixelSpan: 500, DataDomain: []float64{0, 1, 2}, Metadata: &ColumnMetadata{Type: TextType}, IsVertical: true})
	assert.Equal(Interval{0, 500}, res.Scale.Range())
}

func TestCreateScaleDefaultDomain(t *testing.T) {
	var tests = []struct {
		name   string
		opts   AxisOptions
		kind   Kind
		domain []float64
	}{
		{"nil scalar", AxisOptions{PixelSpan: 300, IsScalar: true}, KindQuantitative, []float64{0, 0}},
		{"null bounds", AxisOptions{PixelSpan: 300, IsScalar: true, DataDomain: []float64{math.NaN(), math.NaN()}}, KindQuantitative, []float64{0, 0}},
		{"three bounds", AxisOptions{PixelSpan: 300, IsScalar: true, DataDomain: []float64{1, 2, 3}}, KindQuantitative, []float64{0, 0}},
		{"empty dates", AxisOptions{PixelSpan: 300, IsScalar: true, Metadata: &ColumnMetadata{Type: DateTimeType}}, KindDateTime, []float64{0, 0}},
		{"empty categories", AxisOptions{PixelSpan: 300}, KindOrdinal, []float64{}},
	}

	for _, tt := range tests {
		res := CreateScale(tt.opts)
		assert.True(t, res.UsingDefaultDomain, tt.name)
		assert.Equal(t, tt.kind, res.Kind, tt.name)
		assert.Equal(t, 0, res.BestTickCount, tt.name)
		switch sc := res.Scale.(type) {
		case *OrdinalScale:
			assert.Equal(t, tt.domain, append([]float64{}, sc.Keys()...), tt.name)
		case Continuous:
			d := sc.Domain()
			assert.Equal(t, tt.domain, d[:], tt.name)
		}

		props := CreateAxis(tt.opts)
		assert.Empty(t, props.TickValues, tt.name)
	}
}

func TestCreateScaleTickCountBounds(t *testing.T) {
	assert := assert.New(t)

	res := CreateScale(AxisOptions{PixelSpan: 1000, DataDomain: []float64{0, 100}, IsScalar: true, ForcedTickCount: intPtr(20)})
	assert.Equal(8, res.BestTickCount)

	res = CreateScale(AxisOptions{PixelSpan: 1000, DataDomain: []float64{0, 100}, IsScalar: true, MaxTickCount: 4})
	assert.Equal(4, res.BestTickCount)

	res = CreateScale(AxisOptions{PixelSpan: 1000, DataDomain: []float64{0, 100}, IsScalar: true, ForcedTickCount: intPtr(-2)})
	assert.Equal(0, res.BestTickCount)

	res = CreateScale(AxisOptions{PixelSpan: 1000, DataDomain: []float64{0, 100}, IsScalar: true})
	assert.Equal(8, res.BestTickCount)
	assert.Equal(8, res.LabelCapacity)

	res = CreateScale(AxisOptions{PixelSpan: 100, DataDomain: []float64{0, 100}, IsScalar: true, MinCategoryThickness: 40})
	assert.Equal(3, res.BestTickCount)
	assert.Equal(2, res.LabelCapacity)

	res = CreateScale(AxisOptions{PixelSpan: 1000, DataDomain: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}})
	assert.Equal(8, res.BestTickCount)
}

func TestCreateAxisDeterministic(t *testing.T) {
	opts := AxisOptions{PixelSpan: 1000, DataDomain: []float64{9, 14}, IsScalar: true}

	first := CreateAxis(opts)
	second := CreateAxis(opts)

	assert.Equal(t, 6, first.BestTickCount)
	assert.Equal(t, Values{9, 10, 11, 12, 13, 14}, first.TickValues)
	assert.Equal(t, []string{"9", "10", "11", "12", "13", "14"}, first.FormattedTickValues)
	assert.Equal(t, first.BestTickCount, second.BestTickCount)
	assert.Equal(t, first.TickValues, second.TickValues)
	assert.Equal(t, first.FormattedTickValues, second.FormattedTickValues)
}

func TestQuantitativeTicksMinInterval(t *testing.T) {
	assert := assert.New(t)

	s := NewLinearScale(Interval{0, 10}, Interval{0, 100}, false)
	assert.Equal([]float64{0, 2, 4, 6, 8, 10}, RecommendedTickValuesForAQuantitativeRange(8, s, 0))
	assert.Equal([]float64{0, 8}, RecommendedTickValuesForAQuantitativeRange(8, s, 5))
	assert.Empty(RecommendedTickValuesForAQuantitativeRange(0, s, 0))

	unit := NewLinearScale(Interval{0, 1}, Interval{0, 100}, false)
	assert.Equal([]float64{0, 5}, RecommendedTickValuesForAQuantitativeRange(3, unit, 5))
}

func TestCreateAxisIntegerTicks(t *testing.T) {
	props := CreateAxis(AxisOptions{
		PixelSpan:  1000,
		DataDomain: []float64{0, 1},
		IsScalar:   true,
		Metadata:   &ColumnMetadata{Type: IntegerType},
	})
	assert.Equal(t, Values{0, 1}, props.TickValues)
	assert.Equal(t, []string{"0", "1"}, props.FormattedTickValues)
}

func TestCreateAxisForcedTicks(t *testing.T) {
	props := CreateAxis(AxisOptions{PixelSpan: 1000, DataDomain: []float64{0, 100}, IsScalar: true, ForcedTickCount: intPtr(4)})
	assert.Equal(t, 4, props.BestTickCount)
	assert.Equal(t, Values{0, 50, 100}, props.TickValues)
}

func TestCreateAxisLogScale(t *testing.T) {
	assert := assert.New(t)

	props := CreateAxis(AxisOptions{PixelSpan: 500, DataDomain: []float64{1, 1000}, IsScalar: true, ScaleType: LogScaleType})
	assert.IsType(&LogScale{}, props.Scale)
	assert.True(props.LogScaleEligible)
	assert.Equal(Values{1, 10, 100, 1000}, props.TickValues)
	assert.Equal([]string{"1", "10", "100", "1000"}, props.FormattedTickValues)

	props = CreateAxis(AxisOptions{PixelSpan: 500, DataDomain: []float64{-5, 5}, IsScalar: true, ScaleType: LogScaleType})
	assert.IsType(&LinearScale{}, props.Scale)
	assert.False(props.LogScaleEligible)
}

func TestCreateAxisDisplayUnitsFromInterval(t *testing.T) {
	assert := assert.New(t)

	props := CreateAxis(AxisOptions{
		PixelSpan:                      1000,
		DataDomain:                     []float64{0, 25000},
		IsScalar:                       true,
		Metadata:                       &ColumnMetadata{Type: NumericType},
		UseTickIntervalForDisplayUnits: true,
	})
	assert.Equal(Values{0, 5000, 10000, 15000, 20000, 25000}, props.TickValues)
	assert.Equal([]string{"0K", "5K", "10K", "15K", "20K", "25K"}, props.FormattedTickValues)
	assert.True(props.Formatter.FromInterval)
	assert.Equal(0, props.Formatter.Precision)

	props = CreateAxis(AxisOptions{
		PixelSpan:                      1000,
		DataDomain:                     []float64{0, 25000},
		IsScalar:                       true,
		Metadata:                       &ColumnMetadata{Type: NumericType},
		UseTickIntervalForDisplayUnits: true,
		DisplayUnits:                   1e6,
		Precision:                      intPtr(2),
	})
	assert.Equal("0.01M", props.FormattedTickValues[2])
}

func TestCreateAxisLabelsRoundTrip(t *testing.T) {
	props := CreateAxis(AxisOptions{
		PixelSpan:                      800,
		DataDomain:                     []float64{0, 0.75},
		IsScalar:                       true,
		UseTickIntervalForDisplayUnits: true,
	})
	require.True(t, len(props.TickValues) > 1)
	tolerance := 0.5 * math.Pow(10, -float64(props.Formatter.Precision)) * props.Formatter.Unit.Value
	for i, label := range props.FormattedTickValues {
		v, err := props.Formatter.Parse(label)
		require.NoError(t, err)
		assert.InDelta(t, props.TickValues[i], v, tolerance, label)
	}
}

func TestCreateAxisOrdinal(t *testing.T) {
	assert := assert.New(t)
	names := []string{"a", "b", "c", "d", "e", "f"}

	props := CreateAxis(AxisOptions{
		PixelSpan:  200,
		DataDomain: []float64{0, 1, 2, 3, 4, 5},
		ValueFn:    func(i int) interface{} { return names[i] },
	})
	assert.Equal(KindOrdinal, props.Kind)
	assert.True(props.IsCategoryAxis)
	assert.Equal(3, props.BestTickCount)
	assert.Equal(Values{0, 2, 4}, props.TickValues)
	assert.Equal([]string{"a", "c", "e"}, props.FormattedTickValues)

	ord := props.Scale.(*OrdinalScale)
	assert.InDelta(200/5.8, ord.Step(), 1e-9)
	assert.InDelta(ord.Step()-2*TickLabelPadding, props.LabelMaxWidth, 1e-9)
}

func TestCreateAxisDateTime(t *testing.T) {
	assert := assert.New(t)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	props := CreateAxis(AxisOptions{
		PixelSpan:  1000,
		DataDomain: []float64{ms(start), ms(end)},
		IsScalar:   true,
		Metadata:   &ColumnMetadata{Type: DateTimeType},
	})
	assert.Equal(KindDateTime, props.Kind)
	assert.Equal(Interval{ms(start), ms(end)}, props.Scale.(*LinearScale).Domain())
	assert.Len(props.TickValues, 6)
	assert.Equal(ms(start), props.TickValues[0])
	assert.Equal("Jan 2020", props.FormattedTickValues[0])
	assert.Equal("Mar 2020", props.FormattedTickValues[1])

	day := time.Date(2020, 3, 9, 0, 0, 0, 0, time.UTC)
	props = CreateAxis(AxisOptions{
		PixelSpan:  1000,
		DataDomain: []float64{ms(day), ms(day)},
		IsScalar:   true,
		Metadata:   &ColumnMetadata{Type: DateTimeType},
	})
	assert.Equal(1, props.BestTickCount)
	assert.Equal(Values{ms(day)}, props.TickValues)
	assert.Equal([]string{"Mar 09"}, props.FormattedTickValues)

	assert.Empty(RecommendedTickValuesForADateTimeRange(8, Interval{0, 0}))
}

func TestCategoryThicknessFollowsNice(t *testing.T) {
	props := CreateAxis(AxisOptions{
		PixelSpan:         1000,
		DataDomain:        []float64{0.5, 9.7},
		IsScalar:          true,
		CategoryThickness: 100,
		Metadata:          &ColumnMetadata{Type: NumericType},
	})
	d := props.Scale.(*LinearScale).Domain()
	assert.Equal(t, Interval{0, 10}, d)
	assert.InDelta(t, 100*9.2/10, props.CategoryThickness, 1e-9)
}

func TestMinTickValueInterval(t *testing.T) {
	var tests = []struct {
		format   string
		t        ValueType
		is100Pct bool
		want     float64
	}{
		{"0.00", NumericType, false, 0.01},
		{"0%", NumericType, false, 0.01},
		{"0.0%", NumericType, false, 0.001},
		{"#,0", IntegerType, false, 1},
		{"", NumericType, true, 0.01},
		{"", IntegerType, false, 1},
		{"N2", IntegerType, false, 1},
		{"", NumericType, false, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, MinTickValueInterval(tt.format, tt.t, tt.is100Pct), 1e-15, "%q", tt.format)
	}
}

func TestCategoryValueType(t *testing.T) {
	assert.Equal(t, NumericType, CategoryValueType(nil, true))
	assert.Equal(t, TextType, CategoryValueType(nil, false))
	assert.Equal(t, NumericType, CategoryValueType(&ColumnMetadata{}, true))
	assert.Equal(t, DateTimeType, CategoryValueType(&ColumnMetadata{Type: DateTimeType}, false))
}

func TestAxisPropertiesJSON(t *testing.T) {
	props := CreateAxis(AxisOptions{PixelSpan: 1000, DataDomain: []float64{9, 14}, IsScalar: true})
	props.DataDomain = Values{9, math.NaN()}

	data, err := json.Marshal(props)
	require.NoError(t, err)

	var decoded struct {
		Kind        string    `json:"kind"`
		ScaleDomain []float64 `json:"scaleDomain"`
		TickValues  []float64 `json:"tickValues"`
		DataDomain  Values    `json:"dataDomain"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "quantitative", decoded.Kind)
	assert.Equal(t, []float64{9, 14}, decoded.ScaleDomain)
	assert.Equal(t, []float64{9, 10, 11, 12, 13, 14}, decoded.TickValues)
	assert.Equal(t, 9.0, decoded.DataDomain[0])
	assert.True(t, math.IsNaN(decoded.DataDomain[1]))
}

func TestCreateAxisDateTimeUnboundedDomain(t *testing.T) {
	now := 1.7e12
	var tests = []struct {
		name   string
		domain []float64
		want   Values
	}{
		{"negative infinity", []float64{math.Inf(-1), now}, Values{-math.MaxFloat64, now}},
		{"positive infinity", []float64{0, math.Inf(1)}, Values{0, math.MaxFloat64}},
		{"beyond calendar", []float64{-1e20, 1e20}, Values{-1e20, 1e20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := CreateAxis(AxisOptions{
				PixelSpan:  500,
				DataDomain: tt.domain,
				IsScalar:   true,
				Metadata:   &ColumnMetadata{Type: DateTimeType},
			})
			assert.Equal(t, tt.want, props.TickValues)
			assert.Len(t, props.FormattedTickValues, 2)
			_, err := json.Marshal(props)
			assert.NoError(t, err)
		})
	}
}

func TestCategoryThicknessInfiniteDomain(t *testing.T) {
	props := CreateAxis(AxisOptions{
		PixelSpan:         500,
		DataDomain:        []float64{math.Inf(-1), 5},
		IsScalar:          true,
		CategoryThickness: 10,
	})
	assert.False(t, math.IsInf(props.CategoryThickness, 0))
	assert.False(t, math.IsNaN(props.CategoryThickness))

	_, err := json.Marshal(props)
	assert.NoError(t, err)
}

func TestCreateAxisInvertedDomain(t *testing.T) {
	for _, meta := range []*ColumnMetadata{nil, {Type: IntegerType}} {
		props := CreateAxis(AxisOptions{
			PixelSpan:  500,
			DataDomain: []float64{10, 2},
			IsScalar:   true,
			Metadata:   meta,
		})
		assert.Equal(t, KindQuantitative, props.Kind)
		assert.Equal(t, 0, props.BestTickCount)
		assert.Empty(t, props.TickValues)
		assert.Empty(t, props.FormattedTickValues)
	}
}
