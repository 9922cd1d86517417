// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package axis

import "math"

// Interval is a [start, end] pair. Ranges may be reversed, domains are not.
type Interval [2]float64

func (i Interval) Span() float64 {
	return math.Abs(i[1] - i[0])
}

func (i Interval) Min() float64 {
	return math.Min(i[0], i[1])
}

func (i Interval) Max() float64 {
	return math.Max(i[0], i[1])
}

func (i Interval) Reverse() Interval {
	return Interval{i[1], i[0]}
}

// Scale maps domain values to pixels.
type Scale interface {
	Range() Interval
	Map(x float64) float64
}

// Inverter maps pixels back to domain values.
type Inverter interface {
	Invert(px float64) float64
}

// Ticker suggests about count round values over the domain.
type Ticker interface {
	Ticks(count int) []float64
}

// Continuous scales have a numeric [min, max] domain.
type Continuous interface {
	Scale
	Inverter
	Ticker
	Domain() Interval
}

// LinearScale is an affine map from a numeric domain to a pixel range.
type LinearScale struct {
	domain Interval
	rng    Interval
	clamp  bool
}

func NewLinearScale(domain, rng Interval, clamp bool) *LinearScale {
	return &LinearScale{domain: domain, rng: rng, clamp: clamp}
}

func (s *LinearScale) Domain() Interval { return s.domain }
func (s *LinearScale) Range() Interval  { return s.rng }
func (s *LinearScale) Clamped() bool    { return s.clamp }

func (s *LinearScale) Map(x float64) float64 {
	return interpolate(s.rng, uninterpolate(s.domain, x, s.clamp))
}

func (s *LinearScale) Invert(px float64) float64 {
	return interpolate(s.domain, uninterpolate(s.rng, px, s.clamp))
}

func (s *LinearScale) Ticks(count int) []float64 {
	return linearTicks(s.domain, count)
}

// Nice extends the domain to round values for about count ticks.
func (s *LinearScale) Nice(count int) *LinearScale {
	return &LinearScale{domain: niceLinear(s.domain, count), rng: s.rng, clamp: s.clamp}
}

func (s *LinearScale) WithDomain(domain Interval) *LinearScale {
	return &LinearScale{domain: domain, rng: s.rng, clamp: s.clamp}
}

func (s *LinearScale) WithRange(rng Interval) *LinearScale {
	return &LinearScale{domain: s.domain, rng: rng, clamp: s.clamp}
}

// LogScale is a base 10 logarithmic scale. Its domain must not cross zero,
// values outside the domain are clamped.
type LogScale struct {
	domain   Interval
	rng      Interval
	positive bool
}

func NewLogScale(domain, rng Interval) *LogScale {
	return &LogScale{domain: domain, rng: rng, positive: domain[0] >= 0}
}

func (s *LogScale) Domain() Interval { return s.domain }
func (s *LogScale) Range() Interval  { return s.rng }

func (s *LogScale) log(x float64) float64 {
	if s.positive {
		return math.Log10(math.Max(x, 0))
	}
	return -math.Log10(math.Max(-x, 0))
}

func (s *LogScale) pow(x float64) float64 {
	if s.positive {
		return math.Pow(10, x)
	}
	return -math.Pow(10, -x)
}

func (s *LogScale) logDomain() Interval {
	return Interval{s.log(s.domain[0]), s.log(s.domain[1])}
}

func (s *LogScale) Map(x float64) float64 {
	return interpolate(s.rng, uninterpolate(s.logDomain(), s.log(x), true))
}

func (s *LogScale) Invert(px float64) float64 {
	return s.pow(interpolate(s.logDomain(), uninterpolate(s.rng, px, true)))
}

// Ticks lists 1 to 9 multiples of each power of ten in the domain, count is
// ignored.
func (s *LogScale) Ticks(count int) []float64 {
	u, v := s.domain.Min(), s.domain.Max()
	i, j := math.Floor(s.log(u)), math.Ceil(s.log(v))
	if math.IsNaN(j-i) || math.IsInf(j-i, 0) {
		return nil
	}
	var ticks []float64
	if s.positive {
		for ; i < j; i++ {
			for k := 1.0; k < 10; k++ {
				ticks = append(ticks, s.pow(i)*k)
			}
		}
		ticks = append(ticks, s.pow(i))
	} else {
		ticks = append(ticks, s.pow(i))
		for i < j {
			i++
			for k := 9.0; k > 0; k-- {
				ticks = append(ticks, s.pow(i)*k)
			}
		}
	}
	lo, hi := 0, len(ticks)
	for lo < hi && ticks[lo] < u {
		lo++
	}
	for hi > lo && ticks[hi-1] > v {
		hi--
	}
	return ticks[lo:hi]
}

// Nice extends the domain to the enclosing powers of ten.
func (s *LogScale) Nice() *LogScale {
	d := s.logDomain()
	if d[1] < d[0] {
		d[0], d[1] = math.Ceil(d[0]), math.Floor(d[1])
	} else {
		d[0], d[1] = math.Floor(d[0]), math.Ceil(d[1])
	}
	return &LogScale{domain: Interval{s.pow(d[0]), s.pow(d[1])}, rng: s.rng, positive: s.positive}
}

func (s *LogScale) WithDomain(domain Interval) *LogScale {
	return NewLogScale(domain, s.rng)
}

func (s *LogScale) WithRange(rng Interval) *LogScale {
	return &LogScale{domain: s.domain, rng: rng, positive: s.positive}
}

// OrdinalScale places categories in equal bands across the range.
type OrdinalScale struct {
	keys  []float64
	index map[float64]int
	rng   Interval
	start float64
	step  float64
	band  float64
}

// NewOrdinalScale lays keys out over [0, span]. Padding ratios are fractions
// of one band step.
func NewOrdinalScale(keys []float64, span, outerPaddingRatio, innerPaddingRatio float64) *OrdinalScale {
	s := &OrdinalScale{
		keys:  append([]float64(nil), keys...),
		index: make(map[float64]int, len(keys)),
		rng:   Interval{0, span},
	}
	for i, k := range s.keys {
		if _, ok := s.index[k]; !ok {
			s.index[k] = i
		}
	}
	if n := float64(len(keys)); n > 0 {
		s.step = span / (n - innerPaddingRatio + 2*outerPaddingRatio)
		s.start = s.step * outerPaddingRatio
		s.band = s.step * (1 - innerPaddingRatio)
	}
	return s
}

func (s *OrdinalScale) Range() Interval { return s.rng }
func (s *OrdinalScale) Keys() []float64 { return s.keys }
func (s *OrdinalScale) Band() float64   { return s.band }
func (s *OrdinalScale) Step() float64   { return s.step }

// Map returns the start of the band of key, NaN for unknown keys.
func (s *OrdinalScale) Map(key float64) float64 {
	i, ok := s.index[key]
	if !ok {
		return math.NaN()
	}
	return s.MapIndex(i)
}

func (s *OrdinalScale) MapIndex(i int) float64 {
	return s.start + float64(i)*s.step
}

// BandAt returns the key of the band containing px. Ordinal scales are not
// Inverters, pixels only resolve to a whole band.
func (s *OrdinalScale) BandAt(px float64) float64 {
	if len(s.keys) == 0 || s.step == 0 {
		return math.NaN()
	}
	i := int(math.Floor((px - s.start) / s.step))
	if i < 0 {
		i = 0
	}
	if i >= len(s.keys) {
		i = len(s.keys) - 1
	}
	return s.keys[i]
}

// uninterpolate returns the position of x in d as a [0, 1] ratio. An empty
// domain maps everything to its start.
func uninterpolate(d Interval, x float64, clamp bool) float64 {
	w := d[1] - d[0]
	if w == 0 {
		return 0
	}
	if math.IsInf(w, 0) && !math.IsInf(d[0], 0) && !math.IsInf(d[1], 0) {
		return uninterpolate(Interval{d[0] / 2, d[1] / 2}, x/2, clamp)
	}
	t := (x - d[0]) / w
	if clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return t
}

func interpolate(r Interval, t float64) float64 {
	return r[0] + (r[1]-r[0])*t
}
