// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package axis

import "math"

const maxRangeValues = 10000

// tickRange returns the first tick, a stop bound and the 1, 2 or 5 power of
// ten step giving about m ticks over d.
func tickRange(d Interval, m int) (start, stop, step float64, ok bool) {
	lo, hi := d.Min(), d.Max()
	span := hi - lo
	if m <= 0 || span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0, 0, 0, false
	}
	step = math.Pow(10, math.Floor(math.Log10(span/float64(m))))
	err := float64(m) / span * step
	switch {
	case err <= .15:
		step *= 10
	case err <= .35:
		step *= 5
	case err <= .75:
		step *= 2
	}
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0, 0, 0, false
	}
	start = math.Ceil(lo/step) * step
	stop = math.Floor(hi/step)*step + step*.5
	return start, stop, step, true
}

func linearTicks(d Interval, m int) []float64 {
	start, stop, step, ok := tickRange(d, m)
	if !ok {
		return nil
	}
	return rangeValues(start, stop, step)
}

// rangeValues lists start, start+step, ... below stop. Values are computed
// on integers scaled by a power of ten to avoid accumulating float error.
func rangeValues(start, stop, step float64) []float64 {
	k := integerScale(math.Abs(step))
	start, stop, step = start*k, stop*k, step*k
	var values []float64
	for i := 0; len(values) < maxRangeValues; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		values = append(values, v/k)
	}
	return values
}

func integerScale(x float64) float64 {
	k := 1.0
	for i := 0; i < 20 && math.Mod(x*k, 1) != 0; i++ {
		k *= 10
	}
	return k
}

// niceLinear rounds the domain outwards to multiples of the tick step, twice
// since the step can change once the domain grew.
func niceLinear(d Interval, m int) Interval {
	for pass := 0; pass < 2; pass++ {
		_, _, step, ok := tickRange(d, m)
		if !ok {
			return d
		}
		if d[1] < d[0] {
			d[0], d[1] = math.Ceil(d[0]/step)*step, math.Floor(d[1]/step)*step
		} else {
			d[0], d[1] = math.Floor(d[0]/step)*step, math.Ceil(d[1]/step)*step
		}
	}
	return d
}
