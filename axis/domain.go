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

// TrueZeroEpsilon is the share of a tick step under which a tick is shown as 0.
const TrueZeroEpsilon = 1e-5

var emptyDomain = Interval{0, 0}

// NormalizeLinearDomain makes a domain usable by a linear scale. NaN bounds
// give [0, 0]; a single value is widened by 20% on each side, asymmetrically
// for negatives, and 0 becomes [0, 1]; a minimum that is a negligible share of
// the span is snapped to 0.
func NormalizeLinearDomain(d Interval) Interval {
	min, max := d[0], d[1]
	switch {
	case math.IsNaN(min) || math.IsNaN(max):
		return emptyDomain
	case min == max:
		if min == 0 {
			return Interval{0, 1}
		}
		if min < 0 {
			min *= 1.2
		} else {
			min *= 0.8
		}
		if max < 0 {
			max *= 0.8
		} else {
			max *= 1.2
		}
	case math.Abs(min) < 0.0001 && min/(max-min) < 0.0001:
		min = 0
	}
	return Interval{min, max}
}

// NormalizeInfinity replaces infinite bounds by the largest finite value of
// the same sign.
func NormalizeInfinity(d Interval) Interval {
	for i, v := range d {
		switch {
		case math.IsInf(v, 1):
			d[i] = math.MaxFloat64
		case math.IsInf(v, -1):
			d[i] = -math.MaxFloat64
		}
	}
	return d
}

// NormalizeInfinityInScale returns s with a finite domain. Ordinal scales are
// returned unchanged.
func NormalizeInfinityInScale(s Scale) Scale {
	switch sc := s.(type) {
	case *LinearScale:
		if d := NormalizeInfinity(sc.Domain()); d != sc.Domain() {
			return sc.WithDomain(d)
		}
	case *LogScale:
		if d := NormalizeInfinity(sc.Domain()); d != sc.Domain() {
			return sc.WithDomain(d)
		}
	}
	return s
}

// EnsureValuesInRange keeps values inside [min, max], or returns the bounds
// when fewer than two survive.
func EnsureValuesInRange(values []float64, min, max float64) []float64 {
	var kept []float64
	for _, v := range values {
		if v >= min && v <= max {
			kept = append(kept, v)
		}
	}
	if len(kept) < 2 {
		return []float64{min, max}
	}
	return kept
}

// IsLogScalePossible reports whether both bounds are strictly on the same side
// of zero. Date-time axes never use a log scale.
func IsLogScalePossible(domain []float64, t ValueType) bool {
	if len(domain) < 2 || t.DateTime {
		return false
	}
	min, max := domain[0], domain[len(domain)-1]
	return (min > 0 && max > 0) || (min < 0 && max < 0)
}

// SnapToZero replaces ticks within epsilon of a tick step from zero by 0.
func SnapToZero(ticks []float64, epsilon float64) []float64 {
	if len(ticks) < 2 {
		return ticks
	}
	closeZero := epsilon * math.Abs(ticks[1]-ticks[0])
	snapped := make([]float64, len(ticks))
	for i, t := range ticks {
		if math.Abs(t) <= closeZero {
			t = 0
		}
		snapped[i] = t
	}
	return snapped
}

// PowerOfTen reports whether |v| is an exact power of ten, with a tolerance on
// the logarithm.
func PowerOfTen(v float64) bool {
	v = math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	exp := math.Ceil(math.Log10(v) - 1e-12)
	return v/math.Pow(10, exp) == 1
}
