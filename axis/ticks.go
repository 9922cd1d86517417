// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package axis

import (
	"math"

	"github.com/signal18/histogram-visual/dateseq"
)

// RecommendedTickValues picks at most about maxTicks tick values for scale.
func RecommendedTickValues(maxTicks int, scale Scale, t ValueType, isScalar bool, minTickInterval float64) []float64 {
	if ord, ok := scale.(*OrdinalScale); ok {
		return RecommendedTickValuesForAnOrdinalRange(maxTicks, ord.Keys())
	}
	cont, ok := scale.(Continuous)
	if !ok {
		return nil
	}
	switch {
	case !isScalar:
		d := cont.Domain()
		return RecommendedTickValuesForAnOrdinalRange(maxTicks, d[:])
	case t.DateTime:
		return RecommendedTickValuesForADateTimeRange(maxTicks, cont.Domain())
	}
	return RecommendedTickValuesForAQuantitativeRange(maxTicks, cont, minTickInterval)
}

// RecommendedTickValuesForAnOrdinalRange keeps every ceil(n/maxTicks)-th label
// starting with the first one.
func RecommendedTickValuesForAnOrdinalRange[T any](maxTicks int, labels []T) []T {
	if maxTicks <= 0 {
		return []T{}
	}
	if maxTicks >= len(labels) {
		return labels
	}
	step := int(math.Ceil(float64(len(labels)) / float64(maxTicks)))
	ticks := make([]T, 0, maxTicks)
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, labels[i])
	}
	return ticks
}

// RecommendedTickValuesForADateTimeRange returns calendar aligned ticks, in
// epoch milliseconds, inside domain. Bounds no calendar can hold only get
// themselves as ticks.
func RecommendedTickValuesForADateTimeRange(maxTicks int, domain Interval) []float64 {
	if domain == emptyDomain {
		return []float64{}
	}
	if !dateseq.InRange(domain[0]) || !dateseq.InRange(domain[1]) {
		return []float64{domain[0], domain[1]}
	}
	seq := dateseq.Calculate(dateseq.FromMillis(domain[0]), dateseq.FromMillis(domain[1]), maxTicks)
	return EnsureValuesInRange(seq.Millis(), domain[0], domain[1])
}

// RecommendedTickValuesForAQuantitativeRange asks the scale for nice ticks and
// thins them until consecutive ticks are at least minInterval apart.
func RecommendedTickValuesForAQuantitativeRange(maxTicks int, scale Ticker, minInterval float64) []float64 {
	if maxTicks <= 0 {
		return []float64{}
	}
	ticks := scale.Ticks(maxTicks)
	if len(ticks) > maxTicks && maxTicks > 1 {
		ticks = scale.Ticks(maxTicks - 1)
	}
	if len(ticks) < MinTickCount {
		ticks = scale.Ticks(maxTicks + 1)
	}
	ticks = SnapToZero(ticks, TrueZeroEpsilon)

	if minInterval > 0 && len(ticks) > 1 {
		interval := ticks[1] - ticks[0]
		for interval > 0 && interval < minInterval {
			// removing at i then moving on drops every other tick
			for i := 1; i < len(ticks); i++ {
				ticks = append(ticks[:i], ticks[i+1:]...)
			}
			interval *= 2
		}
		if len(ticks) == 1 {
			ticks = append(ticks, ticks[0]+minInterval)
		}
	}
	if ticks == nil {
		ticks = []float64{}
	}
	return ticks
}
