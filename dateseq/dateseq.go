// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package dateseq computes calendar aligned tick sequences for date-time axes.
//
// Values are handled as UTC instants. A sequence always starts at or before the
// requested minimum and ends at or after the requested maximum, callers filter
// it down to the visible range.
package dateseq

import (
	"math"
	"time"
)

type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Millisecond:
		return "millisecond"
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay

	// 1970-01-04 is the first Sunday after the epoch.
	weekOrigin = 3 * msPerDay

	maxSequenceLen = 10000
)

type unitConfig struct {
	unit     Unit
	duration float64 // milliseconds, 0 for calendar units
	origin   float64
	steps    []float64
}

var unitConfigs = map[Unit]unitConfig{
	Millisecond: {unit: Millisecond, duration: 1, steps: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}},
	Second:      {unit: Second, duration: msPerSecond, steps: []float64{1, 2, 5, 10, 15, 30}},
	Minute:      {unit: Minute, duration: msPerMinute, steps: []float64{1, 2, 5, 10, 15, 30}},
	Hour:        {unit: Hour, duration: msPerHour, steps: []float64{1, 2, 3, 6, 12}},
	Day:         {unit: Day, duration: msPerDay, steps: []float64{1, 2, 3, 7, 14}},
	Week:        {unit: Week, duration: msPerWeek, origin: weekOrigin, steps: []float64{1, 2, 4, 8}},
	Month:       {unit: Month, steps: []float64{1, 2, 3, 6, 12}},
	Year:        {unit: Year},
}

// Sequence is a run of calendar aligned instants, Interval units apart.
type Sequence struct {
	Unit     Unit
	Interval float64
	Values   []time.Time
}

// Millis returns the sequence as milliseconds since the epoch.
func (s Sequence) Millis() []float64 {
	ms := make([]float64, len(s.Values))
	for i, t := range s.Values {
		ms[i] = float64(t.UnixMilli())
	}
	return ms
}

// MaxMillis bounds the instants a sequence can be computed for, 100 million
// days either side of the epoch.
const MaxMillis = 8.64e15

// InRange reports whether ms is a finite instant within MaxMillis of the epoch.
func InRange(ms float64) bool {
	return !math.IsNaN(ms) && ms >= -MaxMillis && ms <= MaxMillis
}

// FromMillis converts epoch milliseconds to a UTC time, clamped to
// [-MaxMillis, MaxMillis].
func FromMillis(ms float64) time.Time {
	switch {
	case math.IsNaN(ms):
		ms = 0
	case ms > MaxMillis:
		ms = MaxMillis
	case ms < -MaxMillis:
		ms = -MaxMillis
	}
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// IntervalUnit picks the calendar unit used to label the span between min and
// max with at most maxCount ticks. An empty span guesses the unit from the
// smallest non zero component of min.
func IntervalUnit(min, max time.Time, maxCount int) Unit {
	if maxCount < 2 {
		maxCount = 2
	}
	if max.Before(min) {
		min, max = max, min
	}
	count := float64(maxCount)
	span := float64(max.Sub(min).Milliseconds())

	totalDays := span / msPerDay
	if totalDays > 356 && totalDays >= 30*6*count {
		return Year
	}
	if totalDays > 60 && totalDays > 7*count {
		return Month
	}
	if totalDays > 14 && totalDays > 2*count {
		return Week
	}
	totalHours := span / msPerHour
	if totalDays > 2 && totalHours > 12*count {
		return Day
	}
	if totalHours >= 24 && totalHours >= count {
		return Hour
	}
	totalMinutes := span / msPerMinute
	if totalMinutes > 2 && totalMinutes >= 2*count {
		return Minute
	}
	totalSeconds := span / msPerSecond
	if totalSeconds > 2 && totalSeconds >= 0.8*count {
		return Second
	}
	if span > 0 {
		return Millisecond
	}

	t := min.UTC()
	switch {
	case t.Nanosecond()/int(time.Millisecond) != 0:
		return Millisecond
	case t.Second() != 0:
		return Second
	case t.Minute() != 0:
		return Minute
	case t.Hour() != 0:
		return Hour
	case t.Day() != 1:
		return Day
	case t.Month() != time.January:
		return Month
	}
	return Year
}

// Calculate returns the calendar sequence covering [min, max] with no more than
// expectedCount values inside the range.
func Calculate(min, max time.Time, expectedCount int) Sequence {
	return CalculateUnit(min, max, expectedCount, IntervalUnit(min, max, expectedCount))
}

// CalculateUnit is Calculate with a fixed calendar unit.
func CalculateUnit(min, max time.Time, expectedCount int, unit Unit) Sequence {
	if expectedCount < 2 {
		expectedCount = 2
	}
	if max.Before(min) {
		min, max = max, min
	}
	conf, ok := unitConfigs[unit]
	if !ok {
		conf = unitConfigs[Day]
	}
	switch conf.unit {
	case Month:
		return monthSequence(min, max, expectedCount, conf.steps)
	case Year:
		return yearSequence(min, max, expectedCount)
	}
	return fixedSequence(min, max, expectedCount, conf)
}

func fixedSequence(min, max time.Time, expectedCount int, conf unitConfig) Sequence {
	lo, hi := float64(min.UnixMilli()), float64(max.UnixMilli())
	pick := conf.steps[len(conf.steps)-1]
	for _, s := range conf.steps {
		if countInside(lo-conf.origin, hi-conf.origin, s*conf.duration) <= expectedCount {
			pick = s
			break
		}
	}
	step := pick * conf.duration
	first := conf.origin + math.Floor((lo-conf.origin)/step)*step
	seq := Sequence{Unit: conf.unit, Interval: pick}
	for v := first; len(seq.Values) < maxSequenceLen; v += step {
		seq.Values = append(seq.Values, FromMillis(v))
		if v >= hi {
			break
		}
	}
	return seq
}

func monthSequence(min, max time.Time, expectedCount int, steps []float64) Sequence {
	lo, hi := monthIndex(min), monthIndex(max)
	pick := steps[len(steps)-1]
	for _, s := range steps {
		if countInside(lo, hi, s) <= expectedCount {
			pick = s
			break
		}
	}
	seq := Sequence{Unit: Month, Interval: pick}
	for m := math.Floor(lo/pick) * pick; len(seq.Values) < maxSequenceLen; m += pick {
		year := int(math.Floor(m / 12))
		month := time.Month(int(m)-year*12) + 1
		seq.Values = append(seq.Values, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
		if m >= hi {
			break
		}
	}
	return seq
}

func yearSequence(min, max time.Time, expectedCount int) Sequence {
	lo, hi := yearIndex(min), yearIndex(max)
	var pick float64
	for _, s := range niceSteps(1, 1e6) {
		pick = s
		if countInside(lo, hi, s) <= expectedCount {
			break
		}
	}
	seq := Sequence{Unit: Year, Interval: pick}
	for y := math.Floor(lo/pick) * pick; len(seq.Values) < maxSequenceLen; y += pick {
		seq.Values = append(seq.Values, time.Date(int(y), time.January, 1, 0, 0, 0, 0, time.UTC))
		if y >= hi {
			break
		}
	}
	return seq
}

// monthIndex counts months since year zero, fractional within a month.
func monthIndex(t time.Time) float64 {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	frac := float64(t.Sub(start)) / float64(end.Sub(start))
	return float64(t.Year()*12+int(t.Month())-1) + frac
}

func yearIndex(t time.Time) float64 {
	t = t.UTC()
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return float64(t.Year()) + float64(t.Sub(start))/float64(end.Sub(start))
}

// countInside returns how many multiples of step fall inside [lo, hi].
func countInside(lo, hi, step float64) int {
	if step <= 0 {
		return math.MaxInt32
	}
	n := math.Floor(hi/step) - math.Ceil(lo/step) + 1
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// niceSteps lists 1, 2, 5 multiples of powers of ten in [lo, hi].
func niceSteps(lo, hi float64) []float64 {
	var steps []float64
	for p := lo; p <= hi; p *= 10 {
		for _, m := range []float64{1, 2, 5} {
			if s := p * m; s <= hi {
				steps = append(steps, s)
			}
		}
	}
	return steps
}
