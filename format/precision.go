// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package format

import "math"

const MaxPrecision = 17

// ClampPrecision bounds a decimal count to [0, MaxPrecision]. NaN gives 0.
func ClampPrecision(p float64) int {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > MaxPrecision:
		return MaxPrecision
	}
	return int(p)
}

// CalculateAxisPrecision returns the number of decimals needed to tell apart two
// consecutive ticks once scaled by unit and by the percent sign of format.
func CalculateAxisPrecision(tick0, tick1 float64, unit DisplayUnit, format string) int {
	interval := math.Abs(tick1 - tick0)
	if IsPercentFormat(format) {
		interval *= 100
	}
	if unit.Value > 1 {
		interval /= unit.Value
	}
	if interval == 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return 0
	}

	p := -math.Floor(math.Log10(interval))
	if p < 0 {
		p = 0
	}
	for p < MaxPrecision && !nearlyInteger(interval*math.Pow(10, p)) {
		p++
	}
	return ClampPrecision(p)
}

func nearlyInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) <= 1e-9*math.Max(1, math.Abs(x))
}
