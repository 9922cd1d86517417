// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package histogram groups raw values into uniform bins.
package histogram

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Options struct {
	Bins      int  `json:"bins"`
	Rule      Rule `json:"rule"`
	Frequency bool `json:"frequency"`
}

// Bin covers [X, X+DX). The last bin also holds the maximum.
type Bin struct {
	X     float64        `json:"x"`
	DX    float64        `json:"dx"`
	Y     float64        `json:"y"`
	Count int            `json:"count"`
	Rows  *bitset.BitSet `json:"-"`
}

// Contains reports whether input row i fell into the bin.
func (b Bin) Contains(row int) bool {
	return b.Rows != nil && row >= 0 && b.Rows.Test(uint(row))
}

// Compute bins values. NaN and infinite values are skipped but keep their
// row index. Y is the count with Frequency, the share of counted values
// otherwise.
func Compute(values []float64, opts Options) []Bin {
	rows := make([]uint, 0, len(values))
	data := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rows = append(rows, uint(i))
		data = append(data, v)
	}
	if skipped := len(values) - len(data); skipped > 0 {
		log.WithField("skipped", skipped).Debug("Ignoring non finite values")
	}
	if len(data) == 0 {
		return []Bin{}
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	total := float64(len(data))

	if lo == hi {
		b := Bin{X: lo, DX: 1, Count: len(data), Rows: bitset.New(uint(len(values)))}
		for _, r := range rows {
			b.Rows.Set(r)
		}
		b.Y = height(b.Count, total, opts.Frequency)
		return []Bin{b}
	}

	count := opts.Bins
	if count <= 0 {
		count = BinCount(sorted, opts.Rule)
	}
	count = clampBins(count)

	dividers := make([]float64, count+1)
	if math.IsInf(hi-lo, 0) {
		// the span itself overflows, step from the scaled bounds instead
		step := hi/float64(count) - lo/float64(count)
		for i := range dividers {
			dividers[i] = lo + float64(i)*step
		}
	} else {
		floats.Span(dividers, lo, hi)
	}
	// stat.Histogram excludes the upper divider
	dividers[count] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	bins := make([]Bin, count)
	for i := range bins {
		bins[i] = Bin{
			X:     dividers[i],
			DX:    dividers[i+1] - dividers[i],
			Count: int(counts[i]),
			Rows:  bitset.New(uint(len(values))),
		}
		bins[i].Y = height(bins[i].Count, total, opts.Frequency)
	}
	bins[count-1].DX = hi - bins[count-1].X

	for j, v := range data {
		i := sort.Search(len(dividers), func(k int) bool { return dividers[k] > v }) - 1
		if i >= count {
			i = count - 1
		}
		if i < 0 {
			i = 0
		}
		bins[i].Rows.Set(rows[j])
	}

	log.WithFields(log.Fields{"bins": count, "values": len(data)}).Debug("Histogram computed")
	return bins
}

func height(count int, total float64, frequency bool) float64 {
	if frequency {
		return float64(count)
	}
	return float64(count) / total
}
