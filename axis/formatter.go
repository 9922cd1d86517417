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
	"strings"

	"github.com/signal18/histogram-visual/format"
)

// FormatterOptions are the inputs of CreateFormatter.
type FormatterOptions struct {
	ScaleDomain                    []float64
	DataDomain                     []float64
	Type                           ValueType
	IsScalar                       bool
	FormatString                   string
	BestTickCount                  int
	TickValues                     []float64
	UseTickIntervalForDisplayUnits bool
	DisplayUnits                   float64
	UnitSystem                     string
	Precision                      *int
}

// CreateFormatter builds the label formatter matching the chosen ticks.
func CreateFormatter(o FormatterOptions) *format.Formatter {
	if o.Type.DateTime {
		if !o.IsScalar {
			return format.CreateDefaultDate(o.FormatString)
		}
		var value, value2 float64
		if len(o.ScaleDomain) > 0 {
			value, value2 = o.ScaleDomain[0], o.ScaleDomain[len(o.ScaleDomain)-1]
		}
		// a single instant is labelled from the data, not the widened domain
		if o.BestTickCount == 1 && len(o.DataDomain) > 0 {
			value, value2 = o.DataDomain[0], o.DataDomain[0]
		}
		return format.Create(format.Options{
			Format:    o.FormatString,
			Value:     value,
			Value2:    value2,
			DateTime:  true,
			TickCount: o.BestTickCount,
		})
	}

	if o.UseTickIntervalForDisplayUnits && o.IsScalar && len(o.TickValues) > 1 {
		opts := format.Options{
			Format:       o.FormatString,
			Value:        o.TickValues[1] - o.TickValues[0],
			Value2:       0,
			DisplayUnits: o.DisplayUnits,
			UnitSystem:   o.UnitSystem,
			FromInterval: true,
		}
		if o.DisplayUnits > 1 {
			opts.Value = o.DisplayUnits
		}
		f := format.Create(opts)
		if o.Precision != nil {
			f.Precision = format.ClampPrecision(float64(*o.Precision))
		} else {
			f.Precision = format.CalculateAxisPrecision(o.TickValues[0], o.TickValues[1], f.Unit, o.FormatString)
		}
		return f
	}

	return format.CreateDefault(o.FormatString)
}

// MinTickValueInterval is the smallest tick spacing the format can tell apart.
func MinTickValueInterval(formatString string, t ValueType, is100Pct bool) float64 {
	switch {
	case format.IsCustomFormat(formatString):
		precision := format.CustomPrecision(formatString)
		if strings.Contains(formatString, "%") {
			precision += 2
		}
		return math.Pow(10, -float64(precision))
	case is100Pct:
		return 0.01
	case t.Integer:
		return 1
	}
	return 0
}
