// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package format turns axis values into labels: number patterns, display
// units, precision and calendar aware date layouts.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/dateseq"
)

// Options drives Create.
//
// DisplayUnits is 0 for automatic units picked from the magnitude of Value and
// Value2, 1 for no unit, or the size of an explicit unit such as 1000.
// For date-time formatters Value and Value2 are the bounds of the axis in
// epoch milliseconds and TickCount the expected number of labels.
type Options struct {
	Format       string
	Value        float64
	Value2       float64
	DisplayUnits float64
	UnitSystem   string
	Precision    *int
	DateTime     bool
	TickCount    int
	FromInterval bool
}

// Formatter renders values as labels. A nil Formatter falls back to fmt.
type Formatter struct {
	FormatString string       `json:"formatString"`
	Unit         DisplayUnit  `json:"displayUnit"`
	Precision    int          `json:"precision"`
	DateLayout   string       `json:"dateLayout,omitempty"`
	DateUnit     dateseq.Unit `json:"-"`
	// FromInterval is set when the display unit follows the tick spacing.
	FromInterval bool `json:"fromInterval,omitempty"`

	pattern pattern
}

// Create builds a formatter from options.
func Create(o Options) *Formatter {
	f := &Formatter{FormatString: o.Format, Unit: NoUnit, Precision: -1, FromInterval: o.FromInterval}
	if o.Precision != nil {
		f.Precision = ClampPrecision(float64(*o.Precision))
	}

	if o.DateTime {
		f.DateUnit = dateseq.IntervalUnit(dateseq.FromMillis(o.Value), dateseq.FromMillis(o.Value2), o.TickCount)
		f.DateLayout = DateLayout(f.DateUnit)
		if strings.Contains(o.Format, "%") {
			f.DateLayout = o.Format
		}
		return f
	}

	f.pattern = parsePattern(o.Format)
	switch {
	case o.DisplayUnits > 1:
		f.Unit = ExplicitUnit(o.DisplayUnits, o.UnitSystem)
	case o.DisplayUnits == 0 && (o.Value != 0 || o.Value2 != 0):
		f.Unit = FindUnit(math.Max(math.Abs(o.Value), math.Abs(o.Value2)), math.NaN(), o.UnitSystem)
	}
	return f
}

// CreateDefault builds a formatter for format without display units.
func CreateDefault(format string) *Formatter {
	return Create(Options{Format: format, DisplayUnits: 1})
}

// CreateDefaultDate builds a date formatter. format is a strftime layout,
// empty selects DefaultDateLayout.
func CreateDefaultDate(format string) *Formatter {
	f := &Formatter{FormatString: format, Unit: NoUnit, Precision: -1, DateLayout: DefaultDateLayout, DateUnit: dateseq.Day}
	if strings.Contains(format, "%") {
		f.DateLayout = format
	}
	return f
}

func (f *Formatter) IsDate() bool {
	return f != nil && f.DateLayout != ""
}

// Format renders any supported value. Numbers are rendered as dates by date
// formatters, as epoch milliseconds.
func (f *Formatter) Format(v interface{}) string {
	if f == nil {
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case time.Time:
		if f.IsDate() {
			return f.formatTime(x)
		}
		return f.FormatFloat(float64(x.UnixMilli()))
	case float64:
		return f.FormatFloat(x)
	case float32:
		return f.FormatFloat(float64(x))
	case int:
		return f.FormatFloat(float64(x))
	case int32:
		return f.FormatFloat(float64(x))
	case int64:
		return f.FormatFloat(float64(x))
	case uint:
		return f.FormatFloat(float64(x))
	case uint64:
		return f.FormatFloat(float64(x))
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// FormatFloat renders a number, or an epoch millisecond for date formatters.
func (f *Formatter) FormatFloat(v float64) string {
	if f == nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if f.IsDate() {
		return f.formatTime(dateseq.FromMillis(v))
	}

	p := f.pattern
	if p.percent {
		v *= 100
	}
	if f.Unit.Value > 1 {
		v /= f.Unit.Value
	}
	lo, hi := p.minDecimals, p.maxDecimals
	if f.Precision >= 0 {
		lo, hi = f.Precision, f.Precision
	}

	var num string
	switch {
	case p.scientific:
		if hi < 0 {
			hi = 6
		}
		num = renderScientific(v, hi)
	case hi < 0:
		num = renderGeneral(v, p.grouping)
	default:
		num = trimDecimals(renderFixed(v, hi, p.grouping), lo)
	}

	sign := ""
	if p.prefix != "" && strings.HasPrefix(num, "-") {
		sign, num = "-", num[1:]
	}
	return sign + p.prefix + num + f.Unit.Label + p.suffix
}

func (f *Formatter) formatTime(t time.Time) string {
	return formatDate(t, f.DateLayout, f.DateUnit == dateseq.Millisecond)
}

// Parse reads back a label produced by FormatFloat.
func (f *Formatter) Parse(label string) (float64, error) {
	if f.IsDate() {
		return 0, errors.NotSupportedf("parsing date label %q", label)
	}
	p := parsePattern("")
	if f != nil {
		p = f.pattern
	}
	s := strings.TrimSpace(label)
	neg := false
	if p.prefix != "" && strings.HasPrefix(s, "-"+p.prefix) {
		neg, s = true, s[1:]
	}
	s = strings.TrimPrefix(s, p.prefix)
	s = strings.TrimSuffix(s, p.suffix)
	unit := NoUnit
	if f != nil {
		unit = f.Unit
	}
	s = strings.TrimSuffix(s, unit.Label)
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.NotValidf("label %q", label)
	}
	if neg {
		v = -v
	}
	if unit.Value > 1 {
		v *= unit.Value
	}
	if p.percent {
		v /= 100
	}
	return v, nil
}
