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
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/signal18/histogram-visual/format"
	log "github.com/sirupsen/logrus"
)

const (
	TickLabelPadding       = 2
	ScalarTickLabelPadding = 3
)

// AxisProperties is everything needed to draw one axis.
type AxisProperties struct {
	Scale               Scale             `json:"-"`
	Kind                Kind              `json:"kind"`
	ScaleDomain         Values            `json:"scaleDomain"`
	ScaleRange          Interval          `json:"scaleRange"`
	BestTickCount       int               `json:"bestTickCount"`
	LabelCapacity       int               `json:"labelCapacity"`
	UsingDefaultDomain  bool              `json:"usingDefaultDomain"`
	TickValues          Values            `json:"tickValues"`
	FormattedTickValues []string          `json:"formattedTickValues"`
	Formatter           *format.Formatter `json:"formatter"`
	LogScaleEligible    bool              `json:"logScaleEligible"`
	AxisType            ValueType         `json:"axisType"`
	IsCategoryAxis      bool              `json:"isCategoryAxis"`
	CategoryThickness   float64           `json:"categoryThickness"`
	OuterPadding        float64           `json:"outerPadding"`
	LabelMaxWidth       float64           `json:"labelMaxWidth"`
	DataDomain          Values            `json:"dataDomain"`
}

// CreateAxis builds the scale of o, its ticks and their labels.
func CreateAxis(o AxisOptions) AxisProperties {
	res := CreateScale(o)
	dataType := CategoryValueType(o.Metadata, o.IsScalar)
	props := AxisProperties{
		Scale:              res.Scale,
		Kind:               res.Kind,
		ScaleRange:         res.Scale.Range(),
		BestTickCount:      res.BestTickCount,
		LabelCapacity:      res.LabelCapacity,
		UsingDefaultDomain: res.UsingDefaultDomain,
		LogScaleEligible:   IsLogScalePossible(o.DataDomain, dataType),
		AxisType:           dataType,
		IsCategoryAxis:     !o.IsScalar,
		CategoryThickness:  o.CategoryThickness,
		OuterPadding:       o.OuterPadding,
		DataDomain:         o.DataDomain,
	}

	switch sc := res.Scale.(type) {
	case *OrdinalScale:
		props.ScaleDomain = sc.Keys()
	case Continuous:
		d := sc.Domain()
		props.ScaleDomain = d[:]
	}

	if o.IsScalar && res.BestTickCount == 1 && len(o.DataDomain) > 0 && !res.UsingDefaultDomain {
		props.TickValues = Values{o.DataDomain[0]}
	} else {
		var minInterval float64
		if o.IsScalar {
			minInterval = MinTickValueInterval(o.FormatString, dataType, o.Is100Pct)
		}
		props.TickValues = RecommendedTickValues(res.BestTickCount, res.Scale, dataType, o.IsScalar, minInterval)
	}

	if _, isLog := res.Scale.(*LogScale); isLog && o.IsScalar && props.LogScaleEligible {
		kept := Values{}
		for _, v := range props.TickValues {
			if PowerOfTen(v) {
				kept = append(kept, v)
			}
		}
		props.TickValues = kept
	}

	// nice rounding widened the domain, bands shrink accordingly
	if cont, ok := res.Scale.(Continuous); ok && o.IsScalar && o.CategoryThickness > 0 && len(o.DataDomain) > 1 {
		data := NormalizeInfinity(Interval{o.DataDomain[0], o.DataDomain[len(o.DataDomain)-1]})
		oldSpan := data[1] - data[0]
		newSpan := cont.Domain()[1] - cont.Domain()[0]
		if oldSpan > 0 && newSpan > 0 && !math.IsInf(oldSpan, 0) && !math.IsInf(newSpan, 0) {
			props.CategoryThickness = o.CategoryThickness * (oldSpan / newSpan)
		}
	}

	props.Formatter = CreateFormatter(FormatterOptions{
		ScaleDomain:                    props.ScaleDomain,
		DataDomain:                     o.DataDomain,
		Type:                           dataType,
		IsScalar:                       o.IsScalar,
		FormatString:                   o.FormatString,
		BestTickCount:                  res.BestTickCount,
		TickValues:                     props.TickValues,
		UseTickIntervalForDisplayUnits: o.UseTickIntervalForDisplayUnits,
		DisplayUnits:                   o.DisplayUnits,
		UnitSystem:                     o.UnitSystem,
		Precision:                      o.Precision,
	})

	props.FormattedTickValues = make([]string, len(props.TickValues))
	for i, tick := range props.TickValues {
		var value interface{} = tick
		if !o.IsScalar && o.ValueFn != nil {
			value = o.ValueFn(ordinalIndex(res.Scale, tick))
		}
		props.FormattedTickValues[i] = props.Formatter.Format(value)
	}

	props.LabelMaxWidth = labelMaxWidth(o, props)
	log.WithFields(log.Fields{
		"kind":  props.Kind,
		"ticks": len(props.TickValues),
		"best":  props.BestTickCount,
	}).Debug("Axis created")
	return props
}

// ordinalIndex returns the position of key in an ordinal scale, or the key
// itself for other scales.
func ordinalIndex(s Scale, key float64) int {
	if ord, ok := s.(*OrdinalScale); ok {
		if i, ok := ord.index[key]; ok {
			return i
		}
	}
	return int(key)
}

func labelMaxWidth(o AxisOptions, p AxisProperties) float64 {
	switch {
	case o.IsScalar && len(p.TickValues) > 1:
		w := math.Abs(p.Scale.Map(p.TickValues[1])-p.Scale.Map(p.TickValues[0])) - 2*ScalarTickLabelPadding
		return math.Max(1, w)
	case !o.IsScalar && p.CategoryThickness > 0:
		return math.Max(1, p.CategoryThickness-2*TickLabelPadding)
	case !o.IsScalar:
		if ord, ok := p.Scale.(*OrdinalScale); ok && ord.Step() > 0 {
			return math.Max(1, ord.Step()-2*TickLabelPadding)
		}
	}
	return math.Max(1, o.PixelSpan-2*o.OuterPadding)
}

// Values is a list of numbers whose NaN and infinite entries encode as JSON
// null.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}
	out := make(Values, len(raw))
	for i, f := range raw {
		out[i] = math.NaN()
		if f != nil {
			out[i] = *f
		}
	}
	*v = out
	return nil
}
