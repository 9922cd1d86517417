// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package visual assembles the bins and both axes of a histogram.
package visual

import (
	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/axis"
	"github.com/signal18/histogram-visual/config"
	"github.com/signal18/histogram-visual/histogram"
	log "github.com/sirupsen/logrus"
)

// RelativeFormat labels the y axis when bins hold shares instead of counts.
const RelativeFormat = "0.0%"

type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

var DefaultMargin = Margin{Top: 10, Right: 20, Bottom: 40, Left: 50}

// DataLabel is the text drawn above one bin, positioned in plot pixels.
type DataLabel struct {
	Bin  int     `json:"bin"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

type Model struct {
	Width      float64              `json:"width"`
	Height     float64              `json:"height"`
	Margin     Margin               `json:"margin"`
	Bins       []histogram.Bin      `json:"bins"`
	XAxis      *axis.AxisProperties `json:"xAxis,omitempty"`
	YAxis      *axis.AxisProperties `json:"yAxis,omitempty"`
	DataLabels []DataLabel          `json:"dataLabels"`
}

// PlotWidth is the horizontal span left to the bars.
func (m *Model) PlotWidth() float64 {
	return m.Width - m.Margin.Left - m.Margin.Right
}

// PlotHeight is the vertical span left to the bars.
func (m *Model) PlotHeight() float64 {
	return m.Height - m.Margin.Top - m.Margin.Bottom
}

// Build bins values and computes both axes for conf. Hidden axes are
// computed anyway since data labels and bar positions depend on them.
func Build(values []float64, conf config.Config) (*Model, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	m := &Model{Width: conf.Width, Height: conf.Height, Margin: DefaultMargin}
	if m.PlotWidth() <= 0 || m.PlotHeight() <= 0 {
		return nil, errors.NotValidf("plot area %vx%v", m.PlotWidth(), m.PlotHeight())
	}

	rule, err := histogram.ParseRule(conf.BinRule)
	if err != nil {
		return nil, errors.Trace(err)
	}
	m.Bins = histogram.Compute(values, histogram.Options{
		Bins:      conf.Bins,
		Rule:      rule,
		Frequency: conf.Frequency,
	})

	x := xAxis(m, conf)
	y := yAxis(m, conf)
	if conf.XAxisShow {
		m.XAxis = &x
	}
	if conf.YAxisShow {
		m.YAxis = &y
	}

	m.DataLabels = []DataLabel{}
	for i, b := range m.Bins {
		if b.Count == 0 {
			continue
		}
		m.DataLabels = append(m.DataLabels, DataLabel{
			Bin:  i,
			X:    x.Scale.Map(b.X + b.DX/2),
			Y:    y.Scale.Map(b.Y),
			Text: y.Formatter.Format(b.Y),
		})
	}

	log.WithFields(log.Fields{
		"bins":   len(m.Bins),
		"xticks": len(x.TickValues),
		"yticks": len(y.TickValues),
	}).Debug("Histogram visual built")
	return m, nil
}

func xAxis(m *Model, conf config.Config) axis.AxisProperties {
	a := conf.XAxis()
	var domain []float64
	var thickness float64
	if len(m.Bins) > 0 {
		lo, hi := histogram.Extent(m.Bins)
		domain = []float64{lo, hi}
		thickness = m.PlotWidth() / float64(len(m.Bins))
	}
	domain = override(domain, a)
	meta := &axis.ColumnMetadata{Name: conf.Column, Type: axis.NumericType, Format: conf.FormatString}

	return axis.CreateAxis(axis.AxisOptions{
		PixelSpan:                      m.PlotWidth(),
		DataDomain:                     domain,
		Metadata:                       meta,
		FormatString:                   conf.FormatString,
		OuterPadding:                   conf.OuterPadding,
		InnerPaddingRatio:              conf.InnerPadding,
		IsScalar:                       true,
		CategoryThickness:              thickness,
		MinCategoryThickness:           conf.MinCategoryThickness,
		ShouldClamp:                    a.Start != nil || a.End != nil,
		ScaleType:                      a.Scale,
		DisplayUnits:                   a.DisplayUnits,
		UnitSystem:                     conf.UnitSystem,
		Precision:                      a.Precision,
		UseTickIntervalForDisplayUnits: true,
	})
}

func yAxis(m *Model, conf config.Config) axis.AxisProperties {
	a := conf.YAxis()
	meta := &axis.ColumnMetadata{Name: "count", Type: axis.IntegerType}
	if !conf.Frequency {
		meta = &axis.ColumnMetadata{Name: "share", Type: axis.PercentType, Format: RelativeFormat}
	}
	domain := override([]float64{0, histogram.MaxY(m.Bins)}, a)

	return axis.CreateAxis(axis.AxisOptions{
		PixelSpan:                      m.PlotHeight(),
		DataDomain:                     domain,
		Metadata:                       meta,
		FormatString:                   meta.Format,
		IsScalar:                       true,
		IsVertical:                     true,
		ShouldClamp:                    a.Start != nil || a.End != nil,
		ScaleType:                      a.Scale,
		DisplayUnits:                   a.DisplayUnits,
		UnitSystem:                     conf.UnitSystem,
		Precision:                      a.Precision,
		UseTickIntervalForDisplayUnits: true,
	})
}

func override(domain []float64, a config.Axis) []float64 {
	if a.Start == nil && a.End == nil {
		return domain
	}
	if len(domain) < 2 {
		if a.Start == nil || a.End == nil {
			return domain
		}
		return []float64{*a.Start, *a.End}
	}
	out := []float64{domain[0], domain[len(domain)-1]}
	if a.Start != nil {
		out[0] = *a.Start
	}
	if a.End != nil {
		out[1] = *a.End
	}
	return out
}
