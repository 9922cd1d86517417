// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package axis builds axis scales, picks their tick values and the formatter
// used to label them.
package axis

import (
	"math"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultBestTickCount        = 3
	MinTickCount                = 2
	DefaultInnerPaddingRatio    = 0.2
	DefaultMinCategoryThickness = 20
)

// ScaleResult is the output of CreateScale.
type ScaleResult struct {
	Scale              Scale
	Kind               Kind
	BestTickCount      int
	UsingDefaultDomain bool
	// LabelCapacity is how many labels fit the span, a rendering hint only.
	LabelCapacity int
}

// RecommendedTickCountForXAxis returns the tick budget of a horizontal axis.
func RecommendedTickCountForXAxis(span float64) int {
	switch {
	case span < 300:
		return 3
	case span < 500:
		return 5
	}
	return 8
}

// RecommendedTickCountForYAxis returns the tick budget of a vertical axis.
func RecommendedTickCountForYAxis(span float64) int {
	switch {
	case span < 150:
		return 3
	case span < 300:
		return 5
	}
	return 8
}

func maxTickCount(o AxisOptions) int {
	n := RecommendedTickCountForXAxis(o.PixelSpan)
	if o.IsVertical {
		n = RecommendedTickCountForYAxis(o.PixelSpan)
	}
	if o.MaxTickCount > 0 && o.MaxTickCount < n {
		n = o.MaxTickCount
	}
	return n
}

// CategoryValueType returns the type of the column, numeric for scalar axes
// without metadata and text otherwise.
func CategoryValueType(meta *ColumnMetadata, isScalar bool) ValueType {
	if meta != nil && !meta.Type.IsZero() {
		return meta.Type
	}
	if isScalar {
		return NumericType
	}
	return TextType
}

func kindOf(t ValueType, isScalar bool) Kind {
	switch {
	case isScalar && t.DateTime:
		return KindDateTime
	case isScalar && (t.Numeric || t.Integer || t.Percentage):
		return KindQuantitative
	}
	return KindOrdinal
}

// BestNumberOfTicks returns how many ticks to ask for over [min, max].
// Integer data over a small span gets one tick per unit.
func BestNumberOfTicks(min, max float64, metas []*ColumnMetadata, maxTickCount int, isDateTime bool) int {
	switch {
	case math.IsNaN(min) || math.IsNaN(max):
		return DefaultBestTickCount
	case maxTickCount <= 1 || (max <= 1 && min >= -1):
		return maxTickCount
	case min == max:
		if isDateTime {
			return 1
		}
		return DefaultBestTickCount
	case HasNonIntegerData(metas):
		return maxTickCount
	}
	return int(math.Min(math.Floor(max-min+1), float64(maxTickCount)))
}

// HasNonIntegerData reports whether a typed column is not integer.
func HasNonIntegerData(metas []*ColumnMetadata) bool {
	for _, m := range metas {
		if m != nil && !m.Type.IsZero() && !m.Type.Integer {
			return true
		}
	}
	return false
}

func isDefaultDomain(domain []float64, isScalar bool) bool {
	switch {
	case len(domain) == 0:
		return true
	case len(domain) == 2 && math.IsNaN(domain[0]) && math.IsNaN(domain[1]):
		return true
	case isScalar && len(domain) != 2:
		return true
	}
	return false
}

// CreateScale maps the data domain of o onto its pixel span. Missing or
// invalid domains fall back to an empty one and never fail.
func CreateScale(o AxisOptions) ScaleResult {
	dataType := CategoryValueType(o.Metadata, o.IsScalar)
	maxTicks := maxTickCount(o)
	res := ScaleResult{Kind: kindOf(dataType, o.IsScalar)}

	if isDefaultDomain(o.DataDomain, o.IsScalar) {
		res.UsingDefaultDomain = true
		if dataType.IsOrdinal() && !dataType.DateTime {
			res.Kind = KindOrdinal
			res.Scale = NewOrdinalScale(nil, o.PixelSpan, outerPaddingRatio(o), o.innerPaddingRatio())
		} else {
			if res.Kind == KindOrdinal {
				res.Kind = KindQuantitative
			}
			res.Scale = createNumericalScale(o.ScaleType, o.PixelSpan, emptyDomain, o.OuterPadding, 0, o.ShouldClamp)
		}
		log.WithFields(log.Fields{"span": o.PixelSpan, "kind": res.Kind}).Debug("Axis domain missing, using default domain")
		return res
	}

	var scaleDomain Interval
	if o.IsScalar {
		first, last := o.DataDomain[0], o.DataDomain[len(o.DataDomain)-1]
		switch {
		case o.ForcedTickCount != nil && maxTicks != 0:
			res.BestTickCount = *o.ForcedTickCount
		case o.ForcedTickCount != nil:
			res.BestTickCount = 0
		default:
			res.BestTickCount = BestNumberOfTicks(first, last, []*ColumnMetadata{o.Metadata}, maxTicks, dataType.DateTime)
		}
		scaleDomain = NormalizeLinearDomain(Interval{first, last})
	}

	switch res.Kind {
	case KindQuantitative:
		res.Scale = createNumericalScale(o.ScaleType, o.PixelSpan, scaleDomain, o.OuterPadding, res.BestTickCount, o.ShouldClamp)
		res.LabelCapacity = int(math.Floor((o.PixelSpan - o.OuterPadding) / o.minCategoryThickness()))
	case KindDateTime:
		res.Scale = NewLinearScale(scaleDomain, Interval{o.OuterPadding, o.PixelSpan - o.OuterPadding}, false)
		res.LabelCapacity = res.BestTickCount
	default:
		res.Scale = NewOrdinalScale(o.DataDomain, o.PixelSpan, outerPaddingRatio(o), o.innerPaddingRatio())
		fit := math.Floor((o.PixelSpan - 2*o.OuterPadding) / o.minCategoryThickness())
		res.BestTickCount = int(math.Max(0, math.Min(float64(len(o.DataDomain)), fit)))
		res.LabelCapacity = res.BestTickCount
	}

	if o.IsVertical && o.IsScalar {
		switch sc := res.Scale.(type) {
		case *LinearScale:
			res.Scale = sc.WithRange(sc.Range().Reverse())
		case *LogScale:
			res.Scale = sc.WithRange(sc.Range().Reverse())
		}
	}

	res.Scale = NormalizeInfinityInScale(res.Scale)
	res.BestTickCount = clampTickCount(res.BestTickCount, maxTicks)
	res.LabelCapacity = clampTickCount(res.LabelCapacity, maxTicks)
	return res
}

func clampTickCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func outerPaddingRatio(o AxisOptions) float64 {
	if o.CategoryThickness > 0 {
		return o.OuterPadding / o.CategoryThickness
	}
	return 0
}

// createNumericalScale builds a log scale when asked and possible, a linear
// one otherwise, nice-rounded for niceCount ticks unless niceCount is 0.
func createNumericalScale(scaleType ScaleType, span float64, domain Interval, outerPadding float64, niceCount int, clamp bool) Scale {
	rng := Interval{outerPadding, span - outerPadding}
	if scaleType == LogScaleType && IsLogScalePossible(domain[:], NumericType) {
		s := NewLogScale(domain, rng)
		if niceCount != 0 {
			s = s.Nice()
		}
		return s
	}
	s := NewLinearScale(domain, rng, clamp)
	if niceCount != 0 {
		s = s.Nice(niceCount)
	}
	return s
}
