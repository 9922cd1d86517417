// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package axis

// ValueType describes the data of a column. Several flags may be set, an
// integer column is also numeric.
type ValueType struct {
	Numeric    bool `json:"numeric,omitempty"`
	Integer    bool `json:"integer,omitempty"`
	DateTime   bool `json:"dateTime,omitempty"`
	Bool       bool `json:"bool,omitempty"`
	Text       bool `json:"text,omitempty"`
	Percentage bool `json:"percentage,omitempty"`
}

var (
	NumericType  = ValueType{Numeric: true}
	IntegerType  = ValueType{Numeric: true, Integer: true}
	PercentType  = ValueType{Numeric: true, Percentage: true}
	DateTimeType = ValueType{DateTime: true}
	TextType     = ValueType{Text: true}
	BoolType     = ValueType{Bool: true}
)

// IsOrdinal reports whether values are categories rather than magnitudes.
func (t ValueType) IsOrdinal() bool {
	return t.Text || t.Bool
}

func (t ValueType) IsZero() bool {
	return t == ValueType{}
}

// ColumnMetadata is what the axis needs to know about the column it displays.
type ColumnMetadata struct {
	Name   string    `json:"name"`
	Type   ValueType `json:"type"`
	Format string    `json:"format,omitempty"`
}

type ScaleType string

const (
	LinearScaleType ScaleType = "linear"
	LogScaleType    ScaleType = "log"
)

// Kind selects how tick values are generated.
type Kind int

const (
	KindOrdinal Kind = iota
	KindQuantitative
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindQuantitative:
		return "quantitative"
	case KindDateTime:
		return "datetime"
	}
	return "ordinal"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AxisOptions are the inputs of CreateScale and CreateAxis.
//
// DataDomain holds [min, max] for scalar axes and the category keys for
// ordinal ones. DisplayUnits is 0 for automatic units, 1 for none, or the size
// of a unit. ValueFn maps an ordinal tick to the value to display.
type AxisOptions struct {
	PixelSpan                      float64
	DataDomain                     []float64
	Metadata                       *ColumnMetadata
	FormatString                   string
	OuterPadding                   float64
	InnerPaddingRatio              float64
	IsScalar                       bool
	IsVertical                     bool
	ForcedTickCount                *int
	MaxTickCount                   int
	CategoryThickness              float64
	MinCategoryThickness           float64
	ShouldClamp                    bool
	ScaleType                      ScaleType
	DisplayUnits                   float64
	UnitSystem                     string
	Precision                      *int
	Is100Pct                       bool
	UseTickIntervalForDisplayUnits bool
	ValueFn                        func(index int) interface{}
}

func (o AxisOptions) innerPaddingRatio() float64 {
	if o.InnerPaddingRatio > 0 && o.InnerPaddingRatio < 1 {
		return o.InnerPaddingRatio
	}
	return DefaultInnerPaddingRatio
}

func (o AxisOptions) minCategoryThickness() float64 {
	if o.MinCategoryThickness > 0 {
		return o.MinCategoryThickness
	}
	return DefaultMinCategoryThickness
}
