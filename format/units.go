// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package format

import (
	"math"
	"sort"
)

const DefaultUnitSystem = "powerbi"

type unitPrefix struct {
	prefix string
	size   uint64
}

// unit systems, largest unit first
var unitSystems = map[string][]unitPrefix{
	"binary": {
		{"Pi", 1125899906842624}, // 1024^5
		{"Ti", 1099511627776},    // 1024^4
		{"Gi", 1073741824},       // 1024^3
		{"Mi", 1048576},          // 1024^2
		{"Ki", 1024},
	},
	"si": {
		{"P", 1000000000000000}, // 1000^5
		{"T", 1000000000000},    // 1000^4
		{"G", 1000000000},       // 1000^3
		{"M", 1000000},          // 1000^2
		{"K", 1000},
	},
	"powerbi": {
		{"T", 1000000000000},
		{"bn", 1000000000},
		{"M", 1000000},
		{"K", 1000},
	},
}

// DisplayUnit scales a value down before rendering and appends its label.
type DisplayUnit struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var NoUnit = DisplayUnit{Value: 1}

// UnitSystems lists the known unit system names.
func UnitSystems() []string {
	names := make([]string, 0, len(unitSystems))
	for name := range unitSystems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsUnitSystem(name string) bool {
	_, ok := unitSystems[name]
	return ok
}

func system(name string) []unitPrefix {
	if units, ok := unitSystems[name]; ok {
		return units
	}
	return unitSystems[DefaultUnitSystem]
}

// FindUnit returns the largest unit of the system not greater than |v| and,
// unless step is NaN, not greater than step either.
func FindUnit(v, step float64, name string) DisplayUnit {
	condition := func(size float64) bool { return math.Abs(v) >= size && step >= size }
	if math.IsNaN(step) {
		condition = func(size float64) bool { return math.Abs(v) >= size }
	}
	for _, p := range system(name) {
		if condition(float64(p.size)) {
			return DisplayUnit{Label: p.prefix, Value: float64(p.size)}
		}
	}
	return NoUnit
}

// ExplicitUnit returns the unit of the system whose size is exactly size. A
// size with no matching unit still divides values but carries no label.
func ExplicitUnit(size float64, name string) DisplayUnit {
	if size <= 1 || math.IsNaN(size) || math.IsInf(size, 0) {
		return NoUnit
	}
	for _, p := range system(name) {
		if float64(p.size) == size {
			return DisplayUnit{Label: p.prefix, Value: size}
		}
	}
	return DisplayUnit{Value: size}
}
