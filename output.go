// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/axis"
	"gopkg.in/yaml.v3"
)

// writeOutput prints v as json or yaml, or calls text for the text format.
// Yaml goes through json so both share field names and null encoding.
func writeOutput(w io.Writer, kind string, v interface{}, text func(io.Writer) error) error {
	switch strings.ToLower(kind) {
	case "text", "":
		return text(w)
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "\t")
		return errors.Trace(e.Encode(v))
	case "yaml", "yml":
		b, err := json.Marshal(v)
		if err != nil {
			return errors.Trace(err)
		}
		var doc interface{}
		if err := json.Unmarshal(b, &doc); err != nil {
			return errors.Trace(err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(enc.Close())
	}
	return errors.NotSupportedf("output format %q", kind)
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// valuesFlag reads a comma separated list of numbers, "null" standing for a
// missing bound.
type valuesFlag axis.Values

func (f *valuesFlag) String() string {
	if f == nil || *f == nil {
		return ""
	}
	return strings.Trim(formatValues(*f), "[]")
}

func (f *valuesFlag) Set(s string) error {
	var out valuesFlag
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if strings.EqualFold(part, "null") || part == "" {
			out = append(out, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return errors.NotValidf("number %q", part)
		}
		out = append(out, v)
	}
	*f = out
	return nil
}

func (f *valuesFlag) Type() string {
	return "floats"
}
