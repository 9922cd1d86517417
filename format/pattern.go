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
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// humanize.FormatFloat renders at most 9 decimals
const maxHumanizePrecision = 9

// pattern is a parsed number format string. maxDecimals < 0 means general
// formatting with the shortest exact representation.
type pattern struct {
	prefix      string
	suffix      string
	minDecimals int
	maxDecimals int
	grouping    bool
	percent     bool
	scientific  bool
	standard    bool
}

var general = pattern{minDecimals: -1, maxDecimals: -1}

var standardFormat = regexp.MustCompile(`^([CcDdEeFfGgNnPp])(\d{0,2})$`)

func parsePattern(format string) pattern {
	format = strings.TrimSpace(format)
	if format == "" {
		return general
	}
	if p, ok := parseStandard(format); ok {
		return p
	}
	return parseCustom(format)
}

func parseStandard(format string) (pattern, bool) {
	m := standardFormat.FindStringSubmatch(format)
	if m == nil {
		return pattern{}, false
	}
	digits := -1
	if m[2] != "" {
		digits, _ = strconv.Atoi(m[2])
	}
	decimals := func(def int) (int, int) {
		if digits < 0 {
			return def, def
		}
		return digits, digits
	}

	p := pattern{standard: true}
	switch strings.ToUpper(m[1]) {
	case "C":
		p.prefix, p.grouping = "$", true
		p.minDecimals, p.maxDecimals = decimals(2)
	case "D":
		p.minDecimals, p.maxDecimals = 0, 0
	case "E":
		p.scientific = true
		p.minDecimals, p.maxDecimals = decimals(6)
	case "F":
		p.minDecimals, p.maxDecimals = decimals(2)
	case "N":
		p.grouping = true
		p.minDecimals, p.maxDecimals = decimals(2)
	case "P":
		p.percent, p.grouping, p.suffix = true, true, "%"
		p.minDecimals, p.maxDecimals = decimals(2)
	default:
		p.minDecimals, p.maxDecimals = -1, -1
	}
	return p, true
}

// parseCustom reads a custom pattern such as "$#,0.00 'units'" or "0.0%".
// Only the first section of a positive;negative;zero pattern is used.
func parseCustom(format string) pattern {
	runes := []rune(firstSection(format))
	var p pattern
	var literal strings.Builder
	seenNumber, inNumber, afterDot := false, false, false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			j := i + 1
			for j < len(runes) && runes[j] != r {
				j++
			}
			literal.WriteString(string(runes[i+1 : j]))
			i = j
			if seenNumber {
				inNumber = false
			}
		case r == '\\' && i+1 < len(runes):
			literal.WriteRune(runes[i+1])
			i++
			if seenNumber {
				inNumber = false
			}
		case strings.ContainsRune("#0,.", r) && (!seenNumber || inNumber):
			if !seenNumber {
				p.prefix = literal.String()
				literal.Reset()
				seenNumber, inNumber = true, true
			}
			switch r {
			case '.':
				afterDot = true
			case ',':
				if !afterDot {
					p.grouping = true
				}
			case '0':
				if afterDot {
					p.minDecimals++
					p.maxDecimals++
				}
			case '#':
				if afterDot {
					p.maxDecimals++
				}
			}
		default:
			if r == '%' {
				p.percent = true
			}
			if seenNumber {
				inNumber = false
			}
			literal.WriteRune(r)
		}
	}

	if !seenNumber {
		return pattern{prefix: literal.String(), minDecimals: -1, maxDecimals: -1, percent: p.percent}
	}
	p.suffix = literal.String()
	return p
}

func firstSection(format string) string {
	var quote rune
	for i, r := range format {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ';':
			return format[:i]
		}
	}
	return format
}

// IsStandardFormat reports whether format is a single letter standard format
// such as "N2" or "P0".
func IsStandardFormat(format string) bool {
	return standardFormat.MatchString(strings.TrimSpace(format))
}

// IsCustomFormat reports whether format is a non empty custom pattern.
func IsCustomFormat(format string) bool {
	format = strings.TrimSpace(format)
	return format != "" && !IsStandardFormat(format)
}

// CustomPrecision returns the number of decimal placeholders of a custom
// pattern.
func CustomPrecision(format string) int {
	p := parseCustom(strings.TrimSpace(format))
	if p.maxDecimals < 0 {
		return 0
	}
	return p.maxDecimals
}

// IsPercentFormat reports whether values rendered with format are scaled by 100.
func IsPercentFormat(format string) bool {
	return parsePattern(format).percent
}

func renderFixed(v float64, decimals int, grouping bool) string {
	if s, ok := renderSpecial(v); ok {
		return s
	}
	var s string
	switch {
	case decimals <= maxHumanizePrecision && math.Abs(v) < 1e15:
		layout := "#."
		if grouping {
			layout = "#,###."
		}
		s = humanize.FormatFloat(layout+strings.Repeat("#", decimals), v)
	case grouping:
		s = padDecimals(humanize.CommafWithDigits(v, decimals), decimals)
	default:
		s = strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return stripNegativeZero(s)
}

// renderGeneral keeps 15 significant digits, like the host number formatting.
func renderGeneral(v float64, grouping bool) string {
	if s, ok := renderSpecial(v); ok {
		return s
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	abs := math.Abs(r)
	switch {
	case abs != 0 && (abs >= 1e21 || abs < 1e-7):
		return strconv.FormatFloat(r, 'g', -1, 64)
	case grouping:
		return stripNegativeZero(humanize.Commaf(r))
	}
	return stripNegativeZero(strconv.FormatFloat(r, 'f', -1, 64))
}

func renderScientific(v float64, decimals int) string {
	if s, ok := renderSpecial(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'E', decimals, 64)
}

func renderSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// trimDecimals drops trailing zero decimals down to min.
func trimDecimals(s string, min int) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	for len(s)-dot-1 > min && strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	return strings.TrimSuffix(s, ".")
}

func padDecimals(s string, decimals int) string {
	if decimals <= 0 {
		return s
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		s += "."
		dot = len(s) - 1
	}
	if have := len(s) - dot - 1; have < decimals {
		s += strings.Repeat("0", decimals-have)
	}
	return s
}

func stripNegativeZero(s string) string {
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.,") == "" {
		return s[1:]
	}
	return s
}
