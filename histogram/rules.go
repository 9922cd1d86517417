// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package histogram

import (
	"math"
	"strings"

	onlinestats "github.com/dgryski/go-onlinestats"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Rule chooses the number of bins when none is given.
type Rule string

const (
	Sturges          Rule = "sturges"
	Scott            Rule = "scott"
	FreedmanDiaconis Rule = "freedman-diaconis"
)

// MaxBins caps every rule.
const MaxBins = 1000

// Rules lists the known rules.
func Rules() []Rule {
	return []Rule{Sturges, Scott, FreedmanDiaconis}
}

// ParseRule accepts a rule name, empty meaning Sturges.
func ParseRule(s string) (Rule, error) {
	if s == "" {
		return Sturges, nil
	}
	r := Rule(strings.ToLower(s))
	for _, known := range Rules() {
		if r == known {
			return r, nil
		}
	}
	return "", errors.NotValidf("bin rule %q", s)
}

// BinCount returns the number of bins rule gives for sorted values.
func BinCount(sorted []float64, rule Rule) int {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n < 2 {
		return 1
	}
	span := sorted[n-1] - sorted[0]

	var width float64
	switch rule {
	case Scott:
		width = 3.49 * stddev(sorted) * math.Pow(float64(n), -1.0/3)
	case FreedmanDiaconis:
		iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)
		width = 2 * iqr * math.Pow(float64(n), -1.0/3)
	}
	bins := span / width
	if width <= 0 || span <= 0 || math.IsNaN(bins) {
		if rule != Sturges && rule != "" {
			log.WithField("rule", rule).Debug("Bin width unusable, using sturges")
		}
		return clampBins(int(math.Ceil(math.Log2(float64(n)) + 1)))
	}
	if bins > MaxBins {
		return MaxBins
	}
	return clampBins(int(math.Ceil(bins)))
}

func stddev(values []float64) float64 {
	r := onlinestats.NewRunning()
	for _, v := range values {
		r.Push(v)
	}
	return r.Stddev()
}

func clampBins(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxBins {
		return MaxBins
	}
	return n
}

// Extent returns the lowest and highest edges of bins.
func Extent(bins []Bin) (float64, float64) {
	if len(bins) == 0 {
		return math.NaN(), math.NaN()
	}
	last := bins[len(bins)-1]
	return bins[0].X, last.X + last.DX
}

// MaxY is the tallest bin height, 0 without bins.
func MaxY(bins []Bin) float64 {
	if len(bins) == 0 {
		return 0
	}
	ys := make([]float64, len(bins))
	for i, b := range bins {
		ys[i] = b.Y
	}
	return floats.Max(ys)
}
