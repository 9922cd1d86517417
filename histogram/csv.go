// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package histogram

import (
	"io"
	"strconv"

	"github.com/gwenn/yacr"
	"github.com/juju/errors"
)

// ReadValues reads one numeric column of a CSV stream with a header line.
// An empty column name selects the first column. Blank cells are skipped.
func ReadValues(r io.Reader, column string) ([]float64, error) {
	rd := yacr.DefaultReader(r)
	rd.Trim = true
	if err := rd.ScanHeaders(); err != nil {
		return nil, errors.Annotate(err, "reading csv header")
	}
	if len(rd.Headers) == 0 {
		return nil, errors.NotValidf("csv without header")
	}

	index := 1
	if column != "" {
		i, ok := rd.Headers[column]
		if !ok {
			return nil, errors.NotValidf("column %q", column)
		}
		index = i
	}

	values := []float64{}
	field := 1
	for rd.Scan() {
		if field == index {
			if text := rd.Text(); text != "" {
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return nil, errors.NotValidf("value %q at line %d", text, rd.LineNumber())
				}
				values = append(values, v)
			}
		}
		if rd.EndOfRecord() {
			field = 1
		} else {
			field++
		}
	}
	if err := rd.Err(); err != nil {
		return nil, errors.Annotate(err, "reading csv")
	}
	return values, nil
}
