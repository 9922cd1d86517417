// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package format

import (
	"fmt"
	"time"

	"github.com/signal18/histogram-visual/dateseq"
	"github.com/tebeka/strftime"
)

const DefaultDateLayout = "%m/%d/%Y"

var dateLayouts = map[dateseq.Unit]string{
	dateseq.Year:        "%Y",
	dateseq.Month:       "%b %Y",
	dateseq.Week:        "%b %d",
	dateseq.Day:         "%b %d",
	dateseq.Hour:        "%b %d %H:%M",
	dateseq.Minute:      "%H:%M",
	dateseq.Second:      "%H:%M:%S",
	dateseq.Millisecond: "%H:%M:%S",
}

// DateLayout returns the strftime layout used to label ticks of unit.
func DateLayout(u dateseq.Unit) string {
	if l, ok := dateLayouts[u]; ok {
		return l
	}
	return DefaultDateLayout
}

// strftime has no millisecond directive, they are appended by hand.
func formatDate(t time.Time, layout string, millis bool) string {
	t = t.UTC()
	s, err := strftime.Format(layout, t)
	if err != nil {
		s = t.Format(time.RFC3339)
	}
	if millis {
		s += fmt.Sprintf(".%03d", t.Nanosecond()/int(time.Millisecond))
	}
	return s
}
