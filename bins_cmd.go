// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/axis"
	"github.com/signal18/histogram-visual/histogram"
	"github.com/signal18/histogram-visual/visual"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var binsCmd = &cobra.Command{
	Use:   "bins [file.csv]",
	Short: "Bin a CSV column and compute both histogram axes",
	Long: `Reads one numeric column of a CSV file, or of stdin when no file or "-" is
given, groups the values into bins and computes the axes of the histogram.`,
	Example: `  histogram-visual bins --column latency --bins 20 data.csv
  cat data.csv | histogram-visual bins --bin-rule freedman-diaconis --frequency=false -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		name := "stdin"
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Annotatef(err, "opening %s", args[0])
			}
			defer f.Close()
			in, name = f, args[0]
		}

		values, err := histogram.ReadValues(in, conf.Column)
		if err != nil {
			return errors.Annotatef(err, "reading %s", name)
		}
		log.WithFields(log.Fields{"source": name, "values": len(values)}).Debug("Values read")

		m, err := visual.Build(values, conf)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, m, func(w io.Writer) error {
			return writeModelText(w, m)
		})
	},
}

func init() {
	rootCmd.AddCommand(binsCmd)
	initVisualFlags(binsCmd)
}

func writeModelText(w io.Writer, m *visual.Model) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "FROM\tTO\tCOUNT\tHEIGHT\tLABEL\t")
	labels := make(map[int]string, len(m.DataLabels))
	for _, l := range m.DataLabels {
		labels[l.Bin] = l.Text
	}
	for i, b := range m.Bins {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\t\n",
			humanize.Ftoa(b.X), humanize.Ftoa(b.X+b.DX), humanize.Comma(int64(b.Count)), b.Y, labels[i])
	}
	if err := tw.Flush(); err != nil {
		return errors.Trace(err)
	}
	for _, a := range []struct {
		name  string
		props *axis.AxisProperties
	}{{"x axis", m.XAxis}, {"y axis", m.YAxis}} {
		if a.props == nil {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", a.name, strings.Join(a.props.FormattedTickValues, "  "))
	}
	return nil
}
