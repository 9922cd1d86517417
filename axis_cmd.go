// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/signal18/histogram-visual/axis"
	"github.com/signal18/histogram-visual/server"
	"github.com/spf13/cobra"
)

var axisReq server.AxisRequest

var axisCmd = &cobra.Command{
	Use:   "axis",
	Short: "Compute the ticks and labels of one axis",
	Long: `Computes the scale, tick values and formatted tick labels of an axis.

Scalar axes take --domain min,max. Category axes take --categories a,b,c.`,
	Example: `  histogram-visual axis --span 500 --domain 0,25000
  histogram-visual axis --span 300 --domain 0,0.75 --format 0% --vertical
  histogram-visual axis --span 200 --categories a,b,c,d,e,f -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := axisReq
		req.UnitSystem = conf.UnitSystem
		req.IsScalar = len(req.Categories) == 0 && !strings.EqualFold(req.Type, "text") && !strings.EqualFold(req.Type, "bool")
		if precision, _ := cmd.Flags().GetInt("precision"); precision >= 0 {
			req.Precision = &precision
		}
		if ticks, _ := cmd.Flags().GetInt("ticks"); ticks >= 0 {
			req.ForcedTickCount = &ticks
		}
		o, err := req.Options()
		if err != nil {
			return err
		}
		props := axis.CreateAxis(o)
		return writeOutput(cmd.OutOrStdout(), outputFormat, props, func(w io.Writer) error {
			return writeAxisText(w, props)
		})
	},
}

func init() {
	rootCmd.AddCommand(axisCmd)
	f := axisCmd.Flags()
	f.Float64Var(&axisReq.PixelSpan, "span", 500, "Axis length in pixels")
	f.Var((*valuesFlag)(&axisReq.DataDomain), "domain", "Data domain min,max")
	f.StringSliceVar(&axisReq.Categories, "categories", nil, "Category labels of an ordinal axis")
	f.StringVar(&axisReq.Type, "type", "number", "Value type: number, integer, percent, datetime, text or bool")
	f.StringVar(&axisReq.FormatString, "format", "", "Number format string, e.g. #,0.00 or 0%")
	f.BoolVar(&axisReq.IsVertical, "vertical", false, "Vertical axis, range is reversed")
	f.StringVar(&axisReq.ScaleType, "scale", "linear", "Scale type: linear or log")
	f.Float64Var(&axisReq.DisplayUnits, "display-units", 0, "Display units: 0 auto, 1 none, or a unit size")
	f.Int("precision", -1, "Label decimals, -1 computes them from the ticks")
	f.Int("ticks", -1, "Forced tick count, -1 computes it from the span")
	f.IntVar(&axisReq.MaxTickCount, "max-ticks", 0, "Maximum tick count, 0 computes it from the span")
	f.Float64Var(&axisReq.OuterPadding, "outer-padding", 0, "Outer padding in pixels")
	f.Float64Var(&axisReq.InnerPaddingRatio, "inner-padding", axis.DefaultInnerPaddingRatio, "Inner padding ratio of category bands")
	f.Float64Var(&axisReq.CategoryThickness, "category-thickness", 0, "Pixels per category")
	f.BoolVar(&axisReq.ShouldClamp, "clamp", false, "Clamp values outside the domain")
	f.BoolVar(&axisReq.Is100Pct, "pct100", false, "Values are shares of 100%")
	f.BoolVar(&axisReq.UseTickIntervalForDisplayUnits, "tick-interval-units", true, "Choose display units and decimals from the tick interval")
	f.String("unit-system", "powerbi", "Display unit system: powerbi, si or binary")
}

func writeAxisText(w io.Writer, props axis.AxisProperties) error {
	fmt.Fprintf(w, "kind: %s  domain: %s  best ticks: %d  label capacity: %d\n",
		props.Kind, formatValues(props.ScaleDomain), props.BestTickCount, props.LabelCapacity)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICK\tPIXEL\tLABEL")
	for i, v := range props.TickValues {
		fmt.Fprintf(tw, "%g\t%.1f\t%s\n", v, props.Scale.Map(v), props.FormattedTickValues[i])
	}
	return tw.Flush()
}
