// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package main

import (
	"fmt"
	"os"

	"github.com/signal18/histogram-visual/config"
	"github.com/signal18/histogram-visual/logging"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version number, e.g. 1.0.1
	Version string = "dev"
	// FullVersion is the semantic version number + git commit hash
	FullVersion string
	// Build is the build date of histogram-visual
	Build        string
	conf         config.Config
	outputFormat string
)

func init() {

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().String("config", "", "Configuration file in toml or yaml (default is none)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "Write output messages to log file")
	rootCmd.PersistentFlags().Int("log-rotate-max-size", 5, "Log rotate max size in MB")
	rootCmd.PersistentFlags().Int("log-rotate-max-backup", 7, "Log rotate max backup")
	rootCmd.PersistentFlags().Int("log-rotate-max-age", 7, "Log rotate max age in days")

}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "histogram-visual",
	Short: "Histogram visual axis engine",
	Long: `histogram-visual computes the scales, ticks and tick labels of histogram axes.
It bins numeric columns read from CSV and serves the same computations over HTTP.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the histogram-visual version number",
	Long:  `All software has versions. This is ours`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Histogram Visual "+Version)
		fmt.Fprintln(cmd.OutOrStdout(), "Full Version: ", FullVersion)
		fmt.Fprintln(cmd.OutOrStdout(), "Build Time: ", Build)
	},
}

// initConfig loads the configuration of the command about to run: flags of
// that command override environment, file and defaults.
func initConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := bindFlags(v, cmd); err != nil {
		return errors.Trace(err)
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	conf = c

	if err := logging.SetLevel(conf.LogLevel); err != nil {
		return err
	}
	logging.SetRotation(conf.LogRotateMaxSize, conf.LogRotateMaxBackup, conf.LogRotateMaxAge)
	if err := logging.SetFile(conf.LogFile); err != nil {
		return err
	}
	log.WithField("command", cmd.Name()).Debug("Configuration loaded")
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	bind := func(fs *pflag.FlagSet) {
		if err == nil {
			err = v.BindPFlags(fs)
		}
	}
	bind(cmd.InheritedFlags())
	bind(cmd.LocalFlags())
	return err
}

// initVisualFlags registers the flags shared by commands that bin data.
func initVisualFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().String("column", "", "CSV column holding the values (default is the first one)")
	cmd.Flags().Float64("width", def.Width, "Visual width in pixels")
	cmd.Flags().Float64("height", def.Height, "Visual height in pixels")
	cmd.Flags().Int("bins", def.Bins, "Number of bins, 0 chooses with bin-rule")
	cmd.Flags().String("bin-rule", def.BinRule, "Bin count rule: sturges, scott or freedman-diaconis")
	cmd.Flags().Bool("frequency", def.Frequency, "Bin heights are counts instead of shares")
	cmd.Flags().Bool("x-axis-show", def.XAxisShow, "Show the x axis")
	cmd.Flags().String("x-axis-scale", def.XAxisScale, "X axis scale: linear or log")
	cmd.Flags().Float64("x-axis-display-units", def.XAxisDisplayUnits, "X axis display units: 0 auto, 1 none, or a unit size")
	cmd.Flags().Int("x-axis-precision", def.XAxisPrecision, "X axis label decimals, -1 computes them from the ticks")
	cmd.Flags().String("x-axis-start", "", "X axis start overriding the data")
	cmd.Flags().String("x-axis-end", "", "X axis end overriding the data")
	cmd.Flags().Bool("y-axis-show", def.YAxisShow, "Show the y axis")
	cmd.Flags().String("y-axis-scale", def.YAxisScale, "Y axis scale: linear or log")
	cmd.Flags().Float64("y-axis-display-units", def.YAxisDisplayUnits, "Y axis display units: 0 auto, 1 none, or a unit size")
	cmd.Flags().Int("y-axis-precision", def.YAxisPrecision, "Y axis label decimals, -1 computes them from the ticks")
	cmd.Flags().String("y-axis-start", "", "Y axis start overriding the data")
	cmd.Flags().String("y-axis-end", "", "Y axis end overriding the data")
	cmd.Flags().String("unit-system", def.UnitSystem, "Display unit system: powerbi, si or binary")
	cmd.Flags().String("format-string", def.FormatString, "Number format of the x axis labels")
	cmd.Flags().Float64("outer-padding", def.OuterPadding, "Outer padding in pixels")
	cmd.Flags().Float64("inner-padding", def.InnerPadding, "Inner padding ratio between bars")
	cmd.Flags().Float64("min-category-thickness", def.MinCategoryThickness, "Minimum pixels per label")
}
