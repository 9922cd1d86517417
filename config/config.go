// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <stephane.varoqui@mariadb.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package config

import (
	"encoding/json"
	"io"
	"math"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/axis"
	"github.com/signal18/histogram-visual/format"
	"github.com/signal18/histogram-visual/histogram"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "HIST"

type Config struct {
	ConfigFile           string   `mapstructure:"config" toml:"-" yaml:"-" json:"-"`
	Width                float64  `mapstructure:"width" toml:"width" yaml:"width" json:"width"`
	Height               float64  `mapstructure:"height" toml:"height" yaml:"height" json:"height"`
	Column               string   `mapstructure:"column" toml:"column" yaml:"column" json:"column"`
	Bins                 int      `mapstructure:"bins" toml:"bins" yaml:"bins" json:"bins"`
	BinRule              string   `mapstructure:"bin-rule" toml:"bin-rule" yaml:"bin-rule" json:"binRule"`
	Frequency            bool     `mapstructure:"frequency" toml:"frequency" yaml:"frequency" json:"frequency"`
	XAxisShow            bool     `mapstructure:"x-axis-show" toml:"x-axis-show" yaml:"x-axis-show" json:"xAxisShow"`
	XAxisScale           string   `mapstructure:"x-axis-scale" toml:"x-axis-scale" yaml:"x-axis-scale" json:"xAxisScale"`
	XAxisDisplayUnits    float64  `mapstructure:"x-axis-display-units" toml:"x-axis-display-units" yaml:"x-axis-display-units" json:"xAxisDisplayUnits"`
	XAxisPrecision       int      `mapstructure:"x-axis-precision" toml:"x-axis-precision" yaml:"x-axis-precision" json:"xAxisPrecision"`
	XAxisStart           *float64 `mapstructure:"-" toml:"x-axis-start,omitempty" yaml:"x-axis-start,omitempty" json:"xAxisStart,omitempty"`
	XAxisEnd             *float64 `mapstructure:"-" toml:"x-axis-end,omitempty" yaml:"x-axis-end,omitempty" json:"xAxisEnd,omitempty"`
	YAxisShow            bool     `mapstructure:"y-axis-show" toml:"y-axis-show" yaml:"y-axis-show" json:"yAxisShow"`
	YAxisScale           string   `mapstructure:"y-axis-scale" toml:"y-axis-scale" yaml:"y-axis-scale" json:"yAxisScale"`
	YAxisDisplayUnits    float64  `mapstructure:"y-axis-display-units" toml:"y-axis-display-units" yaml:"y-axis-display-units" json:"yAxisDisplayUnits"`
	YAxisPrecision       int      `mapstructure:"y-axis-precision" toml:"y-axis-precision" yaml:"y-axis-precision" json:"yAxisPrecision"`
	YAxisStart           *float64 `mapstructure:"-" toml:"y-axis-start,omitempty" yaml:"y-axis-start,omitempty" json:"yAxisStart,omitempty"`
	YAxisEnd             *float64 `mapstructure:"-" toml:"y-axis-end,omitempty" yaml:"y-axis-end,omitempty" json:"yAxisEnd,omitempty"`
	UnitSystem           string   `mapstructure:"unit-system" toml:"unit-system" yaml:"unit-system" json:"unitSystem"`
	FormatString         string   `mapstructure:"format-string" toml:"format-string" yaml:"format-string" json:"formatString"`
	OuterPadding         float64  `mapstructure:"outer-padding" toml:"outer-padding" yaml:"outer-padding" json:"outerPadding"`
	InnerPadding         float64  `mapstructure:"inner-padding" toml:"inner-padding" yaml:"inner-padding" json:"innerPadding"`
	MinCategoryThickness float64  `mapstructure:"min-category-thickness" toml:"min-category-thickness" yaml:"min-category-thickness" json:"minCategoryThickness"`
	LogLevel             string   `mapstructure:"log-level" toml:"log-level" yaml:"log-level" json:"-"`
	LogFile              string   `mapstructure:"log-file" toml:"log-file" yaml:"log-file" json:"-"`
	LogRotateMaxSize     int      `mapstructure:"log-rotate-max-size" toml:"log-rotate-max-size" yaml:"log-rotate-max-size" json:"-"`
	LogRotateMaxBackup   int      `mapstructure:"log-rotate-max-backup" toml:"log-rotate-max-backup" yaml:"log-rotate-max-backup" json:"-"`
	LogRotateMaxAge      int      `mapstructure:"log-rotate-max-age" toml:"log-rotate-max-age" yaml:"log-rotate-max-age" json:"-"`
	BindAddr             string   `mapstructure:"http-bind-address" toml:"http-bind-address" yaml:"http-bind-address" json:"-"`
	HttpPort             string   `mapstructure:"http-port" toml:"http-port" yaml:"http-port" json:"-"`
}

// Axis is the per axis part of Config.
type Axis struct {
	Show         bool
	Scale        axis.ScaleType
	DisplayUnits float64
	// Precision is nil when it is computed from the ticks.
	Precision *int
	Start     *float64
	End       *float64
}

func Default() Config {
	return Config{
		Width:                600,
		Height:               400,
		BinRule:              string(histogram.Sturges),
		Frequency:            true,
		XAxisShow:            true,
		XAxisScale:           string(axis.LinearScaleType),
		XAxisPrecision:       -1,
		YAxisShow:            true,
		YAxisScale:           string(axis.LinearScaleType),
		YAxisPrecision:       -1,
		UnitSystem:           format.DefaultUnitSystem,
		InnerPadding:         axis.DefaultInnerPaddingRatio,
		MinCategoryThickness: axis.DefaultMinCategoryThickness,
		LogLevel:             "info",
		LogRotateMaxSize:     5,
		LogRotateMaxBackup:   7,
		LogRotateMaxAge:      7,
		BindAddr:             "0.0.0.0",
		HttpPort:             "10009",
	}
}

// SetDefaults registers every key of Default so environment variables and
// config files can override them.
func SetDefaults(v *viper.Viper) {
	def := reflect.ValueOf(Default())
	t := def.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}
		v.SetDefault(key, def.Field(i).Interface())
	}
}

// Load reads the configuration from v: defaults, then the file named by the
// config key, then HIST_ environment variables and bound flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != "" {
			v.SetConfigType(ext)
		}
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Annotatef(err, "reading config file %s", file)
		}
		log.WithField("file", v.ConfigFileUsed()).Debug("Config file loaded")
	}

	conf := Default()
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, errors.Annotate(err, "decoding config")
	}
	for key, dst := range map[string]**float64{
		"x-axis-start": &conf.XAxisStart,
		"x-axis-end":   &conf.XAxisEnd,
		"y-axis-start": &conf.YAxisStart,
		"y-axis-end":   &conf.YAxisEnd,
	} {
		raw := strings.TrimSpace(v.GetString(key))
		if !v.IsSet(key) || raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return Config{}, errors.NotValidf("%s %q", key, raw)
		}
		*dst = &f
	}
	return conf, conf.Validate()
}

func (conf Config) Validate() error {
	if conf.Width <= 0 || conf.Height <= 0 {
		return errors.NotValidf("size %vx%v", conf.Width, conf.Height)
	}
	if conf.Bins < 0 || conf.Bins > histogram.MaxBins {
		return errors.NotValidf("bins %d", conf.Bins)
	}
	if _, err := histogram.ParseRule(conf.BinRule); err != nil {
		return err
	}
	if !format.IsUnitSystem(conf.UnitSystem) {
		return errors.NotValidf("unit system %q", conf.UnitSystem)
	}
	if conf.OuterPadding < 0 {
		return errors.NotValidf("outer padding %v", conf.OuterPadding)
	}
	if conf.InnerPadding < 0 || conf.InnerPadding >= 1 {
		return errors.NotValidf("inner padding %v", conf.InnerPadding)
	}
	if conf.MinCategoryThickness < 0 {
		return errors.NotValidf("min category thickness %v", conf.MinCategoryThickness)
	}
	if conf.LogLevel != "" {
		if _, err := log.ParseLevel(conf.LogLevel); err != nil {
			return errors.NotValidf("log level %q", conf.LogLevel)
		}
	}
	for name, a := range map[string]Axis{"x axis": conf.XAxis(), "y axis": conf.YAxis()} {
		if a.Scale != axis.LinearScaleType && a.Scale != axis.LogScaleType {
			return errors.NotValidf("%s scale %q", name, a.Scale)
		}
		if a.DisplayUnits < 0 {
			return errors.NotValidf("%s display units %v", name, a.DisplayUnits)
		}
		if a.Precision != nil && *a.Precision > format.MaxPrecision {
			return errors.NotValidf("%s precision %d", name, *a.Precision)
		}
		if a.Start != nil && a.End != nil && *a.Start > *a.End {
			return errors.NotValidf("%s range [%v, %v]", name, *a.Start, *a.End)
		}
	}
	return nil
}

func (conf Config) XAxis() Axis {
	return newAxis(conf.XAxisShow, conf.XAxisScale, conf.XAxisDisplayUnits, conf.XAxisPrecision, conf.XAxisStart, conf.XAxisEnd)
}

func (conf Config) YAxis() Axis {
	return newAxis(conf.YAxisShow, conf.YAxisScale, conf.YAxisDisplayUnits, conf.YAxisPrecision, conf.YAxisStart, conf.YAxisEnd)
}

func newAxis(show bool, scale string, units float64, precision int, start, end *float64) Axis {
	a := Axis{
		Show:         show,
		Scale:        axis.ScaleType(strings.ToLower(scale)),
		DisplayUnits: units,
		Start:        start,
		End:          end,
	}
	if a.Scale == "" {
		a.Scale = axis.LinearScaleType
	}
	if precision >= 0 {
		p := precision
		a.Precision = &p
	}
	return a
}

// Write serialises conf as toml, yaml or json.
func Write(w io.Writer, conf Config, kind string) error {
	switch strings.ToLower(kind) {
	case "toml", "":
		return errors.Trace(toml.NewEncoder(w).Encode(conf))
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(conf); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(enc.Close())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(conf))
	}
	return errors.NotSupportedf("config format %q", kind)
}
