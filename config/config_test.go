// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/axis"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)
	conf := Default()

	assert.NoError(conf.Validate())
	x := conf.XAxis()
	assert.True(x.Show)
	assert.Equal(axis.LinearScaleType, x.Scale)
	assert.Nil(x.Precision)
	assert.Nil(x.Start)
}

func TestLoadEnv(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("HIST_BINS", "12")
	t.Setenv("HIST_Y_AXIS_PRECISION", "2")
	t.Setenv("HIST_X_AXIS_START", "3")

	conf, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(12, conf.Bins)
	require.NotNil(t, conf.YAxis().Precision)
	assert.Equal(2, *conf.YAxis().Precision)
	require.NotNil(t, conf.XAxisStart)
	assert.Equal(3.0, *conf.XAxisStart)
	assert.Nil(conf.XAxisEnd)
}

func TestLoadInvalidBound(t *testing.T) {
	t.Setenv("HIST_X_AXIS_START", "abc")
	_, err := Load(viper.New())
	assert.True(t, errors.Is(err, errors.NotValid), "%v", err)
	assert.Contains(t, err.Error(), "x-axis-start")

	t.Setenv("HIST_X_AXIS_START", "")
	v := viper.New()
	v.Set("y-axis-end", "nan")
	_, err = Load(v)
	assert.True(t, errors.Is(err, errors.NotValid), "%v", err)

	v = viper.New()
	v.Set("y-axis-end", " 42 ")
	conf, err := Load(v)
	require.NoError(t, err)
	require.NotNil(t, conf.YAxisEnd)
	assert.Equal(t, 42.0, *conf.YAxisEnd)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	v := viper.New()
	v.Set("config", writeFile(t, "histogram.toml", `
width = 800.0
bin-rule = "scott"
x-axis-start = 0.5
y-axis-scale = "log"
`))
	conf, err := Load(v)
	require.NoError(t, err)
	assert.Equal(800.0, conf.Width)
	assert.Equal(400.0, conf.Height)
	assert.Equal("scott", conf.BinRule)
	require.NotNil(t, conf.XAxisStart)
	assert.Equal(0.5, *conf.XAxisStart)
	assert.Equal(axis.LogScaleType, conf.YAxis().Scale)

	v = viper.New()
	v.Set("config", writeFile(t, "histogram.yaml", "bins: 7\nunit-system: si\n"))
	conf, err = Load(v)
	require.NoError(t, err)
	assert.Equal(7, conf.Bins)
	assert.Equal("si", conf.UnitSystem)

	v = viper.New()
	v.Set("config", writeFile(t, "bad.toml", `bin-rule = "bogus"`))
	_, err = Load(v)
	assert.True(errors.Is(err, errors.NotValid))

	v = viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.toml"))
	_, err = Load(v)
	assert.Error(err)
}

func TestValidate(t *testing.T) {
	one, two := 1.0, 2.0

	var tests = []struct {
		name   string
		modify func(*Config)
	}{
		{"width", func(c *Config) { c.Width = 0 }},
		{"bins", func(c *Config) { c.Bins = -1 }},
		{"rule", func(c *Config) { c.BinRule = "square" }},
		{"unit system", func(c *Config) { c.UnitSystem = "imperial" }},
		{"outer padding", func(c *Config) { c.OuterPadding = -1 }},
		{"inner padding", func(c *Config) { c.InnerPadding = 1 }},
		{"scale", func(c *Config) { c.XAxisScale = "sqrt" }},
		{"display units", func(c *Config) { c.YAxisDisplayUnits = -1000 }},
		{"precision", func(c *Config) { c.YAxisPrecision = 40 }},
		{"range", func(c *Config) { c.XAxisStart, c.XAxisEnd = &two, &one }},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		conf := Default()
		tt.modify(&conf)
		err := conf.Validate()
		assert.True(t, errors.Is(err, errors.NotValid), "%s: %v", tt.name, err)
	}
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)
	conf := Default()
	start := 10.0
	conf.XAxisStart = &start

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, conf, "toml"))
	assert.Contains(buf.String(), `bin-rule = "sturges"`)
	assert.NotContains(buf.String(), "x-axis-end")
	var fromToml Config
	_, err := toml.Decode(buf.String(), &fromToml)
	require.NoError(t, err)
	assert.Equal(conf.BinRule, fromToml.BinRule)
	require.NotNil(t, fromToml.XAxisStart)
	assert.Equal(start, *fromToml.XAxisStart)

	buf.Reset()
	require.NoError(t, Write(&buf, conf, "yaml"))
	var fromYaml Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYaml))
	assert.Equal(conf.Width, fromYaml.Width)
	assert.Equal(conf.UnitSystem, fromYaml.UnitSystem)

	err = Write(&buf, conf, "xml")
	assert.True(errors.Is(err, errors.NotSupported))
}
