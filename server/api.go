// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Author: Stephane Varoqui  <svaroqui@gmail.com>
// License: GNU General Public License, version 3. Redistribution/Reuse of this code is permitted under the GNU v3 license, as an additional term ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/axis"
	"github.com/signal18/histogram-visual/config"
	"github.com/signal18/histogram-visual/histogram"
	"github.com/signal18/histogram-visual/logging"
	"github.com/signal18/histogram-visual/visual"
	log "github.com/sirupsen/logrus"
)

const maxBodySize = 16 << 20

var valueTypes = map[string]axis.ValueType{
	"":         axis.NumericType,
	"number":   axis.NumericType,
	"integer":  axis.IntegerType,
	"percent":  axis.PercentType,
	"datetime": axis.DateTimeType,
	"text":     axis.TextType,
	"bool":     axis.BoolType,
}

// AxisRequest describes one axis. Categories, when given, replace DataDomain
// by their positions and label the ticks.
type AxisRequest struct {
	PixelSpan                      float64     `json:"pixelSpan"`
	DataDomain                     axis.Values `json:"dataDomain"`
	Categories                     []string    `json:"categories"`
	Type                           string      `json:"type"`
	Name                           string      `json:"name"`
	FormatString                   string      `json:"formatString"`
	OuterPadding                   float64     `json:"outerPadding"`
	InnerPaddingRatio              float64     `json:"innerPaddingRatio"`
	IsScalar                       bool        `json:"isScalar"`
	IsVertical                     bool        `json:"isVertical"`
	ForcedTickCount                *int        `json:"forcedTickCount"`
	MaxTickCount                   int         `json:"maxTickCount"`
	CategoryThickness              float64     `json:"categoryThickness"`
	MinCategoryThickness           float64     `json:"minCategoryThickness"`
	ShouldClamp                    bool        `json:"shouldClamp"`
	ScaleType                      string      `json:"scaleType"`
	DisplayUnits                   float64     `json:"displayUnits"`
	UnitSystem                     string      `json:"unitSystem"`
	Precision                      *int        `json:"precision"`
	Is100Pct                       bool        `json:"is100Pct"`
	UseTickIntervalForDisplayUnits bool        `json:"useTickIntervalForDisplayUnits"`
}

func (req AxisRequest) Options() (axis.AxisOptions, error) {
	if req.PixelSpan <= 0 {
		return axis.AxisOptions{}, errors.NotValidf("pixel span %v", req.PixelSpan)
	}
	t, ok := valueTypes[strings.ToLower(req.Type)]
	if !ok {
		return axis.AxisOptions{}, errors.NotValidf("value type %q", req.Type)
	}
	scaleType := axis.ScaleType(strings.ToLower(req.ScaleType))
	if scaleType != "" && scaleType != axis.LinearScaleType && scaleType != axis.LogScaleType {
		return axis.AxisOptions{}, errors.NotValidf("scale type %q", req.ScaleType)
	}

	o := axis.AxisOptions{
		PixelSpan:                      req.PixelSpan,
		DataDomain:                     req.DataDomain,
		Metadata:                       &axis.ColumnMetadata{Name: req.Name, Type: t, Format: req.FormatString},
		FormatString:                   req.FormatString,
		OuterPadding:                   req.OuterPadding,
		InnerPaddingRatio:              req.InnerPaddingRatio,
		IsScalar:                       req.IsScalar,
		IsVertical:                     req.IsVertical,
		ForcedTickCount:                req.ForcedTickCount,
		MaxTickCount:                   req.MaxTickCount,
		CategoryThickness:              req.CategoryThickness,
		MinCategoryThickness:           req.MinCategoryThickness,
		ShouldClamp:                    req.ShouldClamp,
		ScaleType:                      scaleType,
		DisplayUnits:                   req.DisplayUnits,
		UnitSystem:                     req.UnitSystem,
		Precision:                      req.Precision,
		Is100Pct:                       req.Is100Pct,
		UseTickIntervalForDisplayUnits: req.UseTickIntervalForDisplayUnits,
	}
	if len(req.Categories) > 0 && !req.IsScalar {
		categories := req.Categories
		o.DataDomain = make([]float64, len(categories))
		for i := range categories {
			o.DataDomain[i] = float64(i)
		}
		o.ValueFn = func(i int) interface{} {
			if i < 0 || i >= len(categories) {
				return nil
			}
			return categories[i]
		}
	}
	return o, nil
}

// HistogramRequest carries raw values, inline or as CSV, and the settings
// overriding the server configuration.
type HistogramRequest struct {
	Values axis.Values   `json:"values"`
	CSV    string        `json:"csv"`
	Config config.Config `json:"config"`
}

func (s *Server) handlerAxis(w http.ResponseWriter, r *http.Request) {
	var req AxisRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	o, err := req.Options()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, axis.CreateAxis(o))
}

func (s *Server) handlerHistogram(w http.ResponseWriter, r *http.Request) {
	req := HistogramRequest{Config: s.Conf}
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	values := []float64(req.Values)
	if req.CSV != "" {
		var err error
		values, err = histogram.ReadValues(strings.NewReader(req.CSV), req.Config.Column)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	m, err := visual.Build(values, req.Config)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, m)
}

func (s *Server) handlerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"version": s.Version})
}

// handlerLogs returns the recent log messages, newest first.
func (s *Server) handlerLogs(w http.ResponseWriter, r *http.Request) {
	if s.Logs == nil {
		writeJSON(w, []logging.HttpMessage{})
		return
	}
	writeJSON(w, s.Logs.Messages())
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NotValidf("request body (%s)", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	if err := e.Encode(v); err != nil {
		log.Errorf("API encoding error: %s", err)
		http.Error(w, "Encoding error", 500)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errors.NotValid) || errors.Is(err, errors.NotSupported) {
		status = http.StatusBadRequest
	}
	log.WithField("status", status).Debugf("API error: %s", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
