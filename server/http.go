// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package server histogram-visual
//
// HTTP API computing histogram axes
//
//	Schemes: http
//	Host: localhost
//	BasePath: /api
//	Version: 0.0.1
//	License: GPL http://opensource.org/licenses/GPL
//	Contact: Stephane Varoqui  <svaroqui@gmail.com>
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/juju/errors"
	"github.com/signal18/histogram-visual/config"
	"github.com/signal18/histogram-visual/logging"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Conf    config.Config
	Version string
	// Logs, when set, is served at /api/logs.
	Logs *logging.HttpLog
}

type Route struct {
	Method  string                                       `json:"method"`
	URL     string                                       `json:"url"`
	Handler func(w http.ResponseWriter, r *http.Request) `json:"-"`
}

func New(conf config.Config, version string) *Server {
	return &Server{Conf: conf, Version: version}
}

func (s *Server) Routes() []Route {
	return []Route{
		{http.MethodPost, "/api/axis", s.handlerAxis},
		{http.MethodPost, "/api/histogram", s.handlerHistogram},
		{http.MethodGet, "/api/version", s.handlerVersion},
		{http.MethodGet, "/api/logs", s.handlerLogs},
	}
}

func (s *Server) RouteParser(router *mux.Router, routes []Route) {
	for _, route := range routes {
		router.Handle(route.URL, negroni.New(
			negroni.HandlerFunc(logRequest),
			negroni.Wrap(http.HandlerFunc(route.Handler)),
		)).Methods(route.Method)
	}
}

// Handler returns the API router wrapped with panic recovery and CORS.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	s.RouteParser(router, s.Routes())

	recovery := negroni.NewRecovery()
	recovery.Logger = log.StandardLogger()
	recovery.PrintStack = false
	n := negroni.New(recovery)
	n.UseHandler(router)

	return handlers.CORS(
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedOrigins([]string{"*"}),
	)(n)
}

// ListenAndServe serves the API until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(s.Conf.BindAddr, s.Conf.HttpPort),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.Infof("HTTP API listening on %s", srv.Addr)

	select {
	case err := <-errc:
		return errors.Annotatef(err, "serving %s", srv.Addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("HTTP API shutting down")
	return errors.Trace(srv.Shutdown(shutdownCtx))
}

func logRequest(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(w, r)
	fields := log.Fields{
		"method":   r.Method,
		"url":      r.URL.Path,
		"duration": time.Since(start),
	}
	if res, ok := w.(negroni.ResponseWriter); ok {
		fields["status"] = res.Status()
	}
	log.WithFields(fields).Debug("API request")
}
