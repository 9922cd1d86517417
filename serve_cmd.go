// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/signal18/histogram-visual/config"
	"github.com/signal18/histogram-visual/logging"
	"github.com/signal18/histogram-visual/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const logBufferSize = 200

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API",
	Long: `Starts the histogram-visual HTTP API.

Endpoints:
- POST /api/axis       computes one axis
- POST /api/histogram  bins values and computes both axes
- GET  /api/version
- GET  /api/logs       recent info and above log messages
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		srv := server.New(conf, Version)
		srv.Logs = logging.NewHttpLog(logBufferSize)
		log.AddHook(srv.Logs)
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	def := config.Default()
	serveCmd.Flags().String("http-bind-address", def.BindAddr, "Bind HTTP API to this address")
	serveCmd.Flags().String("http-port", def.HttpPort, "HTTP API port")
	initVisualFlags(serveCmd)
}
