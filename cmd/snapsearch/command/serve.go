// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/snappauto/pkg/adapter/restful/gin/routes"
	"github.com/momeni/snappauto/pkg/core/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the REST API server which accepts the search and cities
lookup requests under the /api/snapsearch/v1 path (and exposes the
prometheus metrics if they are enabled).
The server stops gracefully by the SIGINT or SIGTERM signals.`,
	Args: cobra.NoArgs,
	RunE: startWebServer,
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	m := c.Metrics.New()
	e := c.Gin.NewEngine(m)
	uc, err := routes.Register(e, c, m)
	if err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	defer uc.Close()

	srv := &http.Server{
		Addr:              *c.Gin.Address,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting web server", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return fmt.Errorf("running web server: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "stopping web server")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), 10*time.Second,
	)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running web server: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
