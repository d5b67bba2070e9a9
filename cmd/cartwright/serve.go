// Serve command for the cartwright CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/internal/handlers"
	"github.com/fairwayworks/cartwright/internal/logger"
	"github.com/fairwayworks/cartwright/internal/server"
)

var (
	serveAddr string
	serveMode string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configurator HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(serveMode)
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve: logger:", err)
			os.Exit(exitSysError)
		}
		defer log.Sync()

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		rates, err := loadRates()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}

		router := server.NewRouter(server.RouterConfig{
			Log:                  log,
			CatalogHandler:       handlers.NewCatalogHandler(log, store),
			ConfigurationHandler: handlers.NewConfigurationHandler(log, store, rates),
			QuoteHandler:         handlers.NewQuoteHandler(log, store, rates),
		})

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("serving HTTP API", "addr", serveAddr, "data_dir", store.DataDir())
			errCh <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintln(os.Stderr, "serve:", err)
				os.Exit(exitSysError)
			}
		case sig := <-stop:
			log.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "serve: shutdown:", err)
				os.Exit(exitSysError)
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveMode, "mode", "dev", "log mode (dev or prod)")
}
