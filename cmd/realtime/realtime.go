// Package realtime implements the serve mode: load the dataset once and
// serve the dashboard and JSON API until interrupted.
package realtime

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"birdcount-go/internal/conf"
	"birdcount-go/internal/dataset"
	"birdcount-go/internal/httpcontroller"
	"birdcount-go/internal/logging"
	"birdcount-go/internal/observability"
)

// Command returns the realtime serve command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realtime",
		Short: "Serve the bird count dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(settings)
		},
	}

	cmd.PersistentFlags().StringVar(&settings.WebServer.Port, "port", settings.WebServer.Port, "Port for the web server")

	return cmd
}

func runServer(settings *conf.Settings) error {
	// Dataset load is fatal on failure: the process must not start
	// serving without both inputs.
	ds, err := dataset.Load(settings)
	if err != nil {
		return err
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		return err
	}

	quitChan := make(chan struct{})
	var wg sync.WaitGroup

	if settings.Telemetry.Enabled {
		endpoint, err := observability.NewEndpoint(settings, metrics)
		if err != nil {
			return err
		}
		endpoint.Start(&wg, quitChan)
	}

	server := httpcontroller.New(settings, ds, metrics)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logging.Info("shutting down", "signal", sig.String())
	case err := <-errChan:
		close(quitChan)
		wg.Wait()
		return err
	}

	close(quitChan)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("server shutdown failed", "error", err)
	}

	wg.Wait()
	return nil
}
