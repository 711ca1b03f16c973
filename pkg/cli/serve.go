package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
	httpctrl "github.com/caselog-dev/caselog/pkg/controller/http"
	"github.com/caselog-dev/caselog/pkg/utils/errutil"
	"github.com/caselog-dev/caselog/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var cfgPath string
	var addr string
	var storeCfg config.Store

	flags := []cli.Flag{
		configFlag(&cfgPath),
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("CASELOG_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, storeCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the local dashboard API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := openSession(ctx, c, cfgPath, &storeCfg)
			if err != nil {
				return err
			}
			defer sess.close(ctx)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(sess.uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				// A save failure during the session leaves appended cases
				// non-durable; try once more before exiting.
				if err := errutil.Handle(ctx, sess.uc.Flush(ctx), "cases still pending after shutdown"); err != nil {
					return err
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
