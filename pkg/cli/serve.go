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

	"github.com/appdock-io/appdock/pkg/cli/config"
	httpctrl "github.com/appdock-io/appdock/pkg/controller/http"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/appdock-io/appdock/pkg/usecase"
	"github.com/appdock-io/appdock/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var noAuthUID string
	var tokenTTL time.Duration
	var enableTokenIssuer bool
	var catalogCfg config.Catalog
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("APPDOCK_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run as the specified user ID (development only). Example: --no-auth=u-alice",
			Category:    "Authentication",
			Sources:     cli.EnvVars("APPDOCK_NO_AUTH"),
			Destination: &noAuthUID,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Lifetime of issued session tokens",
			Value:       24 * time.Hour,
			Category:    "Authentication",
			Sources:     cli.EnvVars("APPDOCK_TOKEN_TTL"),
			Destination: &tokenTTL,
		},
		&cli.BoolFlag{
			Name:        "enable-token-issuer",
			Usage:       "Expose POST /api/auth/token for minting session tokens (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("APPDOCK_ENABLE_TOKEN_ISSUER"),
			Destination: &enableTokenIssuer,
		},
	}

	// Add shared config flags
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			authOpts := []usecase.AuthOption{
				usecase.WithTokenTTL(tokenTTL),
			}
			if noAuthUID != "" {
				authOpts = append(authOpts, usecase.WithNoAuthn(types.UserID(noAuthUID)))
				logging.Default().Warn("Running in no-auth mode (development only)", "user_id", noAuthUID)
			}
			authUC := usecase.NewAuthUseCase(repo, authOpts...)

			uc := usecase.New(repo, cat, usecase.WithAuth(authUC))

			httpOpts := []httpctrl.Options{}
			if enableTokenIssuer {
				httpOpts = append(httpOpts, httpctrl.WithTokenIssuer(true))
				logging.Default().Warn("Token issuer endpoint enabled (development only)")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
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

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
