package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/cli/config"
	server "github.com/secmon-lab/codeseeker/pkg/controller/http"
	"github.com/secmon-lab/codeseeker/pkg/usecase"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var (
		addr      string
		sentryCfg config.Sentry
		githubCfg config.GitHub
		pluginCfg config.Plugin
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("CODESEEKER_ADDR"),
				Usage:       "Listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		sentryCfg.Flags(),
		githubCfg.Flags(),
		pluginCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the HTTP gateway",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"sentry", sentryCfg,
				"github", githubCfg,
				"plugin", pluginCfg,
			)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			githubClient, err := githubCfg.Configure()
			if err != nil {
				return err
			}

			assets, err := pluginCfg.Configure(addr)
			if err != nil {
				return err
			}

			uc := usecase.New(usecase.WithGitHubClient(githubClient))

			httpServer := http.Server{
				Addr: addr,
				Handler: server.New(uc,
					server.WithManifest(assets.Manifest),
					server.WithLogo(assets.Logo),
					server.WithOpenAPI(assets.OpenAPI),
				),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "failed to serve", goerr.V("addr", addr))
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("shutting down server", "signal", sig.String())
			case <-ctx.Done():
				logging.Default().Info("shutting down server", "reason", ctx.Err())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server")
			}
			return nil
		},
	}
}
