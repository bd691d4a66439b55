package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/medassist-lab/medassist/pkg/cli/config"
	httpctrl "github.com/medassist-lab/medassist/pkg/controller/http"
	"github.com/medassist-lab/medassist/pkg/service/knowledge"
	"github.com/medassist-lab/medassist/pkg/service/llm"
	"github.com/medassist-lab/medassist/pkg/usecase"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe(loggerCfg *config.Logger) *cli.Command {
	var addr string
	var appCfg config.AppConfig
	var llmCfg config.LLM
	var knowledgeCfg config.Knowledge

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MEDASSIST_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM provider")
			}
			llmSvc, err := llm.New(llmClient, llm.WithDimension(knowledgeCfg.Dimension()))
			if err != nil {
				return goerr.Wrap(err, "failed to create LLM service")
			}

			// Build the knowledge base once, before serving. A load
			// failure degrades retrieval to the no-information sentinel
			// instead of preventing startup.
			store := knowledge.NewStore(nil)
			if dir := knowledgeCfg.Dir(); dir != "" {
				loader, err := knowledge.NewLoader(llmSvc,
					knowledge.WithChunkSize(knowledgeCfg.ChunkSize()),
				)
				if err != nil {
					return goerr.Wrap(err, "failed to create knowledge loader")
				}

				loaded, err := loader.Load(ctx, dir)
				if err != nil {
					logging.Critical(ctx, "failed to load knowledge base, serving degraded",
						"error", err.Error(),
						"dir", dir,
					)
				} else {
					store = loaded
				}
			} else {
				logging.Default().Warn("knowledge directory not configured, retrieval will be degraded")
			}

			retriever, err := knowledge.NewRetriever(store, llmSvc,
				knowledge.WithTopK(knowledgeCfg.TopK()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create retriever")
			}

			uc := usecase.New(llmSvc, retriever,
				usecase.WithFundAliases(appCfg.FundAliases()),
				usecase.WithTierAliases(appCfg.TierAliases()),
			)

			httpHandler, err := httpctrl.New(uc, httpctrl.WithLogBuffer(loggerCfg.Ring()))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"chunks", store.Len(),
				)
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
