package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTPAddr = addr
			}

			h := server.Router(server.RouterOptions{
				Registry:      a.registry,
				SchemaOptions: a.cfg.SchemaOptions(a.log),
				MaxBodyBytes:  a.cfg.MaxBodyBytes,
				Logger:        a.log,
				Metrics:       server.NewMetrics(),
			})
			srv := server.NewFromConfig(a.cfg,
				server.WithLogger(a.log),
				server.WithStartHook(func(addr string, log *slog.Logger) {
					log.Info("listening", slog.String("addr", addr), slog.Int("schemas", a.registry.Len()))
				}),
				server.WithStopHook(func(log *slog.Logger) {
					log.Info("stopped")
				}),
			)
			if err := srv.Run(cmd.Context(), h); err != nil {
				a.log.Error("server failed", logger.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SCHEMAKIT_HTTP_ADDR)")
	return cmd
}
