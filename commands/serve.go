package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"career-roadmap/config"
	"career-roadmap/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the roadmap web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, log, cat, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			if cfg.Session.Secret == "" {
				log.Warn().Msg("session.secret not set, using a random key; remembered selections reset on restart")
			}

			handler, err := server.NewRouter(server.Deps{
				Config:   cfg,
				Catalog:  cat,
				Sessions: config.NewSessionStore(cfg.Session),
				Log:      log,
			})
			if err != nil {
				return err
			}
			return server.New(cfg.Server, handler, log).ListenAndServe(ctx)
		},
	}
}
