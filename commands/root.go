package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"career-roadmap/config"
	"career-roadmap/logging"
	"career-roadmap/services"
)

// NewRootCmd builds the roadmap command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roadmap",
		Short: "Career roadmap planner",
		Long: `roadmap spreads a chosen number of months over the learning phases
of a career path and serves the result as a small web application.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (default is ./roadmap.yaml)")

	root.AddCommand(
		newServeCmd(),
		newPlanCmd(),
		newPathsCmd(),
		newCatalogCmd(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, err
	}
	return config.Load(v)
}

// setup loads config, a stderr logger and the catalog shared by every subcommand.
func setup(ctx context.Context, cmd *cobra.Command) (*config.Config, zerolog.Logger, *services.Catalog, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	log := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}, cmd.ErrOrStderr())

	cat, err := services.OpenCatalog(ctx, cfg.Catalog, log)
	if err != nil {
		return nil, log, nil, err
	}
	return cfg, log, cat, nil
}
