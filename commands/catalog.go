package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"career-roadmap/config"
	"career-roadmap/logging"
	"career-roadmap/services"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the career path catalog",
	}
	cmd.AddCommand(newCatalogSeedCmd())
	return cmd
}

func newCatalogSeedCmd() *cobra.Command {
	var (
		dsn  string
		from string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a catalog into the postgres catalog tables",
		Long: `seed creates the career_paths and phase_templates tables when missing and
replaces the entries for every path of the source catalog. The source is the
built-in catalog unless --from names a YAML file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dsn == "" {
				dsn = cfg.Catalog.DSN
			}
			if dsn == "" {
				return errors.New("no database: pass --dsn or set catalog.dsn")
			}
			log := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}, cmd.ErrOrStderr())

			var cat *services.Catalog
			if from != "" {
				cat, err = services.LoadCatalogFile(from)
			} else {
				cat, err = services.DefaultCatalog()
			}
			if err != nil {
				return fmt.Errorf("load source catalog: %w", err)
			}

			db, err := config.OpenDB(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := config.CloseDB(db); cerr != nil {
					log.Warn().Err(cerr).Msg("closing database")
				}
			}()

			if err := services.SeedCatalog(cmd.Context(), db, cat); err != nil {
				return err
			}
			log.Info().Int("paths", cat.Len()).Msg("catalog seeded")
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "postgres DSN (default catalog.dsn)")
	cmd.Flags().StringVar(&from, "from", "", "YAML catalog file to seed from")
	return cmd
}
