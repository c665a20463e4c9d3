package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/config"
	"github.com/jjenkins/resume/internal/logging"
	"github.com/jjenkins/resume/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogType string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or publish the tracked achievement catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		out := cmd.OutOrStdout()
		for _, id := range catalog.ParseSelector(catalogType) {
			cat, ok := a.catalog.Category(id)
			if !ok {
				continue
			}
			fmt.Fprintf(out, "[%s] %s\n", cat.ID, cat.Name)
			for _, d := range cat.Achievements {
				fmt.Fprintf(out, "  %4d  %s  release %s  minor %s  major %s\n",
					d.SortIndex, d.Label(), day(d.ReleaseTime), day(d.StrictDeadline), day(d.LenientDeadline))
			}
		}
		return nil
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the catalog into PostgreSQL",
	Long: `Seed replaces the catalog tables in DATABASE_URL with the catalog compiled
into the binary, or with the YAML file given by --file.`,
	RunE: runCatalogSeed,
}

var seedFile string

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogSeedCmd)
	catalogListCmd.Flags().StringVarP(&catalogType, "type", "t", catalog.SelectorAll, "Category to list (all/u/s/bm/ad/pd/dd)")
	catalogSeedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog to seed instead of the embedded one")
}

func runCatalogSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cat, err := catalog.Default()
	if seedFile != "" {
		cat, err = catalog.LoadFile(seedFile)
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	s := store.NewCatalogStore(db)
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := s.Replace(ctx, cat)
	if err != nil {
		return err
	}

	logger.Info("catalog seeded", zap.Int("achievements", n))
	return nil
}

func day(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}
