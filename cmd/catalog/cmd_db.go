package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mytheresa/go-catalog-seed/seed"
)

var fixtureFlag string

// catalog migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, store, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Info().Msg("schema up to date")
		return nil
	},
}

// catalog seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty catalog with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture := seed.DefaultFixture()
		if fixtureFlag != "" {
			var err error
			if fixture, err = seed.LoadFixture(fixtureFlag); err != nil {
				return err
			}
		}

		ctx, store, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		res, err := seed.New(store, fixture).Run(ctx)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}

		log := zerolog.Ctx(ctx)
		if res.Skipped {
			log.Info().Msg("catalog already seeded")
			return nil
		}
		log.Info().
			Int("categories", res.Categories).
			Int("products", res.Products).
			Msg("catalog seeded")
		return nil
	},
}

// catalog stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many categories and products the catalog holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, store, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-32s  %s\n", "Category", "Products")
		for _, c := range stats.PerCategory {
			fmt.Fprintf(out, "%-32s  %d\n", c.Title, c.Products)
		}
		fmt.Fprintf(out, "\n%d categories, %d products\n", stats.Categories, stats.Products)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&fixtureFlag, "fixture", "", "YAML fixture to seed instead of the built-in catalog")
}
