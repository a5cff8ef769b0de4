package cmd

import (
	"context"
	"fmt"

	"verdex/core/config"
	"verdex/core/database"
	"verdex/core/logger"
	"verdex/core/media"
	"verdex/feature/catalog"
	"verdex/feature/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd loads the bundled dataset into the catalog.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with the bundled plant dataset",
	Long: `Seeds languages, categories and the bundled plants, with image and
audio URLs derived from the media filesystem. Safe to re-run: existing
rows are refreshed, not duplicated.`,
	RunE: runSeed,
}

func init() {
	RootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	store := catalog.NewStore(db, l)
	languages, err := store.KnownLanguageCodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load language set: %w", err)
	}
	resolver := media.NewResolver(cfg.Media, languages, l)

	l.Info("Seeding catalog", zap.String("media_root", cfg.Media.Root))

	result, err := seed.NewService(store, resolver, l).Run(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	l.Info("Seeding complete",
		zap.Int("plants", result.Plants),
		zap.Int("plants_with_audio", result.PlantsWithAudio),
		zap.Int("audio_files", result.AudioFiles),
	)
	return nil
}
