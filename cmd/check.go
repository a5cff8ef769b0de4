package cmd

import (
	"context"
	"fmt"

	"verdex/core/config"
	"verdex/core/database"
	"verdex/core/logger"
	"verdex/core/media"
	"verdex/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd reports the catalog's plants against the media filesystem.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report plants and available media folders",
	Long: `Lists every plant with its image count and category, plus the plant
folders available under the media root. Read-only. Exits non-zero when
the media root is missing.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	folders, err := resolver.ListFolders(ctx)
	if err != nil {
		return err
	}

	plants, err := store.ListPlants(ctx)
	if err != nil {
		return err
	}
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return err
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	for i := range plants {
		plant := &plants[i]
		categoryName := ""
		if plant.PlantCategoryID != nil {
			categoryName = categoryNames[*plant.PlantCategoryID]
		}
		l.Info("Plant",
			zap.Uint("id", plant.ID),
			zap.String("scientific_name", plant.ScientificName),
			zap.Int("images", len(plant.ImageURLs())),
			zap.String("category", categoryName),
		)
	}

	l.Info("Available media folders",
		zap.Int("count", len(folders)),
		zap.Strings("folders", folders),
	)
	l.Info("Check complete", zap.Int("plants", len(plants)))
	return nil
}
