package repair

import (
	"context"
	"fmt"

	"verdex/core/media"
	"verdex/feature/catalog"

	"go.uber.org/zap"
)

// Engine detects plants whose recorded image URLs reference media folders
// that no longer exist, and reassigns them to available folders.
type Engine struct {
	store    *catalog.Store
	resolver *media.Resolver
	logger   *zap.Logger
}

// NewEngine creates a repair engine over the catalog and the media root.
func NewEngine(store *catalog.Store, resolver *media.Resolver, logger *zap.Logger) *Engine {
	return &Engine{store: store, resolver: resolver, logger: logger}
}

// BuildPlan computes the repair plan without touching the catalog.
//
// Flagged plants are assigned round-robin over the sorted available-folder
// set; the rotation index advances only for plants that produce an action.
// Because of that rotation the plan is reproducible for a fixed folder set
// but NOT stable across runs where folders were added or removed.
//
// A missing media root aborts the whole operation. A flagged plant whose
// destination folder cannot be scanned is logged and skipped; the run
// continues for the remaining plants.
func (e *Engine) BuildPlan(ctx context.Context) (*Plan, error) {
	folders, err := e.resolver.ListFolders(ctx)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("%w: no plant folders under %s", media.ErrMediaRootUnavailable, e.resolver.Root())
	}

	available := make(map[string]bool, len(folders))
	for _, folder := range folders {
		available[folder] = true
	}

	plants, err := e.store.ListPlants(ctx)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		AvailableFolders: folders,
		Actions:          []Action{},
		Summary:          Summary{TotalPlants: len(plants), AvailableFolders: len(folders)},
	}

	// Rotation index is local to the plan, never module state.
	rotation := 0

	for i := range plants {
		plant := &plants[i]

		broken := brokenFolders(plant.ImageURLs(), available)
		if len(broken) == 0 {
			continue
		}
		plan.Summary.Flagged++

		assigned := folders[rotation%len(folders)]
		scan, scanErr := e.resolver.ScanPlantMedia(ctx, assigned)
		if scanErr != nil {
			plan.Summary.Skipped++
			if e.logger != nil {
				e.logger.Warn("Skipping plant, destination folder unreadable",
					zap.Uint("plant_id", plant.ID),
					zap.String("scientific_name", plant.ScientificName),
					zap.String("folder", assigned),
					zap.Error(scanErr),
				)
			}
			continue
		}

		plan.Actions = append(plan.Actions, Action{
			PlantID:        plant.ID,
			ScientificName: plant.ScientificName,
			BrokenFolders:  broken,
			AssignedFolder: assigned,
			NewImageURLs:   scan.Images,
		})
		rotation++
	}

	return plan, nil
}

// ApplyPlan persists a repair plan. It returns the number of plants
// updated. Each plant is written in its own transaction; a failed write is
// logged and the batch continues, so re-running after a partial failure
// repairs the remainder.
func (e *Engine) ApplyPlan(ctx context.Context, plan *Plan, opts Options) (int, error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	executed := 0
	for _, action := range plan.Actions {
		if err := e.store.UpdatePlantImages(ctx, action.PlantID, action.NewImageURLs); err != nil {
			if e.logger != nil {
				e.logger.Error("Failed to repair plant",
					zap.Uint("plant_id", action.PlantID),
					zap.String("scientific_name", action.ScientificName),
					zap.String("folder", action.AssignedFolder),
					zap.Error(err),
				)
			}
			continue
		}
		executed++
	}

	return executed, nil
}

// brokenFolders returns the distinct unavailable folders referenced by the
// given URLs. A URL with no recognizable folder counts as broken.
func brokenFolders(urls []string, available map[string]bool) []string {
	var broken []string
	seen := map[string]bool{}
	for _, url := range urls {
		folder := media.FolderFromURL(url)
		if available[folder] {
			continue
		}
		if folder == "" {
			folder = url
		}
		if !seen[folder] {
			seen[folder] = true
			broken = append(broken, folder)
		}
	}
	return broken
}
