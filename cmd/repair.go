package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"verdex/core/config"
	"verdex/core/database"
	"verdex/core/logger"
	"verdex/core/media"
	"verdex/feature/catalog"
	"verdex/feature/repair"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for repair images command
	dryRunImages bool
	yesConfirm   bool
)

// repairCmd is the parent command for all repair operations.
var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair catalog references against the media filesystem",
	Long:  `Repair operations detect and fix catalog rows that reference missing media.`,
}

// imagesRepairCmd reassigns plants whose image URLs reference missing folders.
var imagesRepairCmd = &cobra.Command{
	Use:   "images",
	Short: "Reassign plants referencing missing media folders",
	Long: `Flags every plant whose recorded image URLs reference a folder that no
longer exists under the media root, reassigns flagged plants round-robin
over the available folders, and rebuilds their URL lists.

Examples:
  # Report only (dry-run)
  repair images --dry-run

  # Repair with interactive confirmation
  repair images

  # Repair with auto-confirm (non-interactive)
  repair images --yes`,
	RunE: runImagesRepair,
}

func init() {
	repairCmd.AddCommand(imagesRepairCmd)

	imagesRepairCmd.Flags().BoolVar(&dryRunImages, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	imagesRepairCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the repair (non-interactive)")

	RootCmd.AddCommand(repairCmd)
}

func runImagesRepair(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting image repair")

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
	engine := repair.NewEngine(store, resolver, l)

	// Step 1: Plan (always runs)
	plan, err := engine.BuildPlan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan repair: %w", err)
	}

	// Step 2: Print report
	printRepairReport(l, plan)

	if len(plan.Actions) == 0 {
		l.Info("Nothing to repair.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if dryRunImages {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmRepair() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	executed, err := engine.ApplyPlan(ctx, plan, repair.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Successfully repaired plants", zap.Int("count", executed))
	return nil
}

// printRepairReport prints a formatted repair report using logger.
func printRepairReport(l *zap.Logger, plan *repair.Plan) {
	s := plan.Summary

	l.Info("Repair report",
		zap.Int("total_plants", s.TotalPlants),
		zap.Int("flagged", s.Flagged),
		zap.Int("skipped", s.Skipped),
		zap.Int("available_folders", s.AvailableFolders),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := 5
	if len(plan.Actions) < maxShow {
		maxShow = len(plan.Actions)
	}
	for i := 0; i < maxShow; i++ {
		action := plan.Actions[i]
		l.Info("Planned reassignment",
			zap.Uint("plant_id", action.PlantID),
			zap.String("scientific_name", action.ScientificName),
			zap.Strings("broken_folders", action.BrokenFolders),
			zap.String("assigned_folder", action.AssignedFolder),
			zap.Int("new_images", len(action.NewImageURLs)),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("More reassignments planned", zap.Int("remaining", len(plan.Actions)-maxShow))
	}
}

func confirmRepair() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm the repair: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
