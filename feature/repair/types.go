package repair

// Action is a planned reassignment of one plant's image set.
type Action struct {
	// PlantID is the plant to repair.
	PlantID uint `json:"plant_id"`

	// ScientificName is the plant's display handle in reports.
	ScientificName string `json:"scientific_name"`

	// BrokenFolders lists the folders referenced by the plant's recorded
	// URLs that are no longer available. Still-valid folders referenced
	// alongside broken ones are discarded too: any broken reference
	// triggers a full reassignment, not a partial patch.
	BrokenFolders []string `json:"broken_folders"`

	// AssignedFolder is the rotation-assigned destination folder.
	AssignedFolder string `json:"assigned_folder"`

	// NewImageURLs is the replacement URL list built from the assigned
	// folder's current contents.
	NewImageURLs []string `json:"new_image_urls"`
}

// Summary provides aggregate counts for a repair plan.
type Summary struct {
	// TotalPlants is the number of plants examined.
	TotalPlants int `json:"total_plants"`

	// Flagged is the number of plants with at least one broken folder
	// reference.
	Flagged int `json:"flagged"`

	// Skipped is the number of flagged plants dropped from the plan
	// because their destination folder could not be scanned.
	Skipped int `json:"skipped"`

	// AvailableFolders is the size of the available-folder set.
	AvailableFolders int `json:"available_folders"`
}

// Plan is the computed repair plan. Building a plan never writes to the
// catalog; ApplyPlan does, and only when confirmed.
type Plan struct {
	// AvailableFolders is the sorted folder set the rotation draws from.
	AvailableFolders []string `json:"available_folders"`

	// Actions are the per-plant reassignments, in plant ID order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Options controls plan application.
type Options struct {
	// DryRun prevents execution of any mutation if true.
	DryRun bool

	// Confirmed indicates the operator has confirmed the repair.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
