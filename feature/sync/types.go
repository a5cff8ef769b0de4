package sync

import "time"

// PlantRecord is the flattened single-language projection of a plant in a
// pull snapshot. Clients consume one language; the per-language translation
// rows never cross the wire.
type PlantRecord struct {
	ID             uint      `json:"id"`
	ScientificName string    `json:"scientific_name"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Family         string    `json:"family"`
	Category       string    `json:"category"`
	Genus          string    `json:"genus"`
	Species        string    `json:"species"`
	ToxicityLevel  string    `json:"toxicity_level"`
	Uses           string    `json:"uses"`
	Tags           []string  `json:"tags"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Snapshot is the full pull payload: the plant projection plus raw table
// snapshots of the auxiliary collections.
type Snapshot struct {
	Plants      []PlantRecord    `json:"plants"`
	Users       []map[string]any `json:"users"`
	Posts       []map[string]any `json:"posts"`
	Categories  []map[string]any `json:"categories"`
	Roles       []map[string]any `json:"roles"`
	Permissions []map[string]any `json:"permissions"`
}

// PushPayload is the client-submitted merge payload. Every collection is
// optional; an absent collection merges nothing.
type PushPayload struct {
	Plants      []map[string]any `json:"plants"`
	Users       []map[string]any `json:"users"`
	Posts       []map[string]any `json:"posts"`
	Categories  []map[string]any `json:"categories"`
	Roles       []map[string]any `json:"roles"`
	Permissions []map[string]any `json:"permissions"`
}

// PushReport summarizes a merge. Items that failed validation or hit a
// write error are skipped and reported here; they never abort the batch.
type PushReport struct {
	Synced int      `json:"synced"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors"`
}

// plantItem carries the validated identity of an incoming plant. The
// client owns plant IDs; an item without one is rejected.
type plantItem struct {
	ID             int    `validate:"required,gt=0"`
	ScientificName string `validate:"required"`
}
