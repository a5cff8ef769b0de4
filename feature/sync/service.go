package sync

import (
	"context"
	"fmt"

	"verdex/core/utils"
	"verdex/feature/catalog"
	"verdex/feature/catalog/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service implements the bidirectional sync merge over the catalog store.
type Service struct {
	store    *catalog.Store
	logger   *zap.Logger
	validate *validator.Validate
	language string
}

// NewService creates a sync service. The language is the projection
// language for pulls and the only translation language pushes may write.
func NewService(store *catalog.Store, logger *zap.Logger, language string) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		validate: validator.New(),
		language: language,
	}
}

// Pull assembles a full catalog snapshot for a client. Plants are
// flattened to the projection language; the auxiliary collections are raw
// table snapshots.
func (s *Service) Pull(ctx context.Context) (*Snapshot, error) {
	plants, err := s.store.ListPlants(ctx)
	if err != nil {
		return nil, err
	}
	translations, err := s.store.ListTranslations(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	translationByPlant := make(map[uint]models.PlantTranslation, len(plants))
	for _, translation := range translations {
		if translation.LanguageCode == s.language {
			translationByPlant[translation.PlantID] = translation
		}
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	snapshot := &Snapshot{Plants: make([]PlantRecord, 0, len(plants))}
	for i := range plants {
		snapshot.Plants = append(snapshot.Plants, project(&plants[i], translationByPlant, categoryNames))
	}

	if snapshot.Users, err = s.fetchTable(ctx, "users"); err != nil {
		return nil, err
	}
	if snapshot.Posts, err = s.fetchTable(ctx, "posts"); err != nil {
		return nil, err
	}
	if snapshot.Categories, err = s.fetchTable(ctx, "plant_categories"); err != nil {
		return nil, err
	}
	if snapshot.Roles, err = s.fetchTable(ctx, "roles"); err != nil {
		return nil, err
	}
	if snapshot.Permissions, err = s.fetchTable(ctx, "permissions"); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Push merges a client payload into the catalog. Items are processed
// independently: a bad item is skipped and reported, never fatal for the
// batch. The error return is reserved for total failures and is currently
// always nil.
func (s *Service) Push(ctx context.Context, payload *PushPayload) (*PushReport, error) {
	report := &PushReport{Errors: []string{}}

	s.mergePlants(ctx, payload.Plants, report)
	s.mergeTable(ctx, "users", payload.Users, report)
	s.mergeTable(ctx, "posts", payload.Posts, report)
	s.mergeTable(ctx, "plant_categories", payload.Categories, report)
	s.mergeTable(ctx, "roles", payload.Roles, report)
	s.mergeTable(ctx, "permissions", payload.Permissions, report)

	if s.logger != nil {
		s.logger.Info("Push merge finished",
			zap.Int("synced", report.Synced),
			zap.Int("failed", report.Failed),
		)
	}
	return report, nil
}

func (s *Service) mergePlants(ctx context.Context, items []map[string]any, report *PushReport) {
	for idx, item := range items {
		if err := s.mergePlant(ctx, item); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("plants[%d]: %v", idx, err))
			if s.logger != nil {
				s.logger.Warn("Skipping plant in push merge", zap.Int("index", idx), zap.Error(err))
			}
			continue
		}
		report.Synced++
	}
}

// mergePlant writes one incoming plant and, when the item carries textual
// content, its translation in the projection language. Both rows share one
// transaction. The client is the ID authority: an unknown ID creates the
// row with that exact ID.
func (s *Service) mergePlant(ctx context.Context, item map[string]any) error {
	name := utils.ToString(item["scientific_name"])
	if name == "" {
		name = utils.ToString(item["name"])
	}
	checked := plantItem{ID: utils.ToInt(item["id"]), ScientificName: name}
	if err := s.validate.Struct(&checked); err != nil {
		return fmt.Errorf("invalid plant item: %w", err)
	}

	// Categories are resolved by exact name and never auto-created; an
	// unknown name leaves the plant uncategorized.
	categoryName, hasCategory := stringField(item, "category")
	var categoryID *uint
	if hasCategory && categoryName != "" {
		category, err := s.store.FindCategoryByName(ctx, categoryName)
		if err != nil {
			return err
		}
		if category != nil {
			id := category.ID
			categoryID = &id
		}
	}

	description, hasDescription := stringField(item, "description")
	uses, hasUses := stringField(item, "uses")

	return s.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := catalog.FindPlantTx(tx, uint(checked.ID))
		if err != nil {
			return err
		}

		candidate := models.Plant{
			ID:              uint(checked.ID),
			ScientificName:  checked.ScientificName,
			PlantCategoryID: categoryID,
			Family:          utils.ToString(item["family"]),
			Genus:           utils.ToString(item["genus"]),
			Species:         utils.ToString(item["species"]),
			ToxicityLevel:   utils.ToString(item["toxicity_level"]),
		}
		if (!hasCategory || categoryName == "") && existing != nil {
			// An item that never mentioned a category keeps the stored one.
			candidate.PlantCategoryID = existing.PlantCategoryID
		}

		plant, err := catalog.UpsertPlantTx(tx, &candidate)
		if err != nil {
			return err
		}

		if !hasDescription && !hasUses {
			return nil
		}

		fields := catalog.TranslationFields{
			CommonName:  checked.ScientificName,
			Description: description,
			Uses:        uses,
		}
		if common, hasName := stringField(item, "name"); hasName {
			// A present name wins even when empty; only an absent one
			// falls back to the scientific name.
			fields.CommonName = common
		}
		current, err := catalog.FindTranslationTx(tx, plant.ID, s.language)
		if err != nil {
			return err
		}
		if current != nil {
			// Absent fields keep their stored values.
			if !hasDescription {
				fields.Description = current.Description
			}
			if !hasUses {
				fields.Uses = current.Uses
			}
		}
		_, err = catalog.UpsertTranslationTx(tx, plant.ID, s.language, fields)
		return err
	})
}

func (s *Service) mergeTable(ctx context.Context, table string, items []map[string]any, report *PushReport) {
	for idx, item := range items {
		if err := s.mergeRow(ctx, table, item); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s[%d]: %v", table, idx, err))
			if s.logger != nil {
				s.logger.Warn("Skipping row in push merge",
					zap.String("table", table),
					zap.Int("index", idx),
					zap.Error(err),
				)
			}
			continue
		}
		report.Synced++
	}
}

// mergeRow is the schema-agnostic upsert for the auxiliary collections:
// match by id, overwrite every supplied field, create with the client's id
// when absent.
func (s *Service) mergeRow(ctx context.Context, table string, item map[string]any) error {
	id := utils.ToInt(item["id"])
	if id <= 0 {
		return fmt.Errorf("missing or non-positive id")
	}

	db := s.store.DB().WithContext(ctx)

	var count int64
	if err := db.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up row %d: %w", id, err)
	}

	if count > 0 {
		updates := make(map[string]any, len(item))
		for key, value := range item {
			if key == "id" {
				continue
			}
			updates[key] = value
		}
		if len(updates) == 0 {
			return nil
		}
		if err := db.Table(table).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update row %d: %w", id, err)
		}
		return nil
	}

	row := make(map[string]any, len(item))
	for key, value := range item {
		row[key] = value
	}
	row["id"] = id
	if err := db.Table(table).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create row %d: %w", id, err)
	}
	return nil
}

func (s *Service) fetchTable(ctx context.Context, table string) ([]map[string]any, error) {
	rows := []map[string]any{}
	if err := s.store.DB().WithContext(ctx).Table(table).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot %s: %w", table, err)
	}
	return rows, nil
}

func project(plant *models.Plant, translations map[uint]models.PlantTranslation, categoryNames map[uint]string) PlantRecord {
	record := PlantRecord{
		ID:             plant.ID,
		ScientificName: plant.ScientificName,
		Name:           plant.ScientificName,
		Family:         plant.Family,
		Genus:          plant.Genus,
		Species:        plant.Species,
		ToxicityLevel:  plant.ToxicityLevel,
		Tags:           []string{},
		CreatedAt:      plant.CreatedAt,
		UpdatedAt:      plant.UpdatedAt,
	}
	if translation, ok := translations[plant.ID]; ok {
		if translation.CommonName != "" {
			record.Name = translation.CommonName
		}
		record.Description = translation.Description
		record.Uses = translation.Uses
	}
	if plant.PlantCategoryID != nil {
		record.Category = categoryNames[*plant.PlantCategoryID]
	}
	if urls := plant.ImageURLs(); len(urls) > 0 {
		record.ImageURL = urls[0]
	}
	return record
}

// stringField distinguishes "absent or null" from "present but empty",
// which drives the keep-stored-value rules of the merge.
func stringField(item map[string]any, key string) (string, bool) {
	value, ok := item[key]
	if !ok || value == nil {
		return "", false
	}
	return utils.ToString(value), true
}
