package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"verdex/core/server"
	"verdex/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound indicates a referenced plant, translation or category is absent.
var ErrNotFound = errors.New("not found")

// TranslationFields carries the writable fields of a translation upsert.
// AudioURL is a pointer so callers that don't own the audio URL (the sync
// path) can leave it untouched by passing nil.
type TranslationFields struct {
	CommonName  string
	Description string
	Uses        string
	AudioURL    *string
}

// Store is the canonical relational model over plants, categories,
// translations and languages. All multi-row writes for a single plant run
// inside one transaction; a failure rolls the whole plant back and leaves
// earlier plants of the same batch committed.
//
// There is no optimistic locking: concurrent writers to the same plant are
// expected to be rare (single admin, single sync job). Last write wins.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a catalog store over the given database handle.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// DB exposes the underlying handle for callers that operate on auxiliary
// tables outside the catalog model (the generic sync merge).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// GetPlant fetches a plant by ID.
func (s *Store) GetPlant(ctx context.Context, id uint) (*models.Plant, error) {
	var plant models.Plant
	err := s.db.WithContext(ctx).First(&plant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("plant %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plant %d: %w", id, err)
	}
	return &plant, nil
}

// GetPlantByScientificName fetches a plant by its scientific name.
// The match is exact and case-sensitive.
func (s *Store) GetPlantByScientificName(ctx context.Context, name string) (*models.Plant, error) {
	var plant models.Plant
	err := s.db.WithContext(ctx).Where("scientific_name = ?", name).First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("plant %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plant %q: %w", name, err)
	}
	return &plant, nil
}

// ListPlants returns all plants ordered by ID.
func (s *Store) ListPlants(ctx context.Context) ([]models.Plant, error) {
	var plants []models.Plant
	if err := s.db.WithContext(ctx).Order("id").Find(&plants).Error; err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, nil
}

// ListTranslations returns all translations ordered by plant and language.
func (s *Store) ListTranslations(ctx context.Context) ([]models.PlantTranslation, error) {
	var translations []models.PlantTranslation
	if err := s.db.WithContext(ctx).Order("plant_id, language_code").Find(&translations).Error; err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	return translations, nil
}

// ListCategories returns all categories ordered by ID.
func (s *Store) ListCategories(ctx context.Context) ([]models.PlantCategory, error) {
	var categories []models.PlantCategory
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// FindCategoryByName looks up a category by exact, case-sensitive name.
// A missing category returns (nil, nil): "no match" is a normal outcome for
// the sync path, which maps it to an uncategorized plant.
func (s *Store) FindCategoryByName(ctx context.Context, name string) (*models.PlantCategory, error) {
	var category models.PlantCategory
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	return &category, nil
}

// EnsureCategory fetches a category by name, creating it when absent.
// Only the seeder and admin tooling create categories; sync never does.
func (s *Store) EnsureCategory(ctx context.Context, name string) (*models.PlantCategory, error) {
	existing, err := s.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	category := models.PlantCategory{Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	return &category, nil
}

// UpsertPlant creates or updates a plant. When the candidate carries an ID
// the match is by ID, creating the row with that exact ID if absent (the
// sync client is the ID authority on that path); otherwise the match is by
// scientific name.
func (s *Store) UpsertPlant(ctx context.Context, candidate *models.Plant) (*models.Plant, error) {
	var result *models.Plant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = UpsertPlantTx(tx, candidate)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpsertTranslation creates or updates the translation for
// (plantID, languageCode), keeping the at-most-one-per-language invariant.
func (s *Store) UpsertTranslation(ctx context.Context, plantID uint, languageCode string, fields TranslationFields) (*models.PlantTranslation, error) {
	var result *models.PlantTranslation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = UpsertTranslationTx(tx, plantID, languageCode, fields)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpsertPlantWithTranslations writes a plant and its translation set in a
// single transaction. Any failure rolls back every row of this plant.
func (s *Store) UpsertPlantWithTranslations(ctx context.Context, candidate *models.Plant, translations map[string]TranslationFields) (*models.Plant, error) {
	var result *models.Plant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plant, txErr := UpsertPlantTx(tx, candidate)
		if txErr != nil {
			return txErr
		}
		for _, code := range sortedKeys(translations) {
			if _, txErr = UpsertTranslationTx(tx, plant.ID, code, translations[code]); txErr != nil {
				return txErr
			}
		}
		result = plant
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("plant write rolled back: %w", err)
	}
	return result, nil
}

// UpdatePlantImages replaces a plant's stored image URL list. The single
// UPDATE is its own transaction; repair batches call this once per plant so
// one failed plant never poisons the rest of the run.
func (s *Store) UpdatePlantImages(ctx context.Context, plantID uint, urls []string) error {
	var encoder models.Plant
	encoder.SetImageURLs(urls)

	result := s.db.WithContext(ctx).
		Model(&models.Plant{}).
		Where("id = ?", plantID).
		Update("image_urls", encoder.ImageURLsRaw)
	if result.Error != nil {
		return fmt.Errorf("failed to update images for plant %d: %w", plantID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("plant %d: %w", plantID, ErrNotFound)
	}
	return nil
}

// EnsureLanguage registers a language code, creating it active when absent
// and refreshing the display name when present.
func (s *Store) EnsureLanguage(ctx context.Context, code, name string) error {
	var lang models.Language
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&lang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := models.Language{Code: code, Name: name, IsActive: true}
		if createErr := s.db.WithContext(ctx).Create(&created).Error; createErr != nil {
			return fmt.Errorf("failed to create language %q: %w", code, createErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up language %q: %w", code, err)
	}
	if lang.Name == name {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(&lang).Update("name", name).Error; err != nil {
		return fmt.Errorf("failed to update language %q: %w", code, err)
	}
	return nil
}

// KnownLanguageCodes returns the active language codes from the languages
// table, falling back to the bundled seed set when the table is empty.
func (s *Store) KnownLanguageCodes(ctx context.Context) ([]string, error) {
	var languages []models.Language
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("code").Find(&languages).Error; err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	if len(languages) == 0 {
		return server.SeedLanguageCodes(), nil
	}

	codes := make([]string, 0, len(languages))
	for _, lang := range languages {
		codes = append(codes, lang.Code)
	}
	return codes, nil
}

// FindPlantTx looks up a plant by ID inside an open transaction,
// returning (nil, nil) when absent.
func FindPlantTx(tx *gorm.DB, id uint) (*models.Plant, error) {
	var plant models.Plant
	err := tx.First(&plant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up plant %d: %w", id, err)
	}
	return &plant, nil
}

// FindTranslationTx looks up a translation by (plant, language) inside an
// open transaction, returning (nil, nil) when absent.
func FindTranslationTx(tx *gorm.DB, plantID uint, languageCode string) (*models.PlantTranslation, error) {
	var translation models.PlantTranslation
	err := tx.Where("plant_id = ? AND language_code = ?", plantID, languageCode).First(&translation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s translation for plant %d: %w", languageCode, plantID, err)
	}
	return &translation, nil
}

// UpsertPlantTx runs the plant upsert inside an already-open transaction.
// Callers composing multi-row writes (the sync merge) use this to keep a
// plant and its translation in one transactional scope.
func UpsertPlantTx(tx *gorm.DB, candidate *models.Plant) (*models.Plant, error) {
	var existing models.Plant
	var err error

	if candidate.ID != 0 {
		err = tx.First(&existing, candidate.ID).Error
	} else {
		err = tx.Where("scientific_name = ?", candidate.ScientificName).First(&existing).Error
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := *candidate
		if createErr := tx.Create(&created).Error; createErr != nil {
			return nil, fmt.Errorf("failed to create plant %q: %w", candidate.ScientificName, createErr)
		}
		return &created, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up plant %q: %w", candidate.ScientificName, err)
	}

	// Map-based update so zero values (cleared taxonomy, NULL category)
	// are written, which struct updates would skip.
	updates := map[string]any{
		"scientific_name":   candidate.ScientificName,
		"plant_category_id": candidate.PlantCategoryID,
		"family":            candidate.Family,
		"genus":             candidate.Genus,
		"species":           candidate.Species,
		"toxicity_level":    candidate.ToxicityLevel,
		"image_urls":        candidate.ImageURLsRaw,
	}
	if candidate.ImageURLsRaw == "" {
		// A candidate that never touched images keeps the stored list.
		delete(updates, "image_urls")
	}

	if err := tx.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update plant %d: %w", existing.ID, err)
	}
	return &existing, nil
}

// UpsertTranslationTx runs the translation upsert inside an already-open
// transaction.
func UpsertTranslationTx(tx *gorm.DB, plantID uint, languageCode string, fields TranslationFields) (*models.PlantTranslation, error) {
	var existing models.PlantTranslation
	err := tx.Where("plant_id = ? AND language_code = ?", plantID, languageCode).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := models.PlantTranslation{
			PlantID:      plantID,
			LanguageCode: languageCode,
			CommonName:   fields.CommonName,
			Description:  fields.Description,
			Uses:         fields.Uses,
			AudioURL:     fields.AudioURL,
		}
		if createErr := tx.Create(&created).Error; createErr != nil {
			return nil, fmt.Errorf("failed to create %s translation for plant %d: %w", languageCode, plantID, createErr)
		}
		return &created, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s translation for plant %d: %w", languageCode, plantID, err)
	}

	updates := map[string]any{
		"common_name": fields.CommonName,
		"description": fields.Description,
		"uses":        fields.Uses,
	}
	if fields.AudioURL != nil {
		// The audio URL is owned by whichever caller last wrote it;
		// callers that don't own it pass nil and leave it alone.
		updates["audio_url"] = *fields.AudioURL
	}

	if err := tx.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update %s translation for plant %d: %w", languageCode, plantID, err)
	}
	return &existing, nil
}

func sortedKeys(m map[string]TranslationFields) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
