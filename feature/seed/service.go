package seed

import (
	"context"
	"fmt"
	"strings"

	"verdex/core/media"
	"verdex/core/server"
	"verdex/feature/catalog"
	"verdex/feature/catalog/models"

	"go.uber.org/zap"
)

// defaultCategory is the fallback for plants without a mapped category.
const defaultCategory = "Uncategorized"

// Service loads the bundled dataset into the catalog.
type Service struct {
	store    *catalog.Store
	resolver *media.Resolver
	logger   *zap.Logger
}

// Result summarizes one seeding run.
type Result struct {
	Plants          int
	PlantsWithAudio int
	AudioFiles      int
}

// NewService creates a seeding service.
func NewService(store *catalog.Store, resolver *media.Resolver, logger *zap.Logger) *Service {
	return &Service{store: store, resolver: resolver, logger: logger}
}

// Run seeds languages, categories and the bundled plants. It is idempotent:
// every row is matched before it is written, so a re-run refreshes instead
// of duplicating. Each plant and its translations commit in one
// transaction; a failure aborts the run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	for _, lang := range languages {
		if err := s.store.EnsureLanguage(ctx, lang.Code, lang.Name); err != nil {
			return nil, err
		}
	}

	categoryIDs, err := s.seedCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, spec := range plants {
		if err := s.seedPlant(ctx, spec, categoryIDs, result); err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", spec.Key, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("Seeding finished",
			zap.Int("plants", result.Plants),
			zap.Int("plants_with_audio", result.PlantsWithAudio),
			zap.Int("audio_files", result.AudioFiles),
		)
	}
	return result, nil
}

func (s *Service) seedCategories(ctx context.Context) (map[string]uint, error) {
	ids := make(map[string]uint, len(categories)+1)
	for _, name := range append([]string{defaultCategory}, categories...) {
		category, err := s.store.EnsureCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		ids[name] = category.ID
	}
	return ids, nil
}

func (s *Service) seedPlant(ctx context.Context, spec plantSpec, categoryIDs map[string]uint, result *Result) error {
	// The media folder follows the canonical slug of the plant's name.
	scan, err := s.resolver.ScanPlantMedia(ctx, media.Slugify(spec.Key))
	if err != nil {
		return err
	}

	categoryID, ok := categoryIDs[spec.Category]
	if !ok {
		categoryID = categoryIDs[defaultCategory]
	}

	candidate := models.Plant{
		ScientificName:  titleCase(spec.Key),
		PlantCategoryID: &categoryID,
		Family:          spec.Family,
		Genus:           spec.Genus,
		Species:         spec.Species,
		ToxicityLevel:   spec.Toxicity,
	}
	candidate.SetImageURLs(scan.Images)

	if _, err := s.store.UpsertPlantWithTranslations(ctx, &candidate, buildTranslations(spec, scan.AudioByLanguage)); err != nil {
		return err
	}

	result.Plants++
	if len(scan.AudioByLanguage) > 0 {
		result.PlantsWithAudio++
		result.AudioFiles += len(scan.AudioByLanguage)
	}
	return nil
}

// buildTranslations assembles the per-language fields for one plant.
// A missing language falls back to the English description and uses under
// the plain display name, so every plant carries a full translation set.
func buildTranslations(spec plantSpec, audio map[string]string) map[string]catalog.TranslationFields {
	display := titleCase(spec.Key)
	english, ok := spec.Translations[server.LangEnglish]
	if !ok {
		english = translation{CommonName: display}
	}

	out := make(map[string]catalog.TranslationFields, len(server.SeedLanguageCodes()))
	for _, code := range server.SeedLanguageCodes() {
		tr, ok := spec.Translations[code]
		if !ok {
			tr = translation{
				CommonName:  display,
				Description: english.Description,
				Uses:        english.Uses,
			}
		}
		fields := catalog.TranslationFields{
			CommonName:  tr.CommonName,
			Description: tr.Description,
			Uses:        tr.Uses,
		}
		if url, found := audio[code]; found {
			u := url
			fields.AudioURL = &u
		}
		out[code] = fields
	}
	return out
}

func titleCase(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
