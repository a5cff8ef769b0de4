package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"verdex/core/media"
	"verdex/feature/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestSeedPlant_WritesPlantAndTranslationsInOneTransaction(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "banana", "images", "banana540.jpg"))
	writeFile(t, filepath.Join(root, "banana", "audio", "banana_en_1750930216.mp3"))

	db, mock := setupMockDB(t)

	translationColumns := []string{"id", "plant_id", "language_code", "common_name", "description", "uses", "audio_url", "created_at", "updated_at"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `plants`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "scientific_name", "plant_category_id", "family", "genus", "species", "toxicity_level", "image_urls", "created_at", "updated_at"}))
	mock.ExpectExec("INSERT INTO `plants`").WillReturnResult(sqlmock.NewResult(1, 1))
	for range []string{"en", "fr", "pg"} {
		mock.ExpectQuery("SELECT \\* FROM `plant_translations`").
			WillReturnRows(sqlmock.NewRows(translationColumns))
		mock.ExpectExec("INSERT INTO `plant_translations`").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	resolver := media.NewResolver(media.Config{
		Root:         root,
		PublicPrefix: "/storage/plants",
	}, []string{"en", "fr", "pg"}, nil)
	service := NewService(catalog.NewStore(db, nil), resolver, nil)

	spec := plants[1] // banana
	result := &Result{}
	err := service.seedPlant(context.Background(), spec, map[string]uint{
		"Uncategorized": 1,
		"Fruits":        4,
	}, result)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Plants)
	assert.Equal(t, 1, result.PlantsWithAudio)
	assert.Equal(t, 1, result.AudioFiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildTranslations_FallsBackToEnglish(t *testing.T) {
	spec := plantSpec{
		Key: "guava",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Guava",
				Description: "A tropical tree with vitamin-rich fruit.",
				Uses:        "Food",
			},
		},
	}

	out := buildTranslations(spec, map[string]string{
		"en": "/storage/plants/guava/audio/guava_en_1.mp3",
	})
	require.Len(t, out, 3)

	assert.Equal(t, "A tropical tree with vitamin-rich fruit.", out["fr"].Description)
	assert.Equal(t, "Guava", out["fr"].CommonName)
	assert.Equal(t, "Food", out["pg"].Uses)

	require.NotNil(t, out["en"].AudioURL)
	assert.Equal(t, "/storage/plants/guava/audio/guava_en_1.mp3", *out["en"].AudioURL)
	assert.Nil(t, out["fr"].AudioURL)
}

func TestBuildTranslations_UnknownPlantUsesDisplayName(t *testing.T) {
	out := buildTranslations(plantSpec{Key: "okra"}, nil)
	require.Len(t, out, 3)
	assert.Equal(t, "Okra", out["en"].CommonName)
	assert.Equal(t, "", out["en"].Description)
}

func TestDatasetIsWellFormed(t *testing.T) {
	known := map[string]bool{"Uncategorized": true}
	for _, name := range categories {
		known[name] = true
	}

	seen := map[string]bool{}
	for _, spec := range plants {
		assert.False(t, seen[spec.Key], "duplicate key %s", spec.Key)
		seen[spec.Key] = true
		assert.True(t, known[spec.Category], "unmapped category for %s", spec.Key)
		assert.NotEmpty(t, spec.Translations["en"].CommonName, "missing english name for %s", spec.Key)
	}
}
