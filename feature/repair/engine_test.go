package repair

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

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

func plantColumns() []string {
	return []string{"id", "scientific_name", "plant_category_id", "family", "genus", "species", "toxicity_level", "image_urls", "created_at", "updated_at"}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func newEngine(t *testing.T, root string, db *gorm.DB) *Engine {
	t.Helper()
	resolver := media.NewResolver(media.Config{
		Root:         root,
		PublicPrefix: "/storage/plants",
	}, []string{"en", "fr", "pg"}, nil)
	return NewEngine(catalog.NewStore(db, nil), resolver, nil)
}

func TestBuildPlan_BananaScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "banana", "images", "banana540.jpg"))
	writeFile(t, filepath.Join(root, "banana", "images", "banana541.jpg"))
	writeFile(t, filepath.Join(root, "mango", "images", "mango1.jpg"))

	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(plantColumns()).
		AddRow(1, "Banana", nil, "", "", "", "", `["/storage/plants/banana_old/images/x.jpg"]`, time.Now(), time.Now())
	mock.ExpectQuery("SELECT \\* FROM `plants`").WillReturnRows(rows)

	engine := newEngine(t, root, db)
	plan, err := engine.BuildPlan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"banana", "mango"}, plan.AvailableFolders)
	assert.Equal(t, 1, plan.Summary.Flagged)
	require.Len(t, plan.Actions, 1)

	action := plan.Actions[0]
	assert.Equal(t, uint(1), action.PlantID)
	assert.Equal(t, []string{"banana_old"}, action.BrokenFolders)
	assert.Equal(t, "banana", action.AssignedFolder) // first in rotation
	assert.Equal(t, []string{
		"/storage/plants/banana/images/banana540.jpg",
		"/storage/plants/banana/images/banana541.jpg",
	}, action.NewImageURLs)

	// Dry run: nothing is written, the mock sees no UPDATE.
	executed, err := engine.ApplyPlan(context.Background(), plan, Options{DryRun: true, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 0, executed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPlan_PersistsAssignedImages(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `plants`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	engine := NewEngine(catalog.NewStore(db, nil), nil, nil)
	plan := &Plan{
		Actions: []Action{{
			PlantID:        1,
			ScientificName: "Banana",
			AssignedFolder: "banana",
			NewImageURLs:   []string{"/storage/plants/banana/images/banana540.jpg"},
		}},
	}

	executed, err := engine.ApplyPlan(context.Background(), plan, Options{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPlan_RequiresConfirmation(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	plan := &Plan{Actions: []Action{{PlantID: 1}}}

	executed, err := engine.ApplyPlan(context.Background(), plan, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, executed)
}

func TestApplyPlan_ContinuesPastFailedPlant(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `plants`").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `plants`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	engine := NewEngine(catalog.NewStore(db, nil), nil, nil)
	plan := &Plan{
		Actions: []Action{
			{PlantID: 1, NewImageURLs: []string{"/storage/plants/banana/images/a.jpg"}},
			{PlantID: 2, NewImageURLs: []string{"/storage/plants/mango/images/b.jpg"}},
		},
	}

	executed, err := engine.ApplyPlan(context.Background(), plan, Options{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildPlan_CleanCatalogIsNoOp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "banana", "images", "banana540.jpg"))

	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(plantColumns()).
		AddRow(1, "Banana", nil, "", "", "", "", `["/storage/plants/banana/images/banana540.jpg"]`, time.Now(), time.Now()).
		AddRow(2, "Empty plant", nil, "", "", "", "", `[]`, time.Now(), time.Now())
	mock.ExpectQuery("SELECT \\* FROM `plants`").WillReturnRows(rows)

	engine := newEngine(t, root, db)
	plan, err := engine.BuildPlan(context.Background())
	require.NoError(t, err)

	assert.Empty(t, plan.Actions)
	assert.Equal(t, 0, plan.Summary.Flagged)
	assert.Equal(t, 2, plan.Summary.TotalPlants)
}

func TestBuildPlan_RotationSkipsCleanPlants(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "banana", "images", "b.jpg"))
	writeFile(t, filepath.Join(root, "mango", "images", "m.jpg"))

	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(plantColumns()).
		AddRow(1, "Broken one", nil, "", "", "", "", `["/storage/plants/gone/images/x.jpg"]`, time.Now(), time.Now()).
		AddRow(2, "Clean", nil, "", "", "", "", `["/storage/plants/banana/images/b.jpg"]`, time.Now(), time.Now()).
		AddRow(3, "Broken two", nil, "", "", "", "", `["/storage/plants/gone/images/y.jpg"]`, time.Now(), time.Now()).
		AddRow(4, "Broken three", nil, "", "", "", "", `["/storage/plants/gone/images/z.jpg"]`, time.Now(), time.Now())
	mock.ExpectQuery("SELECT \\* FROM `plants`").WillReturnRows(rows)

	engine := newEngine(t, root, db)
	plan, err := engine.BuildPlan(context.Background())
	require.NoError(t, err)

	// The rotation counter advances only for flagged plants: the clean
	// plant in between does not shift the assignment.
	require.Len(t, plan.Actions, 3)
	assert.Equal(t, "banana", plan.Actions[0].AssignedFolder)
	assert.Equal(t, "mango", plan.Actions[1].AssignedFolder)
	assert.Equal(t, "banana", plan.Actions[2].AssignedFolder)
}

func TestBuildPlan_MissingRootIsFatal(t *testing.T) {
	db, _ := setupMockDB(t)
	engine := newEngine(t, filepath.Join(t.TempDir(), "nope"), db)

	_, err := engine.BuildPlan(context.Background())
	assert.ErrorIs(t, err, media.ErrMediaRootUnavailable)
}

func TestBuildPlan_UrlWithoutFolderIsBroken(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "banana", "images", "b.jpg"))

	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(plantColumns()).
		AddRow(1, "Odd", nil, "", "", "", "", `["/uploads/misc/x.jpg"]`, time.Now(), time.Now())
	mock.ExpectQuery("SELECT \\* FROM `plants`").WillReturnRows(rows)

	engine := newEngine(t, root, db)
	plan, err := engine.BuildPlan(context.Background())
	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, "banana", plan.Actions[0].AssignedFolder)
}
