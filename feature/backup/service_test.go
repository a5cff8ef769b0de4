package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"verdex/core/storage/mocks"
	"verdex/feature/catalog"
	"verdex/feature/sync"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSnapshotService(t *testing.T) (*sync.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	// Every collection empty: eight table reads in pull order.
	sqlMock.ExpectQuery("SELECT \\* FROM `plants`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "scientific_name", "plant_category_id", "family", "genus", "species", "toxicity_level", "image_urls", "created_at", "updated_at"}))
	sqlMock.ExpectQuery("SELECT \\* FROM `plant_translations`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "plant_id", "language_code", "common_name", "description", "uses", "audio_url", "created_at", "updated_at"}))
	sqlMock.ExpectQuery("SELECT \\* FROM `plant_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))
	for range []string{"users", "posts", "plant_categories", "roles", "permissions"} {
		sqlMock.ExpectQuery("SELECT \\* FROM").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	}

	return sync.NewService(catalog.NewStore(gormDB, nil), nil, "en"), sqlMock
}

func TestRun_UploadsSnapshotAndMediaTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "banana", "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "banana", "images", "banana540.jpg"), []byte("img"), 0o644))

	snapshots, sqlMock := newSnapshotService(t)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "verdex-backups").Return(true, nil)
	client.On("PutObject", mock.Anything, "verdex-backups", mock.MatchedBy(func(name string) bool {
		return filepath.Ext(name) == ".json"
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
	client.On("PutObject", mock.Anything, "verdex-backups", mock.MatchedBy(func(name string) bool {
		return filepath.Ext(name) == ".jpg"
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	service := NewService(snapshots, client, "verdex-backups", root, nil)
	result, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, result.SnapshotObject, "backups/catalog-")
	assert.Equal(t, 1, result.MediaFiles)
	client.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRun_CreatesMissingBucket(t *testing.T) {
	snapshots, _ := newSnapshotService(t)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "verdex-backups").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "verdex-backups", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "verdex-backups", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	// Media root does not exist: snapshot-only backup.
	service := NewService(snapshots, client, "verdex-backups", filepath.Join(t.TempDir(), "nope"), nil)
	result, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.MediaFiles)
	client.AssertExpectations(t)
}
