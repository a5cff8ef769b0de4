package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"verdex/core/storage"
	"verdex/feature/sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service archives the catalog and the media tree to object storage.
type Service struct {
	snapshots *sync.Service
	client    storage.Client
	bucket    string
	mediaRoot string
	logger    *zap.Logger
}

// Result summarizes one backup run.
type Result struct {
	SnapshotObject string `json:"snapshot_object"`
	MediaFiles     int    `json:"media_files"`
}

// NewService creates a backup service writing to the given bucket.
func NewService(snapshots *sync.Service, client storage.Client, bucket, mediaRoot string, logger *zap.Logger) *Service {
	return &Service{
		snapshots: snapshots,
		client:    client,
		bucket:    bucket,
		mediaRoot: mediaRoot,
		logger:    logger,
	}
}

// Run uploads a timestamped catalog snapshot and every file under the media
// root. A missing media root degrades to a snapshot-only backup; any other
// failure aborts the run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	stamp := time.Now().UTC().Format("2006-01-02_15-04-05")

	snapshot, err := s.snapshots.Pull(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	result := &Result{SnapshotObject: fmt.Sprintf("backups/catalog-%s.json", stamp)}
	_, err = s.client.PutObject(ctx, s.bucket, result.SnapshotObject,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	count, err := s.uploadMediaTree(ctx, fmt.Sprintf("backups/media-%s", stamp))
	if err != nil {
		return nil, err
	}
	result.MediaFiles = count

	if s.logger != nil {
		s.logger.Info("Backup finished",
			zap.String("snapshot", result.SnapshotObject),
			zap.Int("media_files", result.MediaFiles),
		)
	}
	return result, nil
}

func (s *Service) uploadMediaTree(ctx context.Context, prefix string) (int, error) {
	if _, err := os.Stat(s.mediaRoot); err != nil {
		if os.IsNotExist(err) {
			if s.logger != nil {
				s.logger.Warn("Media root missing, snapshot-only backup", zap.String("root", s.mediaRoot))
			}
			return 0, nil
		}
		return 0, fmt.Errorf("failed to stat media root %s: %w", s.mediaRoot, err)
	}

	count := 0
	err := filepath.WalkDir(s.mediaRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(s.mediaRoot, path)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		object := prefix + "/" + filepath.ToSlash(rel)
		if _, err := s.client.PutObject(ctx, s.bucket, object, file, info.Size(), minio.PutObjectOptions{}); err != nil {
			return fmt.Errorf("failed to upload %s: %w", object, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, nil
}
