package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrMediaRootUnavailable indicates the media root directory is missing.
// Repair runs treat this as fatal; a missing plant folder is not an error.
var ErrMediaRootUnavailable = errors.New("media root unavailable")

// imageExtensions is the canonical set of recognized image extensions,
// shared by seeding and repair.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// audioFilePattern matches audio files named <slug>_<langcode>_<unixtime>.<ext>.
var audioFilePattern = regexp.MustCompile(`(?i)_([a-z]{2,})_(\d+)\.(mp3|wav|ogg)$`)

const (
	imagesSubdir = "images"
	audioSubdir  = "audio"
)

// PlantMedia is the derived view of what the filesystem currently holds
// for a single plant folder. It is never authoritative on its own; it
// becomes authoritative only once written back into the catalog.
type PlantMedia struct {
	// Images is the ordered (lexicographic) list of public image URLs.
	Images []string
	// AudioByLanguage maps a language code to its public audio URL.
	AudioByLanguage map[string]string
}

// Resolver scans the folder-per-plant media layout and produces public URLs.
type Resolver struct {
	root         string
	publicPrefix string
	languages    map[string]bool
	scanTimeout  time.Duration
	logger       *zap.Logger
}

// NewResolver creates a resolver over the configured media root.
// languages is the administratively known language set; audio files with
// other codes are ignored, not errored.
func NewResolver(cfg Config, languages []string, logger *zap.Logger) *Resolver {
	known := make(map[string]bool, len(languages))
	for _, code := range languages {
		known[strings.ToLower(code)] = true
	}

	timeout := time.Duration(cfg.ScanTimeoutSeconds) * time.Second

	return &Resolver{
		root:         cfg.Root,
		publicPrefix: strings.TrimSuffix(cfg.PublicPrefix, "/"),
		languages:    known,
		scanTimeout:  timeout,
		logger:       logger,
	}
}

// Root returns the configured media root directory.
func (r *Resolver) Root() string {
	return r.root
}

// ListFolders enumerates the top-level plant folders under the media root,
// sorted lexicographically. A missing root returns ErrMediaRootUnavailable.
func (r *Resolver) ListFolders(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMediaRootUnavailable, r.root)
		}
		return nil, fmt.Errorf("failed to list media root %s: %w", r.root, err)
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	sort.Strings(folders)

	return folders, nil
}

// ScanPlantMedia lists the images and per-language audio for a plant folder.
// Missing folders produce an empty result, not an error. The scan is bounded
// by the configured per-folder timeout.
func (r *Resolver) ScanPlantMedia(ctx context.Context, folder string) (*PlantMedia, error) {
	if r.scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.scanTimeout)
		defer cancel()
	}

	result := &PlantMedia{
		Images:          []string{},
		AudioByLanguage: map[string]string{},
	}

	images, err := r.scanImages(ctx, folder)
	if err != nil {
		return nil, err
	}
	result.Images = images

	audio, err := r.scanAudio(ctx, folder)
	if err != nil {
		return nil, err
	}
	result.AudioByLanguage = audio

	return result, nil
}

func (r *Resolver) scanImages(ctx context.Context, folder string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.root, folder, imagesSubdir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to scan images for %s: %w", folder, err)
	}

	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}
		urls = append(urls, r.publicPrefix+"/"+folder+"/"+imagesSubdir+"/"+entry.Name())
	}
	// ReadDir sorts by name already, but the ordering is a contract here,
	// not an accident of the directory listing.
	sort.Strings(urls)

	return urls, nil
}

func (r *Resolver) scanAudio(ctx context.Context, folder string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.root, folder, audioSubdir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to scan audio for %s: %w", folder, err)
	}

	audio := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := audioFilePattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}
		code := strings.ToLower(matches[1])
		if !r.languages[code] {
			if r.logger != nil {
				r.logger.Debug("Skipping audio file with unknown language",
					zap.String("folder", folder),
					zap.String("file", entry.Name()),
					zap.String("language", code),
				)
			}
			continue
		}
		audio[code] = r.publicPrefix + "/" + folder + "/" + audioSubdir + "/" + entry.Name()
	}

	return audio, nil
}

// FolderFromURL extracts the plant folder name embedded in a public media
// URL: the path segment immediately following the literal "plants" segment.
// Returns "" if the URL carries no recognizable folder.
func FolderFromURL(url string) string {
	parts := strings.Split(url, "/")
	for i, part := range parts {
		if part == "plants" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
