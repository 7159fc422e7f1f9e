// Package storage persists pulse artifacts under the .pulse/ directory of a
// project workspace.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

const PulseDir = ".pulse"
const ModulesFile = "modules.yaml"
const TeamFile = "team.yaml"
const EventsFile = "events.jsonl"
const ReportsDir = "reports"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// BasePath returns the .pulse directory for this workspace.
func (r *FilesystemRepository) BasePath() string {
	return filepath.Join(r.root, PulseDir)
}

// ResolvePath ensures the path is within the .pulse directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, PulseDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, PulseDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .pulse directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, PulseDir))
	return err == nil
}

// WriteReport stores a rendered report artifact under .pulse/reports/ and
// returns its path.
func (r *FilesystemRepository) WriteReport(name string, content []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid report name: %s", name)
	}

	dir := filepath.Join(r.root, PulseDir, ReportsDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// readWithRetry reads a workspace file, retrying briefly on transient
// filesystem errors (editors and sync tools replace these files in place).
func (r *FilesystemRepository) readWithRetry(path string) ([]byte, error) {
	retryer := retry.New[[]byte](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) ([]byte, error) {
		// #nosec G304 -- Path is resolved and validated via ResolvePath
		return os.ReadFile(path)
	})
}
