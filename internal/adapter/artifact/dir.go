// Package artifact stores exported JSON artifacts in a local directory or an
// S3-compatible bucket.
package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirSink writes artifacts as files under a root directory.
type DirSink struct {
	root string
}

// NewDirSink creates a DirSink rooted at dir. The directory is created on
// the first Put.
func NewDirSink(dir string) *DirSink {
	return &DirSink{root: dir}
}

// Put writes data to root/name, replacing any existing file.
func (s *DirSink) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, err := cleanName(name)
	if err != nil {
		return err
	}

	path := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", clean, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", clean, err)
	}
	return nil
}

// cleanName rejects names escaping the sink root.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("artifact name is required")
	}
	clean := filepath.ToSlash(filepath.Clean(name))
	if clean == "." || strings.HasPrefix(clean, "../") || clean == ".." || filepath.IsAbs(name) {
		return "", fmt.Errorf("artifact name %q escapes the sink root", name)
	}
	return clean, nil
}
