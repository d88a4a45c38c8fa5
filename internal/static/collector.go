// Package static implements the collectstatic management command:
// copying files from the configured source directories into a single
// static root served by the production web server.
package static

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
)

// Collector copies static assets into the static root.
type Collector struct {
	cfg config.StaticConfig
}

// NewCollector creates a Collector for the given static configuration.
func NewCollector(cfg config.StaticConfig) *Collector {
	return &Collector{cfg: cfg}
}

// Result summarizes a collection run.
type Result struct {
	Copied  int
	Skipped int
}

// Collect walks every configured source directory and copies each file
// into the static root, preserving relative paths. Files matching an
// ignore pattern are skipped. Later source directories overwrite
// earlier ones on conflicting relative paths.
func (c *Collector) Collect() (*Result, error) {
	if c.cfg.Root == "" {
		return nil, fmt.Errorf("static root is not configured")
	}

	if err := os.MkdirAll(c.cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create static root: %w", err)
	}

	res := &Result{}
	for _, dir := range c.cfg.SourceDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			slog.Warn("Static source directory does not exist, skipping", "dir", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}

			if c.ignored(rel) {
				res.Skipped++
				return nil
			}

			dst := filepath.Join(c.cfg.Root, rel)
			if err := copyFile(path, dst); err != nil {
				return fmt.Errorf("failed to copy %s: %w", rel, err)
			}
			res.Copied++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slog.Info("Static files collected",
		"copied", res.Copied,
		"skipped", res.Skipped,
		"root", c.cfg.Root)
	return res, nil
}

// ignored reports whether the relative path matches any ignore pattern.
// Patterns are doublestar globs matched against slash-separated paths,
// plus bare-name matches on the file's base name (Django's
// collectstatic --ignore semantics).
func (c *Collector) ignored(rel string) bool {
	slashed := filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, pattern := range c.cfg.Ignore {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
