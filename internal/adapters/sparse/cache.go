// Package sparse reads crate metadata from cargo's local sparse index cache.
package sparse

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/crateq/internal/adapters/config"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexCache = (*Cache)(nil)

// Cache implements ports.IndexCache over the crates.io sparse index cache
// that cargo keeps under its home directory.
type Cache struct {
	settings *config.Settings
	logger   ports.Logger
}

// New creates a cache reader that resolves cargo home from settings on every lookup.
func New(settings *config.Settings, logger ports.Logger) *Cache {
	return &Cache{settings: settings, logger: logger}
}

// LookupPackage returns every version record cached for the named crate.
func (c *Cache) LookupPackage(ctx context.Context, name string) (*domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidatePackageName(name); err != nil {
		return nil, err
	}

	path, err := c.locate(name)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("reading index cache entry " + path)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a validated crate name
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(name)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read index cache entry"), "path", path)
	}

	pkg, err := decodeEntry(name, data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if len(pkg.Versions) == 0 {
		return nil, notFound(name)
	}
	return pkg, nil
}

// locate returns the most recently modified cache file for name across all
// sparse index directories. A missing file is reported as ErrPackageNotFound.
func (c *Cache) locate(name string) (string, error) {
	home, err := c.settings.Home()
	if err != nil {
		return "", err
	}

	dirs, err := filepath.Glob(domain.SparseIndexGlob(home))
	if err != nil {
		return "", zerr.Wrap(err, "failed to list sparse index directories")
	}

	var (
		newest   string
		newestAt time.Time
	)
	rel := EntryPath(name)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, rel)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if newest == "" || info.ModTime().After(newestAt) {
			newest, newestAt = candidate, info.ModTime()
		}
	}
	if newest == "" {
		return "", notFound(name)
	}
	return newest, nil
}

func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no index cache entry"), "package", name)
}
