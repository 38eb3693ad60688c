// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crateq/internal/core/domain"
)

// IndexCache reads package metadata from the local registry index cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexCache interface {
	// LookupPackage returns every cached version record of the named package.
	//
	// It returns an error wrapping domain.ErrPackageNotFound when the cache has
	// no entry for the package. Other errors (unreadable or corrupt entries)
	// are returned as is.
	LookupPackage(ctx context.Context, name string) (*domain.Package, error)
}
