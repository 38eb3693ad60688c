package ports

import "context"

// IndexRefresher forces the local index cache to fetch the latest metadata of a package.
//
//go:generate go run go.uber.org/mock/mockgen -source=refresher.go -destination=mocks/mock_refresher.go -package=mocks
type IndexRefresher interface {
	// ForceRefresh attempts to populate the cache entry for name.
	//
	// It only fails when the attempt itself could not be made (workspace or
	// process faults). An unknown package name is not an error here; it
	// surfaces at the next cache lookup.
	ForceRefresh(ctx context.Context, name string) error
}
