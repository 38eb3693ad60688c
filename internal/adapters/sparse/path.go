package sparse

import (
	"path/filepath"
	"strings"

	"go.trai.ch/crateq/internal/core/domain"
)

// EntryPath returns the path of a crate's cache file relative to an index directory.
// The prefix directories follow cargo's index layout:
// 1/{name}, 2/{name}, 3/{c}/{name} and {ab}/{cd}/{name}.
func EntryPath(name string) string {
	lower := strings.ToLower(name)

	var prefix string
	switch len(lower) {
	case 1:
		prefix = "1"
	case 2:
		prefix = "2"
	case 3:
		prefix = filepath.Join("3", lower[:1])
	default:
		prefix = filepath.Join(lower[:2], lower[2:4])
	}
	return filepath.Join(domain.IndexCacheDirName, prefix, lower)
}
