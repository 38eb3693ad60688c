package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// ParseVersion validates a crate version string and returns its "v"-prefixed
// form, which is what golang.org/x/mod/semver compares.
func ParseVersion(version string) (string, error) {
	v := "v" + version
	if !semver.IsValid(v) {
		return "", zerr.With(zerr.Wrap(ErrInvalidVersion, "failed to parse version"), "version", version)
	}

	// x/mod/semver accepts the "v1" and "v1.2" shorthands; crate versions are full triples.
	core := strings.TrimSuffix(strings.TrimSuffix(v, semver.Build(v)), semver.Prerelease(v))
	if strings.Count(core, ".") != 2 {
		return "", zerr.With(zerr.Wrap(ErrInvalidVersion, "version must have major.minor.patch"), "version", version)
	}
	return v, nil
}

// IsPrerelease reports whether a parsed version carries a prerelease tag.
func IsPrerelease(parsed string) bool {
	return semver.Prerelease(parsed) != ""
}

// SortVersions returns the versions ordered by ascending semver precedence.
// Versions of equal precedence (differing only in build metadata) keep their
// input order. Any invalid version fails the whole sort.
func SortVersions(versions []string) ([]string, error) {
	type entry struct {
		raw    string
		parsed string
	}

	entries := make([]entry, 0, len(versions))
	for _, raw := range versions {
		parsed, err := ParseVersion(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{raw: raw, parsed: parsed})
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return semver.Compare(a.parsed, b.parsed)
	})

	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.raw
	}
	return sorted, nil
}
