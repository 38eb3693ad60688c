package domain

import "go.trai.ch/zerr"

var (
	// ErrRefreshFailed is returned when the index refresh could not be attempted
	// (temporary workspace, log file or process spawn failure).
	ErrRefreshFailed = zerr.New("index refresh failed")

	// ErrPackageNotFound is returned when the local index cache has no entry for a package.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrVersionNotFound is returned when a package has no record matching the requested version.
	ErrVersionNotFound = zerr.New("version not found")

	// ErrNoNormalVersion is returned when a package has no parsable non-prerelease version.
	ErrNoNormalVersion = zerr.New("no normal version published")

	// ErrInvalidVersion is returned when a version string is not valid semver.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrCorruptCache is returned when an index cache entry cannot be decoded.
	ErrCorruptCache = zerr.New("corrupt index cache entry")

	// ErrCargoHomeNotFound is returned when no Cargo home directory can be determined.
	ErrCargoHomeNotFound = zerr.New("cargo home not found")

	// ErrInvalidPackageName is returned when the package argument cannot be used as a crate name.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrConflictingVersion is returned when a package URL version disagrees with an explicit version.
	ErrConflictingVersion = zerr.New("conflicting versions requested")

	// ErrUnknownView is returned when a view kind is not recognized.
	ErrUnknownView = zerr.New("unknown view")
)
