package domain

import (
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// DependencyKind is the kind of a declared dependency as stored in the index.
type DependencyKind string

const (
	// DependencyNormal is a regular runtime dependency.
	DependencyNormal DependencyKind = "normal"
	// DependencyDev is a dev-dependency.
	DependencyDev DependencyKind = "dev"
	// DependencyBuild is a build-dependency.
	DependencyBuild DependencyKind = "build"
)

// Dependency is one declared dependency of a version record.
// It is not resolved any further.
type Dependency struct {
	// Name is the name of the depended-on crate. Renamed dependencies report
	// the real crate name, not the local alias.
	Name InternedString

	// Requirement is the version requirement expression (e.g., "^1.0").
	Requirement string

	// Kind is normal, dev or build.
	Kind DependencyKind

	// Optional reports whether the dependency is only enabled through a feature.
	Optional bool
}

// Feature is one declared feature flag and the sub-features it enables.
type Feature struct {
	Name    string
	Enables []string
}

// VersionRecord is the index metadata of one published release.
type VersionRecord struct {
	// Name is the name of the package the record belongs to.
	Name InternedString

	// Version is the version string exactly as published.
	Version string

	// Dependencies are in declaration order.
	Dependencies []Dependency

	// Features are in the order the index stores them.
	Features []Feature

	// RustVersion is the minimum supported Rust version, empty if none is declared.
	RustVersion string

	// Yanked reports whether the release was yanked from the registry.
	Yanked bool
}

// Package is a named crate and its version records in publish order.
type Package struct {
	Name     InternedString
	Versions []VersionRecord
}

// Select resolves a selector against the package's records.
func (p *Package) Select(sel Selector) (*VersionRecord, error) {
	if sel.IsExact() {
		return p.Find(sel.Version())
	}
	return p.HighestNormal()
}

// Find returns the record whose version string equals version literally.
// No semver normalisation is applied: "1.0" does not match "1.0.0".
func (p *Package) Find(version string) (*VersionRecord, error) {
	for i := range p.Versions {
		if p.Versions[i].Version == version {
			return &p.Versions[i], nil
		}
	}
	err := zerr.Wrap(ErrVersionNotFound, "no matching version record")
	err = zerr.With(err, "package", p.Name.String())
	return nil, zerr.With(err, "version", version)
}

// HighestNormal returns the record with the greatest semver precedence among
// the versions without a prerelease tag. Records whose version does not parse
// are ignored.
func (p *Package) HighestNormal() (*VersionRecord, error) {
	var (
		best       *VersionRecord
		bestParsed string
	)
	for i := range p.Versions {
		parsed, err := ParseVersion(p.Versions[i].Version)
		if err != nil || IsPrerelease(parsed) {
			continue
		}
		if best == nil || semver.Compare(parsed, bestParsed) >= 0 {
			best = &p.Versions[i]
			bestParsed = parsed
		}
	}
	if best == nil {
		return nil, zerr.With(zerr.Wrap(ErrNoNormalVersion, "no version to select"), "package", p.Name.String())
	}
	return best, nil
}

// VersionStrings returns every version string of the package in publish order.
func (p *Package) VersionStrings() []string {
	out := make([]string, len(p.Versions))
	for i := range p.Versions {
		out[i] = p.Versions[i].Version
	}
	return out
}
