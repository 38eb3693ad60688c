package domain

import "go.trai.ch/zerr"

// Selector picks one version record of a package.
// The zero value selects the highest normal version.
type Selector struct {
	version string
	exact   bool
}

// HighestNormalVersion returns the default selector.
func HighestNormalVersion() Selector {
	return Selector{}
}

// ExactVersion returns a selector matching version literally.
func ExactVersion(version string) Selector {
	return Selector{version: version, exact: true}
}

// SelectorFor returns ExactVersion for a non-empty string and the default selector otherwise.
func SelectorFor(version string) Selector {
	if version == "" {
		return HighestNormalVersion()
	}
	return ExactVersion(version)
}

// IsExact reports whether the selector names a specific version.
func (s Selector) IsExact() bool {
	return s.exact
}

// Version returns the requested version, empty for the default selector.
func (s Selector) Version() string {
	return s.version
}

// String returns a human-readable form of the selector.
func (s Selector) String() string {
	if s.exact {
		return s.version
	}
	return "highest normal version"
}

// View is the kind of information requested about a package.
type View int

const (
	// ViewDependencies lists the declared dependencies of one version.
	ViewDependencies View = iota + 1
	// ViewFeatures lists the feature names of one version.
	ViewFeatures
	// ViewRustVersion shows the minimum supported Rust version of one version.
	ViewRustVersion
	// ViewVersions lists every published version of the package.
	ViewVersions
)

// String returns the name of the view.
func (v View) String() string {
	switch v {
	case ViewDependencies:
		return "dependencies"
	case ViewFeatures:
		return "features"
	case ViewRustVersion:
		return "rust-version"
	case ViewVersions:
		return "versions"
	default:
		return "unknown"
	}
}

// Validate returns ErrUnknownView for values outside the declared views.
func (v View) Validate() error {
	switch v {
	case ViewDependencies, ViewFeatures, ViewRustVersion, ViewVersions:
		return nil
	default:
		return zerr.With(zerr.Wrap(ErrUnknownView, "invalid view"), "view", int(v))
	}
}

// RefreshPolicy decides whether the index is refreshed before or after the first lookup.
type RefreshPolicy int

const (
	// RefreshFirst refreshes the index, then looks up once. A miss is terminal.
	RefreshFirst RefreshPolicy = iota + 1
	// LookupFirst looks up first and refreshes only on a miss, then looks up once more.
	LookupFirst
)

// String returns the name of the policy.
func (p RefreshPolicy) String() string {
	switch p {
	case RefreshFirst:
		return "refresh-first"
	case LookupFirst:
		return "lookup-first"
	default:
		return "unknown"
	}
}

// DecideRefresh computes the cache freshness policy for one query:
// RefreshFirst for the versions listing or the default selector,
// LookupFirst for an exact version of any other view.
func DecideRefresh(view View, sel Selector) RefreshPolicy {
	if view == ViewVersions || !sel.IsExact() {
		return RefreshFirst
	}
	return LookupFirst
}

// Resolution is the outcome of resolving a package and selector.
type Resolution struct {
	Package *Package
	Version *VersionRecord

	// Policy is the freshness decision taken for this resolution.
	Policy RefreshPolicy

	// Refreshed reports whether the index refresh ran.
	Refreshed bool
}
