package domain

import "go.trai.ch/zerr"

// Report is the extracted, ready-to-print content of one view.
type Report struct {
	View    View
	Package string

	// Version is the resolved version. It is empty for ViewVersions.
	Version string

	Dependencies []Dependency
	Features     []string

	// RustVersion is only meaningful when HasRustVersion is true.
	RustVersion    string
	HasRustVersion bool

	// Versions is sorted by ascending semver precedence.
	Versions []string
}

// Extract builds the report for view from a resolution. It performs no I/O.
func Extract(view View, res *Resolution) (*Report, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}

	rec := res.Version
	report := &Report{
		View:    view,
		Package: res.Package.Name.String(),
	}

	switch view {
	case ViewDependencies:
		report.Version = rec.Version
		report.Dependencies = append([]Dependency(nil), rec.Dependencies...)
	case ViewFeatures:
		report.Version = rec.Version
		report.Features = make([]string, len(rec.Features))
		for i, f := range rec.Features {
			report.Features[i] = f.Name
		}
	case ViewRustVersion:
		report.Version = rec.Version
		report.RustVersion = rec.RustVersion
		report.HasRustVersion = rec.RustVersion != ""
	case ViewVersions:
		sorted, err := SortVersions(res.Package.VersionStrings())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list versions"), "package", report.Package)
		}
		report.Versions = sorted
	}

	return report, nil
}
