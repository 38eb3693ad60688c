package app

import (
	"strings"

	"github.com/git-pkgs/purl"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	purlScheme = "pkg:"
	purlType   = "cargo"
)

// ParsePackageArg splits a package argument into a crate name and version.
// The argument is either a bare crate name or a package URL such as
// pkg:cargo/serde@1.0.0. An explicit version wins only when the package URL
// carries none; two different versions are rejected.
func ParsePackageArg(arg, version string) (name, ver string, err error) {
	if !strings.HasPrefix(arg, purlScheme) {
		return arg, version, nil
	}

	p, err := purl.Parse(arg)
	if err != nil {
		return "", "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidPackageName, "failed to parse package URL"), "purl", arg),
			"cause", err.Error(),
		)
	}
	if p.Type != purlType {
		return "", "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidPackageName, "package URL is not a cargo package"), "purl", arg),
			"type", p.Type,
		)
	}

	ver = version
	if p.Version != "" {
		if version != "" && version != p.Version {
			err := zerr.Wrap(domain.ErrConflictingVersion, "package URL version differs from --ver")
			err = zerr.With(err, "purl_version", p.Version)
			return "", "", zerr.With(err, "version", version)
		}
		ver = p.Version
	}
	return p.FullName(), ver, nil
}
