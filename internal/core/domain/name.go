package domain

import "go.trai.ch/zerr"

// ValidatePackageName reports whether name can be used as a crate name.
// Crate names start with an ASCII letter or digit and continue with
// alphanumerics, '-' and '_'.
func ValidatePackageName(name string) error {
	if name == "" {
		return zerr.Wrap(ErrInvalidPackageName, "package name is empty")
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case (r == '-' || r == '_') && i > 0:
		default:
			return zerr.With(
				zerr.Wrap(ErrInvalidPackageName, "package name contains an invalid character"),
				"package", name,
			)
		}
	}
	return nil
}
