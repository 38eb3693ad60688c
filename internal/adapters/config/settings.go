// Package config holds the runtime settings shared by the adapters.
package config

import (
	"path/filepath"

	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings is the effective configuration of a single invocation.
// The value is shared between adapters, which read it when an operation runs.
type Settings struct {
	// CargoBinary is the cargo executable used for refreshes.
	CargoBinary string
	// CargoHome overrides the cargo home directory when set.
	CargoHome string
	// Debug enables debug logging.
	Debug bool
}

// NewSettings returns settings populated with defaults.
func NewSettings() *Settings {
	return &Settings{CargoBinary: domain.CargoBinary}
}

// Binary returns the cargo executable to run.
func (s *Settings) Binary() string {
	if s == nil || s.CargoBinary == "" {
		return domain.CargoBinary
	}
	return s.CargoBinary
}

// Home returns the cargo home directory as an absolute path.
func (s *Settings) Home() (string, error) {
	if s == nil || s.CargoHome == "" {
		return domain.DefaultCargoHome()
	}
	abs, err := filepath.Abs(s.CargoHome)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrCargoHomeNotFound, err.Error()), "cargo_home", s.CargoHome)
	}
	return abs, nil
}

// Update copies the non-empty fields of other into s.
func (s *Settings) Update(other Settings) {
	if other.CargoBinary != "" {
		s.CargoBinary = other.CargoBinary
	}
	if other.CargoHome != "" {
		s.CargoHome = other.CargoHome
	}
	s.Debug = other.Debug
}
