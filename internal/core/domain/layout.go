package domain

import (
	"os"
	"path/filepath"
)

const (
	// CargoBinary is the default name of the cargo executable, resolved from PATH.
	CargoBinary = "cargo"

	// CargoHomeEnv is the environment variable cargo uses to relocate its home directory.
	CargoHomeEnv = "CARGO_HOME"

	// CargoHomeDirName is the name of cargo's home directory under the user's home.
	CargoHomeDirName = ".cargo"

	// RegistryDirName is the name of the registry directory inside cargo home.
	RegistryDirName = "registry"

	// IndexDirName is the name of the index directory inside the registry directory.
	IndexDirName = "index"

	// SparseIndexDirPattern matches the crates.io sparse index directories.
	// The hash suffix depends on the cargo release that created the directory.
	SparseIndexDirPattern = "index.crates.io-*"

	// IndexCacheDirName is the name of the per-crate cache directory inside an index directory.
	IndexCacheDirName = ".cache"

	// RefreshDirPattern is the os.MkdirTemp pattern for the disposable refresh workspace.
	RefreshDirPattern = "crateq-refresh-*"

	// RefreshLogFile is the name of the log file capturing cargo's stderr during a refresh.
	RefreshLogFile = ".log"

	// ScaffoldName is the name of the throwaway cargo project created during a refresh.
	ScaffoldName = "temp"

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCargoHome returns cargo's home directory.
// It honours CARGO_HOME the same way cargo does and falls back to ~/.cargo.
func DefaultCargoHome() (string, error) {
	if home := os.Getenv(CargoHomeEnv); home != "" {
		return filepath.Clean(home), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil || userHome == "" {
		return "", ErrCargoHomeNotFound
	}
	return filepath.Join(userHome, CargoHomeDirName), nil
}

// SparseIndexGlob returns the glob matching every crates.io sparse index directory under cargoHome.
// It joins registry, index and the sparse index pattern.
func SparseIndexGlob(cargoHome string) string {
	return filepath.Join(cargoHome, RegistryDirName, IndexDirName, SparseIndexDirPattern)
}
