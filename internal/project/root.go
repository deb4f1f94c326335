package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FindKeylintToml walks up from startDir to locate keylint.toml.
func FindKeylintToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing keylint.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindKeylintToml(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// LoadFor находит и загружает манифест для startDir. Когда манифеста
// нет, возвращает дефолтную конфигурацию и ok=false.
func LoadFor(startDir string) (Config, string, bool, error) {
	manifestPath, ok, err := FindKeylintToml(startDir)
	if err != nil {
		return Config{}, "", false, err
	}
	if !ok {
		return DefaultConfig(), "", false, nil
	}
	cfg, err := Load(manifestPath)
	if err != nil {
		return Config{}, manifestPath, true, err
	}
	return cfg, manifestPath, true, nil
}
