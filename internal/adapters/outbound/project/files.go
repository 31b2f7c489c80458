// Package project reads the metadata files of the Python package being
// released: pyproject.toml, MANIFEST.in, and the __version__ attribute
// in the package's __init__.py.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/tubeharvest/shipkit/internal/domain"
)

const (
	pyprojectFile = "pyproject.toml"
	manifestFile  = "MANIFEST.in"
)

// The version attribute lives in Python source, so it is extracted
// textually rather than parsed.
var versionRe = regexp.MustCompile(`(?m)^__version__\s*=\s*["']([^"']*)["']`)

// FileSource implements domain.MetadataSource against the filesystem.
type FileSource struct{}

// New creates a FileSource.
func New() *FileSource { return &FileSource{} }

// LoadPyproject parses pyproject.toml from projectPath.
func (s *FileSource) LoadPyproject(projectPath string) (*domain.Pyproject, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, pyprojectFile))
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pyprojectFile, err)
	}

	return domain.NewPyproject(raw), nil
}

// ReadManifest returns the raw MANIFEST.in contents.
func (s *FileSource) ReadManifest(projectPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, manifestFile))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PackageVersion extracts the __version__ assignment from the package's
// __init__.py. The raw string is returned untouched so the consistency
// check stays character-for-character.
func (s *FileSource) PackageVersion(projectPath, packageDir string) (string, error) {
	initPath := filepath.Join(projectPath, packageDir, "__init__.py")
	data, err := os.ReadFile(initPath)
	if err != nil {
		return "", err
	}

	m := versionRe.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no __version__ assignment in %s", initPath)
	}
	return string(m[1]), nil
}
