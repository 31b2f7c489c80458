package domain

import (
	"context"
	"io"
)

// CommandSpec describes a single external command invocation.
type CommandSpec struct {
	Name   string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner executes external tools. A non-nil error means the
// command could not start or exited non-zero; the exit status is the
// only success signal shipkit relies on.
type CommandRunner interface {
	Run(ctx context.Context, spec CommandSpec) error
}

// MetadataSource reads the published package's metadata files.
type MetadataSource interface {
	LoadPyproject(projectPath string) (*Pyproject, error)
	ReadManifest(projectPath string) (string, error)
	PackageVersion(projectPath, packageDir string) (string, error)
}

// ConfigLoader loads the tool configuration for a project.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// RepoInspector reports version-control state for the project.
type RepoInspector interface {
	IsRepo(projectPath string) bool
	IsClean(projectPath string) (bool, error)
	Head(projectPath string) (string, error)
}
