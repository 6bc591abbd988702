package project

import (
	"path/filepath"

	"github.com/uvforge/go-uvforge/pkg/folder"
)

// PythonVersions lists the interpreter versions offered during setup, newest
// first.
var PythonVersions = []string{"3.14", "3.13", "3.12", "3.11", "3.10"}

// DefaultPythonVersion is preselected when the user does not choose one.
const DefaultPythonVersion = "3.14"

// Config gathers everything needed to scaffold one project. It is assembled
// from user selections, validated once, and read-only from then on.
type Config struct {
	ProjectName   string
	ProjectPath   string
	PythonVersion string
	GitEnabled    bool

	// UIProjectEnabled gates Framework; OtherProjectEnabled gates
	// ProjectType. The two selections are independent and both optional.
	UIProjectEnabled    bool
	Framework           string
	OtherProjectEnabled bool
	ProjectType         string

	// IncludeStarterFiles controls whether created files receive resolved
	// boilerplate content instead of being touched empty.
	IncludeStarterFiles bool

	// Folders holds the raw folder inputs driving the scaffold; when empty
	// the catalog defaults apply.
	Folders []folder.Input

	// Packages, when non-empty, overrides the packages derived from the
	// framework and project-type tables.
	Packages []string
}

// FullPath returns the project directory: base path joined with the project
// name.
func (c Config) FullPath() string {
	return filepath.Join(c.ProjectPath, c.ProjectName)
}

// EffectiveFramework resolves the active UI framework, or "" when the UI
// selection is disabled.
func (c Config) EffectiveFramework() string {
	if !c.UIProjectEnabled {
		return ""
	}
	return c.Framework
}

// EffectiveProjectType resolves the active project type, or "" when the
// selection is disabled.
func (c Config) EffectiveProjectType() string {
	if !c.OtherProjectEnabled {
		return ""
	}
	return c.ProjectType
}
