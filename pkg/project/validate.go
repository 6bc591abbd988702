package project

import (
	"fmt"
	"regexp"
)

const maxNameLength = 255

var (
	projectNameChars = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	projectNameStart = regexp.MustCompile(`^[a-zA-Z_]`)
	folderNameChars  = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// pythonKeywords are reserved words a project name must not collide with,
// since the name doubles as the Python package name.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true,
}

var reservedNames = map[string]bool{".": true, "..": true}

// ValidateProjectName checks a proposed project name against filesystem and
// Python package naming rules.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project: project name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project: project name exceeds maximum length of %d characters", maxNameLength)
	}
	if !projectNameChars.MatchString(name) {
		return fmt.Errorf("project: project name can only contain letters, numbers, hyphens, and underscores")
	}
	if !projectNameStart.MatchString(name) {
		return fmt.Errorf("project: project name must start with a letter or underscore")
	}
	if pythonKeywords[name] {
		return fmt.Errorf("project: %q is a Python keyword and cannot be used", name)
	}
	return nil
}

// ValidateFolderName checks a folder or file name for filesystem
// compatibility. Dots are allowed for extensions and dotfiles, and names may
// start with digits since folders can hold non-Python assets.
func ValidateFolderName(name string) error {
	if name == "" {
		return fmt.Errorf("project: name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project: name exceeds maximum length of %d characters", maxNameLength)
	}
	if !folderNameChars.MatchString(name) {
		return fmt.Errorf("project: name can only contain letters, numbers, hyphens, underscores, and periods")
	}
	if reservedNames[name] {
		return fmt.Errorf("project: %q is a reserved name and cannot be used", name)
	}
	return nil
}

// Validate checks the whole configuration for consistency before a build.
func (c Config) Validate() error {
	if err := ValidateProjectName(c.ProjectName); err != nil {
		return err
	}
	if c.ProjectPath == "" {
		return fmt.Errorf("project: project path cannot be empty")
	}
	if c.UIProjectEnabled && c.Framework == "" {
		return fmt.Errorf("project: UI project enabled but no framework selected")
	}
	if c.OtherProjectEnabled && c.ProjectType == "" {
		return fmt.Errorf("project: project type enabled but none selected")
	}
	return nil
}
