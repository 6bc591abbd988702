package boilerplate

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// Placeholder is the token starter content uses where the humanized project
// name should appear.
const Placeholder = "{{project_name}}"

// Directory names under the content root, in the order the fallback chain
// probes them.
const (
	frameworkDir   = "ui_frameworks"
	projectTypeDir = "project_types"
	commonDir      = "common"
)

// Resolver looks up starter content for scaffolded files through an ordered
// candidate chain fixed at construction: framework-specific, then
// project-type-specific, then common. It is immutable after construction and
// safe for concurrent use.
type Resolver struct {
	projectName string
	fsys        fs.FS
	chain       []string
}

// Option configures resolver construction.
type Option func(*config)

type config struct {
	framework   string
	projectType string
	fsys        fs.FS
}

// WithFramework adds a framework-specific candidate location. The name is
// accepted in display form and normalized internally.
func WithFramework(framework string) Option {
	return func(cfg *config) {
		cfg.framework = strings.TrimSpace(framework)
	}
}

// WithProjectType adds a project-type-specific candidate location.
func WithProjectType(projectType string) Option {
	return func(cfg *config) {
		cfg.projectType = strings.TrimSpace(projectType)
	}
}

// WithFS sets the content root the candidate chain probes.
func WithFS(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.fsys = fsys
	}
}

// NewResolver builds a resolver for one resolution session. The project name
// feeds placeholder substitution only; lookup paths depend solely on the
// framework and project-type selections.
func NewResolver(projectName string, options ...Option) (*Resolver, error) {
	if projectName == "" {
		return nil, errors.New("boilerplate: project name is required")
	}

	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.fsys == nil {
		return nil, errors.New("boilerplate: content filesystem is required")
	}

	var chain []string
	if cfg.framework != "" {
		chain = append(chain, path.Join(frameworkDir, NormalizeFrameworkName(cfg.framework)))
	}
	if cfg.projectType != "" {
		chain = append(chain, path.Join(projectTypeDir, cfg.projectType))
	}
	chain = append(chain, commonDir)

	return &Resolver{
		projectName: projectName,
		fsys:        cfg.fsys,
		chain:       chain,
	}, nil
}

// Chain returns the candidate locations in probe order.
func (r *Resolver) Chain() []string {
	return append([]string(nil), r.chain...)
}

// Resolve looks up starter content for a filename. It probes each candidate
// location in priority order and returns the first hit with the project-name
// placeholder substituted. The second return value is false when no candidate
// has content for the filename; that is the expected majority case, not an
// error, and callers fall back to creating an empty file. An unreadable
// candidate is treated the same as an absent one.
func (r *Resolver) Resolve(filename string) (string, bool) {
	for _, dir := range r.chain {
		data, err := fs.ReadFile(r.fsys, path.Join(dir, filename))
		if err != nil {
			continue
		}
		return r.substitute(string(data)), true
	}
	return "", false
}

func (r *Resolver) substitute(content string) string {
	return strings.ReplaceAll(content, Placeholder, HumanizeProjectName(r.projectName))
}
