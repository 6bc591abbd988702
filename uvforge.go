// Package uvforge scaffolds Python projects from JSON/YAML folder templates:
// it normalizes heterogeneous folder shapes, merges framework and
// project-type templates into one tree, and resolves starter file content
// through a prioritized fallback chain. The root package is a thin facade
// over pkg/folder, pkg/catalog and pkg/boilerplate for consumers that want a
// single import.
package uvforge

import (
	"io/fs"

	"github.com/uvforge/go-uvforge/pkg/boilerplate"
	"github.com/uvforge/go-uvforge/pkg/catalog"
	"github.com/uvforge/go-uvforge/pkg/folder"
)

// FolderNode re-exports the canonical folder representation.
type FolderNode = folder.Node

// FolderInput re-exports the folder-shape sum type accepted by Normalize.
type FolderInput = folder.Input

// Normalize converts any supported folder shape into a fully populated node.
func Normalize(in FolderInput) (FolderNode, error) {
	return folder.Normalize(in)
}

// MergeFolderLists merges a primary and a secondary folder list by name with
// recursive union semantics.
func MergeFolderLists(primary, secondary []FolderInput) ([]FolderNode, error) {
	return folder.MergeLists(primary, secondary)
}

// NormalizeFrameworkName reduces a framework display name to its canonical
// lookup key.
func NormalizeFrameworkName(framework string) string {
	return boilerplate.NormalizeFrameworkName(framework)
}

// HumanizeProjectName converts a dash/underscore project name to title case.
func HumanizeProjectName(projectName string) string {
	return boilerplate.HumanizeProjectName(projectName)
}

// NewCatalog constructs a template catalog over the given filesystem.
func NewCatalog(fsys fs.FS) *catalog.Catalog {
	return catalog.New(fsys)
}

// DefaultCatalog constructs a catalog over the embedded templates.
func DefaultCatalog() *catalog.Catalog {
	return catalog.New(TemplatesFS())
}

// NewResolver constructs a boilerplate resolver backed by the embedded
// starter content unless a later WithFS option overrides it.
func NewResolver(projectName string, options ...boilerplate.Option) (*boilerplate.Resolver, error) {
	opts := append([]boilerplate.Option{boilerplate.WithFS(BoilerplateFS())}, options...)
	return boilerplate.NewResolver(projectName, opts...)
}
