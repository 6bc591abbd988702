package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uvforge/go-uvforge/pkg/boilerplate"
	"github.com/uvforge/go-uvforge/pkg/folder"
)

const (
	frameworkDir   = "ui_frameworks"
	projectTypeDir = "project_types"
	defaultName    = "default"
)

// extensions lists the document file extensions tried in order.
var extensions = []string{".json", ".yaml", ".yml"}

// DefaultFolders is the hard-coded last-resort structure used when no
// template file is available at all.
var DefaultFolders = []folder.Input{
	folder.Name("core"),
	folder.Name("ui"),
	folder.Name("utils"),
	folder.Name("assets"),
}

// Document is one loaded folder-template source: the raw folder inputs plus
// the path that produced them (empty for the built-in defaults).
type Document struct {
	Folders []folder.Input
	Source  string
}

// Catalog loads folder-template documents from a filesystem laid out as
// ui_frameworks/<name>.json, project_types/<name>.json and default.json.
// Documents parse as JSON or YAML. The catalog is read-only and safe for
// concurrent use.
type Catalog struct {
	fsys fs.FS
}

// New returns a catalog over the given template filesystem.
func New(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Framework loads the template for a UI framework. The name is accepted in
// display form and normalized for the file lookup. Missing or unparseable
// files fall back to Default; a parsed document with malformed folder entries
// is a template-authoring error and is reported.
func (c *Catalog) Framework(name string) (Document, error) {
	normalized := boilerplate.NormalizeFrameworkName(name)
	if doc, ok, err := c.load(frameworkDir, normalized); ok || err != nil {
		return doc, err
	}
	return c.Default()
}

// ProjectType loads the template for a project type, falling back to Default
// when no specific template exists.
func (c *Catalog) ProjectType(name string) (Document, error) {
	if doc, ok, err := c.load(projectTypeDir, strings.TrimSpace(name)); ok || err != nil {
		return doc, err
	}
	return c.Default()
}

// Default loads default.json, falling back to the built-in DefaultFolders
// when it is missing or unreadable.
func (c *Catalog) Default() (Document, error) {
	if doc, ok, err := c.load(".", defaultName); ok || err != nil {
		return doc, err
	}
	return Document{Folders: append([]folder.Input(nil), DefaultFolders...)}, nil
}

// Resolve loads the folder tree for the active selections. With both a
// framework and a project type the two templates merge (framework primary);
// with one selection its template is normalized and used as-is; with neither
// the default applies.
func (c *Catalog) Resolve(framework, projectType string) ([]folder.Node, error) {
	switch {
	case framework != "" && projectType != "":
		primary, err := c.Framework(framework)
		if err != nil {
			return nil, err
		}
		secondary, err := c.ProjectType(projectType)
		if err != nil {
			return nil, err
		}
		return folder.MergeLists(primary.Folders, secondary.Folders)
	case framework != "":
		doc, err := c.Framework(framework)
		if err != nil {
			return nil, err
		}
		return folder.NormalizeList(doc.Folders)
	case projectType != "":
		doc, err := c.ProjectType(projectType)
		if err != nil {
			return nil, err
		}
		return folder.NormalizeList(doc.Folders)
	default:
		doc, err := c.Default()
		if err != nil {
			return nil, err
		}
		return folder.NormalizeList(doc.Folders)
	}
}

// Frameworks lists the framework templates present in the catalog.
func (c *Catalog) Frameworks() []string {
	return c.listDir(frameworkDir)
}

// ProjectTypes lists the project-type templates present in the catalog.
func (c *Catalog) ProjectTypes() []string {
	return c.listDir(projectTypeDir)
}

func (c *Catalog) listDir(dir string) []string {
	entries, err := fs.ReadDir(c.fsys, dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if !isTemplateExt(ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ext))
	}
	sort.Strings(names)
	return names
}

func isTemplateExt(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// load probes <dir>/<name> with each known extension. The second return
// value reports whether a document was found; read and parse failures fall
// through to the next candidate like an absent file.
func (c *Catalog) load(dir, name string) (Document, bool, error) {
	if name == "" || c.fsys == nil {
		return Document{}, false, nil
	}
	for _, ext := range extensions {
		file := path.Join(dir, name+ext)
		data, err := fs.ReadFile(c.fsys, file)
		if err != nil {
			continue
		}
		raw, err := parseDocument(data)
		if err != nil {
			continue
		}
		inputs, err := folderInputs(raw.Folders)
		if err != nil {
			return Document{}, true, fmt.Errorf("catalog: template %s: %w", file, err)
		}
		return Document{Folders: inputs, Source: file}, true, nil
	}
	return Document{}, false, nil
}

type documentFile struct {
	Folders []any `json:"folders" yaml:"folders"`
}

func parseDocument(data []byte) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: document is empty")
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("catalog: document is neither valid JSON nor YAML")
}

func folderInputs(raw []any) ([]folder.Input, error) {
	inputs := make([]folder.Input, 0, len(raw))
	for i, entry := range raw {
		in, err := folder.InputFrom(entry)
		if err != nil {
			return nil, fmt.Errorf("folders[%d]: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
