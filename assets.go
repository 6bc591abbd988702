package uvforge

import (
	"embed"
	"io/fs"
)

//go:embed all:assets/templates
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in folder templates (default.json plus the
// ui_frameworks/ and project_types/ documents) so applications can scaffold
// projects without shipping template files of their own.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "assets/templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// BoilerplateFS exposes the built-in starter-content tree consumed by the
// boilerplate resolver.
func BoilerplateFS() fs.FS {
	sub, err := fs.Sub(TemplatesFS(), "boilerplate")
	if err != nil {
		return TemplatesFS()
	}
	return sub
}
