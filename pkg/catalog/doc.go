// Package catalog loads folder-template documents (JSON or YAML) for UI
// frameworks and project types, with a precedence chain that falls back to
// the default template and finally to a built-in folder list.
package catalog
