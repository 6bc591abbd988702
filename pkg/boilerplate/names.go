package boilerplate

import "strings"

// NormalizeFrameworkName reduces a framework display name to the canonical
// key used for template and boilerplate lookups: lowercased, the built-in
// annotation stripped, spaces turned into underscores. The transform is total
// and idempotent, so "PyQt6", "pyqt6" and "tkinter (built-in)" all resolve
// consistently.
func NormalizeFrameworkName(framework string) string {
	name := strings.ToLower(strings.TrimSpace(framework))
	name = strings.ReplaceAll(name, " (built-in)", "")
	return strings.ReplaceAll(name, " ", "_")
}

// HumanizeProjectName converts a dash/underscore-separated project name into
// a title-cased display form: "my_app" becomes "My App",
// "create-a-project" becomes "Create A Project".
func HumanizeProjectName(projectName string) string {
	if projectName == "" {
		return ""
	}

	replacer := strings.NewReplacer("-", " ", "_", " ")
	words := strings.Fields(replacer.Replace(projectName))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
