// Package boilerplate resolves filenames to starter file content through a
// prioritized fallback chain (framework, project type, common) and carries
// the name-normalization helpers shared with template lookup.
package boilerplate
