// Package scaffold materializes a merged folder tree onto a filesystem:
// directories, initializer files, and per-file starter content with an
// empty-file fallback. It writes through a billy.Filesystem so the CLI can
// target the real disk while tests run against an in-memory filesystem.
package scaffold

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/uvforge/go-uvforge/pkg/folder"
)

const (
	initFile   = "__init__.py"
	appDirName = "app"

	dirMode  = 0o755
	fileMode = 0o644
)

// ContentResolver supplies starter content for a filename. The second return
// value is false when the file should be created empty.
type ContentResolver interface {
	Resolve(filename string) (string, bool)
}

// Writer creates project structure on a filesystem.
type Writer struct {
	fs        billy.Filesystem
	resolver  ContentResolver
	skipFiles bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithResolver wires a boilerplate resolver; without one every file is
// created empty.
func WithResolver(r ContentResolver) Option {
	return func(w *Writer) {
		w.resolver = r
	}
}

// WithSkipFiles disables template-file creation, leaving only directories and
// initializer files.
func WithSkipFiles(skip bool) Option {
	return func(w *Writer) {
		w.skipFiles = skip
	}
}

// NewWriter returns a Writer over the given filesystem.
func NewWriter(fsys billy.Filesystem, options ...Option) *Writer {
	w := &Writer{fs: fsys}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Build creates the project skeleton under projectDir: the app/ package
// directory, root-level folders at the project root, everything else inside
// app/, plus the app entry point and a README when boilerplate provides one.
func (w *Writer) Build(projectDir string, nodes []folder.Node) error {
	appDir := w.fs.Join(projectDir, appDirName)
	if err := w.fs.MkdirAll(appDir, dirMode); err != nil {
		return fmt.Errorf("scaffold: create %s: %w", appDir, err)
	}
	if err := w.touch(w.fs.Join(appDir, initFile)); err != nil {
		return err
	}

	var rootNodes, appNodes []folder.Node
	for _, node := range nodes {
		if node.RootLevel {
			rootNodes = append(rootNodes, node)
		} else {
			appNodes = append(appNodes, node)
		}
	}

	if err := w.createAll(projectDir, rootNodes); err != nil {
		return err
	}
	if err := w.createAll(appDir, appNodes); err != nil {
		return err
	}

	return w.writeEntryFiles(projectDir, appDir)
}

// CreateFolders materializes a folder list under parent without the app/
// split. Exposed for callers that manage their own layout.
func (w *Writer) CreateFolders(parent string, nodes []folder.Node) error {
	return w.createAll(parent, nodes)
}

func (w *Writer) createAll(parent string, nodes []folder.Node) error {
	for _, node := range nodes {
		if err := w.create(parent, node); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) create(parent string, node folder.Node) error {
	target := w.fs.Join(parent, node.Name)
	if err := w.fs.MkdirAll(target, dirMode); err != nil {
		return fmt.Errorf("scaffold: create %s: %w", target, err)
	}

	if node.CreateInit {
		if err := w.touch(w.fs.Join(target, initFile)); err != nil {
			return err
		}
	}

	if !w.skipFiles {
		for _, name := range node.Files {
			if err := w.writeFile(w.fs.Join(target, name), name); err != nil {
				return err
			}
		}
	}

	return w.createAll(target, node.Subfolders)
}

// writeEntryFiles places app/main.py and, when boilerplate exists for it, a
// project README.
func (w *Writer) writeEntryFiles(projectDir, appDir string) error {
	if w.skipFiles {
		return nil
	}

	if err := w.writeFile(w.fs.Join(appDir, "main.py"), "main.py"); err != nil {
		return err
	}

	if w.resolver != nil {
		if content, ok := w.resolver.Resolve("README.md"); ok {
			target := w.fs.Join(projectDir, "README.md")
			if err := util.WriteFile(w.fs, target, []byte(content), fileMode); err != nil {
				return fmt.Errorf("scaffold: write %s: %w", target, err)
			}
		}
	}
	return nil
}

// writeFile writes resolved starter content, or an empty file when no
// boilerplate exists for the name.
func (w *Writer) writeFile(target, filename string) error {
	var data []byte
	if w.resolver != nil {
		if content, ok := w.resolver.Resolve(filename); ok {
			data = []byte(content)
		}
	}
	if err := util.WriteFile(w.fs, target, data, fileMode); err != nil {
		return fmt.Errorf("scaffold: write %s: %w", target, err)
	}
	return nil
}

func (w *Writer) touch(target string) error {
	if err := util.WriteFile(w.fs, target, nil, fileMode); err != nil {
		return fmt.Errorf("scaffold: write %s: %w", target, err)
	}
	return nil
}
