package scaffold_test

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/uvforge/go-uvforge/internal/scaffold"
	"github.com/uvforge/go-uvforge/pkg/folder"
)

type mapResolver map[string]string

func (m mapResolver) Resolve(filename string) (string, bool) {
	content, ok := m[filename]
	return content, ok
}

func mustStatDir(t *testing.T, fsys billy.Filesystem, path string) {
	t.Helper()
	info, err := fsys.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}

func readFile(t *testing.T, fsys billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func mustNotExist(t *testing.T, fsys billy.Filesystem, path string) {
	t.Helper()
	if _, err := fsys.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to not exist, stat err=%v", path, err)
	}
}

func nodes(t *testing.T, inputs ...any) []folder.Node {
	t.Helper()
	ins := make([]folder.Input, 0, len(inputs))
	for _, v := range inputs {
		in, err := folder.InputFrom(v)
		if err != nil {
			t.Fatalf("input: %v", err)
		}
		ins = append(ins, in)
	}
	out, err := folder.NormalizeList(ins)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return out
}

func TestBuild_AppStructure(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys)

	tree := nodes(t,
		map[string]any{"name": "core", "files": []any{"state.py"}},
		map[string]any{"name": "docs", "root_level": true, "create_init": false},
	)
	if err := w.Build("/proj", tree); err != nil {
		t.Fatalf("build: %v", err)
	}

	mustStatDir(t, fsys, "/proj/app")
	mustStatDir(t, fsys, "/proj/app/core")
	mustStatDir(t, fsys, "/proj/docs")

	// app/ and core/ get initializer files, docs/ opted out.
	readFile(t, fsys, "/proj/app/__init__.py")
	readFile(t, fsys, "/proj/app/core/__init__.py")
	mustNotExist(t, fsys, "/proj/docs/__init__.py")

	// Files without boilerplate are created empty.
	if got := readFile(t, fsys, "/proj/app/core/state.py"); got != "" {
		t.Fatalf("expected empty file, got %q", got)
	}
}

func TestBuild_RootLevelSplit(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys)

	tree := nodes(t,
		"core",
		map[string]any{"name": "scripts", "root_level": true},
	)
	if err := w.Build("/proj", tree); err != nil {
		t.Fatalf("build: %v", err)
	}

	mustStatDir(t, fsys, "/proj/app/core")
	mustStatDir(t, fsys, "/proj/scripts")
	mustNotExist(t, fsys, "/proj/app/scripts")
	mustNotExist(t, fsys, "/proj/core")
}

func TestBuild_NestedSubfolders(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys)

	tree := nodes(t, map[string]any{
		"name":        "static",
		"create_init": false,
		"subfolders": []any{
			"css",
			map[string]any{"name": "js", "files": []any{"app.js"}},
		},
	})
	if err := w.Build("/proj", tree); err != nil {
		t.Fatalf("build: %v", err)
	}

	mustStatDir(t, fsys, "/proj/app/static/css")
	mustStatDir(t, fsys, "/proj/app/static/js")
	readFile(t, fsys, "/proj/app/static/js/app.js")

	// Bare-name children inherit the parent's create_init=false.
	mustNotExist(t, fsys, "/proj/app/static/css/__init__.py")
}

func TestBuild_ResolverContent(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys, scaffold.WithResolver(mapResolver{
		"state.py":  "state = {}\n",
		"main.py":   "# entry\n",
		"README.md": "# My App\n",
	}))

	tree := nodes(t, map[string]any{"name": "core", "files": []any{"state.py", "empty.py"}})
	if err := w.Build("/proj", tree); err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := readFile(t, fsys, "/proj/app/core/state.py"); got != "state = {}\n" {
		t.Fatalf("resolved content mismatch: %q", got)
	}
	if got := readFile(t, fsys, "/proj/app/core/empty.py"); got != "" {
		t.Fatalf("miss must create empty file, got %q", got)
	}
	if got := readFile(t, fsys, "/proj/app/main.py"); got != "# entry\n" {
		t.Fatalf("main.py content mismatch: %q", got)
	}
	if got := readFile(t, fsys, "/proj/README.md"); got != "# My App\n" {
		t.Fatalf("README content mismatch: %q", got)
	}
}

func TestBuild_NoReadmeWithoutBoilerplate(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys, scaffold.WithResolver(mapResolver{}))

	if err := w.Build("/proj", nodes(t, "core")); err != nil {
		t.Fatalf("build: %v", err)
	}
	mustNotExist(t, fsys, "/proj/README.md")
	// main.py is always created, empty on a miss.
	if got := readFile(t, fsys, "/proj/app/main.py"); got != "" {
		t.Fatalf("expected empty main.py, got %q", got)
	}
}

func TestBuild_SkipFiles(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys,
		scaffold.WithResolver(mapResolver{"state.py": "content"}),
		scaffold.WithSkipFiles(true),
	)

	tree := nodes(t, map[string]any{"name": "core", "files": []any{"state.py"}})
	if err := w.Build("/proj", tree); err != nil {
		t.Fatalf("build: %v", err)
	}

	mustStatDir(t, fsys, "/proj/app/core")
	readFile(t, fsys, "/proj/app/core/__init__.py")
	mustNotExist(t, fsys, "/proj/app/core/state.py")
	mustNotExist(t, fsys, "/proj/app/main.py")
}

func TestCreateFolders_NoAppSplit(t *testing.T) {
	fsys := memfs.New()
	w := scaffold.NewWriter(fsys)

	if err := w.CreateFolders("/out", nodes(t, "alpha", "beta")); err != nil {
		t.Fatalf("create folders: %v", err)
	}
	mustStatDir(t, fsys, "/out/alpha")
	mustStatDir(t, fsys, "/out/beta")
	mustNotExist(t, fsys, "/out/app")
}
