package uvforge_test

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	uvforge "github.com/uvforge/go-uvforge"
	"github.com/uvforge/go-uvforge/internal/scaffold"
	"github.com/uvforge/go-uvforge/pkg/boilerplate"
)

// Full pipeline over the embedded assets: resolve both selections into one
// merged tree, build a resolver for the same selections, and materialize the
// project in memory.
func TestScaffoldPipeline(t *testing.T) {
	const framework = "flet"
	const projectType = "cli_click"

	tree, err := uvforge.DefaultCatalog().Resolve(framework, projectType)
	if err != nil {
		t.Fatalf("resolve tree: %v", err)
	}

	resolver, err := uvforge.NewResolver("demo_app",
		boilerplate.WithFramework(framework),
		boilerplate.WithProjectType(projectType),
	)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	fsys := memfs.New()
	writer := scaffold.NewWriter(fsys, scaffold.WithResolver(resolver))
	if err := writer.Build("demo_app", tree); err != nil {
		t.Fatalf("build: %v", err)
	}

	// Framework template folders land under app/.
	if _, err := fsys.Stat("demo_app/app/core"); err != nil {
		t.Fatalf("core folder missing: %v", err)
	}
	// Project-type-only folders survive the merge; tests/ is root-level.
	if _, err := fsys.Stat("demo_app/tests"); err != nil {
		t.Fatalf("root-level tests folder missing: %v", err)
	}
	if _, err := fsys.Stat("demo_app/app/commands"); err != nil {
		t.Fatalf("commands folder missing: %v", err)
	}

	// Starter content is resolved and substituted.
	state, err := util.ReadFile(fsys, "demo_app/app/core/state.py")
	if err != nil {
		t.Fatalf("read state.py: %v", err)
	}
	if !strings.Contains(string(state), "Demo App") {
		t.Fatalf("state.py placeholder not substituted: %q", state)
	}

	// The framework's main.py wins over the project type's.
	main, err := util.ReadFile(fsys, "demo_app/app/main.py")
	if err != nil {
		t.Fatalf("read main.py: %v", err)
	}
	if !strings.Contains(string(main), "flet") {
		t.Fatalf("expected flet entry point, got %q", main)
	}

	// README comes from common boilerplate.
	readme, err := util.ReadFile(fsys, "demo_app/README.md")
	if err != nil {
		t.Fatalf("read README.md: %v", err)
	}
	if !strings.Contains(string(readme), "# Demo App") {
		t.Fatalf("README not substituted: %q", readme)
	}
}
