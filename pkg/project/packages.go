package project

import "github.com/uvforge/go-uvforge/pkg/boilerplate"

// frameworkPackages maps normalized framework names to the PyPI package to
// install. A present entry with an empty list means "built in, nothing to
// install".
var frameworkPackages = map[string][]string{
	"flet":          {"flet"},
	"pyqt6":         {"pyqt6"},
	"pyside6":       {"pyside6"},
	"tkinter":       {},
	"customtkinter": {"customtkinter"},
	"kivy":          {"kivy"},
	"pygame":        {"pygame"},
	"nicegui":       {"nicegui"},
	"streamlit":     {"streamlit"},
	"gradio":        {"gradio"},
}

// projectTypePackages maps project types to their required packages.
var projectTypePackages = map[string][]string{
	"django":  {"django"},
	"fastapi": {"fastapi", "uvicorn"},
	"flask":   {"flask"},
	"bottle":  {"bottle"},

	"data_analysis":   {"pandas", "numpy", "matplotlib", "jupyter"},
	"ml_sklearn":      {"scikit-learn", "pandas", "numpy", "matplotlib"},
	"dl_pytorch":      {"torch", "torchvision", "numpy"},
	"dl_tensorflow":   {"tensorflow", "numpy"},
	"computer_vision": {"opencv-python", "numpy", "pillow"},

	"cli_click": {"click"},
	"cli_typer": {"typer[all]"},
	"cli_rich":  {"rich"},

	"api_fastapi": {"fastapi", "uvicorn", "pydantic"},
	"api_graphql": {"strawberry-graphql[fastapi]"},
	"api_grpc":    {"grpcio", "grpcio-tools", "protobuf"},

	"browser_automation": {"playwright"},
	"task_scheduler":     {"apscheduler"},
	"scraping":           {"beautifulsoup4", "httpx", "lxml"},

	"basic_package": {},
	"testing":       {"pytest", "pytest-cov", "pytest-mock"},
	"async_app":     {"aiohttp", "aiofiles"},
}

// DefaultEntryPoint is used when neither selection provides one.
const DefaultEntryPoint = "app.main:main"

// frameworkEntryPoints maps normalized framework names to the
// [project.scripts] entry point. Frameworks with their own runners map to "".
var frameworkEntryPoints = map[string]string{
	"flet":          "app.main:run",
	"pyqt6":         "app.main:run",
	"pyside6":       "app.main:run",
	"tkinter":       "app.main:run",
	"customtkinter": "app.main:run",
	"kivy":          "app.main:run",
	"pygame":        "app.main:run",
	"nicegui":       "app.main:run",
	"streamlit":     "",
	"gradio":        "",
}

var projectTypeEntryPoints = map[string]string{
	"django": "", "fastapi": "", "flask": "", "bottle": "",
	"api_fastapi": "", "api_graphql": "", "api_grpc": "",

	"cli_click": "app.main:cli",
	"cli_typer": "app.main:app",
	"cli_rich":  "app.main:main",

	"data_analysis": DefaultEntryPoint, "ml_sklearn": DefaultEntryPoint,
	"dl_pytorch": DefaultEntryPoint, "dl_tensorflow": DefaultEntryPoint,
	"computer_vision": DefaultEntryPoint, "browser_automation": DefaultEntryPoint,
	"task_scheduler": DefaultEntryPoint, "scraping": DefaultEntryPoint,
	"basic_package": DefaultEntryPoint, "testing": DefaultEntryPoint,
	"async_app": DefaultEntryPoint,
}

// PackagesForFramework returns the packages a framework selection requires.
// The name is accepted in display form. The second return value reports
// whether the framework is known.
func PackagesForFramework(framework string) ([]string, bool) {
	pkgs, ok := frameworkPackages[boilerplate.NormalizeFrameworkName(framework)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), pkgs...), true
}

// PackagesForProjectType returns the packages a project-type selection
// requires.
func PackagesForProjectType(projectType string) ([]string, bool) {
	pkgs, ok := projectTypePackages[projectType]
	if !ok {
		return nil, false
	}
	return append([]string(nil), pkgs...), true
}

// ResolvePackages resolves the package list for the active selections, honoring an
// explicit override when the config carries one. Duplicates across the two
// selections are dropped, first occurrence wins.
func (c Config) ResolvePackages() []string {
	if len(c.Packages) > 0 {
		return append([]string(nil), c.Packages...)
	}

	seen := make(map[string]bool)
	var out []string
	add := func(pkgs []string) {
		for _, p := range pkgs {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	if fw := c.EffectiveFramework(); fw != "" {
		if pkgs, ok := PackagesForFramework(fw); ok {
			add(pkgs)
		}
	}
	if pt := c.EffectiveProjectType(); pt != "" {
		if pkgs, ok := PackagesForProjectType(pt); ok {
			add(pkgs)
		}
	}
	return out
}

// EntryPoint resolves the [project.scripts] entry point for the active
// selections. Framework opinion wins over project type; "" means the project
// has its own runner and needs no scripts section.
func (c Config) EntryPoint() string {
	if fw := c.EffectiveFramework(); fw != "" {
		if ep, ok := frameworkEntryPoints[boilerplate.NormalizeFrameworkName(fw)]; ok {
			return ep
		}
	}
	if pt := c.EffectiveProjectType(); pt != "" {
		if ep, ok := projectTypeEntryPoints[pt]; ok {
			return ep
		}
	}
	return DefaultEntryPoint
}
