package main

import (
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	uvforge "github.com/uvforge/go-uvforge"
	"github.com/uvforge/go-uvforge/internal/scaffold"
	"github.com/uvforge/go-uvforge/pkg/boilerplate"
	"github.com/uvforge/go-uvforge/pkg/project"
)

var newFlags struct {
	name           string
	path           string
	python         string
	framework      string
	projectType    string
	noStarter      bool
	nonInteractive bool
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new Python project structure",
	RunE:  runNew,
}

func init() {
	flags := newCmd.Flags()
	flags.StringVar(&newFlags.name, "name", "", "project name")
	flags.StringVar(&newFlags.path, "path", ".", "directory the project is created under")
	flags.StringVar(&newFlags.python, "python", project.DefaultPythonVersion, "Python version to target")
	flags.StringVar(&newFlags.framework, "framework", "", "UI framework template (e.g. flet, pyqt6)")
	flags.StringVar(&newFlags.projectType, "type", "", "project type template (e.g. django, fastapi)")
	flags.BoolVar(&newFlags.noStarter, "no-starter-files", false, "create empty files instead of starter content")
	flags.BoolVar(&newFlags.nonInteractive, "yes", false, "skip prompts and use flags as-is")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	cfg := project.Config{
		ProjectName:         newFlags.name,
		ProjectPath:         newFlags.path,
		PythonVersion:       newFlags.python,
		UIProjectEnabled:    newFlags.framework != "",
		Framework:           newFlags.framework,
		OtherProjectEnabled: newFlags.projectType != "",
		ProjectType:         newFlags.projectType,
		IncludeStarterFiles: !newFlags.noStarter,
	}

	if !newFlags.nonInteractive {
		if err := promptMissing(&cfg, uvforge.DefaultCatalog()); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	tree, err := uvforge.DefaultCatalog().Resolve(cfg.EffectiveFramework(), cfg.EffectiveProjectType())
	if err != nil {
		return err
	}

	var opts []scaffold.Option
	if cfg.IncludeStarterFiles {
		var resolverOpts []boilerplate.Option
		if fw := cfg.EffectiveFramework(); fw != "" {
			resolverOpts = append(resolverOpts, boilerplate.WithFramework(fw))
		}
		if pt := cfg.EffectiveProjectType(); pt != "" {
			resolverOpts = append(resolverOpts, boilerplate.WithProjectType(pt))
		}
		resolver, err := uvforge.NewResolver(cfg.ProjectName, resolverOpts...)
		if err != nil {
			return err
		}
		opts = append(opts, scaffold.WithResolver(resolver))
	}

	writer := scaffold.NewWriter(osfs.New(cfg.ProjectPath), opts...)
	if err := writer.Build(cfg.ProjectName, tree); err != nil {
		return err
	}

	printSummary(cmd, cfg)
	return nil
}

func printSummary(cmd *cobra.Command, cfg project.Config) {
	cmd.Printf("Created %s\n", cfg.FullPath())

	if pkgs := cfg.ResolvePackages(); len(pkgs) > 0 {
		cmd.Printf("Install packages with: uv add %s\n", strings.Join(pkgs, " "))
	}
	if ep := cfg.EntryPoint(); ep != "" {
		cmd.Printf("Suggested [project.scripts] entry point: %s\n", ep)
	}
	cmd.Printf("Target Python version: %s\n", cfg.PythonVersion)
	if cfg.GitEnabled {
		cmd.Println("Initialize version control with: git init")
	}
}
