package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/uvforge/go-uvforge/pkg/catalog"
	"github.com/uvforge/go-uvforge/pkg/project"
)

const noneOption = "none"

// promptMissing asks for any selection the flags left empty. Flag-provided
// values are never re-asked.
func promptMissing(cfg *project.Config, c *catalog.Catalog) error {
	if cfg.ProjectName == "" {
		prompt := &survey.Input{Message: "Project name:"}
		if err := survey.AskOne(prompt, &cfg.ProjectName, survey.WithValidator(projectNameValidator)); err != nil {
			return err
		}
	}

	if !cfg.UIProjectEnabled {
		framework, err := selectOption("UI framework:", c.Frameworks())
		if err != nil {
			return err
		}
		if framework != noneOption {
			cfg.UIProjectEnabled = true
			cfg.Framework = framework
		}
	}

	if !cfg.OtherProjectEnabled {
		projectType, err := selectOption("Project type:", c.ProjectTypes())
		if err != nil {
			return err
		}
		if projectType != noneOption {
			cfg.OtherProjectEnabled = true
			cfg.ProjectType = projectType
		}
	}

	if cfg.PythonVersion == "" {
		prompt := &survey.Select{
			Message: "Python version:",
			Options: project.PythonVersions,
			Default: project.DefaultPythonVersion,
		}
		if err := survey.AskOne(prompt, &cfg.PythonVersion); err != nil {
			return err
		}
	}

	git := true
	if err := survey.AskOne(&survey.Confirm{Message: "Plan a git repository?", Default: true}, &git); err != nil {
		return err
	}
	cfg.GitEnabled = git

	return nil
}

func selectOption(message string, options []string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: message,
		Options: append([]string{noneOption}, options...),
		Default: noneOption,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func projectNameValidator(ans interface{}) error {
	name, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a string answer")
	}
	return project.ValidateProjectName(name)
}
