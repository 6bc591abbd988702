package boilerplate_test

import (
	"testing"

	"github.com/uvforge/go-uvforge/pkg/boilerplate"
)

func TestNormalizeFrameworkName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"flet", "flet"},
		{"PyQt6", "pyqt6"},
		{"pyqt6", "pyqt6"},
		{"PySide6", "pyside6"},
		{"tkinter (built-in)", "tkinter"},
		{"customtkinter", "customtkinter"},
		{"Some Framework", "some_framework"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := boilerplate.NormalizeFrameworkName(tc.in); got != tc.want {
			t.Errorf("NormalizeFrameworkName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeFrameworkName_Idempotent(t *testing.T) {
	for _, in := range []string{"PyQt6", "tkinter (built-in)", "Some Framework"} {
		once := boilerplate.NormalizeFrameworkName(in)
		twice := boilerplate.NormalizeFrameworkName(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestHumanizeProjectName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"my_app", "My App"},
		{"my_cool_app", "My Cool App"},
		{"create-a-project", "Create A Project"},
		{"mixed-sep_name", "Mixed Sep Name"},
		{"single", "Single"},
		{"ALREADY_UPPER", "Already Upper"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := boilerplate.HumanizeProjectName(tc.in); got != tc.want {
			t.Errorf("HumanizeProjectName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
