package folder

import "fmt"

// Node is the canonical folder representation every template source reduces
// to. Subfolders and Files are always non-nil after normalization so
// downstream consumers never need nil checks.
type Node struct {
	Name       string   `json:"name" yaml:"name"`
	CreateInit bool     `json:"create_init" yaml:"create_init"`
	RootLevel  bool     `json:"root_level,omitempty" yaml:"root_level,omitempty"`
	Subfolders []Node   `json:"subfolders" yaml:"subfolders"`
	Files      []string `json:"files" yaml:"files"`
}

// Input is the closed set of folder shapes accepted by Normalize: a plain
// name, a loose mapping decoded from JSON/YAML, or an already-typed *Spec.
type Input interface {
	folderInput()
}

// Name is the plain-string shape: just a folder name with default flags.
type Name string

func (Name) folderInput() {}

// Map is the loose-mapping shape produced by decoding a template document.
// Recognised keys: name, create_init, root_level, subfolders, files. Missing
// keys fall back to the documented defaults.
type Map map[string]any

func (Map) folderInput() {}

// Spec is the structured shape produced by typed template construction. A nil
// CreateInit means "unset" and resolves to the default (true) during
// normalization.
type Spec struct {
	Name       string
	CreateInit *bool
	RootLevel  bool
	Subfolders []Input
	Files      []string
}

func (*Spec) folderInput() {}

// InputFrom converts a decoded JSON/YAML value into an Input. Values outside
// the three supported shapes are a caller error and fail fast rather than
// being coerced into a guessed folder.
func InputFrom(value any) (Input, error) {
	switch v := value.(type) {
	case Input:
		return v, nil
	case Spec:
		return &v, nil
	case string:
		return Name(v), nil
	case map[string]any:
		return Map(v), nil
	default:
		return nil, fmt.Errorf("folder: unsupported folder value %T (%v)", value, value)
	}
}
