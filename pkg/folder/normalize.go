package folder

import (
	"errors"
	"fmt"
)

// ErrEmptyName reports a folder-like value with no derivable name.
var ErrEmptyName = errors.New("folder: folder name is empty")

// Normalize converts any supported folder shape into a fully populated Node.
// Nested subfolders are normalized recursively regardless of which shape the
// parent arrived as, so a loose-mapping parent may freely mix plain-string
// and structured children.
func Normalize(in Input) (Node, error) {
	return normalize(in, true)
}

// NormalizeList normalizes every entry of a folder list independently.
func NormalizeList(inputs []Input) ([]Node, error) {
	nodes := make([]Node, 0, len(inputs))
	for i, in := range inputs {
		node, err := normalize(in, true)
		if err != nil {
			return nil, fmt.Errorf("folder: entry %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// normalize carries the parent's create-init flag down so plain-string
// subfolders inherit it instead of unconditionally defaulting to true. This
// matches how the materializer treats bare names nested under a folder that
// opted out of initializer files.
func normalize(in Input, parentInit bool) (Node, error) {
	switch v := in.(type) {
	case Name:
		if v == "" {
			return Node{}, ErrEmptyName
		}
		return Node{
			Name:       string(v),
			CreateInit: parentInit,
			Subfolders: []Node{},
			Files:      []string{},
		}, nil

	case *Spec:
		if v == nil || v.Name == "" {
			return Node{}, ErrEmptyName
		}
		createInit := true
		if v.CreateInit != nil {
			createInit = *v.CreateInit
		}
		subs, err := normalizeChildren(v.Subfolders, createInit)
		if err != nil {
			return Node{}, fmt.Errorf("folder: %q: %w", v.Name, err)
		}
		return Node{
			Name:       v.Name,
			CreateInit: createInit,
			RootLevel:  v.RootLevel,
			Subfolders: subs,
			Files:      copyFiles(v.Files),
		}, nil

	case Map:
		return normalizeMap(v)

	default:
		return Node{}, fmt.Errorf("folder: unsupported folder input %T", in)
	}
}

func normalizeMap(m Map) (Node, error) {
	name, err := stringValue(m, "name")
	if err != nil {
		return Node{}, err
	}
	if name == "" {
		return Node{}, ErrEmptyName
	}

	createInit, err := boolValue(m, "create_init", true)
	if err != nil {
		return Node{}, fmt.Errorf("folder: %q: %w", name, err)
	}
	rootLevel, err := boolValue(m, "root_level", false)
	if err != nil {
		return Node{}, fmt.Errorf("folder: %q: %w", name, err)
	}

	rawSubs, err := inputList(m["subfolders"])
	if err != nil {
		return Node{}, fmt.Errorf("folder: %q: subfolders: %w", name, err)
	}
	subs, err := normalizeChildren(rawSubs, createInit)
	if err != nil {
		return Node{}, fmt.Errorf("folder: %q: %w", name, err)
	}

	files, err := fileList(m["files"])
	if err != nil {
		return Node{}, fmt.Errorf("folder: %q: files: %w", name, err)
	}

	return Node{
		Name:       name,
		CreateInit: createInit,
		RootLevel:  rootLevel,
		Subfolders: subs,
		Files:      files,
	}, nil
}

func normalizeChildren(children []Input, parentInit bool) ([]Node, error) {
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		node, err := normalize(child, parentInit)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func stringValue(m Map, key string) (string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("folder: key %q holds %T, want string", key, raw)
	}
	return s, nil
}

func boolValue(m Map, key string, fallback bool) (bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("key %q holds %T, want bool", key, raw)
	}
	return b, nil
}

// inputList accepts the subfolder shapes a decoded document can carry: absent,
// an already-converted []Input, or the []any an unmarshaler produces.
func inputList(raw any) ([]Input, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []Input:
		return v, nil
	case []any:
		inputs := make([]Input, 0, len(v))
		for _, entry := range v {
			in, err := InputFrom(entry)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, in)
		}
		return inputs, nil
	default:
		return nil, fmt.Errorf("holds %T, want a folder list", raw)
	}
}

func fileList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return copyFiles(v), nil
	case []any:
		files := make([]string, 0, len(v))
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("holds %T entry, want string", entry)
			}
			files = append(files, s)
		}
		return files, nil
	default:
		return nil, fmt.Errorf("holds %T, want a file list", raw)
	}
}

func copyFiles(files []string) []string {
	out := make([]string, 0, len(files))
	return append(out, files...)
}
