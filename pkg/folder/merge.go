package folder

// MergeLists combines two folder lists into one. Folders matching by name
// (case-sensitive) are merged recursively: subfolders are merged with the
// same algorithm, file lists are unioned, and the create-init/root-level
// flags are OR'd so either template's opinion is honored. Primary entries
// keep their original order; secondary-only entries are appended after them
// in their own relative order.
//
// Names are assumed unique within each list. When the secondary list carries
// duplicates, the last occurrence wins for matching.
func MergeLists(primary, secondary []Input) ([]Node, error) {
	normPrimary, err := NormalizeList(primary)
	if err != nil {
		return nil, err
	}
	normSecondary, err := NormalizeList(secondary)
	if err != nil {
		return nil, err
	}
	return MergeNodes(normPrimary, normSecondary), nil
}

// MergeNodes merges two already-normalized folder lists. It never mutates its
// inputs; merged entries are fresh values.
func MergeNodes(primary, secondary []Node) []Node {
	byName := make(map[string]Node, len(secondary))
	for _, node := range secondary {
		byName[node.Name] = node
	}

	merged := make([]Node, 0, len(primary)+len(secondary))
	matched := make(map[string]bool)

	for _, p := range primary {
		s, ok := byName[p.Name]
		if !ok {
			merged = append(merged, p)
			continue
		}
		matched[p.Name] = true
		merged = append(merged, mergeNode(p, s))
	}

	for _, s := range secondary {
		if !matched[s.Name] {
			merged = append(merged, s)
		}
	}
	return merged
}

func mergeNode(primary, secondary Node) Node {
	return Node{
		Name:       primary.Name,
		CreateInit: primary.CreateInit || secondary.CreateInit,
		RootLevel:  primary.RootLevel || secondary.RootLevel,
		Subfolders: MergeNodes(primary.Subfolders, secondary.Subfolders),
		Files:      mergeFiles(primary.Files, secondary.Files),
	}
}

// mergeFiles unions two file lists, primary order first, secondary-only files
// appended in secondary order, duplicates dropped.
func mergeFiles(primary, secondary []string) []string {
	seen := make(map[string]bool, len(primary))
	out := make([]string, 0, len(primary)+len(secondary))
	for _, f := range primary {
		seen[f] = true
		out = append(out, f)
	}
	for _, f := range secondary {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
