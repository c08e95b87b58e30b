package reader

import (
	"sort"

	"github.com/syssam/clientgen/schema"
)

// Merger merges selection sets.
type Merger struct{}

// MergeSelectionSet inlines the selections of nested client fields, merges
// selections sharing a response key and orders every level by response key.
// Each __refetch selection becomes an id selection on its object, and its
// location is returned as a RefetchPath. Paths are ordered by key and indexed
// in that order.
func (Merger) MergeSelectionSet(s *schema.Schema, parent *schema.Object, sel schema.SelectionSet) (schema.MergedSelectionSet, []schema.RefetchPath) {
	m := &merger{
		schema:   s,
		paths:    make(map[string][]string),
		visiting: make(map[*schema.ClientField]bool),
	}
	root := newLevel()
	m.merge(root, sel, nil)

	paths := make([]schema.RefetchPath, 0, len(m.paths))
	for _, p := range m.paths {
		paths = append(paths, schema.RefetchPath{Path: p})
	}
	return root.set(), schema.SortRefetchPaths(paths)
}

type merger struct {
	schema *schema.Schema
	// paths is keyed by RefetchPath.Key so that a __refetch reached through
	// several client fields is recorded once.
	paths    map[string][]string
	visiting map[*schema.ClientField]bool
}

// level accumulates the merged selections of one object.
type level struct {
	byKey    map[string]*schema.MergedSelection
	children map[string]*level
}

func newLevel() *level {
	return &level{
		byKey:    make(map[string]*schema.MergedSelection),
		children: make(map[string]*level),
	}
}

func (m *merger) merge(l *level, sel schema.SelectionSet, path []string) {
	for _, s := range sel {
		switch s.Kind {
		case schema.SelectScalar:
			l.add(&schema.MergedSelection{Name: s.Name, Alias: s.Alias, Arguments: s.Arguments})
		case schema.SelectLinked:
			key := s.ResponseKey()
			l.add(&schema.MergedSelection{Name: s.Name, Alias: s.Alias, Arguments: s.Arguments, Selections: schema.MergedSelectionSet{}})
			child, ok := l.children[key]
			if !ok {
				child = newLevel()
				l.children[key] = child
			}
			m.merge(child, s.Selections, append(path[:len(path):len(path)], key))
		case schema.SelectResolver:
			cf := s.ClientField
			if cf == nil || m.visiting[cf] {
				continue
			}
			m.visiting[cf] = true
			m.merge(l, cf.Selections, path)
			delete(m.visiting, cf)
		case schema.SelectRefetch:
			l.add(&schema.MergedSelection{Name: "id"})
			p := schema.RefetchPath{Path: path}
			m.paths[p.Key()] = path
		}
	}
}

// add records sel unless its response key is already present.
func (l *level) add(sel *schema.MergedSelection) {
	if _, ok := l.byKey[sel.ResponseKey()]; !ok {
		l.byKey[sel.ResponseKey()] = sel
	}
}

func (l *level) set() schema.MergedSelectionSet {
	keys := make([]string, 0, len(l.byKey))
	for k := range l.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(schema.MergedSelectionSet, 0, len(keys))
	for _, k := range keys {
		sel := l.byKey[k]
		if child, ok := l.children[k]; ok && sel.Linked() {
			sel.Selections = child.set()
		}
		out = append(out, sel)
	}
	return out
}
