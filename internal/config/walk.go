package config

import (
	"fmt"
	"io"
	"strconv"
)

// Entry is a single line of the configuration dump produced by Walk.
type Entry struct {
	Key   string
	Value string
}

// node is the explicit tree the dump is built from. Groups carry children,
// leaves carry a value.
type node struct {
	key      string
	value    string
	children []node
}

func leaf(key string, value any) node {
	return node{key: key, value: fmt.Sprint(value)}
}

func group(key string, children ...node) node {
	return node{key: key, value: fmt.Sprintf("{%d}", len(children)), children: children}
}

func (m *Model) tree() []node {
	var nodes []node
	if m.Settings != nil {
		nodes = append(nodes, group("setting",
			leaf("from_epsg", m.Settings.FromEPSG),
			leaf("to_epsg", m.Settings.ToEPSG),
			leaf("label", m.Settings.Label),
		))
	}
	if m.Loadings != nil {
		batches := make([]node, 0, len(m.Loadings.Coordinates))
		for i, b := range m.Loadings.Coordinates {
			batches = append(batches, group(strconv.Itoa(i+1),
				leaf("lng", b.Lng),
				leaf("lat", b.Lat),
			))
		}
		nodes = append(nodes, group("loads", group("coordinates", batches...)))
	}
	if m.Savings != nil {
		nodes = append(nodes, group("saves", leaf("basename", m.Savings.BaseName)))
	}
	return nodes
}

// Walk flattens the model into depth-first entries. Nested keys are joined
// with " -> ".
func (m *Model) Walk() []Entry {
	var entries []Entry
	var visit func(prefix string, nodes []node)
	visit = func(prefix string, nodes []node) {
		for _, n := range nodes {
			key := n.key
			if prefix != "" {
				key = prefix + " -> " + n.key
			}
			entries = append(entries, Entry{Key: key, Value: n.value})
			visit(key, n.children)
		}
	}
	visit("", m.tree())
	return entries
}

// Fprint writes the output of Walk to w, one aligned entry per line.
func Fprint(w io.Writer, m *Model) error {
	for _, e := range m.Walk() {
		if _, err := fmt.Fprintf(w, "%-40s: %s\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
