// Package dependency builds and flattens dependency graphs of named
// vertices, such as schema groups that reference other groups.
package dependency // import "github.com/CognitoIQ/go-xsd/internal/dependency"

import "sort"

// insertUnique inserts s into set, preserving order. If s is already in set,
// it is not added. The augmented set is returned.
func insertUnique(set []string, s string) []string {
	i := sort.SearchStrings(set, s)
	if i >= len(set) || set[i] != s {
		set = append(set, "")
		copy(set[i+1:], set[i:])
		set[i] = s
	}
	return set
}

// A Graph is a collection of targets and their dependencies. The zero
// value is an empty Graph ready to use.
type Graph struct {
	targets []string
	nodes   map[string][]string
}

// Len returns the number of targets in the graph.
func (g *Graph) Len() int {
	return len(g.targets)
}

// Add adds dependencies of target to a Graph. A target without
// dependencies may be added by passing no dependencies.
func (g *Graph) Add(target string, dependencies ...string) {
	if g.nodes == nil {
		g.nodes = make(map[string][]string)
	}
	g.targets = insertUnique(g.targets, target)
	if _, ok := g.nodes[target]; !ok {
		g.nodes[target] = nil
	}
	for _, dep := range dependencies {
		g.nodes[target] = insertUnique(g.nodes[target], dep)
	}
}

// Flatten calls the walk function on each node in the Graph in topological
// order, starting with the leaves and traversing up to the roots.  The same
// Graph will always be traversed in the same order.
//
// Every vertex in the Graph is visited once; any cycles in the graph are
// skipped. Use Cycle to detect them.
func (g *Graph) Flatten(walk func(string)) {
	visited := make(map[string]bool, len(g.nodes))
	g.flatten(walk, g.targets, visited)
}

func (g *Graph) flatten(fn func(string), targets []string, visited map[string]bool) {
	for _, tgt := range targets {
		if !visited[tgt] {
			visited[tgt] = true
			g.flatten(fn, g.nodes[tgt], visited)
			fn(tgt)
		}
	}
}

// Cycle returns the first cycle found in the Graph, as a path that
// starts and ends on the same vertex, or nil if the Graph is acyclic.
func (g *Graph) Cycle() []string {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.nodes))
	var path []string
	var visit func(string) []string

	visit = func(v string) []string {
		color[v] = grey
		path = append(path, v)
		for _, dep := range g.nodes[v] {
			switch color[dep] {
			case grey:
				for i, p := range path {
					if p == dep {
						cycle := append([]string(nil), path[i:]...)
						return append(cycle, dep)
					}
				}
			case white:
				if c := visit(dep); c != nil {
					return c
				}
			}
		}
		path = path[:len(path)-1]
		color[v] = black
		return nil
	}
	for _, tgt := range g.targets {
		if color[tgt] == white {
			if c := visit(tgt); c != nil {
				return c
			}
		}
	}
	return nil
}
