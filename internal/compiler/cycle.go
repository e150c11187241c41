package compiler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/rdforder/internal/term"
)

// CycleWarning reports anonymous resources that reach themselves through
// blank-to-blank statements.
//
// Cycles are warnings, not errors: the graph is valid, but a cyclic blank
// structure cannot be written as nested anonymous nodes and its labels
// cannot be canonicalized by position alone.
type CycleWarning struct {
	Path    []string `json:"path"`    // blank ids: ["b0", "b1", "b0"]
	Message string   `json:"message"` // Human-readable description
	Level   string   `json:"level"`   // "warning"
}

// AnalyzeBlankCycles finds cycles among blank nodes.
//
// The algorithm:
//  1. Build blank → blank edges from statements whose subject and object
//     are both blank nodes
//  2. Use Tarjan's algorithm to find strongly connected components
//  3. Report each SCC with size > 1 or a self-loop
//
// Nodes are visited in id order so the result is deterministic. A graph
// without blank cycles returns an empty list.
func AnalyzeBlankCycles(sts []term.Statement) []CycleWarning {
	graph := buildBlankGraph(sts)
	if len(graph) == 0 {
		return []CycleWarning{}
	}

	warnings := []CycleWarning{}
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 || hasSelfLoop(scc[0], graph) {
			warnings = append(warnings, sccToWarning(scc, graph))
		}
	}
	return warnings
}

// blankGraph maps a blank id to the blank ids it points at, sorted.
type blankGraph map[string][]string

func buildBlankGraph(sts []term.Statement) blankGraph {
	graph := make(blankGraph)
	for _, st := range sts {
		s, ok := st.Subject.(term.Blank)
		if !ok {
			continue
		}
		o, ok := st.Object.(term.Blank)
		if !ok {
			continue
		}
		graph[s.ID] = append(graph[s.ID], o.ID)
		if _, ok := graph[o.ID]; !ok {
			graph[o.ID] = nil
		}
	}
	for id, next := range graph {
		slices.Sort(next)
		graph[id] = slices.Compact(next)
	}
	return graph
}

func hasSelfLoop(node string, graph blankGraph) bool {
	_, found := slices.BinarySearch(graph[node], node)
	return found
}

// tarjanSCC returns strongly connected components, each sorted by id.
func tarjanSCC(graph blankGraph) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// v is a root: pop its component
		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			slices.Sort(scc)
			sccs = append(sccs, scc)
		}
	}

	nodes := make([]string, 0, len(graph))
	for id := range graph {
		nodes = append(nodes, id)
	}
	slices.Sort(nodes)
	for _, node := range nodes {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	slices.SortFunc(sccs, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})
	return sccs
}

func sccToWarning(scc []string, graph blankGraph) CycleWarning {
	if len(scc) == 1 {
		id := scc[0]
		return CycleWarning{
			Path:    []string{id, id},
			Message: fmt.Sprintf("blank node _:%s refers to itself", id),
			Level:   "warning",
		}
	}

	path := cyclePath(scc, graph)
	labels := make([]string, len(path))
	for i, id := range path {
		labels[i] = "_:" + id
	}
	return CycleWarning{
		Path:    path,
		Message: fmt.Sprintf("blank node cycle: %s", strings.Join(labels, " -> ")),
		Level:   "warning",
	}
}

// cyclePath walks from the smallest id through unvisited members of the
// component until it returns to the start.
func cyclePath(scc []string, graph blankGraph) []string {
	start := scc[0]
	path := []string{start}
	visited := map[string]bool{start: true}

	current := start
	for {
		next := ""
		for _, w := range graph[current] {
			if _, in := slices.BinarySearch(scc, w); !in {
				continue
			}
			if w == start && len(path) > 1 {
				return append(path, start)
			}
			if !visited[w] && next == "" {
				next = w
			}
		}
		if next == "" {
			return path
		}
		visited[next] = true
		path = append(path, next)
		current = next
	}
}
