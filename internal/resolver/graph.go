// Package resolver turns a flat task list into a validated execution
// plan: a dependency graph, a deterministic linear order, the set of
// tasks currently eligible to run, parallel-execution layers, and the
// longest path by estimated duration. Every operation is a pure function
// over a caller-supplied snapshot; nothing here executes tasks or
// mutates status.
package resolver

import "github.com/taskloom/taskloom/internal/model"

// Graph is a transient, request-scoped view over a task list. Nodes and
// edges are keyed by task id so traversals walk ids, never pointers.
// Edges point in dependency direction: Edges[id] lists what id waits on.
type Graph struct {
	Nodes map[string]model.Task
	Edges map[string][]string
	Roots []string

	// ids in first-seen input order; traversals iterate this instead of
	// map keys so results are stable for a given input.
	order []string
}

// BuildGraph reflects the task list as-is, with no validation: dangling
// references and self-loops are preserved so the validator and cycle
// detector can report on exactly those defects. On a duplicate id the
// first occurrence wins; duplicate reporting belongs to ValidateGraph.
// A task is a root iff its dependency list is empty, even when every
// listed dependency is itself missing.
func BuildGraph(tasks []model.Task) *Graph {
	g := &Graph{
		Nodes: make(map[string]model.Task, len(tasks)),
		Edges: make(map[string][]string, len(tasks)),
	}
	for _, t := range tasks {
		if _, seen := g.Nodes[t.ID]; seen {
			continue
		}
		g.Nodes[t.ID] = t
		g.Edges[t.ID] = append([]string(nil), t.Dependencies...)
		g.order = append(g.order, t.ID)
		if len(t.Dependencies) == 0 {
			g.Roots = append(g.Roots, t.ID)
		}
	}
	return g
}

// TaskIDs returns every node id in input order.
func (g *Graph) TaskIDs() []string {
	return append([]string(nil), g.order...)
}
