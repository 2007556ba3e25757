package resolver

import (
	"fmt"
	"strings"
)

// CycleError is the single fatal condition TopologicalSort signals: the
// graph is cyclic, so no valid total order exists.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// TopologicalSort produces one valid linear execution order: for every
// task that depends on another, the dependency precedes it. Kahn's
// algorithm with the ready queue seeded and extended in input order, so
// the result is stable for a given task list. On a cyclic graph it
// returns *CycleError carrying a reconstructed cycle path; no partial
// order is ever returned.
func TopologicalSort(g *Graph) ([]string, error) {
	inDegree := make(map[string]int, len(g.order))
	forward := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		inDegree[id] = 0
	}

	// Forward adjacency (dependency → dependent), built in input order.
	for _, id := range g.order {
		for _, dep := range g.Edges[id] {
			if _, ok := g.Nodes[dep]; !ok {
				continue // dangling reference, the validator's concern
			}
			inDegree[id]++
			forward[dep] = append(forward[dep], id)
		}
	}

	var queue []string
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	sorted := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		sorted = append(sorted, id)

		for _, dependent := range forward[id] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) == len(g.order) {
		return sorted, nil
	}
	return nil, &CycleError{Cycle: findCyclePath(g, inDegree)}
}

// findCyclePath reconstructs one cycle among the nodes Kahn's algorithm
// could not order.
func findCyclePath(g *Graph, inDegree map[string]int) []string {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // finished
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		for _, dep := range g.Edges[id] {
			if _, ok := g.Nodes[dep]; !ok {
				continue
			}
			if color[dep] == gray {
				// Found cycle: walk parents back to the entry node.
				cyclePath = []string{dep}
				current := id
				for current != dep {
					cyclePath = append(cyclePath, current)
					current = parent[current]
				}
				cyclePath = append(cyclePath, dep)
				// Reverse to get forward order
				for i, j := 0, len(cyclePath)-1; i < j; i, j = i+1, j-1 {
					cyclePath[i], cyclePath[j] = cyclePath[j], cyclePath[i]
				}
				return true
			}
			if color[dep] == white {
				parent[dep] = id
				if dfs(dep) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	// Start DFS from nodes still stuck in the cycle (non-zero in-degree).
	for _, id := range g.order {
		if inDegree[id] > 0 && color[id] == white {
			if dfs(id) {
				return cyclePath
			}
		}
	}

	return []string{"(cycle detected)"}
}
