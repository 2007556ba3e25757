package resolver

// DetectCycles finds dependency cycles via depth-first traversal with an
// explicit path stack: reaching a node already on the current path means
// the stack sub-sequence from that node to the top is one cycle. Fully
// explored nodes are never re-explored as DFS roots, so the walk finds
// at least one cycle per cyclic region but not every cycle through every
// node. Returns nil for an acyclic graph.
func DetectCycles(g *Graph) [][]string {
	var cycles [][]string

	visited := make(map[string]bool, len(g.order))
	onStack := make(map[string]bool, len(g.order))
	stackIndex := make(map[string]int, len(g.order))
	var path []string

	var dfs func(id string)
	dfs = func(id string) {
		visited[id] = true
		onStack[id] = true
		stackIndex[id] = len(path)
		path = append(path, id)

		for _, dep := range g.Edges[id] {
			if _, ok := g.Nodes[dep]; !ok {
				continue // dangling reference, the validator's concern
			}
			if onStack[dep] {
				cycles = append(cycles, append([]string(nil), path[stackIndex[dep]:]...))
				continue
			}
			if !visited[dep] {
				dfs(dep)
			}
		}

		path = path[:len(path)-1]
		onStack[id] = false
	}

	for _, id := range g.order {
		if !visited[id] {
			dfs(id)
		}
	}
	return cycles
}
