package resolver

// defaultDuration weights tasks without an estimate so every node still
// contributes to path length.
const defaultDuration = 1

func taskDuration(g *Graph, id string) int {
	if d := g.Nodes[id].Metadata.EstimatedDuration; d > 0 {
		return d
	}
	return defaultDuration
}

// CriticalPath returns one root-to-leaf path, in execution order
// (dependency before dependent), that maximizes summed estimated
// duration. Dynamic programming over the topological order: each task's
// finish contribution is its own duration plus the maximum among its
// dependencies; the path is rebuilt by walking back through whichever
// dependency achieved that maximum. Ties fall to the earlier entry in
// input order. Returns nil when the graph is empty or cyclic.
func CriticalPath(g *Graph) []string {
	order, err := TopologicalSort(g)
	if err != nil || len(order) == 0 {
		return nil
	}

	dist := make(map[string]int, len(order))
	back := make(map[string]string, len(order))

	for _, id := range order {
		best := 0
		bestDep := ""
		for _, dep := range g.Edges[id] {
			if _, ok := g.Nodes[dep]; !ok {
				continue
			}
			if dist[dep] > best {
				best = dist[dep]
				bestDep = dep
			}
		}
		dist[id] = taskDuration(g, id) + best
		back[id] = bestDep
	}

	end := ""
	for _, id := range g.order {
		if end == "" || dist[id] > dist[end] {
			end = id
		}
	}

	// Walk back from the heaviest finisher to its root, then flip into
	// execution order.
	var path []string
	for id := end; id != ""; id = back[id] {
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
