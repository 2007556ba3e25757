package resolver

// ParallelGroups derives scheduling generations: a task's layer is one
// plus the maximum layer of its dependencies, roots sit at layer 0, and
// tasks sharing a layer share a group. Groups come back ordered by
// increasing layer, each group in input order. The result is a safe
// upper bound on parallelism, not a claim that members of one group are
// mutually independent. Returns nil when the graph is empty or cyclic.
func ParallelGroups(g *Graph) [][]string {
	order, err := TopologicalSort(g)
	if err != nil || len(order) == 0 {
		return nil
	}

	layer := make(map[string]int, len(order))
	maxLayer := 0
	for _, id := range order {
		l := 0
		for _, dep := range g.Edges[id] {
			if _, ok := g.Nodes[dep]; !ok {
				continue
			}
			if layer[dep]+1 > l {
				l = layer[dep] + 1
			}
		}
		layer[id] = l
		if l > maxLayer {
			maxLayer = l
		}
	}

	groups := make([][]string, maxLayer+1)
	for _, id := range g.order {
		groups[layer[id]] = append(groups[layer[id]], id)
	}
	return groups
}
