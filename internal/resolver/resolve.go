package resolver

import "github.com/taskloom/taskloom/internal/model"

// Resolution is the full diagnostic report from Resolve, the fail-soft
// counterpart to the throwing TopologicalSort: every defect lands in
// Errors, Cycles, or BlockedTasks instead of aborting at the first.
type Resolution struct {
	Success        bool       `yaml:"success"`
	ExecutionOrder []string   `yaml:"execution_order"`
	Cycles         [][]string `yaml:"cycles"`
	Errors         []string   `yaml:"errors"`
	BlockedTasks   []string   `yaml:"blocked_tasks"`
}

// Resolve runs structural validation, graph build, cycle detection, and,
// when the input is clean, the topological sort. Success requires
// validation to pass and the graph to be acyclic; on failure
// ExecutionOrder stays empty.
func Resolve(tasks []model.Task) Resolution {
	res := Resolution{}

	validation := ValidateGraph(tasks)
	res.Errors = validation.Errors

	g := BuildGraph(tasks)
	res.Cycles = DetectCycles(g)
	res.BlockedTasks = blockedTasks(g)

	if !validation.Valid || len(res.Cycles) > 0 {
		return res
	}

	order, err := TopologicalSort(g)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	res.Success = true
	res.ExecutionOrder = order
	return res
}

// blockedTasks returns every task whose dependency chain is
// unsatisfiable: tasks referencing a missing id, plus everything
// transitively downstream of them, in input order.
func blockedTasks(g *Graph) []string {
	blocked := make(map[string]bool)
	for _, id := range g.order {
		for _, dep := range g.Edges[id] {
			if _, ok := g.Nodes[dep]; !ok {
				blocked[id] = true
			}
		}
	}
	if len(blocked) == 0 {
		return nil
	}

	for changed := true; changed; {
		changed = false
		for _, id := range g.order {
			if blocked[id] {
				continue
			}
			for _, dep := range g.Edges[id] {
				if blocked[dep] {
					blocked[id] = true
					changed = true
					break
				}
			}
		}
	}

	out := make([]string, 0, len(blocked))
	for _, id := range g.order {
		if blocked[id] {
			out = append(out, id)
		}
	}
	return out
}
