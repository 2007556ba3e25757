package resolver

import "github.com/taskloom/taskloom/internal/model"

// DependenciesSatisfied reports whether every dependency of the task has
// completed. Only completed counts: pending, in_progress, failed, and
// blocked dependencies all hold a dependent back alike — failure
// propagation is the executor's policy, not the resolver's. A task with
// no dependencies is trivially satisfied; an unknown dependency never is.
func DependenciesSatisfied(taskID string, g *Graph) bool {
	for _, dep := range g.Edges[taskID] {
		t, ok := g.Nodes[dep]
		if !ok || t.Status != model.StatusCompleted {
			return false
		}
	}
	return true
}

// NextReadyTasks returns every pending task whose dependencies are all
// completed, in input order. Tasks that are themselves completed,
// in_progress, failed, or blocked are excluded; a task's own status
// never affects its dependents' eligibility, only its dependency status
// does. Callers re-query after every status change; there is no
// push/notify mechanism.
func NextReadyTasks(g *Graph) []string {
	var ready []string
	for _, id := range g.order {
		switch g.Nodes[id].Status {
		case model.StatusCompleted, model.StatusInProgress, model.StatusFailed, model.StatusBlocked:
			continue
		}
		if DependenciesSatisfied(id, g) {
			ready = append(ready, id)
		}
	}
	return ready
}
