package resolver

import "github.com/taskloom/taskloom/internal/model"

func task(id string, deps ...string) model.Task {
	return model.Task{ID: id, Dependencies: deps, Status: model.StatusPending}
}

func taskWithStatus(id string, status model.Status, deps ...string) model.Task {
	return model.Task{ID: id, Dependencies: deps, Status: status}
}

func taskWithDuration(id string, minutes int, deps ...string) model.Task {
	return model.Task{
		ID:           id,
		Dependencies: deps,
		Status:       model.StatusPending,
		Metadata:     model.TaskMetadata{EstimatedDuration: minutes},
	}
}

func indexOf(slice []string, val string) int {
	for i, s := range slice {
		if s == val {
			return i
		}
	}
	return -1
}

func contains(slice []string, val string) bool {
	return indexOf(slice, val) >= 0
}
