package resolver

import (
	"fmt"
	"strings"

	"github.com/taskloom/taskloom/internal/model"
)

// ValidationResult is the accumulating error surface: Valid is true iff
// no check produced an error.
type ValidationResult struct {
	Valid  bool     `yaml:"valid"`
	Errors []string `yaml:"errors"`
}

// ValidateGraph checks the raw task list for duplicate ids,
// self-dependency, missing dependency targets, and cycles, in that
// order, accumulating every applicable error. Cycle checking here is in
// addition to DetectCycles; consumers query both surfaces separately.
func ValidateGraph(tasks []model.Task) ValidationResult {
	errs := &ValidationErrors{}

	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if seen[t.ID] {
			errs.Add(fmt.Sprintf("tasks[%d].id", i), fmt.Sprintf("duplicate task id %q", t.ID))
		}
		seen[t.ID] = true
	}

	for i, t := range tasks {
		for _, dep := range t.Dependencies {
			if dep == t.ID {
				errs.Add(fmt.Sprintf("tasks[%d].dependencies", i),
					fmt.Sprintf("task %q depends on itself", t.ID))
			}
		}
	}

	for i, t := range tasks {
		for j, dep := range t.Dependencies {
			if dep == t.ID {
				continue
			}
			if !seen[dep] {
				errs.Add(fmt.Sprintf("tasks[%d].dependencies[%d]", i, j),
					fmt.Sprintf("task %q depends on missing task %q", t.ID, dep))
			}
		}
	}

	for _, cycle := range DetectCycles(BuildGraph(tasks)) {
		errs.Add("tasks", fmt.Sprintf("dependency cycle detected: %s", strings.Join(cycle, " -> ")))
	}

	return ValidationResult{Valid: !errs.HasErrors(), Errors: errs.Messages()}
}
