package taskfile

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/taskloom/taskloom/internal/model"
)

// Load reads and schema-checks a task-set file. Tasks without a status
// default to pending; an unrecognized status is an error rather than a
// silent skip.
func Load(path string) (*model.TaskSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if err := ValidateSchemaHeaderFromBytes(content); err != nil {
		return nil, fmt.Errorf("task file %s: %w", path, err)
	}

	var set model.TaskSet
	if err := yamlv3.Unmarshal(content, &set); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}

	for i := range set.Tasks {
		if set.Tasks[i].Status == "" {
			set.Tasks[i].Status = model.StatusPending
			continue
		}
		if !model.ValidStatus(set.Tasks[i].Status) {
			return nil, fmt.Errorf("task file %s: task %q has unknown status %q",
				path, set.Tasks[i].ID, set.Tasks[i].Status)
		}
	}

	return &set, nil
}

// Save atomically rewrites the task-set file, stamping the current
// schema header.
func Save(path string, set *model.TaskSet) error {
	set.SchemaVersion = CurrentSchemaVersion
	set.FileType = FileTypeTaskSet
	return AtomicWrite(path, set)
}
