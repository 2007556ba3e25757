// Package planner wraps the resolver with a file-backed task store.
// Executors poll it after every status change; concurrent callers over
// an unchanged file share a single resolution pass.
package planner

import (
	"fmt"
	"os"

	"golang.org/x/sync/singleflight"

	"github.com/taskloom/taskloom/internal/lock"
	"github.com/taskloom/taskloom/internal/model"
	"github.com/taskloom/taskloom/internal/resolver"
	"github.com/taskloom/taskloom/internal/taskfile"
)

// Report bundles everything a scheduler needs from one resolution pass.
// ParallelGroups and CriticalPath are only populated when the resolution
// succeeded.
type Report struct {
	Resolution     resolver.Resolution `yaml:"resolution"`
	ReadyTasks     []string            `yaml:"ready_tasks"`
	ParallelGroups [][]string          `yaml:"parallel_groups,omitempty"`
	CriticalPath   []string            `yaml:"critical_path,omitempty"`
}

type Service struct {
	sf    singleflight.Group
	locks *lock.MutexMap
}

func NewService() *Service {
	return &Service{locks: lock.NewMutexMap()}
}

// BuildReport runs a full resolution pass over an in-memory task list.
func BuildReport(tasks []model.Task) *Report {
	g := resolver.BuildGraph(tasks)
	rep := &Report{
		Resolution: resolver.Resolve(tasks),
		ReadyTasks: resolver.NextReadyTasks(g),
	}
	if rep.Resolution.Success {
		rep.ParallelGroups = resolver.ParallelGroups(g)
		rep.CriticalPath = resolver.CriticalPath(g)
	}
	return rep
}

// Plan loads the task file and resolves it. Calls racing over the same
// snapshot collapse into one computation, keyed by the file fingerprint
// (path, mtime, size); any write to the file changes the key.
func (s *Service) Plan(path string) (*Report, error) {
	key, err := fingerprint(path)
	if err != nil {
		return nil, err
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		set, err := taskfile.Load(path)
		if err != nil {
			return nil, err
		}
		return BuildReport(set.Tasks), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}

// MarkStatus applies an executor status update to one task and rewrites
// the file atomically. The model transition table guards the update; a
// per-path mutex serializes writers in this process and an flock keeps
// other processes out.
func (s *Service) MarkStatus(path, taskID string, to model.Status) error {
	s.locks.Lock(path)
	defer s.locks.Unlock(path)

	fl := lock.NewFileLock(path + ".lock")
	if err := fl.TryLock(); err != nil {
		return err
	}
	defer fl.Unlock()

	set, err := taskfile.Load(path)
	if err != nil {
		return err
	}

	for i := range set.Tasks {
		if set.Tasks[i].ID != taskID {
			continue
		}
		if err := model.ValidateTaskTransition(set.Tasks[i].Status, to); err != nil {
			return fmt.Errorf("task %q: %w", taskID, err)
		}
		set.Tasks[i].Status = to
		return taskfile.Save(path, set)
	}
	return fmt.Errorf("task %q not found in %s", taskID, path)
}

func fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat task file: %w", err)
	}
	return fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size()), nil
}
