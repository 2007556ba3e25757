package resolver

import (
	"testing"

	"github.com/taskloom/taskloom/internal/model"
)

func TestCriticalPath_HeavierBranchWins(t *testing.T) {
	// a → b (10) → d and a → c (2) → d; the b branch dominates.
	g := BuildGraph([]model.Task{
		taskWithDuration("a", 1),
		taskWithDuration("b", 10, "a"),
		taskWithDuration("c", 2, "a"),
		taskWithDuration("d", 1, "b", "c"),
	})

	path := CriticalPath(g)
	want := []string{"a", "b", "d"}
	if len(path) != len(want) {
		t.Fatalf("expected %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, path)
		}
	}
}

func TestCriticalPath_ExecutionOrder(t *testing.T) {
	g := BuildGraph([]model.Task{
		taskWithDuration("leaf", 5, "mid"),
		taskWithDuration("mid", 5, "root"),
		taskWithDuration("root", 5),
	})

	path := CriticalPath(g)
	if len(path) != 3 || path[0] != "root" || path[1] != "mid" || path[2] != "leaf" {
		t.Errorf("expected root-to-leaf order [root mid leaf], got %v", path)
	}
}

func TestCriticalPath_DefaultWeight(t *testing.T) {
	// Without estimates every task weighs one unit, so the longest chain
	// by hop count wins.
	g := BuildGraph([]model.Task{
		task("a"),
		task("b", "a"),
		task("c", "b"),
		task("x"),
	})

	path := CriticalPath(g)
	want := []string{"a", "b", "c"}
	if len(path) != len(want) {
		t.Fatalf("expected %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, path)
		}
	}
}

func TestCriticalPath_DominatesEveryRootToLeafPath(t *testing.T) {
	g := BuildGraph([]model.Task{
		taskWithDuration("a", 3),
		taskWithDuration("b", 4),
		taskWithDuration("c", 2, "a"),
		taskWithDuration("d", 9, "b"),
		taskWithDuration("e", 1, "c", "d"),
	})

	path := CriticalPath(g)
	total := 0
	for _, id := range path {
		total += taskDuration(g, id)
	}
	// Longest path is b(4) → d(9) → e(1) = 14.
	if total != 14 {
		t.Errorf("expected path weight 14, got %d for %v", total, path)
	}
	if path[0] != "b" || path[len(path)-1] != "e" {
		t.Errorf("expected b...e, got %v", path)
	}
}

func TestCriticalPath_TieBreaksByInputOrder(t *testing.T) {
	g := BuildGraph([]model.Task{
		taskWithDuration("a", 5),
		taskWithDuration("b", 5),
		taskWithDuration("c", 1, "a", "b"),
	})

	path := CriticalPath(g)
	if len(path) != 2 || path[0] != "a" || path[1] != "c" {
		t.Errorf("expected tie broken toward a, got %v", path)
	}
}

func TestCriticalPath_SingleTask(t *testing.T) {
	path := CriticalPath(BuildGraph([]model.Task{task("only")}))
	if len(path) != 1 || path[0] != "only" {
		t.Errorf("expected [only], got %v", path)
	}
}

func TestCriticalPath_CyclicReturnsNil(t *testing.T) {
	g := BuildGraph([]model.Task{
		task("a", "b"),
		task("b", "a"),
	})
	if path := CriticalPath(g); path != nil {
		t.Errorf("expected nil for cyclic graph, got %v", path)
	}
}
