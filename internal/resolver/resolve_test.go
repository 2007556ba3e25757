package resolver

import (
	"strings"
	"testing"

	"github.com/taskloom/taskloom/internal/model"
)

func TestResolve_LinearChain(t *testing.T) {
	res := Resolve([]model.Task{
		task("1"),
		task("2", "1"),
		task("3", "2"),
	})

	if !res.Success {
		t.Fatalf("expected success, got errors %v", res.Errors)
	}
	if len(res.ExecutionOrder) != 3 || res.ExecutionOrder[0] != "1" || res.ExecutionOrder[1] != "2" || res.ExecutionOrder[2] != "3" {
		t.Errorf("expected order [1 2 3], got %v", res.ExecutionOrder)
	}
	if len(res.Cycles) != 0 {
		t.Errorf("expected no cycles, got %v", res.Cycles)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
}

func TestResolve_Cycle(t *testing.T) {
	res := Resolve([]model.Task{
		task("1", "2"),
		task("2", "1"),
	})

	if res.Success {
		t.Fatal("expected failure for cyclic input")
	}
	if len(res.ExecutionOrder) != 0 {
		t.Errorf("expected empty execution order, got %v", res.ExecutionOrder)
	}
	if len(res.Cycles) == 0 {
		t.Fatal("expected cycles to be reported")
	}
	if !contains(res.Cycles[0], "1") || !contains(res.Cycles[0], "2") {
		t.Errorf("expected cycle containing both ids, got %v", res.Cycles)
	}
}

func TestResolve_MissingDependency(t *testing.T) {
	res := Resolve([]model.Task{task("1", "missing")})

	if res.Success {
		t.Fatal("expected failure for missing dependency")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected errors to be reported")
	}
	if !contains(res.BlockedTasks, "1") {
		t.Errorf("expected task 1 in blocked tasks, got %v", res.BlockedTasks)
	}
}

func TestResolve_BlockedTasksPropagate(t *testing.T) {
	// b references a missing id; c and d sit downstream of b, so their
	// chains are unsatisfiable too. a is untouched.
	res := Resolve([]model.Task{
		task("a"),
		task("b", "ghost"),
		task("c", "b"),
		task("d", "c"),
	})

	if res.Success {
		t.Fatal("expected failure")
	}
	want := []string{"b", "c", "d"}
	if len(res.BlockedTasks) != len(want) {
		t.Fatalf("expected blocked %v, got %v", want, res.BlockedTasks)
	}
	for i := range want {
		if res.BlockedTasks[i] != want[i] {
			t.Fatalf("expected blocked %v, got %v", want, res.BlockedTasks)
		}
	}
	if contains(res.BlockedTasks, "a") {
		t.Errorf("task a should not be blocked, got %v", res.BlockedTasks)
	}
}

func TestResolve_DuplicateIDFails(t *testing.T) {
	res := Resolve([]model.Task{task("1"), task("1")})
	if res.Success {
		t.Fatal("expected failure for duplicate id")
	}
	if len(res.ExecutionOrder) != 0 {
		t.Errorf("expected empty execution order, got %v", res.ExecutionOrder)
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate error, got %v", res.Errors)
	}
}

func TestResolve_Empty(t *testing.T) {
	res := Resolve(nil)
	if !res.Success {
		t.Fatalf("expected success for empty input, got errors %v", res.Errors)
	}
	if len(res.ExecutionOrder) != 0 {
		t.Errorf("expected empty order, got %v", res.ExecutionOrder)
	}
}
