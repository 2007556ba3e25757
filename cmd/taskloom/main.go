package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taskloom/taskloom/internal/model"
	"github.com/taskloom/taskloom/internal/planner"
	"github.com/taskloom/taskloom/internal/resolver"
	"github.com/taskloom/taskloom/internal/taskfile"
	"github.com/taskloom/taskloom/internal/watch"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		runValidate(os.Args[2:])
	case "order":
		runOrder(os.Args[2:])
	case "ready":
		runReady(os.Args[2:])
	case "groups":
		runGroups(os.Args[2:])
	case "critical-path":
		runCriticalPath(os.Args[2:])
	case "resolve":
		runResolve(os.Args[2:])
	case "mark":
		runMark(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "recover":
		runRecover(os.Args[2:])
	case "version":
		fmt.Printf("taskloom %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`taskloom - task dependency resolution engine

usage: taskloom <command> [arguments]

commands:
  validate <file>             check a task set for structural defects
  order <file>                print one valid execution order
  ready <file>                print tasks eligible to run now
  groups <file>               print parallel-execution layers
  critical-path <file>        print the longest path by estimated duration
  resolve <file>              print the full resolution report
  mark <file> <id> <status>   update one task's status
  watch <file>                re-resolve on every change to the file
  recover <file>              quarantine a corrupt file and restore it
  version                     print version`)
}

func loadTasks(args []string) []model.Task {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: taskloom <command> <file>")
		os.Exit(1)
	}
	set, err := taskfile.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return set.Tasks
}

func printYAML(v any) {
	out, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: marshal output: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func runValidate(args []string) {
	res := resolver.ValidateGraph(loadTasks(args))
	printYAML(res)
	if !res.Valid {
		os.Exit(1)
	}
}

func runOrder(args []string) {
	g := resolver.BuildGraph(loadTasks(args))
	order, err := resolver.TopologicalSort(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	printYAML(map[string]any{"execution_order": order})
}

func runReady(args []string) {
	g := resolver.BuildGraph(loadTasks(args))
	printYAML(map[string]any{"ready_tasks": resolver.NextReadyTasks(g)})
}

func runGroups(args []string) {
	g := resolver.BuildGraph(loadTasks(args))
	groups := resolver.ParallelGroups(g)
	if groups == nil {
		fmt.Fprintln(os.Stderr, "error: no layering for an empty or cyclic graph")
		os.Exit(1)
	}
	printYAML(map[string]any{"parallel_groups": groups})
}

func runCriticalPath(args []string) {
	g := resolver.BuildGraph(loadTasks(args))
	path := resolver.CriticalPath(g)
	if path == nil {
		fmt.Fprintln(os.Stderr, "error: no critical path for an empty or cyclic graph")
		os.Exit(1)
	}
	printYAML(map[string]any{"critical_path": path})
}

func runResolve(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: taskloom resolve <file>")
		os.Exit(1)
	}
	report, err := planner.NewService().Plan(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	printYAML(report)
	if !report.Resolution.Success {
		os.Exit(1)
	}
}

func runMark(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: taskloom mark <file> <task-id> <status>")
		os.Exit(1)
	}
	status := model.Status(args[2])
	if !model.ValidStatus(status) {
		fmt.Fprintf(os.Stderr, "error: unknown status %q\n", args[2])
		os.Exit(1)
	}
	if err := planner.NewService().MarkStatus(args[0], args[1], status); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runWatch(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: taskloom watch <file>")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigCh
		cancel()
	}()

	w := watch.New(args[0], planner.NewService(), 300*time.Millisecond, func(r *planner.Report) {
		printYAML(r)
		fmt.Println("---")
	})
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runRecover(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: taskloom recover <file>")
		os.Exit(1)
	}
	if err := taskfile.RecoverCorruptedFile(filepath.Dir(args[0]), args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
