package model

// Task is the unit of work supplied to the resolver. Dependencies lists
// the task ids this task must wait on and is the sole source of graph
// edges; everything else is carried through unmodified.
type Task struct {
	ID           string       `yaml:"id"`
	Description  string       `yaml:"description"`
	AgentType    AgentType    `yaml:"agent_type"`
	Priority     Priority     `yaml:"priority"`
	Dependencies []string     `yaml:"dependencies"`
	Status       Status       `yaml:"status"`
	RetryCount   int          `yaml:"retry_count"`
	Metadata     TaskMetadata `yaml:"metadata"`
}

// TaskMetadata is an open attribute set. EstimatedDuration (minutes, 0 =
// unset) is the only field the resolver reads, for critical-path
// weighting; unknown keys ride along in Extra.
type TaskMetadata struct {
	EstimatedDuration int            `yaml:"estimated_duration,omitempty"`
	MaxRetries        int            `yaml:"max_retries,omitempty"`
	RetryDelaySec     int            `yaml:"retry_delay_sec,omitempty"`
	Extra             map[string]any `yaml:",inline"`
}

type AgentType string

const (
	AgentCoordinator AgentType = "coordinator"
	AgentResearcher  AgentType = "researcher"
	AgentCoder       AgentType = "coder"
	AgentAnalyst     AgentType = "analyst"
	AgentTester      AgentType = "tester"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// TaskSet is the on-disk task list document.
type TaskSet struct {
	SchemaVersion int    `yaml:"schema_version"`
	FileType      string `yaml:"file_type"`
	Tasks         []Task `yaml:"tasks"`
}
