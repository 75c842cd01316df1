package scope

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tasksFile = "tasks.yaml"

// Task statuses, in kanban column order.
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// Statuses returns the task statuses in column order.
func Statuses() []string {
	return []string{StatusTodo, StatusDoing, StatusDone}
}

// Task is one line of work shown by the project views.
// Start and Days are whole days relative to the project start.
type Task struct {
	Title  string `yaml:"title"`
	Status string `yaml:"status"`
	Start  int    `yaml:"start"`
	Days   int    `yaml:"days"`
}

// LoadTasks reads <project>/tasks.yaml. A missing file yields no tasks.
// Unknown statuses are treated as todo; non-positive durations as one day.
func (m *Manager) LoadTasks(id string) ([]Task, error) {
	if id == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filepath.Join(m.base, id, tasksFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var tasks []Task
	if err := yaml.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s tasks: %w", id, err)
	}
	for i := range tasks {
		switch tasks[i].Status {
		case StatusTodo, StatusDoing, StatusDone:
		default:
			tasks[i].Status = StatusTodo
		}
		if tasks[i].Days <= 0 {
			tasks[i].Days = 1
		}
		if tasks[i].Start < 0 {
			tasks[i].Start = 0
		}
	}
	return tasks, nil
}

// SaveTasks writes tasks to <project>/tasks.yaml.
func (m *Manager) SaveTasks(id string, tasks []Task) error {
	b, err := yaml.Marshal(tasks)
	if err != nil {
		return err
	}
	dir := filepath.Join(m.base, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, tasksFile), b, 0644)
}
