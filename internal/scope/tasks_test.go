package scope

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTasks_Missing(t *testing.T) {
	m := NewManager(t.TempDir())
	tasks, err := m.LoadTasks("depot")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	tasks, err = m.LoadTasks("")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoadTasks_Normalizes(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "depot"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "depot", "tasks.yaml"), []byte(`
- title: Pour foundation
  status: done
  start: 0
  days: 5
- title: Frame walls
  status: blocked
  start: -2
  days: 0
`), 0644))

	tasks, err := m.LoadTasks("depot")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, Task{Title: "Pour foundation", Status: StatusDone, Start: 0, Days: 5}, tasks[0])
	assert.Equal(t, Task{Title: "Frame walls", Status: StatusTodo, Start: 0, Days: 1}, tasks[1])
}

func TestLoadTasks_Corrupt(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "depot"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "depot", "tasks.yaml"), []byte("title: [\n"), 0644))
	_, err := m.LoadTasks("depot")
	assert.Error(t, err)
}

func TestSaveTasks_RoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())
	in := []Task{{Title: "Survey site", Status: StatusDoing, Start: 2, Days: 3}}
	require.NoError(t, m.SaveTasks("annex", in))
	out, err := m.LoadTasks("annex")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
