// Package scope discovers the project scopes a view preference can be stored
// under. Each project is a directory under the projects base.
package scope

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectDirEnv is the env var override for the projects base directory.
	ProjectDirEnv = "SITEBOARD_PROJECTS_DIR"
	// DefaultProjectsBase is the default base for project directories under $HOME.
	DefaultProjectsBase = ".siteboard/projects"

	projectFile = "project.yaml"
)

// ResolveProjectsBase returns the projects base directory, using the
// SITEBOARD_PROJECTS_DIR env var if set, otherwise ~/.siteboard/projects.
func ResolveProjectsBase() (string, error) {
	if base := os.Getenv(ProjectDirEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultProjectsBase), nil
}

// Info describes one project scope.
type Info struct {
	ID   string // directory name; used as the preference scope id
	Name string // display name from project.yaml, or ID
	Dir  string
}

// projectMeta is the on-disk project.yaml.
type projectMeta struct {
	Name string `yaml:"name"`
}

// Manager lists and creates project scopes.
type Manager struct {
	base string
}

// NewManager creates a manager for the given projects base directory.
func NewManager(base string) *Manager {
	return &Manager{base: base}
}

// Base returns the projects base directory.
func (m *Manager) Base() string {
	return m.base
}

// Normalize derives a scope id from a display name: lowercase, spaces to hyphens.
func Normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// List returns project scopes sorted by id. A missing base yields no scopes.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []Info
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(m.base, e.Name())
		out = append(out, Info{
			ID:   e.Name(),
			Name: readName(dir, e.Name()),
			Dir:  dir,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Create makes a project directory with a project.yaml naming it.
// Creating an existing project is a no-op.
func (m *Manager) Create(name string) (Info, error) {
	id := Normalize(name)
	if id == "" || strings.HasPrefix(id, ".") || strings.ContainsAny(id, `/\`) {
		return Info{}, fmt.Errorf("invalid project name %q", name)
	}
	dir := filepath.Join(m.base, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Info{}, err
	}
	metaPath := filepath.Join(dir, projectFile)
	if _, err := os.Stat(metaPath); err == nil {
		return Info{ID: id, Name: readName(dir, id), Dir: dir}, nil
	}
	b, err := yaml.Marshal(projectMeta{Name: strings.TrimSpace(name)})
	if err != nil {
		return Info{}, err
	}
	if err := os.WriteFile(metaPath, b, 0644); err != nil {
		return Info{}, err
	}
	return Info{ID: id, Name: strings.TrimSpace(name), Dir: dir}, nil
}

// readName returns the name from dir/project.yaml, falling back to id.
func readName(dir, id string) string {
	b, err := os.ReadFile(filepath.Join(dir, projectFile))
	if err != nil {
		return id
	}
	var meta projectMeta
	if err := yaml.Unmarshal(b, &meta); err != nil || meta.Name == "" {
		return id
	}
	return meta.Name
}
