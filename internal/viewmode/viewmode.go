// Package viewmode defines the display modes a project view can render in.
package viewmode

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DisplayMode is one of the supported presentation modes for a view.
type DisplayMode int

const (
	List DisplayMode = iota
	Kanban
	Gantt
)

// Default is the mode used when no valid preference exists.
const Default = List

// ErrUnknownMode is returned by Parse for tokens outside the enumeration.
var ErrUnknownMode = errors.New("unknown display mode")

// All returns the modes in the order their controls are shown.
func All() []DisplayMode {
	return []DisplayMode{List, Kanban, Gantt}
}

// String returns the persisted token ("list", "kanban", "gantt").
func (m DisplayMode) String() string {
	switch m {
	case List:
		return "list"
	case Kanban:
		return "kanban"
	case Gantt:
		return "gantt"
	default:
		return "unknown"
	}
}

// Label returns the human-readable control name.
func (m DisplayMode) Label() string {
	switch m {
	case List:
		return "List"
	case Kanban:
		return "Kanban"
	case Gantt:
		return "Gantt"
	default:
		return "Unknown"
	}
}

// Icon returns the glyph drawn next to the label.
func (m DisplayMode) Icon() string {
	switch m {
	case List:
		return "☰"
	case Kanban:
		return "▦"
	case Gantt:
		return "▤"
	default:
		return "?"
	}
}

// Valid reports whether m is one of the enumerated modes.
func (m DisplayMode) Valid() bool {
	return m >= List && m <= Gantt
}

// Next returns the mode after m, wrapping from gantt to list.
func (m DisplayMode) Next() DisplayMode {
	if !m.Valid() {
		return Default
	}
	return (m + 1) % DisplayMode(len(All()))
}

// Prev returns the mode before m, wrapping from list to gantt.
func (m DisplayMode) Prev() DisplayMode {
	if !m.Valid() {
		return Default
	}
	n := DisplayMode(len(All()))
	return (m + n - 1) % n
}

// Parse converts a persisted token back into a DisplayMode.
// Matching is exact: "List" or " list" are rejected.
func Parse(s string) (DisplayMode, error) {
	switch s {
	case "list":
		return List, nil
	case "kanban":
		return Kanban, nil
	case "gantt":
		return Gantt, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalJSON encodes the mode as its token.
func (m DisplayMode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a token produced by MarshalJSON.
func (m *DisplayMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
