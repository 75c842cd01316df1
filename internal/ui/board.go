package ui

import (
	"fmt"
	"strings"

	"siteboard/internal/scope"
	"siteboard/internal/ui/textutil"
	"siteboard/internal/viewmode"
)

const (
	kanbanColumnWidth = 22
	ganttLabelWidth   = 20
	ganttMaxDays      = 40
)

// Board renders a scope's tasks in the given display mode.
type Board struct {
	Title string
	Tasks []scope.Task
}

// Render draws the board body for mode.
func (b Board) Render(mode viewmode.DisplayMode) string {
	if len(b.Tasks) == 0 {
		return Styles.Muted.Italic(true).Render("No tasks for " + b.Title)
	}
	switch mode {
	case viewmode.Kanban:
		return b.renderKanban()
	case viewmode.Gantt:
		return b.renderGantt()
	default:
		return b.renderList()
	}
}

func (b Board) renderList() string {
	var sb strings.Builder
	for _, t := range b.Tasks {
		fmt.Fprintf(&sb, "%s  %s\n",
			Styles.Muted.Render(textutil.PadRightVisual(t.Status, 5)),
			Styles.Normal.Render(t.Title))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b Board) renderKanban() string {
	columns := make(map[string][]string)
	for _, t := range b.Tasks {
		columns[t.Status] = append(columns[t.Status], t.Title)
	}
	statuses := scope.Statuses()

	rows := 0
	for _, s := range statuses {
		rows = max(rows, len(columns[s]))
	}

	var sb strings.Builder
	for _, s := range statuses {
		header := fmt.Sprintf("%s (%d)", strings.ToUpper(s), len(columns[s]))
		sb.WriteString(Styles.Section.Render(textutil.PadRightVisual(header, kanbanColumnWidth)))
	}
	sb.WriteString("\n")
	for r := 0; r < rows; r++ {
		for _, s := range statuses {
			cell := ""
			if r < len(columns[s]) {
				cell = "• " + columns[s][r]
			}
			sb.WriteString(textutil.PadRightVisual(cell, kanbanColumnWidth))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b Board) renderGantt() string {
	var sb strings.Builder
	for _, t := range b.Tasks {
		start := min(t.Start, ganttMaxDays)
		days := min(t.Days, ganttMaxDays-start)
		bar := strings.Repeat(" ", start) + strings.Repeat("█", max(days, 0))
		fmt.Fprintf(&sb, "%s %s\n",
			Styles.Normal.Render(textutil.PadRightVisual(t.Title, ganttLabelWidth)),
			Styles.Bar.Render(bar))
	}
	return strings.TrimRight(sb.String(), "\n")
}
