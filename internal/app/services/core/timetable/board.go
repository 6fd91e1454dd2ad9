package timetable

import (
	"fmt"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"

	"github.com/charmbracelet/lipgloss"
)

const boardColumnWidth = 26

var (
	boardHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(lipgloss.Color("#101F38")).
			Align(lipgloss.Center).
			Width(boardColumnWidth)
	boardColumn = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(0, 1)
	boardTime  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	boardMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7f7f")).Italic(true)
)

// RenderBoard draws the week as five side by side columns.
func RenderBoard(idx *schedule.WeeklyIndex) string {
	columns := make([]string, 0, len(schedule.Weekdays))
	for _, day := range idx.Days() {
		columns = append(columns, boardColumn.Render(dayColumn(day, idx.Entries(day))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func dayColumn(day schedule.DayOfWeek, entries []schedule.Entry) string {
	cell := lipgloss.NewStyle().Width(boardColumnWidth)

	parts := []string{boardHeader.Render(string(day))}
	if len(entries) == 0 {
		parts = append(parts, cell.Render(boardMuted.Render(noClasses)))
	}
	for _, e := range entries {
		lines := []string{boardTime.Render(e.Interval.String()), e.CourseCode, e.CourseName}
		if e.Location != "" {
			lines = append(lines, fmt.Sprintf("@ %s", e.Location))
		}
		parts = append(parts, "", cell.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
