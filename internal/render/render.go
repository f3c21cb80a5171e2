// Package render formats backend results for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff"))

	// Undefined marks results whose axis does not exist.
	Undefined = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

// Plain disables borders and colors, for piping output into other tools.
var Plain bool

// Matrix renders rows with right-aligned columns under a title.
func Matrix(title string, rows [][]string) string {
	widths := columnWidths(rows)

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = lipgloss.PlaceHorizontal(widths[j], lipgloss.Right, c)
		}
		lines[i] = strings.Join(cells, "  ")
	}
	return panel(title, strings.Join(lines, "\n"))
}

// Vector renders a single row.
func Vector(title string, cells []string) string {
	return Matrix(title, [][]string{cells})
}

// Fields renders label/value pairs, one per line, labels left-aligned.
func Fields(title string, pairs ...[2]string) string {
	w := 0
	for _, p := range pairs {
		w = max(w, lipgloss.Width(p[0]))
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		label := lipgloss.PlaceHorizontal(w, lipgloss.Left, p[0])
		if !Plain {
			label = Label.Render(label)
		}
		lines[i] = label + "  " + value(p[1])
	}
	return panel(title, strings.Join(lines, "\n"))
}

// Note renders a one-line warning.
func Note(msg string) string {
	if Plain {
		return msg
	}
	return Undefined.Render(msg)
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for j, c := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	return widths
}

func value(s string) string {
	if Plain {
		return s
	}
	return Value.Render(s)
}

func panel(title, body string) string {
	if Plain {
		if title == "" {
			return body
		}
		return title + "\n" + body
	}
	if title == "" {
		return Panel.Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, Title.Render(title), Panel.Render(body))
}
