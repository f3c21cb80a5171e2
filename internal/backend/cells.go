package backend

import (
	"fmt"
	"strings"
)

// ParseMatrix splits "a,b,c;d,e,f" into rows of cells. Every row must have
// the same length.
func ParseMatrix(s string) ([][]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty matrix", ErrShape)
	}

	var rows [][]string
	for i, line := range strings.Split(s, ";") {
		row, err := ParseVector(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrShape, i, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseVector splits "a,b,c" into cells.
func ParseVector(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty vector", ErrShape)
	}
	cells := strings.Split(s, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
		if cells[i] == "" {
			return nil, fmt.Errorf("%w: empty entry %d", ErrShape, i)
		}
	}
	return cells, nil
}
