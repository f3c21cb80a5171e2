// Package export writes command results as indented JSON.
package export

import (
	"encoding/json"
	"io"
	"os"
)

// Trace is a sampled path of the origin under exp([V]θ).
type Trace struct {
	Backend string    `json:"backend"`
	Twist   []string  `json:"twist"`
	Theta   string    `json:"theta"`
	Samples int       `json:"samples"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Z       []float64 `json:"z"`
}

// NewTrace takes the three coordinate series as returned by a backend.
func NewTrace(backend string, twist []string, theta string, xyz [3][]float64) *Trace {
	return &Trace{
		Backend: backend,
		Twist:   twist,
		Theta:   theta,
		Samples: len(xyz[0]),
		X:       xyz[0],
		Y:       xyz[1],
		Z:       xyz[2],
	}
}

func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func SaveJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, v); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadTrace reads a trace written by SaveJSON.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tr Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
