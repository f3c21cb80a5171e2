package backend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/max-sn/robotics-foundation/internal/config"
	"github.com/max-sn/robotics-foundation/num"
)

var (
	ErrUnknownBackend = errors.New("backend: unknown backend")
	ErrShape          = errors.New("backend: wrong shape")
	ErrAxis           = errors.New("backend: axis must be x, y or z")
	ErrNotNumeric     = errors.New("backend: value is not numeric")
)

// Backend runs the library operations on textual cells. Cells are
// expressions such as "0.5", "-1/2" or "sqrt(3)/2"; results come back
// formatted by the backend.
type Backend interface {
	Name() string

	LogSO3(R [][]string) (AxisAngle, error)
	// ExpSO3 treats axis as the exponential coordinates when angle is empty.
	ExpSO3(axis []string, angle string) (Matrix, error)
	LogSE3(T [][]string) (Screw, error)
	ExpSE3(V []string, theta string) (Matrix, error)

	Inverse(T [][]string) (Matrix, error)
	Adjoint(T [][]string) (Matrix, error)
	LittleAdjoint(V []string) (Matrix, error)

	Rot(axis, angle string) (Matrix, error)
	Trans(p []string) (Matrix, error)
	Pose(p *config.Pose) (Matrix, error)

	Manipulability(J [][]string) (axes Matrix, cond string, err error)

	// Trace samples the translation of exp([V]θ) for θ evenly spaced in
	// [0, theta].
	Trace(V []string, theta string, samples int) ([3][]float64, error)
}

// Matrix holds formatted cells, row-major.
type Matrix [][]string

type AxisAngle struct {
	Defined bool     `json:"defined"`
	Axis    []string `json:"axis"`
	Angle   string   `json:"angle"`
	Vector  []string `json:"vector"`
}

type Screw struct {
	Defined bool     `json:"defined"`
	Axis    []string `json:"axis"`
	Theta   string   `json:"theta"`
	Twist   []string `json:"twist"`
}

// Ellipsoid is the manipulability result; Axes holds one principal axis
// per column.
type Ellipsoid struct {
	Axes      Matrix `json:"axes"`
	Condition string `json:"condition"`
}

var registry = map[string]func(cfg *config.Config) Backend{
	"num": func(cfg *config.Config) Backend {
		tol := num.Tolerance{RTol: cfg.Tolerance.RTol, ATol: cfg.Tolerance.ATol}
		return NewNum(tol, cfg.Precision)
	},
	"sym": func(*config.Config) Backend { return NewSym() },
}

func Get(name string, cfg *config.Config) (Backend, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownBackend, name, Names())
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return fn(cfg), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
