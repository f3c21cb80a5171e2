package backend

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/max-sn/robotics-foundation/expcoord"
	"github.com/max-sn/robotics-foundation/internal/config"
	"github.com/max-sn/robotics-foundation/num"
	"github.com/max-sn/robotics-foundation/sym"
	"golang.org/x/sync/errgroup"
)

// engine adapts one scalar type to Backend. Both backends share it; they
// differ only in how cells are read, printed and converted to float64.
type engine[S any] struct {
	name   string
	k      expcoord.Kinematics[S]
	parse  func(string) (S, error)
	format func(S) string
	float  func(S) (float64, error)
}

// NewNum reads every cell as an expression and evaluates it to float64.
func NewNum(tol num.Tolerance, precision int) Backend {
	return &engine[float64]{
		name: "num",
		k:    num.New(tol),
		parse: func(s string) (float64, error) {
			e, err := sym.Parse(s)
			if err != nil {
				return 0, err
			}
			v, ok := sym.Float64(e)
			if !ok {
				return 0, fmt.Errorf("%w: %s", ErrNotNumeric, e)
			}
			return v, nil
		},
		format: func(v float64) string {
			if v == 0 {
				v = 0 // drop the sign of -0
			}
			return strconv.FormatFloat(v, 'g', precision, 64)
		},
		float: func(v float64) (float64, error) { return v, nil },
	}
}

// NewSym keeps cells exact; free symbols are allowed except where a
// number is required.
func NewSym() Backend {
	return &engine[sym.Expr]{
		name:   "sym",
		k:      sym.New(),
		parse:  sym.Parse,
		format: func(e sym.Expr) string { return e.String() },
		float: func(e sym.Expr) (float64, error) {
			v, ok := sym.Float64(e)
			if !ok {
				return 0, fmt.Errorf("%w: %s", ErrNotNumeric, e)
			}
			return v, nil
		},
	}
}

func (e *engine[S]) Name() string { return e.name }

func (e *engine[S]) scalar(cell string) (S, error) {
	v, err := e.parse(strings.TrimSpace(cell))
	if err != nil {
		var zero S
		return zero, fmt.Errorf("cell %q: %w", cell, err)
	}
	return v, nil
}

func (e *engine[S]) vector(cells []string, n int) ([]S, error) {
	if len(cells) != n {
		return nil, fmt.Errorf("%w: want %d entries, got %d", ErrShape, n, len(cells))
	}
	out := make([]S, n)
	for i, c := range cells {
		v, err := e.scalar(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *engine[S]) square(rows [][]string, n int) ([][]S, error) {
	if len(rows) != n {
		return nil, fmt.Errorf("%w: want %dx%d, got %d rows", ErrShape, n, n, len(rows))
	}
	out := make([][]S, n)
	for i, row := range rows {
		v, err := e.vector(row, n)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (e *engine[S]) vec3(cells []string) (expcoord.Vec3[S], error) {
	var out expcoord.Vec3[S]
	v, err := e.vector(cells, 3)
	if err != nil {
		return out, err
	}
	copy(out[:], v)
	return out, nil
}

func (e *engine[S]) vec6(cells []string) (expcoord.Vec6[S], error) {
	var out expcoord.Vec6[S]
	v, err := e.vector(cells, 6)
	if err != nil {
		return out, err
	}
	copy(out[:], v)
	return out, nil
}

func (e *engine[S]) mat3(rows [][]string) (expcoord.Mat3[S], error) {
	var out expcoord.Mat3[S]
	m, err := e.square(rows, 3)
	if err != nil {
		return out, err
	}
	for i := range out {
		copy(out[i][:], m[i])
	}
	return out, nil
}

func (e *engine[S]) mat4(rows [][]string) (expcoord.Mat4[S], error) {
	var out expcoord.Mat4[S]
	m, err := e.square(rows, 4)
	if err != nil {
		return out, err
	}
	for i := range out {
		copy(out[i][:], m[i])
	}
	return out, nil
}

func (e *engine[S]) cells(v []S) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = e.format(x)
	}
	return out
}

func (e *engine[S]) table(rows [][]S) Matrix {
	out := make(Matrix, len(rows))
	for i, row := range rows {
		out[i] = e.cells(row)
	}
	return out
}

func (e *engine[S]) LogSO3(R [][]string) (AxisAngle, error) {
	m, err := e.mat3(R)
	if err != nil {
		return AxisAngle{}, err
	}
	r := e.k.RotationToAxisAngle(m)
	vec := r.Vector()
	return AxisAngle{
		Defined: r.Defined(),
		Axis:    e.cells(r.Axis[:]),
		Angle:   e.format(r.Angle),
		Vector:  e.cells(vec[:]),
	}, nil
}

func (e *engine[S]) ExpSO3(axis []string, angle string) (Matrix, error) {
	w, err := e.vec3(axis)
	if err != nil {
		return nil, err
	}
	if angle == "" {
		return e.table(e.k.VectorToRotation(w).Rows()), nil
	}
	theta, err := e.scalar(angle)
	if err != nil {
		return nil, err
	}
	return e.table(e.k.AxisAngleToRotation(w, theta).Rows()), nil
}

func (e *engine[S]) LogSE3(T [][]string) (Screw, error) {
	m, err := e.mat4(T)
	if err != nil {
		return Screw{}, err
	}
	s := e.k.TransformToTwist(m)
	tw := s.Twist()
	return Screw{
		Defined: s.Defined(),
		Axis:    e.cells(s.Axis[:]),
		Theta:   e.format(s.Theta),
		Twist:   e.cells(tw[:]),
	}, nil
}

func (e *engine[S]) ExpSE3(V []string, theta string) (Matrix, error) {
	v, err := e.vec6(V)
	if err != nil {
		return nil, err
	}
	t, err := e.scalar(theta)
	if err != nil {
		return nil, err
	}
	return e.table(e.k.TwistToTransform(v, t).Rows()), nil
}

func (e *engine[S]) Inverse(T [][]string) (Matrix, error) {
	m, err := e.mat4(T)
	if err != nil {
		return nil, err
	}
	return e.table(e.k.InvertTransform(m).Rows()), nil
}

func (e *engine[S]) Adjoint(T [][]string) (Matrix, error) {
	m, err := e.mat4(T)
	if err != nil {
		return nil, err
	}
	return e.table(e.k.BigAdjoint(m).Rows()), nil
}

func (e *engine[S]) LittleAdjoint(V []string) (Matrix, error) {
	v, err := e.vec6(V)
	if err != nil {
		return nil, err
	}
	return e.table(e.k.LittleAdjoint(v).Rows()), nil
}

func (e *engine[S]) rot(axis string, theta S) (expcoord.Mat4[S], error) {
	switch axis {
	case "x":
		return e.k.RotX(theta), nil
	case "y":
		return e.k.RotY(theta), nil
	case "z":
		return e.k.RotZ(theta), nil
	}
	return expcoord.Mat4[S]{}, fmt.Errorf("%w: %q", ErrAxis, axis)
}

func (e *engine[S]) Rot(axis, angle string) (Matrix, error) {
	theta, err := e.scalar(angle)
	if err != nil {
		return nil, err
	}
	T, err := e.rot(axis, theta)
	if err != nil {
		return nil, err
	}
	return e.table(T.Rows()), nil
}

func (e *engine[S]) Trans(p []string) (Matrix, error) {
	v, err := e.vec3(p)
	if err != nil {
		return nil, err
	}
	return e.table(e.k.Translation(v).Rows()), nil
}

func (e *engine[S]) Pose(p *config.Pose) (Matrix, error) {
	cells := p.Cells()
	v, err := e.vec3(cells[:])
	if err != nil {
		return nil, err
	}
	R := e.k.Identity3()
	if p.Axis != "" {
		theta, err := e.scalar(p.Angle)
		if err != nil {
			return nil, err
		}
		T, err := e.rot(p.Axis, theta)
		if err != nil {
			return nil, err
		}
		R = T.Rotation()
	}
	return e.table(e.k.ComposeRP(R, v).Rows()), nil
}

func (e *engine[S]) Manipulability(J [][]string) (Matrix, string, error) {
	m := make([][]S, len(J))
	for i, row := range J {
		v, err := e.vector(row, len(row))
		if err != nil {
			return nil, "", fmt.Errorf("row %d: %w", i, err)
		}
		m[i] = v
	}
	el, err := e.k.Manipulability(m)
	if err != nil {
		return nil, "", err
	}
	return e.table(el.Axes), e.format(el.Condition), nil
}

func (e *engine[S]) Trace(V []string, theta string, samples int) ([3][]float64, error) {
	var out [3][]float64
	if samples < 2 {
		return out, fmt.Errorf("%w: need at least 2 samples, got %d", ErrShape, samples)
	}
	v, err := e.vec6(V)
	if err != nil {
		return out, err
	}
	end, err := e.scalar(theta)
	if err != nil {
		return out, err
	}

	f := e.k.Field()
	for c := range out {
		out[c] = make([]float64, samples)
	}

	// samples are independent; goroutine i writes only index i
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < samples; i++ {
		i := i
		g.Go(func() error {
			t := f.Mul(end, f.Div(f.FromInt(int64(i)), f.FromInt(int64(samples-1))))
			p := e.k.TwistToTransform(v, t).Translation()
			for c := range out {
				x, err := e.float(p[c])
				if err != nil {
					return fmt.Errorf("sample %d: %w", i, err)
				}
				if math.IsNaN(x) {
					return fmt.Errorf("sample %d: %w: nan", i, ErrNotNumeric)
				}
				out[c][i] = x
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
