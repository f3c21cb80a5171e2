// Package sym evaluates the exponential-coordinate formulas exactly.
//
// Scalars are canonical expressions over the rationals, π, square roots
// and the trigonometric functions. Every comparison is exact: an entry
// equals zero only when it simplifies to zero. Free symbols are allowed
// and pass through the formulas untouched:
//
//	T := sym.RotZ(sym.MustParse("pi/3"))
//	fmt.Println(T[0][1]) // -sqrt(3)/2
//
// The function surface is identical to the num package.
package sym

import (
	"fmt"

	"github.com/max-sn/robotics-foundation/expcoord"
)

type (
	Vec3       = expcoord.Vec3[Expr]
	Vec6       = expcoord.Vec6[Expr]
	Mat3       = expcoord.Mat3[Expr]
	Mat4       = expcoord.Mat4[Expr]
	Mat6       = expcoord.Mat6[Expr]
	AxisAngle  = expcoord.AxisAngle[Expr]
	Screw      = expcoord.Screw[Expr]
	Kinematics = expcoord.Kinematics[Expr]
)

var std = expcoord.New[Expr](Field{})

// New returns the formulas bound to Expr.
func New() Kinematics { return std }

func Hat(v Vec3) Mat3 { return std.Hat(v) }
func Vee(m Mat3) Vec3 { return std.Vee(m) }

// RotationToAxisAngle is the SO(3) logarithm. The identity gives an
// undefined result whose axis is nan.
func RotationToAxisAngle(R Mat3) AxisAngle { return std.RotationToAxisAngle(R) }

func RotationToVector(R Mat3) Vec3 { return std.RotationToVector(R) }

func AxisAngleToRotation(axis Vec3, angle Expr) Mat3 {
	return std.AxisAngleToRotation(axis, angle)
}

func VectorToRotation(omega Vec3) Mat3 { return std.VectorToRotation(omega) }

// TransformToTwist is the SE(3) logarithm.
func TransformToTwist(T Mat4) Screw { return std.TransformToTwist(T) }

func TwistToTransform(V Vec6, theta Expr) Mat4 { return std.TwistToTransform(V, theta) }

func ComposeRP(R Mat3, p Vec3) Mat4 { return std.ComposeRP(R, p) }
func InvertTransform(T Mat4) Mat4   { return std.InvertTransform(T) }
func BigAdjoint(T Mat4) Mat6        { return std.BigAdjoint(T) }
func LittleAdjoint(V Vec6) Mat6     { return std.LittleAdjoint(V) }

func RotX(theta Expr) Mat4 { return std.RotX(theta) }
func RotY(theta Expr) Mat4 { return std.RotY(theta) }
func RotZ(theta Expr) Mat4 { return std.RotZ(theta) }

func Translation(p Vec3) Mat4 { return std.Translation(p) }

func TranslationXYZ(x, y, z Expr) Mat4 { return std.TranslationXYZ(x, y, z) }

func Identity3() Mat3 { return std.Identity3() }
func Identity4() Mat4 { return std.Identity4() }

// Manipulability returns the principal axes of the manipulability ellipsoid
// as the columns of axes, and the condition number of J·Jᵗ. The singularity
// test is exact; the eigen decomposition needs numeric entries.
func Manipulability(J [][]Expr) (axes [][]Expr, cond Expr, err error) {
	e, err := std.Manipulability(J)
	if err != nil {
		return nil, nil, err
	}
	return e.Axes, e.Condition, nil
}

// V3 builds a vector from three expressions.
func V3(x, y, z Expr) Vec3 { return Vec3{x, y, z} }

// Ints builds a vector of integers.
func Ints(x, y, z int64) Vec3 { return Vec3{Int(x), Int(y), Int(z)} }

func evalf(e Expr) (float64, error) {
	v, ok := Float64(e)
	if !ok {
		return 0, fmt.Errorf("%s: %w", e, ErrNotNumeric)
	}
	return v, nil
}

// EvalVec3 converts a closed-form vector into float64.
func EvalVec3(v Vec3) (expcoord.Vec3[float64], error) {
	var out expcoord.Vec3[float64]
	for i := range v {
		x, err := evalf(v[i])
		if err != nil {
			return out, err
		}
		out[i] = x
	}
	return out, nil
}

func EvalVec6(v Vec6) (expcoord.Vec6[float64], error) {
	var out expcoord.Vec6[float64]
	for i := range v {
		x, err := evalf(v[i])
		if err != nil {
			return out, err
		}
		out[i] = x
	}
	return out, nil
}

func EvalMat3(m Mat3) (expcoord.Mat3[float64], error) {
	var out expcoord.Mat3[float64]
	err := evalRows(m.Rows(), func(i int) []float64 { return out[i][:] })
	return out, err
}

func EvalMat4(m Mat4) (expcoord.Mat4[float64], error) {
	var out expcoord.Mat4[float64]
	err := evalRows(m.Rows(), func(i int) []float64 { return out[i][:] })
	return out, err
}

func EvalMat6(m Mat6) (expcoord.Mat6[float64], error) {
	var out expcoord.Mat6[float64]
	err := evalRows(m.Rows(), func(i int) []float64 { return out[i][:] })
	return out, err
}

func evalRows(rows [][]Expr, dst func(i int) []float64) error {
	for i, row := range rows {
		d := dst(i)
		for j, e := range row {
			x, err := evalf(e)
			if err != nil {
				return fmt.Errorf("entry (%d,%d): %w", i, j, err)
			}
			d[j] = x
		}
	}
	return nil
}
