// Package num evaluates the exponential-coordinate formulas in float64.
//
// Every comparison against identity, zero or -1 is an all-close test with
// [DefaultTolerance]; use [New] for another tolerance. The function surface
// is identical to the sym package.
//
//	R := num.RotZ(math.Pi / 3).Rotation()
//	axis, angle, ok := num.RotationToAxisAngle(R).Unit()
package num

import (
	"github.com/max-sn/robotics-foundation/expcoord"
	"gonum.org/v1/gonum/mat"
)

type (
	Vec3       = expcoord.Vec3[float64]
	Vec6       = expcoord.Vec6[float64]
	Mat3       = expcoord.Mat3[float64]
	Mat4       = expcoord.Mat4[float64]
	Mat6       = expcoord.Mat6[float64]
	AxisAngle  = expcoord.AxisAngle[float64]
	Screw      = expcoord.Screw[float64]
	Kinematics = expcoord.Kinematics[float64]
)

var std = New(DefaultTolerance)

// New returns the formulas bound to float64 with the given tolerance.
func New(tol Tolerance) Kinematics {
	return expcoord.New[float64](Field{Tol: tol})
}

func Hat(v Vec3) Mat3 { return std.Hat(v) }
func Vee(m Mat3) Vec3 { return std.Vee(m) }

// RotationToAxisAngle is the SO(3) logarithm. The identity gives an
// undefined result whose axis is NaN.
func RotationToAxisAngle(R Mat3) AxisAngle { return std.RotationToAxisAngle(R) }

// RotationToVector returns ω·θ; NaN for the identity.
func RotationToVector(R Mat3) Vec3 { return std.RotationToVector(R) }

func AxisAngleToRotation(axis Vec3, angle float64) Mat3 {
	return std.AxisAngleToRotation(axis, angle)
}

func VectorToRotation(omega Vec3) Mat3 { return std.VectorToRotation(omega) }

// TransformToTwist is the SE(3) logarithm.
func TransformToTwist(T Mat4) Screw { return std.TransformToTwist(T) }

func TwistToTransform(V Vec6, theta float64) Mat4 { return std.TwistToTransform(V, theta) }

func ComposeRP(R Mat3, p Vec3) Mat4 { return std.ComposeRP(R, p) }
func InvertTransform(T Mat4) Mat4   { return std.InvertTransform(T) }
func BigAdjoint(T Mat4) Mat6        { return std.BigAdjoint(T) }
func LittleAdjoint(V Vec6) Mat6     { return std.LittleAdjoint(V) }

func RotX(theta float64) Mat4 { return std.RotX(theta) }
func RotY(theta float64) Mat4 { return std.RotY(theta) }
func RotZ(theta float64) Mat4 { return std.RotZ(theta) }

func Translation(p Vec3) Mat4 { return std.Translation(p) }

func TranslationXYZ(x, y, z float64) Mat4 { return std.TranslationXYZ(x, y, z) }

func Identity3() Mat3 { return std.Identity3() }
func Identity4() Mat4 { return std.Identity4() }

// Manipulability returns the principal axes of the manipulability ellipsoid
// as the columns of axes, and the condition number of J·Jᵗ. It fails with
// expcoord.ErrSingular when det(J·Jᵗ) is close to zero.
func Manipulability(J mat.Matrix) (axes *mat.Dense, cond float64, err error) {
	e, err := std.Manipulability(rowsFromDense(J))
	if err != nil {
		return nil, 0, err
	}
	return denseFromRows(e.Axes), e.Condition, nil
}
