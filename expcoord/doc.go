// Package expcoord provides closed-form rigid-body kinematics in
// exponential coordinates.
//
// The formulas are written once against the [Field] interface and are
// instantiated per scalar backend:
//
//   - [Kinematics]: SO(3) and SE(3) logarithm/exponential, adjoints,
//     generators and the manipulability ellipsoid
//   - [AxisAngle]: tagged result of the SO(3) logarithm
//   - [Screw]: tagged result of the SE(3) logarithm
//   - [Vec3], [Vec6], [Mat3], [Mat4], [Mat6]: fixed-size value types
//
// The num package binds the formulas to float64 with tolerance-based
// comparisons; the sym package binds them to exact symbolic expressions.
//
// # Example
//
//	k := expcoord.New[float64](field)
//	aa := k.RotationToAxisAngle(R)
//	if axis, angle, ok := aa.Unit(); ok {
//	    R2 := k.AxisAngleToRotation(axis, angle)
//	}
//
// # Degenerate cases
//
// Zero rotations have no axis. The logarithms never fail; they return an
// undefined result whose axis holds the backend's NaN sentinel, so the
// combined vector forms carry NaN exactly where the axis is meaningless.
package expcoord
