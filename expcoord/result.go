package expcoord

// AxisAngle is the result of the SO(3) logarithm. A zero rotation has no
// axis; such a result is undefined and its Axis holds the NaN sentinel.
type AxisAngle[S any] struct {
	Axis    Vec3[S]
	Angle   S
	defined bool
	f       Field[S]
}

// Defined reports whether the axis is meaningful.
func (a AxisAngle[S]) Defined() bool { return a.defined }

// Unit returns the unit axis and the angle separately. ok is false for
// the zero rotation.
func (a AxisAngle[S]) Unit() (axis Vec3[S], angle S, ok bool) {
	return a.Axis, a.Angle, a.defined
}

// Vector returns the axis scaled by the angle. For the zero rotation every
// component is the NaN sentinel.
func (a AxisAngle[S]) Vector() Vec3[S] {
	var r Vec3[S]
	for i := range r {
		r[i] = a.f.Mul(a.Axis[i], a.Angle)
	}
	return r
}

// Screw is the result of the SE(3) logarithm: a unit screw axis and the
// displacement Theta along it. The identity transform has no screw axis.
type Screw[S any] struct {
	Axis    Vec6[S]
	Theta   S
	defined bool
	f       Field[S]
}

func (s Screw[S]) Defined() bool { return s.defined }

// Unit returns the screw axis and displacement separately.
func (s Screw[S]) Unit() (axis Vec6[S], theta S, ok bool) {
	return s.Axis, s.Theta, s.defined
}

// Twist returns the screw axis scaled by Theta.
func (s Screw[S]) Twist() Vec6[S] {
	var r Vec6[S]
	for i := range r {
		r[i] = s.f.Mul(s.Axis[i], s.Theta)
	}
	return r
}

// Ellipsoid describes the manipulability ellipsoid of a Jacobian.
// Column j of Axes is the j-th principal axis, ordered by ascending
// eigenvalue of J·Jᵗ.
type Ellipsoid[S any] struct {
	Axes      [][]S
	Condition S
}
