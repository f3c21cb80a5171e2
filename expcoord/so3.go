package expcoord

// Hat builds the skew-symmetric matrix of v, so that Hat(v)·u = v × u.
func (k Kinematics[S]) Hat(v Vec3[S]) Mat3[S] {
	f := k.f
	return Mat3[S]{
		{f.Zero(), f.Neg(v[2]), v[1]},
		{v[2], f.Zero(), f.Neg(v[0])},
		{f.Neg(v[1]), v[0], f.Zero()},
	}
}

// Vee reads the 3-vector back out of a skew-symmetric matrix. The input is
// not checked for skew symmetry.
func (k Kinematics[S]) Vee(m Mat3[S]) Vec3[S] {
	return Vec3[S]{m[2][1], m[0][2], m[1][0]}
}

// RotationToAxisAngle is the SO(3) matrix logarithm.
//
// The identity yields an undefined result with angle zero. A trace of -1
// is a half turn: the axis is recovered from the first of the z, y, x
// diagonal entries that is not -1.
func (k Kinematics[S]) RotationToAxisAngle(R Mat3[S]) AxisAngle[S] {
	f := k.f
	if k.equalMat3(R, k.Identity3()) {
		return AxisAngle[S]{Axis: k.nanVec3(), Angle: f.Zero(), f: f}
	}

	minusOne := f.FromInt(-1)
	tr := k.Trace(R)
	if f.Equal(tr, minusOne) {
		for _, c := range [3]int{2, 1, 0} {
			if f.Equal(R[c][c], minusOne) {
				continue
			}
			e := k.zeroVec3()
			e[c] = f.One()
			scale := f.Div(f.One(), f.Sqrt(f.Mul(f.FromInt(2), f.Add(f.One(), R[c][c]))))
			return AxisAngle[S]{
				Axis:    k.scaleVec3(k.addVec3(R.Col(c), e), scale),
				Angle:   f.Pi(),
				defined: true,
				f:       f,
			}
		}
		// All three diagonal entries at -1 is not a rotation.
		return AxisAngle[S]{Axis: k.nanVec3(), Angle: f.Pi(), f: f}
	}

	theta := f.Acos(f.Mul(k.half(), f.Sub(tr, f.One())))
	scale := f.Div(f.One(), f.Mul(f.FromInt(2), f.Sin(theta)))
	skew := k.scaleMat3(k.subMat3(R, R.T()), scale)
	return AxisAngle[S]{Axis: k.Vee(skew), Angle: theta, defined: true, f: f}
}

// RotationToVector returns the exponential coordinates ω·θ of R.
func (k Kinematics[S]) RotationToVector(R Mat3[S]) Vec3[S] {
	return k.RotationToAxisAngle(R).Vector()
}

// AxisAngleToRotation is Rodrigues' formula for a unit axis and an angle.
func (k Kinematics[S]) AxisAngleToRotation(axis Vec3[S], angle S) Mat3[S] {
	f := k.f
	w := k.Hat(axis)
	R := k.addMat3(k.Identity3(), k.scaleMat3(w, f.Sin(angle)))
	return k.addMat3(R, k.scaleMat3(k.MulMat3(w, w), f.Sub(f.One(), f.Cos(angle))))
}

// VectorToRotation treats the length of omega as the angle and its
// direction as the axis.
func (k Kinematics[S]) VectorToRotation(omega Vec3[S]) Mat3[S] {
	theta := k.Norm(omega)
	axis := k.scaleVec3(omega, k.f.Div(k.f.One(), theta))
	return k.AxisAngleToRotation(axis, theta)
}
