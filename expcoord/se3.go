package expcoord

// TransformToTwist is the SE(3) matrix logarithm.
//
// The identity has no screw axis. A pure translation has infinite pitch:
// zero angular part and Theta equal to the travelled distance. A pure
// rotation has zero pitch and a zero linear part.
func (k Kinematics[S]) TransformToTwist(T Mat4[S]) Screw[S] {
	f := k.f
	R, p := T.Rotation(), T.Translation()

	if k.equalMat4(T, k.Identity4()) {
		nan := k.nanVec3()
		return Screw[S]{Axis: NewVec6(nan, nan), Theta: f.Zero(), f: f}
	}

	if k.equalMat3(R, k.Identity3()) {
		theta := k.Norm(p)
		v := k.scaleVec3(p, f.Div(f.One(), theta))
		return Screw[S]{Axis: NewVec6(k.zeroVec3(), v), Theta: theta, defined: true, f: f}
	}

	omega := k.RotationToVector(R)
	theta := k.Norm(omega)
	inv := f.Div(f.One(), theta)
	w := k.scaleVec3(omega, inv)

	var v Vec3[S]
	if k.isZeroVec3(p) {
		v = k.zeroVec3()
	} else {
		halfTheta := f.Mul(k.half(), theta)
		cot := f.Div(f.Cos(halfTheta), f.Sin(halfTheta))
		wHat := k.Hat(w)
		gInv := k.subMat3(k.scaleMat3(k.Identity3(), inv), k.scaleMat3(wHat, k.half()))
		gInv = k.addMat3(gInv, k.scaleMat3(k.MulMat3(wHat, wHat), f.Sub(inv, f.Mul(k.half(), cot))))
		v = k.MulMat3Vec(gInv, p)
	}

	return Screw[S]{Axis: NewVec6(w, v), Theta: theta, defined: true, f: f}
}

// TwistToTransform is the SE(3) matrix exponential of the screw axis V
// travelled over theta.
func (k Kinematics[S]) TwistToTransform(V Vec6[S], theta S) Mat4[S] {
	f := k.f
	w, v := V.Angular(), V.Linear()

	if k.isZeroVec3(w) {
		return k.ComposeRP(k.Identity3(), k.scaleVec3(v, theta))
	}

	R := k.AxisAngleToRotation(w, theta)
	wHat := k.Hat(w)
	G := k.addMat3(k.scaleMat3(k.Identity3(), theta), k.scaleMat3(wHat, f.Sub(f.One(), f.Cos(theta))))
	G = k.addMat3(G, k.scaleMat3(k.MulMat3(wHat, wHat), f.Sub(theta, f.Sin(theta))))
	return k.ComposeRP(R, k.MulMat3Vec(G, v))
}

// ComposeRP assembles a homogeneous transform from a rotation and a
// translation.
func (k Kinematics[S]) ComposeRP(R Mat3[S], p Vec3[S]) Mat4[S] {
	f := k.f
	var T Mat4[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = R[i][j]
		}
		T[i][3] = p[i]
		T[3][i] = f.Zero()
	}
	T[3][3] = f.One()
	return T
}

// InvertTransform uses the orthonormality of the rotation block:
// T⁻¹ = [Rᵗ, -Rᵗp; 0, 1].
func (k Kinematics[S]) InvertTransform(T Mat4[S]) Mat4[S] {
	Rt := T.Rotation().T()
	p := k.MulMat3Vec(Rt, T.Translation())
	for i := range p {
		p[i] = k.f.Neg(p[i])
	}
	return k.ComposeRP(Rt, p)
}

// BigAdjoint returns [[R, 0], [p̂R, R]], mapping twists between the frames
// related by T.
func (k Kinematics[S]) BigAdjoint(T Mat4[S]) Mat6[S] {
	R := T.Rotation()
	return block6(R, k.zero3(), k.MulMat3(k.Hat(T.Translation()), R), R)
}

// LittleAdjoint returns [[ω̂, 0], [v̂, ω̂]], the Lie bracket operator of V.
func (k Kinematics[S]) LittleAdjoint(V Vec6[S]) Mat6[S] {
	w := k.Hat(V.Angular())
	return block6(w, k.zero3(), k.Hat(V.Linear()), w)
}
