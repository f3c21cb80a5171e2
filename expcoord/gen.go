package expcoord

// RotX returns a pure rotation about x by theta.
func (k Kinematics[S]) RotX(theta S) Mat4[S] {
	return k.TwistToTransform(k.unitTwist(0), theta)
}

// RotY returns a pure rotation about y by theta.
func (k Kinematics[S]) RotY(theta S) Mat4[S] {
	return k.TwistToTransform(k.unitTwist(1), theta)
}

// RotZ returns a pure rotation about z by theta.
func (k Kinematics[S]) RotZ(theta S) Mat4[S] {
	return k.TwistToTransform(k.unitTwist(2), theta)
}

// Translation returns a transform with identity rotation and translation p.
func (k Kinematics[S]) Translation(p Vec3[S]) Mat4[S] {
	return k.ComposeRP(k.Identity3(), p)
}

func (k Kinematics[S]) TranslationXYZ(x, y, z S) Mat4[S] {
	return k.Translation(Vec3[S]{x, y, z})
}

func (k Kinematics[S]) unitTwist(axis int) Vec6[S] {
	var V Vec6[S]
	for i := range V {
		V[i] = k.f.Zero()
	}
	V[axis] = k.f.One()
	return V
}
