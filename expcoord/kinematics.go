package expcoord

// Kinematics binds the formulas to one scalar backend. The zero value is
// not usable; construct it with New.
type Kinematics[S any] struct {
	f Field[S]
}

func New[S any](f Field[S]) Kinematics[S] {
	return Kinematics[S]{f: f}
}

// Field returns the backend the formulas are evaluated with.
func (k Kinematics[S]) Field() Field[S] { return k.f }

func (k Kinematics[S]) half() S {
	return k.f.Div(k.f.One(), k.f.FromInt(2))
}

func (k Kinematics[S]) Identity3() Mat3[S] {
	var m Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = k.f.Zero()
		}
		m[i][i] = k.f.One()
	}
	return m
}

func (k Kinematics[S]) Identity4() Mat4[S] {
	var m Mat4[S]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = k.f.Zero()
		}
		m[i][i] = k.f.One()
	}
	return m
}

func (k Kinematics[S]) zero3() Mat3[S] {
	var m Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = k.f.Zero()
		}
	}
	return m
}

func (k Kinematics[S]) zeroVec3() Vec3[S] {
	return Vec3[S]{k.f.Zero(), k.f.Zero(), k.f.Zero()}
}

func (k Kinematics[S]) nanVec3() Vec3[S] {
	return Vec3[S]{k.f.NaN(), k.f.NaN(), k.f.NaN()}
}

func (k Kinematics[S]) MulMat3(a, b Mat3[S]) Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := k.f.Zero()
			for n := 0; n < 3; n++ {
				sum = k.f.Add(sum, k.f.Mul(a[i][n], b[n][j]))
			}
			r[i][j] = sum
		}
	}
	return r
}

func (k Kinematics[S]) MulMat4(a, b Mat4[S]) Mat4[S] {
	var r Mat4[S]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := k.f.Zero()
			for n := 0; n < 4; n++ {
				sum = k.f.Add(sum, k.f.Mul(a[i][n], b[n][j]))
			}
			r[i][j] = sum
		}
	}
	return r
}

func (k Kinematics[S]) MulMat3Vec(a Mat3[S], v Vec3[S]) Vec3[S] {
	var r Vec3[S]
	for i := 0; i < 3; i++ {
		sum := k.f.Zero()
		for n := 0; n < 3; n++ {
			sum = k.f.Add(sum, k.f.Mul(a[i][n], v[n]))
		}
		r[i] = sum
	}
	return r
}

// MulMat6Vec maps a twist through a 6x6 operator such as an adjoint.
func (k Kinematics[S]) MulMat6Vec(a Mat6[S], v Vec6[S]) Vec6[S] {
	var r Vec6[S]
	for i := 0; i < 6; i++ {
		sum := k.f.Zero()
		for n := 0; n < 6; n++ {
			sum = k.f.Add(sum, k.f.Mul(a[i][n], v[n]))
		}
		r[i] = sum
	}
	return r
}

func (k Kinematics[S]) addMat3(a, b Mat3[S]) Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = k.f.Add(a[i][j], b[i][j])
		}
	}
	return r
}

func (k Kinematics[S]) subMat3(a, b Mat3[S]) Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = k.f.Sub(a[i][j], b[i][j])
		}
	}
	return r
}

func (k Kinematics[S]) scaleMat3(a Mat3[S], s S) Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = k.f.Mul(a[i][j], s)
		}
	}
	return r
}

func (k Kinematics[S]) addVec3(a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{k.f.Add(a[0], b[0]), k.f.Add(a[1], b[1]), k.f.Add(a[2], b[2])}
}

func (k Kinematics[S]) scaleVec3(v Vec3[S], s S) Vec3[S] {
	return Vec3[S]{k.f.Mul(v[0], s), k.f.Mul(v[1], s), k.f.Mul(v[2], s)}
}

func (k Kinematics[S]) Trace(m Mat3[S]) S {
	return k.f.Add(k.f.Add(m[0][0], m[1][1]), m[2][2])
}

// Norm is the Euclidean length of v.
func (k Kinematics[S]) Norm(v Vec3[S]) S {
	sum := k.f.Zero()
	for _, c := range v {
		sum = k.f.Add(sum, k.f.Mul(c, c))
	}
	return k.f.Sqrt(sum)
}

func (k Kinematics[S]) equalMat3(a, b Mat3[S]) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !k.f.Equal(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func (k Kinematics[S]) equalMat4(a, b Mat4[S]) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !k.f.Equal(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func (k Kinematics[S]) isZeroVec3(v Vec3[S]) bool {
	for _, c := range v {
		if !k.f.Equal(c, k.f.Zero()) {
			return false
		}
	}
	return true
}
