package num

import "github.com/go-gl/mathgl/mgl64"

// ToMgl4 converts to mathgl's column-major layout.
func ToMgl4(T Mat4) mgl64.Mat4 {
	var m mgl64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, T[i][j])
		}
	}
	return m
}

func FromMgl4(m mgl64.Mat4) Mat4 {
	var T Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			T[i][j] = m.At(i, j)
		}
	}
	return T
}

func ToMgl3(R Mat3) mgl64.Mat3 {
	var m mgl64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, R[i][j])
		}
	}
	return m
}

func FromMgl3(m mgl64.Mat3) Mat3 {
	var R Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = m.At(i, j)
		}
	}
	return R
}

// FromVec3 converts a mathgl vector.
func FromVec3(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
