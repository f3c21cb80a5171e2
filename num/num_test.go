package num

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/max-sn/robotics-foundation/expcoord"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

func flat4(m Mat4) []float64 {
	out := make([]float64, 0, 16)
	for _, row := range m {
		out = append(out, row[:]...)
	}
	return out
}

func flat3(m Mat3) []float64 {
	out := make([]float64, 0, 9)
	for _, row := range m {
		out = append(out, row[:]...)
	}
	return out
}

func randomAxis(rng *rand.Rand) Vec3 {
	v := Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return Vec3{v[0] / n, v[1] / n, v[2] / n}
}

func randomTransform(rng *rand.Rand) Mat4 {
	R := AxisAngleToRotation(randomAxis(rng), 0.1+rng.Float64()*(math.Pi-0.2))
	p := Vec3{rng.Float64()*4 - 2, rng.Float64()*4 - 2, rng.Float64()*4 - 2}
	return ComposeRP(R, p)
}

func TestHatVee(t *testing.T) {
	tests := []Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-0.5, 4, 1e-3},
	}

	for _, v := range tests {
		S := Hat(v)
		if got := Vee(S); got != v {
			t.Errorf("Vee(Hat(%v)) = %v", v, got)
		}
		if got := Hat(Vee(S)); got != S {
			t.Errorf("Hat(Vee(S)) = %v, want %v", got, S)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if S[i][j] != -S[j][i] {
					t.Errorf("Hat(%v) not skew-symmetric at (%d,%d)", v, i, j)
				}
			}
		}
	}
}

func TestHatCrossProduct(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	got := std.MulMat3Vec(Hat(a), b)
	want := mgl64.Vec3(a).Cross(mgl64.Vec3(b))
	if !floats.EqualApprox(got[:], want[:], eps) {
		t.Errorf("Hat(a)·b = %v, want a×b = %v", got, want)
	}
}

func TestRotationToAxisAngle_Identity(t *testing.T) {
	aa := RotationToAxisAngle(Identity3())

	if aa.Defined() {
		t.Error("expected undefined axis for identity")
	}
	if aa.Angle != 0 {
		t.Errorf("expected angle 0, got %f", aa.Angle)
	}
	for i, c := range aa.Vector() {
		if !math.IsNaN(c) {
			t.Errorf("component %d: expected NaN, got %f", i, c)
		}
	}
}

func TestRotationToAxisAngle_HalfTurn(t *testing.T) {
	tests := []struct {
		name string
		R    Mat3
		axis Vec3
	}{
		{"z", Mat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, Vec3{0, 0, 1}},
		{"y", Mat3{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Vec3{0, 1, 0}},
		{"x", Mat3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, angle, ok := RotationToAxisAngle(tt.R).Unit()
			if !ok {
				t.Fatal("expected defined axis")
			}
			if math.Abs(angle-math.Pi) > eps {
				t.Errorf("angle = %f, want pi", angle)
			}
			if !floats.EqualApprox(axis[:], tt.axis[:], eps) {
				t.Errorf("axis = %v, want %v", axis, tt.axis)
			}
		})
	}
}

func TestRotationToAxisAngle_HalfTurnOblique(t *testing.T) {
	s := 1 / math.Sqrt2
	R := AxisAngleToRotation(Vec3{s, s, 0}, math.Pi)

	axis, angle, ok := RotationToAxisAngle(R).Unit()
	if !ok {
		t.Fatal("expected defined axis")
	}
	if math.Abs(angle-math.Pi) > eps {
		t.Errorf("angle = %f, want pi", angle)
	}
	got := AxisAngleToRotation(axis, angle)
	if !floats.EqualApprox(flat3(got), flat3(R), 1e-7) {
		t.Errorf("rebuilt rotation %v, want %v", got, R)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		R := AxisAngleToRotation(randomAxis(rng), 0.01+rng.Float64()*(math.Pi-0.02))

		aa := RotationToAxisAngle(R)
		if !aa.Defined() {
			t.Fatalf("iteration %d: unexpected undefined axis", i)
		}
		got := VectorToRotation(aa.Vector())
		if !floats.EqualApprox(flat3(got), flat3(R), 1e-8) {
			t.Errorf("iteration %d: round trip %v, want %v", i, got, R)
		}
	}
}

func TestRotationIsOrthonormal(t *testing.T) {
	R := AxisAngleToRotation(Vec3{0, 0.6, 0.8}, 1.2)
	RRt := std.MulMat3(R, R.T())
	if !floats.EqualApprox(flat3(RRt), flat3(Identity3()), eps) {
		t.Errorf("R·Rᵗ = %v, want identity", RRt)
	}
	det := mat.Det(denseFromRows(R.Rows()))
	if math.Abs(det-1) > eps {
		t.Errorf("det(R) = %f, want 1", det)
	}
}

func TestVectorToRotation(t *testing.T) {
	got := VectorToRotation(Vec3{0, 0, math.Pi / 2})
	want := RotZ(math.Pi / 2).Rotation()
	if !floats.EqualApprox(flat3(got), flat3(want), eps) {
		t.Errorf("VectorToRotation = %v, want %v", got, want)
	}
}

func TestTransformToTwist_Identity(t *testing.T) {
	s := TransformToTwist(Identity4())

	if s.Defined() {
		t.Error("expected undefined screw for identity")
	}
	if s.Theta != 0 {
		t.Errorf("expected theta 0, got %f", s.Theta)
	}
	for i, c := range s.Twist() {
		if !math.IsNaN(c) {
			t.Errorf("component %d: expected NaN, got %f", i, c)
		}
	}
}

func TestTransformToTwist_PureTranslation(t *testing.T) {
	axis, theta, ok := TransformToTwist(TranslationXYZ(1, 2, 3)).Unit()
	if !ok {
		t.Fatal("expected defined screw")
	}

	if math.Abs(theta-math.Sqrt(14)) > eps {
		t.Errorf("theta = %f, want sqrt(14)", theta)
	}
	want := Vec6{0, 0, 0, 1 / math.Sqrt(14), 2 / math.Sqrt(14), 3 / math.Sqrt(14)}
	if !floats.EqualApprox(axis[:], want[:], eps) {
		t.Errorf("axis = %v, want %v", axis, want)
	}
}

func TestTransformToTwist_PureRotation(t *testing.T) {
	axis, theta, ok := TransformToTwist(RotZ(math.Pi / 3)).Unit()
	if !ok {
		t.Fatal("expected defined screw")
	}

	if math.Abs(theta-math.Pi/3) > eps {
		t.Errorf("theta = %f, want pi/3", theta)
	}
	want := Vec6{0, 0, 1, 0, 0, 0}
	if !floats.EqualApprox(axis[:], want[:], eps) {
		t.Errorf("axis = %v, want %v", axis, want)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		T := randomTransform(rng)

		axis, theta, ok := TransformToTwist(T).Unit()
		if !ok {
			t.Fatalf("iteration %d: unexpected undefined screw", i)
		}
		got := TwistToTransform(axis, theta)
		if !floats.EqualApprox(flat4(got), flat4(T), 1e-8) {
			t.Errorf("iteration %d: round trip %v, want %v", i, got, T)
		}
	}
}

func TestTwistToTransform_ZeroAngular(t *testing.T) {
	got := TwistToTransform(Vec6{0, 0, 0, 1, 0, 0}, 2.5)
	want := TranslationXYZ(2.5, 0, 0)
	if got != want {
		t.Errorf("TwistToTransform = %v, want %v", got, want)
	}
}

func TestTwistToTransform_Screw(t *testing.T) {
	// Unit pitch screw about z through the origin: half a turn advances pi.
	got := TwistToTransform(Vec6{0, 0, 1, 0, 0, 1}, math.Pi)
	want := Mat4{{-1, 0, 0, 0}, {0, -1, 0, 0}, {0, 0, 1, math.Pi}, {0, 0, 0, 1}}
	if !floats.EqualApprox(flat4(got), flat4(want), eps) {
		t.Errorf("TwistToTransform = %v, want %v", got, want)
	}
}

func TestInvertTransform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	I := flat4(Identity4())

	for i := 0; i < 50; i++ {
		T := randomTransform(rng)
		inv := InvertTransform(T)

		if got := flat4(std.MulMat4(T, inv)); !floats.EqualApprox(got, I, eps) {
			t.Errorf("T·T⁻¹ = %v, want identity", got)
		}
		if got := InvertTransform(inv); !floats.EqualApprox(flat4(got), flat4(T), eps) {
			t.Errorf("(T⁻¹)⁻¹ = %v, want %v", got, T)
		}
		if got := FromMgl4(ToMgl4(T).Inv()); !floats.EqualApprox(flat4(got), flat4(inv), 1e-8) {
			t.Errorf("general inverse %v disagrees with %v", got, inv)
		}
	}
}

func TestAdjoints_Identity(t *testing.T) {
	ad := BigAdjoint(Identity4())
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if ad[i][j] != want {
				t.Errorf("BigAdjoint(I)[%d][%d] = %f, want %f", i, j, ad[i][j], want)
			}
		}
	}

	if got := LittleAdjoint(Vec6{}); got != (Mat6{}) {
		t.Errorf("LittleAdjoint(0) = %v, want zero", got)
	}
}

// twistMatrix is the 4x4 se(3) form [[ŵ, v], [0, 0]].
func twistMatrix(V Vec6) Mat4 {
	T := ComposeRP(Hat(V.Angular()), V.Linear())
	T[3][3] = 0
	return T
}

func TestBigAdjoint_MapsTwists(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	T := randomTransform(rng)
	V := Vec6{0.3, -1, 0.2, 1.5, 0.1, -0.7}

	got := twistMatrix(std.MulMat6Vec(BigAdjoint(T), V))
	want := std.MulMat4(std.MulMat4(T, twistMatrix(V)), InvertTransform(T))
	if !floats.EqualApprox(flat4(got), flat4(want), eps) {
		t.Errorf("[Ad_T V] = %v, want T[V]T⁻¹ = %v", got, want)
	}
}

func TestLittleAdjoint_LieBracket(t *testing.T) {
	V1 := Vec6{0.3, -1, 0.2, 1.5, 0.1, -0.7}
	V2 := Vec6{-0.4, 0.2, 0.9, 0, 2, 0.5}

	got := twistMatrix(std.MulMat6Vec(LittleAdjoint(V1), V2))
	a, b := twistMatrix(V1), twistMatrix(V2)
	ab, ba := std.MulMat4(a, b), std.MulMat4(b, a)
	var want Mat4
	for i := range want {
		for j := range want[i] {
			want[i][j] = ab[i][j] - ba[i][j]
		}
	}
	if !floats.EqualApprox(flat4(got), flat4(want), eps) {
		t.Errorf("[ad_V1 V2] = %v, want [V1,V2] = %v", got, want)
	}
}

func TestGenerators(t *testing.T) {
	theta := math.Pi / 3
	tests := []struct {
		name string
		got  Mat4
		want mgl64.Mat4
	}{
		{"x", RotX(theta), mgl64.HomogRotate3DX(theta)},
		{"y", RotY(theta), mgl64.HomogRotate3DY(theta)},
		{"z", RotZ(theta), mgl64.HomogRotate3DZ(theta)},
		{"translation", Translation(Vec3{1, 2, 3}), mgl64.Translate3D(1, 2, 3)},
		{"translation xyz", TranslationXYZ(0, 2, 6), mgl64.Translate3D(0, 2, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !floats.EqualApprox(flat4(tt.got), flat4(FromMgl4(tt.want)), eps) {
				t.Errorf("got %v, want %v", tt.got, FromMgl4(tt.want))
			}
		})
	}
}

func TestRotX_Values(t *testing.T) {
	got := RotX(math.Pi / 3)
	want := Mat4{
		{1, 0, 0, 0},
		{0, 0.5, -0.8660254, 0},
		{0, 0.8660254, 0.5, 0},
		{0, 0, 0, 1},
	}
	if !floats.EqualApprox(flat4(got), flat4(want), 1e-7) {
		t.Errorf("RotX(pi/3) = %v", got)
	}
}

func TestMglRoundTrip(t *testing.T) {
	R := RotY(0.7).Rotation()
	if got := FromMgl3(ToMgl3(R)); got != R {
		t.Errorf("Mat3 round trip = %v, want %v", got, R)
	}
	if got := FromVec3(mgl64.Vec3{1, 2, 3}); got != (Vec3{1, 2, 3}) {
		t.Errorf("FromVec3 = %v", got)
	}
}

func TestManipulability(t *testing.T) {
	J := mat.NewDense(2, 3, []float64{
		2, 0, 0,
		0, 1, 0,
	})

	axes, cond, err := Manipulability(J)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(cond-4) > eps {
		t.Errorf("cond = %f, want 4", cond)
	}

	// Ascending eigenvalues 1 and 4: axes of length 1 along y, 2 along x.
	lengths := []float64{
		mat.Norm(axes.ColView(0), 2),
		mat.Norm(axes.ColView(1), 2),
	}
	if !floats.EqualApprox(lengths, []float64{1, 2}, eps) {
		t.Errorf("axis lengths = %v, want [1 2]", lengths)
	}
	if math.Abs(math.Abs(axes.At(1, 0))-1) > eps {
		t.Errorf("first axis = %v, want along y", mat.Col(nil, 0, axes))
	}
}

func TestManipulability_Singular(t *testing.T) {
	J := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		1, 2, 3,
	})

	_, _, err := Manipulability(J)
	if !errors.Is(err, expcoord.ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

func TestCustomTolerance(t *testing.T) {
	R := RotZ(1e-4).Rotation()

	if !RotationToAxisAngle(R).Defined() {
		t.Error("default tolerance: expected a defined axis")
	}

	loose := New(Tolerance{RTol: 1e-5, ATol: 1e-3})
	if loose.RotationToAxisAngle(R).Defined() {
		t.Error("loose tolerance: expected the rotation to count as identity")
	}
}

func TestTolerance_Close(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1e-9, 0, true},
		{1e-7, 0, false},
		{-1.000001, -1, true},
		{math.NaN(), 0, false},
	}

	for _, tt := range tests {
		if got := DefaultTolerance.Close(tt.a, tt.b); got != tt.want {
			t.Errorf("Close(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
