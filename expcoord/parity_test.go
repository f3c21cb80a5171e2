package expcoord_test

import (
	"math"

	g "github.com/onsi/ginkgo/v2"
	o "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/max-sn/robotics-foundation/expcoord"
	"github.com/max-sn/robotics-foundation/num"
	"github.com/max-sn/robotics-foundation/sym"
)

const parityTol = 1e-9

func angle(src string) (sym.Expr, float64) {
	e := sym.MustParse(src)
	v, ok := sym.Float64(e)
	o.Expect(ok).To(o.BeTrue(), "angle %q is not closed", src)
	return e, v
}

func rot(axis int, src string) (sym.Mat4, num.Mat4) {
	s, n := angle(src)
	switch axis {
	case 0:
		return sym.RotX(s), num.RotX(n)
	case 1:
		return sym.RotY(s), num.RotY(n)
	}
	return sym.RotZ(s), num.RotZ(n)
}

func expectClose(got, want []float64) {
	g.GinkgoHelper()
	o.Expect(got).To(o.HaveLen(len(want)))
	for i := range want {
		o.Expect(got[i]).To(o.BeNumerically("~", want[i], parityTol), "component %d", i)
	}
}

func expectMat3(s sym.Mat3, n num.Mat3) {
	g.GinkgoHelper()
	got, err := sym.EvalMat3(s)
	o.Expect(err).NotTo(o.HaveOccurred())
	for i := range n {
		expectClose(got[i][:], n[i][:])
	}
}

func expectMat4(s sym.Mat4, n num.Mat4) {
	g.GinkgoHelper()
	got, err := sym.EvalMat4(s)
	o.Expect(err).NotTo(o.HaveOccurred())
	for i := range n {
		expectClose(got[i][:], n[i][:])
	}
}

func expectMat6(s sym.Mat6, n num.Mat6) {
	g.GinkgoHelper()
	got, err := sym.EvalMat6(s)
	o.Expect(err).NotTo(o.HaveOccurred())
	for i := range n {
		expectClose(got[i][:], n[i][:])
	}
}

func expectVec3(s sym.Vec3, n num.Vec3) {
	g.GinkgoHelper()
	got, err := sym.EvalVec3(s)
	o.Expect(err).NotTo(o.HaveOccurred())
	expectClose(got[:], n[:])
}

func expectVec6(s sym.Vec6, n num.Vec6) {
	g.GinkgoHelper()
	got, err := sym.EvalVec6(s)
	o.Expect(err).NotTo(o.HaveOccurred())
	expectClose(got[:], n[:])
}

func expectScalar(s sym.Expr, n float64) {
	g.GinkgoHelper()
	v, ok := sym.Float64(s)
	o.Expect(ok).To(o.BeTrue())
	o.Expect(v).To(o.BeNumerically("~", n, parityTol))
}

var rotations = []g.TableEntry{
	g.Entry("about x by pi/6", 0, "pi/6"),
	g.Entry("about x by 2*pi/3", 0, "2*pi/3"),
	g.Entry("about x by pi", 0, "pi"),
	g.Entry("about y by pi/4", 1, "pi/4"),
	g.Entry("about y by pi/2", 1, "pi/2"),
	g.Entry("about y by pi", 1, "pi"),
	g.Entry("about z by pi/3", 2, "pi/3"),
	g.Entry("about z by 3*pi/4", 2, "3*pi/4"),
	g.Entry("about z by -pi/4", 2, "-pi/4"),
	g.Entry("about z by pi", 2, "pi"),
}

var _ = g.Describe("generators", func() {
	g.DescribeTable("agree between backends",
		func(axis int, src string) {
			s, n := rot(axis, src)
			expectMat4(s, n)
		},
		rotations,
	)

	g.It("builds the same translation", func() {
		expectMat4(
			sym.TranslationXYZ(sym.Int(1), sym.Rat(-1, 2), sym.Int(3)),
			num.TranslationXYZ(1, -0.5, 3),
		)
	})
})

var _ = g.Describe("SO(3)", func() {
	g.DescribeTable("logarithm agrees between backends",
		func(axis int, src string) {
			s, n := rot(axis, src)
			sr := sym.RotationToAxisAngle(s.Rotation())
			nr := num.RotationToAxisAngle(n.Rotation())

			o.Expect(sr.Defined()).To(o.BeTrue())
			o.Expect(nr.Defined()).To(o.BeTrue())
			expectVec3(sr.Axis, nr.Axis)
			expectScalar(sr.Angle, nr.Angle)
			expectVec3(sr.Vector(), nr.Vector())
		},
		rotations,
	)

	g.DescribeTable("exponential inverts the logarithm",
		func(axis int, src string) {
			s, n := rot(axis, src)
			expectMat3(sym.VectorToRotation(sym.RotationToVector(s.Rotation())), n.Rotation())
			expectMat3(s.Rotation(), num.VectorToRotation(num.RotationToVector(n.Rotation())))
		},
		rotations,
	)

	g.It("leaves the identity undefined in both backends", func() {
		sr := sym.RotationToAxisAngle(sym.Identity3())
		nr := num.RotationToAxisAngle(num.Identity3())

		o.Expect(sr.Defined()).To(o.BeFalse())
		o.Expect(nr.Defined()).To(o.BeFalse())
		for i := 0; i < 3; i++ {
			o.Expect(sym.IsNaN(sr.Axis[i])).To(o.BeTrue())
			o.Expect(math.IsNaN(nr.Axis[i])).To(o.BeTrue())
		}
	})

	g.It("agrees on hat and vee", func() {
		sv := sym.V3(sym.Int(1), sym.Rat(2, 3), sym.MustParse("sqrt(2)"))
		nv := num.Vec3{1, 2.0 / 3, math.Sqrt2}
		expectMat3(sym.Hat(sv), num.Hat(nv))
		expectVec3(sym.Vee(sym.Hat(sv)), nv)
	})
})

var _ = g.Describe("SE(3)", func() {
	g.DescribeTable("logarithm agrees between backends",
		func(axis int, src string) {
			s, n := rot(axis, src)
			S := sym.ComposeRP(s.Rotation(), sym.Ints(1, 2, 3))
			N := num.ComposeRP(n.Rotation(), num.Vec3{1, 2, 3})

			ss := sym.TransformToTwist(S)
			ns := num.TransformToTwist(N)
			o.Expect(ss.Defined()).To(o.BeTrue())
			o.Expect(ns.Defined()).To(o.BeTrue())
			expectVec6(ss.Axis, ns.Axis)
			expectScalar(ss.Theta, ns.Theta)

			expectMat4(sym.TwistToTransform(ss.Axis, ss.Theta), N)
			expectMat4(S, num.TwistToTransform(ns.Axis, ns.Theta))
		},
		rotations,
	)

	g.It("gives a pure translation infinite pitch", func() {
		ss := sym.TransformToTwist(sym.TranslationXYZ(sym.Int(1), sym.Int(2), sym.Int(3)))
		ns := num.TransformToTwist(num.TranslationXYZ(1, 2, 3))

		expectVec6(ss.Axis, ns.Axis)
		expectScalar(ss.Theta, math.Sqrt(14))
		o.Expect(ns.Theta).To(o.BeNumerically("~", math.Sqrt(14), parityTol))
	})

	g.It("leaves the identity undefined in both backends", func() {
		o.Expect(sym.TransformToTwist(sym.Identity4()).Defined()).To(o.BeFalse())
		o.Expect(num.TransformToTwist(num.Identity4()).Defined()).To(o.BeFalse())
	})

	g.DescribeTable("inverse and adjoints agree between backends",
		func(axis int, src string) {
			s, n := rot(axis, src)
			S := sym.ComposeRP(s.Rotation(), sym.Ints(-1, 0, 2))
			N := num.ComposeRP(n.Rotation(), num.Vec3{-1, 0, 2})

			expectMat4(sym.InvertTransform(S), num.InvertTransform(N))
			expectMat6(sym.BigAdjoint(S), num.BigAdjoint(N))

			sv := expcoord.NewVec6(sym.Ints(0, 0, 1), sym.V3(sym.Rat(1, 2), sym.Int(-1), sym.Int(0)))
			nv := num.Vec6{0, 0, 1, 0.5, -1, 0}
			expectMat6(sym.LittleAdjoint(sv), num.LittleAdjoint(nv))
		},
		rotations,
	)
})

var _ = g.Describe("manipulability", func() {
	g.It("agrees on a diagonal Jacobian", func() {
		_, sc, err := sym.Manipulability([][]sym.Expr{
			{sym.Int(1), sym.Int(0), sym.Int(0)},
			{sym.Int(0), sym.Int(2), sym.Int(0)},
			{sym.Int(0), sym.Int(0), sym.Int(3)},
		})
		o.Expect(err).NotTo(o.HaveOccurred())

		_, nc, err := num.Manipulability(mat.NewDiagDense(3, []float64{1, 2, 3}))
		o.Expect(err).NotTo(o.HaveOccurred())

		expectScalar(sc, nc)
		o.Expect(nc).To(o.BeNumerically("~", 9, parityTol))
	})

	g.It("agrees on the principal axis lengths", func() {
		J := [][]float64{{1, 1, 0}, {0, 1, 1}}
		sJ := [][]sym.Expr{
			{sym.Int(1), sym.Int(1), sym.Int(0)},
			{sym.Int(0), sym.Int(1), sym.Int(1)},
		}

		sa, _, err := sym.Manipulability(sJ)
		o.Expect(err).NotTo(o.HaveOccurred())
		na, _, err := num.Manipulability(mat.NewDense(2, 3, append(J[0], J[1]...)))
		o.Expect(err).NotTo(o.HaveOccurred())

		for j := 0; j < 2; j++ {
			var sl, nl float64
			for i := 0; i < 2; i++ {
				v, ok := sym.Float64(sa[i][j])
				o.Expect(ok).To(o.BeTrue())
				sl += v * v
				nl += na.At(i, j) * na.At(i, j)
			}
			o.Expect(sl).To(o.BeNumerically("~", nl, parityTol))
		}
	})

	g.It("rejects a singular Jacobian in both backends", func() {
		_, _, err := sym.Manipulability([][]sym.Expr{{sym.Int(1), sym.Int(2)}, {sym.Int(2), sym.Int(4)}})
		o.Expect(err).To(o.MatchError(expcoord.ErrSingular))

		_, _, err = num.Manipulability(mat.NewDense(2, 2, []float64{1, 2, 2, 4}))
		o.Expect(err).To(o.MatchError(expcoord.ErrSingular))
	})
})
