package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shadowcaster/pkg/math"
)

// MGLMath implements MatrixMath with go-gl/mathgl.
// mgl32.Mat4 shares the column-major [16]float32 layout of math.Mat4.
type MGLMath struct{}

func (MGLMath) Identity() math.Mat4 { return math.Mat4(mgl32.Ident4()) }

func (MGLMath) Translate(m math.Mat4, v math.Vec3) math.Mat4 {
	return math.Mat4(mgl32.Mat4(m).Mul4(mgl32.Translate3D(v.X, v.Y, v.Z)))
}

func (MGLMath) Scale(m math.Mat4, v math.Vec3) math.Mat4 {
	return math.Mat4(mgl32.Mat4(m).Mul4(mgl32.Scale3D(v.X, v.Y, v.Z)))
}

func (MGLMath) LookAt(eye, center, up math.Vec3) math.Mat4 {
	return math.Mat4(mgl32.LookAtV(toMGL(eye), toMGL(center), toMGL(up)))
}

func (MGLMath) Ortho(left, right, bottom, top, near, far float32) math.Mat4 {
	return math.Mat4(mgl32.Ortho(left, right, bottom, top, near, far))
}

func (MGLMath) Mul(a, b math.Mat4) math.Mat4 {
	return math.Mat4(mgl32.Mat4(a).Mul4(mgl32.Mat4(b)))
}

func toMGL(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
