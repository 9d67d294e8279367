package lighting

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shadowcaster/pkg/math"
)

// ErrUnknownBackend is returned by MathBackend for names it does not recognize.
var ErrUnknownBackend = errors.New("unknown math backend")

// MatrixMath is the 4x4 matrix capability the light transform is built from.
// All matrices are column-major values; no method mutates its arguments.
type MatrixMath interface {
	Identity() math.Mat4
	// Translate returns m * T(v).
	Translate(m math.Mat4, v math.Vec3) math.Mat4
	// Scale returns m * S(v).
	Scale(m math.Mat4, v math.Vec3) math.Mat4
	LookAt(eye, center, up math.Vec3) math.Mat4
	Ortho(left, right, bottom, top, near, far float32) math.Mat4
	// Mul returns a * b.
	Mul(a, b math.Mat4) math.Mat4
}

// StdMath implements MatrixMath on top of pkg/math.
type StdMath struct{}

func (StdMath) Identity() math.Mat4 { return math.Identity() }

func (StdMath) Translate(m math.Mat4, v math.Vec3) math.Mat4 {
	return m.Mul(math.Translate(v.X, v.Y, v.Z))
}

func (StdMath) Scale(m math.Mat4, v math.Vec3) math.Mat4 {
	return m.Mul(math.Scale(v.X, v.Y, v.Z))
}

func (StdMath) LookAt(eye, center, up math.Vec3) math.Mat4 {
	return math.LookAt(eye, center, up)
}

func (StdMath) Ortho(left, right, bottom, top, near, far float32) math.Mat4 {
	return math.Ortho(left, right, bottom, top, near, far)
}

func (StdMath) Mul(a, b math.Mat4) math.Mat4 { return a.Mul(b) }

// MathBackend resolves a backend by its config name ("std" or "mgl").
// An empty name selects "std".
func MathBackend(name string) (MatrixMath, error) {
	switch name {
	case "", "std":
		return StdMath{}, nil
	case "mgl":
		return MGLMath{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
