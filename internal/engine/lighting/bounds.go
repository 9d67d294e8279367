package lighting

import "github.com/Faultbox/shadowcaster/pkg/math"

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the center point of the AABB.
func (b AABB) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB) Radius() float32 {
	return math.V3(b.Max).Sub(math.V3(b.Min)).Length() / 2
}

// FitProjection returns an orthographic volume enclosing the bounding sphere
// of b, seen by a camera distance units from its center. 10% padding keeps
// geometry off the clip edges. Near is negative when the camera sits inside
// the sphere, which an orthographic projection allows.
func FitProjection(b AABB, distance float32) Projection {
	radius := b.Radius()
	halfSize := radius * 1.1
	return Projection{
		Left:   -halfSize,
		Right:  halfSize,
		Bottom: -halfSize,
		Top:    halfSize,
		Near:   distance - halfSize,
		Far:    distance + halfSize,
	}
}

// Around returns the smallest box centered on p that contains b.
func (b AABB) Around(p math.Vec3) AABB {
	c := p.Array()
	var out AABB
	for i := 0; i < 3; i++ {
		half := max(abs32(b.Min[i]-c[i]), abs32(b.Max[i]-c[i]))
		out.Min[i] = c[i] - half
		out.Max[i] = c[i] + half
	}
	return out
}

// Extend grows b to contain o.
func (b AABB) Extend(o AABB) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], o.Min[i])
		b.Max[i] = max(b.Max[i], o.Max[i])
	}
	return b
}

// ObjectBounds returns the world box of a unit cube under placement o.
func ObjectBounds(o ObjectPlacement) AABB {
	t := o.Translation.Array()
	s := o.Scale.Array()
	var b AABB
	for i := 0; i < 3; i++ {
		half := abs32(s[i]) / 2
		b.Min[i] = t[i] - half
		b.Max[i] = t[i] + half
	}
	return b
}
