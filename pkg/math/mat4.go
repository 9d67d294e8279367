package math

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view volume boundaries.
// near and far define the depth range.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// OrthoBounds recovers the volume an orthographic matrix was built from.
// The result is only meaningful for matrices produced by Ortho.
func (m Mat4) OrthoBounds() (left, right, bottom, top, near, far float32) {
	width := 2 / m[0]
	height := 2 / m[5]
	depth := -2 / m[10]

	sumX := -m[12] * width
	sumY := -m[13] * height
	sumZ := -m[14] * depth

	return (sumX - width) / 2, (sumX + width) / 2,
		(sumY - height) / 2, (sumY + height) / 2,
		(sumZ - depth) / 2, (sumZ + depth) / 2
}

// LookAt returns a view matrix looking from eye to center with up direction.
// An up vector parallel to the view direction yields a singular matrix.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	x := m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]
	y := m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]
	z := m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w != 0 && w != 1 {
		return [3]float32{x / w, y / w, z / w}
	}
	return [3]float32{x, y, z}
}

// TransformVec3 transforms a Vec3 point by this matrix.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	return V3(m.TransformPoint(v.Array()))
}

// Determinant returns the determinant of the matrix.
// Every term takes exactly one element from each column, so a zero column
// gives an exact zero.
func (m Mat4) Determinant() float32 {
	b0 := m[0]*m[5] - m[1]*m[4]
	b1 := m[0]*m[6] - m[2]*m[4]
	b2 := m[1]*m[6] - m[2]*m[5]
	b3 := m[8]*m[13] - m[9]*m[12]
	b4 := m[8]*m[14] - m[10]*m[12]
	b5 := m[9]*m[14] - m[10]*m[13]
	b6 := m[0]*b5 - m[1]*b4 + m[2]*b3
	b7 := m[4]*b5 - m[5]*b4 + m[6]*b3
	b8 := m[8]*b2 - m[9]*b1 + m[10]*b0
	b9 := m[12]*b2 - m[13]*b1 + m[14]*b0

	return m[7]*b6 - m[3]*b7 + m[15]*b8 - m[11]*b9
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
