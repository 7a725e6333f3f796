package math

// Mat2 is a 2x2 matrix stored by columns: [c0.x c0.y c1.x c1.y].
type Mat2 [4]float32

// Mat2FromCols builds a matrix whose columns are a and b.
func Mat2FromCols(a, b Vec2) Mat2 {
	return Mat2{a.X, a.Y, b.X, b.Y}
}

// Det returns the determinant.
func (m Mat2) Det() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// Inverse returns the inverse of m. ok is false when m is singular.
func (m Mat2) Inverse() (inv Mat2, ok bool) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, false
	}
	invDet := 1 / det
	return Mat2{
		m[3] * invDet, -m[1] * invDet,
		-m[2] * invDet, m[0] * invDet,
	}, true
}

// MulVec2 returns m * v.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}
