package snowfall

import "math"

// Vector2 is a mutable 2D vector. The arithmetic methods modify the
// receiver in place; use Clone first to keep the original.
type Vector2 struct {
	X, Y float64
}

// VectorFromDegrees returns the unit vector at deg degrees, measured
// clockwise from +X in screen coordinates (Y grows downward).
func VectorFromDegrees(deg float64) Vector2 {
	rad := deg * math.Pi / 180
	return Vector2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add adds u to the receiver.
func (v *Vector2) Add(u Vector2) {
	v.X += u.X
	v.Y += u.Y
}

// AddScalar adds s to both components.
func (v *Vector2) AddScalar(s float64) {
	v.X += s
	v.Y += s
}

// Sub subtracts u from the receiver.
func (v *Vector2) Sub(u Vector2) {
	v.X -= u.X
	v.Y -= u.Y
}

// SubScalar subtracts s from both components.
func (v *Vector2) SubScalar(s float64) {
	v.X -= s
	v.Y -= s
}

// Mul multiplies the receiver component-wise by u.
func (v *Vector2) Mul(u Vector2) {
	v.X *= u.X
	v.Y *= u.Y
}

// MulScalar scales both components by s.
func (v *Vector2) MulScalar(s float64) {
	v.X *= s
	v.Y *= s
}

// Div divides the receiver component-wise by u.
func (v *Vector2) Div(u Vector2) {
	v.X /= u.X
	v.Y /= u.Y
}

// DivScalar divides both components by s.
func (v *Vector2) DivScalar(s float64) {
	v.X /= s
	v.Y /= s
}

// Normalize scales the receiver to length 1. The zero vector has no
// direction; callers must not normalize it.
func (v *Vector2) Normalize() {
	l := v.Length()
	v.X /= l
	v.Y /= l
}

// SetLength rescales the receiver to length l, keeping its direction.
func (v *Vector2) SetLength(l float64) {
	v.Normalize()
	v.MulScalar(l)
}

// Dot returns the dot product with u.
func (v Vector2) Dot(u Vector2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Length returns the Euclidean length.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Perp returns a new vector rotated 90 degrees counter-clockwise.
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Clone returns a copy of the receiver.
func (v Vector2) Clone() Vector2 {
	return v
}

// Equal reports exact component-wise equality with u.
func (v Vector2) Equal(u Vector2) bool {
	return v.X == u.X && v.Y == u.Y
}

// Opposite returns the negation of v.
func Opposite(v Vector2) Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}
