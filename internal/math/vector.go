package vecmath

import (
	"fmt"
	"math"
)

// Vector2 is an immutable 2D vector
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 creates a vector from Cartesian coordinates
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromPolar creates a vector from a magnitude and an angle in radians
func FromPolar(radius, angle float64) Vector2 {
	return Vector2{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}

// Sub returns the componentwise difference a - b
func Sub(a, b Vector2) Vector2 {
	return Vector2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Dot returns the dot product of a and b
func Dot(a, b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Sub(v, o)
}

// Dot returns the dot product of v and o
func (v Vector2) Dot(o Vector2) float64 {
	return Dot(v, o)
}

// Length returns the Euclidean length of v
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
