package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq and NewVectorPolar.
const (
	Epsilon = 1e-9
)

var (
	// ErrZeroVector is returned when an operation needs a direction and the vector has none.
	ErrZeroVector = errors.New("vector has zero length")
	// ErrEmpty is returned when a mean is requested over no points.
	ErrEmpty = errors.New("no points to average")
	// ErrDivideByZero is returned by Div for a zero divisor.
	ErrDivideByZero = errors.New("vector cannot be divided by zero")
)

// Vector2D is a point or a displacement in the simulation plane.
// The origin is the centre of the screen and y grows upward.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVectorPolar builds a vector of length radius pointing at theta radians.
func NewVectorPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)

	// cos(pi/2) is not exactly zero
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}

	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div scales the vector by 1/scalar.
// Dividing by zero yields an (Inf, Inf) vector together with ErrDivideByZero.
func (v Vector2D) Div(scalar float64) (Vector2D, error) {
	if scalar == 0 {
		return Vector2D{math.Inf(1), math.Inf(1)}, ErrDivideByZero
	}
	return Vector2D{v.X / scalar, v.Y / scalar}, nil
}

// LenSqr is the squared Euclidean norm, cheaper than Len for comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len is the Euclidean norm sqrt(x² + y²).
func (v Vector2D) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// ClampNorm constrains the length of v to [minLen, maxLen].
// A vector already inside the range is returned untouched, otherwise it is
// rescaled to exactly minLen or maxLen keeping its direction.
// A zero vector has no direction to keep and yields ErrZeroVector.
func (v Vector2D) ClampNorm(minLen, maxLen float64) (Vector2D, error) {
	l := v.Len()
	if l == 0 {
		return v, ErrZeroVector
	}
	switch {
	case l < minLen:
		return Vector2D{v.X / l * minLen, v.Y / l * minLen}, nil
	case l > maxLen:
		return Vector2D{v.X / l * maxLen, v.Y / l * maxLen}, nil
	}
	return v, nil
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Rotate rotates the vector by angle (in radians) around the origin.
func (v Vector2D) Rotate(angle float64) Vector2D {
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)
	return Vector2D{
		X: v.X*cosTheta - v.Y*sinTheta,
		Y: v.X*sinTheta + v.Y*cosTheta,
	}
}

// RotateAround rotates the vector by angle (radians) around center.
func (v Vector2D) RotateAround(angle float64, center Vector2D) Vector2D {
	return v.Sub(center).Rotate(angle).Add(center)
}

// Eq reports whether both components differ by at most Epsilon.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

// Mean returns the component-wise average of points.
func Mean(points []Vector2D) (Vector2D, error) {
	if len(points) == 0 {
		return Vector2D{}, ErrEmpty
	}
	var sum Vector2D
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return Vector2D{sum.X / n, sum.Y / n}, nil
}
