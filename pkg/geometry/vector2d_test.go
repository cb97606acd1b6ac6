package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"no length", 0, 1.3, Vector2D{0, 0}},
		{"east", 25, 0, Vector2D{25, 0}},
		{"north snaps x to zero", 25, math.Pi / 2, Vector2D{0, 25}},
		{"west snaps y to zero", 25, math.Pi, Vector2D{-25, 0}},
		{"diagonal", 5 * math.Sqrt(2), math.Pi / 4, Vector2D{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}

	// exact zero, not a 1e-15 residue
	if got := NewVectorPolar(25, math.Pi/2); got.X != 0 {
		t.Errorf("NewVectorPolar(25, Pi/2).X = %g; want exactly 0", got.X)
	}
}

func TestVector_String(t *testing.T) {
	if got := (Vector2D{-0.125, 7.006}).String(); got != "(-0.12, 7.01)" {
		t.Errorf("String() = %q; want %q", got, "(-0.12, 7.01)")
	}
}

func TestVector_Arithmetic(t *testing.T) {
	a := Vector2D{2, -3}
	b := Vector2D{-1, 5}

	tests := []struct {
		name string
		got  Vector2D
		want Vector2D
	}{
		{"Add", a.Add(b), Vector2D{1, 2}},
		{"Sub", a.Sub(b), Vector2D{3, -8}},
		{"Mul", a.Mul(-0.5), Vector2D{-1, 1.5}},
	}
	for _, tt := range tests {
		if !tt.got.Eq(tt.want) {
			t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
		}
	}

	t.Run("Div", func(t *testing.T) {
		got, err := a.Div(4)
		if err != nil {
			t.Fatalf("Div(4) unexpected error: %v", err)
		}
		if want := (Vector2D{0.5, -0.75}); !got.Eq(want) {
			t.Errorf("Div(4) = %v; want %v", got, want)
		}
	})

	t.Run("DivByZero", func(t *testing.T) {
		got, err := a.Div(0)
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("Div(0) error = %v; want ErrDivideByZero", err)
		}
		if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, 1) {
			t.Errorf("Div(0) = %v; want (+Inf, +Inf)", got)
		}
	})
}

func TestVector_Length(t *testing.T) {
	v := Vector2D{-5, 12}
	if got := v.Len(); got != 13 {
		t.Errorf("Len() = %v; want 13", got)
	}
	if got := v.LenSqr(); got != 169 {
		t.Errorf("LenSqr() = %v; want 169", got)
	}
	if got := (Vector2D{1, 1}).DistanceSquaredTo(Vector2D{-2, 5}); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Rotation(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2D
		angle  float64
		center Vector2D
		want   Vector2D
	}{
		{"quarter turn about origin", Vector2D{0, 2}, math.Pi / 2, Vector2D{}, Vector2D{-2, 0}},
		{"half turn about origin", Vector2D{3, 1}, math.Pi, Vector2D{}, Vector2D{-3, -1}},
		{"quarter turn about a point", Vector2D{4, 2}, math.Pi / 2, Vector2D{2, 2}, Vector2D{2, 4}},
		{"centre stays put", Vector2D{2, 2}, 1.1, Vector2D{2, 2}, Vector2D{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.RotateAround(tt.angle, tt.center); !got.Eq(tt.want) {
				t.Errorf("%v.RotateAround(%v, %v) = %v; want %v", tt.v, tt.angle, tt.center, got, tt.want)
			}
		})
	}

	// about the origin both forms agree
	if got, want := (Vector2D{0, 2}).Rotate(math.Pi/2), (Vector2D{-2, 0}); !got.Eq(want) {
		t.Errorf("Rotate = %v; want %v", got, want)
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}
	if !v.Eq(Vector2D{1 + Epsilon/2, 2 - Epsilon/2}) {
		t.Error("vectors within Epsilon should be equal")
	}
	if v.Eq(Vector2D{1, 2 + 10*Epsilon}) {
		t.Error("vectors further apart than Epsilon should differ")
	}
}

func TestVector_ClampNorm(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want Vector2D
	}{
		{"below min is stretched to min", Vector2D{3, 4}, Vector2D{6, 8}},
		{"above max is shrunk to max", Vector2D{30, 40}, Vector2D{12, 16}},
		{"exactly min is unchanged", Vector2D{6, 8}, Vector2D{6, 8}},
		{"inside range is unchanged", Vector2D{0, -15}, Vector2D{0, -15}},
		{"exactly max is unchanged", Vector2D{-12, 16}, Vector2D{-12, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.ClampNorm(10, 20)
			if err != nil {
				t.Fatalf("ClampNorm(%v) unexpected error: %v", tt.v, err)
			}
			if !got.Eq(tt.want) {
				t.Errorf("ClampNorm(%v) = %v; want %v", tt.v, got, tt.want)
			}
			// same direction: parallel and not flipped
			if cross := got.X*tt.v.Y - got.Y*tt.v.X; math.Abs(cross) > Epsilon {
				t.Errorf("ClampNorm(%v) turned the vector: %v", tt.v, got)
			}
			if got.X*tt.v.X+got.Y*tt.v.Y <= 0 {
				t.Errorf("ClampNorm(%v) reversed the vector: %v", tt.v, got)
			}
		})
	}

	t.Run("ZeroVector", func(t *testing.T) {
		_, err := Vector2D{}.ClampNorm(10, 20)
		if !errors.Is(err, ErrZeroVector) {
			t.Errorf("ClampNorm(0,0) error = %v; want ErrZeroVector", err)
		}
	})
}

func TestMean(t *testing.T) {
	got, err := Mean([]Vector2D{{0, 0}, {2, 4}, {4, -1}})
	if err != nil {
		t.Fatalf("Mean returned error: %v", err)
	}
	if want := (Vector2D{2, 1}); !got.Eq(want) {
		t.Errorf("Mean = %v; want %v", got, want)
	}

	if _, err := Mean(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Mean(nil) error = %v; want ErrEmpty", err)
	}
}
