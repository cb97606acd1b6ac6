package geometry

import (
	"math"
	"testing"
)

func TestCartesianToScreen(t *testing.T) {
	const w, h = 500, 400
	tests := []struct {
		name string
		in   Vector2D
		want Vector2D
	}{
		{"origin is screen centre", Vector2D{0, 0}, Vector2D{250, 200}},
		{"top left corner", Vector2D{-250, 200}, Vector2D{0, 0}},
		{"bottom right corner", Vector2D{250, -200}, Vector2D{500, 400}},
		{"y up becomes y down", Vector2D{10, 50}, Vector2D{260, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CartesianToScreen(tt.in, w, h)
			if !got.Eq(tt.want) {
				t.Errorf("CartesianToScreen(%v) = %v; want %v", tt.in, got, tt.want)
			}
			back := ScreenToCartesian(got, w, h)
			if !back.Eq(tt.in) {
				t.Errorf("ScreenToCartesian(%v) = %v; want %v", got, back, tt.in)
			}
		})
	}
}

func TestRotateAboutMidpoint(t *testing.T) {
	square := []Vector2D{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	got := RotateAboutMidpoint(square, math.Pi/2)
	want := []Vector2D{{2, 0}, {2, 2}, {0, 2}, {0, 0}}
	for i := range want {
		if !got[i].Eq(want[i]) {
			t.Errorf("vertex %d = %v; want %v", i, got[i], want[i])
		}
	}

	if c := Centroid(got); !c.Eq(Vector2D{1, 1}) {
		t.Errorf("centroid moved to %v", c)
	}
	if !square[1].Eq(Vector2D{2, 0}) {
		t.Errorf("input polygon was modified: %v", square)
	}
}

func TestCentroid_Empty(t *testing.T) {
	if c := Centroid(nil); !c.Eq(Vector2D{}) {
		t.Errorf("Centroid(nil) = %v; want origin", c)
	}
}
