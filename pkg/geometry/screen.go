package geometry

// CartesianToScreen maps a point from the simulation plane (origin at the
// centre, y up) to screen pixels (origin top-left, y down).
func CartesianToScreen(p Vector2D, width, height float64) Vector2D {
	return Vector2D{X: p.X + width/2, Y: -p.Y + height/2}
}

// ScreenToCartesian is the inverse of CartesianToScreen.
func ScreenToCartesian(p Vector2D, width, height float64) Vector2D {
	return Vector2D{X: p.X - width/2, Y: -p.Y + height/2}
}

// Centroid returns the average of the polygon vertices.
// An empty polygon has its centroid at the origin.
func Centroid(points []Vector2D) Vector2D {
	c, err := Mean(points)
	if err != nil {
		return Vector2D{}
	}
	return c
}

// RotateAboutMidpoint rotates every vertex of a polygon by angle radians
// around the polygon centroid. The input slice is left untouched.
func RotateAboutMidpoint(points []Vector2D, angle float64) []Vector2D {
	mid := Centroid(points)
	rotated := make([]Vector2D, len(points))
	for i, p := range points {
		rotated[i] = p.RotateAround(angle, mid)
	}
	return rotated
}
