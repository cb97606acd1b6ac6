// Package render draws a flock snapshot on an ebiten screen.
//
// Simulation coordinates have their origin at the centre of the screen with
// y growing upward; everything is converted to ebiten's top-left, y-down
// frame at the last moment.
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"golang.org/x/image/colornames"
)

// Style is fixed when the renderer is built.
type Style struct {
	// Shape is the boid polygon pointing up (+y) before scaling.
	Shape []geometry.Vector2D
	Scale float64

	Background color.RGBA
	Boid       color.RGBA
	Obstacle   color.RGBA
	Overlay    color.RGBA
}

// ColorByName resolves an SVG colour keyword such as "black" or "tomato".
func ColorByName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// NewStyle builds a Style from colour names.
func NewStyle(shape []geometry.Vector2D, scale float64, background, boid, obstacle string) (Style, error) {
	st := Style{Shape: shape, Scale: scale, Overlay: colornames.Gray}
	var err error
	if st.Background, err = ColorByName(background); err != nil {
		return Style{}, fmt.Errorf("background: %w", err)
	}
	if st.Boid, err = ColorByName(boid); err != nil {
		return Style{}, fmt.Errorf("boid: %w", err)
	}
	if st.Obstacle, err = ColorByName(obstacle); err != nil {
		return Style{}, fmt.Errorf("obstacle: %w", err)
	}
	return st, nil
}

// Heading is the rotation to apply to an upward-pointing shape so that it
// points along v. A purely vertical velocity is handled by the sign of its
// y component; the zero vector keeps the shape pointing up.
func Heading(v geometry.Vector2D) float64 {
	var angle float64
	if v.X != 0 {
		angle = math.Atan(v.Y / v.X)
	} else if v.Y < 0 {
		angle = math.Pi / 2
	} else {
		angle = -math.Pi / 2
	}
	angle += math.Pi / 2
	// atan only covers (-Pi/2, Pi/2)
	if v.X > 0 {
		angle += math.Pi
	}
	return angle
}

// AgentPolygon returns the screen-space vertices of an agent.
func AgentPolygon(a behavior.Agent, st Style, width, height float64) []geometry.Vector2D {
	pts := make([]geometry.Vector2D, len(st.Shape))
	for i, p := range st.Shape {
		pts[i] = p.Mul(st.Scale).Add(a.Pos)
	}
	pts = geometry.RotateAboutMidpoint(pts, Heading(a.Vel))
	for i, p := range pts {
		pts[i] = geometry.CartesianToScreen(p, width, height)
	}
	return pts
}

// Overlay lists the optional debug drawings.
type Overlay struct {
	TriggerRadius bool    // outline of each obstacle avoidance zone
	VisibleRange  float64 // radius of a circle around every boid, 0 disables it
}

// Renderer draws agents as filled polygons and obstacles as discs.
type Renderer struct {
	style         Style
	width, height float64
	pixel         *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

func NewRenderer(style Style, width, height float64) *Renderer {
	pixel := ebiten.NewImage(3, 3)
	pixel.Fill(color.White)
	return &Renderer{style: style, width: width, height: height, pixel: pixel}
}

// Style returns the style the renderer was built with.
func (r *Renderer) Style() Style {
	return r.style
}

// Draw paints the background, the obstacles and then the agents.
func (r *Renderer) Draw(screen *ebiten.Image, agents []behavior.Agent, obstacles []behavior.Obstacle, ov Overlay) {
	screen.Fill(r.style.Background)

	for _, o := range obstacles {
		c := geometry.CartesianToScreen(o.Pos, r.width, r.height)
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(o.Radius), r.style.Obstacle, true)
		if ov.TriggerRadius {
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(o.TriggerRadius()), 1, r.style.Overlay, true)
		}
	}

	for _, a := range agents {
		if ov.VisibleRange > 0 {
			c := geometry.CartesianToScreen(a.Pos, r.width, r.height)
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(ov.VisibleRange), 1, r.style.Overlay, true)
		}
		r.drawAgent(screen, a)
	}
}

func (r *Renderer) drawAgent(screen *ebiten.Image, a behavior.Agent) {
	pts := AgentPolygon(a, r.style, r.width, r.height)
	if len(pts) < 3 {
		return
	}

	cr, cg, cb, ca := float32(r.style.Boid.R)/255, float32(r.style.Boid.G)/255, float32(r.style.Boid.B)/255, float32(r.style.Boid.A)/255
	r.vertices = r.vertices[:0]
	for _, p := range pts {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}

	// fan triangulation, fine for the convex shapes boids use
	r.indices = r.indices[:0]
	for i := 1; i < len(pts)-1; i++ {
		r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
	}

	screen.DrawTriangles(r.vertices, r.indices, r.pixel, &ebiten.DrawTrianglesOptions{})
}
