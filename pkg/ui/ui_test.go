package ui

import "testing"

func TestSlider_ValueAt(t *testing.T) {
	s := NewSlider(10, 0, 100, "speed", 0, 50, 25)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 10, 0},
		{"middle", 60, 25},
		{"right edge", 110, 50},
		{"left of the bar", -20, 0},
		{"right of the bar", 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ValueAt(tt.x); got != tt.want {
				t.Errorf("ValueAt(%v) = %v; want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestNewSlider_ClampsValue(t *testing.T) {
	if s := NewSlider(0, 0, 100, "x", 1, 10, 42); s.Value != 10 {
		t.Errorf("Value = %v; want 10", s.Value)
	}
	if s := NewSlider(0, 0, 100, "x", 1, 10, -3); s.Value != 1 {
		t.Errorf("Value = %v; want 1", s.Value)
	}
}

func TestCheckbox_PressTogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "overlay", false)

	c.Press(5, 5, true)
	c.Press(5, 5, true) // still held
	if !c.Value {
		t.Fatal("expected the checkbox to be checked after one press")
	}
	c.Press(5, 5, false)
	c.Press(5, 5, true)
	if c.Value {
		t.Error("expected the second press to uncheck the box")
	}
	c.Press(50, 50, false)
	c.Press(50, 50, true)
	if c.Value {
		t.Error("a press outside the box must not toggle it")
	}
}

func TestButton_Press(t *testing.T) {
	clicks := 0
	b := NewButton(10, 10, 80, 20, "mode", func() { clicks++ })

	for _, down := range []bool{true, true, true, false, true, false} {
		b.Press(20, 20, down)
	}
	if clicks != 2 {
		t.Errorf("clicks = %d; want 2", clicks)
	}
	b.Press(200, 200, true)
	if clicks != 2 {
		t.Errorf("a press outside the button fired OnClick")
	}
}

func TestUIPanel_Contains(t *testing.T) {
	p := NewUIPanel("Flocking", 10, 10, 200, 300)

	if !p.Contains(10, 10) || !p.Contains(210, 310) {
		t.Error("expected the panel corners to be inside")
	}
	if p.Contains(211, 100) {
		t.Error("expected a point right of the panel to be outside")
	}
	p.Visible = false
	if p.Contains(50, 50) {
		t.Error("a hidden panel must not capture clicks")
	}
}

func TestUIPanel_Widgets(t *testing.T) {
	p := NewUIPanel("Flocking", 0, 0, 200, 400)
	p.AddSection("Ranges")
	first := p.AddSlider("Visible", 0, 200, 100)
	second := p.AddSlider("Protected", 0, 50, 10)
	box := p.AddCheckbox("Overlay", true)
	p.AddButton("Mode", nil)
	p.EndSection()

	if second.Y <= first.Y || box.Y <= second.Y {
		t.Errorf("widgets are not stacked: %v, %v, %v", first.Y, second.Y, box.Y)
	}
	if len(p.Widgets) != 4 {
		t.Fatalf("panel holds %d widgets; want 4", len(p.Widgets))
	}
	if sw, ok := p.Widgets[1].(*SliderWrapper); !ok || sw.Slider != second {
		t.Errorf("widget 1 = %T; want the protected slider", p.Widgets[1])
	}
	if cw, ok := p.Widgets[2].(*CheckboxWrapper); !ok || cw.Checkbox != box {
		t.Errorf("widget 2 = %T; want the overlay checkbox", p.Widgets[2])
	}
	if second.Value != 10 || !box.Value {
		t.Errorf("initial values = %v, %v; want 10, true", second.Value, box.Value)
	}
}
