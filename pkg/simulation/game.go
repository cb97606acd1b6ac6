package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/render"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

var hudBackground = color.RGBA{R: 20, G: 20, B: 25, A: 180}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *WorldSnapshot
	lastState  *WorldSnapshot

	renderer *render.Renderer

	// UI Controls
	panel      *ui.UIPanel
	modeButton *ui.Button

	// Widget references for easy access
	widgetVisibleRange     *ui.Slider
	widgetProtectedRange   *ui.Slider
	widgetEdgeBuffer       *ui.Slider
	widgetAlignmentFactor  *ui.Slider
	widgetCohesionFactor   *ui.Slider
	widgetSeparationFactor *ui.Slider
	widgetEdgeFactor       *ui.Slider
	widgetObstacleFactor   *ui.Slider
	widgetMinSpeed         *ui.Slider
	widgetMaxSpeed         *ui.Slider
	widgetShowTrigger      *ui.Checkbox
	widgetShowVisible      *ui.Checkbox

	cfg       *Config
	clickMode ClickMode
	paused    bool
	// last settings sent to the world, to only send changes
	sentSettings *pb.UpdateSettings

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the world actor in system and builds the window-side
// state. rng seeds the world; nil picks a random seed.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, rng *rand.Rand) (*Game, error) {
	style, err := render.NewStyle(cfg.BoidShape, cfg.BoidScale, cfg.Background, cfg.BoidColor, cfg.ObstacleColor)
	if err != nil {
		return nil, fmt.Errorf("failed to build render style: %w", err)
	}

	snapshotCh := make(chan *WorldSnapshot, 10) // Buffer to avoid blocking

	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg, rng))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &WorldSnapshot{}, // Avoid nil pointer
		renderer:   render.NewRenderer(style, cfg.ScreenWidth, cfg.ScreenHeight),
		cfg:        cfg,
		clickMode:  cfg.ClickMode,
	}
	g.buildPanel()
	g.sentSettings = settingsToProto(cfg.Settings())
	return g, nil
}

func (g *Game) buildPanel() {
	panel := ui.NewUIPanel("Flocking (P to hide)", 10, 10, 200, g.cfg.ScreenHeight-20)
	panel.Visible = false

	panel.AddSection("Ranges")
	g.widgetVisibleRange = panel.AddSlider("Visible Range", 0, 200, g.cfg.VisibleRange)
	g.widgetProtectedRange = panel.AddSlider("Protected Range", 0, 50, g.cfg.ProtectedRange)
	g.widgetEdgeBuffer = panel.AddSlider("Edge Buffer", 0, 150, g.cfg.EdgeBuffer)
	panel.EndSection()

	panel.AddSection("Factors")
	g.widgetAlignmentFactor = panel.AddSlider("Alignment", 0, 0.2, g.cfg.AlignmentFactor)
	g.widgetCohesionFactor = panel.AddSlider("Cohesion", 0, 0.005, g.cfg.CohesionFactor)
	g.widgetSeparationFactor = panel.AddSlider("Separation", 0, 0.5, g.cfg.SeparationFactor)
	g.widgetEdgeFactor = panel.AddSlider("Edge", 0, 5, g.cfg.EdgeFactor)
	g.widgetObstacleFactor = panel.AddSlider("Obstacle", 0, 0.5, g.cfg.ObstacleFactor)
	panel.EndSection()

	panel.AddSection("Speeds")
	g.widgetMinSpeed = panel.AddSlider("Min Speed", 1, 60, g.cfg.MinSpeed)
	g.widgetMaxSpeed = panel.AddSlider("Max Speed", 1, 60, g.cfg.MaxSpeed)
	panel.EndSection()

	panel.AddSection("Display")
	g.widgetShowTrigger = panel.AddCheckbox("Obstacle Trigger Radius", false)
	g.widgetShowVisible = panel.AddCheckbox("Visible Range", false)
	g.modeButton = panel.AddButton("Click Spawns", g.toggleClickMode)
	g.modeButton.Caption = g.clickMode.String()
	panel.EndSection()

	g.panel = panel
}

func (g *Game) toggleClickMode() {
	if g.clickMode == ClickSpawnAgent {
		g.clickMode = ClickSpawnObstacle
	} else {
		g.clickMode = ClickSpawnAgent
	}
	g.modeButton.Caption = g.clickMode.String()
}

func (g *Game) panelSettings() *pb.UpdateSettings {
	return &pb.UpdateSettings{
		VisibleRange:     g.widgetVisibleRange.Value,
		ProtectedRange:   g.widgetProtectedRange.Value,
		EdgeBuffer:       g.widgetEdgeBuffer.Value,
		AlignmentFactor:  g.widgetAlignmentFactor.Value,
		CohesionFactor:   g.widgetCohesionFactor.Value,
		SeparationFactor: g.widgetSeparationFactor.Value,
		EdgeFactor:       g.widgetEdgeFactor.Value,
		ObstacleFactor:   g.widgetObstacleFactor.Value,
		MinSpeed:         g.widgetMinSpeed.Value,
		MaxSpeed:         g.widgetMaxSpeed.Value,
	}
}

// spawnMessage converts a click at screen position (x, y) into the command
// for the current click mode.
func (g *Game) spawnMessage(x, y int) proto.Message {
	p := geometry.ScreenToCartesian(geometry.Vector2D{X: float64(x), Y: float64(y)}, g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	if g.clickMode == ClickSpawnAgent {
		return &pb.SpawnAgent{X: p.X, Y: p.Y}
	}
	return &pb.SpawnObstacle{X: p.X, Y: p.Y}
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleClickMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.panel.Visible = !g.panel.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.panel.Contains(float64(mx), float64(my)) {
			if err := actor.Tell(g.ctx, g.worldPID, g.spawnMessage(mx, my)); err != nil {
				return fmt.Errorf("failed to send spawn command: %w", err)
			}
		}
	}
	return nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update()

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}
	if g.lastState.Err != nil {
		return g.lastState.Err
	}

	// 3. Clicks and keys, applied by the world before the next tick
	if err := g.handleInput(); err != nil {
		return err
	}

	if settings := g.panelSettings(); !proto.Equal(settings, g.sentSettings) {
		if err := actor.Tell(g.ctx, g.worldPID, settings); err != nil {
			return fmt.Errorf("failed to send settings: %w", err)
		}
		g.sentSettings = settings
	}

	if !g.paused {
		if err := actor.Tell(g.ctx, g.worldPID, &pb.Tick{}); err != nil {
			return fmt.Errorf("failed to send tick: %w", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Draw the flock from the last known snapshot
	ov := render.Overlay{TriggerRadius: g.widgetShowTrigger.Value}
	if g.widgetShowVisible.Value {
		ov.VisibleRange = g.lastState.Settings.VisibleRange
	}
	g.renderer.Draw(screen, g.lastState.Agents, g.lastState.Obstacles, ov)

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// 3. Display performance stats on the right side to avoid overlap with panel
	state := "running"
	if g.paused {
		state = "paused"
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nBoids:     %d\nObstacles: %d\nClick:     %s\nState:     %s\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.AgentCount(),
		g.lastState.ObstacleCount(),
		g.clickMode,
		state,
		g.updateAvg,
		g.drawAvg)
	x := float32(g.cfg.ScreenWidth) - 150
	vector.FillRect(screen, x-5, 5, 145, 150, hudBackground, false)
	ebitenutil.DebugPrintAt(screen, msg, int(x), 10)
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight) }
