package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dimas-aryo/ornawheel/internal/catalog"
	"github.com/dimas-aryo/ornawheel/internal/config"
	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/input"
	"github.com/dimas-aryo/ornawheel/internal/rig"
	"github.com/dimas-aryo/ornawheel/internal/scroll"
	"github.com/dimas-aryo/ornawheel/internal/showcase"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColRod     = rl.NewColor(90, 90, 100, 255)   // Connector metal
	ColHub     = rl.NewColor(120, 120, 130, 255)
	ColCard    = rl.NewColor(235, 235, 235, 255)
)

// Card face extents in world units.
const (
	CardW = 2.0
	CardH = 2.6
	CardT = 0.08
)

type App struct {
	Show    *showcase.State
	Cfg     *config.Config
	RigCfg  rig.Config
	Pose    rig.Pose
	Offset  geom.Vec3 // pivot + wheel offset, applied to all layout output
	Camera  rl.Camera3D
	Font    rl.Font
	AssetDir string

	// Textures by record id, loaded one per frame so the spinner stays
	// responsive; records still waiting sit in pending.
	Textures  map[int]rl.Texture2D
	pending   []catalog.Record
	CardModel rl.Model

	ScrollSeq  scroll.Sequence
	ScrollProg *scroll.Progress

	width, height int
	spin          float32 // spinner phase, degrees
}

func initWindow() {
	rl.InitWindow(1280, 720, "ornawheel")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds the scene from a config and catalog. The window must
// already be initialized.
func NewApp(cfg *config.Config, records []catalog.Record, assetDir string) (*App, error) {
	opts := showcase.Options{
		Motion:         cfg.MotionParams(),
		Layout:         cfg.LayoutConfig(),
		ClickThreshold: cfg.ClickThreshold,
	}
	show, err := showcase.New(records, opts)
	if err != nil {
		return nil, err
	}

	a := &App{
		Show:       show,
		Cfg:        cfg,
		RigCfg:     cfg.RigConfig(),
		Font:       loadFont(),
		AssetDir:   assetDir,
		Textures:   make(map[int]rl.Texture2D, len(records)),
		pending:    append([]catalog.Record(nil), records...),
		ScrollSeq:  scroll.DefaultSequence(len(records)),
		ScrollProg: scroll.NewProgress(cfg.Scroll.Speed),
	}
	a.Offset = a.RigCfg.Pivot.Add(rig.WheelOffset(a.RigCfg.WheelRadius, show.LayoutConfig().Axis))
	a.CardModel = rl.LoadModelFromMesh(rl.GenMeshCube(CardW, CardH, CardT))

	show.SetHitTester(a.pickCard)
	a.applyViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
	return a, nil
}

// Run opens the window and drives the scene until close.
func Run(cfg *config.Config, records []catalog.Record, assetDir string) error {
	initWindow()
	defer rl.CloseWindow()

	app, err := NewApp(cfg, records, assetDir)
	if err != nil {
		return err
	}
	defer app.unload()

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return nil
}

// applyViewport re-solves the camera pose for a new viewport. A viewport
// that is not ready yet is a no-op; the next frame retries.
func (a *App) applyViewport(w, h int) {
	pose, err := rig.Solve(a.RigCfg, w, h)
	if err != nil {
		return
	}
	a.width, a.height = w, h
	a.Pose = pose
	a.Camera = rl.NewCamera3D(
		vec3(pose.Position),
		vec3(pose.Target),
		vec3(pose.Up),
		float32(pose.FOVDeg),
		rl.CameraPerspective,
	)
}

// pointerSample reads the primary pointer: first touch point when present,
// otherwise the mouse with the left button only. Both feed the same stream
// so touch drags and mouse drags behave identically.
func pointerSample() input.Sample {
	if rl.GetTouchPointCount() > 0 {
		p := rl.GetTouchPosition(0)
		return input.Sample{Down: true, X: float64(p.X), Y: float64(p.Y)}
	}
	p := rl.GetMousePosition()
	return input.Sample{
		Down: rl.IsMouseButtonDown(rl.MouseLeftButton),
		X:    float64(p.X),
		Y:    float64(p.Y),
	}
}

func (a *App) Update() {
	dt := float64(rl.GetFrameTime())

	if w, h := rl.GetScreenWidth(), rl.GetScreenHeight(); w != a.width || h != a.height {
		a.applyViewport(w, h)
	}

	a.loadNextTexture()

	a.Show.Advance(dt, pointerSample())

	// Page choreography rides the mouse wheel.
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		a.ScrollProg.Advance(float64(-wheelMove) * a.Cfg.Scroll.WheelStep)
	}
	a.ScrollProg.Update(dt)

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Show.ToggleAutoPlay()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.Show.ClearSelection()
	}

	a.spin += float32(dt) * 360
}

// pickCard resolves a screen point to a record id via the analytic ray
// test; the pivot group is owned directly, never located by scene search.
func (a *App) pickCard(x, y float64) (int, bool) {
	axis := a.Show.LayoutConfig().Axis
	idx, ok := rig.PickCard(a.Pose, a.Show.Frame().Cards, a.Offset, axis, CardW, CardH, x, y, a.width, a.height)
	if !ok {
		return 0, false
	}
	rec, ok := a.Show.RecordByIndex(idx)
	if !ok {
		return 0, false
	}
	return rec.ID, true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	a.RenderWheel()
	rl.EndMode3D()

	a.DrawScrollSection()
	a.DrawOverlay()

	rl.EndDrawing()
}

func (a *App) unload() {
	for _, tex := range a.Textures {
		rl.UnloadTexture(tex)
	}
	rl.UnloadModel(a.CardModel)
	rl.UnloadFont(a.Font)
}

func vec3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
