package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/anchor/assets"
	"github.com/OpticalFlyer/anchor/camera"
	"github.com/OpticalFlyer/anchor/layout"
	"github.com/OpticalFlyer/anchor/render"
	"github.com/OpticalFlyer/anchor/ui"
)

const (
	defaultLayout = "layout.toml"
	fontSize      = 24
)

// Anchor implements ebiten.Game interface.
type Anchor struct {
	renderer   *render.Renderer
	canvas     *ui.Canvas
	factory    *render.Factory
	background color.RGBA
	debugMode  bool
	window     layout.Window

	reloads    chan *layout.Document
	lastUpdate time.Time

	// Pointer dragging state
	dragging   ui.Node
	lastMouseX int
	lastMouseY int

	lastZoomTime time.Time

	// Touch state for multi-touch interactions
	lastTouchX map[ebiten.TouchID]float32
	lastTouchY map[ebiten.TouchID]float32
}

func (g *Anchor) Update() error {
	select {
	case doc := <-g.reloads:
		g.apply(doc)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cyclePivots(ebiten.IsKeyPressed(ebiten.KeyShift))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.canvas.Camera().Reset()
	}

	// Keyboard zooming
	cam := g.canvas.Camera()
	w, h := g.renderer.BackBuffer().Dimensions()
	mid := math32.Vec2(float32(w)/2, float32(h)/2)
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		cam.ZoomAtPoint(true, mid)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		cam.ZoomAtPoint(false, mid)
	}

	// Mouse wheel zooming, throttled
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && time.Since(g.lastZoomTime) > 100*time.Millisecond {
		x, y := ebiten.CursorPosition()
		cam.ZoomAtPoint(wheelY > 0, math32.Vec2(float32(x), float32(y)))
		g.lastZoomTime = time.Now()
	}

	// Keyboard panning
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		cam.Pan(camera.PanLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		cam.Pan(camera.PanRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		cam.Pan(camera.PanUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		cam.Pan(camera.PanDown)
	}

	g.handleMouse()
	g.handleTouchEvents()

	now := time.Now()
	dt := float32(now.Sub(g.lastUpdate).Seconds())
	g.lastUpdate = now
	g.canvas.Update(dt)
	return nil
}

func (g *Anchor) Draw(screen *ebiten.Image) {
	g.renderer.Clear(g.background)
	g.canvas.Render(g.renderer)
	if g.debugMode {
		g.canvas.DebugRender(g.renderer)
	}
	g.renderer.Present(screen)

	if g.debugMode {
		dims := g.canvas.Dimensions()
		cam := g.canvas.Camera()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nCanvas: %.0fx%.0f (%.3f)\nNodes: %d\nZoom: %.2f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), dims.X, dims.Y, g.canvas.AspectRatio(),
			countNodes(&g.canvas.Element), cam.Zoom()))
	}
}

func (g *Anchor) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.renderer.Resize(outsideWidth, outsideHeight) {
		if err := g.canvas.SetTargetTexture(g.renderer, nil); err != nil {
			log.Printf("Error resizing canvas: %v", err)
		}
	}
	return outsideWidth, outsideHeight
}

// apply rebuilds the tree from doc and applies its window and canvas
// settings. A document that fails to build leaves the current tree in place.
// The canvas and its camera are replaced only when the reference resolution
// changes.
func (g *Anchor) apply(doc *layout.Document) {
	bg, err := layout.ParseColor(doc.Canvas.Background)
	if doc.Canvas.Background == "" || err != nil {
		bg = color.RGBA{A: 255}
	}
	staging, err := ui.NewCanvas(g.renderer, nil, doc.Canvas.ReferenceResolution)
	if err != nil {
		log.Printf("Error creating canvas: %v", err)
		return
	}
	if err := layout.Build(doc, staging, g.factory); err != nil {
		log.Printf("Error building layout: %v", err)
		return
	}
	g.dragging = nil
	if g.canvas == nil || g.canvas.ReferenceResolution() != staging.ReferenceResolution() {
		if g.canvas != nil {
			g.canvas.Destroy()
		}
		g.canvas = staging
	} else {
		g.canvas.DestroyAllChildren()
		for _, n := range staging.Children() {
			staging.RemoveChild(n)
			g.canvas.AddChild(n)
		}
		g.canvas.SetParentCanvasRecursive(g.canvas)
	}
	g.background = bg
	g.debugMode = g.debugMode || doc.Canvas.Debug

	if doc.Window.Title != g.window.Title {
		ebiten.SetWindowTitle(doc.Window.Title)
	}
	if doc.Window.Width != g.window.Width || doc.Window.Height != g.window.Height {
		ebiten.SetWindowSize(doc.Window.Width, doc.Window.Height)
	}
	g.window = doc.Window
}

// cyclePivots steps the pivot of every top-level element.
func (g *Anchor) cyclePivots(backward bool) {
	for _, n := range g.canvas.Children() {
		e := n.AsElement()
		p := pivotOf(e.Pivot())
		if backward {
			p = p.Prev()
		} else {
			p = p.Next()
		}
		e.SetPivotPosition(p)
	}
}

func pivotOf(r ui.Ratio) ui.PivotPosition {
	for p := ui.PivotCenter; ; p = p.Next() {
		if p.Ratio() == r {
			return p
		}
		if p == ui.PivotLeft {
			return ui.PivotCenter
		}
	}
}

func countNodes(e *ui.Element) int {
	n := 1
	for _, c := range e.Children() {
		n += countNodes(c.AsElement())
	}
	return n
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	ui.SetLogger(logger)
	render.SetLogger(logger)
	assets.SetLogger(logger)
	layout.SetLogger(logger)

	path := defaultLayout
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	doc, err := layout.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	font, err := render.DefaultFont(fontSize)
	if err != nil {
		log.Fatal(err)
	}
	app := &Anchor{
		renderer: render.NewRenderer(doc.Window.Width, doc.Window.Height),
		factory: &render.Factory{
			Dir:      filepath.Dir(path),
			Face:     font,
			Textures: render.NewTextureCache(),
		},
		reloads:      make(chan *layout.Document, 1),
		lastUpdate:   time.Now(),
		lastZoomTime: time.Now(),
	}
	app.apply(doc)
	if app.canvas == nil {
		log.Fatalf("Cannot build %s", path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = layout.Watch(ctx, path, func(doc *layout.Document, err error) {
		if err != nil {
			log.Printf("Error reloading %s: %v", path, err)
			return
		}
		select {
		case app.reloads <- doc:
		default:
		}
	})
	if err != nil {
		log.Printf("Hot reload disabled: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
