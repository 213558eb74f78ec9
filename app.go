package quadxform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Config configures Run and NewApp. Zero fields take the defaults noted.
type Config struct {
	Title  string // window title; default "quadxform"
	Width  int    // logical screen width; default 640
	Height int    // logical screen height; default 480

	// Texture is a file path or http(s) URL. The quad shows a 1x1 blue
	// placeholder until it loads, or for good if it is empty or fails.
	Texture    string
	HTTPClient *http.Client

	ShowFPS  bool
	ShowHelp bool

	// TransitionSeconds eases the drawn quad to each new geometry. Zero snaps.
	TransitionSeconds float32
	Easing            ease.TweenFunc // default ease.OutQuad

	ScreenshotDir string // default "screenshots"

	// Script is an optional JSON script (see LoadScript).
	Script           []byte
	ExitOnScriptDone bool

	// Bindings maps keys to commands; default DefaultBindings. The map is
	// copied. A binding on R, F, H or F12 replaces that key's built-in action.
	Bindings map[ebiten.Key]Command

	// Logger replaces the package logger when non-nil.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "quadxform"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Easing == nil {
		c.Easing = ease.OutQuad
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// App implements ebiten.Game around a Session.
type App struct {
	cfg      Config
	session  *Session
	ctl      *controller
	renderer *Renderer
	hud      *hud
	loader   *TextureLoader
	runner   *ScriptRunner

	transition   *Transition
	displayed    []Vec2
	drawnVersion uint64

	screenshotQueue []string
	cancel          context.CancelFunc
}

// NewApp builds the app and starts loading the texture.
func NewApp(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()
	if cfg.Logger != nil {
		SetLogger(cfg.Logger)
	}

	var runner *ScriptRunner
	if len(cfg.Script) > 0 {
		r, err := LoadScript(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("quadxform: %w", err)
		}
		runner = r
	}

	h, err := newHUD(cfg.ShowFPS)
	if err != nil {
		return nil, err
	}

	session := NewSession(QuadPositions())
	a := &App{
		cfg:       cfg,
		session:   session,
		ctl:       newController(session, cfg.Bindings),
		renderer:  NewRenderer(session.Points()),
		hud:       h,
		loader:    NewTextureLoader(cfg.HTTPClient),
		runner:    runner,
		displayed: session.Points(),
	}
	a.ctl.showHelp = cfg.ShowHelp
	a.ctl.screenshot = a.Screenshot

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if cfg.Texture != "" {
		a.loader.Load(ctx, cfg.Texture)
	}
	return a, nil
}

// Session returns the app's transform session.
func (a *App) Session() *Session {
	return a.session
}

// Dispatch applies cmd and reports the outcome on the status line.
func (a *App) Dispatch(cmd Command) error {
	_, err := a.session.Dispatch(cmd)
	a.ctl.setStatus(cmd.String(), err)
	return err
}

// Submit applies a numeric form and reports the outcome on the status line.
func (a *App) Submit(f Form) error {
	_, err := a.session.Submit(f)
	a.ctl.setStatus("form applied", err)
	return err
}

// Reset restores the startup geometry.
func (a *App) Reset() {
	a.session.Reset()
	a.ctl.setStatus("reset", nil)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.ctl.pollInput()
	return a.tick(float32(1.0 / float64(ebiten.TPS())))
}

// tick advances everything except keyboard polling by dt seconds. It returns
// ebiten.Termination once a finished script has had its screenshots written.
func (a *App) tick(dt float32) error {
	a.pollTexture()

	if a.runner != nil {
		if a.runner.Done() && a.cfg.ExitOnScriptDone && len(a.screenshotQueue) == 0 {
			return ebiten.Termination
		}
		a.runner.step(a)
	}

	a.syncGeometry()

	if a.transition != nil && !a.transition.Done {
		a.displayed = clonePoints(a.transition.Update(dt))
		a.renderer.Upload(a.displayed)
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
	a.hud.draw(screen, a.ctl)
	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Close stops any texture load and releases GPU resources.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	a.renderer.Dispose()
}

// syncGeometry pushes the session's geometry to the renderer when it changed.
func (a *App) syncGeometry() {
	v := a.session.Version()
	if v == a.drawnVersion {
		return
	}
	a.drawnVersion = v
	pts := a.session.Points()

	if a.cfg.TransitionSeconds > 0 {
		a.transition = NewTransition(a.displayed, pts, a.cfg.TransitionSeconds, a.cfg.Easing)
		return
	}
	a.transition = nil
	a.displayed = pts
	a.renderer.Upload(pts)
}

func (a *App) pollTexture() {
	img, ok, err := a.loader.Poll()
	if !ok {
		return
	}
	if err != nil {
		Logger().Warn("texture unavailable, keeping placeholder", slog.Any("err", err))
		a.ctl.setStatus("", err)
		return
	}
	a.renderer.SetTexture(img)
	Logger().Info("texture loaded", slog.String("src", a.cfg.Texture))
}

// Run opens a window and runs the app until it is closed, or until the
// script finishes when ExitOnScriptDone is set.
func Run(cfg Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ebiten.SetWindowTitle(app.cfg.Title)
	ebiten.SetWindowSize(app.cfg.Width, app.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
