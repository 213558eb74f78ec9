package quadxform

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.Title != "quadxform" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Width != 640 || c.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", c.Width, c.Height)
	}
	if c.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", c.ScreenshotDir)
	}
	if c.Easing == nil {
		t.Error("Easing should default to a non-nil function")
	}
}

func TestConfigKeepsExplicitValues(t *testing.T) {
	c := Config{Title: "t", Width: 100, Height: 50, ScreenshotDir: "out", Easing: ease.Linear}.withDefaults()
	if c.Title != "t" || c.Width != 100 || c.Height != 50 || c.ScreenshotDir != "out" {
		t.Errorf("config = %+v", c)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds(ApplyAffine(QuadPositions(), Translate(-0.5, 2)))
	assertNear(t, "X", b.X, -0.5)
	assertNear(t, "Y", b.Y, 2)
	assertNear(t, "Width", b.Width, 1)
	assertNear(t, "Height", b.Height, 1)
	if Bounds(nil) != (Rect{}) {
		t.Error("empty bounds should be zero")
	}
}

func TestColorToRGBA(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if got.A != 128 || got.R != 128 || got.G != 64 || got.B != 0 {
		t.Errorf("toRGBA = %+v", got)
	}
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	a, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestAppUploadsOncePerVersion(t *testing.T) {
	a := newTestApp(t, Config{})
	base := a.renderer.Uploads()

	a.syncGeometry()
	if got := a.renderer.Uploads(); got != base {
		t.Errorf("Uploads without a change = %d, want %d", got, base)
	}

	if err := a.Dispatch(CommandTranslateRight); err != nil {
		t.Fatal(err)
	}
	a.syncGeometry()
	a.syncGeometry()
	if got := a.renderer.Uploads(); got != base+1 {
		t.Errorf("Uploads after one dispatch = %d, want %d", got, base+1)
	}
	assertPoints(t, "displayed", a.displayed, a.Session().Points())

	if err := a.Dispatch(Command(99)); !errors.Is(err, ErrUnrecognizedCommand) {
		t.Errorf("err = %v, want ErrUnrecognizedCommand", err)
	}
	a.syncGeometry()
	if got := a.renderer.Uploads(); got != base+1 {
		t.Errorf("Uploads after rejected command = %d, want %d", got, base+1)
	}
	if !a.ctl.statusErr {
		t.Error("rejected command should show an error status")
	}
}

func TestAppTransitionEasesToTarget(t *testing.T) {
	a := newTestApp(t, Config{TransitionSeconds: 1, Easing: ease.Linear})
	start := a.Session().Points()

	a.Dispatch(CommandTranslateUp)
	if err := a.tick(0.5); err != nil {
		t.Fatal(err)
	}
	if a.transition == nil {
		t.Fatal("transition should start when TransitionSeconds > 0")
	}
	if a.transition.Done {
		t.Fatal("transition finished after half its duration")
	}
	// Halfway along a linear ease.
	assertNear(t, "y0 mid", a.displayed[0].Y, start[0].Y+TranslateStep/2)

	for i := 0; i < 10 && !a.transition.Done; i++ {
		a.tick(0.25)
	}
	if !a.transition.Done {
		t.Fatal("transition never finished")
	}
	assertPoints(t, "displayed", a.displayed, a.Session().Points())
	assertPoints(t, "renderer", a.renderer.positions, a.Session().Points())
}

func TestAppTerminatesAfterScreenshotsFlush(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "command", "name": "rotate-right"},
		{"action": "screenshot", "label": "last"}
	]}`)
	a := newTestApp(t, Config{Script: script, ExitOnScriptDone: true, ScreenshotDir: t.TempDir()})

	for i := 0; i < 2; i++ {
		if err := a.tick(0); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if !a.runner.Done() {
		t.Fatal("script should be done after two steps")
	}
	if len(a.screenshotQueue) != 1 {
		t.Fatalf("queue = %v, want one pending capture", a.screenshotQueue)
	}
	if err := a.tick(0); err != nil {
		t.Errorf("tick with a pending screenshot = %v, want nil", err)
	}

	a.writeScreenshots(image.NewNRGBA(image.Rect(0, 0, 2, 2)), time.Now())
	if err := a.tick(0); !errors.Is(err, ebiten.Termination) {
		t.Errorf("tick after flush = %v, want ebiten.Termination", err)
	}
	if len(a.runner.Errors()) != 0 {
		t.Errorf("script errors = %v", a.runner.Errors())
	}
}
