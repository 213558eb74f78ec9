package quadxform

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the current frame. The PNG is written
// to Config.ScreenshotDir at the end of the next Draw.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots reads back the finished frame and writes every queued
// capture. Called at the end of Draw.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	a.writeScreenshots(unpremultiply(pixels, b.Dx(), b.Dy()), time.Now())
}

// writeScreenshots saves img once per queued label and empties the queue.
// Each file name carries the geometry version the frame shows.
func (a *App) writeScreenshots(img image.Image, now time.Time) {
	labels := a.screenshotQueue
	a.screenshotQueue = nil

	dir := a.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("screenshot dir unavailable", slog.String("dir", dir), slog.Any("err", err))
		return
	}
	version := a.session.Version()
	for _, label := range labels {
		path := filepath.Join(dir, screenshotName(now, version, label))
		if err := saveScreenshot(path, img); err != nil {
			Logger().Warn("screenshot failed", slog.String("label", label), slog.Any("err", err))
			continue
		}
		Logger().Info("screenshot written",
			slog.String("path", path),
			slog.Uint64("version", version),
			slog.Int("applied", a.session.Applied()))
	}
}

// screenshotName builds "quad_<time>_v<version>_<label>.png".
func screenshotName(now time.Time, version uint64, label string) string {
	return fmt.Sprintf("quad_%s_v%d_%s.png", now.Format("20060102-150405"), version, labelSlug(label))
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// saveScreenshot encodes img next to path and renames it into place, so a
// reader never sees a half-written PNG.
func saveScreenshot(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shot-*.png")
	if err != nil {
		return err
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

const maxSlugLen = 40

// labelSlug lower-cases label and collapses each run of characters outside
// [a-z0-9] into one '-'. An empty result becomes "frame".
func labelSlug(label string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(r)
			if b.Len() >= maxSlugLen {
				break
			}
			continue
		}
		sep = true
	}
	if b.Len() == 0 {
		return "frame"
	}
	return b.String()
}
