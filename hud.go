package quadxform

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize = 14
	hudMargin   = 8
)

var (
	hudTextColor  = Color{R: 0.92, G: 0.92, B: 0.92, A: 1}
	hudErrorColor = Color{R: 1, G: 0.35, B: 0.3, A: 1}
	hudFocusColor = Color{R: 1, G: 0.85, B: 0.3, A: 1}
	hudPanelColor = Color{R: 0, G: 0, B: 0, A: 0.55}
)

const helpText = `Arrows  translate      Q/E  rotate
D/A  scale X          W/S  scale Y
L/J  shear X          I/K  shear Y
F  numeric form   R  reset   H  help   F12  screenshot`

// hud draws help, the numeric form, and the status line.
type hud struct {
	face    *text.GoTextFace
	lh      float64
	showFPS bool
	panel   *ebiten.Image
}

func newHUD(showFPS bool) (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("quadxform: failed to parse HUD font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: hudFontSize}
	m := face.Metrics()
	return &hud{
		face:    face,
		lh:      m.HAscent + m.HDescent + m.HLineGap,
		showFPS: showFPS,
	}, nil
}

func (h *hud) draw(screen *ebiten.Image, c *controller) {
	b := screen.Bounds()
	y := float64(hudMargin)

	if c.showHelp {
		y = h.drawBlock(screen, helpText, hudMargin, y, hudTextColor)
	}

	if c.editor.Active() {
		y = h.drawForm(screen, &c.editor, y)
	}

	status := fmt.Sprintf("applied: %d", c.session.Applied())
	if c.status != "" {
		status = c.status + "   " + status
	}
	col := hudTextColor
	if c.statusErr {
		col = hudErrorColor
	}
	h.drawBlock(screen, status, hudMargin, float64(b.Dy())-h.lh-hudMargin, col)

	if h.showFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			b.Dx()-90, hudMargin)
	}
}

func (h *hud) drawForm(screen *ebiten.Image, e *FormEditor, y float64) float64 {
	f := e.Form()
	for i := FormField(0); i < FormFieldCount; i++ {
		line := fmt.Sprintf("%s: %s", i.Label(), f.Fields[i])
		col := hudTextColor
		if i == e.Focus() {
			line = "> " + line + "_"
			col = hudFocusColor
		} else {
			line = "  " + line
		}
		y = h.drawBlock(screen, line, hudMargin, y, col)
	}
	return y + h.lh/2
}

// drawBlock draws s over a translucent panel and returns the y below it.
func (h *hud) drawBlock(screen *ebiten.Image, s string, x, y float64, col Color) float64 {
	w, th := text.Measure(s, h.face, h.lh)
	h.fillPanel(screen, x-4, y-2, w+8, th+4)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = h.lh
	op.ColorScale.ScaleWithColor(col.toRGBA())
	text.Draw(screen, s, h.face, op)

	return y + th + 2
}

func (h *hud) fillPanel(screen *ebiten.Image, x, y, w, hgt float64) {
	if h.panel == nil {
		h.panel = ebiten.NewImage(1, 1)
		h.panel.Fill(hudPanelColor.toRGBA())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, hgt)
	op.GeoM.Translate(x, y)
	screen.DrawImage(h.panel, op)
}
