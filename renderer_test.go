package quadxform

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBuildVerticesClipToScreen(t *testing.T) {
	verts := buildVertices(nil, QuadPositions(), QuadTexCoords(), 640, 480, 256, 128)
	if len(verts) != QuadVertexCount {
		t.Fatalf("len = %d, want %d", len(verts), QuadVertexCount)
	}

	// (0,0) is the screen center; (1,1) is the top-right corner.
	assertNear(t, "v0.DstX", float64(verts[0].DstX), 320)
	assertNear(t, "v0.DstY", float64(verts[0].DstY), 240)
	assertNear(t, "v5.DstX", float64(verts[5].DstX), 640)
	assertNear(t, "v5.DstY", float64(verts[5].DstY), 0)

	// Texcoords scale to texels.
	assertNear(t, "v1.SrcY", float64(verts[1].SrcY), 128)
	assertNear(t, "v2.SrcX", float64(verts[2].SrcX), 256)

	for i, v := range verts {
		if v.ColorR != 1 || v.ColorG != 1 || v.ColorB != 1 || v.ColorA != 1 {
			t.Errorf("vertex %d color = (%v,%v,%v,%v), want white", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestBuildVerticesNegativeClip(t *testing.T) {
	verts := buildVertices(nil, []Vec2{{-1, -1}}, nil, 100, 50, 1, 1)
	assertNear(t, "DstX", float64(verts[0].DstX), 0)
	assertNear(t, "DstY", float64(verts[0].DstY), 50)
	// Missing texcoords sample the origin.
	assertNear(t, "SrcX", float64(verts[0].SrcX), 0)
}

func TestBuildVerticesAppends(t *testing.T) {
	buf := buildVertices(nil, QuadPositions(), QuadTexCoords(), 10, 10, 1, 1)
	buf = buildVertices(buf[:0], QuadPositions()[:2], QuadTexCoords(), 10, 10, 1, 1)
	if len(buf) != 2 {
		t.Errorf("len = %d, want 2", len(buf))
	}
}

func TestBuildVerticesNonFinitePassesThrough(t *testing.T) {
	verts := buildVertices(nil, []Vec2{{math.NaN(), 0}}, nil, 10, 10, 1, 1)
	if !math.IsNaN(float64(verts[0].DstX)) {
		t.Errorf("DstX = %v, want NaN", verts[0].DstX)
	}
}

func TestPlaceholderImage(t *testing.T) {
	img := placeholderImage()
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("bounds = %v, want 1x1", b)
	}
	if got := img.RGBAAt(0, 0); got != placeholderColor {
		t.Errorf("pixel = %v, want %v", got, placeholderColor)
	}
}

func TestRendererDrawRebuildsOnlyWhenNeeded(t *testing.T) {
	r := NewRenderer(QuadPositions())
	defer r.Dispose()
	screen := ebiten.NewImage(64, 32)

	r.Draw(screen)
	if r.rebuilds != 1 {
		t.Fatalf("rebuilds after first Draw = %d, want 1", r.rebuilds)
	}
	r.Draw(screen)
	if r.rebuilds != 1 {
		t.Errorf("rebuilds after unchanged Draw = %d, want 1", r.rebuilds)
	}

	r.Upload(ApplyAffine(QuadPositions(), Translate(-1, 0)))
	r.Draw(screen)
	if r.rebuilds != 2 {
		t.Errorf("rebuilds after Upload = %d, want 2", r.rebuilds)
	}
	assertNear(t, "v0.DstX", float64(r.verts[0].DstX), 0)

	bigger := ebiten.NewImage(128, 32)
	r.Draw(bigger)
	if r.rebuilds != 3 {
		t.Errorf("rebuilds after resize = %d, want 3", r.rebuilds)
	}
	// (0,1) after translating by -1 is the left edge, top row.
	assertNear(t, "v5.DstX", float64(r.verts[5].DstX), 64)
	assertNear(t, "v5.DstY", float64(r.verts[5].DstY), 0)
	if len(r.indices) != QuadVertexCount {
		t.Errorf("indices = %d, want %d", len(r.indices), QuadVertexCount)
	}
}
