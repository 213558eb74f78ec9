package quadxform

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// quadShaderSrc samples the bound texture at the interpolated texel
// coordinate. Vertex colors are premultiplied white, so the multiply only
// matters if a tint is ever set.
const quadShaderSrc = `//kage:unit pixels
package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos) * color
}
`

// placeholderColor is shown until the real texture arrives.
var placeholderColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// placeholderImage returns the 1x1 stand-in texture.
func placeholderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, placeholderColor)
	return img
}

// Renderer draws the textured quad. It keeps its own copy of the geometry
// and rebuilds the vertex buffer only after Upload, SetTexture, or a screen
// resize.
type Renderer struct {
	// ClearColor fills the target before the quad is drawn. The zero value is
	// transparent black.
	ClearColor Color

	texture     *ebiten.Image
	placeholder bool

	shader       *ebiten.Shader
	shaderFailed bool

	positions []Vec2
	texcoords []Vec2
	verts     []ebiten.Vertex
	indices   []uint32
	dirty     bool
	lastW     int
	lastH     int
	uploads   int
	rebuilds  int
}

// NewRenderer creates a renderer showing positions with the placeholder
// texture bound.
func NewRenderer(positions []Vec2) *Renderer {
	r := &Renderer{
		texture:     ebiten.NewImageFromImage(placeholderImage()),
		placeholder: true,
		texcoords:   QuadTexCoords(),
	}
	r.Upload(positions)
	return r
}

// Upload replaces the geometry drawn on the next frame.
func (r *Renderer) Upload(points []Vec2) {
	r.positions = clonePoints(points)
	r.dirty = true
	r.uploads++
}

// SetTexture replaces the bound texture. The previous texture is released.
func (r *Renderer) SetTexture(img image.Image) {
	if img == nil {
		return
	}
	if r.texture != nil {
		r.texture.Deallocate()
	}
	r.texture = ebiten.NewImageFromImage(img)
	r.placeholder = false
	r.dirty = true
}

// HasTexture reports whether a real texture replaced the placeholder.
func (r *Renderer) HasTexture() bool {
	return !r.placeholder
}

// Draw clears target and draws the quad.
func (r *Renderer) Draw(target *ebiten.Image) {
	target.Fill(r.ClearColor.toRGBA())

	b := target.Bounds()
	w, h := b.Dx(), b.Dy()
	if r.dirty || w != r.lastW || h != r.lastH {
		tb := r.texture.Bounds()
		r.verts = buildVertices(r.verts[:0], r.positions, r.texcoords, w, h, tb.Dx(), tb.Dy())
		r.indices = r.indices[:0]
		for i := range r.verts {
			r.indices = append(r.indices, uint32(i))
		}
		r.lastW, r.lastH = w, h
		r.dirty = false
		r.rebuilds++
	}
	if len(r.verts) == 0 {
		return
	}

	if sh := r.ensureShader(); sh != nil {
		op := &ebiten.DrawTrianglesShaderOptions{}
		op.Images[0] = r.texture
		target.DrawTrianglesShader32(r.verts, r.indices, sh, op)
		return
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	target.DrawTriangles32(r.verts, r.indices, r.texture, op)
}

// ensureShader compiles the quad shader once. A failed compile is logged and
// the plain DrawTriangles32 path is used from then on.
func (r *Renderer) ensureShader() *ebiten.Shader {
	if r.shader != nil || r.shaderFailed {
		return r.shader
	}
	s, err := ebiten.NewShader([]byte(quadShaderSrc))
	if err != nil {
		r.shaderFailed = true
		Logger().Warn("quad shader compile failed, using fixed pipeline", slog.Any("err", err))
		return nil
	}
	r.shader = s
	return s
}

// Dispose releases GPU resources.
func (r *Renderer) Dispose() {
	if r.texture != nil {
		r.texture.Deallocate()
		r.texture = nil
	}
	if r.shader != nil {
		r.shader.Deallocate()
		r.shader = nil
	}
}

// buildVertices maps clip-space positions and normalized texcoords into
// screen pixels and texels, appending to dst. Clip-space y points up; screen y
// points down. Vertices without a matching texcoord sample (0, 0).
func buildVertices(dst []ebiten.Vertex, positions, texcoords []Vec2, screenW, screenH, texW, texH int) []ebiten.Vertex {
	sw, sh := float64(screenW), float64(screenH)
	tw, th := float64(texW), float64(texH)
	for i, p := range positions {
		var uv Vec2
		if i < len(texcoords) {
			uv = texcoords[i]
		}
		dst = append(dst, ebiten.Vertex{
			DstX:   float32((p.X + 1) / 2 * sw),
			DstY:   float32((1 - p.Y) / 2 * sh),
			SrcX:   float32(uv.X * tw),
			SrcY:   float32(uv.Y * th),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	return dst
}

// Uploads returns how many times geometry has been uploaded.
func (r *Renderer) Uploads() int {
	return r.uploads
}
