package quadxform

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type textureResult struct {
	img image.Image
	err error
}

// TextureLoader decodes a texture in the background. The game loop never
// blocks on it; Poll hands over the result once it exists.
type TextureLoader struct {
	client  *http.Client
	results chan textureResult
	pending bool
}

// NewTextureLoader returns a loader. A nil client means http.DefaultClient.
func NewTextureLoader(client *http.Client) *TextureLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &TextureLoader{
		client:  client,
		results: make(chan textureResult, 1),
	}
}

// Load starts decoding src, an http(s) URL or a file path. A load already in
// flight is superseded: only the newest result is delivered.
func (l *TextureLoader) Load(ctx context.Context, src string) {
	results := make(chan textureResult, 1)
	l.results = results
	l.pending = true
	go func() {
		img, err := l.fetch(ctx, src)
		if err != nil {
			err = fmt.Errorf("quadxform: load texture %s: %w", src, err)
		}
		results <- textureResult{img: img, err: err}
	}()
}

// Poll returns the decoded image once ready. ok is false while nothing new is
// available.
func (l *TextureLoader) Poll() (img image.Image, ok bool, err error) {
	if !l.pending {
		return nil, false, nil
	}
	select {
	case res := <-l.results:
		l.pending = false
		return res.img, true, res.err
	default:
		return nil, false, nil
	}
}

// Pending reports whether a load is in flight.
func (l *TextureLoader) Pending() bool {
	return l.pending
}

func (l *TextureLoader) fetch(ctx context.Context, src string) (image.Image, error) {
	if isRemote(src) {
		return l.fetchHTTP(ctx, src)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeTexture(f)
}

func (l *TextureLoader) fetchHTTP(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return decodeTexture(resp.Body)
}

func decodeTexture(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	b := img.Bounds()
	Logger().Info("texture decoded", slog.String("format", format),
		slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
	return img, nil
}

func isRemote(src string) bool {
	s := strings.ToLower(src)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
