package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/ringsom/vec"
)

// Frame palette.
var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorSample     = color.RGBA{255, 0, 0, 255}
	ColorEdge       = color.RGBA{0, 0, 0, 255}
	ColorNeuron     = color.RGBA{0, 255, 0, 255}
	ColorCaption    = color.RGBA{40, 40, 40, 255}
)

const (
	// edgeWidth is the ring stroke width in pixels.
	edgeWidth = 1.0

	// markerSegments is the number of sides of a marker polygon.
	markerSegments = 24

	captionSize = 14
)

// captionFace parses the Go regular font once.
var captionFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
})

// Draw renders one frame: white background, red city markers, the closed
// ring in black, green neuron markers and, when non-empty, the caption in
// the top-left corner. ring holds neuron positions in ring order.
//
// Complexity: O(len(samples) + len(ring)) shapes, O(W·H) pixels.
func Draw(proj Projection, samples, ring []vec.Vector, caption string) *image.RGBA {
	var (
		bounds = image.Rect(0, 0, proj.width, proj.height)
		img    = image.NewRGBA(bounds)
		r      = float32(proj.radius)
		p      vec.Vector
		i      int
	)
	draw.Draw(img, bounds, image.NewUniform(ColorBackground), image.Point{}, draw.Src)

	cities := vector.NewRasterizer(proj.width, proj.height)
	for _, p = range samples {
		addMarker(cities, proj.Project(p), r)
	}
	cities.Draw(img, bounds, image.NewUniform(ColorSample), image.Point{})

	if n := len(ring); n > 1 {
		edges := vector.NewRasterizer(proj.width, proj.height)
		for i = 0; i < n; i++ {
			addSegment(edges, proj.Project(ring[i]), proj.Project(ring[(i+1)%n]), edgeWidth)
		}
		edges.Draw(img, bounds, image.NewUniform(ColorEdge), image.Point{})
	}

	neurons := vector.NewRasterizer(proj.width, proj.height)
	for _, p = range ring {
		addMarker(neurons, proj.Project(p), r)
	}
	neurons.Draw(img, bounds, image.NewUniform(ColorNeuron), image.Point{})

	if caption != "" {
		drawCaption(img, caption, proj.radius)
	}

	return img
}

// addMarker adds a filled regular polygon approximating a disc.
func addMarker(z *vector.Rasterizer, c vec.Vector, r float32) {
	var (
		x = float32(c.X)
		y = float32(c.Y)
		k int
	)
	z.MoveTo(x+r, y)
	for k = 1; k < markerSegments; k++ {
		a := 2 * math.Pi * float64(k) / markerSegments
		z.LineTo(x+r*float32(math.Cos(a)), y+r*float32(math.Sin(a)))
	}
	z.ClosePath()
}

// addSegment adds the rectangle of width w around the segment a-b.
// Every rectangle has the same winding, so overlaps never cancel.
func addSegment(z *vector.Rasterizer, a, b vec.Vector, w float64) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return
	}
	n := vec.New(-d.Y, d.X).Scale(w / (2 * l))

	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
}

// drawCaption writes s at the top-left corner. A font that fails to load
// leaves the frame without caption.
func drawCaption(img *image.RGBA, s string, margin float64) {
	face, err := captionFace()
	if err != nil {
		return
	}
	m := int(math.Ceil(2 * margin))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ColorCaption),
		Face: face,
		Dot:  fixed.P(m, m+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// FramePath returns the file name of the frame at iteration iter inside dir.
func FramePath(dir string, iter int) string {
	return filepath.Join(dir, strconv.Itoa(iter)+".png")
}

// SaveFrame draws a frame and writes it as PNG to path, creating the parent
// directory when needed.
func SaveFrame(path string, proj Projection, samples, ring []vec.Vector, caption string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = WritePNG(f, Draw(proj, samples, ring, caption)); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}

	return f.Close()
}
