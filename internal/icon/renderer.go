// Package icon renders square single-glyph placeholder icons and
// writes them as PNG files.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/morlowski/lumicon/internal/config"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Spec describes one icon to produce.
type Spec struct {
	Size     int    // square edge length in pixels
	Filename string // written under the renderer's output directory
}

// SpecsFromConfig converts the configured icon list into render specs,
// preserving order.
func SpecsFromConfig(icons []config.IconConfig) []Spec {
	specs := make([]Spec, 0, len(icons))
	for _, ic := range icons {
		specs = append(specs, Spec{Size: ic.Size, Filename: ic.Filename})
	}
	return specs
}

// Renderer produces single-glyph icons according to a fixed
// configuration. It holds no mutable state; a Renderer is safe to
// reuse across calls.
type Renderer struct {
	output string
	font   string
	glyph  string
	scale  float64
	bg     color.NRGBA
	fg     color.NRGBA
}

// NewRenderer creates a Renderer from cfg. It returns an error if
// either colour literal cannot be parsed.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	bg, err := ParseHex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	fg, err := ParseHex(cfg.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	return &Renderer{
		output: cfg.Output,
		font:   cfg.Font,
		glyph:  cfg.Glyph,
		scale:  cfg.Scale,
		bg:     bg,
		fg:     fg,
	}, nil
}

// Render produces the icon image for spec entirely in memory: a
// spec.Size square filled with the background colour, with the glyph
// drawn centred in the foreground colour. The returned resolution
// reports which font produced the glyph; its Face has already been
// released and must not be used.
func (r *Renderer) Render(spec Spec) (*image.NRGBA, FontResolution) {
	// Font size is the edge length scaled down and truncated to a
	// whole number of pixels.
	fontSize := float64(int(float64(spec.Size) * r.scale))

	res := ResolveFace(r.font, fontSize)
	defer res.Face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, spec.Size, spec.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)

	// Measure the glyph's rendered bounding box for visual centring.
	bounds, _ := font.BoundString(res.Face, r.glyph)
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Integer-centred placement, shifted by the bounding-box origin so
	// the drawn pixels (not the baseline) land in the centre.
	x := (spec.Size-glyphW)/2 - bounds.Min.X.Floor()
	y := (spec.Size-glyphH)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.fg),
		Face: res.Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(r.glyph)

	return img, res
}

// Result records the outcome of writing one icon.
type Result struct {
	Spec    Spec
	Path    string     // destination path, set even on failure
	Source  FontSource // font used for the glyph
	FontErr error      // why the builtin face was selected, if it was
	Err     error      // write failure, nil on success
}

// Write renders spec and persists it as a PNG under the output
// directory, overwriting any existing file of the same name.
func (r *Renderer) Write(spec Spec) Result {
	img, res := r.Render(spec)

	result := Result{
		Spec:    spec,
		Path:    filepath.Join(r.output, spec.Filename),
		Source:  res.Source,
		FontErr: res.Err,
	}

	f, err := os.Create(result.Path)
	if err != nil {
		result.Err = fmt.Errorf("creating %s: %w", result.Path, err)
		return result
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		result.Err = fmt.Errorf("encoding %s: %w", result.Path, err)
		return result
	}
	if err := f.Close(); err != nil {
		result.Err = fmt.Errorf("writing %s: %w", result.Path, err)
	}
	return result
}
