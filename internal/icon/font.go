package icon

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontSource identifies which font produced a rendered glyph.
type FontSource int

const (
	// FontLoaded means the scalable font at the configured path was
	// parsed and used.
	FontLoaded FontSource = iota
	// FontBuiltin means loading failed and the built-in fixed-size
	// bitmap face was used instead.
	FontBuiltin
)

// String returns a short human-readable name for the source.
func (s FontSource) String() string {
	switch s {
	case FontLoaded:
		return "loaded"
	case FontBuiltin:
		return "builtin"
	}
	return "unknown"
}

// FontResolution is the outcome of resolving a font for one render.
// Face is always usable. When Source is FontBuiltin, Err records why
// the scalable font was not used; it is informational and never fatal.
type FontResolution struct {
	Face   font.Face
	Source FontSource
	Err    error
}

// ResolveFace loads a scalable face from the font file at path, sized
// in pixels. Any failure — missing file, unparseable data, face
// construction — selects the built-in bitmap face instead, so a usable
// face is always returned.
func ResolveFace(path string, size float64) FontResolution {
	builtin := func(err error) FontResolution {
		return FontResolution{Face: basicfont.Face7x13, Source: FontBuiltin, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return builtin(fmt.Errorf("reading font %s: %w", path, err))
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return builtin(fmt.Errorf("parsing font %s: %w", path, err))
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return builtin(fmt.Errorf("creating face for %s: %w", path, err))
	}

	return FontResolution{Face: face, Source: FontLoaded}
}
