package imagepkg

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

var (
	// ErrNoBackground is returned by Compose when the canvas is missing.
	ErrNoBackground = errors.New("background image is required")

	errEmptyImage = errors.New("fetcher returned no image")
)

// Slot is where one outfit layer lands on the canvas.
type Slot struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Point returns the top-left corner of the slot.
func (s Slot) Point() image.Point {
	return image.Pt(s.X, s.Y)
}

// Layer is an outfit image and its slot. A nil Image is skipped.
type Layer struct {
	Image *image.NRGBA
	Slot  Slot
}

// Placement is an already-sized image pasted at Pos.
type Placement struct {
	Image *image.NRGBA
	Pos   image.Point
}

// Compose pastes the outfit layers, then avatar, then weapon, then any overlays onto a
// copy of background. Every paste uses the source alpha as its mask, so later pastes
// cover earlier ones only where they are opaque. Nil placements are skipped.
func Compose(background *image.NRGBA, layers []Layer, avatar, weapon *Placement, overlays ...*Placement) (*image.NRGBA, error) {
	if background == nil {
		return nil, ErrNoBackground
	}
	canvas := imaging.Clone(background)

	for _, l := range layers {
		if l.Image == nil {
			continue
		}
		resized := Resize(l.Image, l.Slot.Width, l.Slot.Height)
		canvas = PasteMasked(canvas, resized, l.Slot.Point())
	}

	for _, p := range append([]*Placement{avatar, weapon}, overlays...) {
		if p == nil || p.Image == nil {
			continue
		}
		canvas = PasteMasked(canvas, p.Image, p.Pos)
	}

	return canvas, nil
}

// PasteMasked draws img over canvas at pos, blending with img's own alpha.
func PasteMasked(canvas *image.NRGBA, img image.Image, pos image.Point) *image.NRGBA {
	return imaging.Overlay(canvas, img, pos, 1.0)
}
