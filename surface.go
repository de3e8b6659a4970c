package scenedoc

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Surface is the drawing target components paint onto. Coordinates are in
// document space; the surface applies no implicit offset.
type Surface interface {
	// FillRect fills box with a solid color.
	FillRect(box BoundingBox, c Color)

	// DrawImage stretches img over box. dither selects the smoothing
	// variant of the surface's image filter.
	DrawImage(img *ebiten.Image, box BoundingBox, dither bool)

	// DrawText draws s with face, top-left aligned to box.
	DrawText(s string, face text.Face, box BoundingBox, c Color)
}

// WhitePixel is a 1x1 white image scaled up to fill solid rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite)
}

// EbitenSurface draws onto an *ebiten.Image. Offset shifts every draw call
// and is how a viewport scrolls the document; it defaults to zero.
type EbitenSurface struct {
	Target           *ebiten.Image
	OffsetX, OffsetY float64

	op ebiten.DrawImageOptions
}

// NewEbitenSurface wraps target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Target: target}
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(box BoundingBox, c Color) {
	if box.Empty() {
		return
	}
	op := &s.op
	op.GeoM.Reset()
	op.GeoM.Scale(box.Width, box.Height)
	op.GeoM.Translate(box.X+s.OffsetX, box.Y+s.OffsetY)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterNearest
	s.Target.DrawImage(WhitePixel, op)
}

// DrawImage implements Surface.
func (s *EbitenSurface) DrawImage(img *ebiten.Image, box BoundingBox, dither bool) {
	if img == nil || box.Empty() {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &s.op
	op.GeoM.Reset()
	op.GeoM.Scale(box.Width/float64(b.Dx()), box.Height/float64(b.Dy()))
	op.GeoM.Translate(box.X+s.OffsetX, box.Y+s.OffsetY)
	op.ColorScale.Reset()
	op.Filter = ebiten.FilterNearest
	if dither {
		op.Filter = ebiten.FilterLinear
	}
	s.Target.DrawImage(img, op)
}

// DrawText implements Surface.
func (s *EbitenSurface) DrawText(str string, face text.Face, box BoundingBox, c Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(box.X+s.OffsetX, box.Y+s.OffsetY)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.Target, str, face, op)
}
