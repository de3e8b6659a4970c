package scenedoc

import (
	"math"

	"github.com/goccy/go-json"
)

// ImageKind is the registry tag of Image.
const ImageKind = "Image"

// Image draws a named image resource stretched over its box. With
// KeepImageRatio set, resizing preserves the resource's intrinsic ratio.
type Image struct {
	Base
	Rectangular
	Image          string `json:"image"`
	KeepImageRatio bool   `json:"keepImageRatio"`
	Dithering      bool   `json:"dithering"`

	src ImageSource
}

// NewImage returns an image component resolving resources through src.
// src may be nil, in which case every resource is unavailable.
func NewImage(id, name string, x, y, w, h float64, image string, keepRatio, dithering bool, src ImageSource) *Image {
	return &Image{
		Base:           Base{ID: id, Name: name},
		Rectangular:    Rectangular{X: x, Y: y, Width: w, Height: h},
		Image:          image,
		KeepImageRatio: keepRatio,
		Dithering:      dithering,
		src:            src,
	}
}

// Kind implements Component.
func (img *Image) Kind() string { return ImageKind }

// Draw implements Component. Nothing is drawn while the resource is
// unavailable.
func (img *Image) Draw(s Surface) {
	res := img.resource(img.Image)
	if res == nil || res.Data == nil {
		return
	}
	s.DrawImage(res.Data, img.Bounds(), img.Dithering)
}

// Modify implements Component. Position is always adopted. With the ratio
// lock on, the size is the largest box of the resource's ratio that fits
// into box; if the ratio is unknown the size is adopted as is.
func (img *Image) Modify(box BoundingBox) {
	box.mustValid()
	img.X, img.Y = box.X, box.Y

	if img.KeepImageRatio {
		if ratio, ok := img.ratio(img.Image); ok {
			img.Width = math.Min(box.Width, box.Height*ratio)
			img.Height = math.Min(box.Height, box.Width/ratio)
			return
		}
		debugf("image %q: ratio unavailable, resizing without lock", img.Image)
	}
	img.Width, img.Height = box.Width, box.Height
}

// SetImage switches the backing resource. When the ratio lock is on and both
// ratios are known, one side is re-derived from the other: width from height
// if the old ratio was wider, height from width otherwise.
func (img *Image) SetImage(name string) {
	if img.KeepImageRatio {
		oldRatio, okOld := img.ratio(img.Image)
		ratio, okNew := img.ratio(name)
		if okOld && okNew {
			if oldRatio > ratio {
				img.Width = img.Height * ratio
			} else {
				img.Height = img.Width / ratio
			}
		}
	}
	img.Image = name
}

// Source returns the image source the component resolves through.
func (img *Image) Source() ImageSource { return img.src }

func (img *Image) resource(name string) *ImageResource {
	if img.src == nil {
		return nil
	}
	res, err := img.src.Image(name)
	if err != nil {
		debugf("%v", err)
		return nil
	}
	return res
}

func (img *Image) ratio(name string) (float64, bool) {
	res := img.resource(name)
	if res == nil || !(res.Ratio > 0) || math.IsInf(res.Ratio, 0) {
		return 0, false
	}
	return res.Ratio, true
}

// MarshalJSON implements json.Marshaler.
func (img *Image) MarshalJSON() ([]byte, error) {
	type payload Image
	p := payload(*img)
	p.ClickAction = orEmpty(p.ClickAction)
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{ImageKind, p})
}

func newDefaultImage(cat *Catalog) Factory[Component] {
	return func(ctx NewContext) Component {
		return NewImage(ctx.unique(ImageKind), ImageKind, 10, 10, 50, 50, "Play", true, false, cat.Images)
	}
}

func decodeImage(obj Object, cat *Catalog) (Component, error) {
	r := obj.Fields(ImageKind)
	img := &Image{
		Base:           decodeBase(r, cat),
		Rectangular:    decodeRectangular(r),
		Image:          r.String("image"),
		KeepImageRatio: r.OptBool("keepImageRatio", false),
		Dithering:      r.OptBool("dithering", false),
		src:            cat.Images,
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return img, nil
}
