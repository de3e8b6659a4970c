package scenedoc

import (
	"math"
	"testing"
)

func assertBox(t *testing.T, name string, got, want BoundingBox) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps ||
		math.Abs(got.Width-want.Width) > eps || math.Abs(got.Height-want.Height) > eps {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestImageModifyKeepsRatio(t *testing.T) {
	store := ratioStore(map[string]float64{"wide": 2, "tall": 0.5, "square": 1})
	tests := []struct {
		name  string
		image string
		box   BoundingBox
		want  BoundingBox
	}{
		{"wide into taller box", "wide", BoundingBox{0, 0, 200, 150}, BoundingBox{0, 0, 200, 100}},
		{"wide into wider box", "wide", BoundingBox{5, 5, 400, 100}, BoundingBox{5, 5, 200, 100}},
		{"tall", "tall", BoundingBox{0, 0, 100, 100}, BoundingBox{0, 0, 50, 100}},
		{"exact fit", "square", BoundingBox{1, 2, 30, 30}, BoundingBox{1, 2, 30, 30}},
		{"zero box", "wide", BoundingBox{3, 4, 0, 0}, BoundingBox{3, 4, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage("i", "I", 0, 0, 100, 50, tt.image, true, false, store)
			img.Modify(tt.box)
			assertBox(t, "Bounds", img.Bounds(), tt.want)
		})
	}
}

func TestImageModifyUnlocked(t *testing.T) {
	store := ratioStore(map[string]float64{"wide": 2})
	img := NewImage("i", "I", 0, 0, 100, 50, "wide", false, false, store)
	box := BoundingBox{10, 20, 200, 150}
	img.Modify(box)
	assertBox(t, "Bounds", img.Bounds(), box)
}

func TestImageModifyRatioUnavailable(t *testing.T) {
	store := ratioStore(map[string]float64{"flat": 0})
	box := BoundingBox{10, 20, 200, 150}
	for _, name := range []string{"missing", "flat"} {
		img := NewImage("i", "I", 0, 0, 100, 50, name, true, false, store)
		img.Modify(box)
		assertBox(t, name, img.Bounds(), box)
	}
	img := NewImage("i", "I", 0, 0, 100, 50, "missing", true, false, nil)
	img.Modify(box)
	assertBox(t, "nil source", img.Bounds(), box)
}

func TestImageModifyNegativePanics(t *testing.T) {
	img := NewImage("i", "I", 0, 0, 100, 50, "x", true, false, nil)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on negative extent")
		}
	}()
	img.Modify(BoundingBox{0, 0, -1, 10})
}

func TestImageSetImage(t *testing.T) {
	store := ratioStore(map[string]float64{"wide": 2, "tall": 0.5, "square": 1})
	tests := []struct {
		name       string
		from, to   string
		keep       bool
		wantW      float64
		wantH      float64
		wantSource string
	}{
		// old 2 > new 1: width follows height.
		{"wide to square", "wide", "square", true, 50, 50, "square"},
		// old 0.5 <= new 1: height follows width.
		{"tall to square", "tall", "square", true, 100, 100, "square"},
		{"same ratio", "wide", "wide", true, 100, 50, "wide"},
		{"unlocked", "wide", "tall", false, 100, 50, "tall"},
		{"unknown new", "wide", "missing", true, 100, 50, "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage("i", "I", 0, 0, 100, 50, tt.from, tt.keep, false, store)
			img.SetImage(tt.to)
			if img.Width != tt.wantW || img.Height != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", img.Width, img.Height, tt.wantW, tt.wantH)
			}
			if img.Image != tt.wantSource {
				t.Errorf("Image = %q, want %q", img.Image, tt.wantSource)
			}
		})
	}
}

func TestRectModifyAdoptsBox(t *testing.T) {
	r := NewRect("r", "R", 0, 0, 1, 1, ColorWhite)
	box := BoundingBox{3, 4, 5, 6}
	r.Modify(box)
	if r.Bounds() != box {
		t.Errorf("Bounds = %v, want %v", r.Bounds(), box)
	}
}

func TestDefaultComponents(t *testing.T) {
	cat := NewCatalog()
	cat.Images = ratioStore(map[string]float64{"Play": 1})
	cat.Fonts = NewFontStore()
	doc := NewDocument(cat)

	r, _ := doc.NewComponent(RectKind)
	assertBox(t, "Rect", r.Bounds(), BoundingBox{10, 10, 40, 80})
	if c := r.(*Rect).Color; c.A != 0xFF {
		t.Errorf("default rect alpha = %v, want 0xFF", c.A)
	}

	i, _ := doc.NewComponent(ImageKind)
	img := i.(*Image)
	assertBox(t, "Image", img.Bounds(), BoundingBox{10, 10, 50, 50})
	if img.Image != "Play" || !img.KeepImageRatio || img.Source() != cat.Images {
		t.Errorf("default image = %+v", img)
	}

	x, _ := doc.NewComponent(TextKind)
	txt := x.(*Text)
	if txt.Font != DefaultFontNames[0] || txt.Size != 16 || txt.Color != ColorWhite {
		t.Errorf("default text = %+v", txt)
	}
}
