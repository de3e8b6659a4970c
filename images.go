package scenedoc

import (
	"fmt"
	"image"
	"sort"

	"github.com/goccy/go-json"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageResource is a loaded image together with its intrinsic aspect ratio
// (width / height). Data may be nil for resources whose pixels were not
// loaded, in which case drawing is a no-op but the ratio is still usable.
type ImageResource struct {
	Name  string
	Data  *ebiten.Image
	Ratio float64
}

// NewImageResource wraps img, deriving the ratio from its bounds.
func NewImageResource(name string, img *ebiten.Image) *ImageResource {
	b := img.Bounds()
	return &ImageResource{Name: name, Data: img, Ratio: ratioOf(b.Dx(), b.Dy())}
}

func ratioOf(w, h int) float64 {
	if h == 0 {
		return 0
	}
	return float64(w) / float64(h)
}

// ImageSource resolves image names to loaded resources.
type ImageSource interface {
	// Image returns the resource for name, or an error wrapping
	// ErrResourceUnavailable.
	Image(name string) (*ImageResource, error)
}

// ImageStore is an in-memory ImageSource keyed by resource name.
type ImageStore struct {
	images map[string]*ImageResource
}

// NewImageStore returns an empty store.
func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[string]*ImageResource)}
}

// Set stores res under name, replacing any previous resource.
func (s *ImageStore) Set(name string, res *ImageResource) {
	res.Name = name
	s.images[name] = res
}

// Add stores img under name.
func (s *ImageStore) Add(name string, img *ebiten.Image) {
	s.Set(name, NewImageResource(name, img))
}

// Remove deletes name from the store.
func (s *ImageStore) Remove(name string) {
	delete(s.images, name)
}

// Image implements ImageSource.
func (s *ImageStore) Image(name string) (*ImageResource, error) {
	if res, ok := s.images[name]; ok {
		return res, nil
	}
	return nil, fmt.Errorf("scenedoc: image %q: %w", name, ErrResourceUnavailable)
}

// Names returns the stored names in sorted order.
func (s *ImageStore) Names() []string {
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadAtlas parses TexturePacker JSON data and stores every frame as a named
// resource cut from the given page images. Supports both the hash format
// (single "frames" object, page 0) and the array format ("textures" array
// with per-page frame lists). A frame's ratio is taken from its untrimmed
// source size. Rotated frames are rejected.
func (s *ImageStore) LoadAtlas(jsonData []byte, pages []*ebiten.Image) error {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return fmt.Errorf("scenedoc: failed to parse atlas JSON: %w", err)
	}

	var sheets []atlasPage
	switch {
	case probe.Textures != nil:
		if err := json.Unmarshal(probe.Textures, &sheets); err != nil {
			return fmt.Errorf("scenedoc: failed to parse atlas textures array: %w", err)
		}
	case probe.Frames != nil:
		var frames map[string]atlasFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return fmt.Errorf("scenedoc: failed to parse atlas frames: %w", err)
		}
		sheets = []atlasPage{{Frames: frames}}
	default:
		return fmt.Errorf("scenedoc: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	// Validate everything before storing anything so a bad sheet leaves the
	// store untouched.
	loaded := make(map[string]*ImageResource)
	for i, sheet := range sheets {
		if i >= len(pages) || pages[i] == nil {
			return fmt.Errorf("scenedoc: atlas page %d has no image", i)
		}
		for name, f := range sheet.Frames {
			if f.Rotated {
				return fmt.Errorf("scenedoc: atlas frame %q is rotated; rotated frames are not supported", name)
			}
			rect := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
			if !rect.In(pages[i].Bounds()) {
				return fmt.Errorf("scenedoc: atlas frame %q lies outside page %d", name, i)
			}
			w, h := f.SourceSize.W, f.SourceSize.H
			if w == 0 || h == 0 {
				w, h = f.Frame.W, f.Frame.H
			}
			loaded[name] = &ImageResource{
				Data:  pages[i].SubImage(rect).(*ebiten.Image),
				Ratio: ratioOf(w, h),
			}
		}
	}
	for name, res := range loaded {
		s.Set(name, res)
	}
	return nil
}

// --- JSON structure types ---

type atlasRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type atlasSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type atlasFrame struct {
	Frame      atlasRect `json:"frame"`
	Rotated    bool      `json:"rotated"`
	SourceSize atlasSize `json:"sourceSize"`
}

type atlasPage struct {
	Image  string                `json:"image"`
	Frames map[string]atlasFrame `json:"frames"`
}
