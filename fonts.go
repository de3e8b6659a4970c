package scenedoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DefaultFontNames are the fonts the editor ships with. LoadDefaultFonts
// looks for "<name>.ttf" files.
var DefaultFontNames = []string{
	"Anton",
	"Bitter",
	"IndieFlower",
	"Oswald",
	"PermanentMarker",
	"PressStart2P",
	"Roboto",
	"VT323",
	"Yoster",
}

// FontSource resolves font names to faces.
type FontSource interface {
	// Face returns a face for name at size, or an error wrapping
	// ErrResourceUnavailable.
	Face(name string, size float64) (text.Face, error)
}

// FontStore keeps parsed TrueType/OpenType fonts by name, in registration
// order.
type FontStore struct {
	sources map[string]*text.GoTextFaceSource
	data    map[string][]byte
	names   []string
}

// NewFontStore returns an empty store.
func NewFontStore() *FontStore {
	return &FontStore{
		sources: make(map[string]*text.GoTextFaceSource),
		data:    make(map[string][]byte),
	}
}

// Register parses ttfData and stores it under name. A font already
// registered under name is replaced and moves to the end of Names.
func (s *FontStore) Register(name string, ttfData []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("scenedoc: failed to parse font %q: %w", name, err)
	}
	s.Unregister(name)
	s.sources[name] = source
	s.data[name] = ttfData
	s.names = append(s.names, name)
	return nil
}

// RegisterFile reads a font file and registers it under name.
func (s *FontStore) RegisterFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scenedoc: font %q: %w", name, err)
	}
	return s.Register(name, data)
}

// Unregister removes name. It reports whether the font was present.
func (s *FontStore) Unregister(name string) bool {
	if _, ok := s.sources[name]; !ok {
		return false
	}
	delete(s.sources, name)
	delete(s.data, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the registered font names in registration order. The
// returned slice MUST NOT be mutated by the caller.
func (s *FontStore) Names() []string {
	return s.names
}

// Data returns the raw font file registered under name.
func (s *FontStore) Data(name string) ([]byte, bool) {
	d, ok := s.data[name]
	return d, ok
}

// Face implements FontSource.
func (s *FontStore) Face(name string, size float64) (text.Face, error) {
	source, ok := s.sources[name]
	if !ok {
		return nil, fmt.Errorf("scenedoc: font %q: %w", name, ErrResourceUnavailable)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// LoadDefaultFonts registers every DefaultFontNames entry found in dir.
// Fonts that fail to load are skipped; their errors are joined in the result.
func (s *FontStore) LoadDefaultFonts(dir string) error {
	var errs []error
	for _, name := range DefaultFontNames {
		if err := s.RegisterFile(name, filepath.Join(dir, name+".ttf")); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
