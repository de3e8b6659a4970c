package scenedoc

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"gopkg.in/yaml.v3"
)

// Config describes the resources and policies of an editor or preview
// session. Relative paths are resolved against Dir.
type Config struct {
	// Dir is the base directory for relative paths. LoadConfig sets it to the
	// directory holding the config file.
	Dir string `yaml:"-"`

	Images  []ImageFile `yaml:"images"`
	Atlases []AtlasFile `yaml:"atlases"`
	Fonts   []FontFile  `yaml:"fonts"`

	// FontDir, when set, is searched for every default font.
	FontDir string `yaml:"fontDir"`

	// IDs names the uniqueness policy: "suffix" (default), "passthrough" or
	// "uuid".
	IDs string `yaml:"ids"`

	Debug bool `yaml:"debug"`
}

// ImageFile is a named image loaded from disk.
type ImageFile struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// AtlasFile is a TexturePacker sheet: its JSON description and page images.
type AtlasFile struct {
	JSON  string   `yaml:"json"`
	Pages []string `yaml:"pages"`
}

// FontFile is a named font loaded from disk.
type FontFile struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// DefaultConfig returns a config with no resources and the suffix policy.
func DefaultConfig() *Config {
	return &Config{IDs: "suffix"}
}

// ParseConfig decodes YAML config data. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scenedoc: parse config: %w", err)
	}
	if _, ok := IDPolicyByName(cfg.IDs); !ok {
		return nil, fmt.Errorf("scenedoc: parse config: unknown id policy %q", cfg.IDs)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenedoc: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// IDPolicy returns the configured uniqueness policy.
func (c *Config) IDPolicy() IDPolicy {
	p, ok := IDPolicyByName(c.IDs)
	if !ok {
		return SuffixIDs{}
	}
	return p
}

func (c *Config) path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// LoadResources builds an image store and a font store from the config.
// Every resource that loads is kept; failures are joined in the error so a
// partially broken config still yields usable stores.
func (c *Config) LoadResources() (*ImageStore, *FontStore, error) {
	images := NewImageStore()
	fonts := NewFontStore()
	var errs []error

	for _, f := range c.Images {
		img, _, err := ebitenutil.NewImageFromFile(c.path(f.Path))
		if err != nil {
			errs = append(errs, fmt.Errorf("scenedoc: image %q: %w", f.Name, err))
			continue
		}
		images.Add(f.Name, img)
	}

	for _, a := range c.Atlases {
		if err := c.loadAtlas(images, a); err != nil {
			errs = append(errs, err)
		}
	}

	if c.FontDir != "" {
		if err := fonts.LoadDefaultFonts(c.path(c.FontDir)); err != nil {
			errs = append(errs, err)
		}
	}
	for _, f := range c.Fonts {
		if err := fonts.RegisterFile(f.Name, c.path(f.Path)); err != nil {
			errs = append(errs, err)
		}
	}

	return images, fonts, errors.Join(errs...)
}

func (c *Config) loadAtlas(images *ImageStore, a AtlasFile) error {
	data, err := os.ReadFile(c.path(a.JSON))
	if err != nil {
		return fmt.Errorf("scenedoc: atlas %q: %w", a.JSON, err)
	}
	pages := make([]*ebiten.Image, len(a.Pages))
	for i, p := range a.Pages {
		img, _, err := ebitenutil.NewImageFromFile(c.path(p))
		if err != nil {
			return fmt.Errorf("scenedoc: atlas %q page %d: %w", a.JSON, i, err)
		}
		pages[i] = img
	}
	if err := images.LoadAtlas(data, pages); err != nil {
		return fmt.Errorf("scenedoc: atlas %q: %w", a.JSON, err)
	}
	return nil
}

// Apply loads the config's resources into cat, sets the debug mode and
// returns a document using the configured id policy. Resource errors are
// returned alongside a usable document.
func (c *Config) Apply(cat *Catalog) (*Document, error) {
	SetDebugMode(c.Debug)
	images, fonts, err := c.LoadResources()
	cat.Images = images
	cat.Fonts = fonts
	doc := NewDocument(cat)
	doc.SetIDPolicy(c.IDPolicy())
	return doc, err
}
