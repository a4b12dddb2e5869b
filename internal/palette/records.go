package palette

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// Record type tags.
const (
	TypeColor      = "Color"
	TypeThemeColor = "ThemeColor"
	TypeTheme      = "PaletteTheme"
	TypePalette    = "Palette"
)

// RecordVersion is the version written by this package. Readers fall back
// to it for any version they do not know.
const RecordVersion = 1

// ColorRecord is the persisted form of a Color.
type ColorRecord struct {
	Type    string `json:"_t" yaml:"_t"`
	Version int    `json:"_v" yaml:"_v"`
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Fg      string `json:"fg,omitempty" yaml:"fg,omitempty"`
}

// ThemeColorRecord is the persisted form of a ThemeColor.
type ThemeColorRecord struct {
	Type     string        `json:"_t" yaml:"_t"`
	Version  int           `json:"_v" yaml:"_v"`
	Main     ColorRecord   `json:"main" yaml:"main"`
	Variants []ColorRecord `json:"variants" yaml:"variants"`
}

// ThemeRecord is the persisted form of a Theme.
type ThemeRecord struct {
	Type       string             `json:"_t" yaml:"_t"`
	Version    int                `json:"_v" yaml:"_v"`
	Name       string             `json:"name" yaml:"name"`
	Colors     []ThemeColorRecord `json:"colors" yaml:"colors"`
	AutoDetect bool               `json:"autoDetect" yaml:"autoDetect"`
}

// PaletteRecord is the persisted form of a Palette.
type PaletteRecord struct {
	Type         string        `json:"_t" yaml:"_t"`
	Version      int           `json:"_v" yaml:"_v"`
	Name         string        `json:"name" yaml:"name"`
	DefaultTheme string        `json:"defaultTheme,omitempty" yaml:"defaultTheme,omitempty"`
	Themes       []ThemeRecord `json:"themes" yaml:"themes"`
}

func checkType(field, got, want string) error {
	if got != want {
		return palerrors.NewValidationError(field, fmt.Sprintf("expected record type %q, got %q", want, got), nil)
	}
	return nil
}

// Record snapshots the color. The foreground is resolved first.
func (c *Color) Record() (ColorRecord, error) {
	fg, err := c.Fg()
	if err != nil {
		return ColorRecord{}, err
	}
	return ColorRecord{
		Type:    TypeColor,
		Version: RecordVersion,
		Name:    c.name,
		Value:   c.value.CSS(),
		Fg:      fg.CSS(),
	}, nil
}

// ColorFromRecord rebuilds a Color.
func ColorFromRecord(r ColorRecord) (*Color, error) {
	if err := checkType("_t", r.Type, TypeColor); err != nil {
		return nil, err
	}
	// Only v1 exists; unknown versions are read as v1.
	return colorFromV1(r)
}

func colorFromV1(r ColorRecord) (*Color, error) {
	value, err := color.Parse(r.Value)
	if err != nil {
		return nil, err
	}
	var fg color.Value
	if r.Fg != "" {
		if fg, err = color.Parse(r.Fg); err != nil {
			return nil, err
		}
	}
	return NewColor(r.Name, value, fg)
}

// Record snapshots the theme color and its variants.
func (tc *ThemeColor) Record() (ThemeColorRecord, error) {
	main, err := tc.main.Record()
	if err != nil {
		return ThemeColorRecord{}, err
	}
	out := ThemeColorRecord{
		Type:     TypeThemeColor,
		Version:  RecordVersion,
		Main:     main,
		Variants: make([]ColorRecord, 0, len(tc.variants)),
	}
	for _, v := range tc.variants {
		r, err := v.Record()
		if err != nil {
			return ThemeColorRecord{}, err
		}
		out.Variants = append(out.Variants, r)
	}
	return out, nil
}

// ThemeColorFromRecord rebuilds a detached ThemeColor.
func ThemeColorFromRecord(r ThemeColorRecord) (*ThemeColor, error) {
	if err := checkType("_t", r.Type, TypeThemeColor); err != nil {
		return nil, err
	}
	main, err := ColorFromRecord(r.Main)
	if err != nil {
		return nil, err
	}
	tc, err := NewThemeColor(main)
	if err != nil {
		return nil, err
	}
	for _, vr := range r.Variants {
		v, err := ColorFromRecord(vr)
		if err != nil {
			return nil, err
		}
		tc.variants = append(tc.variants, v)
	}
	return tc, nil
}

// Record snapshots the theme.
func (t *Theme) Record() (ThemeRecord, error) {
	out := ThemeRecord{
		Type:       TypeTheme,
		Version:    RecordVersion,
		Name:       t.name,
		Colors:     make([]ThemeColorRecord, 0, len(t.colors)),
		AutoDetect: t.autoDetect,
	}
	for _, c := range t.colors {
		r, err := c.Record()
		if err != nil {
			return ThemeRecord{}, err
		}
		out.Colors = append(out.Colors, r)
	}
	return out, nil
}

// ThemeFromRecord rebuilds a detached Theme with its colors.
func ThemeFromRecord(r ThemeRecord) (*Theme, error) {
	if err := checkType("_t", r.Type, TypeTheme); err != nil {
		return nil, err
	}
	t, err := NewTheme(r.Name, r.AutoDetect)
	if err != nil {
		return nil, err
	}
	for _, cr := range r.Colors {
		c, err := ThemeColorFromRecord(cr)
		if err != nil {
			return nil, err
		}
		t.AddColor(c)
	}
	return t, nil
}

// Record snapshots the whole palette.
func (p *Palette) Record() (PaletteRecord, error) {
	out := PaletteRecord{
		Type:    TypePalette,
		Version: RecordVersion,
		Name:    p.name,
		Themes:  make([]ThemeRecord, 0, len(p.themes)),
	}
	if p.defaultTheme != DefaultThemeName {
		out.DefaultTheme = p.defaultTheme
	}
	for _, t := range p.themes {
		r, err := t.Record()
		if err != nil {
			return PaletteRecord{}, err
		}
		out.Themes = append(out.Themes, r)
	}
	return out, nil
}

// FromRecord rebuilds a palette. Options override the record's default theme.
func FromRecord(r PaletteRecord, opts ...Option) (*Palette, error) {
	if err := checkType("_t", r.Type, TypePalette); err != nil {
		return nil, err
	}
	all := append([]Option{WithDefaultTheme(r.DefaultTheme)}, opts...)
	p, err := New(r.Name, all...)
	if err != nil {
		return nil, err
	}
	for _, tr := range r.Themes {
		t, err := ThemeFromRecord(tr)
		if err != nil {
			return nil, err
		}
		p.AddTheme(t)
	}
	return p, nil
}

// MarshalJSON encodes the palette record.
func (p *Palette) MarshalJSON() ([]byte, error) {
	r, err := p.Record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

// DecodeJSON parses a JSON palette record.
func DecodeJSON(data []byte, opts ...Option) (*Palette, error) {
	var r PaletteRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, palerrors.NewValidationError("palette", "malformed palette record", err)
	}
	return FromRecord(r, opts...)
}

// EncodeYAML renders the palette record as YAML.
func (p *Palette) EncodeYAML() ([]byte, error) {
	r, err := p.Record()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(r)
}

// DecodeYAML parses a YAML palette record.
func DecodeYAML(data []byte, opts ...Option) (*Palette, error) {
	var r PaletteRecord
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, palerrors.NewValidationError("palette", "malformed palette record", err)
	}
	return FromRecord(r, opts...)
}
