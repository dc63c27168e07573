package farm

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
)

// Sprite is an opaque visual handle. The simulation stores it and hands it
// back to the renderer, it never interprets it.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Sprites holds a species' per-stage visuals. The seed stage is drawn the
// same for every species.
type Sprites struct {
	Sprout Sprite
	Mature Sprite
}

// PlantType is the immutable definition of a species.
type PlantType struct {
	name       string
	sproutTime float64
	growTime   float64
	waterUsage float64
	sprites    Sprites
}

// NewPlantType creates a species definition.
// A sproutTime of 0 means the species has no sprout stage and is consumed
// on harvest.
func NewPlantType(name string, sproutTime, growTime, waterUsage float64, sprites Sprites) PlantType {
	return PlantType{
		name:       name,
		sproutTime: sproutTime,
		growTime:   growTime,
		waterUsage: waterUsage,
		sprites:    sprites,
	}
}

func (t *PlantType) Name() string { return t.name }
func (t *PlantType) SproutTime() float64 { return t.sproutTime }
func (t *PlantType) GrowTime() float64 { return t.growTime }
func (t *PlantType) WaterUsage() float64 { return t.waterUsage }
func (t *PlantType) Sprites() Sprites { return t.sprites }
func (t *PlantType) Repeatable() bool { return t.sproutTime > 0 }

// Catalog owns every PlantType of a session. It is filled once and never
// resized, so pointers returned by Get stay valid for the catalog's lifetime.
type Catalog struct {
	types []PlantType
}

// NewCatalog creates a catalog from the given species, in order.
func NewCatalog(types ...PlantType) *Catalog {
	owned := make([]PlantType, len(types))
	copy(owned, types)
	return &Catalog{types: owned}
}

// CatalogFromConfig builds the species catalog from configuration.
func CatalogFromConfig(plants []config.PlantConfig) *Catalog {
	types := make([]PlantType, 0, len(plants))
	for _, p := range plants {
		color := core.ParseColor(p.Color)
		types = append(types, NewPlantType(p.Name, p.SproutTime, p.GrowTime, p.WaterUsage, Sprites{
			Sprout: Sprite{Glyph: firstRune(p.SproutGlyph, ','), Color: core.ColorGreen},
			Mature: Sprite{Glyph: firstRune(p.MatureGlyph, '*'), Color: color},
		}))
	}
	return NewCatalog(types...)
}

// Len returns the number of species.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Get returns the species at index i, or nil when out of range.
func (c *Catalog) Get(i int) *PlantType {
	if i < 0 || i >= len(c.types) {
		return nil
	}
	return &c.types[i]
}

// ByName looks a species up by name.
func (c *Catalog) ByName(name string) (*PlantType, bool) {
	for i := range c.types {
		if c.types[i].name == name {
			return &c.types[i], true
		}
	}
	return nil, false
}

// Names lists species names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.types))
	for i := range c.types {
		names[i] = c.types[i].name
	}
	return names
}

func firstRune(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
