package materials

import (
	"errors"
	"strings"
)

// ErrInvalidSelection is returned when a material index or name does not
// match any catalog entry.
var ErrInvalidSelection = errors.New("invalid material selection")

// Material is a catalog entry
type Material struct {
	Name           string
	YieldStrength  float64 // Sy (MPa)
	TypicalModulus float64 // E (GPa), suggested default only
}

// Shaft materials, in display order
var catalog = []Material{
	{Name: "Steel", YieldStrength: 250, TypicalModulus: 200},
	{Name: "Aluminum", YieldStrength: 150, TypicalModulus: 69},
	{Name: "Titanium", YieldStrength: 900, TypicalModulus: 114},
	{Name: "Cast Iron", YieldStrength: 300, TypicalModulus: 100},
}

// List returns a copy of the catalog in insertion order
func List() []Material {
	out := make([]Material, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the material at a 1-based menu index
func Lookup(index int) (Material, error) {
	if index < 1 || index > len(catalog) {
		return Material{}, ErrInvalidSelection
	}
	return catalog[index-1], nil
}

// ByName finds a material ignoring case and surrounding whitespace
func ByName(name string) (Material, error) {
	name = strings.TrimSpace(name)
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Material{}, ErrInvalidSelection
}

// Stronger returns every material whose yield strength is strictly greater
// than sy, in catalog order
func Stronger(sy float64) []Material {
	var out []Material
	for _, m := range catalog {
		if m.YieldStrength > sy {
			out = append(out, m)
		}
	}
	return out
}
