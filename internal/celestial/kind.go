// Package celestial builds the body hierarchy of a celestial system and
// answers per-frame position, rotation and illumination queries on it.
package celestial

import "fmt"

// Kind is the closed set of body categories.
type Kind int

const (
	Star Kind = iota
	Planet
	Moon
	DwarfPlanet
	Asteroid
	Comet
)

var kindNames = [...]string{
	Star:        "Star",
	Planet:      "Planet",
	Moon:        "Moon",
	DwarfPlanet: "DwarfPlanet",
	Asteroid:    "Asteroid",
	Comet:       "Comet",
}

// String returns the configuration tag for k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a configuration tag to a Kind. Tags are case-sensitive.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if s == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// canHostMoon reports whether a body of kind k may be a Moon's parent.
func (k Kind) canHostMoon() bool {
	switch k {
	case Planet, DwarfPlanet:
		return true
	case Star, Moon, Asteroid, Comet:
		return false
	default:
		return false
	}
}

// Symbol returns a single-rune glyph used by text renderings.
func (k Kind) Symbol() rune {
	switch k {
	case Star:
		return '*'
	case Planet:
		return 'o'
	case Moon:
		return '.'
	case DwarfPlanet:
		return '+'
	case Asteroid:
		return ','
	case Comet:
		return '~'
	default:
		return '?'
	}
}
