package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in solar system: the Sun, the eight planets
// and a handful of moons, dwarf planets, asteroids and a comet.
func Default() *Document {
	doc, err := Parse(defaultsYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return doc
}
