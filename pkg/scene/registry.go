package scene

import (
	"fmt"
	"sort"
)

// builtinScenes maps CLI scene names to their constructors
var builtinScenes = map[string]func(seed int64) *Scene{
	"default": func(seed int64) *Scene {
		s := NewDefaultScene()
		s.SamplingConfig.Seed = seed
		return s
	},
	"random": NewRandomScene,
}

// Create builds a built-in scene by name
func Create(name string, seed int64) (*Scene, error) {
	constructor, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return constructor(seed), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
