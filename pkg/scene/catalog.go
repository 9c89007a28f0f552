package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-path-tracer/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"` // Identifier used on the command line
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// builder constructs a scene, drawing any randomness from sampler
type builder func(sampler core.Sampler, options Options) (*Scene, error)

type catalogEntry struct {
	info  SceneInfo
	build builder
}

var catalog = []catalogEntry{
	{info("random-spheres", "Grid of small diffuse, metal and glass spheres with motion blur"), NewRandomSpheresScene},
	{info("two-spheres", "Two large checkered spheres"), NewTwoSpheresScene},
	{info("perlin-spheres", "Ground and sphere with Perlin noise texture"), NewPerlinSpheresScene},
	{info("earth", "Image-textured globe"), NewEarthScene},
	{info("simple-light", "Perlin spheres lit by a rectangular area light"), NewSimpleLightScene},
	{info("cornell-box", "Cornell box with two rotated boxes"), NewCornellBoxScene},
	{info("cornell-smoke", "Cornell box with boxes of dark and light smoke"), NewCornellSmokeScene},
}

func info(name, description string) SceneInfo {
	return SceneInfo{Name: name, DisplayName: titleCase(name), Description: description}
}

// DefaultSceneName is the scene rendered when none is requested
const DefaultSceneName = "random-spheres"

// Names returns the names of all built-in scenes in catalog order
func Names() []string {
	names := make([]string, len(catalog))
	for i, entry := range catalog {
		names[i] = entry.info.Name
	}
	return names
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(catalog))
	for i, entry := range catalog {
		scenes[i] = entry.info
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// NewScene builds the named catalog scene and its acceleration structure
func NewScene(name string, sampler core.Sampler, options Options) (*Scene, error) {
	for _, entry := range catalog {
		if entry.info.Name != name {
			continue
		}
		s, err := entry.build(sampler, options)
		if err != nil {
			return nil, err
		}
		if err := s.Preprocess(sampler); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
}

// titleCase converts a name to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
