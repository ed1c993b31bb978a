// Package lesson contains the tutorial scenes. Each scene builds its GL
// objects in Setup, redraws the same geometry on every Draw and frees its
// buffers and programs in Release. Shaders and textures made through glhf
// have no explicit delete; they are freed by glhf's finalizers once
// unreachable, so they may outlive Release until the next GC. All three
// run on the GL thread.
package lesson

import (
	"github.com/pkg/errors"
)

// ErrUnknown is returned by Lookup for names that are not registered.
var ErrUnknown = errors.New("unknown lesson")

type Scene interface {
	Setup() error
	// Draw renders one frame; t is the seconds elapsed since glfw init.
	Draw(t float64)
	Release()
}

type Options struct {
	// Texture is an image file used by lessons that sample a texture.
	// Empty means generate one.
	Texture string
}

type Info struct {
	Name  string
	Title string
	New   func(Options) Scene
}

var lessons = []Info{
	{"hello-window", "Hello Window", func(Options) Scene { return new(helloWindow) }},
	{"hello-triangle", "Hello Triangle", func(Options) Scene { return new(helloTriangle) }},
	{"hello-rectangle", "Hello Rectangle", func(Options) Scene { return new(helloRectangle) }},
	{"two-triangles", "Two Triangles, Two Programs", func(Options) Scene { return new(twoTriangles) }},
	{"shader-uniform", "Shaders: Uniform Colour", func(Options) Scene { return new(shaderUniform) }},
	{"shader-offset", "Shaders: Vertex Colour And Offset", func(Options) Scene { return new(shaderOffset) }},
	{"transform", "Transformations", func(Options) Scene { return new(transform) }},
	{"noise-quad", "Textured Quad", func(o Options) Scene { return &noiseQuad{texturePath: o.Texture} }},
}

// All returns the lessons in presentation order.
func All() []Info {
	out := make([]Info, len(lessons))
	copy(out, lessons)
	return out
}

func Names() []string {
	names := make([]string, len(lessons))
	for i, l := range lessons {
		names[i] = l.Name
	}
	return names
}

func Lookup(name string) (Info, error) {
	for _, l := range lessons {
		if l.Name == name {
			return l, nil
		}
	}
	return Info{}, errors.Wrapf(ErrUnknown, "%q", name)
}

// Step returns the name of the lesson step places after name, wrapping at
// both ends. An unknown name steps from the first lesson.
func Step(name string, step int) string {
	idx := 0
	for i, l := range lessons {
		if l.Name == name {
			idx = i
			break
		}
	}
	n := len(lessons)
	idx = ((idx+step)%n + n) % n
	return lessons[idx].Name
}
