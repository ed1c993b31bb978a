package lesson

import (
	"image"

	"github.com/faiface/glhf"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/icexin/learngl/gfx"
	"github.com/icexin/learngl/shaders"
)

const noiseSeed = 0

var noiseTint = mgl32.Vec3{0.95, 0.75, 0.35}

// noiseQuad samples a texture through glhf's shader and texture wrappers.
type noiseQuad struct {
	texturePath string

	shader  *glhf.Shader
	texture *glhf.Texture
	mesh    *gfx.Mesh
}

func (s *noiseQuad) pixels() ([]uint8, image.Rectangle, error) {
	if s.texturePath == "" {
		return NoiseImage(noiseSize, noiseSize, noiseSeed), image.Rect(0, 0, noiseSize, noiseSize), nil
	}
	return loadImage(s.texturePath)
}

func (s *noiseQuad) Setup() error {
	img, rect, err := s.pixels()
	if err != nil {
		return err
	}
	vs, err := shaders.Source("noise.vert")
	if err != nil {
		return err
	}
	fs, err := shaders.Source("noise.frag")
	if err != nil {
		return err
	}
	s.shader, err = glhf.NewShader(texFormat, glhf.AttrFormat{
		glhf.Attr{Name: "tint", Type: glhf.Vec3},
	}, vs, fs)
	if err != nil {
		return err
	}
	s.texture = glhf.NewTexture(rect.Dx(), rect.Dy(), true, img)
	s.mesh = gfx.NewMesh(s.shader.VertexFormat(), texRectangleVertices, rectangleIndices)
	return nil
}

func (s *noiseQuad) Draw(t float64) {
	s.shader.Begin()
	s.texture.Begin()
	s.shader.SetUniformAttr(0, noiseTint)
	s.mesh.Draw(gl.TRIANGLES)
	s.texture.End()
	s.shader.End()
}

// Release drops the glhf shader and texture; their GL objects are deleted
// by glhf's finalizers after the next GC, not here.
func (s *noiseQuad) Release() {
	releaseMesh(s.mesh)
	s.shader = nil
	s.texture = nil
}
