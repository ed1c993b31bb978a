package lesson

import (
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/icexin/learngl/gfx"
	"github.com/icexin/learngl/shaders"
)

type shaderUniform struct {
	program *gfx.Program
	mesh    *gfx.Mesh
}

func (s *shaderUniform) Setup() error {
	var err error
	s.program, err = gfx.NewProgram(positionVertexSource, uniformFragmentSource)
	if err != nil {
		return err
	}
	s.mesh = gfx.NewMesh(positionFormat, triangleVertices, nil)
	return nil
}

// pulse maps t onto [0, 1] along a sine wave.
func pulse(t float64) float32 {
	return float32(math.Sin(t)/2 + 0.5)
}

func (s *shaderUniform) Draw(t float64) {
	s.program.Use()
	s.program.SetVec4("ourColor", mgl32.Vec4{0, pulse(t), 0, 1})
	s.mesh.Draw(gl.TRIANGLES)
}

func (s *shaderUniform) Release() {
	releaseMesh(s.mesh)
	deleteProgram(s.program)
}

var triangleOffset = mgl32.Vec3{0.3, 0.3, 0.0}

// shaderOffset reads its GLSL from files and sets the offset uniform once;
// uniform values stay with the program between frames.
type shaderOffset struct {
	program *gfx.Program
	mesh    *gfx.Mesh
}

func loadProgram(vertexName, fragmentName string) (*gfx.Program, error) {
	vs, err := shaders.Source(vertexName)
	if err != nil {
		return nil, err
	}
	fs, err := shaders.Source(fragmentName)
	if err != nil {
		return nil, err
	}
	return gfx.NewProgram(vs, fs)
}

func (s *shaderOffset) Setup() error {
	var err error
	s.program, err = loadProgram("shader.vert", "shader.frag")
	if err != nil {
		return err
	}
	s.program.Use()
	s.program.SetVec3("offset", triangleOffset)
	s.mesh = gfx.NewMesh(colorFormat, colorTriangleVertices, nil)
	return nil
}

func (s *shaderOffset) Draw(t float64) {
	s.program.Use()
	s.mesh.Draw(gl.TRIANGLES)
}

func (s *shaderOffset) Release() {
	releaseMesh(s.mesh)
	deleteProgram(s.program)
}

type transform struct {
	program *gfx.Program
	mesh    *gfx.Mesh
}

func (s *transform) Setup() error {
	var err error
	s.program, err = loadProgram("transform.vert", "shader.frag")
	if err != nil {
		return err
	}
	s.mesh = gfx.NewMesh(colorFormat, colorRectangleVertices, rectangleIndices)
	return nil
}

func transformMatrix(t float64) mgl32.Mat4 {
	return mgl32.Translate3D(0.5, -0.5, 0).Mul4(mgl32.HomogRotate3DZ(float32(t)))
}

func (s *transform) Draw(t float64) {
	s.program.Use()
	s.program.SetMat4("transform", transformMatrix(t))
	s.mesh.Draw(gl.TRIANGLES)
}

func (s *transform) Release() {
	releaseMesh(s.mesh)
	deleteProgram(s.program)
}
