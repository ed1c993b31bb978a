package lesson

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/icexin/learngl/gfx"
)

// helloWindow only clears; the app does that before every Draw.
type helloWindow struct{}

func (*helloWindow) Setup() error   { return nil }
func (*helloWindow) Draw(t float64) {}
func (*helloWindow) Release()       {}

type helloTriangle struct {
	program *gfx.Program
	mesh    *gfx.Mesh
}

func (s *helloTriangle) Setup() error {
	var err error
	s.program, err = gfx.NewProgram(positionVertexSource, orangeFragmentSource)
	if err != nil {
		return err
	}
	s.mesh = gfx.NewMesh(positionFormat, triangleVertices, nil)
	return nil
}

func (s *helloTriangle) Draw(t float64) {
	s.program.Use()
	s.mesh.Draw(gl.TRIANGLES)
}

func (s *helloTriangle) Release() {
	releaseMesh(s.mesh)
	deleteProgram(s.program)
}

type helloRectangle struct {
	program *gfx.Program
	mesh    *gfx.Mesh
}

func (s *helloRectangle) Setup() error {
	var err error
	s.program, err = gfx.NewProgram(positionVertexSource, orangeFragmentSource)
	if err != nil {
		return err
	}
	s.mesh = gfx.NewMesh(positionFormat, rectangleVertices, rectangleIndices)
	return nil
}

func (s *helloRectangle) Draw(t float64) {
	s.program.Use()
	s.mesh.Draw(gl.TRIANGLES)
}

func (s *helloRectangle) Release() {
	releaseMesh(s.mesh)
	deleteProgram(s.program)
}

type twoTriangles struct {
	orange, yellow *gfx.Program
	left, right    *gfx.Mesh
}

func (s *twoTriangles) Setup() error {
	var err error
	s.orange, err = gfx.NewProgram(positionVertexSource, orangeFragmentSource)
	if err != nil {
		return err
	}
	s.yellow, err = gfx.NewProgram(positionVertexSource, yellowFragmentSource)
	if err != nil {
		return err
	}
	s.left = gfx.NewMesh(positionFormat, leftTriangleVertices, nil)
	s.right = gfx.NewMesh(positionFormat, rightTriangleVertices, nil)
	return nil
}

func (s *twoTriangles) Draw(t float64) {
	s.orange.Use()
	s.left.Draw(gl.TRIANGLES)
	s.yellow.Use()
	s.right.Draw(gl.TRIANGLES)
}

func (s *twoTriangles) Release() {
	releaseMesh(s.left)
	releaseMesh(s.right)
	deleteProgram(s.orange)
	deleteProgram(s.yellow)
}

// Setup may fail half way, so Release tolerates nil fields.

func releaseMesh(m *gfx.Mesh) {
	if m != nil {
		m.Release()
	}
}

func deleteProgram(p *gfx.Program) {
	if p != nil {
		p.Delete()
	}
}
