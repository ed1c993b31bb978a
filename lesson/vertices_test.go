package lesson

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/icexin/learngl/gfx"
	"github.com/stretchr/testify/assert"
)

func TestVertexData(t *testing.T) {
	cases := []struct {
		name  string
		data  []float32
		count int
		per   int
	}{
		{"triangle", triangleVertices, 3, 3},
		{"rectangle", rectangleVertices, 4, 3},
		{"left", leftTriangleVertices, 3, 3},
		{"right", rightTriangleVertices, 3, 3},
		{"color triangle", colorTriangleVertices, 3, 6},
		{"color rectangle", colorRectangleVertices, 4, 6},
		{"tex rectangle", texRectangleVertices, 4, 4},
	}
	for _, c := range cases {
		assert.Len(t, c.data, c.count*c.per, c.name)
		for i, v := range c.data {
			assert.True(t, v >= -1 && v <= 1, "%s[%d]=%v outside clip space", c.name, i, v)
		}
	}
	assert.Equal(t, 3, gfx.VertexCount(positionFormat, triangleVertices))
	assert.Equal(t, 3, gfx.VertexCount(colorFormat, colorTriangleVertices))
	assert.Equal(t, 4, gfx.VertexCount(texFormat, texRectangleVertices))
}

func TestIndicesInRange(t *testing.T) {
	assert.Len(t, rectangleIndices, 6)
	for _, i := range rectangleIndices {
		assert.Less(t, int(i), 4)
	}
}

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, pulse(0), 1e-6)
	assert.InDelta(t, 1.0, pulse(math.Pi/2), 1e-6)
	assert.InDelta(t, 0.0, pulse(-math.Pi/2), 1e-6)
}

func TestTransformMatrix(t *testing.T) {
	m := transformMatrix(0)
	p := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1})
	assert.InDelta(t, 1.0, p.X(), 1e-6)
	assert.InDelta(t, 0.0, p.Y(), 1e-6)

	// a quarter turn maps +x onto +y before translating
	m = transformMatrix(math.Pi / 2)
	p = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0.5, p.X(), 1e-5)
	assert.InDelta(t, 0.5, p.Y(), 1e-5)
}
