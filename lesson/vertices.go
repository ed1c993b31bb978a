package lesson

import "github.com/faiface/glhf"

var (
	positionFormat = glhf.AttrFormat{
		{Name: "aPos", Type: glhf.Vec3},
	}
	colorFormat = glhf.AttrFormat{
		{Name: "aPos", Type: glhf.Vec3},
		{Name: "aColor", Type: glhf.Vec3},
	}
	texFormat = glhf.AttrFormat{
		{Name: "pos", Type: glhf.Vec2},
		{Name: "tex", Type: glhf.Vec2},
	}
)

var (
	triangleVertices = []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}

	rectangleVertices = []float32{
		0.5, 0.5, 0.0, // top right
		0.5, -0.5, 0.0, // bottom right
		-0.5, -0.5, 0.0, // bottom left
		-0.5, 0.5, 0.0, // top left
	}
	rectangleIndices = []uint32{
		0, 1, 3,
		1, 2, 3,
	}

	leftTriangleVertices = []float32{
		-0.9, -0.5, 0.0,
		-0.0, -0.5, 0.0,
		-0.45, 0.5, 0.0,
	}
	rightTriangleVertices = []float32{
		0.0, -0.5, 0.0,
		0.9, -0.5, 0.0,
		0.45, 0.5, 0.0,
	}

	// position, colour
	colorTriangleVertices = []float32{
		-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
	}

	colorRectangleVertices = []float32{
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0,
	}

	// position, texcoord
	texRectangleVertices = []float32{
		0.75, 0.75, 1.0, 1.0,
		0.75, -0.75, 1.0, 0.0,
		-0.75, -0.75, 0.0, 0.0,
		-0.75, 0.75, 0.0, 1.0,
	}
)
