package gfx

import (
	"io/ioutil"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

type Stage int

const (
	Vertex Stage = iota
	Fragment
	Link
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "VERTEX"
	case Fragment:
		return "FRAGMENT"
	case Link:
		return "PROGRAM"
	}
	return "UNKNOWN"
}

// GLEnum returns the shader type passed to glCreateShader.
func (s Stage) GLEnum() uint32 {
	switch s {
	case Vertex:
		return gl.VERTEX_SHADER
	case Fragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

var errEmptySource = errors.New("empty shader source")

// LoadSource reads a GLSL file from disk.
func LoadSource(path string) (string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "load shader %q", path)
	}
	src := strings.TrimRight(string(b), "\x00")
	if strings.TrimSpace(src) == "" {
		return "", errors.Wrapf(errEmptySource, "load shader %q", path)
	}
	return src, nil
}
