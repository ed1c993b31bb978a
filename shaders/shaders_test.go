package shaders

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"noise.frag", "noise.vert",
		"shader.frag", "shader.vert",
		"transform.vert",
	}, names)

	for _, name := range names {
		src, err := Source(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		assert.Contains(t, src, "void main()", name)
	}
}

func TestOffsetUniformDeclared(t *testing.T) {
	src, err := Source("shader.vert")
	require.NoError(t, err)
	assert.Contains(t, src, "uniform vec3 offset;")
}

func TestSourceUnknown(t *testing.T) {
	_, err := Source("missing.vert")
	assert.Error(t, err)
}

func TestSetDir(t *testing.T) {
	d, err := ioutil.TempDir("", "shaders")
	require.NoError(t, err)
	defer os.RemoveAll(d)

	const override = "#version 330 core\nvoid main() { gl_Position = vec4(0); }\n"
	require.NoError(t, ioutil.WriteFile(filepath.Join(d, "shader.vert"), []byte(override), 0644))

	SetDir(d)
	defer SetDir("")
	assert.Equal(t, d, Dir())

	src, err := Source("shader.vert")
	require.NoError(t, err)
	assert.Equal(t, override, src)

	_, err = Source("shader.frag")
	assert.Error(t, err, "override directory is not merged with embedded files")
}
