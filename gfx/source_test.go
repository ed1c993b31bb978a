package gfx

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	assert.Equal(t, "VERTEX", Vertex.String())
	assert.Equal(t, "FRAGMENT", Fragment.String())
	assert.Equal(t, "PROGRAM", Link.String())
	assert.Equal(t, "UNKNOWN", Stage(42).String())

	assert.Equal(t, uint32(gl.VERTEX_SHADER), Vertex.GLEnum())
	assert.Equal(t, uint32(gl.FRAGMENT_SHADER), Fragment.GLEnum())
	assert.Zero(t, Link.GLEnum())
}

func writeTemp(t *testing.T, name, content string) string {
	dir, err := ioutil.TempDir("", "gfx")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	p := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadSource(t *testing.T) {
	p := writeTemp(t, "a.vert", "#version 330 core\nvoid main() {}\n\x00")
	src, err := LoadSource(p)
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", src)
}

func TestLoadSourceMissing(t *testing.T) {
	_, err := LoadSource(filepath.Join(os.TempDir(), "no-such-dir", "x.frag"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.frag")
}

func TestLoadSourceEmpty(t *testing.T) {
	p := writeTemp(t, "empty.frag", " \n\t\n")
	_, err := LoadSource(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty shader source")
}
