// Package shaders holds the GLSL sources loaded from files by the lessons.
// The files are embedded; SetDir points lookups at a directory on disk so
// they can be edited without rebuilding.
package shaders

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/icexin/learngl/gfx"
	"github.com/pkg/errors"
)

//go:embed *.vert *.frag
var files embed.FS

var (
	mu  sync.RWMutex
	dir string
)

// SetDir makes Source read from d. An empty d restores the embedded files.
func SetDir(d string) {
	mu.Lock()
	dir = d
	mu.Unlock()
}

func Dir() string {
	mu.RLock()
	defer mu.RUnlock()
	return dir
}

// Source returns the text of the named shader file.
func Source(name string) (string, error) {
	if d := Dir(); d != "" {
		return gfx.LoadSource(filepath.Join(d, name))
	}
	b, err := files.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "embedded shader %q", name)
	}
	return string(b), nil
}

// Names lists the embedded shader files in lexical order.
func Names() []string {
	var names []string
	fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	sort.Strings(names)
	return names
}
