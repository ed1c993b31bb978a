// Package gfx wraps the handful of GL objects the lessons need: shader
// programs and vertex meshes.
package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const uniformCacheSize = 32

// CompileError carries the GL info log of a failed compile or link.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == Link {
		return fmt.Sprintf("program link failure: %s", strings.TrimSpace(e.Log))
	}
	return fmt.Sprintf("%s shader compile failure: %s", e.Stage, strings.TrimSpace(e.Log))
}

// Program is a linked vertex + fragment shader pair. All methods must be
// called on the thread owning the GL context.
type Program struct {
	id       uint32
	uniforms *lru.Cache
}

// NewProgram compiles both stages and links them. The stage objects are
// deleted once linked.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vertex, err := compile(Vertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compile(Fragment, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) {
			gl.GetProgramInfoLog(id, n, nil, buf)
		})
		gl.DeleteProgram(id)
		return nil, &CompileError{Stage: Link, Log: msg}
	}

	cache, err := lru.New(uniformCacheSize)
	if err != nil {
		gl.DeleteProgram(id)
		return nil, err
	}
	return &Program{id: id, uniforms: cache}, nil
}

// NewProgramFromFiles reads both sources from disk and builds a program.
func NewProgramFromFiles(vertexPath, fragmentPath string) (*Program, error) {
	vs, err := LoadSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fs, err := LoadSource(fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(vs, fs)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s + %s", vertexPath, fragmentPath)
	}
	return p, nil
}

func compile(stage Stage, src string) (uint32, error) {
	shader := gl.CreateShader(stage.GLEnum())
	csrc, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(shader, 1, csrc, &length)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, n, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: msg}
	}
	return shader, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return ""
	}
	buf := gl.Str(strings.Repeat("\x00", int(n)+1))
	read(buf)
	return gl.GoStr(buf)
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
		p.uniforms.Purge()
	}
}

// UniformLocation returns -1 for names the linker dropped or never saw.
func (p *Program) UniformLocation(name string) int32 {
	if v, ok := p.uniforms.Get(name); ok {
		return v.(int32)
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		log.Debugf("program %d: no active uniform %q", p.id, name)
	}
	p.uniforms.Add(name, loc)
	return loc
}

// The setters below expect the program to be in use.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.UniformLocation(name), i)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.UniformLocation(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.UniformLocation(name), v)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.UniformLocation(name), v[0], v[1], v[2])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.UniformLocation(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.UniformLocation(name), 1, false, &m[0])
}
