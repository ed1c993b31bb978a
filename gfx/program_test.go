package gfx

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: Fragment, Log: "0:3(1): error: syntax error\n"}
	assert.Equal(t, "FRAGMENT shader compile failure: 0:3(1): error: syntax error", err.Error())

	err = &CompileError{Stage: Link, Log: "missing main"}
	assert.Equal(t, "program link failure: missing main", err.Error())
}

func TestCompileErrorSurvivesWrapping(t *testing.T) {
	var err error = &CompileError{Stage: Vertex, Log: "bad"}
	err = errors.Wrapf(err, "build %s + %s", "a.vert", "a.frag")

	ce, ok := errors.Cause(err).(*CompileError)
	if assert.True(t, ok) {
		assert.Equal(t, Vertex, ce.Stage)
	}
	assert.Contains(t, err.Error(), "a.vert + a.frag")
}

func TestNewProgramFromFilesReadError(t *testing.T) {
	_, err := NewProgramFromFiles("does-not-exist.vert", "does-not-exist.frag")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.vert")
}
