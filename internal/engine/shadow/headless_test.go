package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeadless(t *testing.T) {
	assert.Equal(t, int32(1024), NewHeadless(1024).Resolution())
	assert.Equal(t, int32(DefaultResolution), NewHeadless(0).Resolution())
	assert.Equal(t, int32(DefaultResolution), NewHeadless(-5).Resolution())
}

func TestHeadlessBindCycle(t *testing.T) {
	h := NewHeadless(256)
	assert.False(t, h.Bound())

	h.Bind()
	assert.True(t, h.Bound())
	h.Unbind()
	assert.False(t, h.Bound())

	h.Bind()
	h.Destroy()
	assert.False(t, h.Bound())
	assert.Equal(t, 2, h.Binds())
	assert.Equal(t, 1, h.Destroyed())
}

func TestHeadlessClearIsSeparateFromBind(t *testing.T) {
	h := NewHeadless(128)
	h.Bind()
	assert.Equal(t, 0, h.Clears())

	h.Clear()
	h.Unbind()
	h.Bind()
	h.Unbind()
	assert.Equal(t, 1, h.Clears())
	assert.Equal(t, 2, h.Binds())
}
