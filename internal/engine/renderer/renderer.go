// Package renderer draws geometry into shadow targets.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadowcaster/internal/engine/shader"
	"github.com/Faultbox/shadowcaster/internal/logger"
	"github.com/Faultbox/shadowcaster/pkg/math"
)

// DepthRenderer renders a unit cube into a bound shadow target.
type DepthRenderer struct {
	program    *shader.Program
	lightSpace int32

	cubeVAO    uint32
	cubeVBO    uint32
	cubeEBO    uint32
	indexCount int32
}

// New creates a depth renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*DepthRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.NewDepthProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create depth program: %w", err)
	}

	r := &DepthRenderer{
		program:    program,
		lightSpace: program.MustUniform(shader.LightSpaceUniform),
	}
	r.createCube()

	return r, nil
}

// Close cleans up renderer resources.
func (r *DepthRenderer) Close() {
	logger.Info("closing depth renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.cubeEBO != 0 {
		gl.DeleteBuffers(1, &r.cubeEBO)
	}
	r.program.Delete()
}

// DrawDepth draws the cube with the light-space transform into the currently
// bound shadow target. Depth from earlier draws into the same target is kept.
func (r *DepthRenderer) DrawDepth(lightSpace math.Mat4) {
	r.program.Use()
	shader.SetMat4(r.lightSpace, lightSpace)

	gl.BindVertexArray(r.cubeVAO)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// createCube uploads a unit cube centered on the origin.
func (r *DepthRenderer) createCube() {
	vertices := []float32{
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
	}
	// Counter-clockwise when seen from outside.
	indices := []uint32{
		4, 5, 6, 6, 7, 4, // +Z
		1, 0, 3, 3, 2, 1, // -Z
		5, 1, 2, 2, 6, 5, // +X
		0, 4, 7, 7, 3, 0, // -X
		7, 6, 2, 2, 3, 7, // +Y
		0, 1, 5, 5, 4, 0, // -Y
	}
	r.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.cubeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cubeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("cube created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
		zap.Int32("indices", r.indexCount),
	)
}
