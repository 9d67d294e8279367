package shader

// LightSpaceUniform is the light-space transform uniform of the depth program.
const LightSpaceUniform = "u_lightSpace"

// DepthVertex transforms object-space positions straight into light clip space.
const DepthVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 u_lightSpace;

void main() {
	gl_Position = u_lightSpace * vec4(aPos, 1.0);
}
`

// DepthFragment writes nothing; the depth attachment is the only output.
const DepthFragment = `
#version 410 core

void main() {
}
`

// NewDepthProgram compiles the depth-only shadow program.
func NewDepthProgram() (*Program, error) {
	return CompileProgram(DepthVertex, DepthFragment)
}
