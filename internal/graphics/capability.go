package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Minimum context version that guarantees dFdx/dFdy in fragment shaders.
const (
	minGLMajor = 3
	minGLMinor = 3
)

// CheckCapabilities verifies the current GL context can run the contour
// program. The gradient computation relies on screen-space derivatives,
// so a context below 3.3 means the whole pipeline is unusable; callers
// must treat an error here as fatal and never enter the frame loop.
func CheckCapabilities() error {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)

	if major < minGLMajor || (major == minGLMajor && minor < minGLMinor) {
		version := gl.GoStr(gl.GetString(gl.VERSION))
		return fmt.Errorf("OpenGL %d.%d (%s) lacks fragment derivative support; need at least %d.%d",
			major, minor, version, minGLMajor, minGLMinor)
	}
	return nil
}

// ContextVersion returns the context's reported version string for logs.
func ContextVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
