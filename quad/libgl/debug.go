package libgl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// Drains the GL error queue. op names the operation in the returned error.
func CheckError(op string) error {
	var names []string
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		name, ok := glErrorNames[code]
		if !ok {
			name = fmt.Sprintf("0x%04x", code)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %w", op, &GlError{Codes: names})
}

type GlError struct {
	Codes []string
}

func (err *GlError) Error() string {
	return strings.Join(err.Codes, ", ")
}

func IsOutOfMemory(err error) bool {
	var glErr *GlError
	if !errors.As(err, &glErr) {
		return false
	}
	for _, c := range glErr.Codes {
		if c == "GL_OUT_OF_MEMORY" {
			return true
		}
	}
	return false
}
