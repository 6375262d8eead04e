package libgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// The window system provided framebuffer.
const DefaultFramebuffer uint32 = 0

// Reads a rectangle of 8 bit RGBA pixels from the color buffer of framebuffer.
// Rows are returned bottom to top, as GL stores them.
func ReadPixelsRGBA(framebuffer uint32, buffer uint32, x, y, width, height int) []uint8 {
	pix := make([]uint8, width*height*4)
	if len(pix) == 0 {
		return pix
	}
	State.BindReadFramebuffer(framebuffer)
	gl.ReadBuffer(buffer)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, Pointer(pix))
	return pix
}

// Reads a single pixel of the back buffer of the default framebuffer.
func ReadPixelRGBA(x, y int) [4]uint8 {
	pix := ReadPixelsRGBA(DefaultFramebuffer, gl.BACK, x, y, 1, 1)
	return [4]uint8{pix[0], pix[1], pix[2], pix[3]}
}
