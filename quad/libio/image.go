package libio

import (
	goimg "image"
	"image/png"
	"io"
)

const MagicNumberFrame = 0x46524d31

type FrameVersion uint32

const (
	FrameVersion1 = FrameVersion(1)
)

type FrameCompression uint8

const (
	FrameCompressionNone = FrameCompression(iota)
	FrameCompressionLz4
)

type FrameHeader struct {
	Check         uint32
	Version       FrameVersion
	Width, Height uint32
	Channels      uint8
	Compression   FrameCompression
	Unused        [14]uint8
}

// An 8 bit per channel image as read back from GL.
//
// Note that the origin (0,0) is in the bottom left, as opposed to Go's top left origin
type IntImage struct {
	Channels      int
	Width, Height int
	Pix           []uint8
}

func NewIntImage(pix []uint8, channels int, width, height int) *IntImage {
	return &IntImage{
		Pix:      pix,
		Channels: channels,
		Width:    width,
		Height:   height,
	}
}

// Calculates the tuple index into the images data.
func (img *IntImage) Index(x, y int) int {
	return x*img.Channels + y*img.Channels*img.Width
}

func (img *IntImage) Bytes() int {
	return img.Width * img.Height * img.Channels
}

// Returns the pixel at (x, y) with missing channels filled like GL does: 0 for color, 0xff for alpha.
func (img *IntImage) At(x, y int) [4]uint8 {
	px := [4]uint8{0, 0, 0, 0xff}
	i := img.Index(x, y)
	for c := 0; c < img.Channels && c < 4; c++ {
		px[c] = img.Pix[i+c]
	}
	return px
}

func (img *IntImage) ToRGBA() *goimg.RGBA {
	rgba := goimg.NewRGBA(goimg.Rect(0, 0, img.Width, img.Height))

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			// flipped vertically
			j := (x + (img.Height-y-1)*img.Width) * 4
			px := img.At(x, y)
			copy(rgba.Pix[j:j+4], px[:])
		}
	}

	return rgba
}

func EncodePNG(w io.Writer, img *IntImage) error {
	return png.Encode(w, img.ToRGBA())
}
