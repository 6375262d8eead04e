package libio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// Largest pixel payload DecodeFrame accepts, a 16384x16384 RGBA frame.
const MaxFrameBytes = 16384 * 16384 * 4

// Writes img as a .frame file: a FrameHeader followed by the rows bottom to
// top, lz4 framed when compression is FrameCompressionLz4.
func EncodeFrame(w io.Writer, img *IntImage, compression FrameCompression) (err error) {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("frame has no pixels (%dx%d)", img.Width, img.Height)
	}
	if img.Bytes() != len(img.Pix) {
		return fmt.Errorf("frame has %d bytes of pixels, expected %d", len(img.Pix), img.Bytes())
	}

	var bw *BinaryWriter
	var ok bool

	if bw, ok = w.(*BinaryWriter); !ok {
		bw = &BinaryWriter{
			Dst:   w,
			Order: binary.LittleEndian,
		}

		defer func() {
			if bw.Err != nil {
				if err == nil {
					err = bw.Err
				} else {
					err = fmt.Errorf("%v: %w", err, bw.Err)
				}
			}
		}()
	}

	header := FrameHeader{
		Check:       MagicNumberFrame,
		Version:     FrameVersion1,
		Width:       uint32(img.Width),
		Height:      uint32(img.Height),
		Channels:    uint8(img.Channels),
		Compression: compression,
	}

	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write frame header: %w", bw.Err)
	}

	var data []byte

	switch compression {
	case FrameCompressionNone:
		data = img.Pix
	case FrameCompressionLz4:
		buf := bytes.NewBuffer(nil)
		lzw := lz4.NewWriter(buf)
		err = lzw.Apply(lz4.CompressionLevelOption(lz4.Fast))
		if err != nil {
			break
		}
		_, err = lzw.Write(img.Pix)
		if err != nil {
			break
		}
		err = lzw.Close()
		data = buf.Bytes()
	default:
		err = fmt.Errorf("unknown compression %d", compression)
	}

	if err != nil {
		return fmt.Errorf("could not compress frame pixels: %w", err)
	}

	if !bw.WriteBytes(data) {
		return fmt.Errorf("could not write frame pixels: %w", bw.Err)
	}

	return nil
}

func DecodeFrame(r io.Reader) (img *IntImage, err error) {
	var br *BinaryReader
	var ok bool

	if br, ok = r.(*BinaryReader); !ok {
		br = &BinaryReader{
			Src:   r,
			Order: binary.LittleEndian,
		}
	}

	header := FrameHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected frame header; byte 0x%08x: %w", br.LastIndex, br.Err)
	}

	if header.Check != MagicNumberFrame {
		return nil, fmt.Errorf("frame header is corrupt; byte 0x%08x", br.LastIndex)
	}

	if header.Version != FrameVersion1 {
		return nil, fmt.Errorf("frame version %d unsupported; byte 0x%08x", header.Version, br.LastIndex)
	}

	if header.Channels == 0 || header.Channels > 4 {
		return nil, fmt.Errorf("frame has invalid channel count %d", header.Channels)
	}

	if header.Width == 0 || header.Height == 0 {
		return nil, fmt.Errorf("frame has no pixels (%dx%d)", header.Width, header.Height)
	}

	// w*h cannot overflow uint64 for uint32 sides
	if uint64(header.Width)*uint64(header.Height) > MaxFrameBytes/uint64(header.Channels) {
		return nil, fmt.Errorf("frame of %dx%dx%d exceeds %d bytes", header.Width, header.Height, header.Channels, MaxFrameBytes)
	}

	pix := make([]uint8, int(header.Width)*int(header.Height)*int(header.Channels))

	switch header.Compression {
	case FrameCompressionNone:
		if !br.ReadFull(pix) {
			err = br.Err
		}
	case FrameCompressionLz4:
		lzr := lz4.NewReader(br.Src)
		_, err = io.ReadFull(lzr, pix)
	default:
		err = fmt.Errorf("unknown compression %d", header.Compression)
	}

	if err != nil {
		return nil, fmt.Errorf("could not decompress frame pixels: %w", err)
	}

	return NewIntImage(pix, int(header.Channels), int(header.Width), int(header.Height)), nil
}
