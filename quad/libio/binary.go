package libio

import (
	"encoding/binary"
	"io"
)

// Reads fixed size values until the first error, which sticks in Err.
// Index counts consumed bytes, LastIndex is where the latest value started.
type BinaryReader struct {
	Order     binary.ByteOrder
	Src       io.Reader
	Index     int
	LastIndex int
	Err       error
}

func (br *BinaryReader) Read(p []byte) (n int, err error) {
	n, err = br.Src.Read(p)
	br.Index += n
	return
}

func (br *BinaryReader) advance(n int, err error) bool {
	br.LastIndex = br.Index
	br.Index += n
	br.Err = err
	return err == nil
}

func (br *BinaryReader) ReadRef(data any) (ok bool) {
	if br.Err != nil {
		return false
	}
	if err := binary.Read(br.Src, br.Order, data); err != nil {
		return br.advance(0, err)
	}
	return br.advance(binary.Size(data), nil)
}

func (br *BinaryReader) ReadFull(p []byte) (ok bool) {
	if br.Err != nil {
		return false
	}
	return br.advance(io.ReadFull(br.Src, p))
}

// The write side of BinaryReader.
type BinaryWriter struct {
	Order binary.ByteOrder
	Dst   io.Writer
	Index int
	Err   error
}

func (bw *BinaryWriter) Write(p []byte) (n int, err error) {
	n, err = bw.Dst.Write(p)
	bw.Index += n
	return
}

func (bw *BinaryWriter) WriteBytes(p []byte) (ok bool) {
	if bw.Err != nil {
		return false
	}
	_, bw.Err = bw.Write(p)
	return bw.Err == nil
}

func (bw *BinaryWriter) WriteRef(data any) (ok bool) {
	if bw.Err != nil {
		return false
	}
	if bw.Err = binary.Write(bw.Dst, bw.Order, data); bw.Err != nil {
		return false
	}
	bw.Index += binary.Size(data)
	return true
}
