package main

import (
	"fmt"
	"learn-gl/quad/libio"
	"os"
	"path/filepath"
	"strings"
)

// Writes img to path. A .png extension writes a PNG, anything else an lz4
// compressed .frame file.
func WriteCapture(path string, img *libio.IntImage) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = libio.EncodePNG(file, img)
	default:
		err = libio.EncodeFrame(file, img, libio.FrameCompressionLz4)
	}
	if err != nil {
		return fmt.Errorf("could not encode %v: %w", path, err)
	}
	return nil
}

func ReadCapture(path string) (*libio.IntImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return libio.DecodeFrame(file)
}
