package libgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

type texture2D struct {
	glId uint32
}

type UnboundTexture interface {
	Id() uint32
	// Allocates a single level and uploads pixels, which may be nil.
	Load(internalFormat int32, width, height int, format, xtype uint32, pixels any)
	FilterMode(min, mag int32)
	WrapMode(s, t int32)
	Delete()
}

func NewTexture2D() UnboundTexture {
	var id uint32
	gl.GenTextures(1, &id)
	return &texture2D{
		glId: id,
	}
}

func (tex *texture2D) Id() uint32 {
	return tex.glId
}

// Edits go through the active unit, so the cache for it has to be updated.
func (tex *texture2D) bindForEdit() {
	State.BindTextureUnit(State.ActiveTextureUnit, gl.TEXTURE_2D, tex.glId)
}

func (tex *texture2D) Load(internalFormat int32, width, height int, format, xtype uint32, pixels any) {
	tex.bindForEdit()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, format, xtype, Pointer(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
}

func (tex *texture2D) FilterMode(min, mag int32) {
	tex.bindForEdit()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, min)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, mag)
}

func (tex *texture2D) WrapMode(s, t int32) {
	tex.bindForEdit()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, s)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, t)
}

func (tex *texture2D) Delete() {
	for unit, id := range State.TextureUnits {
		if id == tex.glId {
			State.TextureUnits[unit] = 0
		}
	}
	gl.DeleteTextures(1, &tex.glId)
	tex.glId = 0
}
