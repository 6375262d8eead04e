package libgl

import (
	"encoding/binary"
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type buffer struct {
	glId  uint32
	size  int
	usage uint32
}

type UnboundBuffer interface {
	Id() uint32
	// Allocates storage for data and uploads it. data must have a fixed size, see binary.Size.
	Allocate(data any, usage int)
	AllocateEmpty(size int, usage int)
	// Makes sure the storage holds at least size bytes. Existing contents are discarded when it has to grow.
	Reserve(size int) bool
	Write(offset int, data any)
	WriteRange(offset int, size int, data any)
	Size() int
	Bind(target uint32) BoundBuffer
	Delete()
}

type BoundBuffer interface {
	UnboundBuffer
}

func NewBuffer() UnboundBuffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return &buffer{
		glId: id,
	}
}

func (vbo *buffer) Id() uint32 {
	return vbo.glId
}

func (vbo *buffer) Bind(target uint32) BoundBuffer {
	State.BindBuffer(target, vbo.glId)
	return BoundBuffer(vbo)
}

func (vbo *buffer) Size() int {
	return vbo.size
}

// Uploads go through GL_COPY_WRITE_BUFFER so they never disturb the
// element buffer binding of the current vertex array.
func (vbo *buffer) bindForWrite() {
	State.BindCopyWriteBuffer(vbo.glId)
}

func (vbo *buffer) AllocateEmpty(size int, usage int) {
	if size <= 0 {
		log.Panicf("invalid buffer size %d", size)
	}
	vbo.bindForWrite()
	gl.BufferData(gl.COPY_WRITE_BUFFER, size, nil, uint32(usage))
	vbo.size = size
	vbo.usage = uint32(usage)
}

func (vbo *buffer) Allocate(data any, usage int) {
	size := binary.Size(data)
	if size == -1 {
		log.Panicf("%T does not have a fixed size", data)
	}
	if size == 0 {
		log.Panicf("zero size buffer allocation")
	}
	vbo.bindForWrite()
	gl.BufferData(gl.COPY_WRITE_BUFFER, size, Pointer(data), uint32(usage))
	vbo.size = size
	vbo.usage = uint32(usage)
}

func (vbo *buffer) Reserve(size int) bool {
	if size <= vbo.size {
		return false
	}
	newSize := vbo.size
	if newSize == 0 {
		newSize = 1024
	}
	for newSize < size {
		newSize += newSize/2 + 1
	}
	usage := int(vbo.usage)
	if usage == 0 {
		usage = gl.STREAM_DRAW
	}
	vbo.AllocateEmpty(newSize, usage)
	return true
}

func (vbo *buffer) Write(offset int, data any) {
	size := binary.Size(data)
	if size == -1 {
		log.Panicf("%T does not have a fixed size", data)
	}
	vbo.WriteRange(offset, size, data)
}

func (vbo *buffer) WriteRange(offset int, size int, data any) {
	if offset+size > vbo.size {
		log.Panicf("buffer write of %d bytes at %d exceeds size %d", size, offset, vbo.size)
	}
	vbo.bindForWrite()
	gl.BufferSubData(gl.COPY_WRITE_BUFFER, offset, size, Pointer(data))
}

func (vbo *buffer) Delete() {
	State.forget(vbo.glId)
	gl.DeleteBuffers(1, &vbo.glId)
	vbo.glId = 0
	vbo.size = 0
}

type vertexArray struct {
	glId uint32
}

type UnboundVertexArray interface {
	// Describes attribute attributeIndex as size components of dataType read from vbo.
	Layout(vbo UnboundBuffer, attributeIndex int, size int, dataType int, normalized bool, stride int, offset int)
	BindElementBuffer(ebo UnboundBuffer)
	Id() uint32
	Bind() BoundVertexArray
	Delete()
}

type BoundVertexArray interface {
	UnboundVertexArray
}

func NewVertexArray() UnboundVertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &vertexArray{
		glId: id,
	}
}

func (vao *vertexArray) Bind() BoundVertexArray {
	State.BindVertexArray(vao.glId)
	return BoundVertexArray(vao)
}

func (vao *vertexArray) Id() uint32 {
	return vao.glId
}

func (vao *vertexArray) Layout(vbo UnboundBuffer, attributeIndex int, size int, dataType int, normalized bool, stride int, offset int) {
	vao.Bind()
	State.BindArrayBuffer(vbo.Id())
	gl.VertexAttribPointerWithOffset(uint32(attributeIndex), int32(size), uint32(dataType), normalized, int32(stride), uintptr(offset))
	gl.EnableVertexAttribArray(uint32(attributeIndex))
}

func (vao *vertexArray) BindElementBuffer(ebo UnboundBuffer) {
	vao.Bind()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo.Id())
}

func (vao *vertexArray) Delete() {
	if State.VertexArray == vao.glId {
		State.VertexArray = 0
	}
	gl.DeleteVertexArrays(1, &vao.glId)
	vao.glId = 0
}
