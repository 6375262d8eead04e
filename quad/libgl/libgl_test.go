package libgl_test

import (
	"errors"
	"fmt"
	"learn-gl/quad/libgl"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

const passThroughVsh = `#version 330 core
layout (location = 0) in vec3 a_pos;
void main() {
	gl_Position = vec4(a_pos, 1.0);
}
`

const constantFsh = `#version 330 core
out vec4 o_color;
void main() {
	o_color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

func TestShaderProgram(t *testing.T) {
	runOnMain(t, func() {
		prog, err := libgl.NewShaderProgram("test", passThroughVsh, constantFsh)
		if err != nil {
			t.Error(err)
			return
		}
		defer prog.Delete()

		if prog.Id() == 0 {
			t.Error("program id is 0")
		}
		if !gl.IsProgram(prog.Id()) {
			t.Error("program id does not name a program")
		}

		var attached int32
		gl.GetProgramiv(prog.Id(), gl.ATTACHED_SHADERS, &attached)
		if attached != 0 {
			t.Errorf("expected stage objects to be detached, %d still attached", attached)
		}
	})
}

func TestShaderCompileError(t *testing.T) {
	runOnMain(t, func() {
		broken := "#version 330 core\nvoid main() { gl_Position = vec4(undefined_symbol, 1.0); }\n"
		prog, err := libgl.NewShaderProgram("broken", broken, constantFsh)
		if err == nil {
			prog.Delete()
			t.Error("expected compile error")
			return
		}

		var compileErr *libgl.ShaderCompileError
		if !errors.As(err, &compileErr) {
			t.Errorf("expected ShaderCompileError, got %T: %v", err, err)
			return
		}
		if compileErr.Stage != "vertex" {
			t.Errorf("expected vertex stage to fail, got %v", compileErr.Stage)
		}
		if err := libgl.CheckError("compile"); err != nil {
			t.Errorf("failed compilation left a GL error: %v", err)
		}
	})
}

func TestShaderLinkError(t *testing.T) {
	runOnMain(t, func() {
		fsh := "#version 330 core\nin vec4 v_never_written;\nout vec4 o_color;\nvoid main() { o_color = v_never_written; }\n"
		prog, err := libgl.NewShaderProgram("mismatch", passThroughVsh, fsh)
		if err == nil {
			prog.Delete()
			t.Error("expected link error")
			return
		}

		var linkErr *libgl.ShaderLinkError
		if !errors.As(err, &linkErr) {
			t.Errorf("expected ShaderLinkError, got %T: %v", err, err)
			return
		}
		if linkErr.Name != "mismatch" {
			t.Errorf("expected program name in error, got %q", linkErr.Name)
		}
	})
}

func TestBufferAllocate(t *testing.T) {
	runOnMain(t, func() {
		vertices := []mgl32.Vec3{{0.5, 0.5, 0}, {0.5, -0.5, 0}, {-0.5, -0.5, 0}, {-0.5, 0.5, 0}}
		indices := []uint32{0, 1, 3, 1, 2, 3}

		vbo := libgl.NewBuffer()
		defer vbo.Delete()
		vbo.Allocate(vertices, gl.STATIC_DRAW)

		ebo := libgl.NewBuffer()
		defer ebo.Delete()
		ebo.Allocate(indices, gl.STATIC_DRAW)

		if err := libgl.CheckError("upload"); err != nil {
			t.Error(err)
			return
		}
		if vbo.Size() != 4*3*4 {
			t.Errorf("vertex buffer size %d, expected %d", vbo.Size(), 4*3*4)
		}
		if ebo.Size() != 6*4 {
			t.Errorf("index buffer size %d, expected %d", ebo.Size(), 6*4)
		}

		readBack := make([]uint32, len(indices))
		ebo.Bind(gl.COPY_WRITE_BUFFER)
		gl.GetBufferSubData(gl.COPY_WRITE_BUFFER, 0, ebo.Size(), libgl.Pointer(readBack))
		if !slices.Equal(readBack, indices) {
			t.Errorf("index buffer holds %v, expected %v", readBack, indices)
		}
	})
}

func TestBufferReserve(t *testing.T) {
	runOnMain(t, func() {
		buf := libgl.NewBuffer()
		defer buf.Delete()

		if !buf.Reserve(100) {
			t.Error("expected empty buffer to grow")
			return
		}
		size := buf.Size()
		if size < 100 {
			t.Errorf("reserved %d bytes, expected at least 100", size)
			return
		}
		if buf.Reserve(size) {
			t.Error("buffer grew although it was large enough")
		}
		if !buf.Reserve(size + 1) {
			t.Error("buffer did not grow")
		}
		buf.Write(0, []float32{1, 2, 3, 4})
		if err := libgl.CheckError("reserve"); err != nil {
			t.Error(err)
		}
	})
}

func TestVertexArrayLayout(t *testing.T) {
	runOnMain(t, func() {
		vbo := libgl.NewBuffer()
		defer vbo.Delete()
		vbo.Allocate([]float32{0, 0, 0, 1, 1, 1}, gl.STATIC_DRAW)

		ebo := libgl.NewBuffer()
		defer ebo.Delete()
		ebo.Allocate([]uint32{0, 1, 0}, gl.STATIC_DRAW)

		vao := libgl.NewVertexArray()
		defer vao.Delete()
		vao.Layout(vbo, 0, 3, gl.FLOAT, false, 3*4, 0)
		vao.BindElementBuffer(ebo)

		var enabled, size, stride, elementBuffer int32
		gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_ENABLED, &enabled)
		gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_SIZE, &size)
		gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_STRIDE, &stride)
		gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &elementBuffer)

		if enabled != gl.TRUE {
			t.Error("attribute 0 is not enabled")
		}
		if size != 3 || stride != 12 {
			t.Errorf("attribute 0 has size %d and stride %d, expected 3 and 12", size, stride)
		}
		if uint32(elementBuffer) != ebo.Id() {
			t.Errorf("element buffer %d bound, expected %d", elementBuffer, ebo.Id())
		}
	})
}

func TestReadPixelsClearColor(t *testing.T) {
	runOnMain(t, func() {
		libgl.State.Viewport(0, 0, 64, 64)
		libgl.State.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		got := libgl.ReadPixelRGBA(10, 10)
		if got[0] < 50 || got[0] > 52 || got[1] < 76 || got[1] > 78 || got[3] != 255 {
			t.Errorf("read %v after clearing to (0.2, 0.3, 0.3, 1.0)", got)
		}

		pix := libgl.ReadPixelsRGBA(libgl.DefaultFramebuffer, gl.BACK, 0, 0, 4, 2)
		if len(pix) != 4*2*4 {
			t.Errorf("read %d bytes, expected %d", len(pix), 4*2*4)
		}
	})
}

func TestStateManagerCachesViewport(t *testing.T) {
	runOnMain(t, func() {
		libgl.State.Viewport(0, 0, 32, 16)
		if v := libgl.State.QueryViewport(); v != [4]int{0, 0, 32, 16} {
			t.Errorf("viewport is %v, expected [0 0 32 16]", v)
		}
	})
}

func TestGlEnv(t *testing.T) {
	runOnMain(t, func() {
		env := libgl.GetGlEnv()
		if env.Version == "" || env.Renderer == "" {
			t.Errorf("empty environment: %+v", env)
		}
		if env.VendorId == "" {
			t.Error("vendor id not set")
		}
	})
}

func TestIsOutOfMemory(t *testing.T) {
	oom := fmt.Errorf("upload quad: %w", &libgl.GlError{Codes: []string{"GL_INVALID_VALUE", "GL_OUT_OF_MEMORY"}})
	if !libgl.IsOutOfMemory(oom) {
		t.Errorf("%v not reported as out of memory", oom)
	}
	other := fmt.Errorf("upload quad: %w", &libgl.GlError{Codes: []string{"GL_INVALID_ENUM"}})
	if libgl.IsOutOfMemory(other) {
		t.Errorf("%v reported as out of memory", other)
	}
	if libgl.IsOutOfMemory(errors.New("GL_OUT_OF_MEMORY")) {
		t.Error("plain error reported as out of memory")
	}
}
