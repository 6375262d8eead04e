package main

import (
	"fmt"
	"learn-gl/quad/libgl"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

// A read only Dear ImGui window with frame timings. It does not take input.
type StatsOverlay struct {
	context  *imgui.Context
	io       imgui.IO
	window   *glfw.Window
	vao      libgl.UnboundVertexArray
	vbo      libgl.UnboundBuffer
	ebo      libgl.UnboundBuffer
	atlas    libgl.UnboundTexture
	shader   libgl.UnboundShaderProgram
	frameAvg float32
}

func NewStatsOverlay(window *glfw.Window, vshSource, fshSource string) (*StatsOverlay, error) {
	shader, err := libgl.NewShaderProgram("imgui", vshSource, fshSource)
	if err != nil {
		return nil, err
	}

	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	dispWidth, dispHeight := window.GetSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	imgui.StyleColorsDark()

	vbo := libgl.NewBuffer()
	vbo.Reserve(64 * 1024)
	ebo := libgl.NewBuffer()
	ebo.Reserve(16 * 1024)

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	vao := libgl.NewVertexArray()
	vao.Layout(vbo, 0, 2, gl.FLOAT, false, vertexSize, vertexOffsetPos)
	vao.Layout(vbo, 1, 2, gl.FLOAT, false, vertexSize, vertexOffsetUv)
	vao.Layout(vbo, 2, 4, gl.UNSIGNED_BYTE, true, vertexSize, vertexOffsetCol)
	vao.BindElementBuffer(ebo)
	libgl.State.BindVertexArray(0)

	image := io.Fonts().TextureDataRGBA32()
	atlas := libgl.NewTexture2D()
	atlas.Load(gl.RGBA8, image.Width, image.Height, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	atlas.FilterMode(gl.LINEAR, gl.LINEAR)
	atlas.WrapMode(gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE)
	io.Fonts().SetTextureID(imgui.TextureID(atlas.Id()))

	return &StatsOverlay{
		context: context,
		io:      io,
		window:  window,
		vao:     vao,
		vbo:     vbo,
		ebo:     ebo,
		atlas:   atlas,
		shader:  shader,
	}, nil
}

// Smoothed frame time in seconds
func (gui *StatsOverlay) FrameTime() float32 {
	return gui.frameAvg
}

func (gui *StatsOverlay) update(delta float32) {
	if delta <= 0 {
		return
	}
	if gui.frameAvg == 0 {
		gui.frameAvg = delta
		return
	}
	gui.frameAvg += (delta - gui.frameAvg) * 0.05
}

func (gui *StatsOverlay) Draw(delta float32) {
	gui.update(delta)

	dispWidth, dispHeight := gui.window.GetSize()
	fbWidth, fbHeight := gui.window.GetFramebufferSize()
	if dispWidth == 0 || dispHeight == 0 {
		// minimized
		return
	}
	gui.io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	if delta > 0 {
		gui.io.SetDeltaTime(delta)
	}

	imgui.NewFrame()
	imgui.SetNextWindowPos(imgui.Vec2{X: 8, Y: 8})
	imgui.BeginV("stats", nil, imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoMove)
	if gui.frameAvg > 0 {
		imgui.Text(fmt.Sprintf("%.2f ms (%.0f fps)", gui.frameAvg*1000, 1/gui.frameAvg))
	}
	imgui.Text(fmt.Sprintf("framebuffer %dx%d", fbWidth, fbHeight))
	if libgl.GlEnv != nil {
		imgui.Text(libgl.GlEnv.Renderer)
	}
	imgui.End()
	imgui.Render()

	gui.render(dispWidth, dispHeight, fbWidth, fbHeight)
}

func (gui *StatsOverlay) render(dispWidth, dispHeight, fbWidth, fbHeight int) {
	libgl.State.Viewport(0, 0, fbWidth, fbHeight)
	ortho := mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0)

	gui.vao.Bind()
	gui.shader.Bind().SetUniform("u_proj_mat", ortho)

	libgl.State.SetEnabled(libgl.Blend, libgl.ScissorTest)
	libgl.State.BlendEquation(libgl.BlendFuncAdd)
	libgl.State.BlendFunc(libgl.BlendSrcAlpha, libgl.BlendOneMinusSrcAlpha)

	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	var indexType uint32
	indexSize := imgui.IndexBufferLayout()
	switch indexSize {
	case 1:
		indexType = gl.UNSIGNED_BYTE
	case 2:
		indexType = gl.UNSIGNED_SHORT
	case 4:
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gui.vbo.Reserve(vertexBufferSize)
		if vertexBufferSize > 0 {
			gui.vbo.WriteRange(0, vertexBufferSize, vertexBuffer)
		}

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gui.ebo.Reserve(indexBufferSize)
		if indexBufferSize > 0 {
			gui.ebo.WriteRange(0, indexBufferSize, indexBuffer)
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			libgl.State.BindTextureUnit(0, gl.TEXTURE_2D, uint32(cmd.TextureID()))
			clipRect := cmd.ClipRect()
			x, y := int(clipRect.X), fbHeight-int(clipRect.W)
			if y <= 0 {
				y = 0
			}
			libgl.State.Scissor(x, y, int(clipRect.Z-clipRect.X), int(clipRect.W-clipRect.Y))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}

	libgl.State.SetEnabled()
}

func (gui *StatsOverlay) Delete() {
	gui.vao.Delete()
	gui.vbo.Delete()
	gui.ebo.Delete()
	gui.atlas.Delete()
	gui.shader.Delete()
	gui.context.Destroy()
}
