package main

import (
	"fmt"
	"learn-gl/quad/libgl"
	"learn-gl/quad/libio"
	"learn-gl/quad/libutil"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type windowHints struct {
	Visible                                  bool
	ContextVersionMajor, ContextVersionMinor int
}

var defaultWindowHints = windowHints{
	Visible:             true,
	ContextVersionMajor: 3,
	ContextVersionMinor: 3,
}

// Creates the window and makes its context current. glfw must be initialized.
func createWindow(scene Scene, hints windowHints) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, hints.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.ContextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// required on macOS
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !hints.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	ctx, err := glfw.CreateWindow(scene.Width, scene.Height, scene.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	ctx.MakeContextCurrent()
	return ctx, nil
}

// Loads the GL functions for the current context. Fails when procAddress
// cannot resolve a core 3.3 function.
func initGL(procAddress func(name string) unsafe.Pointer) error {
	if err := gl.InitWithProcAddrFunc(procAddress); err != nil {
		return fmt.Errorf("missing GL function %w", err)
	}

	libgl.GlEnv = libgl.GetGlEnv()
	libgl.State = libgl.NewGlStateManager()
	log.Printf("Using %v\n", libgl.GlEnv)
	return nil
}

type AppOptions struct {
	// Request close after this many frames, 0 for no limit
	MaxFrames int
	// Write the first rendered frame here, see WriteCapture
	CapturePath string
	Stats       bool
}

type App struct {
	scene   Scene
	options AppOptions
	window  *glfw.Window
	input   InputManager
	program libgl.UnboundShaderProgram
	vbo     libgl.UnboundBuffer
	ebo     libgl.UnboundBuffer
	vao     libgl.UnboundVertexArray
	overlay *StatsOverlay
	res     libutil.Releaser

	frames     int
	captureErr error
}

// Sets up every GPU resource the scene needs. The window's context must be
// current and loaded. On error everything created so far is already deleted.
func NewApp(window *glfw.Window, scene Scene, options AppOptions) (*App, error) {
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	app := &App{
		scene:   scene,
		options: options,
		window:  window,
		input:   NewInputManager(window, glfw.GetTime, glfw.KeyEscape),
	}
	if err := app.init(); err != nil {
		app.Delete()
		return nil, err
	}
	return app, nil
}

func (app *App) init() (err error) {
	window, scene := app.window, app.scene

	window.SetFramebufferSizeCallback(app.onFramebufferResize)
	app.res.HoldFunc(func() { window.SetFramebufferSizeCallback(nil) })
	fbWidth, fbHeight := window.GetFramebufferSize()
	libgl.State.Viewport(0, 0, fbWidth, fbHeight)

	app.program, err = libgl.NewShaderProgram("quad", scene.VertexSource, scene.FragmentSource)
	if err != nil {
		return err
	}
	app.res.Hold(app.program)

	app.vbo = libgl.NewBuffer()
	app.res.Hold(app.vbo)
	app.vbo.Allocate(scene.Vertices, gl.STATIC_DRAW)

	app.ebo = libgl.NewBuffer()
	app.res.Hold(app.ebo)
	app.ebo.Allocate(scene.Indices, gl.STATIC_DRAW)

	app.vao = libgl.NewVertexArray()
	app.res.Hold(app.vao)
	app.vao.Layout(app.vbo, 0, 3, gl.FLOAT, false, 3*4, 0)
	app.vao.BindElementBuffer(app.ebo)
	libgl.State.BindVertexArray(0)

	if err := libgl.CheckError("upload quad"); err != nil {
		if libgl.IsOutOfMemory(err) {
			log.Printf("Out of GPU memory uploading %d vertices, %d indices\n", len(scene.Vertices), len(scene.Indices))
		}
		return err
	}

	if app.options.Stats {
		app.overlay, err = NewStatsOverlay(window, Res_ImguiVshSrc, Res_ImguiFshSrc)
		if err != nil {
			return err
		}
		app.res.Hold(app.overlay)
	}

	return nil
}

func (app *App) onFramebufferResize(w *glfw.Window, width, height int) {
	libgl.State.Viewport(0, 0, width, height)
}

// Requests close when escape is held.
func (app *App) processInput() {
	app.input.Update()
	if app.input.IsKeyDown(glfw.KeyEscape) {
		app.window.SetShouldClose(true)
	}
}

// Draws the scene into the back buffer.
func (app *App) Render() {
	libgl.State.SetEnabled()
	c := app.scene.ClearColor
	libgl.State.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	app.program.Bind()
	app.vao.Bind()
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(app.scene.Indices)), gl.UNSIGNED_INT, 0)
}

func (app *App) Frame() {
	app.processInput()
	app.Render()

	if app.frames == 0 && app.options.CapturePath != "" {
		app.captureErr = WriteCapture(app.options.CapturePath, CaptureFramebuffer(app.window))
		if app.captureErr != nil {
			log.Printf("Could not write capture: %v\n", app.captureErr)
		}
	}

	if app.overlay != nil {
		app.overlay.Draw(app.input.TimeDelta())
	}

	app.window.SwapBuffers()
	glfw.PollEvents()

	app.frames++
	if app.options.MaxFrames > 0 && app.frames >= app.options.MaxFrames {
		app.window.SetShouldClose(true)
	}
}

func (app *App) Run() {
	for !app.window.ShouldClose() {
		app.Frame()
	}
}

func (app *App) Frames() int {
	return app.frames
}

func (app *App) CaptureErr() error {
	return app.captureErr
}

// Deletes all GPU resources. The window is owned by the caller.
func (app *App) Delete() {
	app.res.Release()
}

// Reads back the default framebuffer's back buffer.
func CaptureFramebuffer(window *glfw.Window) *libio.IntImage {
	width, height := window.GetFramebufferSize()
	pix := libgl.ReadPixelsRGBA(libgl.DefaultFramebuffer, gl.BACK, 0, 0, width, height)
	return libio.NewIntImage(pix, 4, width, height)
}
