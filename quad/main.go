package main

import (
	"flag"
	"learn-gl/quad/libutil"
	"log"
	"os"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	exitOk             = 0
	exitInitFailure    = -1
	exitCaptureFailure = 1
)

type arguments struct {
	Stats        bool
	CapturePath  string
	Frames       int
	SwapInterval int
}

var Arguments = arguments{
	SwapInterval: 1,
}

// The window system calls run depends on.
type platform struct {
	Init          func() error
	Terminate     func()
	CreateWindow  func(scene Scene) (*glfw.Window, error)
	DestroyWindow func(window *glfw.Window)
	ProcAddress   func(name string) unsafe.Pointer
}

var glfwPlatform = platform{
	Init:      glfw.Init,
	Terminate: glfw.Terminate,
	CreateWindow: func(scene Scene) (*glfw.Window, error) {
		return createWindow(scene, defaultWindowHints)
	},
	DestroyWindow: (*glfw.Window).Destroy,
	ProcAddress:   glfw.GetProcAddress,
}

func init() {
	// glfw and GL calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	flag.BoolVar(&Arguments.Stats, "stats", Arguments.Stats, "show a frame time overlay")
	flag.StringVar(&Arguments.CapturePath, "capture", Arguments.CapturePath, "write the first frame to this .png or .frame file")
	flag.IntVar(&Arguments.Frames, "frames", Arguments.Frames, "close after this many frames, 0 for no limit")
	flag.IntVar(&Arguments.SwapInterval, "swap-interval", Arguments.SwapInterval, "frames to wait per buffer swap, 0 disables vsync")
	flag.Parse()

	log.SetOutput(os.Stdout)
	os.Exit(run(DefaultScene(), Arguments, glfwPlatform))
}

func run(scene Scene, args arguments, p platform) int {
	var res libutil.Releaser
	defer res.Release()

	if err := p.Init(); err != nil {
		log.Printf("Failed to initialize GLFW: %v\n", err)
		return exitInitFailure
	}
	res.HoldFunc(p.Terminate)

	window, err := p.CreateWindow(scene)
	if err != nil {
		log.Printf("Failed to create GLFW window: %v\n", err)
		return exitInitFailure
	}
	res.HoldFunc(func() { p.DestroyWindow(window) })
	glfw.SwapInterval(args.SwapInterval)

	if err := initGL(p.ProcAddress); err != nil {
		log.Printf("Failed to initialize OpenGL: %v\n", err)
		return exitInitFailure
	}

	app, err := NewApp(window, scene, AppOptions{
		MaxFrames:   args.Frames,
		CapturePath: args.CapturePath,
		Stats:       args.Stats,
	})
	if err != nil {
		log.Printf("Failed to set up scene: %v\n", err)
		return exitInitFailure
	}
	res.Hold(app)

	app.Run()
	log.Printf("Rendered %d frames\n", app.Frames())

	if app.CaptureErr() != nil {
		return exitCaptureFailure
	}
	return exitOk
}
