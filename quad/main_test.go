package main

import (
	"errors"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/exp/slices"
)

// Hands the shared test window to run and records which platform calls it made.
type recordingPlatform struct {
	calls       []string
	initErr     error
	windowErr   error
	procAddress func(name string) unsafe.Pointer
}

func (r *recordingPlatform) platform() platform {
	procAddress := r.procAddress
	if procAddress == nil {
		procAddress = glfw.GetProcAddress
	}
	return platform{
		Init: func() error {
			r.calls = append(r.calls, "init")
			return r.initErr
		},
		Terminate: func() {
			r.calls = append(r.calls, "terminate")
		},
		CreateWindow: func(scene Scene) (*glfw.Window, error) {
			r.calls = append(r.calls, "create")
			if r.windowErr != nil {
				return nil, r.windowErr
			}
			window.MakeContextCurrent()
			return window, nil
		},
		DestroyWindow: func(*glfw.Window) {
			r.calls = append(r.calls, "destroy")
		},
		ProcAddress: procAddress,
	}
}

func resolveNothing(name string) unsafe.Pointer {
	return nil
}

func TestRunInitFailure(t *testing.T) {
	rec := &recordingPlatform{initErr: errors.New("no display")}
	if code := run(DefaultScene(), arguments{}, rec.platform()); code != exitInitFailure {
		t.Errorf("exit code %d, want %d", code, exitInitFailure)
	}
	if want := []string{"init"}; !slices.Equal(rec.calls, want) {
		t.Errorf("calls %v, want %v", rec.calls, want)
	}
}

func TestRunWindowFailure(t *testing.T) {
	rec := &recordingPlatform{windowErr: errors.New("VersionUnavailable")}
	if code := run(DefaultScene(), arguments{}, rec.platform()); code != exitInitFailure {
		t.Errorf("exit code %d, want %d", code, exitInitFailure)
	}
	if want := []string{"init", "create", "terminate"}; !slices.Equal(rec.calls, want) {
		t.Errorf("calls %v, want %v", rec.calls, want)
	}
}

func TestInitGLMissingFunction(t *testing.T) {
	runOnMain(t, func() {
		// restore the real function pointers for the remaining tests
		defer gl.InitWithProcAddrFunc(glfw.GetProcAddress)

		if err := initGL(resolveNothing); err == nil {
			t.Error("expected error when no GL function resolves")
		}
	})
}

func TestRunLoaderFailure(t *testing.T) {
	rec := &recordingPlatform{procAddress: resolveNothing}
	runOnMain(t, func() {
		defer gl.InitWithProcAddrFunc(glfw.GetProcAddress)

		if code := run(DefaultScene(), arguments{}, rec.platform()); code != exitInitFailure {
			t.Errorf("exit code %d, want %d", code, exitInitFailure)
		}
		if want := []string{"init", "create", "destroy", "terminate"}; !slices.Equal(rec.calls, want) {
			t.Errorf("calls %v, want %v", rec.calls, want)
		}
	})
}

func TestRunExitsCleanly(t *testing.T) {
	rec := &recordingPlatform{}
	runOnMain(t, func() {
		defer window.SetShouldClose(false)

		if code := run(DefaultScene(), arguments{Frames: 2}, rec.platform()); code != exitOk {
			t.Errorf("exit code %d, want %d", code, exitOk)
		}
		if want := []string{"init", "create", "destroy", "terminate"}; !slices.Equal(rec.calls, want) {
			t.Errorf("calls %v, want %v", rec.calls, want)
		}
	})
}

func TestRunCaptureFailure(t *testing.T) {
	rec := &recordingPlatform{}
	args := arguments{
		Frames:      1,
		CapturePath: filepath.Join(t.TempDir(), "missing", "first.frame"),
	}
	runOnMain(t, func() {
		defer window.SetShouldClose(false)

		if code := run(DefaultScene(), args, rec.platform()); code != exitCaptureFailure {
			t.Errorf("exit code %d, want %d", code, exitCaptureFailure)
		}
	})
}

// Without a usable display the real platform fails during init.
func TestRunWithoutDisplay(t *testing.T) {
	if windowErr == nil || window != nil {
		t.Skip("a GL context is available")
	}
	code := exitOk
	onMainThread(func() {
		code = run(DefaultScene(), arguments{Frames: 1}, glfwPlatform)
	})
	if code != exitInitFailure {
		t.Errorf("exit code %d, want %d", code, exitInitFailure)
	}
}
