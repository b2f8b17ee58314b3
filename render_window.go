package main

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stewi1014/glpicker/glcontext"
	"github.com/stewi1014/glpicker/programs"
	"github.com/stewi1014/glpicker/widget"
)

func glfwMain(ctx context.Context, w *widget.Widget, debug bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	window, err := NewGLFWWindow(w, debug)
	if err != nil {
		return err
	}
	defer window.Destroy()

	return window.Run(ctx)
}

// GLFWWindow shows the widget in a fixed size GLFW window.
type GLFWWindow struct {
	*glfw.Window
	gl     *glcontext.Context
	widget *widget.Widget
}

func NewGLFWWindow(w *widget.Widget, debug bool) (*GLFWWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(
		w.Width(),
		w.Height(),
		"GLPicker",
		nil,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	ctx, err := glcontext.Init(debug)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	return &GLFWWindow{
		Window: window,
		gl:     ctx,
		widget: w,
	}, nil
}

// framebufferHeight returns the framebuffer height in device pixels and how
// many of them there are per window coordinate.
func (w *GLFWWindow) framebufferHeight() (int, float64) {
	fbWidth, fbHeight := w.GetFramebufferSize()
	width, _ := w.GetSize()
	if width <= 0 {
		return fbHeight, 1
	}
	return fbHeight, float64(fbWidth) / float64(width)
}

// Run draws until the window is closed or ctx is done.
func (w *GLFWWindow) Run(ctx context.Context) (err error) {
	defer CatchPanicToContext(func(cause error) { err = cause })

	set := programs.NewSet(w.gl)
	defer set.Close(w.gl)

	for !w.ShouldClose() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		height, scale := w.framebufferHeight()
		w.gl.Clear(background)
		w.widget.Paint(w.gl, set, height, scale)
		w.SwapBuffers()

		glfw.WaitEventsTimeout(0.1)
	}

	return nil
}
