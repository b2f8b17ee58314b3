package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/stewi1014/glpicker/glcontext"
	"github.com/stewi1014/glpicker/programs"
	"github.com/stewi1014/glpicker/widget"
)

var background = mgl32.Vec4{0.16, 0.16, 0.16, 1}

func gtkMain(ctx context.Context, w *widget.Widget, debug bool) error {
	gtk.Init(nil)
	app, err := gtk.ApplicationNew(appID, glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return fmt.Errorf("gtk.ApplicationNew failed: %w", err)
	}

	appContext, appQuit := context.WithCancelCause(ctx)
	defer appQuit(nil)

	app.Connect("activate", func() {
		renderWindow := NewRenderWindow(app, w, debug, appQuit)
		if renderWindow == nil {
			return
		}
		renderWindow.Connect("destroy", func() {
			appQuit(nil)
		})
		renderWindow.SetTitle("GLPicker")
	})

	go func() {
		<-appContext.Done()
		glib.IdleAdd(app.Quit)
	}()
	app.Run(nil)
	return context.Cause(appContext)
}

// RenderWindow shows the widget in a GLArea above a label with the current
// colour.
type RenderWindow struct {
	*gtk.ApplicationWindow
	gla    *gtk.GLArea
	label  *gtk.Label
	height int

	gl     *glcontext.Context
	set    *programs.Set
	widget *widget.Widget
	debug  bool

	quit func(error)
}

func NewRenderWindow(
	app *gtk.Application,
	w *widget.Widget,
	debug bool,
	quit func(error),
) *RenderWindow {
	var err error
	rw := &RenderWindow{
		widget: w,
		debug:  debug,
		quit:   quit,
		height: w.Height(),
	}

	rw.ApplicationWindow, err = gtk.ApplicationWindowNew(app)
	if err != nil {
		quit(fmt.Errorf("gtk.ApplicationWindowNew: %w", err))
		return nil
	}

	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 4)
	if err != nil {
		quit(fmt.Errorf("gtk.BoxNew: %w", err))
		return nil
	}

	rw.gla, err = gtk.GLAreaNew()
	if err != nil {
		quit(fmt.Errorf("gtk.GLAreaNew: %w", err))
		return nil
	}

	rw.gla.SetRequiredVersion(4, 6)
	rw.gla.SetSizeRequest(w.Width(), w.Height())
	rw.gla.Connect("realize", rw.glaRealize)
	rw.gla.Connect("render", rw.glaRender)
	rw.gla.Connect("unrealize", rw.glaUnrealize)
	rw.gla.Connect("resize", rw.resize)

	rw.label, err = gtk.LabelNew(w.Colour().String())
	if err != nil {
		quit(fmt.Errorf("gtk.LabelNew: %w", err))
		return nil
	}
	rw.label.SetSelectable(true)

	box.PackStart(rw.gla, true, true, 0)
	box.PackStart(rw.label, false, false, 4)
	rw.Add(box)
	rw.ShowAll()

	return rw
}

// fail reports a fatal error to the user before quitting.
func (rw *RenderWindow) fail(err error) {
	slog.Error("render window failed", "err", err)
	NewErrorDialog(rw.ApplicationWindow, err)
	rw.quit(err)
}

func (rw *RenderWindow) glaRealize(gla *gtk.GLArea) {
	defer CatchPanicToContext(rw.fail)

	gla.MakeCurrent()

	ctx, err := glcontext.Init(rw.debug)
	if err != nil {
		rw.fail(err)
		return
	}

	rw.gl = ctx
	rw.set = programs.NewSet(ctx)
}

func (rw *RenderWindow) glaRender(gla *gtk.GLArea) bool {
	if rw.set == nil {
		return true
	}

	rw.gl.Clear(background)
	rw.widget.Paint(rw.gl, rw.set, rw.height, float64(gla.GetScaleFactor()))
	return true
}

func (rw *RenderWindow) glaUnrealize(gla *gtk.GLArea) {
	if rw.set == nil {
		return
	}

	gla.MakeCurrent()
	rw.set.Close(rw.gl)
	rw.set = nil
}

// resize reports the GL area size in device pixels.
func (rw *RenderWindow) resize(gla *gtk.GLArea, width, height int) {
	rw.height = height
}
