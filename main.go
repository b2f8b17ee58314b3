package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/vimeo/dials"
	"github.com/vimeo/dials/sources/env"
	"github.com/vimeo/dials/sources/flag"

	"github.com/stewi1014/glpicker/programs"
	"github.com/stewi1014/glpicker/widget"
)

const appID = "com.github.stewi1014.glpicker"

type Config struct {
	Backend     string `dialsdesc:"Where to draw the picker: gtk, glfw or png"`
	Output      string `dialsdesc:"File written by the png backend"`
	Supersample int    `dialsdesc:"Supersampling factor for the png backend"`
	Debug       bool   `dialsdesc:"Enable OpenGL debug output and debug logging"`
	Widget      *widget.Config
}

func defaultConfig() *Config {
	return &Config{
		Backend:     "gtk",
		Output:      "picker.png",
		Supersample: 2,
		Widget:      widget.DefaultConfig(),
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "gtk", "glfw", "png":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Supersample < 1 {
		return fmt.Errorf("supersample %d is less than 1", c.Supersample)
	}
	return c.Widget.Validate()
}

// GLFW and GTK both want the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	mainContext, mainQuit := signal.NotifyContext(context.Background(), os.Interrupt)
	defer mainQuit()

	config := defaultConfig()
	flagSrc, err := flag.NewCmdLineSet(flag.DefaultFlagNameConfig(), config)
	if err != nil {
		panic(err)
	}
	d, err := dials.Config(mainContext, config, &env.Source{}, flagSrc)
	if err != nil {
		panic(err)
	}
	config = d.View()

	level := slog.LevelInfo
	if config.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	programs.SetLogger(logger)

	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	if err := run(mainContext, config); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("glpicker failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config *Config) error {
	w := widget.New(config.Widget)

	switch config.Backend {
	case "glfw":
		return glfwMain(ctx, w, config.Debug)
	case "png":
		if err := w.SavePNG(ctx, config.Output, config.Supersample); err != nil {
			return err
		}
		slog.Info("saved picker", "file", config.Output, "colour", w.Colour())
		return nil
	default:
		return gtkMain(ctx, w, config.Debug)
	}
}
