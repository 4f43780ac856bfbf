package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/colormap/internal/app"
	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/colorspace"
	"github.com/irfansharif/colormap/internal/palette"
	"github.com/irfansharif/colormap/internal/render"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	paletteFlag    = flag.String("palette", os.Getenv("LUTVIEW_PALETTE"), "palette name or prefix to start with")
	samplesFlag    = flag.Int("samples", samples(), "number of table entries")
	illuminantFlag = flag.String("illuminant", "D65", "reference white for diverging segments (D65 or D50)")
	stopsFlag      = flag.String("stops", "", "custom palette as ratio:#rrggbb[:linear|diverging],...")
)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("LUTVIEW_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(a *app.App, hover string, fps float64, stats render.Stats) string {
	return fmt.Sprintf("%s%s (%.1f FPS, %.2fµs/draw, %.2fms/prepare)",
		a.Title(), hover, fps, stats.LastDrawTimeUs, stats.LastPrepareTimeMs)
}

func main() {
	flag.Parse()

	il, err := colorspace.ParseIlluminant(*illuminantFlag)
	if err != nil {
		log.Fatalf("Invalid -illuminant: %v", err)
	}
	application := app.NewApp(
		app.NewView(*samplesFlag, il),
		colormap.Resolve(*paletteFlag, colormap.GrayScale),
	)
	if *stopsFlag != "" {
		custom, err := palette.ParseStops(*stopsFlag)
		if err != nil {
			log.Fatalf("Invalid -stops: %v", err)
		}
		application.SetCustom(custom)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(
		1024, // width
		256,  // height
		application.Title(),
		nil, nil,
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to set up renderer: %v", err)
	}
	defer renderer.Delete()

	eventHandlers := NewEventHandlers(window, application)

	frameCount := 0
	lastFPSUpdate := time.Now()
	fps := 0.0

	// Main loop.
	for !window.ShouldClose() {
		eventHandlers.handleContinuousShift()

		w, h := window.GetFramebufferSize()
		if application.Dirty && w > 0 && h > 0 {
			if err := renderer.Prepare(application.Table(), w, h); err != nil {
				log.Fatalf("Prepare error: %v", err)
			}
			application.Dirty = false
			window.SetTitle(makeTitle(application, eventHandlers.hoverLabel(), fps, renderer.Stats()))
		}

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Draw()
		window.SwapBuffers()
		glfw.PollEvents()

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps = float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			frameCount = 0
			lastFPSUpdate = now

			stats := renderer.Stats()
			window.SetTitle(makeTitle(application, eventHandlers.hoverLabel(), fps, stats))

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS", fps)
			runtimeLogger.Printf("Table:          %d swatches", stats.Swatches)
			runtimeLogger.Printf("Render time:    %.2f µs (last draw), %.2f ms (last prepare)", stats.LastDrawTimeUs, stats.LastPrepareTimeMs)
			runtimeLogger.Println("==============================")
		}
	}
}

func samples() int {
	s := os.Getenv("LUTVIEW_SAMPLES")
	if s == "" {
		return 256
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid LUTVIEW_SAMPLES value '%s': %v", s, err)
	}
	return n
}
