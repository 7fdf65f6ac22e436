package main

import (
	"runtime"
	"strconv"
	"time"

	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vizardry/vizardry/behaviour/glsl"
	"github.com/vizardry/vizardry/core"
	"github.com/vizardry/vizardry/gl"
	"github.com/vizardry/vizardry/scene"
)

func init() {
	// GL contexts are bound to the thread that created them.
	runtime.LockOSThread()
}

// StaticResources holds the shaders shipped with the binary.
var StaticResources = packr.NewBox("./resources")

func configure() core.Configuration {
	// A .env file next to the binary overrides the defaults.
	_ = godotenv.Load()

	return core.Configuration{
		Clock: core.ClockConfiguration{
			FramesPerSecond: envInt("VIZARDRY_FPS", 60),
			EventPollDelay:  envInt("VIZARDRY_EVENT_POLL_MS", 2),
		},
		Display: core.DisplayConfiguration{
			Title:  envy.Get("VIZARDRY_TITLE", "Vizardry"),
			Width:  uint32(envInt("VIZARDRY_WIDTH", 800)),
			Height: uint32(envInt("VIZARDRY_HEIGHT", 600)),
		},
	}
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(envy.Get(key, strconv.Itoa(fallback)))
	if err != nil {
		log.WithField("key", key).Warn("ignoring non-numeric environment override")
		return fallback
	}
	return value
}

func newWindow(cfg core.DisplayConfiguration) *sdl.Window {
	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

func main() {
	configuration := configure()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	window := newWindow(configuration.Display)
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Fatal(err)
	}
	defer sdl.GLDeleteContext(glContext)

	fns, err := gl.OpenGL()
	if err != nil {
		log.Fatal(err)
	}
	ctx := gl.NewContext(fns)

	width := int32(configuration.Display.Width)
	height := int32(configuration.Display.Height)
	fns.Viewport(0, 0, width, height)

	vizScene := scene.New()
	shader := glsl.New()
	shader.SetViewport(width, height)

	node, err := vizScene.NewNode("inline", shader)
	if err != nil {
		log.Fatal(err)
	}
	if err := node.Attach(vizScene.Root()); err != nil {
		log.Fatal(err)
	}
	if src, err := StaticResources.FindString("default.frag"); err == nil {
		if err := node.Params().Set("frag", src); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Info("no bundled shader, using the built-in default")
	}
	if err := vizScene.SetActive(node); err != nil {
		log.Fatal(err)
	}

	clock := core.NewClock(configuration.Clock)
	defer clock.Stop()

	log.WithFields(log.Fields{
		"fps":  clock.Fps(),
		"node": node.Path(),
	}).Info("entering render loop")

	last := time.Now()

EventLoop:
	for {
		select {
		case <-clock.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						break EventLoop
					}
				case *sdl.QuitEvent:
					break EventLoop
				case *sdl.WindowEvent:
					if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
						fns.Viewport(0, 0, et.Data1, et.Data2)
						shader.SetViewport(et.Data1, et.Data2)
					}
				}
			}
		case <-clock.FrameTicker().C:
			now := time.Now()
			vizScene.Advance(now.Sub(last).Seconds())
			last = now
			vizScene.GLRender(ctx)
			window.GLSwap()
		}
	}

	log.Info("event loop exited")

	// Orderly teardown first, the flush sweep as the safety net after.
	vizScene.GLCleanup(ctx)
	if err := ctx.Flush(); err != nil {
		log.WithError(err).Error("releasing leftover GL resources failed")
	}
}
