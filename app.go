package main

import (
	"flag"
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/icexin/learngl/lesson"
	log "github.com/sirupsen/logrus"
)

var (
	texturePath = flag.String("texture", "", "image file for textured lessons, empty generates one")
)

var clearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

type App struct {
	win   *glfw.Window
	store *Store

	name  string
	title string
	scene lesson.Scene

	fps       FPS
	wireframe bool
	closed    bool
}

func initGL(w, h int, title string) (*glfw.Window, error) {
	err := glfw.Init()
	if err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, gl.TRUE)

	win, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	glfw.SwapInterval(1) // enable vsync
	return win, nil
}

// NewApp opens the window and sets up the named lesson. store may be nil.
// A stored window size is used only when sizeSet is false.
func NewApp(w, h int, sizeSet bool, name string, store *Store) (*App, error) {
	var (
		err error
		app = &App{store: store}
	)

	state, restore := WindowState{}, false
	if store != nil {
		state, restore = store.GetWindowState()
	}
	w, h = pickWindowSize(w, h, sizeSet, state, restore)

	mainthread.Call(func() {
		var win *glfw.Window
		win, err = initGL(w, h, "learngl")
		if err != nil {
			return
		}
		if restore {
			win.SetPos(int(state.X), int(state.Y))
		}
		win.SetFramebufferSizeCallback(app.onFrameBufferSizeCallback)
		win.SetKeyCallback(app.onKeyCallback)
		fw, fh := win.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		app.win = win
		app.switchLesson(name)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// call on mainthread
func (a *App) switchLesson(name string) {
	info, err := lesson.Lookup(name)
	if err != nil {
		log.Error(err)
		return
	}
	if a.scene != nil {
		a.scene.Release()
		a.scene = nil
	}
	a.name, a.title = info.Name, info.Title

	scene := info.New(lesson.Options{Texture: *texturePath})
	if err := scene.Setup(); err != nil {
		// keep clearing the screen so the window stays responsive
		log.WithField("lesson", name).Errorf("setup failed: %v", err)
		scene.Release()
	} else {
		a.scene = scene
		log.WithField("lesson", name).Info("lesson ready")
	}

	if a.store != nil {
		if err := a.store.UpdateLesson(name); err != nil {
			log.Warnf("save lesson: %v", err)
		}
	}
}

func (a *App) onFrameBufferSizeCallback(win *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (a *App) onKeyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		win.SetShouldClose(true)
	case glfw.KeyF:
		a.setWireframe(!a.wireframe)
	case glfw.KeyN:
		a.switchLesson(lesson.Step(a.name, 1))
	case glfw.KeyP:
		a.switchLesson(lesson.Step(a.name, -1))
	}
}

func (a *App) setWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	a.wireframe = on
}

func (a *App) ShouldClose() bool {
	return a.closed
}

func (a *App) renderStat() {
	a.fps.Update()
	a.win.SetTitle(windowTitle(a.title, a.name, a.scene != nil, a.fps.Fps()))
}

func windowTitle(title, name string, ok bool, fps int) string {
	if !ok {
		return fmt.Sprintf("%s [%s] setup failed", title, name)
	}
	return fmt.Sprintf("%s [%s] %d", title, name, fps)
}

func (a *App) Update() {
	mainthread.Call(func() {
		gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if a.scene != nil {
			a.scene.Draw(glfw.GetTime())
		}
		a.renderStat()

		a.win.SwapBuffers()
		glfw.PollEvents()
		a.closed = a.win.ShouldClose()
	})
}

// Close releases the lesson, remembers the window geometry and shuts glfw down.
func (a *App) Close() {
	mainthread.Call(func() {
		if a.scene != nil {
			a.scene.Release()
			a.scene = nil
		}
		if a.store != nil {
			x, y := a.win.GetPos()
			w, h := a.win.GetSize()
			err := a.store.UpdateWindowState(WindowState{
				X: int32(x), Y: int32(y), Width: int32(w), Height: int32(h),
			})
			if err != nil {
				log.Warnf("save window state: %v", err)
			}
		}
		a.win.Destroy()
		glfw.Terminate()
	})
}
