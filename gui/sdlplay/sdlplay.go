// This file is part of Gopherworld.
//
// Gopherworld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherworld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherworld.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay implements the gui.GUI interface with SDL. The VM screen is
// shown in a single window, scaled by an integer amount and letterboxed if the
// window is resized to a different aspect ratio.
//
// Presentation is either through an SDL renderer or, if the display.opengl
// preference is set, through an OpenGL 2.1 context.
package sdlplay

import (
	"fmt"
	"image"

	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/gui"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	env *environment.Environment

	window *sdl.Window

	// software presentation. not used if gl is not nil
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// opengl presentation
	gl *glPresenter

	// events collected since the previous call to Service()
	events []gui.Event
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. A scale
// value of zero or less means that the display.scale preference is used.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(env *environment.Environment, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		env: env,
	}

	if scale <= 0 {
		scale = env.Prefs.DisplayScale.Get().(int)
		if scale <= 0 {
			scale = 1
		}
	}
	useGL := env.Prefs.DisplayOpenGL.Get().(bool)

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// mouse motion events fill up the event queue and are not used
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if useGL {
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
		_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
		flags |= uint32(sdl.WINDOW_OPENGL)
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(gfx.ScreenWidth*scale), int32(gfx.ScreenHeight*scale),
		flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	if useGL {
		scr.gl, err = newGLPresenter(scr.window)
		if err != nil {
			scr.Destroy()
			return nil, fmt.Errorf("sdlplay: %w", err)
		}
	} else {
		err = scr.createRenderer()
		if err != nil {
			scr.Destroy()
			return nil, fmt.Errorf("sdlplay: %w", err)
		}
	}

	logger.Logf(env, "sdlplay", "window scale %d (opengl %v)", scale, useGL)

	return scr, nil
}

func (scr *SdlPlay) createRenderer() error {
	var err error

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return err
	}

	// the logical size means that the renderer will scale and letterbox the
	// texture to fit the window
	err = scr.renderer.SetLogicalSize(gfx.ScreenWidth, gfx.ScreenHeight)
	if err != nil {
		return err
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		gfx.ScreenWidth, gfx.ScreenHeight)
	if err != nil {
		return err
	}

	return nil
}

// SetImage implements the gui.GUI interface.
func (scr *SdlPlay) SetImage(img *image.RGBA) error {
	if img.Rect.Dx() != gfx.ScreenWidth || img.Rect.Dy() != gfx.ScreenHeight {
		return fmt.Errorf("sdlplay: image is %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}

	if scr.gl != nil {
		w, h := scr.window.GLGetDrawableSize()
		scr.gl.present(img, w, h)
		scr.window.GLSwap()
		return nil
	}

	err := scr.texture.Update(nil, img.Pix, img.Stride)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer.Present()

	return nil
}

// Present implements the raster.Display interface.
func (scr *SdlPlay) Present(img *image.RGBA) error {
	return scr.SetImage(img)
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.gl != nil {
		scr.gl.destroy()
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}
