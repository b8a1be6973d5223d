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

package sdlplay

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// glPresenter draws the VM screen as a single textured quad with the fixed
// function pipeline.
type glPresenter struct {
	context sdl.GLContext
	texture uint32
	created bool
}

func newGLPresenter(window *sdl.Window) (*glPresenter, error) {
	var err error

	p := &glPresenter{}

	p.context, err = window.GLCreateContext()
	if err != nil {
		return nil, err
	}

	err = window.GLMakeCurrent(p.context)
	if err != nil {
		return nil, err
	}

	// vsync is not required because the host loop is limited
	_ = sdl.GLSetSwapInterval(0)

	err = gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl21: %w", err)
	}

	logger.Logf(logger.Allow, "gl21", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl21", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl21", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return p, nil
}

// viewport returns the largest area of the drawable that keeps the aspect
// ratio of the VM screen, centred in the drawable.
func viewport(w, h int32) (x, y, vw, vh int32) {
	if w*gfx.ScreenHeight < h*gfx.ScreenWidth {
		vw = w
		vh = w * gfx.ScreenHeight / gfx.ScreenWidth
	} else {
		vh = h
		vw = h * gfx.ScreenWidth / gfx.ScreenHeight
	}
	return (w - vw) / 2, (h - vh) / 2, vw, vh
}

func (p *glPresenter) present(img *image.RGBA, w, h int32) {
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/pixelDepth))

	if !p.created {
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(img.Bounds().Size().X), int32(img.Bounds().Size().Y), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
		p.created = true
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(img.Bounds().Size().X), int32(img.Bounds().Size().Y),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	}

	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	x, y, vw, vh := viewport(w, h)
	gl.Viewport(x, y, vw, vh)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, 1, 1, 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Enable(gl.TEXTURE_2D)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0, 1)
	gl.End()
	gl.Disable(gl.TEXTURE_2D)
}

func (p *glPresenter) destroy() {
	gl.DeleteTextures(1, &p.texture)
	sdl.GLDeleteContext(p.context)
}
