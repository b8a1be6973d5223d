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

package vm

import (
	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/audio/music"
	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/resources"
)

// asm builds programs for the tests. references to labels are resolved by
// the bytes() function.
type asm struct {
	code   []byte
	labels map[string]int
	refs   map[int]string
}

func newAsm() *asm {
	return &asm{
		labels: make(map[string]int),
		refs:   make(map[int]string),
	}
}

func (a *asm) b(v ...uint8) *asm {
	a.code = append(a.code, v...)
	return a
}

func (a *asm) w(v uint16) *asm {
	return a.b(uint8(v>>8), uint8(v))
}

func (a *asm) ref(label string) *asm {
	a.refs[len(a.code)] = label
	return a.w(0)
}

func (a *asm) label(label string) *asm {
	a.labels[label] = len(a.code)
	return a
}

func (a *asm) addr(label string) int {
	return a.labels[label]
}

func (a *asm) seti(r uint8, v int16) *asm {
	return a.b(OpSeti, r).w(uint16(v))
}

func (a *asm) jmp(label string) *asm {
	return a.b(OpJmp).ref(label)
}

func (a *asm) jnz(r uint8, label string) *asm {
	return a.b(OpJnz, r).ref(label)
}

func (a *asm) setvec(id uint8, label string) *asm {
	return a.b(OpSetVec, id).ref(label)
}

func (a *asm) resetthread(first uint8, last uint8, op uint8) *asm {
	return a.b(OpResetThread, first, last, op)
}

func (a *asm) brk() *asm {
	return a.b(OpBreak)
}

func (a *asm) kill() *asm {
	return a.b(OpKillThread)
}

func (a *asm) bytes() []byte {
	code := make([]byte, len(a.code))
	copy(code, a.code)
	for at, label := range a.refs {
		addr, ok := a.labels[label]
		if !ok {
			panic("undefined label: " + label)
		}
		code[at] = uint8(addr >> 8)
		code[at+1] = uint8(addr)
	}
	return code
}

type provider map[int]resources.Resource

func (p provider) Load(id int) (resources.Resource, error) {
	r, ok := p[id]
	if !ok {
		return resources.Resource{}, curated.Errorf(resources.NotFound, id)
	}
	return r, nil
}

type stringTable map[uint16]string

func (s stringTable) Get(id uint16) (string, bool) {
	v, ok := s[id]
	return v, ok
}

type drawnPolygon struct {
	page   int
	pos    gfx.Point
	offset gfx.Point
	color  uint8
	zoom   uint16
	poly   gfx.Polygon
}

type drawnChar struct {
	page  int
	pos   gfx.Point
	color uint8
	char  byte
}

type copiedPage struct {
	src, dst int
	vscroll  int16
}

// graphics records the calls made to it. the fill colour of each page is
// the state used for snapshots
type graphics struct {
	palette   gfx.Palette
	pages     [gfx.NumPages]uint8
	copies    []copiedPage
	polygons  []drawnPolygon
	chars     []drawnChar
	bitmaps   []int
	presented []int
}

func (g *graphics) SetPalette(palette gfx.Palette) {
	g.palette = palette
}

func (g *graphics) FillPage(page int, color uint8) {
	g.pages[page] = color
}

func (g *graphics) CopyPage(src int, dst int, vscroll int16) {
	g.copies = append(g.copies, copiedPage{src: src, dst: dst, vscroll: vscroll})
}

func (g *graphics) FillPolygon(page int, pos gfx.Point, offset gfx.Point, color uint8, zoom uint16, poly gfx.Polygon) {
	g.polygons = append(g.polygons, drawnPolygon{page: page, pos: pos, offset: offset, color: color, zoom: zoom, poly: poly})
}

func (g *graphics) DrawChar(page int, pos gfx.Point, color uint8, char byte) {
	g.chars = append(g.chars, drawnChar{page: page, pos: pos, color: color, char: char})
}

func (g *graphics) BlitBitmap(page int, bitmap []byte) {
	g.bitmaps = append(g.bitmaps, page)
}

func (g *graphics) Present(page int, palette gfx.Palette) {
	g.palette = palette
	g.presented = append(g.presented, page)
}

func (g *graphics) Snapshot() any {
	return g.pages
}

func (g *graphics) Plumb(state any) {
	if p, ok := state.([gfx.NumPages]uint8); ok {
		g.pages = p
	}
}

type playedSound struct {
	id      int
	channel int
	freq    uint16
	volume  uint8
}

// sound records the calls made to it. the number of samples is the state
// used for snapshots
type sound struct {
	samples   map[int]*audio.Sample
	played    []playedSound
	stopped   []int
	music     *music.Module
	tempo     uint16
	pos       uint8
	stops     int
	resets    int
	request   int16
	requested bool
}

func (s *sound) AddSample(id int, sample *audio.Sample) {
	if s.samples == nil {
		s.samples = make(map[int]*audio.Sample)
	}
	s.samples[id] = sample
}

func (s *sound) HasSample(id int) bool {
	_, ok := s.samples[id]
	return ok
}

func (s *sound) Play(id int, channel int, freq uint16, volume uint8) {
	s.played = append(s.played, playedSound{id: id, channel: channel, freq: freq, volume: volume})
}

func (s *sound) Stop(channel int) {
	s.stopped = append(s.stopped, channel)
}

func (s *sound) PlayMusic(m *music.Module, tempo uint16, pos uint8) {
	s.music = m
	s.tempo = tempo
	s.pos = pos
}

func (s *sound) UpdateTempo(tempo uint16) {
	s.tempo = tempo
}

func (s *sound) StopMusic() {
	s.music = nil
	s.stops++
}

func (s *sound) Reset() {
	s.samples = nil
	s.resets++
}

func (s *sound) TakeRegisterRequest() (int16, bool) {
	v, ok := s.request, s.requested
	s.requested = false
	return v, ok
}

func (s *sound) Snapshot() any {
	return len(s.samples)
}

func (s *sound) Plumb(state any) {
}

// newTestVM returns a VM running the program in thread zero without going
// through a scene load.
func newTestVM(code []byte, p provider) (*VM, *graphics, *sound) {
	if p == nil {
		p = provider{}
	}
	vm := NewVM(&environment.Environment{Label: "test"}, p, nil)
	vm.program = code
	vm.state.Threads.Reset()
	return vm, &graphics{}, &sound{}
}
