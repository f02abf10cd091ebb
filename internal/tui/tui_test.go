// seehuhn.de/go/implicit - contour lines of implicit equations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/implicit"
)

func TestBrailleDots(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(4, 0)  // outside
	b.setPixel(-1, 2) // outside
	if r := b.cell(0, 0); r != '⢁' {
		t.Errorf("expected U+2881, got %U", r)
	}
	if r := b.cell(1, 0); r != ' ' {
		t.Errorf("expected blank cell, got %U", r)
	}

	b = newBrailleBuf(2, 1)
	b.drawLine(0, 1, 3, 1)
	for cx := range 2 {
		if r := b.cell(cx, 0); r != '⠒' {
			t.Errorf("cell %d: expected U+2812, got %U", cx, r)
		}
	}
}

// newTestModel returns a viewer with a 40×20 cell canvas showing the
// circle scenario.
func newTestModel(t *testing.T) (Model, tea.Cmd) {
	t.Helper()
	coord := implicit.NewCoordinator(implicit.Options{})
	t.Cleanup(coord.Close)
	m := New(coord)
	res, cmd := m.Update(tea.WindowSizeMsg{Width: 41, Height: 23})
	return res.(Model), cmd
}

// runCmd executes cmd and returns the messages it produces.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var res []tea.Msg
		for _, c := range batch {
			res = append(res, runCmd(c)...)
		}
		return res
	}
	return []tea.Msg{msg}
}

func TestFit(t *testing.T) {
	m, _ := newTestModel(t)
	if m.name != "conic/circle" {
		t.Fatalf("unexpected initial scenario %q", m.name)
	}
	if m.scale != 0.25 {
		t.Errorf("expected scale 0.25, got %g", m.scale)
	}
	w := m.window()
	if w.LLx != -10 || w.LLy != -10 || w.URx != 10 || w.URy != 10 {
		t.Errorf("unexpected window %v", w)
	}

	req := m.request()
	if req.Depth != 5 || req.SearchDepth != 2 {
		t.Errorf("expected depth 5/2, got %d/%d", req.Depth, req.SearchDepth)
	}
}

func TestContours(t *testing.T) {
	m, cmd := newTestModel(t)
	if !m.busy || m.seq != 1 {
		t.Fatalf("expected a pending request, got busy=%t seq=%d", m.busy, m.seq)
	}
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(contoursMsg); !ok {
			continue
		}
		res, _ := m.Update(msg)
		m = res.(Model)
	}
	if m.busy {
		t.Fatal("result was not delivered")
	}
	if len(m.contours) != 1 || !m.contours[0].Closed() {
		t.Errorf("expected one closed contour, got %d", len(m.contours))
	}
}

func TestStaleResult(t *testing.T) {
	m, _ := newTestModel(t)

	res, _ := m.Update(contoursMsg{seq: m.seq - 1, buf: []float64{0, 0, 1, 1}})
	m = res.(Model)
	if m.contours != nil || !m.busy {
		t.Error("stale result was used")
	}

	res, _ = m.Update(contoursMsg{seq: m.seq, buf: []float64{0, 0, 1, 1}})
	m = res.(Model)
	if len(m.contours) != 1 || m.busy {
		t.Error("current result was not used")
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestZoomPan(t *testing.T) {
	m, _ := newTestModel(t)
	seq := m.seq

	res, cmd := m.Update(key("+"))
	m = res.(Model)
	if !closeTo(m.scale, 0.2) {
		t.Errorf("expected scale 0.2, got %g", m.scale)
	}
	if cmd == nil || m.seq != seq+1 {
		t.Error("zooming did not request new contours")
	}

	res, _ = m.Update(key("right"))
	m = res.(Model)
	if w := m.window(); !closeTo(w.LLx, -6.4) || !closeTo(w.URx, 9.6) {
		t.Errorf("unexpected window after panning: %v", w)
	}

	res, _ = m.Update(key("r"))
	m = res.(Model)
	if w := m.window(); w.LLx != -10 || w.URx != 10 {
		t.Errorf("unexpected window after reset: %v", w)
	}

	res, _ = m.Update(key("m"))
	m = res.(Model)
	if m.mode != implicit.ModeMarchingSquares || m.request().Mode != implicit.ModeMarchingSquares {
		t.Error("mode was not toggled")
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEditEquation(t *testing.T) {
	m, _ := newTestModel(t)

	res, _ := m.Update(key("e"))
	m = res.(Model)
	if !m.editing {
		t.Fatal("not in edit mode")
	}

	m.ta.SetValue(`["Equal", "x"`)
	res, _ = m.Update(key("enter"))
	m = res.(Model)
	if !m.editing || !m.failed {
		t.Error("malformed input was accepted")
	}

	m.ta.SetValue(`["Equal", "x", ["Square", "y"]]`)
	seq := m.seq
	res, cmd := m.Update(key("enter"))
	m = res.(Model)
	if m.editing || m.failed {
		t.Fatalf("equation was rejected: %s", m.status)
	}
	if got := m.equation.String(); got != `["Equal", "x", ["Square", "y"]]` {
		t.Errorf("unexpected equation %s", got)
	}
	if cmd == nil || m.seq != seq+1 {
		t.Error("no contours requested")
	}
}

func TestRenderCanvas(t *testing.T) {
	m, _ := newTestModel(t)
	m.contours = []implicit.Contour{{{X: -10, Y: 0}, {X: 10, Y: 0}}}

	lines := strings.Split(m.renderCanvas(40, 20), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	// the contour covers the x-axis
	if n := strings.Count(lines[10], "⠉"); n != 40 {
		t.Errorf("expected 40 line cells, got %d in %q", n, lines[10])
	}
	// the y-axis is in column 20
	if !strings.Contains(lines[0], "⡇") {
		t.Errorf("y-axis missing in %q", lines[0])
	}
}
