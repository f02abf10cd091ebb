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

// Package tui implements an interactive terminal viewer for implicit
// equations.
package tui

import (
	"maps"
	"slices"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/implicit"
	"seehuhn.de/go/implicit/expr"
	"seehuhn.de/go/implicit/testcases"
)

// Layout sizes
const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	coord *implicit.Coordinator

	// the current plot
	name     string
	equation expr.Expr
	home     rect.Rect // window shown after loading or reset
	center   vec.Vec2
	scale    float64 // plane units per braille dot, 0 until the size is known
	mode     implicit.Mode
	contours []implicit.Contour

	// seq identifies the most recent request; older results are dropped
	seq     uint64
	busy    bool
	elapsed time.Duration

	status string
	failed bool

	// scenario picker
	l list.Model

	// equation editor
	editing bool
	ta      textarea.Model

	// mouse position in plane coordinates
	hovering bool
	hover    vec.Vec2
}

// New creates a viewer which computes contours using coord.
// The first test scenario is shown initially.
func New(coord *implicit.Coordinator) Model {
	m := Model{
		helpVisible: true,
		coord:       coord,
		status:      "ready",
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	var items []list.Item
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			items = append(items, scenarioItem{category: category, tc: tc})
		}
	}
	m.l = list.New(items, d, 0, 0)
	m.l.Title = "Scenarios"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = `Enter an equation in MathJSON, e.g. ["Equal", ["Square", "x"], "y"]. Press Enter to plot; Esc to cancel.`
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	if len(items) > 0 {
		m.loadScenario(items[0].(scenarioItem))
	}
	return m
}

// NewWithEquation creates a viewer showing eq over the given window.
func NewWithEquation(coord *implicit.Coordinator, eq expr.Expr, window rect.Rect) Model {
	m := New(coord)
	m.load("equation", eq, window)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

type scenarioItem struct {
	category string
	tc       testcases.TestCase
}

func (s scenarioItem) Title() string       { return s.category + "/" + s.tc.Name }
func (s scenarioItem) Description() string { return s.tc.Equation.String() }
func (s scenarioItem) FilterValue() string { return s.Title() }

func (m *Model) loadScenario(it scenarioItem) {
	m.load(it.Title(), it.tc.Equation, it.tc.Window)
}

// load replaces the current equation.  The caller must request new
// contours.
func (m *Model) load(name string, eq expr.Expr, window rect.Rect) {
	m.name = name
	m.equation = eq
	m.home = window
	m.contours = nil
	m.fit()
}

// fit chooses the view so that the home window just fits onto the
// canvas.
func (m *Model) fit() {
	w := m.home
	m.center = vec.Vec2{X: (w.LLx + w.URx) / 2, Y: (w.LLy + w.URy) / 2}
	if m.width == 0 || m.height == 0 {
		m.scale = 0
		return
	}
	lo := m.layout()
	m.scale = max((w.URx-w.LLx)/float64(2*lo.mapW), (w.URy-w.LLy)/float64(4*lo.mapH))
}

// layout describes the position of the screen areas.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int // in cells
}

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
	}
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	lo.mapW = max(10, lo.contentW-lo.sidebarW-1)
	lo.mapH = lo.contentH
	if m.showSidebar {
		lo.mapX = lo.sidebarW + 1
	}
	lo.mapY = headerHeight
	return lo
}

// window returns the part of the plane shown on the canvas.
func (m Model) window() rect.Rect {
	lo := m.layout()
	hw := float64(2*lo.mapW) * m.scale / 2
	hh := float64(4*lo.mapH) * m.scale / 2
	return rect.Rect{
		LLx: m.center.X - hw,
		LLy: m.center.Y - hh,
		URx: m.center.X + hw,
		URy: m.center.Y + hh,
	}
}

// request describes the contours needed for the current view.
func (m Model) request() implicit.Request {
	lo := m.layout()
	window := m.window()
	depth, searchDepth := implicit.Plan(window, max(2*lo.mapW, 4*lo.mapH))
	return implicit.Request{
		Equation:    m.equation,
		Window:      window,
		Depth:       depth,
		SearchDepth: searchDepth,
		Mode:        m.mode,
	}
}
