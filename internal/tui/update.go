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
	"context"
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/implicit"
	"seehuhn.de/go/implicit/expr"
)

// zoomStep is the factor by which one zoom step changes the scale.
const zoomStep = 1.25

// contoursMsg delivers the result of a background computation.
type contoursMsg struct {
	seq     uint64
	buf     []float64
	elapsed time.Duration
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-4, lo.contentH-2)
		}
		if m.scale == 0 {
			m.fit()
		}
		cmds = append(cmds, m.refresh())

	case contoursMsg:
		if msg.seq != m.seq {
			// overtaken by a later request
			return m, nil
		}
		m.busy = false
		m.elapsed = msg.elapsed
		m.contours = implicit.SplitFlat(msg.buf)
		points := 0
		for _, c := range m.contours {
			points += len(c)
		}
		m.status = fmt.Sprintf("%d contours, %d points, %s", len(m.contours), points, msg.elapsed.Round(time.Millisecond))
		m.failed = false
		return m, nil

	case tea.KeyMsg:
		// while filtering, all keys go to the list
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.editing {
			return m.updateEditor(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.zoom(1 / zoomStep)
			cmds = append(cmds, m.refresh())
		case "-", "_":
			m.zoom(zoomStep)
			cmds = append(cmds, m.refresh())
		case "r":
			m.fit()
			m.status = "view reset"
			cmds = append(cmds, m.refresh())
		case "m":
			if m.mode == implicit.ModeDual {
				m.mode = implicit.ModeMarchingSquares
			} else {
				m.mode = implicit.ModeDual
			}
			m.status = "mode: " + m.mode.String()
			cmds = append(cmds, m.refresh())
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-4, m.layout().contentH-2)
			}
			// the canvas width changes
			cmds = append(cmds, m.refresh())
		case "e":
			m.editing = true
			m.ta.SetValue("")
			if m.equation != nil {
				m.ta.SetValue(m.equation.String())
			}
			m.ta.Focus()
			m.status = "edit mode"
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(scenarioItem); ok {
					m.loadScenario(it)
					m.status = "loaded " + it.Title()
					cmd := m.refresh()
					return m, cmd
				}
			}
		case "up", "down", "left", "right":
			if m.showSidebar {
				// arrows move the list selection
				break
			}
			m.pan(msg.String())
			cmds = append(cmds, m.refresh())
		}

	case tea.MouseMsg:
		lo := m.layout()
		cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
		m.hovering = cx >= 0 && cx < lo.mapW && cy >= 0 && cy < lo.mapH && m.scale > 0
		if m.hovering {
			w := m.window()
			m.hover = vec.Vec2{
				X: w.LLx + (float64(2*cx)+1)*m.scale,
				Y: w.URy - (float64(4*cy)+2)*m.scale,
			}
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.zoomAt(m.hover, 1/zoomStep)
				cmds = append(cmds, m.refresh())
			case tea.MouseButtonWheelDown:
				m.zoomAt(m.hover, zoomStep)
				cmds = append(cmds, m.refresh())
			}
		}
	}

	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		src := strings.TrimSpace(m.ta.Value())
		if src == "" {
			m.status = "edit: empty"
			m.failed = true
			return m, nil
		}
		eq, err := parseEquation(src)
		if err != nil {
			m.status = err.Error()
			m.failed = true
			return m, nil
		}
		m.editing = false
		m.ta.Blur()
		m.equation = eq
		m.name = "equation"
		m.contours = nil
		m.status = "plotting " + eq.String()
		m.failed = false
		cmd := m.refresh()
		return m, cmd
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// parseEquation reads a MathJSON equation and checks that it can be
// plotted.
func parseEquation(src string) (expr.Expr, error) {
	eq, err := expr.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	if _, err := expr.EquationToGraphableSet(eq); err != nil {
		return nil, err
	}
	return eq, nil
}

// refresh requests contours for the current view.  Results of earlier
// requests are ignored once they arrive.
func (m *Model) refresh() tea.Cmd {
	if m.equation == nil || m.scale == 0 || m.coord == nil {
		return nil
	}
	m.seq++
	m.busy = true
	seq, req, coord := m.seq, m.request(), m.coord
	return func() tea.Msg {
		start := time.Now()
		buf := coord.FlatContours(context.Background(), req)
		return contoursMsg{seq: seq, buf: buf, elapsed: time.Since(start)}
	}
}

// zoom changes the scale by the given factor, keeping the center fixed.
func (m *Model) zoom(factor float64) {
	m.zoomAt(m.center, factor)
}

// zoomAt changes the scale by the given factor, keeping p fixed on the
// screen.
func (m *Model) zoomAt(p vec.Vec2, factor float64) {
	if m.scale == 0 {
		return
	}
	m.scale *= factor
	m.center = p.Add(m.center.Sub(p).Mul(factor))
	m.status = fmt.Sprintf("scale: %.3g per dot", m.scale)
}

// pan moves the view by a tenth of its size.
func (m *Model) pan(dir string) {
	w := m.window()
	dx := (w.URx - w.LLx) / 10
	dy := (w.URy - w.LLy) / 10
	switch dir {
	case "up":
		m.center.Y += dy
	case "down":
		m.center.Y -= dy
	case "left":
		m.center.X -= dx
	case "right":
		m.center.X += dx
	}
}
