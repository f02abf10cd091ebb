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
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"seehuhn.de/go/geom/vec"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	title := " implicit ─ " + m.name + " "
	header := titleStyle.Render(title)
	if m.equation != nil {
		header += dimStyle.Render(m.equation.String())
	}
	header = lipgloss.NewStyle().Width(lo.contentW).MaxHeight(1).Render(header)

	// Canvas
	var canvas string
	if m.editing {
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH, 12))
		canvas = m.ta.View()
	} else {
		canvas = m.renderCanvas(lo.mapW, lo.mapH)
	}
	mapView := lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(canvas)

	var body string
	if m.showSidebar {
		sidebar := boxStyle.Width(lo.sidebarW - 2).Height(lo.contentH - 2).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer
	style := dimStyle
	if m.failed {
		style = errorStyle
	}
	status := m.status
	if m.busy {
		status = "computing… " + status
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, style.Render(" "+status+" "), m.renderHelp())
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4g y=%.4g  ", m.hover.X, m.hover.Y))
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderCanvas draws the coordinate axes and the contours into a w×h
// cell area.
func (m Model) renderCanvas(w, h int) string {
	axes := newBrailleBuf(w, h)
	curves := newBrailleBuf(w, h)
	if m.scale > 0 {
		win := m.window()
		if x, _, ok := m.toDots(vec.Vec2{X: 0, Y: win.URy}); ok && win.LLx <= 0 && 0 <= win.URx {
			axes.drawLine(x, 0, x, 4*h-1)
		}
		if _, y, ok := m.toDots(vec.Vec2{X: win.LLx, Y: 0}); ok && win.LLy <= 0 && 0 <= win.URy {
			axes.drawLine(0, y, 2*w-1, y)
		}

		for _, c := range m.contours {
			var px, py int
			first := true
			for _, p := range c {
				x, y, ok := m.toDots(p)
				if !ok {
					first = true
					continue
				}
				if first {
					curves.setPixel(x, y)
				} else {
					curves.drawLine(px, py, x, y)
				}
				px, py, first = x, y, false
			}
		}
	}

	lines := make([]string, h)
	var run []rune
	for cy := range h {
		var sb strings.Builder
		runStyle := -1
		flush := func() {
			switch runStyle {
			case 0:
				sb.WriteString(string(run))
			case 1:
				sb.WriteString(dimStyle.Render(string(run)))
			case 2:
				sb.WriteString(curveStyle.Render(string(run)))
			}
			run = run[:0]
		}
		for cx := range w {
			r, s := curves.cell(cx, cy), 2
			if r == ' ' {
				r, s = axes.cell(cx, cy), 1
				if r == ' ' {
					s = 0
				}
			}
			if s != runStyle {
				flush()
				runStyle = s
			}
			run = append(run, r)
		}
		flush()
		lines[cy] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// maxDots bounds the dot coordinates passed to the line drawing code.
const maxDots = 1 << 16

// toDots maps a point of the plane to braille dot coordinates on the
// canvas.
func (m Model) toDots(p vec.Vec2) (int, int, bool) {
	win := m.window()
	x := math.Floor((p.X - win.LLx) / m.scale)
	y := math.Floor((win.URy - p.Y) / m.scale)
	if !(math.Abs(x) < maxDots && math.Abs(y) < maxDots) {
		return 0, 0, false
	}
	return int(x), int(y), true
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"r reset",
		"m mode",
		"e edit",
		"Tab scenarios",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
