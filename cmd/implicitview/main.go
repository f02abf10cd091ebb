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

// Command implicitview plots implicit equations in the terminal.
//
// Usage:
//
//	implicitview [-log file] [-eq mathjson] [-window llx,lly,urx,ury]
//
// Without -eq, the built-in test scenarios are shown; press Tab to pick
// one.  Press e to type an equation in MathJSON form.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/implicit"
	"seehuhn.de/go/implicit/expr"
	"seehuhn.de/go/implicit/internal/tui"
)

func main() {
	logFile := flag.String("log", "", "write debug log to `file`")
	eqSrc := flag.String("eq", "", "equation to plot, in MathJSON form")
	windowSrc := flag.String("window", "-10,-10,10,10", "initial window, as `llx,lly,urx,ury`")
	timeout := flag.Duration("timeout", implicit.DefaultTimeout, "time limit for one computation")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of goroutines used to build the tree")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	implicit.SetLogger(logger)

	coord := implicit.NewCoordinator(implicit.Options{
		Timeout: *timeout,
		Workers: *workers,
	})
	defer coord.Close()

	var m tea.Model
	if *eqSrc != "" {
		eq, err := expr.Parse([]byte(*eqSrc))
		if err != nil {
			log.Fatal(err)
		}
		var w rect.Rect
		_, err = fmt.Sscanf(*windowSrc, "%g,%g,%g,%g", &w.LLx, &w.LLy, &w.URx, &w.URy)
		if err != nil || !(w.LLx < w.URx && w.LLy < w.URy) {
			log.Fatalf("invalid window %q", *windowSrc)
		}
		m = tui.NewWithEquation(coord, eq, w)
	} else {
		m = tui.New(coord)
	}

	logger.Info("starting viewer", "workers", *workers, "timeout", *timeout)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
