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

package implicit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/implicit/expr"
	"seehuhn.de/go/implicit/worker"
)

// Mode selects the contour extraction method.
type Mode uint8

const (
	// ModeDual joins the vertices of neighbouring leaves.
	ModeDual Mode = iota

	// ModeMarchingSquares chains the edge crossings of the leaves.
	ModeMarchingSquares
)

func (m Mode) String() string {
	switch m {
	case ModeDual:
		return "dual"
	case ModeMarchingSquares:
		return "marching squares"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Request describes one contour computation.
type Request struct {
	Equation expr.Expr
	Window   rect.Rect

	// Depth is the plot depth, SearchDepth the depth from which on boxes
	// are pruned. See [Builder].
	Depth       int
	SearchDepth int

	Mode Mode

	// Workers is passed on to [Builder].
	Workers int
}

// ErrInvalidRequest is returned for windows which are empty or not
// finite, and for negative depths.
var ErrInvalidRequest = errors.New("implicit: invalid request")

func (r *Request) check() error {
	w := r.Window
	for _, v := range []float64{w.LLx, w.LLy, w.URx, w.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: window %v is not finite", ErrInvalidRequest, w)
		}
	}
	if !(w.LLx < w.URx && w.LLy < w.URy) {
		return fmt.Errorf("%w: window %v is empty", ErrInvalidRequest, w)
	}
	if r.Depth < 0 || r.SearchDepth < 0 || r.Depth > MaxDepth || r.SearchDepth > MaxDepth {
		return fmt.Errorf("%w: depth %d/%d out of range", ErrInvalidRequest, r.Depth, r.SearchDepth)
	}
	if r.Equation == nil {
		return fmt.Errorf("%w: missing equation", ErrInvalidRequest)
	}
	return nil
}

// Plan chooses build parameters for drawing window at a resolution of
// pixels along its longer side. Leaves are about PixelsPerLeaf pixels
// wide, and pruning starts SearchOffset levels above the leaves.
func Plan(window rect.Rect, pixels int) (depth, searchDepth int) {
	if !(window.LLx < window.URx && window.LLy < window.URy) || pixels <= PixelsPerLeaf {
		return 0, 0
	}
	for depth < MaxDepth && PixelsPerLeaf<<depth < pixels {
		depth++
	}
	return depth, max(0, depth-SearchOffset)
}

// ComputeContours computes the contour lines of the equation in req.
//
// The equation is split into independently drawable parts with
// [expr.EquationToGraphableSet]. For inequalities, the boundary of the
// solution set is drawn. Contour points which lie on the zero set of an
// excluded expression are removed, splitting the contour there.
//
// Malformed equations give an error matching [expr.ErrMalformed].
// If ctx is cancelled, the build is abandoned and the context error is
// returned.
func ComputeContours(ctx context.Context, req Request) ([]Contour, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	set, err := expr.EquationToGraphableSet(req.Equation)
	if err != nil {
		return nil, err
	}

	excl := make([]*expr.Field, 0, len(set.Exclude))
	for _, g := range set.Exclude {
		f, err := expr.NewField(g.Expr)
		if err != nil {
			return nil, err
		}
		excl = append(excl, f)
	}

	leafDepth := max(req.Depth, req.SearchDepth)
	w := req.Window
	cellDiag := math.Hypot(w.URx-w.LLx, w.URy-w.LLy) / float64(uint64(1)<<leafDepth)

	var res []Contour
	for _, g := range set.Include {
		f, err := expr.NewField(g.Expr)
		if err != nil {
			return nil, err
		}
		b := &Builder{
			Field:       f,
			Box:         w,
			SearchDepth: req.SearchDepth,
			PlotDepth:   req.Depth,
			Workers:     req.Workers,
		}
		root, err := b.Build(ctx)
		if err != nil {
			return nil, err
		}

		var cs []Contour
		switch req.Mode {
		case ModeMarchingSquares:
			cs = MarchingSquaresContours(root)
		default:
			cs = DualContours(f, root)
		}
		res = append(res, removeExcluded(cs, excl, cellDiag)...)
	}
	return res, nil
}

// removeExcluded splits the contours at all points which are within
// about half a leaf of the zero set of one of the excluded fields.
// Pieces with fewer than two points are dropped.
func removeExcluded(cs []Contour, excl []*expr.Field, cellDiag float64) []Contour {
	if len(excl) == 0 {
		return cs
	}
	excluded := func(p vec.Vec2) bool {
		for _, f := range excl {
			v := math.Abs(f.Value(p))
			if v == 0 || v <= f.Gradient(p).Length()*cellDiag/2 {
				return true
			}
		}
		return false
	}

	var res []Contour
	for _, c := range cs {
		start := 0
		for i := 0; i <= len(c); i++ {
			if i < len(c) && !excluded(c[i]) {
				continue
			}
			if i-start >= 2 {
				res = append(res, c[start:i:i])
			}
			start = i + 1
		}
	}
	return res
}

// Flatten stores contours in a single buffer of x, y pairs, with a pair
// of +Inf values between consecutive contours.
func Flatten(cs []Contour) []float64 {
	n := 0
	for _, c := range cs {
		n += 2*len(c) + 2
	}
	buf := make([]float64, 0, n)
	for i, c := range cs {
		if i > 0 {
			buf = append(buf, math.Inf(1), math.Inf(1))
		}
		for _, p := range c {
			buf = append(buf, p.X, p.Y)
		}
	}
	return buf
}

// SplitFlat reverses [Flatten]. A trailing odd value is ignored.
func SplitFlat(buf []float64) []Contour {
	var res []Contour
	var cur Contour
	for i := 0; i+1 < len(buf); i += 2 {
		x, y := buf[i], buf[i+1]
		if math.IsInf(x, 1) && math.IsInf(y, 1) {
			res = append(res, cur)
			cur = nil
			continue
		}
		cur = append(cur, vec.Vec2{X: x, Y: y})
	}
	if len(cur) > 0 || len(res) > 0 {
		res = append(res, cur)
	}
	return res
}

// ComputeFlatContours is like [ComputeContours], with the result
// flattened into a single buffer.
func ComputeFlatContours(ctx context.Context, eq expr.Expr, window rect.Rect, depth, searchDepth int) ([]float64, error) {
	cs, err := ComputeContours(ctx, Request{
		Equation:    eq,
		Window:      window,
		Depth:       depth,
		SearchDepth: searchDepth,
	})
	if err != nil {
		return nil, err
	}
	return Flatten(cs), nil
}

// Options configures a [Coordinator].
type Options struct {
	// Timeout bounds the time of a single computation.
	// Zero means DefaultTimeout, a negative value means no limit.
	Timeout time.Duration

	// Logger receives diagnostics. If nil, the package logger is used,
	// see [SetLogger].
	Logger *slog.Logger

	// Workers is used for requests which do not set their own number of
	// workers.
	Workers int
}

// Coordinator computes contours in the background for an interactive
// caller. At most one computation runs at a time; a new request replaces
// any request still waiting, and a running request whose result has been
// overtaken is discarded.
//
// Failures never reach the caller: malformed equations, timeouts, panics
// and superseded requests all result in an empty buffer, and are logged.
type Coordinator struct {
	logger  *slog.Logger
	workers int
	c       *worker.Coalescer[Request, []float64]
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(opt Options) *Coordinator {
	return newCoordinator(opt, func(ctx context.Context, req Request) ([]float64, error) {
		cs, err := ComputeContours(ctx, req)
		if err != nil {
			return nil, err
		}
		return Flatten(cs), nil
	})
}

func newCoordinator(opt Options, work worker.Func[Request, []float64]) *Coordinator {
	timeout := opt.Timeout
	switch {
	case timeout == 0:
		timeout = DefaultTimeout
	case timeout < 0:
		timeout = 0
	}
	return &Coordinator{
		logger:  opt.Logger,
		workers: opt.Workers,
		c:       worker.New(work, worker.Options{Timeout: timeout}),
	}
}

func (c *Coordinator) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// FlatContours computes the contour buffer for req, see [Flatten].
// The result is empty if the computation failed, timed out or was
// superseded by a later call.
func (c *Coordinator) FlatContours(ctx context.Context, req Request) []float64 {
	if req.Workers == 0 {
		req.Workers = c.workers
	}

	start := time.Now()
	buf, err := c.c.Do(ctx, req)
	if err == nil {
		c.log().Debug("contours computed",
			"points", len(buf)/2,
			"depth", req.Depth,
			"mode", req.Mode,
			"elapsed", time.Since(start))
		return buf
	}

	var pe *worker.PanicError
	switch {
	case errors.Is(err, worker.ErrSuperseded):
		c.log().Debug("request superseded", "equation", req.Equation)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.log().Debug("request cancelled", "equation", req.Equation, "error", err)
	case errors.Is(err, expr.ErrMalformed):
		c.log().Warn("malformed equation", "equation", req.Equation, "error", err)
	case errors.Is(err, worker.ErrTimeout):
		c.log().Warn("contour computation timed out", "equation", req.Equation)
	case errors.As(err, &pe):
		c.log().Warn("contour computation panicked",
			"equation", req.Equation,
			"panic", pe.Value,
			"stack", string(pe.Stack))
	default:
		c.log().Warn("contour computation failed", "equation", req.Equation, "error", err)
	}
	return nil
}

// Busy reports whether a computation is running or waiting.
func (c *Coordinator) Busy() bool {
	return c.c.Busy()
}

// Close stops the coordinator. Later requests return an empty buffer.
func (c *Coordinator) Close() {
	c.c.Close()
}

const (
	// DefaultTimeout is the default time limit of a coordinator
	// computation.
	DefaultTimeout = time.Second

	// MaxDepth is the largest supported tree depth.
	MaxDepth = 16

	// PixelsPerLeaf is the leaf size targeted by [Plan].
	PixelsPerLeaf = 4

	// SearchOffset is the number of levels above the leaves at which
	// [Plan] starts pruning.
	SearchOffset = 3
)
