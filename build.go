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

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// Builder constructs the quadtree for a field over a box.
//
// Boxes at depth below SearchDepth are always subdivided. From SearchDepth
// on, a box is pruned as soon as the function has the same sign at all
// four corners. Boxes which are not pruned at PlotDepth become leaves.
type Builder struct {
	Field Field
	Box   rect.Rect

	SearchDepth int
	PlotDepth   int

	// Workers is the number of goroutines used to build the subtrees of
	// the first levels. Values below 2 mean a sequential build. The tree
	// does not depend on the number of workers.
	Workers int
}

// BuildTree builds the quadtree of f over box sequentially.
func BuildTree(f Field, box rect.Rect, plotDepth, searchDepth int) *Node {
	b := &Builder{
		Field:       f,
		Box:         box,
		SearchDepth: searchDepth,
		PlotDepth:   plotDepth,
	}
	root, _ := b.Build(context.Background())
	return root
}

// Build constructs the tree. The context is checked once per node, and
// if it is cancelled the partial tree is discarded and the context error
// is returned.
func (b *Builder) Build(ctx context.Context) (*Node, error) {
	if b.Workers < 2 {
		return b.build(ctx, nil, 0)
	}

	levels := 1
	for n := 4; n < b.Workers; n *= 4 {
		levels++
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Workers)
	root := b.spawn(gctx, g, nil, 0, levels)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return root, nil
}

// spawn creates the top levels of the tree and hands the subtrees below
// them to the worker group.
func (b *Builder) spawn(ctx context.Context, g *errgroup.Group, p BoxPath, depth, levels int) *Node {
	if n := b.terminal(p, depth); n != nil {
		return n
	}
	n := &Node{Kind: KindRoot, Box: p.Box(b.Box), Path: p}
	for q := range n.Children {
		child := p.Child(Quadrant(q))
		if levels > 1 {
			n.Children[q] = b.spawn(ctx, g, child, depth+1, levels-1)
			continue
		}
		g.Go(func() error {
			c, err := b.build(ctx, child, depth+1)
			n.Children[q] = c
			return err
		})
	}
	return n
}

func (b *Builder) build(ctx context.Context, p BoxPath, depth int) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := b.terminal(p, depth); n != nil {
		return n, nil
	}
	n := &Node{Kind: KindRoot, Box: p.Box(b.Box), Path: p}
	for q := range n.Children {
		c, err := b.build(ctx, p.Child(Quadrant(q)), depth+1)
		if err != nil {
			return nil, err
		}
		n.Children[q] = c
	}
	return n, nil
}

// terminal returns the pruned node or leaf for the box at p, or nil if
// the box must be subdivided.
func (b *Builder) terminal(p BoxPath, depth int) *Node {
	if depth < b.SearchDepth {
		return nil
	}

	box := p.Box(b.Box)
	var v Corners
	for i, c := range boxCorners(box) {
		v[i] = b.Field.Value(c)
	}

	allZero, allNeg, allNonNeg := true, true, true
	for _, x := range v {
		allZero = allZero && x == 0
		allNeg = allNeg && x < 0
		allNonNeg = allNonNeg && x >= 0
	}
	switch {
	case allZero:
		return &Node{Kind: KindZero, Box: box, Path: p}
	case allNeg:
		return &Node{Kind: KindNegative, Box: box, Path: p}
	case allNonNeg:
		return &Node{Kind: KindPositive, Box: box, Path: p}
	case depth < b.PlotDepth:
		return nil
	}

	class := Classify(v)
	segs := LeafSegments(box, v, class)
	return &Node{
		Kind:     KindLeaf,
		Box:      box,
		Path:     p,
		Class:    class,
		Segments: segs,
		Vertex:   LeafVertex(b.Field, box, segs),
	}
}
