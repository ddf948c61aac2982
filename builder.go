// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pretty

import (
	"fmt"

	"github.com/petermattis/goid"

	"github.com/doclayout/pretty/internal/ext/slicesx"
)

// Builder is the stateful construction API for a document tree.
//
// A Builder is not safe for concurrent mutation; every
// mutating method asserts it is called from the goroutine that created the
// Builder and panics otherwise.
type Builder struct {
	root   *Node
	groups []*Node
	target *[]*Node

	owner int64
}

// NewBuilder returns a Builder ready to accept calls. The returned
// Builder's tree is rooted in a synthetic outer group, always rendered in
// break mode.
func NewBuilder() *Builder {
	root := &Node{Kind: KindGroup, Depth: 0, Broken: true}
	b := &Builder{
		root:  root,
		owner: goid.Get(),
	}
	b.groups = []*Node{root}
	b.target = &root.Children
	return b
}

// checkOwner panics if called from a goroutine other than the one that
// created b.
func (b *Builder) checkOwner() {
	if g := goid.Get(); g != b.owner {
		panic(fmt.Sprintf(
			"pretty: Builder used from goroutine %d, but was created on goroutine %d; "+
				"a Builder is not safe for concurrent mutation", g, b.owner))
	}
}

// Root returns the document tree built so far, rooted at the synthetic
// outer group.
func (b *Builder) Root() *Node { return b.root }

// CurrentGroup returns the innermost currently-open group.
func (b *Builder) CurrentGroup() *Node {
	b.checkOwner()
	g, _ := lastGroup(b.groups)
	return g
}

// Target returns the child sequence currently being appended to.
func (b *Builder) Target() []*Node {
	b.checkOwner()
	return *b.target
}

// WithTarget temporarily redirects appends into target for the duration of
// body, restoring the previous target on every exit path, including a
// panic from body.
func (b *Builder) WithTarget(target *[]*Node, body func()) {
	b.checkOwner()
	prev := b.target
	b.target = target
	defer func() { b.target = prev }()
	body()
}

func lastGroup(groups []*Node) (*Node, bool) {
	return slicesx.Last(groups)
}

// Text appends obj to the document. If the last node already appended is a
// Text node, obj is coalesced into it; otherwise a new Text node is
// created.
//
// The default width is len(obj) if obj is a string, and 0 otherwise — a
// caller passing a non-string obj that should occupy columns must supply
// width explicitly.
func (b *Builder) Text(obj any, width ...int) {
	b.checkOwner()
	w := textWidth(obj)
	if len(width) > 0 {
		w = width[0]
	}

	target := *b.target
	if n := len(target); n > 0 && target[n-1].Kind == KindText {
		last := target[n-1]
		last.Parts = append(last.Parts, textPart{obj, w})
		last.TextWidth += w
		return
	}

	*b.target = append(*b.target, &Node{
		Kind:      KindText,
		Parts:     []textPart{{obj, w}},
		TextWidth: w,
	})
}

// Breakable appends a general breakable node. In flat mode it emits sep;
// in break mode it emits a newline followed by indentation, unless indent
// is false, in which case it emits only a newline. If force is true, the
// breakable also behaves as a [Builder.BreakParent].
func (b *Builder) Breakable(sep string, width int, indent, force bool) {
	b.checkOwner()
	*b.target = append(*b.target, &Node{
		Kind:       KindBreakable,
		Sep:        sep,
		SepWidth:   width,
		WithIndent: indent,
		Force:      force,
	})
	if force {
		b.propagateBreak()
	}
}

// BreakableSpace is Breakable(" ", 1, true, false).
func (b *Builder) BreakableSpace() { b.Breakable(" ", 1, true, false) }

// BreakableEmpty is Breakable("", 0, true, false).
func (b *Builder) BreakableEmpty() { b.Breakable("", 0, true, false) }

// BreakableForce is Breakable("", 0, true, true).
func (b *Builder) BreakableForce() { b.Breakable("", 0, true, true) }

// BreakableReturn is Breakable("", 0, false, true): it always forces a
// break, and the next line starts at column 0 rather than the current
// indent level.
func (b *Builder) BreakableReturn() { b.Breakable("", 0, false, true) }

// CommaBreakable appends a literal comma followed by a [Builder.BreakableSpace].
//
// This is builder sugar, not a primitive: it is just a thin wrapper over
// the two underlying constructors.
func (b *Builder) CommaBreakable() {
	b.Text(",")
	b.BreakableSpace()
}

// FillBreakable is an alias for [Builder.BreakableSpace].
//
// A genuine greedy fill combinator would need its own look-ahead-per-
// element dispatch in the layout engine; absent that, this stays a thin
// wrapper rather than inventing one (see DESIGN.md's Open Question
// resolution).
func (b *Builder) FillBreakable() { b.BreakableSpace() }

// propagateBreak walks the group stack from innermost outward, setting
// each group's broken bit, stopping at the first group that was already
// broken.
func (b *Builder) propagateBreak() {
	for i := len(b.groups) - 1; i >= 0; i-- {
		g := b.groups[i]
		was := g.Broken
		g.Broken = true
		if was {
			break
		}
	}
}

// BreakParent appends a marker that forces every enclosing group, up to
// the first already-broken one, into break mode.
func (b *Builder) BreakParent() {
	b.checkOwner()
	*b.target = append(*b.target, &Node{Kind: KindBreakParent})
	b.propagateBreak()
}

// Trim appends a marker that erases trailing spaces/tabs on the current
// output line when rendered.
func (b *Builder) Trim() {
	b.checkOwner()
	*b.target = append(*b.target, &Node{Kind: KindTrim})
}

// GroupOptions configures [Builder.Group].
type GroupOptions struct {
	// Indent, if non-zero, wraps the group body in a [Builder.Nest] of
	// this delta.
	Indent int
	// Open and Close are emitted as Text immediately before and after the
	// group node (outside it, in the enclosing target), if non-empty.
	Open, Close string
	// OpenWidth and CloseWidth override the default width of Open/Close
	// (len(Open)/len(Close)) when non-zero.
	OpenWidth, CloseWidth int
}

// Group opens a new group, runs body against it, and closes it. Each group
// in the document renders either entirely flat or entirely broken, as one
// decision made by the layout engine (or forced earlier by a contained
// [Builder.BreakParent]).
func (b *Builder) Group(opts GroupOptions, body func()) {
	b.checkOwner()
	if opts.Open != "" {
		b.Text(opts.Open, orDefault(opts.OpenWidth, len(opts.Open)))
	}

	parent, _ := lastGroup(b.groups)
	g := &Node{Kind: KindGroup, Depth: parent.Depth + 1}
	*b.target = append(*b.target, g)

	func() {
		b.groups = append(b.groups, g)
		prevTarget := b.target
		b.target = &g.Children
		defer func() {
			slicesx.Pop(&b.groups)
			b.target = prevTarget
		}()

		if opts.Indent != 0 {
			b.Nest(opts.Indent, body)
		} else {
			body()
		}
	}()

	if opts.Close != "" {
		b.Text(opts.Close, orDefault(opts.CloseWidth, len(opts.Close)))
	}
}

// Nest runs body with indentation increased by delta columns (which may be
// negative).
func (b *Builder) Nest(delta int, body func()) {
	b.checkOwner()
	align := &Node{Kind: KindAlign, Delta: delta}
	*b.target = append(*b.target, align)
	b.WithTarget(&align.Children, body)
}

// Indent runs body with indentation increased by exactly two columns.
func (b *Builder) Indent(body func()) {
	b.checkOwner()
	indent := &Node{Kind: KindIndent}
	*b.target = append(*b.target, indent)
	b.WithTarget(&indent.Children, body)
}

// IfBreakBuilder is returned by [Builder.IfBreak] to capture the
// corresponding flat-mode branch.
type IfBreakBuilder struct {
	b    *Builder
	node *Node
}

// IfBreak appends a node that renders body's contents only if the
// enclosing group breaks, and returns a helper for specifying the flat-mode
// alternative via IfFlat.
//
// Note that if the enclosing group has already broken by the time IfBreak
// returns, a subsequent IfFlat body is still run (so that any contained
// [Builder.BreakParent] still propagates outward), but its content will
// never be emitted, since the layout engine only walks the branch matching
// the group's actual mode.
func (b *Builder) IfBreak(body func()) *IfBreakBuilder {
	b.checkOwner()
	n := &Node{Kind: KindIfBreak}
	*b.target = append(*b.target, n)
	b.WithTarget(&n.BreakContents, body)
	return &IfBreakBuilder{b: b, node: n}
}

// IfFlat populates the flat-mode branch of the IfBreak this builder was
// returned from.
func (ib *IfBreakBuilder) IfFlat(body func()) {
	ib.b.WithTarget(&ib.node.FlatContents, body)
}

// IfFlat appends a node that renders body's contents only if the enclosing
// group stays flat, with no corresponding break-mode branch.
//
// If the enclosing group is already known to be broken at this point,
// body is instead run against a detached, throwaway group so that any
// [Builder.BreakParent] inside it can still be observed; if the throwaway
// group ends up broken, the break is propagated again through the real
// (now-restored) group stack. Neither an IfBreak node nor a BreakParent
// marker is appended to the real target in this case, since the flat
// branch could never render.
func (b *Builder) IfFlat(body func()) {
	b.checkOwner()
	cur, ok := lastGroup(b.groups)
	if ok && cur.Broken {
		throwaway := &Node{Kind: KindGroup}
		b.groups = append(b.groups, throwaway)
		prevTarget := b.target
		b.target = &throwaway.Children
		func() {
			defer func() {
				slicesx.Pop(&b.groups)
				b.target = prevTarget
			}()
			body()
		}()
		if throwaway.Broken {
			b.propagateBreak()
		}
		return
	}

	n := &Node{Kind: KindIfBreak}
	*b.target = append(*b.target, n)
	b.WithTarget(&n.FlatContents, body)
}

// LineSuffix appends a node whose contents are deferred until the next
// newline, or the end of the document if no further newline is emitted.
// Priority defaults to 1 when 0 is passed.
func (b *Builder) LineSuffix(priority int, body func()) {
	b.checkOwner()
	if priority == 0 {
		priority = 1
	}
	n := &Node{Kind: KindLineSuffix, Priority: priority}
	*b.target = append(*b.target, n)
	b.WithTarget(&n.Children, body)
}

// LastPosition computes the column offset of the last character that
// would be emitted by rendering n flat, resetting to 0 at every Breakable.
// It is a utility for callers computing alignment, not used by the layout
// engine itself.
func LastPosition(n *Node) int {
	pos := 0
	lastPositionWalk(n, &pos)
	return pos
}

func lastPositionWalk(n *Node, pos *int) {
	switch n.Kind {
	case KindText:
		*pos += n.TextWidth
	case KindBreakable:
		*pos = 0
	case KindGroup, KindIndent, KindAlign:
		for _, c := range n.Children {
			lastPositionWalk(c, pos)
		}
	case KindIfBreak:
		for _, c := range n.FlatContents {
			lastPositionWalk(c, pos)
		}
	}
}

func orDefault(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}
