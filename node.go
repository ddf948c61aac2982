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

// Kind is the tag of a [Node]'s variant.
type Kind uint8

const (
	// KindText is an ordinary run of text, possibly spliced together from
	// several consecutive builder calls.
	KindText Kind = iota
	// KindBreakable is a point that renders as a separator when its
	// enclosing group is flat, or a newline (plus indentation) when broken.
	KindBreakable
	// KindGroup is a subtree that is rendered either entirely flat or
	// entirely broken, as one decision.
	KindGroup
	// KindIndent increases indentation by a fixed two columns for its
	// children.
	KindIndent
	// KindAlign increases indentation by an arbitrary (possibly negative)
	// delta for its children.
	KindAlign
	// KindIfBreak selects between two child sequences depending on whether
	// the enclosing group broke.
	KindIfBreak
	// KindLineSuffix defers its children until the next newline or the end
	// of the document.
	KindLineSuffix
	// KindBreakParent is a construction-time marker; it has no effect
	// during render, since its effect (propagating a broken bit outward)
	// was already applied when it was appended.
	KindBreakParent
	// KindTrim erases trailing spaces/tabs on the current output line.
	KindTrim
)

// textPart is one of the opaque, string-like objects accumulated by a
// [KindText] node.
type textPart struct {
	value any
	width int
}

// Node is a single entry in a pretty-printing document tree.
//
// Node is a tagged variant: which fields are meaningful depends on Kind,
// rather than a hierarchy of node types. Children are owned via pointer
// slices instead of a flat, index-addressed arena — see DESIGN.md for why.
type Node struct {
	Kind Kind

	// KindText.
	Parts     []textPart
	TextWidth int

	// KindBreakable.
	Sep        string
	SepWidth   int
	Force      bool
	WithIndent bool

	// KindGroup, KindIndent, KindAlign, KindLineSuffix: shared child storage.
	Children []*Node

	// KindGroup only.
	Depth  int
	Broken bool

	// KindAlign only (KindIndent behaves as if Delta were always 2).
	Delta int

	// KindIfBreak only.
	BreakContents []*Node
	FlatContents  []*Node

	// KindLineSuffix only.
	Priority int

	// Raw is set when a [Node] was constructed outside of the normal
	// Builder surface with an unrecognized Kind. The layout engine falls
	// back to emitting Raw as-is with zero width, per the malformed-tree
	// error policy; the fits predicate counts such a node as zero width and
	// emits nothing for it.
	Raw any
}

// textWidth computes the default width of obj per the Builder.Text
// contract: len(obj) for strings, 0 for anything else (callers must supply
// an explicit width for non-string objects).
func textWidth(obj any) int {
	if s, ok := obj.(string); ok {
		return len(s)
	}
	return 0
}

// known reports whether k is one of the Kinds this package understands.
// Anything else is treated as a malformed/opaque node.
func (k Kind) known() bool {
	return k <= KindTrim
}
