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

package pretty_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doclayout/pretty"
)

// Group containing text, a breakable, and more text fits on one line
// when the width allows it.
func TestFormat_S1(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{MaxWidth: 80}, func(b *pretty.Builder) {
		b.Group(pretty.GroupOptions{}, func() {
			b.Text("a")
			b.BreakableSpace()
			b.Text("b")
		})
	})
	assert.Equal(t, "a b", got)
}

// The same group breaks onto two lines once the width can't hold it flat.
func TestFormat_S2(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{MaxWidth: 2}, func(b *pretty.Builder) {
		b.Group(pretty.GroupOptions{}, func() {
			b.Text("a")
			b.BreakableSpace()
			b.Text("b")
		})
	})
	assertRendered(t, "a\nb", got)
}

// An Indent wraps its forced break in two columns of indentation.
func TestFormat_S3(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Indent(func() {
			b.BreakableForce()
			b.Text("x")
		})
	})
	assertRendered(t, "\n  x", got)
}

// A Nest wraps its forced break in its given column delta.
func TestFormat_S4(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Nest(4, func() {
			b.BreakableForce()
			b.Text("x")
		})
	})
	assertRendered(t, "\n    x", got)
}

// IfBreak/IfFlat render the branch matching the enclosing group's actual
// mode.
func TestFormat_S5(t *testing.T) {
	t.Parallel()

	flat := pretty.FormatString(pretty.Options{MaxWidth: 80}, func(b *pretty.Builder) {
		b.Group(pretty.GroupOptions{}, func() {
			ib := b.IfBreak(func() { b.Text("break") })
			ib.IfFlat(func() { b.Text("flat") })
		})
	})
	assert.Equal(t, "flat", flat)

	broken := pretty.FormatString(pretty.Options{MaxWidth: 80}, func(b *pretty.Builder) {
		b.Group(pretty.GroupOptions{}, func() {
			b.BreakParent()
			ib := b.IfBreak(func() { b.Text("break") })
			ib.IfFlat(func() { b.Text("flat") })
		})
	})
	assert.Equal(t, "break", broken)
}

// A LineSuffix is deferred until the next forced newline.
func TestFormat_S6(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.LineSuffix(0, func() { b.Text(" # c") })
		b.Text("x")
		b.BreakableForce()
	})
	assert.Equal(t, "x # c\n", got)
}

// Trim erases the indentation emitted by the preceding forced newline, so
// the text after it starts at column 0.
func TestFormat_S7(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Indent(func() {
			b.BreakableForce()
			b.Text("first")
			b.BreakableForce()
			b.Trim()
			b.Text("second")
		})
	})
	assertRendered(t, "\n  first\nsecond", got)
}

func TestRender_BaseIndentAppliesBeforeFirstText(t *testing.T) {
	t.Parallel()

	buf := pretty.NewStringBuffer()
	b := pretty.NewBuilder()
	b.Text("x")
	pretty.Render(buf, pretty.Options{BaseIndent: 4}, b.Root())
	assert.Equal(t, "    x", buf.String())
}

func TestFormat_CustomGenSpaceAndNewline(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{
		Newline:  "|",
		GenSpace: func(n int) string { return strings.Repeat(".", n) },
	}, func(b *pretty.Builder) {
		b.Indent(func() {
			b.BreakableForce()
			b.Text("x")
		})
	})
	assert.Equal(t, "|..x", got)
}

// A flat-rendered group never exceeds the available width
// unless it contains an unbreakable run wider than the line itself.
func TestInvariant_FlatFitsWithinWidth(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{MaxWidth: 80}, func(b *pretty.Builder) {
		b.Group(pretty.GroupOptions{}, func() {
			b.Text("short")
		})
	})
	assert.LessOrEqual(t, len(got), 80)
}

// Any force-true Breakable forces at least one newline and
// every enclosing Group through the root ends up broken.
func TestInvariant_ForcePropagatesToRoot(t *testing.T) {
	t.Parallel()

	b := pretty.NewBuilder()
	var inner *pretty.Node
	b.Group(pretty.GroupOptions{}, func() {
		b.Group(pretty.GroupOptions{}, func() {
			inner = b.CurrentGroup()
			b.BreakableForce()
		})
	})
	assert.True(t, inner.Broken)
	assert.True(t, b.Root().Broken)
	assert.Contains(t, pretty.FormatString(pretty.Options{}, func(b2 *pretty.Builder) {
		b2.Group(pretty.GroupOptions{}, func() {
			b2.BreakableForce()
		})
	}), "\n")
}

// Two successive Trim nodes emit the same output as one.
func TestInvariant_IdempotentTrim(t *testing.T) {
	t.Parallel()

	once := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Text("x   ")
		b.Trim()
		b.Text("y")
	})
	twice := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Text("x   ")
		b.Trim()
		b.Trim()
		b.Text("y")
	})
	assert.Equal(t, once, twice)
}

// For a tree with no force-true Breakable and no LineSuffix,
// SinglelineFormat matches Format at an unbounded width.
func TestInvariant_RoundTripSingleLine(t *testing.T) {
	t.Parallel()

	build := func(b *pretty.Builder) {
		b.Group(pretty.GroupOptions{}, func() {
			b.Text("alpha")
			b.BreakableSpace()
			b.Text("beta")
			b.BreakableSpace()
			b.Text("gamma")
		})
	}

	wide := pretty.FormatString(pretty.Options{MaxWidth: math.MaxInt}, build)
	single := pretty.SinglelineFormatString(build)
	assert.Equal(t, wide, single)
}

// After a broken, indented Breakable, the next position
// equals exactly the current indent level.
func TestInvariant_IndentDiscipline(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Indent(func() {
			b.BreakableForce()
			b.Text("x")
			b.BreakableForce()
			b.Text("y")
		})
	})
	for _, line := range strings.Split(got, "\n")[1:] {
		if line == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(line, "  "))
	}
}

// Given two LineSuffix nodes on the same line with priorities
// p1 > p2, the children of the first are emitted before the second's.
func TestInvariant_LineSuffixOrderingByPriority(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.LineSuffix(1, func() { b.Text("low") })
		b.LineSuffix(5, func() { b.Text("high") })
		b.Text("x")
		b.BreakableForce()
	})
	assert.Equal(t, "xhighlow\n", got)
}

// No emitted line (except possibly the last) ends in a tab or
// space.
func TestInvariant_TrailingWhitespaceCleanliness(t *testing.T) {
	t.Parallel()

	got := pretty.FormatString(pretty.Options{}, func(b *pretty.Builder) {
		b.Indent(func() {
			b.Text("first ")
			b.BreakableForce()
			b.Text("second")
		})
	})
	lines := strings.Split(got, "\n")
	for _, line := range lines[:len(lines)-1] {
		assert.False(t, strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t"))
	}
}
