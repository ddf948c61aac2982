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

	"golang.org/x/exp/constraints"

	"github.com/doclayout/pretty/internal/suffixqueue"
)

// mode is whether a command is being rendered flat or broken.
type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

// command is one entry of the layout engine's (and the fits predicate's)
// stack: an indentation level, a rendering mode, and the node to render
// under it.
type command struct {
	indent int
	mode   mode
	node   *Node
}

// engine holds the mutable state of a single render.
type engine struct {
	opts Options
	buf  Buffer

	position        int
	commands        []command
	shouldRemeasure bool
	suffixes        suffixqueue.Queue[mode]
}

// Render renders root to buf under opts.
func Render(buf Buffer, opts Options, root *Node) {
	opts = opts.withDefaults()
	e := &engine{opts: opts, buf: buf}

	e.position = opts.BaseIndent
	if opts.BaseIndent > 0 {
		buf.Append(opts.GenSpace(opts.BaseIndent))
	}
	e.commands = []command{{opts.BaseIndent, modeBreak, root}}
	e.run()
}

func (e *engine) run() {
	for len(e.commands) > 0 || e.suffixes.Len() > 0 {
		if len(e.commands) == 0 {
			e.drainSuffixes()
			continue
		}
		cmd := e.commands[len(e.commands)-1]
		e.commands = e.commands[:len(e.commands)-1]
		e.step(cmd)
	}
}

func (e *engine) step(cmd command) {
	n := cmd.node
	switch n.Kind {
	case KindText:
		for _, p := range n.Parts {
			e.buf.Append(p.value)
		}
		e.position += n.TextWidth

	case KindGroup:
		e.handleGroup(cmd)

	case KindBreakable:
		e.handleBreakable(cmd)

	case KindIndent:
		e.commands = pushChildren(e.commands, n.Children, cmd.indent+2, cmd.mode)

	case KindAlign:
		e.commands = pushChildren(e.commands, n.Children, cmd.indent+n.Delta, cmd.mode)

	case KindIfBreak:
		branch := n.FlatContents
		if cmd.mode == modeBreak {
			branch = n.BreakContents
		}
		e.commands = pushChildren(e.commands, branch, cmd.indent, cmd.mode)

	case KindLineSuffix:
		e.suffixes.Insert(n.Priority, cmd.indent, cmd.mode, n)

	case KindBreakParent:
		// No-op at render time: its effect was already applied when it
		// was appended to the tree during construction.

	case KindTrim:
		e.position -= e.buf.TrimTrailing()

	default:
		if n.Kind.known() {
			panic(fmt.Sprintf("pretty: Kind %d is known but has no case in step", n.Kind))
		}
		// Malformed/opaque node: fall back to appending it as-is with
		// zero width, rather than aborting the render.
		e.buf.Append(n.Raw)
	}
}

func (e *engine) handleGroup(cmd command) {
	n := cmd.node

	if cmd.mode == modeFlat && !e.shouldRemeasure {
		m := modeFlat
		if n.Broken {
			m = modeBreak
		}
		e.commands = pushChildren(e.commands, n.Children, cmd.indent, m)
		return
	}

	e.shouldRemeasure = false

	if n.Broken {
		e.commands = pushChildren(e.commands, n.Children, cmd.indent, modeBreak)
		return
	}

	// seed is reused below after fits returns; fits walks its own copy of
	// it (see fits's doc comment).
	seed := make([]command, 0, len(n.Children))
	seed = pushChildren(seed, n.Children, cmd.indent, modeFlat)

	if fits(seed, e.commands, e.opts.MaxWidth-e.position, e.buf.Fresh()) {
		e.commands = append(e.commands, seed...)
		return
	}

	for i := range seed {
		seed[i].mode = modeBreak
	}
	e.commands = append(e.commands, seed...)
}

func (e *engine) handleBreakable(cmd command) {
	n := cmd.node

	if cmd.mode == modeFlat {
		if !n.Force {
			e.buf.Append(n.Sep)
			e.position += n.SepWidth
			return
		}
		e.shouldRemeasure = true
	}

	if e.suffixes.Len() > 0 {
		e.commands = append(e.commands, cmd)
		e.drainSuffixes()
		return
	}

	if !n.WithIndent {
		e.buf.Append(e.opts.Newline)
		e.position = 0
		return
	}

	e.position -= e.buf.TrimTrailing()
	e.buf.Append(e.opts.Newline)
	indent := clampNonNegative(cmd.indent)
	e.buf.Append(e.opts.GenSpace(indent))
	e.position = indent
}

// drainSuffixes empties the suffix queue onto the command stack, ordered so
// that the entry that should render soonest ends up on top.
//
// Draining pushes strictly in push order (ascending priority, then
// ascending insertion order), so the last entry drained — highest
// priority, most recently inserted — lands on top of the stack and is
// processed first. An empty suffix body contributes nothing and is never
// re-added, so this terminates even when drained repeatedly at the end of
// a render.
func (e *engine) drainSuffixes() {
	e.suffixes.Drain(func(entry suffixqueue.Entry[mode]) {
		n := entry.Value.(*Node)
		e.commands = pushChildren(e.commands, n.Children, entry.Indent, entry.Mode)
	})
}

// clampNonNegative guards [Options.GenSpace] against a negative column
// count, which can arise from stacking negative Align deltas deeper than
// the accumulated positive indentation.
func clampNonNegative[T constraints.Signed](v T) T {
	if v < 0 {
		return 0
	}
	return v
}
