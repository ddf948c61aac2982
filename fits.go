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

import "fmt"

// fits answers whether the remainder of the document, assuming flat mode
// starting at seed, fits within remaining columns.
//
// seed holds the command triplets just produced by handling a Group in
// flat mode, in reverse-DFS order (so seed's last element is the first one
// that would actually be processed). rest is the main engine's command
// stack; it is read, never mutated — fits only ever walks further into it
// by index, starting from its end.
//
// scratch must be a freshly constructed Buffer of the same concrete type
// as the real output buffer, so that a Trim encountered during lookahead
// computes the same column delta the real render would.
//
// fits walks its own copy of seed and never writes into seed's backing
// array, since the caller reuses seed's contents afterward.
func fits(seed []command, rest []command, remaining int, scratch Buffer) bool {
	stack := append(make([]command, 0, len(seed)), seed...)
	restPos := len(rest)

	for {
		for len(stack) > 0 {
			cmd := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := cmd.node

			switch {
			case n.Kind == KindText:
				for _, p := range n.Parts {
					scratch.Append(p.value)
				}
				remaining -= n.TextWidth

			case n.Kind == KindBreakable:
				if cmd.mode == modeFlat && !n.Force {
					scratch.Append(n.Sep)
					remaining -= n.SepWidth
				} else {
					// A break-mode or forced Breakable: we found a line
					// break before exceeding the width — but only if
					// nothing earlier in this same batch already ran the
					// budget negative.
					return remaining >= 0
				}

			case n.Kind == KindGroup:
				mode := cmd.mode
				if n.Broken {
					mode = modeBreak
				}
				stack = pushChildren(stack, n.Children, cmd.indent, mode)

			case n.Kind == KindIndent:
				stack = pushChildren(stack, n.Children, cmd.indent+2, cmd.mode)

			case n.Kind == KindAlign:
				stack = pushChildren(stack, n.Children, cmd.indent+n.Delta, cmd.mode)

			case n.Kind == KindIfBreak:
				branch := n.FlatContents
				if cmd.mode == modeBreak {
					branch = n.BreakContents
				}
				stack = pushChildren(stack, branch, cmd.indent, cmd.mode)

			case n.Kind == KindLineSuffix, n.Kind == KindBreakParent:
				// Ignored for width purposes.

			case n.Kind == KindTrim:
				remaining += scratch.TrimTrailing()

			default:
				if n.Kind.known() {
					panic(fmt.Sprintf("pretty: Kind %d is known but has no case in fits", n.Kind))
				}
				// Malformed/opaque node: zero width, ignored.
			}

			if remaining < 0 {
				return false
			}
		}

		if restPos == 0 {
			return true
		}
		restPos--
		stack = append(stack, rest[restPos])
	}
}

// pushChildren appends children in reverse order onto stack, so that
// children[0] ends up on top.
func pushChildren(stack []command, children []*Node, indent int, mode mode) []command {
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, command{indent, mode, children[i]})
	}
	return stack
}
