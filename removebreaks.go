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

// RemoveBreaks returns a copy of n with every Breakable replaced by a Text
// node (containing its separator, or replacement if it was forced), and
// every IfBreak replaced by an Align of delta 0 wrapping its flat
// contents. It's used to collapse a subtree into a form that can never
// break, regardless of width.
func RemoveBreaks(n *Node, replacement string) *Node {
	return removeBreaksNode(n, replacement)
}

func removeBreaksSlice(nodes []*Node, replacement string) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = removeBreaksNode(n, replacement)
	}
	return out
}

func removeBreaksNode(n *Node, replacement string) *Node {
	switch n.Kind {
	case KindBreakable:
		sep := n.Sep
		if n.Force {
			sep = replacement
		}
		return &Node{
			Kind:      KindText,
			Parts:     []textPart{{sep, len(sep)}},
			TextWidth: len(sep),
		}

	case KindIfBreak:
		return &Node{
			Kind:     KindAlign,
			Delta:    0,
			Children: removeBreaksSlice(n.FlatContents, replacement),
		}

	case KindGroup:
		return &Node{
			Kind:     KindGroup,
			Depth:    n.Depth,
			Broken:   n.Broken,
			Children: removeBreaksSlice(n.Children, replacement),
		}

	case KindIndent:
		return &Node{
			Kind:     KindIndent,
			Children: removeBreaksSlice(n.Children, replacement),
		}

	case KindAlign:
		return &Node{
			Kind:     KindAlign,
			Delta:    n.Delta,
			Children: removeBreaksSlice(n.Children, replacement),
		}

	case KindLineSuffix:
		return &Node{
			Kind:     KindLineSuffix,
			Priority: n.Priority,
			Children: removeBreaksSlice(n.Children, replacement),
		}

	default:
		// Text, BreakParent, Trim, and anything malformed pass through
		// unchanged: they carry no break decision to remove.
		return n
	}
}
