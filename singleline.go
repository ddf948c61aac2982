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

// RenderSingleLine collapses root onto a single line, honoring only the
// flat-side alternates and deferring line-suffix content to the end of
// the document.
func RenderSingleLine(buf Buffer, root *Node) {
	s := &singleLineRenderer{buf: buf, suffix: buf.Fresh()}
	s.walk(root.Children)
	drainInto(buf, s.suffix)
}

type singleLineRenderer struct {
	buf      Buffer
	suffix   Buffer
	inSuffix bool
}

func (s *singleLineRenderer) walk(nodes []*Node) {
	for _, n := range nodes {
		s.visit(n)
	}
}

func (s *singleLineRenderer) visit(n *Node) {
	switch n.Kind {
	case KindText:
		for _, p := range n.Parts {
			s.write(p.value)
		}

	case KindBreakable:
		s.write(n.Sep)

	case KindGroup, KindIndent, KindAlign:
		// Indentation has no effect in single-line mode; groups are
		// always walked as if flat.
		s.walk(n.Children)

	case KindIfBreak:
		s.walk(n.FlatContents)

	case KindLineSuffix:
		prev := s.inSuffix
		s.inSuffix = true
		s.walk(n.Children)
		s.inSuffix = prev

	case KindBreakParent:
		// No-op.

	case KindTrim:
		s.activeBuffer().TrimTrailing()

	default:
		s.write(n.Raw)
	}
}

func (s *singleLineRenderer) write(v any) {
	s.activeBuffer().Append(v)
}

func (s *singleLineRenderer) activeBuffer() Buffer {
	if s.inSuffix {
		return s.suffix
	}
	return s.buf
}
