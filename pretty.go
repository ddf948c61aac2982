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

// Package pretty is a pretty-printing layout engine: it takes a document
// tree describing how content may be laid out — with optional line
// breaks, nested groups, conditional alternates, indentation, and
// trailing-content buffers — and produces a rendered string that respects
// a maximum line width while greedily keeping related content on one
// line.
//
// Build a tree with a [Builder], then render it with [Format] or
// [FormatString]. [SinglelineFormat] and [SinglelineFormatString] collapse
// the same tree onto one line, ignoring width entirely.
package pretty

// Format builds a document tree by calling build against a fresh
// [Builder], renders it into buf under opts, and returns buf.
func Format(buf Buffer, opts Options, build func(*Builder)) Buffer {
	b := NewBuilder()
	build(b)
	Render(buf, opts, b.Root())
	return buf
}

// FormatString is [Format] against a fresh [StringBuffer], returning the
// rendered string directly.
func FormatString(opts Options, build func(*Builder)) string {
	buf := NewStringBuffer()
	Format(buf, opts, build)
	return buf.String()
}

// SinglelineFormat builds a document tree by calling build against a
// fresh [Builder], collapses it onto one line into buf, and returns buf.
func SinglelineFormat(buf Buffer, build func(*Builder)) Buffer {
	b := NewBuilder()
	build(b)
	RenderSingleLine(buf, b.Root())
	return buf
}

// SinglelineFormatString is [SinglelineFormat] against a fresh
// [StringBuffer], returning the rendered string directly.
func SinglelineFormatString(build func(*Builder)) string {
	buf := NewStringBuffer()
	SinglelineFormat(buf, build)
	return buf.String()
}
