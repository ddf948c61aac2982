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

// Buffer is an append-only text sink with trailing-whitespace trim support.
//
// Append must be infallible; a Buffer backed by a fallible sink is expected
// to panic from within Append, which will propagate out of [Format]
// unchanged.
type Buffer interface {
	// Append writes v to the end of the buffer. Strings and byte slices are
	// written verbatim; anything else is written via fmt.Sprint for a
	// [StringBuffer], or stored as an opaque chunk for a [ChunkBuffer].
	Append(v any)

	// TrimTrailing removes any run of trailing space/tab characters on the
	// current output line (it never crosses a newline) and returns the
	// number of columns removed.
	TrimTrailing() int

	// Fresh returns a new, empty Buffer of the same concrete type. The
	// fits predicate uses this to build a scratch buffer that models Trim
	// semantics the same way the real output sink would.
	Fresh() Buffer
}

// StringBuffer is a string-backed [Buffer].
//
// It is backed by a byte slice rather than a strings.Builder, since the
// latter exposes no way to shrink its contents, which TrimTrailing needs.
type StringBuffer struct {
	buf []byte
}

// NewStringBuffer returns an empty [StringBuffer].
func NewStringBuffer() *StringBuffer { return &StringBuffer{} }

// Append implements [Buffer].
func (b *StringBuffer) Append(v any) {
	switch x := v.(type) {
	case string:
		b.buf = append(b.buf, x...)
	case []byte:
		b.buf = append(b.buf, x...)
	default:
		b.buf = append(b.buf, fmt.Sprint(x)...)
	}
}

// TrimTrailing implements [Buffer].
func (b *StringBuffer) TrimTrailing() int {
	n := len(b.buf)
	for n > 0 && isHorizontalSpace(b.buf[n-1]) {
		n--
	}
	removed := len(b.buf) - n
	b.buf = b.buf[:n]
	return removed
}

// Fresh implements [Buffer].
func (b *StringBuffer) Fresh() Buffer { return &StringBuffer{} }

// String returns the buffer's contents.
func (b *StringBuffer) String() string { return string(b.buf) }

// chunk is a mutable run of text appended as a single Append call. Unlike a
// Go string, it can be truncated in place, which is what lets
// [ChunkBuffer.TrimTrailing] strip whitespace from the last chunk without
// discarding the whole chunk.
type chunk []byte

func (c chunk) allWhitespace() bool {
	for _, b := range c {
		if !isHorizontalSpace(b) {
			return false
		}
	}
	return true
}

// ChunkBuffer is a buffer backed by a list of appended objects, for callers
// whose "output" is a typed sequence of objects rather than characters.
type ChunkBuffer struct {
	chunks []any
}

// NewChunkBuffer returns an empty [ChunkBuffer].
func NewChunkBuffer() *ChunkBuffer { return &ChunkBuffer{} }

// Append implements [Buffer].
func (b *ChunkBuffer) Append(v any) {
	if s, ok := v.(string); ok {
		b.chunks = append(b.chunks, chunk(s))
		return
	}
	b.chunks = append(b.chunks, v)
}

// TrimTrailing implements [Buffer].
//
// It repeatedly pops trailing elements that are entirely whitespace, then,
// if the new last element is a chunk, strips its trailing whitespace in
// place.
func (b *ChunkBuffer) TrimTrailing() int {
	removed := 0
	for len(b.chunks) > 0 {
		last, ok := b.chunks[len(b.chunks)-1].(chunk)
		if !ok {
			break
		}
		if last.allWhitespace() {
			removed += len(last)
			b.chunks = b.chunks[:len(b.chunks)-1]
			continue
		}

		n := len(last)
		for n > 0 && isHorizontalSpace(last[n-1]) {
			n--
		}
		removed += len(last) - n
		b.chunks[len(b.chunks)-1] = last[:n]
		break
	}
	return removed
}

// Fresh implements [Buffer].
func (b *ChunkBuffer) Fresh() Buffer { return &ChunkBuffer{} }

// Chunks returns the buffer's contents.
func (b *ChunkBuffer) Chunks() []any { return b.chunks }

func isHorizontalSpace(b byte) bool { return b == ' ' || b == '\t' }

// drainInto appends every chunk/byte of src onto dst, used by the
// single-line renderer to flush its deferred line-suffix buffer onto the
// real output at the end of a render.
func drainInto(dst, src Buffer) {
	switch s := src.(type) {
	case *StringBuffer:
		if len(s.buf) > 0 {
			dst.Append(string(s.buf))
		}
	case *ChunkBuffer:
		for _, c := range s.chunks {
			dst.Append(c)
		}
	}
}
