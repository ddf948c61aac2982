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

// Package suffixqueue holds the line-suffix entries accumulated by the
// layout engine between newlines, ordered so that on drain, entries come
// out highest-priority first, ties broken by most recently inserted first.
package suffixqueue

import "github.com/tidwall/btree"

// Entry is one deferred line-suffix body, along with the indent level and
// mode it was captured at.
type Entry[T any] struct {
	Indent int
	Mode   T
	Value  any
}

// Queue is an ordered multiset of [Entry] values, keyed by (priority,
// insertion order).
//
// It is backed by github.com/tidwall/btree's ordered map. A btree.Map's
// key type must be an ordered scalar, so (priority, sequence) is packed
// into a single int64: priority occupies
// the high bits and an insertion counter the low bits, so that ascending
// iteration visits low-priority/early-inserted entries first and
// high-priority/late-inserted entries last — which is the order entries
// must be *pushed* onto the layout engine's command stack so that the
// highest-priority, most-recently-inserted entry ends up on top.
type Queue[T any] struct {
	tree btree.Map[int64, Entry[T]]
	seq  int64
	n    int
}

// seqBits is the number of low bits reserved for the insertion counter.
// 40 bits is far more line suffixes than any single line could plausibly
// accumulate before a render terminates.
const seqBits = 40

// Insert adds an entry with the given priority (a priority of 0 defaults
// to 1).
func (q *Queue[T]) Insert(priority int, indent int, mode T, value any) {
	if priority == 0 {
		priority = 1
	}
	key := int64(priority)<<seqBits | q.seq
	q.seq++
	q.n++
	q.tree.Set(key, Entry[T]{Indent: indent, Mode: mode, Value: value})
}

// Len returns the number of entries currently queued.
func (q *Queue[T]) Len() int { return q.n }

// Drain calls fn once per entry, in push order (ascending priority, then
// ascending insertion order — so the last call is the entry that should be
// processed soonest), and empties the queue.
func (q *Queue[T]) Drain(fn func(Entry[T])) {
	q.tree.Scan(func(_ int64, e Entry[T]) bool {
		fn(e)
		return true
	})
	q.tree = btree.Map[int64, Entry[T]]{}
	q.n = 0
}
