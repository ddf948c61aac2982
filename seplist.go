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

// Seplist iterates items, invoking each for every element, and sep between
// consecutive elements. sep is never called for an empty items, nor after
// the last element. If sep is nil, [Builder.CommaBreakable] is used.
//
// Go has no method type parameters, so this is a package-level function
// rather than a Builder method — unlike the rest of the builder surface,
// it takes b explicitly.
func Seplist[T any](b *Builder, items []T, each func(T), sep func()) {
	if sep == nil {
		sep = b.CommaBreakable
	}
	for i, item := range items {
		if i > 0 {
			sep()
		}
		each(item)
	}
}
