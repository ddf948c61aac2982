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
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertRendered compares a multi-line rendered string against its expected
// value, failing with a unified line diff rather than a raw string dump.
func assertRendered(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("render mismatch, and diff failed: %v\nwant: %q\ngot:  %q", err, want, got)
	}
	t.Fatalf("render mismatch:\n%s", diff)
}
