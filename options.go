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

import "strings"

// Options configures [Format].
type Options struct {
	// MaxWidth is the maximum number of columns to render before a group
	// is forced to break. Zero means "use the default of 80".
	MaxWidth int
	// Newline is the string emitted for each line break. Zero means "use
	// the default of "\n"".
	Newline string
	// GenSpace maps an indentation column count to the string used to
	// indent a line. Nil means "use [DefaultGenSpace]".
	GenSpace func(columns int) string
	// BaseIndent is the indentation column the document starts at.
	BaseIndent int
}

// withDefaults fills in the zero-valued fields of o with their defaults.
func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 80
	}
	if o.Newline == "" {
		o.Newline = "\n"
	}
	if o.GenSpace == nil {
		o.GenSpace = DefaultGenSpace
	}
	return o
}

// DefaultGenSpace is the default [Options.GenSpace]: n literal space
// characters.
func DefaultGenSpace(columns int) string {
	if columns <= 0 {
		return ""
	}
	return strings.Repeat(" ", columns)
}
