// Copyright 2026 The entity-diff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diff

// Apply replays an edit script against x and returns the resulting slice: kept elements are
// copied over, deleted elements are dropped and inserted elements are spliced in at their
// position. Applying the output of [Edits] or [EditsFunc] to the x it was computed for yields y.
//
// The script must consume x exactly, that is its Keep and Delete edits must total len(x); Apply
// panics otherwise.
func Apply[T any](x []T, edits []Edit[T]) []T {
	var nkeep int
	for _, e := range edits {
		if e.Op != Delete {
			nkeep++
		}
	}
	out := make([]T, 0, nkeep)
	s := 0
	for _, e := range edits {
		switch e.Op {
		case Keep:
			out = append(out, x[s])
			s++
		case Delete:
			s++
		case Insert:
			out = append(out, e.Y)
		}
	}
	if s != len(x) {
		panic("diff: edit script does not match input length")
	}
	return out
}
