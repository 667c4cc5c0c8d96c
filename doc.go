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

// Package diff computes a minimal edit script between two slices: the shortest sequence of
// keep/delete/insert operations that transforms one slice into the other.
//
// The main functions are [Edits], which returns one edit per element of the inputs, and [Hunks],
// which groups changes into contextual blocks. Both have Func variants that take a caller-supplied
// equality function for element types that aren't comparable or that need custom equality.
//
// The result is always minimal: the number of Delete and Insert edits equals the unit-cost edit
// distance between the inputs (a replacement counts as a deletion followed by an insertion), and
// the number of Keep edits equals the length of a longest common subsequence. Among the possibly
// many minimal scripts the output is canonical and deterministic: within a changed region,
// deletions are emitted before insertions.
//
// Performance: time is O((N+M)·D) where N and M are the input lengths and D is the edit distance.
// The search records its progress for backtracking, which needs O(D²) space, so very large,
// highly dissimilar inputs are expensive in memory. [MaxDistance] bounds D up front for callers
// that need to cap this; when the bound is exceeded, the comparison fails with
// [ErrMaxDistanceExceeded] instead of completing.
package diff
