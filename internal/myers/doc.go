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

// Package myers implements Myers' shortest edit script algorithm.
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x into
// y. Every vertex (s, t) is an alignment state between position s in x and position t in y; the
// top left (0, 0) is the start and the bottom right (N, M) the goal. A step to the right deletes
// x[s], a step down inserts y[t], and when x[s] equals y[t] a free diagonal edge keeps the
// element. An optimal diff (fewest insertions and deletions) is a minimum-cost path from (0, 0)
// to (N, M) where the non-diagonal edges cost 1 and the diagonal edges cost 0.
//
// Some nomenclature: s and t are the horizontal and vertical coordinates and k = s - t numbers
// the diagonals; the k=0 diagonal starts in (0, 0). A d-path is a path with exactly d
// non-diagonal edges. A d-path ends on a diagonal k in {-d, -d+2, ..., d}, and a furthest
// reaching d-path on diagonal k is one whose endpoint has the greatest possible row of all
// d-paths ending there.
//
// The search works greedily on d = 0, 1, 2, ...: a furthest reaching d-path on diagonal k is a
// furthest reaching (d-1)-path on diagonal k-1 followed by a step right, or one on diagonal k+1
// followed by a step down, either way followed by the longest possible run of free diagonal
// edges. Only the furthest reaching rows per diagonal need to be stored, and the search stops as
// soon as the frontier reaches (N, M); the terminating d is the edit distance. Since deleting all
// of x and inserting all of y is always possible, d never exceeds N+M.
//
// This implementation keeps a snapshot of the frontier for every completed round (O(D²) ints in
// total) and reconstructs the path by walking the snapshots backwards from (N, M), making the
// same neighbor comparison as the forward search. That trades the linear-space refinement from
// section 4b of the paper for an exact, canonical script and a single forward pass, which keeps
// the output deterministic and makes a configured distance bound precise.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1,
// 251-266 (1986). https://doi.org/10.1007/BF01840446
package myers
