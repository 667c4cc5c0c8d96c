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

// Package rvecs contains functions to work with result vectors, the internal representation
// produced by the edit graph search before it is translated into the user facing API. For inputs
// x and y, rx[s] is true iff x[s] is deleted and ry[t] is true iff y[t] is inserted; positions
// marked in neither vector are kept.
package rvecs

// Make allocates a pair of result vectors for x and y with a single allocation. Both vectors
// carry a one element border past the end of their input, which simplifies iterating over them in
// lockstep.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}
