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

package myers

import (
	"errors"
	"slices"

	"github.com/johnedmonds/entity-diff/internal/config"
	"github.com/johnedmonds/entity-diff/internal/rvecs"
)

// ErrMaxDistanceExceeded is returned when the edit distance between the inputs exceeds the
// configured bound.
var ErrMaxDistanceExceeded = errors.New("diff: max edit distance exceeded")

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other as a pair of result vectors.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool, err error) {
	return DiffFunc(x, y, func(a, b T) bool { return a == b }, cfg)
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other as a pair of result vectors.
//
// If cfg.MaxDistance is positive and the edit distance exceeds it, DiffFunc returns
// ErrMaxDistanceExceeded and no result vectors.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool, err error) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	limit := cfg.MaxDistance
	rx, ry = rvecs.Make(x, y)

	// Handle trivial cases without running the search. The distance bound applies here too so
	// that bounded calls behave uniformly.
	switch {
	case smin == smax && tmin == tmax:
		return rx, ry, nil
	case smin == smax:
		if limit > 0 && tmax-tmin > limit {
			return nil, nil, ErrMaxDistanceExceeded
		}
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry, nil
	case tmin == tmax:
		if limit > 0 && smax-smin > limit {
			return nil, nil, ErrMaxDistanceExceeded
		}
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry, nil
	}

	var g search[T]
	g.init(x[smin:smax], y[tmin:tmax], eq)
	d, err := g.run(limit)
	if err != nil {
		return nil, nil, err
	}
	g.backtrack(d, rx[smin:], ry[tmin:])
	return rx, ry, nil
}

// frontier is the snapshot of the furthest reaching rows after one round of the search. A round-d
// frontier covers the diagonals -d..d; the row for diagonal k is stored at index k+d.
type frontier []int

func (f frontier) row(k int) int { return f[k+len(f)/2] }

type search[T any] struct {
	// Inputs with their common prefix and suffix stripped.
	x, y []T
	eq   func(a, b T) bool

	// v stores in v[v0+k] the furthest reaching row of a d-path on diagonal k, after following
	// the longest possible run of diagonal edges from that point. v0 is the offset that
	// translates k in [-(N+M), N+M] to an index into v; the k-loop in run reads one element past
	// either end of that range, which the two border elements absorb.
	v  []int
	v0 int

	// trace holds a snapshot of v for every completed round. trace[d] covers the diagonals -d..d
	// reachable with d non-diagonal edges, so the whole trace is O(D²) ints.
	trace []frontier
}

func (g *search[T]) init(x, y []T, eq func(a, b T) bool) {
	diagonals := len(x) + len(y)
	g.x, g.y = x, y
	g.eq = eq
	g.v = make([]int, 2*diagonals+3) // +1 for the middle point and +2 for the borders
	g.v0 = diagonals + 1
}

// run performs the forward search and returns the edit distance between x and y, leaving behind
// the trace that backtrack consumes. It fails with ErrMaxDistanceExceeded when the distance would
// exceed limit; limit <= 0 means unbounded.
//
// Important: x and y must not have a common prefix or a common suffix and neither may be empty.
func (g *search[T]) run(limit int) (int, error) {
	n, m := len(g.x), len(g.y)
	final := n - m // the diagonal containing the goal (n, m)

	// Seed the border so that the d=0 round takes the step-down branch and starts at row 0.
	g.v[g.v0+1] = 0

	// A (n+m)-path always exists (delete all of x, insert all of y), so the frontier is
	// guaranteed to reach the goal and the loop needs no exit condition of its own.
	for d := 0; ; d++ {
		if limit > 0 && d > limit {
			return 0, ErrMaxDistanceExceeded
		}
		for k := -d; k <= d; k += 2 {
			k0 := g.v0 + k

			// A furthest reaching d-path on diagonal k extends a furthest reaching (d-1)-path on
			// diagonal k-1 with a step right (a deletion), or one on diagonal k+1 with a step
			// down (an insertion), whichever starts from the larger row. The k == ±d guards keep
			// us from reading diagonals the previous round never visited. When both neighbors
			// reach the same row the k-1 path wins, which prioritizes deletions over insertions
			// and fixes one canonical script among the minimal ones.
			var s int
			if k == -d || (k != d && g.v[k0-1] < g.v[k0+1]) {
				s = g.v[k0+1]
			} else {
				s = g.v[k0-1] + 1
			}
			t := s - k

			// Follow the free diagonal edges as far as they go.
			for s < n && t < m && g.eq(g.x[s], g.y[t]) {
				s++
				t++
			}
			g.v[k0] = s

			if k == final && s == n {
				// The frontier reached (n, m) and d is the edit distance. Backtracking only
				// needs the snapshots of the earlier rounds, so this round is not recorded.
				return d, nil
			}
		}
		g.trace = append(g.trace, frontier(slices.Clone(g.v[g.v0-d:g.v0+d+1])))
	}
}

// backtrack walks from (n, m) back through the recorded frontiers, undoing one non-diagonal edge
// per round with the same neighbor comparison the forward search made, so the two passes can
// never disagree about the path. Undone deletions are marked in rx and insertions in ry; the free
// diagonal runs in between need no marks since unmarked positions are kept.
//
// rx and ry must be the result vectors offset to the stripped inputs of the search.
func (g *search[T]) backtrack(d int, rx, ry []bool) {
	s, t := len(g.x), len(g.y)
	for ; d > 0; d-- {
		prev := g.trace[d-1]
		k := s - t

		var pk int
		if k == -d || (k != d && prev.row(k-1) < prev.row(k+1)) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := prev.row(pk)
		pt := ps - pk

		if pk == k+1 {
			// Undo a step down: y[pt] is inserted.
			ry[pt] = true
		} else {
			// Undo a step right: x[ps] is deleted.
			rx[ps] = true
		}
		s, t = ps, pt
	}
}
