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

import (
	"slices"

	"github.com/johnedmonds/entity-diff/internal/config"
	"github.com/johnedmonds/entity-diff/internal/myers"
	"github.com/johnedmonds/entity-diff/internal/rvecs"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Keep   Op = iota // The element is common to both slices and retained
	Delete           // A deletion of an element from the x slice
	Insert           // An insertion of an element from the y slice
)

// Edit describes a single edit of a diff.
//
//   - For Keep, both X and Y contain the retained element (they are equal).
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// ErrMaxDistanceExceeded is returned when a comparison needs more non-keep edits than the bound
// set via [MaxDistance] allows. No partial result is returned alongside it.
var ErrMaxDistanceExceeded = myers.ErrMaxDistanceExceeded

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Edits returns one edit for every element in the input slices. If x and y are identical, the
// output consists of a keep edit for every input element.
//
// The following option is supported: [MaxDistance]. The returned error is nil unless a
// [MaxDistance] bound is set and exceeded.
func Edits[T comparable](x, y []T, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	rx, ry, err := myers.Diff(x, y, cfg)
	if err != nil {
		return nil, err
	}
	return edits(x, y, rx, ry), nil
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// EditsFunc returns one edit for every element in the input slices. If x and y are identical, the
// output consists of a keep edit for every input element.
//
// The following option is supported: [MaxDistance]. The returned error is nil unless a
// [MaxDistance] bound is set and exceeded.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	rx, ry, err := myers.DiffFunc(x, y, eq, cfg)
	if err != nil {
		return nil, err
	}
	return edits(x, y, rx, ry), nil
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Compute the number of edits, this is relatively cheap and allows us to preallocate the
	// return value.
	n, m := len(rx)-1, len(ry)-1
	var nedits int
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			nedits++
			s++
		}
		for t < m && ry[t] {
			nedits++
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			nedits++
			s++
			t++
		}
	}
	if nedits == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			eout = append(eout, Edit[T]{
				Op: Delete,
				X:  x[s],
			})
			s++
		}
		for t < m && ry[t] {
			eout = append(eout, Edit[T]{
				Op: Insert,
				Y:  y[t],
			})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			eout = append(eout, Edit[T]{
				Op: Keep,
				X:  x[s],
				Y:  y[t],
			})
			s++
			t++
		}
	}
	return eout
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding kept elements. The amount of context can be
// configured using [Context].
//
// If x and y are identical, the output has length zero.
//
// The following options are supported: [Context], [MaxDistance]. The returned error is nil unless
// a [MaxDistance] bound is set and exceeded.
func Hunks[T comparable](x, y []T, opts ...Option) ([]Hunk[T], error) {
	cfg := config.FromOptions(opts, config.Context|config.MaxDistance)
	rx, ry, err := myers.Diff(x, y, cfg)
	if err != nil {
		return nil, err
	}
	return hunks(x, y, rx, ry, cfg), nil
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding kept elements. The amount of context can be
// configured using [Context].
//
// If x and y are identical, the output has length zero.
//
// The following options are supported: [Context], [MaxDistance]. The returned error is nil unless
// a [MaxDistance] bound is set and exceeded.
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Hunk[T], error) {
	cfg := config.FromOptions(opts, config.Context|config.MaxDistance)
	rx, ry, err := myers.DiffFunc(x, y, eq, cfg)
	if err != nil {
		return nil, err
	}
	return hunks(x, y, rx, ry, cfg), nil
}

func hunks[T any](x, y []T, rx, ry []bool, cfg config.Config) []Hunk[T] {
	// Compute the number of hunks and edits, this is relatively cheap and allows us to preallocate
	// the return values.
	var nhunks, nedits int
	for hunk := range rvecs.Hunks(rx, ry, cfg) {
		nhunks++
		nedits += hunk.Edits
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for hunk := range rvecs.Hunks(rx, ry, cfg) {
		for s, t := hunk.S0, hunk.T0; s < hunk.S1 || t < hunk.T1; {
			for s < hunk.S1 && rx[s] {
				eout = append(eout, Edit[T]{
					Op: Delete,
					X:  x[s],
				})
				s++
			}
			for t < hunk.T1 && ry[t] {
				eout = append(eout, Edit[T]{
					Op: Insert,
					Y:  y[t],
				})
				t++
			}
			for s < hunk.S1 && t < hunk.T1 && !rx[s] && !ry[t] {
				eout = append(eout, Edit[T]{
					Op: Keep,
					X:  x[s],
					Y:  y[t],
				})
				s++
				t++
			}
		}
		hout = append(hout, Hunk[T]{
			PosX:  hunk.S0,
			EndX:  hunk.S1,
			PosY:  hunk.T0,
			EndY:  hunk.T1,
			Edits: slices.Clip(eout),
		})
		eout = eout[len(eout):]
	}
	return hout
}
