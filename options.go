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

import "github.com/johnedmonds/entity-diff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of kept elements to include as a prefix and postfix for hunks returned
// in [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// MaxDistance bounds the edit distance the comparison functions are willing to compute. If
// transforming x into y needs more than n deletions and insertions combined, the comparison fails
// with [ErrMaxDistanceExceeded].
//
// The bound also caps the memory the search spends on its backtracking record, which grows
// quadratically with the edit distance. By default there is no bound; n <= 0 means unbounded.
func MaxDistance(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxDistance = max(0, n)
		return config.MaxDistance
	}
}
