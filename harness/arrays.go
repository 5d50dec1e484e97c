// Copyright 2025 lab2-pap Authors
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

// Package harness drives benchmark experiments over the sorting kernels of
// package psort: it builds input arrays, verifies results, times repeated
// trials and records speedups.
package harness

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/CarlosVargasF/lab2-pap/psort/workerpool"
)

// InitSequence fills data with 0, 1, ..., len(data)-1.
func InitSequence(data []uint64) {
	for i := range data {
		data[i] = uint64(i)
	}
}

// InitSequenceParallel is InitSequence with the array split into one
// contiguous range per worker of pool. A nil pool fills sequentially.
func InitSequenceParallel(pool *workerpool.Pool, data []uint64) {
	if pool == nil {
		InitSequence(data)
		return
	}
	pool.ParallelFor(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = uint64(i)
		}
	})
}

// InitRandom fills data with uniformly distributed values drawn from rng.
func InitRandom(data []uint64, rng *rand.Rand) {
	for i := range data {
		data[i] = rng.Uint64()
	}
}

// Initializer fills an array before a trial.
type Initializer func(data []uint64)

// NewInitializer returns InitSequence, or InitRandom on a generator seeded
// with seed when random is set. The random generator keeps its state across
// calls, so consecutive trials see different arrays.
func NewInitializer(random bool, seed int64) Initializer {
	if !random {
		return InitSequence
	}
	rng := rand.New(rand.NewSource(seed))
	return func(data []uint64) {
		InitRandom(data, rng)
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []uint64) bool {
	return slices.IsSorted(data)
}

// IsSortedSequence reports whether data is exactly 0, 1, ..., len(data)-1,
// the only valid result of sorting an array built by InitSequence.
func IsSortedSequence(data []uint64) bool {
	for i, v := range data {
		if v != uint64(i) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal(a, b []uint64) bool {
	return slices.Equal(a, b)
}

// FormatArray renders data as "[ v0 v1 ... ]".
func FormatArray(data []uint64) string {
	var sb strings.Builder
	sb.WriteString("[")
	for _, v := range data {
		fmt.Fprintf(&sb, " %d", v)
	}
	sb.WriteString(" ]")
	return sb.String()
}
