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

package psort

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/CarlosVargasF/lab2-pap/psort/workerpool"
)

// Algorithm identifies one of the sorting algorithms of this package.
type Algorithm int

const (
	// Bubble is bubble sort (ParallelBubble / SequentialBubble).
	Bubble Algorithm = iota

	// OddEven is odd-even transposition sort.
	OddEven

	// MergeSort is recursive merge sort; the parallel variant merges sorted
	// chunks with a tournament.
	MergeSort

	// Quicksort is introsort; the parallel variant merges sorted chunks with
	// a tournament.
	Quicksort
)

var algorithmNames = map[Algorithm]string{
	Bubble:    "bubble",
	OddEven:   "odd-even",
	MergeSort: "mergesort",
	Quicksort: "quicksort",
}

// String returns the algorithm's short name, e.g. "odd-even".
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// Algorithms returns every algorithm, in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, OddEven, MergeSort, Quicksort}
}

// ParseAlgorithm maps a name (case-insensitive, "oddeven" and "merge" are
// accepted as aliases) to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble":
		return Bubble, nil
	case "odd-even", "oddeven":
		return OddEven, nil
	case "mergesort", "merge":
		return MergeSort, nil
	case "quicksort", "quick":
		return Quicksort, nil
	}
	return 0, errors.Errorf("unknown algorithm %q", name)
}

// Sequential sorts data in place with the sequential variant of a.
func (a Algorithm) Sequential(data []uint64) {
	switch a {
	case Bubble:
		SequentialBubble(data)
	case OddEven:
		SequentialOddEven(data)
	case MergeSort:
		SequentialMergeSort(data)
	case Quicksort:
		SequentialQuicksort(data)
	default:
		panic("psort: unknown algorithm " + a.String())
	}
}

// Parallel sorts data in place with the parallel variant of a on pool.
func (a Algorithm) Parallel(pool *workerpool.Pool, data []uint64) {
	switch a {
	case Bubble:
		ParallelBubble(pool, data)
	case OddEven:
		ParallelOddEven(pool, data)
	case MergeSort:
		ParallelMergeSort(pool, data)
	case Quicksort:
		ParallelQuicksort(pool, data)
	default:
		panic("psort: unknown algorithm " + a.String())
	}
}
