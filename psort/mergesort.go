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

import "github.com/CarlosVargasF/lab2-pap/psort/workerpool"

// SequentialMergeSort sorts data in place by recursive halving. Two-element
// ranges are compare-and-swapped directly; halves are merged with MergeRuns.
// Lengths that are not a power of two split at n/2.
func SequentialMergeSort(data []uint64) {
	n := len(data)
	switch {
	case n < 2:
		return
	case n == 2:
		if data[1] < data[0] {
			data[0], data[1] = data[1], data[0]
		}
		return
	}

	mid := n / 2
	SequentialMergeSort(data[:mid])
	SequentialMergeSort(data[mid:])
	MergeRuns(data, mid)
}

// ParallelMergeSort sorts data in place on pool: every chunk is merge-sorted
// concurrently, then the sorted chunks are combined by Tournament.
func ParallelMergeSort(pool *workerpool.Pool, data []uint64) {
	parallelChunkSort(pool, data, SequentialMergeSort)
}

// parallelChunkSort is the two-phase driver shared by ParallelMergeSort and
// ParallelQuicksort.
func parallelChunkSort(pool *workerpool.Pool, data []uint64, local func([]uint64)) {
	chunks := poolChunks(pool, len(data))
	if len(chunks) <= 1 {
		local(data)
		return
	}

	// Phase A: independent chunk-local sorts.
	pool.Run(len(chunks), func(i int) {
		local(chunks[i].Of(data))
	})

	// Phase B: tournament.
	Tournament(pool, data, chunks)
}
