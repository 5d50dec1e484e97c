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

// SequentialBubble sorts data in place by repeating full adjacent-pair
// passes until a pass performs no swap.
func SequentialBubble(data []uint64) {
	for BubbleOnePass(data) {
	}
}

// BubbleOnePass performs a single adjacent-pair scan over data and reports
// whether any swap occurred.
func BubbleOnePass(data []uint64) bool {
	swapped := false
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			data[i-1], data[i] = data[i], data[i-1]
			swapped = true
		}
	}
	return swapped
}

// ParallelBubble sorts data in place on pool.
//
// Each sweep bubble-sorts every chunk to a local fixed point, joins, then
// reconciles the chunk boundaries. Sweeps repeat until neither the chunk
// passes nor the boundary pass change anything.
func ParallelBubble(pool *workerpool.Pool, data []uint64) {
	chunks := poolChunks(pool, len(data))
	if len(chunks) <= 1 {
		SequentialBubble(data)
		return
	}

	sweepToFixedPoint(pool, data, chunks, func(span []uint64) bool {
		changed := false
		for BubbleOnePass(span) {
			changed = true
		}
		return changed
	})
}

// sweepToFixedPoint repeats sweeps of local over every chunk followed by a
// boundary reconciliation until a sweep changes nothing. It returns the number
// of sweeps performed, the last one being the quiet one.
func sweepToFixedPoint(pool *workerpool.Pool, data []uint64, chunks []Chunk, local func(span []uint64) bool) int {
	for sweeps := 1; ; sweeps++ {
		inner := pool.AnyOf(len(chunks), func(i int) bool {
			return local(chunks[i].Of(data))
		})
		// The join above orders every chunk write before the boundary reads.
		boundary := reconcileBoundaries(pool, chunks, data)
		if !inner && !boundary {
			return sweeps
		}
	}
}

// reconcileBoundaries compares the last element of every chunk with the first
// element of the next one and swaps them when out of order. It must only run
// after the chunk-local pass of the same sweep has joined.
//
// Boundary k touches data[chunks[k+1].Offset-1] and data[chunks[k+1].Offset];
// with chunks of length >= 1 distinct boundaries may share an element only
// when a chunk has length 1, so those are handled by the same task.
func reconcileBoundaries(pool *workerpool.Pool, chunks []Chunk, data []uint64) bool {
	groups := boundaryGroups(chunks)
	return pool.AnyOf(len(groups), func(g int) bool {
		changed := false
		for _, at := range groups[g] {
			if data[at-1] > data[at] {
				data[at-1], data[at] = data[at], data[at-1]
				changed = true
			}
		}
		return changed
	})
}

// boundaryGroups lists the seam indices (offset of chunks 1..W-1), grouping
// consecutive seams that share an element so no two tasks touch the same cell.
func boundaryGroups(chunks []Chunk) [][]int {
	var groups [][]int
	for k := 1; k < len(chunks); k++ {
		at := chunks[k].Offset
		if n := len(groups); n > 0 && chunks[k-1].Len == 1 {
			groups[n-1] = append(groups[n-1], at)
			continue
		}
		groups = append(groups, []int{at})
	}
	return groups
}
