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

const (
	// insertionThreshold: use insertion sort for ranges this size or smaller.
	insertionThreshold = 24
)

// SequentialQuicksort sorts data in place with an introsort:
//   - sampled-median pivot and 3-way partitioning, so runs of equal keys
//     are settled in a single partition step
//   - insertion sort for small ranges
//   - heapsort fallback once the recursion gets too deep, for an
//     O(n log n) worst case
func SequentialQuicksort(data []uint64) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Max recursion depth: twice the bit length of n
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	quicksort(data, maxDepth)
}

// ParallelQuicksort sorts data in place on pool: every chunk is sorted
// concurrently with SequentialQuicksort, then the sorted chunks are
// combined by Tournament.
func ParallelQuicksort(pool *workerpool.Pool, data []uint64) {
	parallelChunkSort(pool, data, SequentialQuicksort)
}

func quicksort(data []uint64, depthLimit int) {
	for {
		n := len(data)
		if n <= insertionThreshold {
			insertionSort(data)
			return
		}

		if depthLimit == 0 {
			heapSort(data)
			return
		}
		depthLimit--

		lt, gt := partition3Way(data, pivotSampled(data))

		// Recurse into the smaller side, loop on the larger one.
		if lt < n-gt {
			quicksort(data[:lt], depthLimit)
			data = data[gt:]
		} else {
			quicksort(data[gt:], depthLimit)
			data = data[:lt]
		}
	}
}

func insertionSort(data []uint64) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func heapSort(data []uint64) {
	n := len(data)

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown(data []uint64, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			return
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// medianOf3 returns the median of a, b and c.
func medianOf3(a, b, c uint64) uint64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

// pivotSampled picks the median of five evenly spaced samples.
func pivotSampled(data []uint64) uint64 {
	n := len(data)
	if n <= 8 {
		return medianOf3(data[0], data[n/2], data[n-1])
	}

	samples := [5]uint64{
		data[0],
		data[n/4],
		data[n/2],
		data[3*n/4],
		data[n-1],
	}
	insertionSort(samples[:])
	return samples[2]
}

// partition3Way performs Dutch National Flag partitioning. Returns (lt, gt)
// where:
//   - data[0:lt] < pivot
//   - data[lt:gt] == pivot
//   - data[gt:n] > pivot
func partition3Way(data []uint64, pivot uint64) (int, int) {
	lt := 0
	gt := len(data)
	i := 0

	for i < gt {
		switch {
		case data[i] < pivot:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case data[i] > pivot:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}

	return lt, gt
}
