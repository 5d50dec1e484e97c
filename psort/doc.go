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

// Package psort provides sequential and parallel implementations of four
// classic sorting algorithms over []uint64: bubble sort, odd-even
// transposition sort, merge sort and quicksort.
//
// Every entry point sorts its argument in place and leaves a non-decreasing
// permutation of the input. The sequential variants are the correctness
// oracles; each parallel variant yields exactly the same final sequence as its
// sequential counterpart.
//
// # Parallel model
//
// The parallel variants run on a caller-supplied workerpool.Pool, using
// synchronous fork/join fan-outs over disjoint chunks of the sequence
// (see Partition). No worker ever writes outside the span it was given for the
// current phase, and phases are separated by the pool's join.
//
//   - ParallelBubble and ParallelOddEven repeat sweeps of chunk-local passes
//     followed by a boundary reconciliation pass, until a sweep changes nothing.
//   - ParallelMergeSort and ParallelQuicksort sort every chunk independently and
//     then combine the sorted chunks with a tournament merge (see Tournament).
//
// A nil pool runs the sequential algorithm.
//
// # Example Usage
//
//	pool := workerpool.New(runtime.NumCPU())
//	defer pool.Close()
//
//	data := []uint64{5, 3, 9, 1}
//	psort.ParallelQuicksort(pool, data)
//
// # Preconditions
//
// Sorting an empty slice is a no-op. Sizes that are not a multiple of the
// worker count are accepted: the last chunk absorbs the remainder. Check
// reports the caller-contract violations a harness may want to reject up
// front; the sort functions themselves never fail.
package psort
