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

// OddEvenPass compares and swaps the pairs (start, start+1), (start+2, start+3), ...
// of data and reports whether any swap occurred. start is 0 or 1.
func OddEvenPass(data []uint64, start int) bool {
	swapped := false
	for i := start; i+1 < len(data); i += 2 {
		if data[i] > data[i+1] {
			data[i], data[i+1] = data[i+1], data[i]
			swapped = true
		}
	}
	return swapped
}

// SequentialOddEven sorts data in place with odd-even transposition sort,
// toggling the pass phase between 0 and 1 until a pass performs no swap.
//
// A quiet pass in one phase says nothing about the pairs of the other phase,
// so the fixed point is two consecutive quiet passes.
func SequentialOddEven(data []uint64) {
	quiet := 0
	for start := 0; quiet < 2; start = 1 - start {
		if OddEvenPass(data, start) {
			quiet = 0
		} else {
			quiet++
		}
	}
}

// ParallelOddEven sorts data in place on pool.
//
// Each sweep runs, inside every chunk, one phase-0 pass followed by one
// phase-1 pass (indices relative to the chunk), joins, and then reconciles the
// chunk boundaries. Sweeps repeat until nothing changes.
func ParallelOddEven(pool *workerpool.Pool, data []uint64) {
	chunks := poolChunks(pool, len(data))
	if len(chunks) <= 1 {
		SequentialOddEven(data)
		return
	}

	sweepToFixedPoint(pool, data, chunks, func(span []uint64) bool {
		even := OddEvenPass(span, 0)
		odd := OddEvenPass(span, 1)
		return even || odd
	})
}
