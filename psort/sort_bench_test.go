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
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/CarlosVargasF/lab2-pap/psort/workerpool"
)

// Generate random data for benchmarks
func generateUint64(n int) []uint64 {
	data := make([]uint64, n)
	for i := range data {
		data[i] = rand.Uint64()
	}
	return data
}

// Quadratic sorts get the smaller sizes.
var benchSizes = map[Algorithm][]int{
	Bubble:    {1 << 10, 1 << 12},
	OddEven:   {1 << 10, 1 << 12},
	MergeSort: {1 << 12, 1 << 16, 1 << 20},
	Quicksort: {1 << 12, 1 << 16, 1 << 20},
}

func BenchmarkSequential(b *testing.B) {
	for _, a := range Algorithms() {
		for _, n := range benchSizes[a] {
			b.Run(fmt.Sprintf("%s/%d", a, n), func(b *testing.B) {
				ref := generateUint64(n)
				data := make([]uint64, n)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					a.Sequential(data)
				}
			})
		}
	}
}

func BenchmarkParallel(b *testing.B) {
	pool := workerpool.New(runtime.NumCPU())
	defer pool.Close()

	for _, a := range Algorithms() {
		for _, n := range benchSizes[a] {
			b.Run(fmt.Sprintf("%s/%d", a, n), func(b *testing.B) {
				ref := generateUint64(n)
				data := make([]uint64, n)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					a.Parallel(pool, data)
				}
			})
		}
	}
}

func BenchmarkMerge(b *testing.B) {
	const size = 1 << 16
	ref := generateUint64(2 * size)
	SequentialQuicksort(ref[:size])
	SequentialQuicksort(ref[size:])
	data := make([]uint64, 2*size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Merge(data, size)
	}
}
