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

// Chunk is a contiguous sub-range [Offset, Offset+Len) of a sequence.
type Chunk struct {
	Offset int
	Len    int
}

// End returns the index one past the last element of the chunk.
func (c Chunk) End() int {
	return c.Offset + c.Len
}

// Of returns the chunk's view of data.
func (c Chunk) Of(data []uint64) []uint64 {
	return data[c.Offset:c.End():c.End()]
}

// Partition splits [0, n) into min(workers, n) disjoint contiguous chunks of
// length n/workers. The last chunk absorbs the remainder, so the chunks
// always cover [0, n) exactly. Returns nil for n <= 0.
func Partition(n, workers int) []Chunk {
	if n <= 0 {
		return nil
	}
	workers = max(1, min(workers, n))

	size := n / workers
	chunks := make([]Chunk, workers)
	for i := range chunks {
		chunks[i] = Chunk{Offset: i * size, Len: size}
	}
	chunks[workers-1].Len = n - chunks[workers-1].Offset
	return chunks
}

// poolChunks partitions data for pool. A nil pool yields a single chunk.
func poolChunks(pool *workerpool.Pool, n int) []Chunk {
	if pool == nil {
		return Partition(n, 1)
	}
	return Partition(n, pool.NumWorkers())
}
