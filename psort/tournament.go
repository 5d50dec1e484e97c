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

// Tournament merges the sorted runs of data, given as adjacent chunks in
// ascending offset order, into one sorted run covering all of them.
//
// Each round merges the pairs (0,1), (2,3), ... concurrently; a trailing
// unpaired run is carried to the next round unchanged. Round k+1 starts only
// after every merge of round k has finished. W runs take ceil(log2 W) rounds.
func Tournament(pool *workerpool.Pool, data []uint64, runs []Chunk) {
	for len(runs) > 1 {
		runs = TournamentRound(pool, data, runs)
	}
}

// TournamentRound performs a single tournament round over runs and returns
// the runs of the next round. A nil pool merges the pairs sequentially.
// Run lengths differ once the remainder or a carried run takes part, so the
// pairs are handed out to idle workers one at a time.
func TournamentRound(pool *workerpool.Pool, data []uint64, runs []Chunk) []Chunk {
	pairs := len(runs) / 2
	next := make([]Chunk, 0, pairs+len(runs)%2)
	for p := range pairs {
		left, right := runs[2*p], runs[2*p+1]
		next = append(next, Chunk{Offset: left.Offset, Len: left.Len + right.Len})
	}
	if len(runs)%2 == 1 {
		next = append(next, runs[len(runs)-1])
	}

	merge := func(p int) {
		MergeRuns(next[p].Of(data), runs[2*p].Len)
	}
	if pool == nil {
		for p := range pairs {
			merge(p)
		}
	} else {
		pool.ParallelForAtomic(pairs, merge)
	}
	return next
}
