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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/CarlosVargasF/lab2-pap/psort/workerpool"
)

// TestMerge checks that merging two sorted runs yields a sorted span holding
// the union of both multisets.
func TestMerge(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{1, 2, 3, 8, 17, 64, 1000} {
		for _, maxVal := range []uint64{0, 3, 1000} {
			left := randomData(rng, size, maxVal)
			right := randomData(rng, size, maxVal)
			slices.Sort(left)
			slices.Sort(right)

			span := append(slices.Clone(left), right...)
			want := slices.Clone(span)
			slices.Sort(want)

			Merge(span, size)
			if !slices.IsSorted(span) {
				t.Errorf("Merge(size=%d, max=%d) produced unsorted span", size, maxVal)
			}
			if diff := cmp.Diff(want, span); diff != "" {
				t.Errorf("Merge(size=%d, max=%d) multiset mismatch (-want +got):\n%s", size, maxVal, diff)
			}
		}
	}
}

// TestMergeLeavesTailAlone merges the first 2*size elements of a longer span.
func TestMergeLeavesTailAlone(t *testing.T) {
	span := []uint64{4, 9, 1, 5, 100, 0}
	Merge(span, 2)

	want := []uint64{1, 4, 5, 9, 100, 0}
	if !slices.Equal(span, want) {
		t.Errorf("Merge = %v, want %v", span, want)
	}
}

func TestMergeRunsUneven(t *testing.T) {
	tests := []struct {
		name string
		span []uint64
		mid  int
		want []uint64
	}{
		{"shortLeft", []uint64{5, 1, 2, 3, 9}, 1, []uint64{1, 2, 3, 5, 9}},
		{"shortRight", []uint64{1, 4, 6, 8, 2}, 4, []uint64{1, 2, 4, 6, 8}},
		{"alreadyOrdered", []uint64{1, 2, 3, 4}, 2, []uint64{1, 2, 3, 4}},
		{"reversedRuns", []uint64{5, 6, 7, 1, 2}, 3, []uint64{1, 2, 5, 6, 7}},
		{"equalKeys", []uint64{2, 2, 2, 2, 2}, 2, []uint64{2, 2, 2, 2, 2}},
		{"emptyLeft", []uint64{3, 4}, 0, []uint64{3, 4}},
		{"emptyRight", []uint64{3, 4}, 2, []uint64{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			MergeRuns(tt.span, tt.mid)
			if !slices.Equal(tt.span, tt.want) {
				t.Errorf("MergeRuns = %v, want %v", tt.span, tt.want)
			}
		})
	}
}

// TestTournamentRoundExactness sorts 16 elements in 4 chunks and checks each
// round against merging the same chunk pairs on their own.
func TestTournamentRoundExactness(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(2024))
	data := randomData(rng, 16, 100)
	chunks := Partition(len(data), 4)
	for _, c := range chunks {
		if c.Len != 4 {
			t.Fatalf("chunk %v, want length 4", c)
		}
	}

	// Phase A
	pool.Run(len(chunks), func(i int) {
		SequentialQuicksort(chunks[i].Of(data))
	})
	for i, c := range chunks {
		if !slices.IsSorted(c.Of(data)) {
			t.Fatalf("chunk %d not sorted after phase A: %v", i, c.Of(data))
		}
	}

	// Expected round 1: chunk0+chunk1 and chunk2+chunk3 merged independently.
	first := append(slices.Clone(chunks[0].Of(data)), chunks[1].Of(data)...)
	second := append(slices.Clone(chunks[2].Of(data)), chunks[3].Of(data)...)
	Merge(first, 4)
	Merge(second, 4)

	runs := TournamentRound(pool, data, chunks)
	if diff := cmp.Diff([]Chunk{{0, 8}, {8, 8}}, runs); diff != "" {
		t.Fatalf("round 1 runs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, data[:8]); diff != "" {
		t.Errorf("round 1 first run mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(second, data[8:]); diff != "" {
		t.Errorf("round 1 second run mismatch (-want +got):\n%s", diff)
	}

	runs = TournamentRound(pool, data, runs)
	if diff := cmp.Diff([]Chunk{{0, 16}}, runs); diff != "" {
		t.Fatalf("round 2 runs mismatch (-want +got):\n%s", diff)
	}
	want := append(first, second...)
	slices.Sort(want)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("round 2 mismatch (-want +got):\n%s", diff)
	}
}

// TestTournamentOddRunCount checks a trailing unpaired run is carried over.
func TestTournamentOddRunCount(t *testing.T) {
	data := []uint64{7, 8, 9, 1, 2, 3, 4, 5, 6}
	runs := []Chunk{{0, 3}, {3, 3}, {6, 3}}

	next := TournamentRound(nil, data, runs)
	if diff := cmp.Diff([]Chunk{{0, 6}, {6, 3}}, next); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if !slices.Equal(data, []uint64{1, 2, 3, 7, 8, 9, 4, 5, 6}) {
		t.Errorf("round 1 = %v", data)
	}

	Tournament(nil, data, next)
	if !slices.Equal(data, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("Tournament = %v", data)
	}
}

// TestTournamentUnevenRunsOnPool merges the uneven runs left by a remainder
// chunk and an odd run count through the pool.
func TestTournamentUnevenRunsOnPool(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	rng := rand.New(rand.NewSource(77))
	for _, n := range []int{7, 10, 23, 100} {
		for _, workers := range []int{3, 5, 7} {
			data := randomData(rng, n, 50)
			want := slices.Clone(data)
			slices.Sort(want)

			runs := Partition(n, workers)
			for _, c := range runs {
				slices.Sort(c.Of(data))
			}
			Tournament(pool, data, runs)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("n=%d workers=%d mismatch (-want +got):\n%s", n, workers, diff)
			}
		}
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		n, workers int
		want       []Chunk
	}{
		{16, 4, []Chunk{{0, 4}, {4, 4}, {8, 4}, {12, 4}}},
		{10, 4, []Chunk{{0, 2}, {2, 2}, {4, 2}, {6, 4}}},
		{3, 8, []Chunk{{0, 1}, {1, 1}, {2, 1}}},
		{5, 1, []Chunk{{0, 5}}},
		{5, 0, []Chunk{{0, 5}}},
		{0, 4, nil},
	}
	for _, tt := range tests {
		got := Partition(tt.n, tt.workers)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Partition(%d, %d) mismatch (-want +got):\n%s", tt.n, tt.workers, diff)
		}
	}
}

func TestBoundaryGroups(t *testing.T) {
	tests := []struct {
		chunks []Chunk
		want   [][]int
	}{
		{[]Chunk{{0, 4}, {4, 4}, {8, 4}}, [][]int{{4}, {8}}},
		{[]Chunk{{0, 1}, {1, 1}, {2, 1}}, [][]int{{1, 2}}},
		{[]Chunk{{0, 2}, {2, 1}, {3, 2}, {5, 2}}, [][]int{{2, 3}, {5}}},
		{[]Chunk{{0, 8}}, nil},
	}
	for _, tt := range tests {
		got := boundaryGroups(tt.chunks)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("boundaryGroups(%v) mismatch (-want +got):\n%s", tt.chunks, diff)
		}
	}
}

func TestMergeRunsOrderedDoesNotAllocate(t *testing.T) {
	span := []uint64{1, 2, 3, 3, 4, 9}
	allocs := testing.AllocsPerRun(100, func() {
		MergeRuns(span, 3)
	})
	if allocs != 0 {
		t.Errorf("MergeRuns on ordered runs allocated %v times, want 0", allocs)
	}
	if !slices.Equal(span, []uint64{1, 2, 3, 3, 4, 9}) {
		t.Errorf("span = %v", span)
	}
}
