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

// Merge merges the two adjacent ascending runs span[:size] and
// span[size:2*size] into one ascending run occupying span[:2*size].
//
// Both runs must already be sorted and size must be at least 1; anything
// else is undefined behavior. The auxiliary buffer lives only for the call.
func Merge(span []uint64, size int) {
	MergeRuns(span[:2*size], size)
}

// MergeRuns merges the ascending runs span[:mid] and span[mid:], which may
// have different lengths, into one ascending run in span.
// On equal values the element of the left run is taken first.
// When span[mid-1] <= span[mid] the runs are already in order and MergeRuns
// returns without allocating.
func MergeRuns(span []uint64, mid int) {
	n := len(span)
	if mid <= 0 || mid >= n {
		return
	}
	if span[mid-1] <= span[mid] {
		return
	}

	buf := make([]uint64, n)
	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if span[j] < span[i] {
			buf[k] = span[j]
			j++
		} else {
			buf[k] = span[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], span[i:mid])
	copy(buf[k:], span[j:])

	copy(span, buf)
}
