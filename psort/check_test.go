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
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		algo    Algorithm
		n       int
		workers int
		wantErr bool
	}{
		{"valid", Quicksort, 16, 4, false},
		{"unevenTiling", MergeSort, 10, 4, false},
		{"moreWorkersThanElements", Bubble, 3, 8, false},
		{"empty", OddEven, 0, 4, true},
		{"noWorkers", Bubble, 8, 0, true},
		{"unknownAlgorithm", Algorithm(42), 8, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.algo, tt.n, tt.workers)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !IsPrecondition(err) {
				t.Errorf("IsPrecondition(%v) = false", err)
			}
			var pe *PreconditionError
			if !errors.As(err, &pe) {
				t.Fatalf("errors.As(%v) failed", err)
			}
			if pe.N != tt.n || pe.Workers != tt.workers {
				t.Errorf("PreconditionError = %+v", pe)
			}
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.String(), got, err)
		}
	}

	aliases := map[string]Algorithm{"OddEven": OddEven, " merge ": MergeSort, "QUICK": Quicksort}
	for name, want := range aliases {
		got, err := ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	if _, err := ParseAlgorithm("heapsort"); err == nil {
		t.Error("ParseAlgorithm(heapsort) should fail")
	}
}

func TestAlgorithmStringUnknown(t *testing.T) {
	if got := Algorithm(-1).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
