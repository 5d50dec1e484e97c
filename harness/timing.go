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

package harness

import (
	"time"

	"github.com/samber/lo"
)

// DefaultExperiments is the number of trials averaged per measurement.
const DefaultExperiments = 10

// Experiments collects the durations of repeated trials.
type Experiments struct {
	samples []time.Duration
}

// NewExperiments returns an empty collection with room for n trials.
func NewExperiments(n int) *Experiments {
	return &Experiments{samples: make([]time.Duration, 0, n)}
}

// Measure runs fn once and records how long it took.
func (e *Experiments) Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	e.samples = append(e.samples, d)
	return d
}

// Len returns the number of recorded trials.
func (e *Experiments) Len() int {
	return len(e.samples)
}

// Average returns the mean trial duration, or 0 without trials.
func (e *Experiments) Average() time.Duration {
	if len(e.samples) == 0 {
		return 0
	}
	return lo.Sum(e.samples) / time.Duration(len(e.samples))
}

// Min returns the fastest trial.
func (e *Experiments) Min() time.Duration {
	return lo.Min(e.samples)
}

// Max returns the slowest trial.
func (e *Experiments) Max() time.Duration {
	return lo.Max(e.samples)
}

// Speedup returns serial / parallel, or 0 when parallel is zero.
func Speedup(serial, parallel time.Duration) float64 {
	if parallel <= 0 {
		return 0
	}
	return float64(serial) / float64(parallel)
}
