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
	"fmt"
	"io"
	"os"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/CarlosVargasF/lab2-pap/psort"
	"github.com/CarlosVargasF/lab2-pap/psort/workerpool"
)

var (
	// ErrNotSorted is returned when a trial leaves the array unsorted.
	ErrNotSorted = errors.New("array is not sorted")

	// ErrMismatch is returned when the sequential and parallel variants of an
	// algorithm disagree on the same input.
	ErrMismatch = errors.New("sequential and parallel results differ")
)

// Result holds the measurements of one Config.
type Result struct {
	Config   Config
	Serial   *Experiments
	Parallel *Experiments
	Speedup  float64
}

// Runner executes benchmark configs.
type Runner struct {
	// Log receives key=value progress lines. Defaults to ns=psort on stdout.
	Log *logger.Logger

	// Out receives printed arrays and progress bars. Defaults to stdout.
	Out io.Writer

	// Speedups, when set, records the speedup of every run.
	Speedups *SpeedupLog

	// Progress shows a progress bar over the trials of each run.
	Progress bool
}

// NewRunner returns a Runner logging to out.
func NewRunner(out io.Writer) *Runner {
	return &Runner{
		Log: logger.NewWriter("ns=psort", out),
		Out: out,
	}
}

func (r *Runner) log() *logger.Logger {
	if r.Log == nil {
		r.Log = logger.New("ns=psort")
	}
	return r.Log
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Run measures c: Experiments sequential trials, Experiments parallel trials,
// each on a freshly initialized array and each verified, followed by a
// cross-check of both variants on copies of one array.
func (r *Runner) Run(c Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, r.log().At("run").Error(err)
	}

	log := r.log().At("run").Namespace("algo=%s n=%d workers=%d random=%t", c.Algorithm, c.N(), c.Workers, c.Random).Start()

	pool := workerpool.New(c.Workers)
	defer pool.Close()

	var bar *pb.ProgressBar
	if r.Progress {
		bar = pb.New(2*c.Experiments + 1)
		bar.Output = r.out()
		bar.Prefix(c.Algorithm.String())
		bar.ShowTimeLeft = false
		bar.Start()
		defer bar.Finish()
	}
	step := func() {
		if bar != nil {
			bar.Increment()
		}
	}

	data := make([]uint64, c.N())
	fill := NewInitializer(c.Random, c.Seed)
	if !c.Random {
		fill = func(d []uint64) { InitSequenceParallel(pool, d) }
	}

	serial, err := r.trials(c, "sequential", data, fill, step, c.Algorithm.Sequential)
	if err != nil {
		return nil, log.Error(err)
	}
	log.Logf("variant=sequential average=%s", serial.Average())

	parallel, err := r.trials(c, "parallel", data, fill, step, func(d []uint64) {
		c.Algorithm.Parallel(pool, d)
	})
	if err != nil {
		return nil, log.Error(err)
	}
	log.Logf("variant=parallel average=%s", parallel.Average())

	if err := CrossCheck(c.Algorithm, pool, c.N(), fill); err != nil {
		return nil, log.Error(err)
	}
	step()

	res := &Result{
		Config:   c,
		Serial:   serial,
		Parallel: parallel,
		Speedup:  Speedup(serial.Average(), parallel.Average()),
	}

	if r.Speedups != nil {
		if err := r.Speedups.Append(c.Algorithm, res.Speedup); err != nil {
			return nil, log.Error(err)
		}
	}

	log.Successf("speedup=%f", res.Speedup)
	return res, nil
}

// RunAll runs every config in order and stops at the first failure.
func (r *Runner) RunAll(configs []Config) ([]*Result, error) {
	results := make([]*Result, 0, len(configs))
	for _, c := range configs {
		res, err := r.Run(c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) trials(c Config, variant string, data []uint64, fill Initializer, step func(), sort func([]uint64)) (*Experiments, error) {
	exps := NewExperiments(c.Experiments)
	for range c.Experiments {
		fill(data)
		exps.Measure(func() {
			sort(data)
		})
		if err := Verify(c, data); err != nil {
			if c.Print {
				fmt.Fprintln(r.out(), FormatArray(data))
			}
			return nil, errors.Wrapf(err, "%s %s", variant, c.Algorithm)
		}
		step()
	}
	if c.Print {
		fmt.Fprintln(r.out(), FormatArray(data))
	}
	return exps, nil
}

// Verify checks the result of a trial of c: any non-decreasing array for
// random inputs, exactly 0..n-1 for sequence inputs.
func Verify(c Config, data []uint64) error {
	sorted := IsSorted(data)
	if !c.Random {
		sorted = IsSortedSequence(data)
	}
	if !sorted {
		return errors.Wrapf(ErrNotSorted, "sorting 2^%d elements", c.Exponent)
	}
	return nil
}

// CrossCheck fills one array of n elements, sorts a copy with each variant
// of a and compares them element by element.
func CrossCheck(a psort.Algorithm, pool *workerpool.Pool, n int, fill Initializer) error {
	y := make([]uint64, n)
	z := make([]uint64, n)

	fill(y)
	copy(z, y)

	a.Sequential(y)
	a.Parallel(pool, z)

	if !Equal(y, z) {
		return errors.Wrapf(ErrMismatch, "%s on %d elements", a, len(y))
	}
	return nil
}
