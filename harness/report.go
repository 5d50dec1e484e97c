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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	faster = color.New(color.FgGreen).Add(color.Bold).SprintfFunc()
	slower = color.New(color.FgRed).SprintfFunc()
	header = color.New(color.FgCyan).Add(color.Bold).SprintFunc()
)

// Init describes how the arrays of c are built.
func (c Config) Init() string {
	if c.Random {
		return fmt.Sprintf("random (seed %d)", c.Seed)
	}
	return "sequence"
}

// Report writes a human readable summary of res to w.
func (res *Result) Report(w io.Writer) {
	c := res.Config
	n := c.N()

	fmt.Fprintf(w, "%s 2^%d: %s elements, %s, %s, %d workers, %d trials\n",
		header(c.Algorithm.String()), c.Exponent,
		humanize.Comma(int64(n)), humanize.IBytes(uint64(n)*8),
		c.Init(), c.Workers, c.Experiments)
	fmt.Fprintf(w, "  %-10s %12s  (min %s, max %s)\n", "serial", round(res.Serial.Average()), round(res.Serial.Min()), round(res.Serial.Max()))
	fmt.Fprintf(w, "  %-10s %12s  (min %s, max %s)\n", "parallel", round(res.Parallel.Average()), round(res.Parallel.Min()), round(res.Parallel.Max()))

	speedup := slower
	if res.Speedup >= 1 {
		speedup = faster
	}
	fmt.Fprintf(w, "  %-10s %12s\n", "speedup", speedup("%.2fx", res.Speedup))
}

// Summary writes one line per result to w.
func Summary(w io.Writer, results []*Result) {
	fmt.Fprintln(w, header("summary"))
	for _, res := range results {
		fmt.Fprintf(w, "  %-10s 2^%-3d serial=%-12s parallel=%-12s speedup=%.2f\n",
			res.Config.Algorithm, res.Config.Exponent,
			round(res.Serial.Average()), round(res.Parallel.Average()), res.Speedup)
	}
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}
