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

// Command psortbench times the sequential and parallel variants of the psort
// algorithms and reports the speedup.
//
// Usage:
//
//	psortbench run --algo quicksort --exp 20 --random  # 2^20 random values
//	psortbench run --algo odd-even --exp 12 --workers 4 --speedup-dir out
//	psortbench suite bench.yaml
//	psortbench info
//
// Every trial is verified; a failed verification or a sequential/parallel
// mismatch exits with status 1.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/CarlosVargasF/lab2-pap/harness"
	"github.com/CarlosVargasF/lab2-pap/psort"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "psortbench",
		Short:         "Compare sequential and parallel sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd(), suiteCmd(), infoCmd())
	return root
}

func runCmd() *cobra.Command {
	var (
		algo       string
		c          harness.Config
		speedupDir string
		progress   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark one algorithm on an array of 2^exp elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := psort.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			c.Algorithm = a

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Max number of workers: %d\n", c.Workers)

			r := harness.NewRunner(out)
			r.Progress = progress
			if speedupDir != "" {
				r.Speedups = &harness.SpeedupLog{Dir: speedupDir}
			}

			res, err := r.Run(c)
			if err != nil {
				return errors.Wrap(err, "run")
			}
			res.Report(out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&algo, "algo", psort.Quicksort.String(), "algorithm ("+algorithmNames()+")")
	f.IntVar(&c.Exponent, "exp", 16, "sort an array of 2^exp elements")
	f.BoolVar(&c.Random, "random", false, "initialize the array randomly instead of 0..n-1")
	f.Int64Var(&c.Seed, "seed", 1, "seed of the random initializer")
	f.IntVar(&c.Workers, "workers", runtime.NumCPU(), "size of the worker pool")
	f.IntVar(&c.Experiments, "experiments", harness.DefaultExperiments, "trials averaged per variant")
	f.BoolVar(&c.Print, "print", false, "print the sorted array after the trials")
	f.StringVar(&speedupDir, "speedup-dir", "", "append speedups to speedups_<algo>.txt in this directory")
	f.BoolVar(&progress, "progress", false, "show a progress bar")

	return cmd
}

func suiteCmd() *cobra.Command {
	var progress bool

	cmd := &cobra.Command{
		Use:   "suite <file.yaml>",
		Short: "Run every benchmark described by a suite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := harness.LoadSuite(args[0])
			if err != nil {
				return err
			}
			configs, err := s.Configs()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := harness.NewRunner(out)
			r.Progress = progress
			if s.SpeedupDir != "" {
				r.Speedups = &harness.SpeedupLog{Dir: s.SpeedupDir}
			}

			results, err := r.RunAll(configs)
			for _, res := range results {
				res.Report(out)
			}
			if err != nil {
				return errors.Wrapf(err, "suite %s", args[0])
			}
			harness.Summary(out, results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar")
	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the CPU features and parallelism available",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), harness.DetectCPU())
		},
	}
}

func algorithmNames() string {
	names := lo.Map(psort.Algorithms(), func(a psort.Algorithm, _ int) string {
		return a.String()
	})
	return strings.Join(names, ", ")
}
