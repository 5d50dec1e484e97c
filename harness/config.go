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
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/CarlosVargasF/lab2-pap/psort"
)

// maxExponent bounds array sizes to 2^maxExponent elements.
const maxExponent = 30

// Config describes one benchmark: which algorithm, on how many elements, and
// how the arrays are built.
type Config struct {
	Algorithm   psort.Algorithm
	Exponent    int   // array length is 2^Exponent
	Random      bool  // random values instead of 0..n-1
	Seed        int64 // seed of the random initializer
	Workers     int
	Experiments int
	Print       bool // print the sorted arrays
}

// N returns the array length of c.
func (c Config) N() int {
	return 1 << c.Exponent
}

// Validate checks c and the psort preconditions for it.
func (c Config) Validate() error {
	if c.Exponent < 0 || c.Exponent > maxExponent {
		return errors.Errorf("exponent %d out of range [0, %d]", c.Exponent, maxExponent)
	}
	if c.Experiments < 1 {
		return errors.Errorf("experiments must be at least 1, got %d", c.Experiments)
	}
	return psort.Check(c.Algorithm, c.N(), c.Workers)
}

// Suite is a YAML benchmark description expanding into one Config per
// (algorithm, exponent) pair:
//
//	algorithms: [quicksort, mergesort]
//	exponents: [16, 18, 20]
//	random: true
//	seed: 42
//	workers: 8
//	experiments: 10
//	speedup_dir: out
type Suite struct {
	Algorithms  []string `yaml:"algorithms"`
	Exponents   []int    `yaml:"exponents"`
	Random      bool     `yaml:"random"`
	Seed        int64    `yaml:"seed"`
	Workers     int      `yaml:"workers"`
	Experiments int      `yaml:"experiments"`
	SpeedupDir  string   `yaml:"speedup_dir"`
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suite %s", path)
	}
	return ParseSuite(data)
}

// ParseSuite decodes a suite from YAML, applies defaults and validates it.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decoding suite")
	}
	s.Defaults()
	if _, err := s.Configs(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Defaults fills unset fields: every algorithm, one worker per CPU and
// DefaultExperiments trials.
func (s *Suite) Defaults() {
	if len(s.Algorithms) == 0 {
		for _, a := range psort.Algorithms() {
			s.Algorithms = append(s.Algorithms, a.String())
		}
	}
	if s.Workers == 0 {
		s.Workers = runtime.NumCPU()
	}
	if s.Experiments == 0 {
		s.Experiments = DefaultExperiments
	}
}

// Configs expands s into validated configs, algorithms outermost.
func (s *Suite) Configs() ([]Config, error) {
	if len(s.Exponents) == 0 {
		return nil, errors.New("suite lists no exponents")
	}

	var configs []Config
	for _, name := range s.Algorithms {
		a, err := psort.ParseAlgorithm(name)
		if err != nil {
			return nil, errors.Wrap(err, "suite")
		}
		for _, exp := range s.Exponents {
			c := Config{
				Algorithm:   a,
				Exponent:    exp,
				Random:      s.Random,
				Seed:        s.Seed,
				Workers:     s.Workers,
				Experiments: s.Experiments,
			}
			if err := c.Validate(); err != nil {
				return nil, errors.Wrapf(err, "suite entry %s 2^%d", a, exp)
			}
			configs = append(configs, c)
		}
	}
	return configs, nil
}
