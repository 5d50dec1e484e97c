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
	"runtime"
	"strings"
)

// CPUInfo describes the machine a benchmark runs on.
type CPUInfo struct {
	Arch       string
	NumCPU     int
	GOMAXPROCS int
	Features   []string
}

// DetectCPU reports the current machine. Features lists the vector
// extensions known to golang.org/x/sys/cpu for this architecture.
func DetectCPU() CPUInfo {
	return CPUInfo{
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

func (c CPUInfo) String() string {
	features := "none"
	if len(c.Features) > 0 {
		features = strings.Join(c.Features, ",")
	}
	return fmt.Sprintf("arch=%s cpus=%d gomaxprocs=%d features=%s", c.Arch, c.NumCPU, c.GOMAXPROCS, features)
}

type feature struct {
	name string
	has  bool
}

func present(features []feature) []string {
	var names []string
	for _, f := range features {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}
