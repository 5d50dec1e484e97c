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
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/CarlosVargasF/lab2-pap/psort"
)

// SpeedupLog appends measured speedups to one text file per algorithm,
// "speedups_<algorithm>.txt" inside Dir, one "%f" value per line.
type SpeedupLog struct {
	Dir string
}

// Path returns the file that receives speedups of a.
func (l *SpeedupLog) Path(a psort.Algorithm) string {
	return filepath.Join(l.Dir, fmt.Sprintf("speedups_%s.txt", a))
}

// Append records one speedup value for a.
func (l *SpeedupLog) Append(a psort.Algorithm, speedup float64) error {
	if l.Dir != "" {
		if err := os.MkdirAll(l.Dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating speedup log dir %s", l.Dir)
		}
	}

	path := l.Path(a)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening speedup log %s", path)
	}

	if _, err := fmt.Fprintf(f, "%f\n", speedup); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing speedup log %s", path)
	}

	return errors.Wrapf(f.Close(), "closing speedup log %s", path)
}
