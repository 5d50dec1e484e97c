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
	"fmt"

	"github.com/pkg/errors"
)

// PreconditionError reports a caller-contract violation found by Check.
type PreconditionError struct {
	Algorithm Algorithm
	N         int
	Workers   int
	Reason    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("psort: %s precondition violated (n=%d, workers=%d): %s",
		e.Algorithm, e.N, e.Workers, e.Reason)
}

// Check validates a sort request before it is dispatched. It rejects empty
// sequences, worker counts below one and unknown algorithms. Sizes that do
// not divide evenly by the worker count are valid.
func Check(a Algorithm, n, workers int) error {
	fail := func(reason string) error {
		return errors.WithStack(&PreconditionError{Algorithm: a, N: n, Workers: workers, Reason: reason})
	}

	if _, ok := algorithmNames[a]; !ok {
		return fail("unknown algorithm")
	}
	if n < 1 {
		return fail("sequence must hold at least one element")
	}
	if workers < 1 {
		return fail("worker count must be at least 1")
	}
	return nil
}

// IsPrecondition reports whether err was produced by Check.
func IsPrecondition(err error) bool {
	_, ok := errors.Cause(err).(*PreconditionError)
	return ok
}
