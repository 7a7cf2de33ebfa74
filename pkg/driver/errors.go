// Copyright 2026 The ltlequiv Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package driver

import (
	"fmt"
	"time"
)

// ParseError reports a malformed request: bad quoting, wrong arity, a
// non-numeric field where a number was expected, an unknown operator
// token, or a formula consisting of nothing but a reserved operator token.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on %q: %s", e.Input, e.Reason)
}

// TimeoutError reports that the closure did not finish within the
// request's timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("closure did not complete within %s", e.Timeout)
}

// InternalError wraps any unexpected failure surfaced from the closure,
// including a recovered panic.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
