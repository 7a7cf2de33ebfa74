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
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlogic/ltlequiv/pkg/alphabet"
)

func testLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard})
}

type caseResult struct {
	Filtered    []string
	Unfiltered  []string
	Unreachable []string
}

func runCase(t *testing.T, formulaText string, ops []string, complexity float64, depth int, showUnfiltered bool) caseResult {
	t.Helper()
	req := Request{
		FormulaText:      formulaText,
		Operators:        alphabet.NewSet(ops...),
		ComplexityFactor: complexity,
		Depth:            depth,
		ShowUnfiltered:   showUnfiltered,
		Timeout:          time.Second,
	}
	result, err := Run(context.Background(), testLogger(), req)
	require.NoError(t, err)

	cr := caseResult{Unreachable: result.Unreachable}
	for _, f := range result.Filtered {
		cr.Filtered = append(cr.Filtered, f.String())
	}
	for _, f := range result.Unfiltered {
		cr.Unfiltered = append(cr.Unfiltered, f.String())
	}
	return cr
}

func TestScenario1IdentityPassThrough(t *testing.T) {
	cr := runCase(t, "A", []string{"!", "&", "|", "->", "<->"}, 1.0, 0, true)
	assert.Equal(t, []string{"A"}, cr.Filtered)
	assert.ElementsMatch(t, []string{"X", "F", "G", "U", "R"}, cr.Unreachable)
}

func TestScenario2BiconditionalExpansion(t *testing.T) {
	cr := runCase(t, "A <-> B", []string{"!", "&", "|", "->"}, 2.5, 3, false)
	assert.Contains(t, cr.Filtered, "((A -> B) & (B -> A))")
	assert.Contains(t, cr.Filtered, "((B -> A) & (A -> B))")
	assert.NotContains(t, cr.Filtered, "(A <-> B)")
}

func TestScenario3DeMorgan(t *testing.T) {
	cr := runCase(t, "!(A & B)", []string{"!", "|"}, 2.0, 1, false)
	assert.Contains(t, cr.Filtered, "(!A | !B)")
	for _, f := range cr.Filtered {
		assert.NotContains(t, f, "&")
	}
}

func TestScenario4LTLDuality(t *testing.T) {
	cr := runCase(t, "!F A", []string{"G", "!"}, 2.0, 2, false)
	assert.Contains(t, cr.Filtered, "G !A")
	assert.NotContains(t, cr.Unreachable, "F")
}

func TestScenario5ContradictionDetection(t *testing.T) {
	cr := runCase(t, "A & !A", []string{"0"}, 1.5, 1, false)
	assert.Equal(t, []string{"0"}, cr.Filtered)
}

func TestScenario6ComplexityCap(t *testing.T) {
	cr := runCase(t, "A", []string{"!", "&", "|", "->", "<->", "X", "F", "G", "U", "R", "1", "0"}, 1.0, 2, false)
	assert.Equal(t, []string{"A"}, cr.Filtered)
}

func TestParseErrorOnReservedVariable(t *testing.T) {
	req := Request{
		FormulaText:      "&",
		Operators:        alphabet.NewSet("&"),
		ComplexityFactor: 1.0,
		Depth:            0,
		Timeout:          time.Second,
	}
	_, err := Run(context.Background(), testLogger(), req)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestTimeoutNeverBlocksIndefinitely(t *testing.T) {
	req := Request{
		FormulaText:      "A & B & C & D",
		Operators:        alphabet.NewSet("!", "&", "|", "->", "<->"),
		ComplexityFactor: 50.0,
		Depth:            10,
		Timeout:          time.Nanosecond,
	}

	done := make(chan struct{})
	var err error
	go func() {
		_, err = Run(context.Background(), testLogger(), req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return promptly after its timeout elapsed")
	}

	var timeoutErr *TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
}

func TestDecodeRequestAggregatesAllValidationFailures(t *testing.T) {
	raw := RawFields{
		Operators:      "&,bogus1,bogus2",
		Complexity:     "not-a-number",
		Depth:          "3",
		ShowUnfiltered: "y",
		Timeout:        "5.0",
	}
	_, err := DecodeRequest("A", raw)
	require.Error(t, err)
	msg := err.Error()
	assert.True(t, strings.Contains(msg, "bogus1"))
	assert.True(t, strings.Contains(msg, "bogus2"))
	assert.True(t, strings.Contains(msg, "complexity"))
}
