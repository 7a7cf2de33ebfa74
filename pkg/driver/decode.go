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
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/corvidlogic/ltlequiv/pkg/alphabet"
)

// RawFields is the five-field shape common to both adapters before
// validation: the CLI's five positional arguments and the HTTP form's
// five fields decode into this same struct (via mapstructure on the HTTP
// side), so both paths share one validation routine.
type RawFields struct {
	Operators      string `mapstructure:"operators"`
	Complexity     string `mapstructure:"complexity"`
	Depth          string `mapstructure:"depth"`
	ShowUnfiltered string `mapstructure:"show_unfiltered"`
	Timeout        string `mapstructure:"timeout"`
}

var validOperatorTokens = map[string]struct{}{
	"!": {}, "&": {}, "|": {}, "->": {}, "<->": {},
	"X": {}, "F": {}, "G": {}, "U": {}, "R": {}, "1": {}, "0": {},
}

// DecodeRequest validates raw against the field constraints in §6.2 and
// builds the driver.Request for formulaText. Every validation failure is
// accumulated rather than returned on the first one, so a caller sees
// every problem in a single multi-error.
func DecodeRequest(formulaText string, raw RawFields) (Request, error) {
	var errs *multierror.Error

	operators := alphabet.NewSet()
	for _, tok := range strings.Split(raw.Operators, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, ok := validOperatorTokens[tok]; !ok {
			errs = multierror.Append(errs, &ParseError{Input: tok, Reason: "unknown operator token"})
			continue
		}
		operators[tok] = struct{}{}
	}

	complexity, err := strconv.ParseFloat(strings.TrimSpace(raw.Complexity), 64)
	if err != nil {
		errs = multierror.Append(errs, &ParseError{Input: raw.Complexity, Reason: "complexity must be numeric"})
	}

	depth, err := strconv.Atoi(strings.TrimSpace(raw.Depth))
	if err != nil {
		errs = multierror.Append(errs, &ParseError{Input: raw.Depth, Reason: "depth must be an integer"})
	}

	showUnfiltered := false
	switch strings.TrimSpace(raw.ShowUnfiltered) {
	case "y":
		showUnfiltered = true
	case "n":
		showUnfiltered = false
	default:
		errs = multierror.Append(errs, &ParseError{Input: raw.ShowUnfiltered, Reason: "show_unfiltered must be 'y' or 'n'"})
	}

	timeoutSeconds, err := strconv.ParseFloat(strings.TrimSpace(raw.Timeout), 64)
	if err != nil {
		errs = multierror.Append(errs, &ParseError{Input: raw.Timeout, Reason: "timeout must be numeric"})
	}

	if errs.ErrorOrNil() != nil {
		return Request{}, errs
	}

	return Request{
		FormulaText:      formulaText,
		Operators:        operators,
		ComplexityFactor: complexity,
		Depth:            depth,
		ShowUnfiltered:   showUnfiltered,
		Timeout:          time.Duration(timeoutSeconds * float64(time.Second)),
	}, nil
}

// FormatOperators renders operators back into the comma-separated surface
// form, in the canonical operator order, for echoing parsed configuration
// back to a caller.
func FormatOperators(operators alphabet.Set) string {
	order := []string{"!", "&", "|", "->", "<->", "X", "F", "G", "U", "R", "1", "0"}
	var kept []string
	for _, tok := range order {
		if _, ok := operators[tok]; ok {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, ",")
}
