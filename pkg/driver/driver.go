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

// Package driver orchestrates the core (parse, close, filter) behind a
// single request/result shape shared by the CLI and HTTP adapters, with a
// timeout race around the closure and typed, aggregable errors.
package driver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/corvidlogic/ltlequiv/pkg/alphabet"
	"github.com/corvidlogic/ltlequiv/pkg/formula"
	"github.com/corvidlogic/ltlequiv/pkg/parser"
	"github.com/corvidlogic/ltlequiv/pkg/rewrite"
)

// reservedTokens are surface-syntax operator spellings that must never be
// submitted as a whole formula on their own; the parser never fails and
// turns such input into an operator with empty operands, so the driver is
// the layer that rejects it.
var reservedTokens = map[string]struct{}{
	"!": {}, "&": {}, "|": {}, "->": {}, "<->": {},
	"X": {}, "F": {}, "G": {}, "U": {}, "R": {},
}

// Request is the single shared shape for an incoming transform job. Both
// the CLI and HTTP adapters build one of these before calling Run.
type Request struct {
	FormulaText      string
	Operators        alphabet.Set
	ComplexityFactor float64
	Depth            int
	ShowUnfiltered   bool
	Timeout          time.Duration
}

// Result is the outcome of a successful Run.
type Result struct {
	Base        formula.Formula
	Unfiltered  []formula.Formula // only populated when Request.ShowUnfiltered
	Filtered    []formula.Formula
	Unreachable []string
}

// Run parses req.FormulaText, closes it under the rewrite catalogue on a
// background goroutine raced against req.Timeout, filters the result by
// req.Operators, and attaches any reachability warning. It logs one
// structured line describing the request and its outcome.
func Run(ctx context.Context, logger hclog.Logger, req Request) (*Result, error) {
	requestID := uuid.New().String()
	log := logger.With(
		"request_id", requestID,
		"formula", req.FormulaText,
		"complexity_factor", req.ComplexityFactor,
		"depth", req.Depth,
		"timeout", req.Timeout,
	)

	f0 := parser.Parse(req.FormulaText)
	if tok := strings.TrimSpace(req.FormulaText); tok != "" {
		if _, bad := reservedTokens[tok]; bad {
			err := &ParseError{Input: req.FormulaText, Reason: fmt.Sprintf("formula %q is a bare reserved operator token", tok)}
			log.Warn("request rejected", "outcome", "parse_error", "error", err)
			return nil, err
		}
	}

	unreachable := alphabet.Check(req.Operators)
	if len(unreachable) > 0 {
		log.Warn("alphabet cannot express every operator", "unreachable", unreachable)
	}

	type closeOutcome struct {
		formulas []formula.Formula
		err      error
	}
	done := make(chan closeOutcome, 1)

	closeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- closeOutcome{err: &InternalError{Cause: fmt.Errorf("panic in closure: %v", r)}}
			}
		}()
		formulas, err := rewrite.Close(closeCtx, f0, req.Depth, req.ComplexityFactor)
		done <- closeOutcome{formulas: formulas, err: err}
	}()

	timer := time.NewTimer(req.Timeout)
	defer timer.Stop()

	select {
	case outcome := <-done:
		if outcome.err != nil {
			ierr := &InternalError{Cause: outcome.err}
			log.Error("closure failed", "outcome", "internal_error", "error", ierr)
			return nil, ierr
		}
		filtered := alphabet.Filter(outcome.formulas, req.Operators)
		result := &Result{
			Base:        f0,
			Filtered:    filtered,
			Unreachable: unreachable,
		}
		if req.ShowUnfiltered {
			result.Unfiltered = outcome.formulas
		}
		log.Info("request completed", "outcome", "ok", "discovered", len(outcome.formulas), "filtered", len(filtered))
		return result, nil
	case <-timer.C:
		cancel()
		err := &TimeoutError{Timeout: req.Timeout}
		log.Warn("request timed out", "outcome", "timeout", "error", err)
		return nil, err
	}
}
