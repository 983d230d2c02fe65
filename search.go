// Copyright 2025 Oxide Package Manager Contributors
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

// Package solver computes a consistent version assignment for a dependency
// set against a registry snapshot, or a structured explanation of why none
// exists.
package solver

import (
	"fmt"

	"go.uber.org/zap"
)

// Solve computes a Solution for root against reg, or a Failure explaining
// why no consistent assignment exists.
func Solve(reg *Registry, root DependencySet, opts ...SolverOption) (Solution, Failure) {
	options := defaultSolverOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ra := NewRegistryAdapter(reg, options.Logger)
	stack, failure := ra.ConstraintSetFrom(root)
	if failure != nil {
		return nil, failure
	}

	steps := 0
	partial, failure := search(ra, stack, options.CheapProbe, NewPartialSolution(), &options, &steps)
	if failure != nil {
		return nil, failure
	}
	return partial.ToSolution(), nil
}

// search implements the backtracking solver of SPEC_FULL.md §4.4: pick a
// package, iterate candidate versions best-first, merge constraints,
// recurse, aggregate failures under the first-failure-wins rule.
func search(ra *RegistryAdapter, stack ConstraintSet, cheap bool, solution PartialSolution, opts *SolverOptions, steps *int) (PartialSolution, Failure) {
	if stack.IsEmpty() {
		return solution, nil
	}

	if opts.MaxSteps > 0 {
		*steps++
		if *steps > opts.MaxSteps {
			return PartialSolution{}, &StepLimitExceeded{Steps: *steps}
		}
	}

	stackTail, pkg, constraint := stack.Pop()
	candidates := constraint.Candidates()
	if len(candidates) == 0 {
		panic("canary - shouldn't be possible: empty Constraint reached search")
	}

	if cheap {
		return searchCandidate(ra, stackTail, pkg, candidates[0], cheap, solution, opts, steps)
	}

	var firstFailure Failure
	for _, cand := range candidates {
		result, failure := searchCandidate(ra, stackTail, pkg, cand, cheap, solution, opts, steps)
		if failure == nil {
			return result, nil
		}
		if firstFailure == nil {
			firstFailure = failure
		}
		opts.Logger.Debug("backtracking",
			zap.Stringer("package", pkg),
			zap.Stringer("version", cand.Version),
			zap.Error(failure),
		)
	}

	// candidates is non-empty (checked above), so firstFailure is always set.
	return PartialSolution{}, firstFailure
}

// searchCandidate attempts one candidate version for pkg: insertion into the
// partial solution, dependency lookup (which itself guards against cycles —
// see RegistryAdapter.constraintFor), constraint merge, and the recursive
// step.
func searchCandidate(ra *RegistryAdapter, stackTail ConstraintSet, pkg PackageName, cand Candidate, cheap bool, solution PartialSolution, opts *SolverOptions, steps *int) (PartialSolution, Failure) {
	next, ok := solution.Insert(pkg, cand)
	if !ok {
		panic(fmt.Sprintf("canary - shouldn't be possible: %s already solved with a conflicting version", pkg))
	}

	opts.Logger.Debug("trying candidate", zap.Stringer("package", pkg), zap.Stringer("version", cand.Version))

	deps, failure := ra.ConstraintSetFor(pkg, cand.Version, cand.Path)
	if failure != nil {
		return PartialSolution{}, failure
	}

	stackNext, failure := stackTail.Merge(deps, next)
	if failure != nil {
		return PartialSolution{}, failure
	}

	return search(ra, stackNext, cheap, next, opts, steps)
}
