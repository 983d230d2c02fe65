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

package solver

import (
	"fmt"
	"strings"
)

// Failure is the sealed taxonomy of solver failures. Failures are values,
// not exceptions — they propagate by return and are never merged or
// widened automatically; the caller decides whether to render, suppress,
// or translate one.
type Failure interface {
	error
	isFailure()
}

// PackageMissing means the registry knows no such package at all.
type PackageMissing struct {
	Package PackageName
	Path    Path
}

func (f *PackageMissing) Error() string {
	return fmt.Sprintf("package %s not found (required by %s)", f.Package, f.Path)
}
func (f *PackageMissing) isFailure() {}

// UnavailableDependencies means the registry has the package, but no
// release satisfies Constraint.
type UnavailableDependencies struct {
	Package    PackageName
	Constraint VersionConstraint
	Path       Path
}

func (f *UnavailableDependencies) Error() string {
	return fmt.Sprintf("no release of %s satisfies %s (required by %s)", f.Package, f.Constraint, f.Path)
}
func (f *UnavailableDependencies) isFailure() {}

// Conflict means two incoming constraints on one package have empty
// intersection. Left and Right retain their full Path justifications so a
// renderer can produce "A via …, and B via …" without collapsing either
// side.
type Conflict struct {
	Package PackageName
	Left    Constraint
	Right   Constraint
}

func (f *Conflict) Error() string {
	return fmt.Sprintf("conflicting constraints on %s: %s vs %s",
		f.Package, renderConstraintOrigins(f.Left), renderConstraintOrigins(f.Right))
}
func (f *Conflict) isFailure() {}

// GraphCycle means Package already appears somewhere in Path — recursing
// into it would repeat a package. Package has no chosen Version yet (that
// is the point at which the cycle was caught, before one was picked), so it
// is carried alongside Path rather than as a trailing PathStep.
type GraphCycle struct {
	Path    Path
	Package PackageName
}

func (f *GraphCycle) Error() string {
	return fmt.Sprintf("dependency cycle: %s → %s", f.Path, f.Package)
}
func (f *GraphCycle) isFailure() {}

// StepLimitExceeded is an ambient resource-bound failure: the search
// exceeded SolverOptions.MaxSteps. It is not part of the original failure
// taxonomy's semantics — it guards against pathological inputs, not a
// modeling gap — see SPEC_FULL.md §4.4.
type StepLimitExceeded struct {
	Steps int
}

func (f *StepLimitExceeded) Error() string {
	return fmt.Sprintf("solver exceeded iteration limit after %d steps", f.Steps)
}
func (f *StepLimitExceeded) isFailure() {}

func renderConstraintOrigins(c Constraint) string {
	candidates := c.Candidates()
	parts := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		parts = append(parts, fmt.Sprintf("%s via %s", cand.Version, cand.Path))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

var (
	_ Failure = (*PackageMissing)(nil)
	_ Failure = (*UnavailableDependencies)(nil)
	_ Failure = (*Conflict)(nil)
	_ Failure = (*GraphCycle)(nil)
	_ Failure = (*StepLimitExceeded)(nil)
)
