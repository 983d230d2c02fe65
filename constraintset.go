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

func comparePackageNames(a, b PackageName) int {
	return a.Compare(b)
}

// ConstraintSet is the workset mapping package → Constraint awaiting
// resolution, key-ordered ascending by PackageName. It is persistent: every
// update returns a new value sharing structure with the old.
type ConstraintSet struct {
	m persistentMap[PackageName, Constraint]
}

// NewConstraintSet returns the empty ConstraintSet.
func NewConstraintSet() ConstraintSet {
	return ConstraintSet{m: newPersistentMap[PackageName, Constraint](comparePackageNames)}
}

// IsEmpty reports whether s has no entries.
func (s ConstraintSet) IsEmpty() bool {
	return s.m.Len() == 0
}

// Len returns the number of packages in s.
func (s ConstraintSet) Len() int {
	return s.m.Len()
}

// Get returns the Constraint recorded for p, if any.
func (s ConstraintSet) Get(p PackageName) (Constraint, bool) {
	return s.m.Get(p)
}

func (s ConstraintSet) insertNonEmpty(p PackageName, c Constraint) ConstraintSet {
	if c.IsEmpty() {
		panic("canary - shouldn't be possible: inserting an empty Constraint into a ConstraintSet")
	}
	return ConstraintSet{m: s.m.Insert(p, c)}
}

// Pop removes and returns the least-keyed entry (lexicographic order of
// PackageName) — the current, deliberately simple, variable-selection
// heuristic. Pop on an empty ConstraintSet is a programmer error.
func (s ConstraintSet) Pop() (ConstraintSet, PackageName, Constraint) {
	entries := s.m.Entries()
	if len(entries) == 0 {
		panic("canary - shouldn't be possible: Pop on an empty ConstraintSet")
	}
	first := entries[0]
	return ConstraintSet{m: s.m.Delete(first.key)}, first.key, first.val
}

// Merge folds each (package, constraint) pair from other into the receiver:
//
//  1. If solution already chose a version w for the package, w must be
//     among the incoming constraint's admissible versions, or this is a
//     Conflict between the solution's choice and the incoming constraint.
//  2. If the package is already present, the two constraints are
//     intersected; an empty result is a Conflict between the two sides.
//  3. Otherwise the incoming constraint is inserted as-is.
func (s ConstraintSet) Merge(other ConstraintSet, solution PartialSolution) (ConstraintSet, Failure) {
	result := s
	for _, e := range other.m.Entries() {
		pkg, cNew := e.key, e.val

		if chosen, ok := solution.Get(pkg); ok {
			if _, satisfied := cNew.Get(chosen.Version); !satisfied {
				return ConstraintSet{}, &Conflict{
					Package: pkg,
					Left:    singletonConstraint(chosen.Version, chosen.Path),
					Right:   cNew,
				}
			}
			continue
		}

		if cOld, ok := result.Get(pkg); ok {
			merged := MergeConstraints(cOld, cNew)
			if merged.IsEmpty() {
				return ConstraintSet{}, &Conflict{Package: pkg, Left: cOld, Right: cNew}
			}
			result = result.insertNonEmpty(pkg, merged)
			continue
		}

		result = result.insertNonEmpty(pkg, cNew)
	}
	return result, nil
}
