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

// PartialSolution maps package → chosen (version, justification). It is
// extended monotonically along a successful search branch and discarded on
// backtrack.
type PartialSolution struct {
	m persistentMap[PackageName, Candidate]
}

// NewPartialSolution returns the empty PartialSolution.
func NewPartialSolution() PartialSolution {
	return PartialSolution{m: newPersistentMap[PackageName, Candidate](comparePackageNames)}
}

// Get returns the candidate chosen for p, if any.
func (s PartialSolution) Get(p PackageName) (Candidate, bool) {
	return s.m.Get(p)
}

// Insert records p → c. Re-inserting the same version already chosen for p
// is a no-op (diamond dependencies commonly re-derive an already-resolved
// version); inserting a different version for an already-solved p is
// rejected — the caller is expected to treat that as an invariant violation.
func (s PartialSolution) Insert(p PackageName, c Candidate) (PartialSolution, bool) {
	if existing, ok := s.Get(p); ok {
		if existing.Version.Compare(c.Version) == 0 {
			return s, true
		}
		return s, false
	}
	return PartialSolution{m: s.m.Insert(p, c)}, true
}

// ToSolution drops justifications, producing the final package → version
// mapping.
func (s PartialSolution) ToSolution() Solution {
	sol := make(Solution, s.m.Len())
	for _, e := range s.m.Entries() {
		sol[e.key] = e.val.Version
	}
	return sol
}

// Solution is the final package → version assignment returned by a
// successful solve.
type Solution map[PackageName]Version
