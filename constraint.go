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

// Candidate pairs a version admissible for some package with the Path that
// justifies its inclusion.
type Candidate struct {
	Version Version
	Path    Path
}

func compareVersionsDescending(a, b Version) int {
	return b.Compare(a)
}

// Constraint is the per-package ordered set of admissible candidate
// versions, keyed descending by Version (best candidate first). An empty
// Constraint must never be inserted into a ConstraintSet — see invariant 1.
type Constraint struct {
	m persistentMap[Version, Path]
}

// NewConstraint returns the empty Constraint.
func NewConstraint() Constraint {
	return Constraint{m: newPersistentMap[Version, Path](compareVersionsDescending)}
}

// IsEmpty reports whether c admits no candidates.
func (c Constraint) IsEmpty() bool {
	return c.m.Len() == 0
}

// Len returns the number of admissible versions.
func (c Constraint) Len() int {
	return c.m.Len()
}

// Get returns the justifying Path for v, if v is admissible.
func (c Constraint) Get(v Version) (Path, bool) {
	return c.m.Get(v)
}

// Insert returns a new Constraint admitting v with justification p.
func (c Constraint) Insert(v Version, p Path) Constraint {
	return Constraint{m: c.m.Insert(v, p)}
}

// Remove returns a new Constraint with v no longer admissible. The result
// may be empty.
func (c Constraint) Remove(v Version) Constraint {
	return Constraint{m: c.m.Delete(v)}
}

// Candidates returns the admissible (version, path) pairs in descending,
// best-first order.
func (c Constraint) Candidates() []Candidate {
	entries := c.m.Entries()
	result := make([]Candidate, len(entries))
	for i, e := range entries {
		result[i] = Candidate{Version: e.key, Path: e.val}
	}
	return result
}

func singletonConstraint(v Version, p Path) Constraint {
	return NewConstraint().Insert(v, p)
}

// MergeConstraints computes the set-intersection by Version key of a and b.
// For a version present in both, a's Path is kept — a is the incumbent,
// which is what makes conflict reports point at the earliest justification.
// Descending key order is preserved.
func MergeConstraints(a, b Constraint) Constraint {
	result := NewConstraint()
	for _, e := range a.m.Entries() {
		if _, ok := b.Get(e.key); ok {
			result = result.Insert(e.key, e.val)
		}
	}
	return result
}
