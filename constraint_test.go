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

package solver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxidepm/solver"
)

func constraintFromVersions(t *testing.T, versions ...string) solver.Constraint {
	t.Helper()
	c := solver.NewConstraint()
	for _, v := range versions {
		c = c.Insert(solver.MustParseVersion(v), solver.Path{})
	}
	return c
}

func candidateVersions(c solver.Constraint) []string {
	var out []string
	for _, cand := range c.Candidates() {
		out = append(out, cand.Version.String())
	}
	return out
}

func TestConstraintCandidatesDescending(t *testing.T) {
	c := constraintFromVersions(t, "1.0.0", "2.0.1", "1.0.1", "2.0.0")
	assert.Equal(t, []string{"2.0.1", "2.0.0", "1.0.1", "1.0.0"}, candidateVersions(c))
}

func TestConstraintIsEmpty(t *testing.T) {
	assert.True(t, solver.NewConstraint().IsEmpty())
	assert.False(t, constraintFromVersions(t, "1.0.0").IsEmpty())
}

func TestConstraintRemove(t *testing.T) {
	c := constraintFromVersions(t, "1.0.0", "2.0.0")
	c = c.Remove(solver.MustParseVersion("1.0.0"))
	assert.Equal(t, []string{"2.0.0"}, candidateVersions(c))
}

func TestMergeConstraintsIsIntersection(t *testing.T) {
	a := constraintFromVersions(t, "1.0.0", "1.0.1", "2.0.0")
	b := constraintFromVersions(t, "1.0.1", "2.0.0", "3.0.0")

	merged := solver.MergeConstraints(a, b)
	assert.Equal(t, []string{"2.0.0", "1.0.1"}, candidateVersions(merged))
}

func TestMergeConstraintsEmptyIntersection(t *testing.T) {
	a := constraintFromVersions(t, "1.0.0")
	b := constraintFromVersions(t, "2.0.0")
	assert.True(t, solver.MergeConstraints(a, b).IsEmpty())
}

func TestMergeConstraintsIdempotent(t *testing.T) {
	a := constraintFromVersions(t, "1.0.0", "2.0.0")
	merged := solver.MergeConstraints(a, a)
	assert.True(t, cmp.Equal(candidateVersions(a), candidateVersions(merged)))
}

func TestMergeConstraintsCommutativeUpToIncumbent(t *testing.T) {
	a := constraintFromVersions(t, "1.0.0", "2.0.0")
	b := constraintFromVersions(t, "1.0.0", "3.0.0")

	// Commutative up to the incumbent-wins Path tie rule: the *set* of
	// surviving versions is the same either way, even though the winning
	// Path differs.
	ab := solver.MergeConstraints(a, b)
	ba := solver.MergeConstraints(b, a)
	assert.Equal(t, candidateVersions(ab), candidateVersions(ba))
}

func TestMergeConstraintsIncumbentWinsPath(t *testing.T) {
	pkg := solver.MustParsePackageName("leftpad/left_pad")
	v1 := solver.MustParseVersion("1.0.0")

	incumbentPath := solver.Path{}.Append(solver.PathStep{Package: pkg, Version: v1})
	challengerPath := incumbentPath.Append(solver.PathStep{Package: pkg, Version: v1})

	a := solver.NewConstraint().Insert(v1, incumbentPath)
	b := solver.NewConstraint().Insert(v1, challengerPath)

	merged := solver.MergeConstraints(a, b)
	got, ok := merged.Get(v1)
	require.True(t, ok)
	assert.Equal(t, incumbentPath.String(), got.String())
}
