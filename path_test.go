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

	"github.com/stretchr/testify/assert"

	"github.com/oxidepm/solver"
)

func TestPathEmptyIsRoot(t *testing.T) {
	var p solver.Path
	assert.Equal(t, "root", p.String())
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Steps())
}

func TestPathAppendSharesTail(t *testing.T) {
	pkgA := solver.MustParsePackageName("leftpad/left_pad")
	pkgB := solver.MustParsePackageName("leftpad/right_pad")
	v := solver.MustParseVersion("1.0.0")

	base := solver.Path{}.Append(solver.PathStep{Package: pkgA, Version: v})
	child1 := base.Append(solver.PathStep{Package: pkgB, Version: v})
	child2 := base.Append(solver.PathStep{Package: pkgB, Version: v})

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, child1.Len())
	assert.Equal(t, child1.String(), child2.String())
	assert.Equal(t, "root → leftpad/left_pad@1.0.0", base.String())
}

func TestPathContains(t *testing.T) {
	pkgA := solver.MustParsePackageName("leftpad/left_pad")
	pkgB := solver.MustParsePackageName("leftpad/right_pad")
	v := solver.MustParseVersion("1.0.0")

	p := solver.Path{}.Append(solver.PathStep{Package: pkgA, Version: v})
	assert.True(t, p.Contains(pkgA))
	assert.False(t, p.Contains(pkgB))
}
