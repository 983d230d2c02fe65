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
	"github.com/stretchr/testify/require"

	"github.com/oxidepm/solver"
)

func TestParsePackageName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"leftpad/left_pad", false},
		{"a/b", false},
		{"my-namespace/my-name", false},
		{"no-namespace", true},
		{"-leadingdash/name", true},
		{"namespace/-leadingdash", true},
		{"Namespace/name", true}, // namespace must be lowercase
		{"namespace/", true},
		{"/name", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := solver.ParsePackageName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPackageNameAccessors(t *testing.T) {
	n := solver.MustParsePackageName("leftpad/right_pad")
	assert.Equal(t, "leftpad", n.Namespace())
	assert.Equal(t, "right_pad", n.Name())
	assert.Equal(t, "leftpad/right_pad", n.String())
}

func TestPackageNameInterningEquality(t *testing.T) {
	a := solver.MustParsePackageName("leftpad/left_pad")
	b := solver.MustParsePackageName("leftpad/left_pad")
	assert.Equal(t, a, b)
	assert.Zero(t, a.Compare(b))
}

func TestPackageNameCompareOrdering(t *testing.T) {
	a := solver.MustParsePackageName("leftpad/left_pad")
	b := solver.MustParsePackageName("leftpad/right_pad")
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
}

func TestMustParsePackageNamePanicsOnInvalidInput(t *testing.T) {
	require.Panics(t, func() {
		solver.MustParsePackageName("no-namespace")
	})
}
