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
	"regexp"
	"strings"
	"unique"
)

// PackageName is an interned "namespace/name" identifier. Interning follows
// the same unique.Handle technique the wider ecosystem uses for package
// identifiers: equal names share one allocation and compare via pointer
// equality, which also makes PackageName a cheap, comparable map key.
type PackageName struct {
	handle unique.Handle[string]
}

var (
	namespacePattern = regexp.MustCompile(`^[a-z0-9_][a-z0-9_-]{0,127}$`)
	namePattern      = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]{0,127}$`)
)

// ParsePackageName parses a fully normalized "namespace/name" string. Bare
// names (implicitly inheriting the enclosing manifest's namespace) must
// already be resolved to full form by the caller before reaching the solver.
func ParsePackageName(s string) (PackageName, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return PackageName{}, newParseError("package name", s, fmt.Errorf("missing namespace, expected namespace/name"))
	}

	namespace, name := s[:idx], s[idx+1:]
	if !namespacePattern.MatchString(namespace) {
		return PackageName{}, newParseError("package name", s, fmt.Errorf("invalid namespace %q", namespace))
	}
	if !namePattern.MatchString(name) {
		return PackageName{}, newParseError("package name", s, fmt.Errorf("invalid name %q", name))
	}

	return PackageName{handle: unique.Make(namespace + "/" + name)}, nil
}

// MustParsePackageName parses s and panics on error. Intended for static
// registry fixtures and tests, not for untrusted input.
func MustParsePackageName(s string) PackageName {
	n, err := ParsePackageName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the canonical "namespace/name" form.
func (n PackageName) String() string {
	return n.handle.Value()
}

// Namespace returns the namespace component.
func (n PackageName) Namespace() string {
	s := n.handle.Value()
	return s[:strings.IndexByte(s, '/')]
}

// Name returns the name component.
func (n PackageName) Name() string {
	s := n.handle.Value()
	return s[strings.IndexByte(s, '/')+1:]
}

// Compare gives the total order used for ConstraintSet key ordering and the
// pop() variable-selection heuristic: lexicographic over the canonical form.
func (n PackageName) Compare(other PackageName) int {
	return strings.Compare(n.handle.Value(), other.handle.Value())
}
