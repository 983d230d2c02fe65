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

// PathStep is one hop in a justification chain: the package and version
// that pulled in the next requirement.
type PathStep struct {
	Package PackageName
	Version Version
}

type pathNode struct {
	step PathStep
	tail *pathNode
}

// Path is an immutable, shared-tail sequence of PathSteps recording why a
// candidate is under consideration. The empty Path denotes the root
// requirement. Appending shares the existing tail in O(1); paths in
// practice are shallow (the depth of the dependency graph).
type Path struct {
	head *pathNode
}

// Append returns a new Path with step added as the newest hop, sharing the
// receiver's existing nodes.
func (p Path) Append(step PathStep) Path {
	return Path{head: &pathNode{step: step, tail: p.head}}
}

// Contains reports whether pkg already appears anywhere in the path — the
// cycle-detection check required before recursing into a candidate.
func (p Path) Contains(pkg PackageName) bool {
	for n := p.head; n != nil; n = n.tail {
		if n.step.Package == pkg {
			return true
		}
	}
	return false
}

// Len returns the number of hops in the path.
func (p Path) Len() int {
	n := 0
	for c := p.head; c != nil; c = c.tail {
		n++
	}
	return n
}

// Steps returns the path's hops in root-to-leaf order.
func (p Path) Steps() []PathStep {
	steps := make([]PathStep, p.Len())
	i := len(steps)
	for n := p.head; n != nil; n = n.tail {
		i--
		steps[i] = n.step
	}
	return steps
}

// String renders the path as "root → p1@v1 → p2@v2 → …", the canonical
// diagnostic form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("root")
	for _, s := range p.Steps() {
		fmt.Fprintf(&b, " → %s@%s", s.Package, s.Version)
	}
	return b.String()
}
