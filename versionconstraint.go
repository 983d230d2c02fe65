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

	"github.com/Masterminds/semver/v3"
)

type constraintKind int

const (
	kindExact constraintKind = iota
	kindRange
	kindCaret
	kindTilde
	kindAny
)

// VersionConstraint is a symbolic range over Versions: Exact, Range, Caret
// (compatible-release), Tilde (patch-level), or Any. It induces the
// canonical half-open interval [lo, hi) described in the data model.
type VersionConstraint struct {
	kind        constraintKind
	text        string
	exact       Version
	constraints *semver.Constraints
}

// Exact constructs the constraint satisfied only by v.
func Exact(v Version) VersionConstraint {
	return VersionConstraint{kind: kindExact, text: v.String(), exact: v}
}

// Any constructs the constraint satisfied by every version.
func Any() VersionConstraint {
	return VersionConstraint{kind: kindAny, text: "*"}
}

// Caret constructs ">= v, < next_incompatible(v)".
func Caret(v Version) VersionConstraint {
	text := "^" + v.String()
	c, err := semver.NewConstraint(text)
	if err != nil {
		panic(fmt.Sprintf("canary - shouldn't be possible: caret constraint from valid version %q: %v", v, err))
	}
	return VersionConstraint{kind: kindCaret, text: text, constraints: c}
}

// Tilde constructs ">= v, < next_minor(v)".
func Tilde(v Version) VersionConstraint {
	text := "~" + v.String()
	c, err := semver.NewConstraint(text)
	if err != nil {
		panic(fmt.Sprintf("canary - shouldn't be possible: tilde constraint from valid version %q: %v", v, err))
	}
	return VersionConstraint{kind: kindTilde, text: text, constraints: c}
}

var rangeTokenPattern = regexp.MustCompile(`(>=|<=|>|<)\s*(\S+)`)

// ParseConstraint parses the canonical textual forms: "X.Y.Z" (exact),
// "^X.Y.Z", "~X.Y.Z", "* " (Any), and "op A op B"-style ranges with either
// bound optional (">= 1.0.0 < 2.0.0", ">= 1.0.0", "< 2.0.0").
func ParseConstraint(s string) (VersionConstraint, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "*" {
		return Any(), nil
	}

	switch trimmed[0] {
	case '^':
		v, err := ParseVersion(strings.TrimSpace(trimmed[1:]))
		if err != nil {
			return VersionConstraint{}, newParseError("constraint", s, err)
		}
		return Caret(v), nil
	case '~':
		v, err := ParseVersion(strings.TrimSpace(trimmed[1:]))
		if err != nil {
			return VersionConstraint{}, newParseError("constraint", s, err)
		}
		return Tilde(v), nil
	}

	if !strings.ContainsAny(trimmed, "<>=") {
		v, err := ParseVersion(trimmed)
		if err != nil {
			return VersionConstraint{}, newParseError("constraint", s, err)
		}
		return Exact(v), nil
	}

	matches := rangeTokenPattern.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return VersionConstraint{}, newParseError("constraint", s, fmt.Errorf("no recognizable comparison operator"))
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m[1]+m[2])
	}
	joined := strings.Join(parts, ", ")

	c, err := semver.NewConstraint(joined)
	if err != nil {
		return VersionConstraint{}, newParseError("constraint", s, err)
	}
	return VersionConstraint{kind: kindRange, text: trimmed, constraints: c}, nil
}

// String renders the canonical textual form of c.
func (c VersionConstraint) String() string {
	return c.text
}

// Satisfies reports whether v lies in the interval induced by c.
func (c VersionConstraint) Satisfies(v Version) bool {
	switch c.kind {
	case kindAny:
		return true
	case kindExact:
		return v.Compare(c.exact) == 0
	default:
		vv := v.v
		return c.constraints.Check(&vv)
	}
}

// AllVersionsMatching returns the subset of sortedDescending satisfying c,
// preserving descending order.
func AllVersionsMatching(c VersionConstraint, sortedDescending []Version) []Version {
	result := make([]Version, 0, len(sortedDescending))
	for _, v := range sortedDescending {
		if c.Satisfies(v) {
			result = append(result, v)
		}
	}
	return result
}
