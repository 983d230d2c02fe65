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

import "github.com/Masterminds/semver/v3"

// Version is a SemVer 2.0 value: major.minor.patch with optional prerelease
// and build-metadata tails. Ordering follows SemVer 2.0 exactly: numeric
// fields compare lexicographically, a prerelease tail orders before the same
// version without one, and build metadata never affects ordering.
//
// Version wraps Masterminds/semver/v3's Version by value rather than by
// pointer so that equal versions compare equal as Go map keys (registry
// release tables are keyed by Version) — see DESIGN.md.
type Version struct {
	v semver.Version
}

// ParseVersion parses "N(.N)*(-pre)?(+build)?" per SemVer 2.0, with at most
// three numeric fields: a missing minor or patch field reads as 0, and a
// string with four or more numeric fields is rejected with a ParseError.
func ParseVersion(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, newParseError("version", s, err)
	}
	return Version{v: *sv}, nil
}

// MustParseVersion parses s and panics on error. Intended for static
// registry fixtures and tests, not for untrusted input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical textual form of v.
func (v Version) String() string {
	return v.v.String()
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other, per SemVer 2.0 total ordering.
func (v Version) Compare(other Version) int {
	a, b := v.v, other.v
	return a.Compare(&b)
}
