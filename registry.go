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

// DependencySet maps a package to the constraint a release (or the root
// manifest) places on it.
type DependencySet map[PackageName]VersionConstraint

// Release is one version of a Package, carrying its direct dependencies.
type Release struct {
	Dependencies DependencySet
}

// Package is the set of Releases published under one PackageName.
type Package struct {
	Releases map[Version]*Release
}

// Registry is an immutable-for-the-duration-of-a-solve catalogue of every
// package and release available to the solver. It is supplied by the
// caller; the core never populates one from a network or disk.
type Registry struct {
	Packages map[PackageName]*Package
}

// NewRegistry returns an empty Registry, ready for AddRelease calls. It is a
// convenience for building fixtures and tests; production callers may
// construct a Registry literal directly from their own decoded manifests.
func NewRegistry() *Registry {
	return &Registry{Packages: make(map[PackageName]*Package)}
}

// AddRelease registers one release of name, creating the package entry on
// its first release.
func (r *Registry) AddRelease(name PackageName, version Version, deps DependencySet) {
	pkg, ok := r.Packages[name]
	if !ok {
		pkg = &Package{Releases: make(map[Version]*Release)}
		r.Packages[name] = pkg
	}
	pkg.Releases[version] = &Release{Dependencies: deps}
}
