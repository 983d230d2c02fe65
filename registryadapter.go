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
	"sort"

	"go.uber.org/zap"
)

// RegistryAdapter wraps an immutable Registry snapshot and resolves
// VersionConstraints against its release lists. It is pure over the
// snapshot: repeated calls with equal inputs return equal outputs.
type RegistryAdapter struct {
	registry *Registry
	logger   *zap.Logger
}

// NewRegistryAdapter wraps registry. A nil logger disables logging.
func NewRegistryAdapter(registry *Registry, logger *zap.Logger) *RegistryAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryAdapter{registry: registry, logger: logger}
}

// ConstraintSetFrom builds the initial ConstraintSet for a root
// DependencySet, with the empty Path as every entry's justification.
func (ra *RegistryAdapter) ConstraintSetFrom(deps DependencySet) (ConstraintSet, Failure) {
	return ra.buildConstraintSet(deps, Path{})
}

// ConstraintSetFor looks up the release record for (pkg, version) and
// produces the ConstraintSet corresponding to its direct dependencies,
// attaching path+[(pkg, version)] as their justification.
func (ra *RegistryAdapter) ConstraintSetFor(pkg PackageName, version Version, path Path) (ConstraintSet, Failure) {
	p, ok := ra.registry.Packages[pkg]
	if !ok {
		return ConstraintSet{}, &PackageMissing{Package: pkg, Path: path}
	}

	release, ok := p.Releases[version]
	if !ok {
		return ConstraintSet{}, &UnavailableDependencies{Package: pkg, Constraint: Exact(version), Path: path}
	}

	extended := path.Append(PathStep{Package: pkg, Version: version})
	return ra.buildConstraintSet(release.Dependencies, extended)
}

func (ra *RegistryAdapter) buildConstraintSet(deps DependencySet, path Path) (ConstraintSet, Failure) {
	result := NewConstraintSet()
	noSolution := NewPartialSolution()

	for _, name := range sortedDependencyNames(deps) {
		c, failure := ra.constraintFor(name, deps[name], path)
		if failure != nil {
			return ConstraintSet{}, failure
		}

		single := NewConstraintSet().insertNonEmpty(name, c)
		merged, failure := result.Merge(single, noSolution)
		if failure != nil {
			return ConstraintSet{}, failure
		}
		result = merged
	}

	return result, nil
}

func (ra *RegistryAdapter) constraintFor(name PackageName, constraint VersionConstraint, path Path) (Constraint, Failure) {
	if path.Contains(name) {
		return Constraint{}, &GraphCycle{Path: path, Package: name}
	}

	pkg, ok := ra.registry.Packages[name]
	if !ok {
		ra.logger.Debug("package missing", zap.Stringer("package", name))
		return Constraint{}, &PackageMissing{Package: name, Path: path}
	}

	releases := sortedReleasesDescending(pkg)
	matching := AllVersionsMatching(constraint, releases)
	if len(matching) == 0 {
		return Constraint{}, &UnavailableDependencies{Package: name, Constraint: constraint, Path: path}
	}

	c := NewConstraint()
	for _, v := range matching {
		c = c.Insert(v, path)
	}
	return c, nil
}

func sortedReleasesDescending(pkg *Package) []Version {
	versions := make([]Version, 0, len(pkg.Releases))
	for v := range pkg.Releases {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) > 0
	})
	return versions
}

func sortedDependencyNames(deps DependencySet) []PackageName {
	names := make([]PackageName, 0, len(deps))
	for n := range deps {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i].Compare(names[j]) < 0
	})
	return names
}
