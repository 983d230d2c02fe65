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

// mapEntry is one key/value pair of a persistentMap, kept in cmp order.
type mapEntry[K any, V any] struct {
	key K
	val V
}

// persistentMap is a generic ordered map backed by an immutable sorted
// slice: every Insert or Delete returns a new value with a freshly
// allocated backing array, never mutating the receiver's, so each update
// copies all entries and costs O(n). Existing
// references to the old value remain valid, which is what lets
// ConstraintSet, Constraint, and PartialSolution fork across search
// branches and make backtracking free (the old branch's map is simply
// dropped). See DESIGN.md for why this is a slice rather than a tree.
type persistentMap[K any, V any] struct {
	cmp     func(a, b K) int
	entries []mapEntry[K, V]
}

func newPersistentMap[K any, V any](cmp func(a, b K) int) persistentMap[K, V] {
	return persistentMap[K, V]{cmp: cmp}
}

// Len returns the number of entries.
func (m persistentMap[K, V]) Len() int {
	return len(m.entries)
}

func (m persistentMap[K, V]) search(k K) (int, bool) {
	lo, hi := 0, len(m.entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := m.cmp(m.entries[mid].key, k); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// Get returns the value stored for k, if any.
func (m persistentMap[K, V]) Get(k K) (V, bool) {
	i, ok := m.search(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].val, true
}

// Insert returns a new map with k mapped to v, leaving the receiver intact.
func (m persistentMap[K, V]) Insert(k K, v V) persistentMap[K, V] {
	i, ok := m.search(k)
	if ok {
		next := make([]mapEntry[K, V], len(m.entries))
		copy(next, m.entries)
		next[i] = mapEntry[K, V]{key: k, val: v}
		return persistentMap[K, V]{cmp: m.cmp, entries: next}
	}

	next := make([]mapEntry[K, V], len(m.entries)+1)
	copy(next[:i], m.entries[:i])
	next[i] = mapEntry[K, V]{key: k, val: v}
	copy(next[i+1:], m.entries[i:])
	return persistentMap[K, V]{cmp: m.cmp, entries: next}
}

// Delete returns a new map with k removed, leaving the receiver intact. A
// missing key is a no-op.
func (m persistentMap[K, V]) Delete(k K) persistentMap[K, V] {
	i, ok := m.search(k)
	if !ok {
		return m
	}

	next := make([]mapEntry[K, V], len(m.entries)-1)
	copy(next, m.entries[:i])
	copy(next[i:], m.entries[i+1:])
	return persistentMap[K, V]{cmp: m.cmp, entries: next}
}

// Entries returns the map's entries in ascending cmp order. Callers must
// not mutate the returned slice.
func (m persistentMap[K, V]) Entries() []mapEntry[K, V] {
	return m.entries
}
