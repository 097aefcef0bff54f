// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"fmt"
	"slices"
)

// Index is a generic multimap from a value's key to all values with that
// key. Keys are kept in the order they were first seen. An Index is not
// modified after NewIndex returns and is safe for concurrent reads.
type Index[V fmt.Stringer] struct {
	// keys in first seen order.
	keys []string

	values map[string][]V
}

// NewIndex creates an index from the given slice. Values with the same key
// keep their relative order from the slice.
func NewIndex[V fmt.Stringer](values []V) *Index[V] {
	idx := &Index[V]{
		values: make(map[string][]V),
	}
	for _, v := range values {
		k := v.String()
		if _, ok := idx.values[k]; !ok {
			idx.keys = append(idx.keys, k)
		}
		idx.values[k] = append(idx.values[k], v)
	}
	return idx
}

// Search returns the values with the given key.
func (idx *Index[V]) Search(key string) []V {
	return slices.Clone(idx.values[key])
}

// Contains returns true if the key is present in the index.
func (idx *Index[V]) Contains(key string) bool {
	_, ok := idx.values[key]
	return ok
}

// Keys returns all distinct keys in first seen order.
func (idx *Index[V]) Keys() []string {
	return slices.Clone(idx.keys)
}

// Len returns the number of distinct keys.
func (idx *Index[V]) Len() int {
	return len(idx.keys)
}
