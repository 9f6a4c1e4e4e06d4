// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package boxprune

import (
	"math/rand"
	"testing"
)

func checkSorterOrdersKeys(t *testing.T, s Sorter, keys []float32) {
	t.Helper()
	ranks := s.Sort(keys)
	if len(ranks) != len(keys) {
		t.Fatalf("got %d ranks for %d keys", len(ranks), len(keys))
	}
	seen := make([]bool, len(keys))
	for _, r := range ranks {
		if r >= uint32(len(keys)) || seen[r] {
			t.Fatalf("ranks is not a permutation of [0,%d): saw %d twice or out of range", len(keys), r)
		}
		seen[r] = true
	}
	for i := 1; i < len(ranks); i++ {
		if EncodeKey(keys[ranks[i-1]]) > EncodeKey(keys[ranks[i]]) {
			t.Fatalf("ranks not sorted at position %d: key %v > key %v",
				i, keys[ranks[i-1]], keys[ranks[i]])
		}
	}
}

func TestRadixSorterEmpty(t *testing.T) {
	checkSorterOrdersKeys(t, NewRadixSorter(), nil)
}

func TestRadixSorterRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 7, 8, 9, 100, 1000} {
		keys := make([]float32, n)
		for i := range keys {
			keys[i] = float32(rng.NormFloat64() * 1000)
		}
		checkSorterOrdersKeys(t, NewRadixSorter(), keys)
	}
}

func TestRadixSorterReusedAcrossCalls(t *testing.T) {
	s := NewRadixSorter()
	checkSorterOrdersKeys(t, s, []float32{3, 1, 2})
	checkSorterOrdersKeys(t, s, []float32{30, -1, 0, 17, -9, 4})
}

func TestInsertionSorterRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 2, 5, 50} {
		keys := make([]float32, n)
		for i := range keys {
			keys[i] = float32(rng.NormFloat64() * 1000)
		}
		checkSorterOrdersKeys(t, InsertionSorter{}, keys)
	}
}

func TestSortersAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	keys := make([]float32, 200)
	for i := range keys {
		keys[i] = float32(rng.NormFloat64() * 1e6)
	}

	radixRanks := NewRadixSorter().Sort(keys)
	insertionRanks := InsertionSorter{}.Sort(keys)

	sortedByRadix := make([]float32, len(keys))
	sortedByInsertion := make([]float32, len(keys))
	for i := range keys {
		sortedByRadix[i] = keys[radixRanks[i]]
		sortedByInsertion[i] = keys[insertionRanks[i]]
	}
	for i := range sortedByRadix {
		if sortedByRadix[i] != sortedByInsertion[i] {
			t.Fatalf("sorters disagree at position %d: %v vs %v", i, sortedByRadix[i], sortedByInsertion[i])
		}
	}
}
