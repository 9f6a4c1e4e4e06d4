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

import "testing"

func TestPaddedCount(t *testing.T) {
	cases := map[int]int{0: 8, 1: 16, 7: 16, 8: 16, 9: 24, 16: 24}
	for n, want := range cases {
		if got := paddedCount(n); got != want {
			t.Errorf("paddedCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBuildArenaLayout(t *testing.T) {
	boxes := []AABB{
		{MinX: 5, MinY: 0, MinZ: 0, MaxX: 6, MaxY: 1, MaxZ: 1},
		{MinX: 1, MinY: 2, MinZ: 3, MaxX: 2, MaxY: 4, MaxZ: 5},
		{MinX: 3, MinY: 0, MinZ: 0, MaxX: 4, MaxY: 1, MaxZ: 1},
	}
	ranks := NewRadixSorter().Sort([]float32{boxes[0].MinX, boxes[1].MinX, boxes[2].MinX})
	a := buildArena(boxes, ranks)

	if a.N != 3 {
		t.Fatalf("N = %d, want 3", a.N)
	}
	if a.NP != paddedCount(3) {
		t.Fatalf("NP = %d, want %d", a.NP, paddedCount(3))
	}
	for i := 1; i < a.N; i++ {
		if a.MinX[i-1] > a.MinX[i] {
			t.Fatalf("arena not sorted by encoded MinX at %d", i)
		}
	}
	// box 1 (MinX=1) must be first.
	if boxes[a.Remap[0]].MinX != 1 {
		t.Fatalf("Remap[0] points at MinX=%v, want 1", boxes[a.Remap[0]].MinX)
	}

	for i := a.N; i < a.NP; i++ {
		if a.MinX[i] != sentinelMinX || a.MaxX[i] != sentinelMaxX {
			t.Fatalf("padding slot %d does not carry sentinel X keys", i)
		}
	}
}

func TestValidateArenaAcceptsNormalInput(t *testing.T) {
	boxes := []AABB{
		{MinX: 0, MinY: 0, MinZ: 0, MaxX: 1, MaxY: 1, MaxZ: 1},
		{MinX: -5, MinY: -5, MinZ: -5, MaxX: -4, MaxY: -4, MaxZ: -4},
	}
	ranks := NewRadixSorter().Sort([]float32{boxes[0].MinX, boxes[1].MinX})
	a := buildArena(boxes, ranks)
	validateArena(a) // must not panic
}
