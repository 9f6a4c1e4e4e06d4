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

func TestAABBOverlapsInclusive(t *testing.T) {
	a := AABB{MinX: 0, MinY: 0, MinZ: 0, MaxX: 1, MaxY: 1, MaxZ: 1}
	b := AABB{MinX: 1, MinY: 0, MinZ: 0, MaxX: 2, MaxY: 1, MaxZ: 1}
	if !a.Overlaps(b) {
		t.Fatal("face-touching boxes must overlap under the inclusive predicate")
	}
	if !b.Overlaps(a) {
		t.Fatal("Overlaps must be symmetric")
	}
}

func TestAABBOverlapsDisjoint(t *testing.T) {
	a := AABB{MinX: 0, MinY: 0, MinZ: 0, MaxX: 1, MaxY: 1, MaxZ: 1}
	b := AABB{MinX: 10, MinY: 10, MinZ: 10, MaxX: 11, MaxY: 11, MaxZ: 11}
	if a.Overlaps(b) {
		t.Fatal("far-apart boxes must not overlap")
	}
}

func TestAABBOverlapsSelf(t *testing.T) {
	a := AABB{MinX: 0, MinY: 0, MinZ: 0, MaxX: 1, MaxY: 1, MaxZ: 1}
	if !a.Overlaps(a) {
		t.Fatal("a box always overlaps itself under the inclusive predicate")
	}
}
