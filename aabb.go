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

// AABB is an axis-aligned bounding box in 3D. Min must be componentwise
// <= Max; callers are responsible for that invariant, the kernel never
// validates it on the hot path (see DESIGN.md).
type AABB struct {
	MinX, MinY, MinZ float32
	MaxX, MaxY, MaxZ float32
}

// Overlaps reports whether a and b intersect, including boundary contact.
// This is the scalar reference predicate: every SIMD path in the kernel
// must agree with it exactly, and it is the oracle used by the property
// tests.
func (a AABB) Overlaps(b AABB) bool {
	return a.MaxX >= b.MinX && a.MinX <= b.MaxX &&
		a.MaxY >= b.MinY && a.MinY <= b.MaxY &&
		a.MaxZ >= b.MinZ && a.MinZ <= b.MaxZ
}
