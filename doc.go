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

// Package boxprune implements broad-phase collision detection for sets of
// axis-aligned bounding boxes (AABBs) in 3D using sweep-and-prune.
//
// Boxes are sorted once along the X axis, packed into a structure-of-arrays
// arena, and swept with a forward window per candidate: for each box, every
// later box whose X range still overlaps is tested against Y and Z with a
// SIMD-width comparison kernel. The result is the complete set of
// overlapping pairs, in time roughly linear in the input plus the number of
// overlaps for spatially well-distributed inputs.
//
// The package is single-threaded and synchronous: no call blocks, yields,
// or performs I/O, and there is no state shared between calls beyond what a
// caller explicitly reuses (a Sorter instance kept across calls to benefit
// from frame-to-frame coherence).
package boxprune
