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
	"fmt"
	"math"
)

// ValidateBoxes checks the debug-only input contract: no coordinate is NaN
// (infinities are accepted), and min <= max on every axis. Production
// callers on the hot path are expected to skip this (the kernel itself
// never validates), but it is useful wired into a caller's own debug/test
// builds to catch malformed boxes before they reach the kernel and produce
// a confusing failure deeper in the sweep.
func ValidateBoxes(boxes []AABB) error {
	for i, b := range boxes {
		if math.IsNaN(float64(b.MinX)) || math.IsNaN(float64(b.MinY)) || math.IsNaN(float64(b.MinZ)) ||
			math.IsNaN(float64(b.MaxX)) || math.IsNaN(float64(b.MaxY)) || math.IsNaN(float64(b.MaxZ)) {
			return fmt.Errorf("boxprune: box %d has a NaN coordinate: %+v", i, b)
		}
		if b.MinX > b.MaxX {
			return fmt.Errorf("boxprune: box %d violates min<=max on X: %+v", i, b)
		}
		if b.MinY > b.MaxY {
			return fmt.Errorf("boxprune: box %d violates min<=max on Y: %+v", i, b)
		}
		if b.MinZ > b.MaxZ {
			return fmt.Errorf("boxprune: box %d violates min<=max on Z: %+v", i, b)
		}
	}
	return nil
}
