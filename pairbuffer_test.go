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

func TestPairBufferEmitAndGrow(t *testing.T) {
	p := newPairBuffer(pairSlack) // force growth quickly
	remap := []uint32{100, 200, 300, 400}

	for i := 0; i < 50; i++ {
		p.reserveSlack()
		p.emitBatch(uint32(i), remap, 0b1010)
	}

	pairs := p.pairs()
	if len(pairs) != 100 {
		t.Fatalf("got %d pairs, want 100", len(pairs))
	}
	for i, pr := range pairs {
		anchor := uint32(i / 2)
		if pr[0] != anchor {
			t.Fatalf("pair %d: idA = %d, want %d", i, pr[0], anchor)
		}
		if i%2 == 0 && pr[1] != remap[1] {
			t.Fatalf("pair %d: idB = %d, want %d (bit 1)", i, pr[1], remap[1])
		}
		if i%2 == 1 && pr[1] != remap[3] {
			t.Fatalf("pair %d: idB = %d, want %d (bit 3)", i, pr[1], remap[3])
		}
	}
}

func TestPairBufferEmitPair(t *testing.T) {
	p := newPairBuffer(4)
	for i := uint32(0); i < 20; i++ {
		p.reserveSlack()
		p.emitPair(i, i+1000)
	}
	pairs := p.pairs()
	if len(pairs) != 20 {
		t.Fatalf("got %d pairs, want 20", len(pairs))
	}
	for i, pr := range pairs {
		if pr[0] != uint32(i) || pr[1] != uint32(i)+1000 {
			t.Fatalf("pair %d = %v, want (%d, %d)", i, pr, i, i+1000)
		}
	}
}
