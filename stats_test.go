package boxprune

import "testing"

func TestSceneCentroid(t *testing.T) {
	boxes := []AABB{
		{MinX: 0, MinY: 0, MinZ: 0, MaxX: 2, MaxY: 2, MaxZ: 2},   // center (1,1,1)
		{MinX: -4, MinY: 2, MinZ: -2, MaxX: -2, MaxY: 4, MaxZ: 0}, // center (-3,3,-1)
	}
	x, y, z := SceneCentroid(boxes)
	if x != -1 || y != 2 || z != 0 {
		t.Fatalf("SceneCentroid = (%v, %v, %v), want (-1, 2, 0)", x, y, z)
	}
}

func TestSceneCentroidEmpty(t *testing.T) {
	x, y, z := SceneCentroid(nil)
	if x != 0 || y != 0 || z != 0 {
		t.Fatalf("SceneCentroid(nil) = (%v, %v, %v), want (0,0,0)", x, y, z)
	}
}
