package tiling

import "testing"

func TestTile4SubtileMap_Involution(t *testing.T) {
	for i, v := range Tile4SubtileMap {
		if int(Tile4SubtileMap[v]) != i {
			t.Errorf("map[map[%d]] = %d", i, Tile4SubtileMap[v])
		}
	}
}

func TestTile4SubtileMap_Bijection(t *testing.T) {
	var seen [64]bool
	for i, v := range Tile4SubtileMap {
		if v >= 64 {
			t.Fatalf("map[%d] = %d out of range", i, v)
		}
		if seen[v] {
			t.Fatalf("map value %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestTile4_SubtileContiguity(t *testing.T) {
	// Each 64-byte subtile holds 16 bytes x 4 rows.
	g, _ := Resolve(Tile4, 8, Gen4Plus)
	s, err := NewSurface(g, 256, 8, SwizzleNone)
	if err != nil {
		t.Fatal(err)
	}
	base := s.Offset(16, 4)
	for y := range uint32(4) {
		for x := range uint32(16) {
			want := base + uint64(y)*16 + uint64(x)
			if got := s.Offset(16+x, 4+y); got != want {
				t.Errorf("Offset(%d, %d) = %d, want %d", 16+x, 4+y, got, want)
			}
		}
	}
}
