package game

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	lines := []string{
		"#####",
		"#S.E#",
		"#.^.#",
		"#####",
	}

	l, err := ParseLevel("test", "Test Level", lines)
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}

	if l.Width != 5 || l.Height != 4 {
		t.Errorf("size = %dx%d, expected 5x4", l.Width, l.Height)
	}
	if l.SpawnX != 1 || l.SpawnY != 1 {
		t.Errorf("spawn = (%d, %d), expected (1, 1)", l.SpawnX, l.SpawnY)
	}

	tiles := []struct {
		x, y     int
		expected TileKind
	}{
		{0, 0, TileSolid},
		{1, 1, TileSpawn},
		{2, 1, TileEmpty},
		{3, 1, TileExit},
		{2, 2, TileSpike},
	}
	for _, tc := range tiles {
		if got := l.TileAt(tc.x, tc.y); got != tc.expected {
			t.Errorf("TileAt(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestParseLevelPadsShortRows(t *testing.T) {
	l, err := ParseLevel("pad", "Pad", []string{
		"####",
		"#S",
		"####",
	})
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}

	if l.Width != 4 {
		t.Errorf("Width = %d, expected 4", l.Width)
	}
	if got := l.TileAt(3, 1); got != TileEmpty {
		t.Errorf("padded cell = %v, expected TileEmpty", got)
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty level", nil},
		{"unknown tile", []string{"#S?#"}},
		{"no spawn", []string{"####", "#..#", "####"}},
		{"two spawns", []string{"####", "#SS#", "####"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLevel("bad", "Bad", tc.lines); err == nil {
				t.Error("ParseLevel() should have failed")
			}
		})
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	l := MustParseLevel("oob", "OOB", []string{
		"...",
		".S.",
		"...",
	})

	// Everything outside the grid reads as solid, so the boundary
	// collides without special cases in the resolver.
	oob := []struct{ x, y int }{
		{-1, 1}, {3, 1}, {1, -1}, {1, 3}, {-5, -5}, {100, 100},
	}
	for _, c := range oob {
		if got := l.TileAt(c.x, c.y); got != TileSolid {
			t.Errorf("TileAt(%d, %d) = %v, expected TileSolid", c.x, c.y, got)
		}
	}
}

func TestSliceSource(t *testing.T) {
	l := MustParseLevel("one", "One", []string{"S"})
	src := NewSource([]*Level{l})

	if src.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", src.Count())
	}

	got, err := src.Load(0)
	if err != nil {
		t.Fatalf("Load(0) failed: %v", err)
	}
	if got.ID != "one" {
		t.Errorf("Load(0).ID = %q, expected %q", got.ID, "one")
	}

	if _, err := src.Load(1); err == nil {
		t.Error("Load(1) should fail for out-of-range index")
	}
	if _, err := src.Load(-1); err == nil {
		t.Error("Load(-1) should fail for out-of-range index")
	}
}

func TestBuiltinLevelsValid(t *testing.T) {
	src := BuiltinSource()
	if src.Count() == 0 {
		t.Fatal("BuiltinSource() should supply at least one level")
	}

	for i := 0; i < src.Count(); i++ {
		l, err := src.Load(i)
		if err != nil {
			t.Fatalf("Load(%d) failed: %v", i, err)
		}
		if err := l.Validate(); err != nil {
			t.Errorf("built-in level %d invalid: %v", i, err)
		}

		// Each level needs at least one exit to be completable.
		exits := 0
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				if l.TileAt(x, y) == TileExit {
					exits++
				}
			}
		}
		if exits == 0 {
			t.Errorf("built-in level %d (%s) has no exit", i, l.ID)
		}
	}
}
