// Package game implements the ball platformer simulation: a circular player
// body integrated under gravity against a tile grid, with hazard and exit
// tiles driving a lives/level progression.
package game

import (
	"fmt"
)

// TileKind identifies the contents of one level grid cell.
type TileKind int

const (
	TileEmpty TileKind = iota // Open space
	TileSolid                 // Collidable wall/floor block
	TileSpawn                 // Player start cell (open space)
	TileExit                  // Level exit marker
	TileSpike                 // Instant-damage hazard
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileSpawn:
		return "spawn"
	case TileExit:
		return "exit"
	case TileSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Level is an immutable tile grid with one designated spawn cell.
// Coordinates are in tiles; one tile is one world unit.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Tiles  [][]TileKind // [row][col]

	// Spawn cell coordinates (tile indices).
	SpawnX int
	SpawnY int
}

// TileAt returns the tile at grid cell (x, y). Any coordinate outside the
// level bounds reads as solid, so the world boundary is collidable without
// special-casing edges in the resolver.
func (l *Level) TileAt(x, y int) TileKind {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileSolid
	}
	return l.Tiles[y][x]
}

// Validate checks the level-authoring invariants: positive bounds and
// exactly one spawn cell placed in open space.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("game: level %q has invalid bounds %dx%d", l.ID, l.Width, l.Height)
	}

	spawns := 0
	for y := 0; y < l.Height; y++ {
		if len(l.Tiles[y]) != l.Width {
			return fmt.Errorf("game: level %q row %d has width %d, want %d", l.ID, y, len(l.Tiles[y]), l.Width)
		}
		for x := 0; x < l.Width; x++ {
			if l.Tiles[y][x] == TileSpawn {
				spawns++
			}
		}
	}
	if spawns != 1 {
		return fmt.Errorf("game: level %q has %d spawn cells, want exactly 1", l.ID, spawns)
	}
	return nil
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = solid block
//	'.' or ' ' = empty space
//	'S' = spawn point
//	'E' = exit
//	'^' = spike hazard
//
// Short rows are padded with empty space to the widest row.
func ParseLevel(id, name string, lines []string) (*Level, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("game: level %q is empty", id)
	}

	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Tiles:  make([][]TileKind, len(lines)),
	}

	for row, line := range lines {
		level.Tiles[row] = make([]TileKind, maxWidth)
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			switch ch {
			case '#':
				level.Tiles[row][col] = TileSolid
			case 'S', 's':
				level.Tiles[row][col] = TileSpawn
				level.SpawnX = col
				level.SpawnY = row
			case 'E', 'e':
				level.Tiles[row][col] = TileExit
			case '^':
				level.Tiles[row][col] = TileSpike
			case '.', ' ':
				level.Tiles[row][col] = TileEmpty
			default:
				return nil, fmt.Errorf("game: level %q has unknown tile %q at %d,%d", id, ch, col, row)
			}
		}
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// MustParseLevel is ParseLevel for built-in levels, panicking on error.
func MustParseLevel(id, name string, lines []string) *Level {
	l, err := ParseLevel(id, name, lines)
	if err != nil {
		panic(err)
	}
	return l
}

// Source supplies levels by index. Load must be deterministic: the same
// index always yields an equivalent level. Implementations must fail for
// indices outside [0, Count()).
type Source interface {
	Count() int
	Load(index int) (*Level, error)
}

// sliceSource serves a fixed, pre-validated slice of levels.
type sliceSource struct {
	levels []*Level
}

// NewSource wraps a slice of levels as a Source.
func NewSource(levels []*Level) Source {
	return &sliceSource{levels: levels}
}

func (s *sliceSource) Count() int {
	return len(s.levels)
}

func (s *sliceSource) Load(index int) (*Level, error) {
	if index < 0 || index >= len(s.levels) {
		return nil, fmt.Errorf("game: level index %d out of range [0,%d)", index, len(s.levels))
	}
	return s.levels[index], nil
}
