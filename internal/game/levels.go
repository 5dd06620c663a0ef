package game

// builtinLevels is the embedded campaign, parsed at init.
// See ParseLevel for the tile legend.
var builtinLevels = []*Level{
	MustParseLevel("rolling-start", "Rolling Start", []string{
		"########################################",
		"#......................................#",
		"#......................................#",
		"#..................................E...#",
		"#.................................######",
		"#......................................#",
		"#....................########..........#",
		"#......................................#",
		"#..........#####.......................#",
		"#.S.........................^^.........#",
		"########################################",
	}),
	MustParseLevel("spike-alley", "Spike Alley", []string{
		"############################################",
		"#..........................................#",
		"#..........................................#",
		"#.....................................E....#",
		"#....................................#######",
		"#..........................................#",
		"#...........................########.......#",
		"#..........................................#",
		"#.........########.........................#",
		"#..........................................#",
		"#.S...^^.........^^^...........^^..........#",
		"############################################",
	}),
	MustParseLevel("the-climb", "The Climb", []string{
		"##############################",
		"#.........E..................#",
		"#........#####...............#",
		"#............................#",
		"#.................#####......#",
		"#............................#",
		"#......#####.................#",
		"#............................#",
		"#.................######.....#",
		"#.....^^.....................#",
		"#....#####...................#",
		"#............................#",
		"#..................#####.....#",
		"#............................#",
		"#........######..............#",
		"#............................#",
		"#...^^................####...#",
		"#..#####.....................#",
		"#............................#",
		"#............#####...........#",
		"#......................^^....#",
		"#.S..........................#",
		"##############################",
	}),
}

// BuiltinSource returns the level source for the embedded campaign.
func BuiltinSource() Source {
	return NewSource(builtinLevels)
}

// BuiltinLevelCount returns the number of embedded campaign levels.
func BuiltinLevelCount() int {
	return len(builtinLevels)
}
