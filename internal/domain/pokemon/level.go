package pokemon

import "sort"

// LevelCurve maps experience to level. Entry i holds the minimum
// experience for level i+2; a pokémon below the first threshold is level
// 1. The curve is game-rules data, not engine logic: any strictly
// increasing table works, and Level is total and monotone over all inputs.
type LevelCurve []int

// Level returns the level reached at the given experience. Negative
// experience is treated as 0, so the minimum result is always level 1.
func (c LevelCurve) Level(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return 1 + sort.SearchInts(c, experience+1)
}

// ExperienceForLevel returns the minimum experience needed for a level.
// Levels at or below 1 cost nothing; levels beyond the table cost the top
// threshold.
func (c LevelCurve) ExperienceForLevel(level int) int {
	if level <= 1 || len(c) == 0 {
		return 0
	}
	if level-2 >= len(c) {
		return c[len(c)-1]
	}
	return c[level-2]
}

// MaxLevel returns the highest level the curve can produce
func (c LevelCurve) MaxLevel() int {
	return len(c) + 1
}

// DefaultLevelCurve is the standard experience chart, levels 2 through 100.
var DefaultLevelCurve = LevelCurve{
	10, 20, 30, 40, 50, 60, 70, 80, 90, 110,
	135, 160, 190, 220, 250, 285, 320, 360, 400, 460,
	530, 600, 680, 760, 850, 950, 1060, 1180, 1310, 1450,
	1600, 1760, 1930, 2110, 2300, 2500, 2710, 2930, 3160, 3400,
	3650, 3910, 4180, 4460, 4750, 5050, 5360, 5680, 6010, 6350,
	6700, 7060, 7430, 7810, 8200, 8600, 9010, 9430, 9860, 10300,
	10750, 11210, 11680, 12160, 12650, 13150, 13660, 14180, 14710, 15250,
	15800, 16360, 16930, 17510, 18100, 18700, 19310, 19930, 20560, 21200,
	21850, 22510, 23180, 23860, 24550, 25250, 25960, 26680, 27410, 28150,
	28900, 29660, 30430, 31210, 32000, 32800, 33610, 34430, 35260,
}
