package maze

// Sample10x10 returns a 10x10 grid fixture with a mix of walkable (1) and
// blocked (0) cells, used by the package's tests and by callers wanting
// a ready-made grid for experimentation.
func Sample10x10() *Grid {
	rows := [][]int{
		{1, 1, 1, 1, 0, 0, 1, 1, 1, 1},
		{1, 0, 1, 0, 0, 1, 1, 0, 1, 1},
		{1, 0, 1, 1, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 0, 1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1, 1, 1, 0, 0, 1},
		{1, 1, 1, 1, 0, 1, 0, 1, 1, 1},
		{0, 0, 0, 1, 0, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 0, 1, 1},
		{1, 1, 1, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}
