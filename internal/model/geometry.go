package model

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// delta returns the file and row offsets from start to end.
func delta(start, end Position) (dx, dy int) {
	return end.X - start.X, end.Y - start.Y
}

// IsStraight reports whether end lies on the same file or row as start.
func IsStraight(start, end Position) bool {
	return start != end && (start.X == end.X || start.Y == end.Y)
}

// IsDiagonal reports whether end lies on a diagonal through start.
func IsDiagonal(start, end Position) bool {
	dx, dy := delta(start, end)
	return dx != 0 && abs(dx) == abs(dy)
}

// IsPieceBetween reports whether any square strictly between start and end
// is occupied. start and end must share a file, row or diagonal.
func (b *BoardState) IsPieceBetween(start, end Position) bool {
	dx, dy := delta(start, end)
	steps := max(abs(dx), abs(dy))
	step := Position{X: sign(dx), Y: sign(dy)}
	for i := 1; i < steps; i++ {
		pos := Position{X: start.X + i*step.X, Y: start.Y + i*step.Y}
		if !b.IsEmpty(pos) {
			return true
		}
	}
	return false
}
