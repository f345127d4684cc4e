package tetris

import "math"

// Grid holds locked cells, row 0 at the top.
type Grid [Rows][Cols]PieceType

// Collides reports whether p overlaps a wall, the floor or a locked cell.
// Cells above the board are free.
func (g *Grid) Collides(p Piece) bool {
	for _, c := range p.Type.Cells(p.Rotation) {
		r, col := p.Y+c.R, p.X+c.C
		if col < 0 || col >= Cols || r >= Rows {
			return true
		}
		if r < 0 {
			continue
		}
		if g[r][col] != PieceNone {
			return true
		}
	}
	return false
}

// Lock writes p into the grid. Cells above the board are dropped.
func (g *Grid) Lock(p Piece) {
	for _, c := range p.Type.Cells(p.Rotation) {
		r, col := p.Y+c.R, p.X+c.C
		if r >= 0 && r < Rows && col >= 0 && col < Cols {
			g[r][col] = p.Type
		}
	}
}

// FullRows returns the indices of completely filled rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for r := range Rows {
		full := true
		for c := range Cols {
			if g[r][c] == PieceNone {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}
	return rows
}

// RemoveRows deletes the given rows (ascending) and shifts everything above
// them down, filling the top with empty rows.
func (g *Grid) RemoveRows(rows []int) {
	for _, row := range rows {
		for r := row; r > 0; r-- {
			g[r] = g[r-1]
		}
		g[0] = [Cols]PieceType{}
	}
}

// DropDistance returns how far p can fall before it would collide.
func (g *Grid) DropDistance(p Piece) int {
	d := 0
	for {
		p.Y++
		if g.Collides(p) {
			return d
		}
		d++
	}
}

// Integrity is 100 minus the stack height as a percentage of the board.
func (g *Grid) Integrity() int {
	top := Rows
	for r := range Rows {
		occupied := false
		for c := range Cols {
			if g[r][c] != PieceNone {
				occupied = true
				break
			}
		}
		if occupied {
			top = r
			break
		}
	}
	height := Rows - top
	return max(0, int(math.Round((1-float64(height)/Rows)*100)))
}
