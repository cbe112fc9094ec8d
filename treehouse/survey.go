package treehouse

import (
	log "github.com/sirupsen/logrus"

	"go.advent.dev/aoc2022/puzzle"
)

// directions are unit steps up, down, left and right.
var directions = [4]Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// look walks from |from| in direction |d| toward the edge, returning the
// number of trees seen and whether the view reaches the edge unblocked. A
// tree at least as tall as |from| blocks the view, and is counted as seen.
func (g *Grid) look(from, d Coordinate) (seen int, clear bool) {
	var h = g.Height(from)

	for c := (Coordinate{from.Row + d.Row, from.Column + d.Column}); g.InBounds(c); c = (Coordinate{c.Row + d.Row, c.Column + d.Column}) {
		seen++
		if g.Height(c) >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible returns whether the tree at |c| can be seen from outside the Grid
// along at least one row or column.
func (g *Grid) Visible(c Coordinate) bool {
	for _, d := range directions {
		if _, clear := g.look(c, d); clear {
			return true
		}
	}
	return false
}

// ScenicScore is the product of the viewing distances from |c| in each
// direction.
func (g *Grid) ScenicScore(c Coordinate) int {
	var score = 1
	for _, d := range directions {
		var seen, _ = g.look(c, d)
		score *= seen
	}
	return score
}

// CountVisible returns the number of trees Visible from outside the Grid.
func (g *Grid) CountVisible() int {
	var n int
	for r := 0; r != g.rows; r++ {
		for c := 0; c != g.columns; c++ {
			if g.Visible(Coordinate{r, c}) {
				n++
			}
		}
	}
	return n
}

// BestScenicScore returns the Coordinate having the highest ScenicScore,
// and that score. Ties go to the first cell in row-major order.
func (g *Grid) BestScenicScore() (Coordinate, int) {
	var best, score = Coordinate{}, -1
	for r := 0; r != g.rows; r++ {
		for c := 0; c != g.columns; c++ {
			if s := g.ScenicScore(Coordinate{r, c}); s > score {
				best, score = Coordinate{r, c}, s
			}
		}
	}
	return best, score
}

// Solve counts visible trees (part 1) and finds the best scenic score (part 2).
func Solve(lines []string) (puzzle.Answer, error) {
	var g, err = ParseGrid(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var visible = g.CountVisible()
	var at, score = g.BestScenicScore()

	log.WithFields(log.Fields{
		"rows":    g.Rows(),
		"columns": g.Columns(),
		"visible": visible,
		"best":    at.String(),
	}).Debug("surveyed trees")

	return puzzle.NewAnswer(visible, score), nil
}
