package game

// placeFood puts the food on a uniformly random cell not covered by the
// snake. It resamples until it finds one, so it never returns on a full board.
func (g *Game) placeFood() {
	for {
		pos := Point{
			X: g.rng.Intn(g.cfg.GridSize),
			Y: g.rng.Intn(g.cfg.GridSize),
		}
		if !g.onSnake(pos) {
			g.food = pos
			return
		}
	}
}

func (g *Game) onSnake(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}
