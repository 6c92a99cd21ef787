package game

import (
	"math/rand"
	"time"

	"github.com/xtaxx12/snake-game/pkg/config"
)

// Game is a single snake game advanced one tick at a time.
// It has no timers and no locks; callers serialize access (see pkg/loop).
type Game struct {
	cfg   config.Game
	rng   *rand.Rand
	start Point
	dir0  Direction

	snake      []Point
	direction  Direction
	pending    Direction
	food       Point
	score      int
	foodEaten  int
	interval   time.Duration
	phase      Phase
	tick       uint64
	crashPoint *Point

	gameOverListeners []func(score int)
}

// NewGame creates an idle game. The board is laid out as it will be on
// Start so the first frame can be drawn before the player starts.
func NewGame(cfg config.Game) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dir0, ok := ParseDirection(cfg.StartDirection)
	if !ok {
		dir0 = Right
	}

	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		start: Point{X: cfg.StartX, Y: cfg.StartY},
		dir0:  dir0,
	}
	g.reset()
	return g
}

// OnGameOver registers fn to be called once per game with the final score
func (g *Game) OnGameOver(fn func(score int)) {
	g.gameOverListeners = append(g.gameOverListeners, fn)
}

func (g *Game) reset() {
	g.snake = []Point{g.start}
	g.direction = g.dir0
	g.pending = g.dir0
	g.score = 0
	g.foodEaten = 0
	g.interval = g.cfg.BaseInterval
	g.tick = 0
	g.crashPoint = nil
	g.placeFood()
}

// Start begins a new game from Idle or Over. It is a no-op otherwise.
func (g *Game) Start() {
	if g.phase != PhaseIdle && g.phase != PhaseOver {
		return
	}
	g.reset()
	g.phase = PhaseRunning
}

// Pause freezes a running game
func (g *Game) Pause() {
	if g.phase == PhaseRunning {
		g.phase = PhasePaused
	}
}

// Resume continues a paused game
func (g *Game) Resume() {
	if g.phase == PhasePaused {
		g.phase = PhaseRunning
	}
}

// TogglePause toggles the pause state
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// SetDirection queues a turn for the next tick. Only turns perpendicular to
// the current direction are accepted; the last accepted turn before a tick wins.
func (g *Game) SetDirection(d Direction) bool {
	if g.phase != PhaseRunning || d < Up || d > Right {
		return false
	}
	if d.Horizontal() == g.direction.Horizontal() {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the snake by one cell
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	g.tick++
	g.direction = g.pending

	newHead := g.snake[0].Add(g.direction)

	if !g.inBounds(newHead) || g.hitsBody(newHead) {
		g.endGame(newHead)
		return
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score += g.cfg.PointsPerFood
		g.foodEaten++
		g.placeFood()
		g.interval = NextInterval(g.cfg, g.interval, g.score)
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.GridSize && p.Y >= 0 && p.Y < g.cfg.GridSize
}

// hitsBody checks p against every cell but the tail, which moves away this
// tick. Food is never on the snake, so a head entering the tail cell never
// eats and the tail is always popped.
func (g *Game) hitsBody(p Point) bool {
	for _, s := range g.snake[:len(g.snake)-1] {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) endGame(crash Point) {
	g.phase = PhaseOver
	g.crashPoint = &crash
	for _, fn := range g.gameOverListeners {
		fn(g.score)
	}
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Snapshot returns a copy of the current game state
func (g *Game) Snapshot() Snapshot {
	snake := make([]Point, len(g.snake))
	copy(snake, g.snake)

	s := Snapshot{
		Tick:         g.tick,
		GridSize:     g.cfg.GridSize,
		Snake:        snake,
		Food:         g.food,
		Direction:    g.direction,
		Score:        g.score,
		FoodEaten:    g.foodEaten,
		Phase:        g.phase,
		TickInterval: g.interval,
	}
	if g.crashPoint != nil {
		crash := *g.crashPoint
		s.CrashPoint = &crash
	}
	return s
}
