package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/xtaxx12/snake-game/pkg/config"
)

func testConfig() config.Game {
	cfg := config.Default()
	cfg.Seed = 7
	return cfg
}

// newRunningGame returns a started game with the food parked out of the way
func newRunningGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(testConfig())
	g.Start()
	if g.Phase() != PhaseRunning {
		t.Fatalf("Expected running after Start, got %v", g.Phase())
	}
	g.food = Point{X: 0, Y: 0}
	return g
}

func TestNewGameIsIdle(t *testing.T) {
	g := NewGame(testConfig())
	s := g.Snapshot()
	if s.Phase != PhaseIdle {
		t.Errorf("Expected idle, got %v", s.Phase)
	}
	if len(s.Snake) != 1 || s.Snake[0] != (Point{X: 10, Y: 10}) {
		t.Errorf("Expected snake at (10,10), got %v", s.Snake)
	}
	if s.Food == s.Snake[0] {
		t.Error("Food placed on the snake")
	}

	g.Tick()
	if g.Snapshot().Tick != 0 {
		t.Error("Tick while idle should be a no-op")
	}
}

func TestStartThenThreeTicks(t *testing.T) {
	g := newRunningGame(t)

	for i := 0; i < 3; i++ {
		g.Tick()
	}

	s := g.Snapshot()
	if s.Head() != (Point{X: 13, Y: 10}) {
		t.Errorf("Expected head at (13,10), got %v", s.Head())
	}
	if len(s.Snake) != 1 {
		t.Errorf("Expected length 1, got %d", len(s.Snake))
	}
	if s.Phase != PhaseRunning || s.Score != 0 {
		t.Errorf("Expected running with score 0, got %v score %d", s.Phase, s.Score)
	}
}

func TestStartIgnoredWhileRunning(t *testing.T) {
	g := newRunningGame(t)
	g.Tick()
	g.Start()
	if g.Snapshot().Head() != (Point{X: 11, Y: 10}) {
		t.Error("Start during a running game should not reset it")
	}
}

func TestReversalRejected(t *testing.T) {
	g := newRunningGame(t)

	if g.SetDirection(Left) {
		t.Error("Reversal from Right to Left should be rejected")
	}
	if g.SetDirection(Right) {
		t.Error("Same-axis request should be rejected")
	}
	g.Tick()

	s := g.Snapshot()
	if s.Direction != Right || s.Head() != (Point{X: 11, Y: 10}) {
		t.Errorf("Expected to keep moving right, got %v at %v", s.Direction, s.Head())
	}
}

func TestTurnAppliedOnNextTick(t *testing.T) {
	g := newRunningGame(t)

	if !g.SetDirection(Up) {
		t.Fatal("Perpendicular turn should be accepted")
	}
	if g.Snapshot().Direction != Right {
		t.Error("Turn must not apply before the tick")
	}
	// Down is still perpendicular to the current direction; last accepted wins
	if !g.SetDirection(Down) {
		t.Fatal("Second perpendicular turn should be accepted")
	}
	g.Tick()

	s := g.Snapshot()
	if s.Direction != Down || s.Head() != (Point{X: 10, Y: 11}) {
		t.Errorf("Expected to move down to (10,11), got %v at %v", s.Direction, s.Head())
	}
}

func TestSetDirectionIgnoredOutsideRunning(t *testing.T) {
	g := NewGame(testConfig())
	if g.SetDirection(Up) {
		t.Error("SetDirection while idle should be ignored")
	}

	g.Start()
	g.Pause()
	if g.SetDirection(Up) {
		t.Error("SetDirection while paused should be ignored")
	}
}

func TestTailCellIsNotACollision(t *testing.T) {
	g := newRunningGame(t)
	g.snake = []Point{{5, 5}, {5, 4}, {4, 4}, {4, 5}}
	g.direction = Down
	g.pending = Left

	g.Tick()

	s := g.Snapshot()
	if s.Phase != PhaseRunning {
		t.Fatalf("Moving onto the departing tail must not end the game, got %v", s.Phase)
	}
	want := []Point{{4, 5}, {5, 5}, {5, 4}, {4, 4}}
	for i, p := range want {
		if s.Snake[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, s.Snake[i])
		}
	}
}

func TestBodyCollision(t *testing.T) {
	g := newRunningGame(t)
	g.snake = []Point{{5, 5}, {5, 4}, {4, 4}, {4, 5}, {4, 6}}
	g.direction = Down
	g.pending = Left
	g.score = 20

	var emitted []int
	g.OnGameOver(func(score int) { emitted = append(emitted, score) })

	g.Tick()

	s := g.Snapshot()
	if s.Phase != PhaseOver {
		t.Fatalf("Expected game over, got %v", s.Phase)
	}
	if len(emitted) != 1 || emitted[0] != 20 {
		t.Errorf("Expected one game-over event with 20, got %v", emitted)
	}
	if s.CrashPoint == nil || *s.CrashPoint != (Point{X: 4, Y: 5}) {
		t.Errorf("Expected crash at (4,5), got %v", s.CrashPoint)
	}
	if len(s.Snake) != 5 {
		t.Errorf("Snake must be left untouched on collision, got %v", s.Snake)
	}
}

func TestWallCollision(t *testing.T) {
	g := newRunningGame(t)
	g.snake = []Point{{0, 0}}
	g.direction = Up
	g.pending = Left
	g.food = Point{X: 5, Y: 5}
	g.score = 30

	var emitted []int
	g.OnGameOver(func(score int) { emitted = append(emitted, score) })

	g.Tick()
	g.Tick()

	if g.Phase() != PhaseOver {
		t.Fatalf("Expected game over, got %v", g.Phase())
	}
	if len(emitted) != 1 || emitted[0] != 30 {
		t.Errorf("Expected exactly one event with score 30, got %v", emitted)
	}

	g.Start()
	if s := g.Snapshot(); s.Phase != PhaseRunning || s.Score != 0 || s.CrashPoint != nil {
		t.Errorf("Start after game over should reset, got %+v", s)
	}
}

func TestFoodConsumption(t *testing.T) {
	g := newRunningGame(t)
	g.food = Point{X: 11, Y: 10}

	g.Tick()

	s := g.Snapshot()
	if s.Score != 10 {
		t.Errorf("Expected score 10, got %d", s.Score)
	}
	if len(s.Snake) != 2 {
		t.Errorf("Expected length 2, got %d", len(s.Snake))
	}
	if s.FoodEaten != 1 {
		t.Errorf("Expected 1 food eaten, got %d", s.FoodEaten)
	}
	for _, p := range s.Snake {
		if p == s.Food {
			t.Errorf("New food %v placed on the snake %v", s.Food, s.Snake)
		}
	}
}

func TestSpeedStepOnFood(t *testing.T) {
	g := newRunningGame(t)
	g.score = 40
	g.food = Point{X: 11, Y: 10}

	g.Tick()

	if got := g.Snapshot().TickInterval; got != 142*time.Millisecond {
		t.Errorf("Expected 142ms after reaching 50, got %v", got)
	}
}

func TestNextInterval(t *testing.T) {
	cfg := config.Default()
	ms := time.Millisecond

	tests := []struct {
		name     string
		interval time.Duration
		score    int
		expected time.Duration
	}{
		{"not a multiple", 150 * ms, 40, 150 * ms},
		{"first step", 150 * ms, 50, 142 * ms},
		{"second step", 142 * ms, 100, 134 * ms},
		{"clamped at floor", 86 * ms, 450, 80 * ms},
		{"already at floor", 80 * ms, 500, 80 * ms},
		{"zero score", 150 * ms, 0, 150 * ms},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextInterval(cfg, tc.interval, tc.score); got != tc.expected {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
			}
		})
	}
}

func TestSpeedNeverBelowFloor(t *testing.T) {
	cfg := config.Default()
	interval := cfg.BaseInterval
	for score := 10; score <= 1000; score += 10 {
		next := NextInterval(cfg, interval, score)
		if next > interval {
			t.Fatalf("Interval increased at score %d: %v -> %v", score, interval, next)
		}
		interval = next
		if interval < cfg.SpeedFloor {
			t.Fatalf("Interval %v below floor at score %d", interval, score)
		}
	}
	if interval != cfg.SpeedFloor {
		t.Errorf("Expected to settle at %v, got %v", cfg.SpeedFloor, interval)
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	g := newRunningGame(t)
	g.Tick()

	g.Pause()
	g.Pause()
	if g.Phase() != PhasePaused {
		t.Fatalf("Expected paused, got %v", g.Phase())
	}

	before := g.Snapshot()
	g.Tick()
	after := g.Snapshot()
	if before.Tick != after.Tick || before.Head() != after.Head() || before.Score != after.Score {
		t.Errorf("Tick while paused changed state: %+v -> %+v", before, after)
	}

	g.Resume()
	g.Tick()
	if g.Snapshot().Head() != (Point{X: 12, Y: 10}) {
		t.Errorf("Expected to continue after resume, head %v", g.Snapshot().Head())
	}
}

func TestTogglePause(t *testing.T) {
	g := NewGame(testConfig())
	g.TogglePause()
	if g.Phase() != PhaseIdle {
		t.Error("TogglePause while idle should be a no-op")
	}

	g.Start()
	g.TogglePause()
	if g.Phase() != PhasePaused {
		t.Errorf("Expected paused, got %v", g.Phase())
	}
	g.TogglePause()
	if g.Phase() != PhaseRunning {
		t.Errorf("Expected running, got %v", g.Phase())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newRunningGame(t)
	s := g.Snapshot()
	s.Snake[0] = Point{X: 99, Y: 99}

	if g.Snapshot().Head() == (Point{X: 99, Y: 99}) {
		t.Error("Mutating a snapshot leaked into the game")
	}
}

// TestRandomPlayInvariants drives many games with random turns and checks
// the board invariants after every tick.
func TestRandomPlayInvariants(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 8
	cfg.StartX, cfg.StartY = 4, 4
	g := NewGame(cfg)
	r := rand.New(rand.NewSource(1))

	games := 0
	for step := 0; step < 20000; step++ {
		if g.Phase() == PhaseOver || g.Phase() == PhaseIdle {
			g.Start()
			games++
		}
		g.SetDirection(Direction(r.Intn(4)))

		before := len(g.Snapshot().Snake)
		g.Tick()
		s := g.Snapshot()
		if s.Phase == PhaseOver {
			continue
		}

		if grew := len(s.Snake) - before; grew != 0 && grew != 1 {
			t.Fatalf("Snake length changed by %d in one tick", grew)
		}
		seen := make(map[Point]bool, len(s.Snake))
		for _, p := range s.Snake {
			if seen[p] {
				t.Fatalf("Snake overlaps itself at %v: %v", p, s.Snake)
			}
			seen[p] = true
			if p.X < 0 || p.X >= cfg.GridSize || p.Y < 0 || p.Y >= cfg.GridSize {
				t.Fatalf("Snake out of bounds at %v", p)
			}
		}
		if seen[s.Food] {
			t.Fatalf("Food %v on snake %v", s.Food, s.Snake)
		}
	}
	t.Logf("Played %d games", games)
}
