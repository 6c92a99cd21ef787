package game

import (
	"fmt"
	"time"
)

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point moved by one step of d
func (p Point) Add(d Direction) Point {
	v := d.Vector()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction is one of the four moves a snake can make
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

// Vector returns the unit step for the direction
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Horizontal reports whether the direction moves along the X axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("unknown direction %q", b)
	}
	*d = parsed
	return nil
}

// ParseDirection maps "up", "down", "left", "right" to a Direction
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return Right, false
}

// Phase is the state-machine state of a game
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

var phaseNames = [...]string{"idle", "running", "paused", "over"}

func (p Phase) String() string {
	if p < PhaseIdle || p > PhaseOver {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// Active reports whether the game has a live snake (running or paused)
func (p Phase) Active() bool {
	return p == PhaseRunning || p == PhasePaused
}

// Snapshot is an immutable copy of the game for renderers and recorders
type Snapshot struct {
	Tick         uint64        `json:"tick"`
	GridSize     int           `json:"gridSize"`
	Snake        []Point       `json:"snake"`
	Food         Point         `json:"food"`
	Direction    Direction     `json:"direction"`
	Score        int           `json:"score"`
	FoodEaten    int           `json:"foodEaten"`
	Phase        Phase         `json:"phase"`
	TickInterval time.Duration `json:"tickInterval"`
	CrashPoint   *Point        `json:"crashPoint,omitempty"`
}

// Head returns the first snake cell
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}
