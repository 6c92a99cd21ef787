package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Board dimensions (400px canvas split into 20px cells)
const (
	CanvasSize      = 400
	DefaultCellSize = 20
	DefaultGridSize = CanvasSize / DefaultCellSize
)

// Speed and scoring defaults
const (
	DefaultBaseInterval       = 150 * time.Millisecond
	DefaultPointsPerFood      = 10
	DefaultSpeedStepThreshold = 50
	DefaultSpeedDecrement     = 8 * time.Millisecond
	DefaultSpeedFloor         = 80 * time.Millisecond
)

// Score keeping
const (
	DefaultRankingSize = 10
	DefaultDBPath      = "data/scores.db"
	DefaultRecordDir   = "records"
)

// Emoji characters for rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
	CharCrash = "💥"
)

// Direction names accepted for StartDirection
const (
	DirUp    = "up"
	DirDown  = "down"
	DirLeft  = "left"
	DirRight = "right"
)

// Game holds every tunable of a single game plus the data paths used by
// the commands around it.
type Game struct {
	GridSize       int
	CellSize       int
	StartX         int
	StartY         int
	StartDirection string

	BaseInterval       time.Duration
	PointsPerFood      int
	SpeedStepThreshold int
	SpeedDecrement     time.Duration
	SpeedFloor         time.Duration

	// Seed for food placement; 0 means seed from the clock.
	Seed int64

	RankingSize int
	DBPath      string
	RecordDir   string
}

// Default returns the classic settings: 20x20 grid, snake at (10,10) heading
// right, 150ms ticks speeding up by 8ms every 50 points down to 80ms.
func Default() Game {
	return Game{
		GridSize:           DefaultGridSize,
		CellSize:           DefaultCellSize,
		StartX:             10,
		StartY:             10,
		StartDirection:     DirRight,
		BaseInterval:       DefaultBaseInterval,
		PointsPerFood:      DefaultPointsPerFood,
		SpeedStepThreshold: DefaultSpeedStepThreshold,
		SpeedDecrement:     DefaultSpeedDecrement,
		SpeedFloor:         DefaultSpeedFloor,
		RankingSize:        DefaultRankingSize,
		DBPath:             DefaultDBPath,
		RecordDir:          DefaultRecordDir,
	}
}

// Load returns Default() overridden by SNAKE_* environment variables.
// The given .env files (or ".env" when none are given) are loaded first;
// a missing file is not an error.
func Load(files ...string) (Game, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Game{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Game{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

func (c *Game) applyEnv() error {
	ints := map[string]*int{
		"SNAKE_GRID_SIZE":       &c.GridSize,
		"SNAKE_CELL_SIZE":       &c.CellSize,
		"SNAKE_START_X":         &c.StartX,
		"SNAKE_START_Y":         &c.StartY,
		"SNAKE_POINTS_PER_FOOD": &c.PointsPerFood,
		"SNAKE_SPEED_STEP":      &c.SpeedStepThreshold,
		"SNAKE_RANKING_SIZE":    &c.RankingSize,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"SNAKE_BASE_INTERVAL":   &c.BaseInterval,
		"SNAKE_SPEED_DECREMENT": &c.SpeedDecrement,
		"SNAKE_SPEED_FLOOR":     &c.SpeedFloor,
	}
	for key, dst := range durations {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
		*dst = d
	}

	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SNAKE_SEED=%q: %w", v, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv("SNAKE_START_DIRECTION"); ok {
		c.StartDirection = v
	}
	if v, ok := os.LookupEnv("SNAKE_DB_PATH"); ok {
		c.DBPath = v
	}
	if v, ok := os.LookupEnv("SNAKE_RECORD_DIR"); ok {
		c.RecordDir = v
	}
	return nil
}

// Validate reports the first setting that would make the game degenerate.
func (c Game) Validate() error {
	switch {
	case c.GridSize < 2:
		return fmt.Errorf("grid size must be at least 2, got %d", c.GridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.StartX < 0 || c.StartX >= c.GridSize || c.StartY < 0 || c.StartY >= c.GridSize:
		return fmt.Errorf("start position (%d,%d) is outside the %dx%d grid", c.StartX, c.StartY, c.GridSize, c.GridSize)
	case c.BaseInterval <= 0:
		return fmt.Errorf("base interval must be positive, got %v", c.BaseInterval)
	case c.SpeedFloor <= 0 || c.SpeedFloor > c.BaseInterval:
		return fmt.Errorf("speed floor must be in (0, %v], got %v", c.BaseInterval, c.SpeedFloor)
	case c.SpeedDecrement < 0:
		return fmt.Errorf("speed decrement must not be negative, got %v", c.SpeedDecrement)
	case c.SpeedStepThreshold <= 0:
		return fmt.Errorf("speed step threshold must be positive, got %d", c.SpeedStepThreshold)
	case c.PointsPerFood <= 0:
		return fmt.Errorf("points per food must be positive, got %d", c.PointsPerFood)
	case c.RankingSize <= 0:
		return fmt.Errorf("ranking size must be positive, got %d", c.RankingSize)
	}
	switch c.StartDirection {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		return fmt.Errorf("unknown start direction %q", c.StartDirection)
	}
	return nil
}
