package game

import (
	"time"

	"github.com/xtaxx12/snake-game/pkg/config"
)

// NextInterval returns the tick interval after the score reached score.
// Every multiple of SpeedStepThreshold shortens the interval by
// SpeedDecrement, never below SpeedFloor.
func NextInterval(cfg config.Game, interval time.Duration, score int) time.Duration {
	if score <= 0 || cfg.SpeedStepThreshold <= 0 || score%cfg.SpeedStepThreshold != 0 {
		return interval
	}
	if interval <= cfg.SpeedFloor {
		return interval
	}
	next := interval - cfg.SpeedDecrement
	if next < cfg.SpeedFloor {
		next = cfg.SpeedFloor
	}
	return next
}
