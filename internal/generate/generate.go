// Package generate builds dungeon floors: rooms or caves layouts, the shared
// feature pass (hazards, traps, doors, a locked door and its key) and the
// population plan for monsters and items.
package generate

import (
	"errors"
	"fmt"

	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/logger"
	"aether-roguelike/internal/rng"

	"github.com/sirupsen/logrus"
)

// ErrStructural reports a floor that could not be built within its budgets.
// Retrying with the same seed fails the same way.
var ErrStructural = errors.New("structural generation failure")

// Mode selects the layout strategy.
type Mode uint8

const (
	ModeRooms Mode = iota
	ModeCaves
)

func (m Mode) String() string {
	if m == ModeCaves {
		return "caves"
	}
	return "rooms"
}

// ParseMode maps "rooms" or "caves" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rooms", "":
		return ModeRooms, nil
	case "caves":
		return ModeCaves, nil
	}
	return 0, fmt.Errorf("unknown generator mode %q", s)
}

// Config drives procedural generation for one floor.
type Config struct {
	MapWidth, MapHeight int
	FloorNumber         int
	MaxFloors           int
	Mode                Mode
	Rand                rng.Source
}

// Layout tuning.
const (
	maxRooms        = 12
	minRoomSize     = 5
	maxRoomSize     = 10
	maxRoomFailures = 200
	caveFill        = 0.45
	caveSmoothing   = 5
	floorSeedStride = 97
)

var log = logger.For("generate")

// Floor builds floor number floor of the run seeded by seed. The same
// arguments always produce the same level.
func Floor(seed int64, floor int, mode Mode, width, height int) (*gamemap.Level, error) {
	return Generate(&Config{
		MapWidth:    width,
		MapHeight:   height,
		FloorNumber: floor,
		Mode:        mode,
		Rand:        rng.New(seed + int64(floor)*floorSeedStride),
	})
}

// Generate lays out a level with cfg.Mode and runs the feature pass.
func Generate(cfg *Config) (*gamemap.Level, error) {
	var (
		level *gamemap.Level
		err   error
	)
	switch cfg.Mode {
	case ModeCaves:
		level, err = generateCaves(cfg)
	default:
		level, err = generateRooms(cfg)
	}
	if err != nil {
		log.WithField("floor", cfg.FloorNumber).WithError(err).Error("floor generation failed")
		return nil, err
	}
	postProcess(level, cfg)
	log.WithFields(logrus.Fields{
		"floor":   cfg.FloorNumber,
		"mode":    cfg.Mode.String(),
		"open":    level.NonWallFraction(),
		"doors":   len(level.LockedDoors),
		"hazards": len(level.Hazards),
	}).Debug("floor generated")
	return level, nil
}
