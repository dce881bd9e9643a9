package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed          int64          `json:"seed"`
	Mode          string         `json:"mode"`
	Victory       bool           `json:"victory"`
	FloorsReached int            `json:"floors_reached"`
	TurnsPlayed   int            `json:"turns"`
	Kills         map[string]int `json:"kills"` // archetype → kill count
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	CauseOfDeath  string         `json:"cause_of_death,omitempty"` // last thing that hurt the player
}

func newRunLog(opts Options) RunLog {
	return RunLog{
		Seed:  opts.Seed,
		Mode:  opts.Mode.String(),
		Kills: make(map[string]int),
	}
}

// finish closes the run log when the machine enters a final state.
func (g *Game) finish(won bool) {
	g.runLog.Victory = won
	g.runLog.TurnsPlayed = g.turn
	if won {
		g.runLog.CauseOfDeath = ""
	} else {
		g.say("You died. Seed %d.", g.opts.Seed)
	}
	log.WithFields(logrus.Fields{
		"victory": won,
		"floor":   g.floor,
		"turns":   g.turn,
		"cause":   g.runLog.CauseOfDeath,
	}).Info("game over")
	if !g.opts.RunLog {
		return
	}
	if err := saveRunLog(g.runLog); err != nil {
		log.WithError(err).Warn("run log not written")
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
func saveRunLog(entry RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/aether-roguelike,
// defaulting to ~/.local/share/aether-roguelike.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "aether-roguelike"), nil
}
