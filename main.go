// aether-roguelike is a terminal dungeon crawler. Build:
//
//	go build -o aether .
//
// Usage:
//
//	./aether [-config aether.yaml] [-seed N] [-gen rooms|caves] [-load savegame.sav]
//
// Quitting mid-run (Q or Esc) saves to the configured save_path.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"aether-roguelike/internal/config"
	"aether-roguelike/internal/game"
	"aether-roguelike/internal/logger"
	"aether-roguelike/internal/save"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "aether.yaml", "Path to the YAML run configuration")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 uses the config seed, or the clock)")
	gen := flag.String("gen", "", "Map generator: rooms or caves")
	load := flag.String("load", "", "Resume the run stored in this save file")
	flag.Parse()

	if err := run(*configPath, *seed, *gen, *load); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, gen, load string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if gen != "" {
		cfg.Generator = gen
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	closeLog, err := logger.Redirect(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	if cfg.Locale.Dir != "" {
		game.LoadCatalogue(cfg.Locale.Dir, cfg.Locale.Lang)
	}

	g, err := startGame(cfg, load)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	quit := g.Run(screen)
	screen.Fini()

	if !quit {
		return nil
	}
	doc, err := save.Capture(g)
	if err != nil {
		return err
	}
	if err := save.SaveFile(cfg.SavePath, doc); err != nil {
		return err
	}
	fmt.Printf("Saved to %s. Resume with -load %s\n", cfg.SavePath, cfg.SavePath)
	return nil
}

func startGame(cfg config.Config, load string) (*game.Game, error) {
	if load == "" {
		return game.New(cfg.GameOptions())
	}
	doc, err := save.LoadFile(load)
	if err != nil {
		return nil, err
	}
	return save.Restore(doc, cfg.GameOptions())
}
