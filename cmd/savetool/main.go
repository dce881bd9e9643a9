// savetool inspects aether-roguelike save files. Build:
//
//	go build -o savetool ./cmd/savetool
//
// Usage:
//
//	./savetool schema            print the JSON Schema of the save document
//	./savetool summary FILE      describe the run stored in FILE
//	./savetool verify FILE       check that FILE restores into a playable game
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"aether-roguelike/internal/game"
	"aether-roguelike/internal/save"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: savetool schema | summary FILE | verify FILE")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := run(flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "savetool: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	switch cmd := args[0]; cmd {
	case "schema":
		return writeSchema(out)
	case "summary", "verify":
		if len(args) != 2 {
			return fmt.Errorf("%s needs exactly one save file", cmd)
		}
		doc, err := save.LoadFile(args[1])
		if err != nil {
			return err
		}
		if cmd == "verify" {
			return verify(out, args[1], doc)
		}
		summarize(out, doc)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func writeSchema(out io.Writer) error {
	data, err := json.MarshalIndent(save.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func verify(out io.Writer, path string, doc *save.Document) error {
	g, err := save.Restore(doc, game.DefaultOptions(doc.Seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok (floor %d, turn %d, %d entities)\n", path, g.Floor(), g.Turn(), len(g.World().Entities()))
	return nil
}

func summarize(out io.Writer, doc *save.Document) {
	fmt.Fprintf(out, "seed      %d (%s)\n", doc.Seed, doc.Mode)
	fmt.Fprintf(out, "floor     %d\n", doc.Floor)
	fmt.Fprintf(out, "turn      %d\n", doc.Turn)
	fmt.Fprintf(out, "map       %dx%d\n", doc.Map.Width, doc.Map.Height)
	keys := "none"
	if len(doc.Keyring) > 0 {
		keys = strings.Join(doc.Keyring, ", ")
	}
	fmt.Fprintf(out, "keys      %s\n", keys)
	fmt.Fprintf(out, "core      %v\n", doc.VictoryItem)

	monsters := map[string]int{}
	items := 0
	for _, a := range doc.Actors {
		switch a.Kind {
		case save.KindPlayer:
			if s := a.Stats; s != nil {
				fmt.Fprintf(out, "player    HP %d/%d  level %d  xp %d  at (%d,%d)\n",
					s.HP, s.MaxHP, s.Level, s.XP, a.Position.X, a.Position.Y)
			}
		case save.KindMonster:
			if a.AI != nil {
				monsters[a.AI.Archetype]++
			}
		case save.KindItem:
			items++
		}
	}
	names := make([]string, 0, len(monsters))
	for name := range monsters {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s x%d", name, monsters[name]))
	}
	fmt.Fprintf(out, "monsters  %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(out, "items     %d on the floor\n", items)
}
