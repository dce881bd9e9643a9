// Package save captures a running game into a versioned document and
// rebuilds a game from one. Documents travel as gzip-compressed JSON.
package save

import (
	"errors"

	"aether-roguelike/internal/spatial"
)

const (
	// SchemaName identifies save documents.
	SchemaName = "aether-save"
	// Version is the only document version this build reads and writes.
	Version = 1
)

var (
	// ErrSchemaMismatch is returned for a document with an unknown schema
	// name or version.
	ErrSchemaMismatch = errors.New("save schema mismatch")
	// ErrCorrupt is returned for a document whose content cannot describe a
	// game: ragged tiles, no player, bad random state.
	ErrCorrupt = errors.New("corrupt save")
)

// Actor kinds.
const (
	KindPlayer  = "player"
	KindMonster = "monster"
	KindItem    = "item"
	KindTrap    = "trap"
)

// Document is the complete saved state of a run.
type Document struct {
	Schema      string   `json:"schema" jsonschema:"const=aether-save"`
	Version     int      `json:"version" jsonschema:"minimum=1"`
	Floor       int      `json:"floor" jsonschema:"minimum=1"`
	Seed        int64    `json:"seed"`
	Mode        string   `json:"mode" jsonschema:"enum=rooms,enum=caves"`
	Turn        int      `json:"turn" jsonschema:"minimum=0"`
	RNG         string   `json:"rng" jsonschema:"description=base64 encoded random stream state"`
	VictoryItem bool     `json:"victory_item"`
	Keyring     []string `json:"keyring"`
	Map         Map      `json:"map"`
	// Explored has one row per map row; '1' marks a seen cell.
	Explored []string `json:"explored"`
	Actors   []Actor  `json:"actors"`
	Log      []string `json:"log"`
}

// Point is a grid cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func fromPoint(p spatial.Point) Point { return Point{X: p.X, Y: p.Y} }
func (p Point) point() spatial.Point  { return spatial.Point{X: p.X, Y: p.Y} }

func fromPoints(ps []spatial.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = fromPoint(p)
	}
	return out
}

func toPoints(ps []Point) []spatial.Point {
	out := make([]spatial.Point, len(ps))
	for i, p := range ps {
		out[i] = p.point()
	}
	return out
}

// DoorKey pairs a locked door with the cell its key was placed on.
type DoorKey struct {
	Door Point `json:"door"`
	Key  Point `json:"key"`
}

// Map is the level snapshot. Tiles has one row per map row, one digit per
// cell holding the tile kind.
type Map struct {
	Width        int       `json:"width" jsonschema:"minimum=1"`
	Height       int       `json:"height" jsonschema:"minimum=1"`
	Tiles        []string  `json:"tiles"`
	Start        Point     `json:"start"`
	StairsUp     Point     `json:"stairs_up"`
	StairsDown   Point     `json:"stairs_down"`
	LockedDoors  []Point   `json:"locked_doors"`
	KeyPositions []Point   `json:"key_positions"`
	DoorKeys     []DoorKey `json:"door_keys"`
	Hazards      []Point   `json:"hazards"`
	TrapHints    []Point   `json:"trap_hints"`
}

// Actor is one saved entity with whichever components it carries.
type Actor struct {
	ID         uint64      `json:"id"`
	Kind       string      `json:"kind" jsonschema:"enum=player,enum=monster,enum=item,enum=trap"`
	Position   Position    `json:"position"`
	Renderable *Renderable `json:"renderable,omitempty"`
	Stats      *Stats      `json:"stats,omitempty"`
	Energy     *Energy     `json:"energy,omitempty"`
	AI         *AI         `json:"ai,omitempty"`
	Reward     int         `json:"reward,omitempty"`
	Item       *Item       `json:"item,omitempty"`
	Inventory  *Inventory  `json:"inventory,omitempty"`
	Equipment  *Equipment  `json:"equipment,omitempty"`
	Statuses   []Status    `json:"statuses,omitempty"`
}

type Position struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Floor int `json:"floor"`
}

// Renderable colours are 24-bit RGB values; -1 is the terminal default.
type Renderable struct {
	Glyph string `json:"glyph"`
	FG    int32  `json:"fg"`
	BG    int32  `json:"bg"`
	Order int    `json:"order"`
}

type Stats struct {
	MaxHP       int                `json:"max_hp"`
	HP          int                `json:"hp"`
	MaxMP       int                `json:"max_mp"`
	MP          int                `json:"mp"`
	Attack      int                `json:"attack"`
	Defense     int                `json:"defense"`
	Evasion     int                `json:"evasion"`
	Speed       int                `json:"speed"`
	XP          int                `json:"xp"`
	Level       int                `json:"level"`
	Resistances map[string]float64 `json:"resistances"`
}

type Energy struct {
	Current  int `json:"current"`
	Recovery int `json:"recovery"`
}

type AI struct {
	Archetype string         `json:"archetype" jsonschema:"enum=brute,enum=skirmisher,enum=ranged,enum=summoner,enum=sapper,enum=boss"`
	Cooldown  int            `json:"cooldown"`
	Memory    map[string]int `json:"memory,omitempty"`
}

type Item struct {
	Name        string `json:"name"`
	Slot        string `json:"slot,omitempty" jsonschema:"enum=weapon,enum=armor,enum=ring,enum=charm"`
	Stackable   bool   `json:"stackable,omitempty"`
	Quantity    int    `json:"quantity"`
	Identified  bool   `json:"identified,omitempty"`
	Cursed      bool   `json:"cursed,omitempty"`
	Durability  *int   `json:"durability,omitempty"`
	Power       int    `json:"power,omitempty"`
	Element     string `json:"element,omitempty"`
	Description string `json:"description,omitempty"`
}

type Inventory struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Items  []Item `json:"items"`
}

type Equipment struct {
	Weapon    *Item `json:"weapon,omitempty"`
	Armor     *Item `json:"armor,omitempty"`
	RingLeft  *Item `json:"ring_left,omitempty"`
	RingRight *Item `json:"ring_right,omitempty"`
	Charm     *Item `json:"charm,omitempty"`
}

type Status struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Potency  int    `json:"potency"`
	Element  string `json:"element"`
}
