package game

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"aether-roguelike/assets"
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/factory"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/generate"
	"aether-roguelike/internal/logger"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"
	"aether-roguelike/internal/system"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var log = logger.For("game")

// ErrOptions is returned for options New cannot run with.
var ErrOptions = errors.New("invalid game options")

// Options configures a run.
type Options struct {
	Seed      int64
	Mode      generate.Mode
	MaxFloors int
	FOVRadius int
	MapWidth  int
	MapHeight int
	// RunLog appends a summary line to the run log file when the run ends.
	RunLog bool
}

// DefaultOptions returns the standard run settings for seed.
func DefaultOptions(seed int64) Options {
	return Options{
		Seed:      seed,
		Mode:      generate.ModeRooms,
		MaxFloors: MaxFloors,
		FOVRadius: FOVRadius,
		MapWidth:  MapWidth,
		MapHeight: MapHeight,
	}
}

func (o Options) validate() error {
	switch {
	case o.MaxFloors < 1:
		return fmt.Errorf("%w: max floors %d", ErrOptions, o.MaxFloors)
	case o.FOVRadius < 1:
		return fmt.Errorf("%w: fov radius %d", ErrOptions, o.FOVRadius)
	case o.MapWidth < 1 || o.MapHeight < 1:
		return fmt.Errorf("%w: map %dx%d", ErrOptions, o.MapWidth, o.MapHeight)
	}
	return nil
}

// Game is the turn orchestrator. It owns the World, the current floor and
// the run's random stream, and advances one player intent at a time.
type Game struct {
	opts    Options
	world   *ecs.World
	level   *gamemap.Level
	vis     *system.Visibility
	player  ecs.EntityID
	rng     *rng.Stream
	floor   int
	turn    int
	keyring mapset.Set[string]
	hasCore bool
	machine *fsm.FSM
	runLog  RunLog
}

// New starts a run on floor 1.
func New(opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	g := &Game{
		opts:    opts,
		world:   ecs.NewWorld(),
		rng:     rng.New(opts.Seed),
		keyring: mapset.New[string](),
		runLog:  newRunLog(opts),
	}
	g.machine = g.newMachine(StateAwaitingInput)
	level, err := g.generateFloor(1)
	if err != nil {
		return nil, err
	}
	g.player = factory.NewPlayer(g.world, level.Start.X, level.Start.Y, 1)
	g.enterFloor(1, level)
	g.say("You descend into the Caverns of Aether.")
	log.WithFields(logrus.Fields{"seed": opts.Seed, "mode": opts.Mode.String()}).Info("new run")
	return g, nil
}

// Resume carries the state of a saved run.
type Resume struct {
	World    *ecs.World
	Player   ecs.EntityID
	Level    *gamemap.Level
	Explored *spatial.Mask
	Floor    int
	Turn     int
	Rand     *rng.Stream
	Keyring  []string
	HasCore  bool
}

// FromResume rebuilds a game waiting for input from saved state.
func FromResume(opts Options, r Resume) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !r.World.Alive(r.Player) || !r.World.HasTag(r.Player, component.TagPlayer) {
		return nil, fmt.Errorf("%w: player entity %d missing", ErrOptions, r.Player)
	}
	if r.Explored != nil && (r.Explored.Width != r.Level.Width || r.Explored.Height != r.Level.Height) {
		return nil, fmt.Errorf("%w: explored mask does not match the map", ErrOptions)
	}
	g := &Game{
		opts:    opts,
		world:   r.World,
		level:   r.Level,
		vis:     system.NewVisibility(r.Level),
		player:  r.Player,
		rng:     r.Rand,
		floor:   r.Floor,
		turn:    r.Turn,
		keyring: mapset.New[string](),
		hasCore: r.HasCore,
		runLog:  newRunLog(opts),
	}
	for _, k := range r.Keyring {
		g.keyring.Put(k)
	}
	if r.Explored != nil {
		g.vis.Explored = r.Explored
	}
	g.machine = g.newMachine(StateAwaitingInput)
	g.runLog.FloorsReached = r.Floor
	g.runLog.TurnsPlayed = r.Turn
	g.updateFOV()
	return g, nil
}

func (g *Game) generateFloor(floor int) (*gamemap.Level, error) {
	level, err := generate.Floor(g.opts.Seed, floor, g.opts.Mode, g.opts.MapWidth, g.opts.MapHeight)
	if err != nil {
		return nil, fmt.Errorf("floor %d: %w", floor, err)
	}
	return level, nil
}

// enterFloor swaps in level, moves the player to its start and spawns the
// floor's monsters and items.
func (g *Game) enterFloor(floor int, level *gamemap.Level) {
	g.world.PurgeTag(component.TagMonster)
	g.world.PurgeTag(component.TagItem)
	g.world.PurgeTag(component.TagTrap)

	g.floor = floor
	g.level = level
	g.runLog.FloorsReached = max(g.runLog.FloorsReached, floor)

	pos := g.playerPos()
	pos.MoveTo(level.Start)
	pos.Floor = floor

	res := generate.Populate(level, &generate.Config{
		MapWidth:    level.Width,
		MapHeight:   level.Height,
		FloorNumber: floor,
		MaxFloors:   g.opts.MaxFloors,
		Mode:        g.opts.Mode,
		Rand:        g.rng,
	})
	factory.Populate(g.world, res, floor)

	g.vis = system.NewVisibility(level)
	g.updateFOV()
	log.WithFields(logrus.Fields{
		"floor":    floor,
		"monsters": len(res.Monsters),
		"items":    len(res.Items),
	}).Info("entered floor")
}

func (g *Game) updateFOV() {
	g.vis.UpdateFOV(g.level, g.playerPos().Point(), g.opts.FOVRadius)
}

func (g *Game) playerPos() *component.Position {
	return ecs.MustGet[*component.Position](g.world, g.player)
}

func (g *Game) playerStats() *component.Stats {
	return ecs.MustGet[*component.Stats](g.world, g.player)
}

// say appends a translated line to the player's message log.
func (g *Game) say(format string, args ...any) {
	ecs.MustGet[*component.MessageLog](g.world, g.player).Add(tr(format, args...))
}

// actorAt returns the living actor on p on the current floor, or NilEntity.
func (g *Game) actorAt(p spatial.Point) ecs.EntityID {
	for _, id := range g.world.Query(component.CPosition, component.CStats) {
		pos := ecs.MustGet[*component.Position](g.world, id)
		if pos.Floor != g.floor || pos.Point() != p {
			continue
		}
		if ecs.MustGet[*component.Stats](g.world, id).Alive() {
			return id
		}
	}
	return ecs.NilEntity
}

// taggedAt returns the first entity under tag standing on p on this floor.
func (g *Game) taggedAt(tag string, p spatial.Point) ecs.EntityID {
	for _, id := range g.world.Tagged(tag) {
		pos, ok := ecs.TryGet[*component.Position](g.world, id)
		if ok && pos.Floor == g.floor && pos.Point() == p {
			return id
		}
	}
	return ecs.NilEntity
}

// Drawable is one entity the renderer should draw.
type Drawable struct {
	ID         ecs.EntityID
	Point      spatial.Point
	Renderable *component.Renderable
}

// Drawables returns the positioned, renderable entities on the current
// floor ordered by draw order, lowest first.
func (g *Game) Drawables() []Drawable {
	var out []Drawable
	ecs.Each2(g.world, func(id ecs.EntityID, pos *component.Position, r *component.Renderable) {
		if pos.Floor == g.floor {
			out = append(out, Drawable{ID: id, Point: pos.Point(), Renderable: r})
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Renderable.Order < out[j].Renderable.Order
	})
	return out
}

func (g *Game) World() *ecs.World { return g.world }
func (g *Game) Player() ecs.EntityID { return g.player }
func (g *Game) Level() *gamemap.Level { return g.level }
func (g *Game) Visibility() *system.Visibility { return g.vis }
func (g *Game) Floor() int { return g.floor }
func (g *Game) Turn() int { return g.turn }
func (g *Game) Options() Options { return g.opts }
func (g *Game) Rand() *rng.Stream { return g.rng }
func (g *Game) HasCore() bool { return g.hasCore }
func (g *Game) PlayerStats() *component.Stats { return g.playerStats() }
func (g *Game) PlayerPosition() spatial.Point { return g.playerPos().Point() }
func (g *Game) RunSummary() RunLog { return g.runLog }

// Keyring returns the held key names, sorted.
func (g *Game) Keyring() []string {
	keys := make([]string, 0, g.keyring.Size())
	g.keyring.Each(func(k string) { keys = append(keys, k) })
	slices.Sort(keys)
	return keys
}

// Messages returns the player's message log, oldest first.
func (g *Game) Messages() []string {
	return ecs.MustGet[*component.MessageLog](g.world, g.player).Entries
}

// hasKey reports whether the key for the current floor is held.
func (g *Game) hasKey() bool {
	return g.keyring.Has(assets.KeyName(g.floor))
}
