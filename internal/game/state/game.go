package state

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/collections"
	"github.com/Jin42/SabberStone/internal/game/enums"
	"github.com/Jin42/SabberStone/internal/game/history"
	"github.com/Jin42/SabberStone/internal/game/tags"
)

// GameEntityID is the id of the game entity. Player entities follow it.
const GameEntityID = 1

// Option configures a Game.
type Option func(*settings)

type settings struct {
	threshold int
	recorder  []history.RecorderOption
}

// WithIndexThreshold sets the size above which zone and entity sets build a
// hash index.
func WithIndexThreshold(n int) Option {
	return func(s *settings) { s.threshold = n }
}

// WithRecorderOptions passes options to the game's history recorder.
func WithRecorderOptions(opts ...history.RecorderOption) Option {
	return func(s *settings) { s.recorder = append(s.recorder, opts...) }
}

type zoneKey struct {
	controller int
	zone       enums.Zone
}

// Game is the state of one game: its entities, their zones and the power
// history produced by observable changes. A Game is confined to one
// goroutine; Clone it to explore in parallel.
type Game struct {
	logger    *zap.Logger
	id        string
	threshold int
	byID      collections.Comparer[*Playable]

	game     *Playable
	players  []*Controller
	entities *collections.OrderedSet[*Playable]
	lookup   map[int]*Playable
	zones    map[zoneKey]*collections.OrderedSet[*Playable]
	nextID   int

	history *history.Recorder
	blocks  blockStack
}

// NewGame creates the game entity from gameCard (cards.GameCard when nil) and
// one player entity per ControllerSpec, then records CreateGame.
func NewGame(logger *zap.Logger, gameCard *cards.Card, players []ControllerSpec, opts ...Option) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if gameCard == nil {
		gameCard = cards.GameCard
	}

	s := settings{threshold: collections.DefaultIndexThreshold}
	for _, opt := range opts {
		opt(&s)
	}

	g := &Game{
		logger:    logger,
		id:        uuid.New().String(),
		threshold: s.threshold,
		byID:      collections.ByKey(func(p *Playable) int { return p.id }),
		lookup:    make(map[int]*Playable),
		zones:     make(map[zoneKey]*collections.OrderedSet[*Playable]),
		nextID:    GameEntityID,
		history:   history.NewRecorder(logger, s.recorder...),
	}
	g.entities = collections.NewWithComparer(g.byID, collections.WithIndexThreshold(g.threshold))

	g.game = g.create(gameCard)
	g.game.store.Set(enums.TagZone, int(enums.ZonePlay))
	g.game.announced = true

	infos := make([]history.PlayerInfo, 0, len(players))
	for i, cs := range players {
		p := g.create(cards.PlayerCard)
		c := &Controller{
			Playable: p,
			PlayerID: i + 1,
			Name:     cs.Name,
			Account:  cs.Account,
			CardBack: cs.CardBack,
		}
		p.store.Set(enums.TagPlayerID, c.PlayerID)
		p.store.Set(enums.TagController, c.PlayerID)
		p.store.Set(enums.TagZone, int(enums.ZonePlay))
		p.announced = true
		g.players = append(g.players, c)
		infos = append(infos, c.info())
	}

	g.history.Record(history.NewCreateGame(history.Snapshot(g.game), infos...))

	g.logger.Info("created game",
		zap.String("game_id", g.id),
		zap.String("session_id", g.history.ID()),
		zap.Int("players", len(g.players)),
	)
	return g, nil
}

// ID returns the game id.
func (g *Game) ID() string { return g.id }

// GameEntity returns the game entity.
func (g *Game) GameEntity() *Playable { return g.game }

// Players returns the player entities in seat order.
func (g *Game) Players() []*Controller {
	return append([]*Controller(nil), g.players...)
}

// Player returns the player with the given 1-based player id.
func (g *Game) Player(playerID int) (*Controller, error) {
	if playerID < 1 || playerID > len(g.players) {
		return nil, fmt.Errorf("%w: player %d", ErrUnknownController, playerID)
	}
	return g.players[playerID-1], nil
}

// Entity returns the entity with the given id.
func (g *Game) Entity(id int) (*Playable, bool) {
	p, ok := g.lookup[id]
	return p, ok
}

// Entities iterates all entities in creation order over a snapshot.
func (g *Game) Entities() iter.Seq2[int, *Playable] {
	return g.entities.All()
}

// Len returns the number of entities, including the game and player entities.
func (g *Game) Len() int { return g.entities.Len() }

// Zone returns a read-only snapshot of one player's zone.
func (g *Game) Zone(c *Controller, zone enums.Zone) *collections.Frozen[*Playable] {
	return g.zone(c.PlayerID, zone).Freeze()
}

// History returns the game's power history.
func (g *Game) History() *history.Recorder { return g.history }

// AddEntity creates an entity from card for controller c and places it at the
// end of zone. Entities created in a visible zone are announced with
// FullEntity.
func (g *Game) AddEntity(card *cards.Card, c *Controller, zone enums.Zone) (*Playable, error) {
	if card == nil {
		return nil, fmt.Errorf("%w: nil card", collections.ErrInvalidArgument)
	}
	if err := g.ownsController(c); err != nil {
		return nil, err
	}
	if !validZone(zone) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidZone, zone)
	}

	p := g.create(card)
	p.store.Set(enums.TagController, c.PlayerID)
	p.store.Set(enums.TagZone, int(zone))

	set := g.zone(c.PlayerID, zone)
	if _, err := set.Insert(p); err != nil {
		return nil, fmt.Errorf("failed to add %s to %s: %w", p, zone, err)
	}
	if ordered(zone) {
		p.store.Set(enums.TagZonePosition, set.Len())
	}
	if visible(zone) {
		g.announce(p)
	}

	g.logger.Debug("added entity",
		zap.String("game_id", g.id),
		zap.Int("entity_id", p.id),
		zap.String("card_id", card.ID),
		zap.Int("controller", c.PlayerID),
		zap.Stringer("zone", zone),
	)
	return p, nil
}

// SetTag writes tag on p and records a TagChange when the resolved value
// changes and observers can see p. Zone membership tags are rejected with
// ErrZoneTag.
func (g *Game) SetTag(p *Playable, tag enums.GameTag, value int) error {
	if err := g.owns(p); err != nil {
		return err
	}
	if !tag.Valid() {
		return fmt.Errorf("%w: tag %s", collections.ErrInvalidArgument, tag)
	}
	if zoneTag(tag) {
		return fmt.Errorf("%w: %s on %s", ErrZoneTag, tag, p)
	}
	g.write(p, tag, value, g.observable(p))
	return nil
}

// Reset reverts the volatile tags of p to its card and records the values
// that changed.
func (g *Game) Reset(p *Playable) error {
	if err := g.owns(p); err != nil {
		return err
	}
	volatile := tags.Volatile()
	before := make([]int, len(volatile))
	for i, tag := range volatile {
		before[i] = p.store.Get(tag)
	}
	p.store.Reset()
	if !g.observable(p) {
		return nil
	}
	for i, tag := range volatile {
		if v := p.store.Get(tag); v != before[i] {
			g.history.Record(history.NewTagChange(p.id, tag, v))
		}
	}
	return nil
}

// Move places p at the end of another zone of its controller. Entering a
// visible zone announces p (FullEntity the first time, ShowEntity after);
// leaving one for a hidden zone records HideEntity. Positions in the zone p
// left are renumbered.
func (g *Game) Move(p *Playable, to enums.Zone) error {
	if err := g.owns(p); err != nil {
		return err
	}
	if g.isCore(p) {
		return fmt.Errorf("%w: %s cannot change zone", ErrInvalidZone, p)
	}
	if !validZone(to) {
		return fmt.Errorf("%w: %s", ErrInvalidZone, to)
	}
	from := p.Zone()
	if from == to {
		return nil
	}

	src := g.zone(p.ControllerID(), from)
	vacated := src.IndexOf(p)
	src.Remove(p)
	dst := g.zone(p.ControllerID(), to)
	if _, err := dst.Insert(p); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", p, to, err)
	}
	pos := 0
	if ordered(to) {
		pos = dst.Len()
	}

	switch fromVisible, toVisible := visible(from) && p.announced, visible(to); {
	case fromVisible && toVisible:
		g.place(p, to, pos, true)
	case toVisible:
		g.place(p, to, pos, false)
		g.announce(p)
	case fromVisible:
		g.history.Record(history.NewHideEntity(p.id, to))
		g.place(p, to, pos, false)
	default:
		g.place(p, to, pos, false)
	}

	if ordered(from) && vacated >= 0 {
		g.renumber(src, vacated)
	}

	g.logger.Debug("moved entity",
		zap.String("game_id", g.id),
		zap.Int("entity_id", p.id),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	return nil
}

// Reveal shows p to observers without moving it.
func (g *Game) Reveal(p *Playable) error {
	if err := g.owns(p); err != nil {
		return err
	}
	g.announce(p)
	return nil
}

// Hide conceals p from observers in its current zone.
func (g *Game) Hide(p *Playable) error {
	if err := g.owns(p); err != nil {
		return err
	}
	g.history.Record(history.NewHideEntity(p.id, p.Zone()))
	return nil
}

// BeginBlock opens a block sourced by source.
func (g *Game) BeginBlock(blockType enums.BlockType, source *Playable, opts ...history.BlockOption) error {
	if err := g.owns(source); err != nil {
		return err
	}
	b := history.NewBlockStart(blockType, source.id, opts...)
	g.blocks.push(b)
	g.history.Record(b)
	return nil
}

// EndBlock closes the innermost open block.
func (g *Game) EndBlock() error {
	if _, err := g.blocks.pop(); err != nil {
		return err
	}
	g.history.Record(history.NewBlockEnd())
	return nil
}

// Block runs fn inside a block. The block is closed even when fn fails.
func (g *Game) Block(blockType enums.BlockType, source *Playable, fn func() error, opts ...history.BlockOption) error {
	if err := g.BeginBlock(blockType, source, opts...); err != nil {
		return err
	}
	return errors.Join(fn(), g.EndBlock())
}

// OpenBlocks returns the blocks not yet closed, innermost last.
func (g *Game) OpenBlocks() []history.BlockStart { return g.blocks.list() }

// CurrentBlock returns the innermost open block.
func (g *Game) CurrentBlock() (history.BlockStart, bool) { return g.blocks.peek() }

// Clone returns an independent copy of the game: tag overlays, zones, open
// blocks and history are copied while cards stay shared. The clone gets new
// game and session ids.
func (g *Game) Clone() *Game {
	c := &Game{
		logger:    g.logger,
		id:        uuid.New().String(),
		threshold: g.threshold,
		byID:      g.byID,
		lookup:    make(map[int]*Playable, len(g.lookup)),
		zones:     make(map[zoneKey]*collections.OrderedSet[*Playable], len(g.zones)),
		nextID:    g.nextID,
		history:   g.history.Clone(),
		blocks:    blockStack{items: g.blocks.list()},
	}
	c.entities = collections.NewWithComparer(c.byID,
		collections.WithIndexThreshold(c.threshold),
		collections.WithCapacity(g.entities.Len()),
	)
	for _, p := range g.entities.All() {
		c.register(p.clone())
	}

	c.game = c.lookup[g.game.id]
	for _, pl := range g.players {
		cp := *pl
		cp.Playable = c.lookup[pl.id]
		c.players = append(c.players, &cp)
	}
	for key, set := range g.zones {
		items := make([]*Playable, 0, set.Len())
		for _, p := range set.All() {
			items = append(items, c.lookup[p.id])
		}
		c.zones[key] = collections.NewFrozen(items, c.byID, collections.WithIndexThreshold(c.threshold)).Thaw()
	}

	g.logger.Debug("cloned game",
		zap.String("game_id", g.id),
		zap.String("clone_id", c.id),
		zap.Int("entities", c.entities.Len()),
	)
	return c
}

func (g *Game) create(card *cards.Card) *Playable {
	p := newPlayable(g.nextID, card)
	g.nextID++
	p.store.Set(enums.TagEntityID, p.id)
	g.register(p)
	return p
}

func (g *Game) register(p *Playable) {
	// ids are unique by construction
	_, _ = g.entities.Insert(p)
	g.lookup[p.id] = p
}

func (g *Game) zone(controller int, zone enums.Zone) *collections.OrderedSet[*Playable] {
	key := zoneKey{controller: controller, zone: zone}
	set, ok := g.zones[key]
	if !ok {
		set = collections.NewWithComparer(g.byID, collections.WithIndexThreshold(g.threshold))
		g.zones[key] = set
	}
	return set
}

func (g *Game) owns(p *Playable) error {
	if p == nil {
		return fmt.Errorf("%w: nil entity", collections.ErrInvalidArgument)
	}
	if g.lookup[p.id] != p {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, p)
	}
	return nil
}

func (g *Game) ownsController(c *Controller) error {
	if c == nil {
		return fmt.Errorf("%w: nil controller", collections.ErrInvalidArgument)
	}
	if c.PlayerID < 1 || c.PlayerID > len(g.players) || g.players[c.PlayerID-1] != c {
		return fmt.Errorf("%w: player %d", ErrUnknownController, c.PlayerID)
	}
	return nil
}

// isCore reports whether p is the game entity or a player entity.
func (g *Game) isCore(p *Playable) bool {
	return p.id <= GameEntityID+len(g.players)
}

func (g *Game) observable(p *Playable) bool {
	return p.announced && visible(p.Zone())
}

// announce introduces p with FullEntity, or ShowEntity once introduced. p
// stays unannounced while the recorder is stopped.
func (g *Game) announce(p *Playable) {
	if p.announced {
		g.history.Record(history.NewShowEntity(p))
		return
	}
	if !g.history.Enabled() {
		return
	}
	p.announced = true
	g.history.Record(history.NewFullEntity(p))
}

func (g *Game) write(p *Playable, tag enums.GameTag, value int, record bool) {
	old := p.store.Get(tag)
	p.store.Set(tag, value)
	if record && old != value {
		g.history.Record(history.NewTagChange(p.id, tag, value))
	}
}

// place writes ZONE and ZONE_POSITION. Position 0 clears the explicit value.
func (g *Game) place(p *Playable, zone enums.Zone, pos int, record bool) {
	g.write(p, enums.TagZone, int(zone), record)
	if pos > 0 {
		g.write(p, enums.TagZonePosition, pos, record)
		return
	}
	old := p.Position()
	p.store.Delete(enums.TagZonePosition)
	if record && old != p.Position() {
		g.history.Record(history.NewTagChange(p.id, enums.TagZonePosition, p.Position()))
	}
}

// renumber rewrites ZONE_POSITION from index start to the end of set.
func (g *Game) renumber(set *collections.OrderedSet[*Playable], start int) {
	for i := start; i < set.Len(); i++ {
		q, err := set.At(i)
		if err != nil {
			return
		}
		g.write(q, enums.TagZonePosition, i+1, g.observable(q))
	}
}

func zoneTag(tag enums.GameTag) bool {
	switch tag {
	case enums.TagZone, enums.TagZonePosition, enums.TagController:
		return true
	}
	return false
}

func validZone(z enums.Zone) bool {
	return z > enums.ZoneInvalid && z <= enums.ZoneSecret
}

// visible reports whether observers see entities in zone.
func visible(z enums.Zone) bool {
	switch z {
	case enums.ZonePlay, enums.ZoneHand, enums.ZoneGraveyard, enums.ZoneRemovedFromGame, enums.ZoneSecret:
		return true
	default:
		return false
	}
}

// ordered reports whether zone keeps ZONE_POSITION.
func ordered(z enums.Zone) bool {
	return z == enums.ZoneHand || z == enums.ZonePlay
}
