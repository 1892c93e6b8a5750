// Package history models the observable state changes of a game as an ordered
// stream of power-history events and records them.
package history

import (
	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/enums"
	"github.com/Jin42/SabberStone/internal/game/tags"
)

// Kind identifies an event variant.
type Kind int

const (
	KindCreateGame Kind = iota + 1
	KindTagChange
	KindFullEntity
	KindShowEntity
	KindHideEntity
	KindBlockStart
	KindBlockEnd
)

func (k Kind) String() string {
	switch k {
	case KindCreateGame:
		return "CREATE_GAME"
	case KindTagChange:
		return "TAG_CHANGE"
	case KindFullEntity:
		return "FULL_ENTITY"
	case KindShowEntity:
		return "SHOW_ENTITY"
	case KindHideEntity:
		return "HIDE_ENTITY"
	case KindBlockStart:
		return "BLOCK_START"
	case KindBlockEnd:
		return "BLOCK_END"
	default:
		return "UNKNOWN"
	}
}

// Event is one of CreateGame, TagChange, FullEntity, ShowEntity, HideEntity,
// BlockStart or BlockEnd. The set is closed.
type Event interface {
	Kind() Kind
	String() string
	event()
}

// Entity is what the builders read from: anything with an id, a card and a
// tag store.
type Entity interface {
	ID() int
	Card() *cards.Card
	Tags() *tags.Store
}

// TagValue is one tag/value pair captured in an event.
type TagValue struct {
	Tag   enums.GameTag
	Value int
}

// EntityData is an entity id with a captured tag map.
type EntityData struct {
	ID   int
	Tags []TagValue
}

// AccountID is the split 128-bit account identifier of a player.
type AccountID struct {
	Hi uint64
	Lo uint64
}

// PlayerInfo describes one player in CreateGame.
type PlayerInfo struct {
	PlayerID int
	Account  AccountID
	CardBack int
	Entity   EntityData
}

// CreateGame announces the game entity and the players.
type CreateGame struct {
	Game    EntityData
	Players []PlayerInfo
}

// TagChange reports a new value for one tag of one entity.
type TagChange struct {
	EntityID int
	Tag      enums.GameTag
	Value    int
}

// FullEntity introduces an entity to observers.
type FullEntity struct {
	EntityID int
	CardID   string
	Tags     []TagValue
}

// ShowEntity reveals a previously hidden entity.
type ShowEntity struct {
	EntityID int
	CardID   string
	Tags     []TagValue
}

// HideEntity conceals an entity that moves into a hidden zone.
type HideEntity struct {
	EntityID int
	Zone     enums.Zone
}

// BlockStart opens a bracket of related actions.
type BlockStart struct {
	BlockType    enums.BlockType
	Source       int
	EffectCardID string
	EffectIndex  int
	Target       int
}

// BlockEnd closes the innermost open block.
type BlockEnd struct{}

func (CreateGame) Kind() Kind { return KindCreateGame }
func (TagChange) Kind() Kind  { return KindTagChange }
func (FullEntity) Kind() Kind { return KindFullEntity }
func (ShowEntity) Kind() Kind { return KindShowEntity }
func (HideEntity) Kind() Kind { return KindHideEntity }
func (BlockStart) Kind() Kind { return KindBlockStart }
func (BlockEnd) Kind() Kind   { return KindBlockEnd }

func (e CreateGame) String() string { return Render(e) }
func (e TagChange) String() string  { return Render(e) }
func (e FullEntity) String() string { return Render(e) }
func (e ShowEntity) String() string { return Render(e) }
func (e HideEntity) String() string { return Render(e) }
func (e BlockStart) String() string { return Render(e) }
func (e BlockEnd) String() string   { return Render(e) }

func (CreateGame) event() {}
func (TagChange) event()  {}
func (FullEntity) event() {}
func (ShowEntity) event() {}
func (HideEntity) event() {}
func (BlockStart) event() {}
func (BlockEnd) event()   {}

// TagMap returns the captured tags as a map.
func (e FullEntity) TagMap() map[enums.GameTag]int { return tagMap(e.Tags) }

// TagMap returns the captured tags as a map.
func (e ShowEntity) TagMap() map[enums.GameTag]int { return tagMap(e.Tags) }

func tagMap(values []TagValue) map[enums.GameTag]int {
	m := make(map[enums.GameTag]int, len(values))
	for _, tv := range values {
		m[tv.Tag] = tv.Value
	}
	return m
}
