package history

import (
	"github.com/Jin42/SabberStone/internal/game/enums"
	"github.com/Jin42/SabberStone/internal/game/tags"
)

// Default BlockStart field values.
const (
	DefaultEffectIndex = -1
	DefaultTarget      = 0
)

// alwaysVisible are the tags every FullEntity/ShowEntity carries with their
// resolved value, whether or not the entity has set them.
var alwaysVisible = [...]enums.GameTag{
	enums.TagPremium,
	enums.TagAtk,
	enums.TagHealth,
	enums.TagDurability,
	enums.TagDamage,
	enums.TagCost,
	enums.TagZone,
	enums.TagZonePosition,
	enums.TagController,
	enums.TagEntityID,
	enums.TagSilenced,
	enums.TagWindfury,
	enums.TagTaunt,
	enums.TagStealth,
	enums.TagDivineShield,
	enums.TagCharge,
	enums.TagFaction,
	enums.TagCardType,
	enums.TagRarity,
	enums.TagBattlecry,
	enums.TagDeathrattle,
	enums.TagFrozen,
	enums.TagNumAttacksThisTurn,
	enums.TagForcedPlay,
	enums.TagToBeDestroyed,
	enums.TagStartWith1Health,
	enums.TagCustomKeywordEffect,
	enums.TagExtraAttacksThisTurn,
}

// AlwaysVisible returns the tags forced into every entity snapshot.
func AlwaysVisible() []enums.GameTag {
	return append([]enums.GameTag(nil), alwaysVisible[:]...)
}

// IsAlwaysVisible reports whether tag is forced into entity snapshots.
func IsAlwaysVisible(tag enums.GameTag) bool {
	for _, t := range alwaysVisible {
		if t == tag {
			return true
		}
	}
	return false
}

// Snapshot captures an entity's id and its effective tags (card defaults
// merged with explicit values).
func Snapshot(e Entity) EntityData {
	data := EntityData{ID: e.ID()}
	for tag, v := range e.Tags().All() {
		data.Tags = append(data.Tags, TagValue{Tag: tag, Value: v})
	}
	return data
}

// NewCreateGame builds the game announcement.
func NewCreateGame(game EntityData, players ...PlayerInfo) CreateGame {
	e := CreateGame{Game: copyEntityData(game)}
	for _, p := range players {
		p.Entity = copyEntityData(p.Entity)
		e.Players = append(e.Players, p)
	}
	return e
}

// NewTagChange builds a tag change.
func NewTagChange(entityID int, tag enums.GameTag, value int) TagChange {
	return TagChange{EntityID: entityID, Tag: tag, Value: value}
}

// NewFullEntity snapshots e for observers that have not seen it yet.
func NewFullEntity(e Entity) FullEntity {
	return FullEntity{
		EntityID: e.ID(),
		CardID:   cardID(e),
		Tags:     visibleTags(e.Tags()),
	}
}

// NewShowEntity snapshots e for observers it was hidden from.
func NewShowEntity(e Entity) ShowEntity {
	return ShowEntity{
		EntityID: e.ID(),
		CardID:   cardID(e),
		Tags:     visibleTags(e.Tags()),
	}
}

// NewHideEntity builds a hide event.
func NewHideEntity(entityID int, zone enums.Zone) HideEntity {
	return HideEntity{EntityID: entityID, Zone: zone}
}

// BlockOption sets an optional BlockStart field.
type BlockOption func(*BlockStart)

// WithEffectCardID sets the card id of the effect that opened the block.
func WithEffectCardID(id string) BlockOption {
	return func(b *BlockStart) { b.EffectCardID = id }
}

// WithEffectIndex sets the effect index.
func WithEffectIndex(index int) BlockOption {
	return func(b *BlockStart) { b.EffectIndex = index }
}

// WithTarget sets the target entity id.
func WithTarget(target int) BlockOption {
	return func(b *BlockStart) { b.Target = target }
}

// NewBlockStart builds a block start. Unset options keep their defaults: no
// effect card, index -1, target 0.
func NewBlockStart(blockType enums.BlockType, source int, opts ...BlockOption) BlockStart {
	b := BlockStart{
		BlockType:   blockType,
		Source:      source,
		EffectIndex: DefaultEffectIndex,
		Target:      DefaultTarget,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// NewBlockEnd builds a block end.
func NewBlockEnd() BlockEnd {
	return BlockEnd{}
}

// visibleTags merges the explicit values with the resolved always-visible
// tags, in tag order.
func visibleTags(store *tags.Store) []TagValue {
	var (
		values  [enums.NumGameTags]int
		present [enums.NumGameTags]bool
	)
	for tag, v := range store.Overlay() {
		values[tag] = v
		present[tag] = true
	}
	for _, tag := range alwaysVisible {
		values[tag] = store.Get(tag)
		present[tag] = true
	}

	out := make([]TagValue, 0, len(alwaysVisible)+store.Len())
	for i, ok := range present {
		if ok {
			out = append(out, TagValue{Tag: enums.GameTag(i), Value: values[i]})
		}
	}
	return out
}

func cardID(e Entity) string {
	if c := e.Card(); c != nil {
		return c.ID
	}
	return ""
}

func copyEntityData(d EntityData) EntityData {
	return EntityData{ID: d.ID, Tags: append([]TagValue(nil), d.Tags...)}
}
