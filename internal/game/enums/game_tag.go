// Package enums defines the tag universe and the value enumerations used by
// the client protocol.
package enums

import "fmt"

// GameTag identifies an entity property. Values are dense ordinals so tag
// stores can index fixed-size arrays; Wire returns the protocol tag id.
// Constants are declared in ascending wire id order, so ordinal order and
// protocol order agree.
type GameTag uint8

const (
	TagPremium GameTag = iota
	TagPlayState
	TagStep
	TagTurn
	TagCurrentPlayer
	TagFirstPlayer
	TagResourcesUsed
	TagResources
	TagHeroEntity
	TagMaxHandSize
	TagStartHandSize
	TagPlayerID
	TagTeamID
	TagDefending
	TagAttacking
	TagExhausted
	TagDamage
	TagHealth
	TagAtk
	TagCost
	TagZone
	TagController
	TagOwner
	TagEntityID
	TagMaxResources
	TagCardSet
	TagDurability
	TagSilenced
	TagWindfury
	TagTaunt
	TagStealth
	TagSpellPower
	TagDivineShield
	TagCharge
	TagNextStep
	TagClass
	TagCardRace
	TagFaction
	TagCardType
	TagRarity
	TagState
	TagFreeze
	TagEnraged
	TagDeathrattle
	TagBattlecry
	TagSecret
	TagCombo
	TagFrozen
	TagJustPlayed
	TagZonePosition
	TagCardTarget
	TagNumTurnsInPlay
	TagNumAttacksThisTurn
	TagMulliganState
	TagForcedPlay
	TagToBeDestroyed
	TagPoisonous
	TagCustomKeywordEffect
	TagStartWith1Health
	TagNumCardsDrawnThisTurn
	TagExtraAttacksThisTurn
	TagLastKnownCostInHand
	TagRush
	TagLifesteal

	// NumGameTags is the size of the tag universe.
	NumGameTags int = iota
)

type tagInfo struct {
	name string
	wire int32
}

var gameTags = [NumGameTags]tagInfo{
	TagPremium:               {"PREMIUM", 12},
	TagPlayState:             {"PLAYSTATE", 17},
	TagStep:                  {"STEP", 19},
	TagTurn:                  {"TURN", 20},
	TagCurrentPlayer:         {"CURRENT_PLAYER", 23},
	TagFirstPlayer:           {"FIRST_PLAYER", 24},
	TagResourcesUsed:         {"RESOURCES_USED", 25},
	TagResources:             {"RESOURCES", 26},
	TagHeroEntity:            {"HERO_ENTITY", 27},
	TagMaxHandSize:           {"MAXHANDSIZE", 28},
	TagStartHandSize:         {"STARTHANDSIZE", 29},
	TagPlayerID:              {"PLAYER_ID", 30},
	TagTeamID:                {"TEAM_ID", 31},
	TagDefending:             {"DEFENDING", 36},
	TagAttacking:             {"ATTACKING", 38},
	TagExhausted:             {"EXHAUSTED", 43},
	TagDamage:                {"DAMAGE", 44},
	TagHealth:                {"HEALTH", 45},
	TagAtk:                   {"ATK", 47},
	TagCost:                  {"COST", 48},
	TagZone:                  {"ZONE", 49},
	TagController:            {"CONTROLLER", 50},
	TagOwner:                 {"OWNER", 51},
	TagEntityID:              {"ENTITY_ID", 53},
	TagMaxResources:          {"MAXRESOURCES", 176},
	TagCardSet:               {"CARD_SET", 183},
	TagDurability:            {"DURABILITY", 187},
	TagSilenced:              {"SILENCED", 188},
	TagWindfury:              {"WINDFURY", 189},
	TagTaunt:                 {"TAUNT", 190},
	TagStealth:               {"STEALTH", 191},
	TagSpellPower:            {"SPELLPOWER", 192},
	TagDivineShield:          {"DIVINE_SHIELD", 194},
	TagCharge:                {"CHARGE", 197},
	TagNextStep:              {"NEXT_STEP", 198},
	TagClass:                 {"CLASS", 199},
	TagCardRace:              {"CARDRACE", 200},
	TagFaction:               {"FACTION", 201},
	TagCardType:              {"CARDTYPE", 202},
	TagRarity:                {"RARITY", 203},
	TagState:                 {"STATE", 204},
	TagFreeze:                {"FREEZE", 208},
	TagEnraged:               {"ENRAGED", 212},
	TagDeathrattle:           {"DEATHRATTLE", 217},
	TagBattlecry:             {"BATTLECRY", 218},
	TagSecret:                {"SECRET", 219},
	TagCombo:                 {"COMBO", 220},
	TagFrozen:                {"FROZEN", 260},
	TagJustPlayed:            {"JUST_PLAYED", 261},
	TagZonePosition:          {"ZONE_POSITION", 263},
	TagCardTarget:            {"CARD_TARGET", 267},
	TagNumTurnsInPlay:        {"NUM_TURNS_IN_PLAY", 271},
	TagNumAttacksThisTurn:    {"NUM_ATTACKS_THIS_TURN", 297},
	TagMulliganState:         {"MULLIGAN_STATE", 305},
	TagForcedPlay:            {"FORCED_PLAY", 352},
	TagToBeDestroyed:         {"TO_BE_DESTROYED", 360},
	TagPoisonous:             {"POISONOUS", 363},
	TagCustomKeywordEffect:   {"CUSTOM_KEYWORD_EFFECT", 376},
	TagStartWith1Health:      {"START_WITH_1_HEALTH", 380},
	TagNumCardsDrawnThisTurn: {"NUM_CARDS_DRAWN_THIS_TURN", 399},
	TagExtraAttacksThisTurn:  {"EXTRA_ATTACKS_THIS_TURN", 444},
	TagLastKnownCostInHand:   {"TAG_LAST_KNOWN_COST_IN_HAND", 466},
	TagRush:                  {"RUSH", 791},
	TagLifesteal:             {"LIFESTEAL", 1199},
}

var (
	tagsByName = make(map[string]GameTag, NumGameTags)
	tagsByWire = make(map[int32]GameTag, NumGameTags)
)

func init() {
	for i, info := range gameTags {
		tagsByName[info.name] = GameTag(i)
		tagsByWire[info.wire] = GameTag(i)
	}
}

// Valid reports whether t is inside the tag universe.
func (t GameTag) Valid() bool {
	return int(t) < NumGameTags
}

// String returns the protocol name of the tag.
func (t GameTag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("GameTag(%d)", uint8(t))
	}
	return gameTags[t].name
}

// Wire returns the protocol tag id.
func (t GameTag) Wire() int32 {
	if !t.Valid() {
		return 0
	}
	return gameTags[t].wire
}

// ParseGameTag resolves a protocol tag name such as "ATK".
func ParseGameTag(name string) (GameTag, error) {
	tag, ok := tagsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown game tag %q", name)
	}
	return tag, nil
}

// GameTagFromWire resolves a protocol tag id.
func GameTagFromWire(id int32) (GameTag, bool) {
	tag, ok := tagsByWire[id]
	return tag, ok
}

// AllGameTags returns every tag in ordinal order.
func AllGameTags() []GameTag {
	tags := make([]GameTag, NumGameTags)
	for i := range tags {
		tags[i] = GameTag(i)
	}
	return tags
}
