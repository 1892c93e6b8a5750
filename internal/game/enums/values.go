package enums

import "fmt"

// Zone is the value space of ZONE.
type Zone int

const (
	ZoneInvalid Zone = iota
	ZonePlay
	ZoneDeck
	ZoneHand
	ZoneGraveyard
	ZoneRemovedFromGame
	ZoneSetAside
	ZoneSecret
)

var zoneNames = map[int]string{
	int(ZoneInvalid):         "INVALID",
	int(ZonePlay):            "PLAY",
	int(ZoneDeck):            "DECK",
	int(ZoneHand):            "HAND",
	int(ZoneGraveyard):       "GRAVEYARD",
	int(ZoneRemovedFromGame): "REMOVEDFROMGAME",
	int(ZoneSetAside):        "SETASIDE",
	int(ZoneSecret):          "SECRET",
}

func (z Zone) String() string { return enumName(zoneNames, int(z), "Zone") }

// CardType is the value space of CARDTYPE.
type CardType int

const (
	CardTypeInvalid CardType = iota
	CardTypeGame
	CardTypePlayer
	CardTypeHero
	CardTypeMinion
	CardTypeSpell
	CardTypeEnchantment
	CardTypeWeapon
	CardTypeItem
	CardTypeToken
	CardTypeHeroPower
)

var cardTypeNames = map[int]string{
	int(CardTypeInvalid):     "INVALID",
	int(CardTypeGame):        "GAME",
	int(CardTypePlayer):      "PLAYER",
	int(CardTypeHero):        "HERO",
	int(CardTypeMinion):      "MINION",
	int(CardTypeSpell):       "SPELL",
	int(CardTypeEnchantment): "ENCHANTMENT",
	int(CardTypeWeapon):      "WEAPON",
	int(CardTypeItem):        "ITEM",
	int(CardTypeToken):       "TOKEN",
	int(CardTypeHeroPower):   "HERO_POWER",
}

func (c CardType) String() string { return enumName(cardTypeNames, int(c), "CardType") }

// Rarity is the value space of RARITY.
type Rarity int

const (
	RarityInvalid Rarity = iota
	RarityCommon
	RarityFree
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = map[int]string{
	int(RarityInvalid):   "INVALID",
	int(RarityCommon):    "COMMON",
	int(RarityFree):      "FREE",
	int(RarityRare):      "RARE",
	int(RarityEpic):      "EPIC",
	int(RarityLegendary): "LEGENDARY",
}

func (r Rarity) String() string { return enumName(rarityNames, int(r), "Rarity") }

// Faction is the value space of FACTION.
type Faction int

const (
	FactionInvalid Faction = iota
	FactionHorde
	FactionAlliance
	FactionNeutral
)

var factionNames = map[int]string{
	int(FactionInvalid):  "INVALID",
	int(FactionHorde):    "HORDE",
	int(FactionAlliance): "ALLIANCE",
	int(FactionNeutral):  "NEUTRAL",
}

func (f Faction) String() string { return enumName(factionNames, int(f), "Faction") }

// Step is the value space of STEP and NEXT_STEP.
type Step int

const (
	StepInvalid Step = iota
	StepBeginFirst
	StepBeginShuffle
	StepBeginDraw
	StepBeginMulligan
	StepMainBegin
	StepMainReady
	StepMainResource
	StepMainDraw
	StepMainStart
	StepMainAction
	StepMainCombat
	StepMainEnd
	StepMainNext
	StepFinalWrapup
	StepFinalGameover
	StepMainCleanup
	StepMainStartTriggers
)

var stepNames = map[int]string{
	int(StepInvalid):           "INVALID",
	int(StepBeginFirst):        "BEGIN_FIRST",
	int(StepBeginShuffle):      "BEGIN_SHUFFLE",
	int(StepBeginDraw):         "BEGIN_DRAW",
	int(StepBeginMulligan):     "BEGIN_MULLIGAN",
	int(StepMainBegin):         "MAIN_BEGIN",
	int(StepMainReady):         "MAIN_READY",
	int(StepMainResource):      "MAIN_RESOURCE",
	int(StepMainDraw):          "MAIN_DRAW",
	int(StepMainStart):         "MAIN_START",
	int(StepMainAction):        "MAIN_ACTION",
	int(StepMainCombat):        "MAIN_COMBAT",
	int(StepMainEnd):           "MAIN_END",
	int(StepMainNext):          "MAIN_NEXT",
	int(StepFinalWrapup):       "FINAL_WRAPUP",
	int(StepFinalGameover):     "FINAL_GAMEOVER",
	int(StepMainCleanup):       "MAIN_CLEANUP",
	int(StepMainStartTriggers): "MAIN_START_TRIGGERS",
}

func (s Step) String() string { return enumName(stepNames, int(s), "Step") }

// PlayState is the value space of PLAYSTATE.
type PlayState int

const (
	PlayStateInvalid PlayState = iota
	PlayStatePlaying
	PlayStateWinning
	PlayStateLosing
	PlayStateWon
	PlayStateLost
	PlayStateTied
	PlayStateDisconnected
	PlayStateConceded
)

var playStateNames = map[int]string{
	int(PlayStateInvalid):      "INVALID",
	int(PlayStatePlaying):      "PLAYING",
	int(PlayStateWinning):      "WINNING",
	int(PlayStateLosing):       "LOSING",
	int(PlayStateWon):          "WON",
	int(PlayStateLost):         "LOST",
	int(PlayStateTied):         "TIED",
	int(PlayStateDisconnected): "DISCONNECTED",
	int(PlayStateConceded):     "CONCEDED",
}

func (p PlayState) String() string { return enumName(playStateNames, int(p), "PlayState") }

// Mulligan is the value space of MULLIGAN_STATE.
type Mulligan int

const (
	MulliganInvalid Mulligan = iota
	MulliganInput
	MulliganDealing
	MulliganWaiting
	MulliganDone
)

var mulliganNames = map[int]string{
	int(MulliganInvalid): "INVALID",
	int(MulliganInput):   "INPUT",
	int(MulliganDealing): "DEALING",
	int(MulliganWaiting): "WAITING",
	int(MulliganDone):    "DONE",
}

func (m Mulligan) String() string { return enumName(mulliganNames, int(m), "Mulligan") }

// State is the value space of STATE (game lifecycle).
type State int

const (
	StateInvalid State = iota
	StateLoading
	StateRunning
	StateComplete
)

var stateNames = map[int]string{
	int(StateInvalid):  "INVALID",
	int(StateLoading):  "LOADING",
	int(StateRunning):  "RUNNING",
	int(StateComplete): "COMPLETE",
}

func (s State) String() string { return enumName(stateNames, int(s), "State") }

// Class is the value space of CLASS.
type Class int

const (
	ClassInvalid Class = iota
	ClassDeathKnight
	ClassDruid
	ClassHunter
	ClassMage
	ClassPaladin
	ClassPriest
	ClassRogue
	ClassShaman
	ClassWarlock
	ClassWarrior
	ClassDream
	ClassNeutral
)

var classNames = map[int]string{
	int(ClassInvalid):     "INVALID",
	int(ClassDeathKnight): "DEATHKNIGHT",
	int(ClassDruid):       "DRUID",
	int(ClassHunter):      "HUNTER",
	int(ClassMage):        "MAGE",
	int(ClassPaladin):     "PALADIN",
	int(ClassPriest):      "PRIEST",
	int(ClassRogue):       "ROGUE",
	int(ClassShaman):      "SHAMAN",
	int(ClassWarlock):     "WARLOCK",
	int(ClassWarrior):     "WARRIOR",
	int(ClassDream):       "DREAM",
	int(ClassNeutral):     "NEUTRAL",
}

func (c Class) String() string { return enumName(classNames, int(c), "Class") }

// Race is the value space of CARDRACE. The protocol numbering is sparse.
type Race int

const (
	RaceInvalid    Race = 0
	RaceMurloc     Race = 14
	RaceDemon      Race = 15
	RaceMechanical Race = 17
	RaceElemental  Race = 18
	RaceBeast      Race = 20
	RaceTotem      Race = 21
	RacePirate     Race = 23
	RaceDragon     Race = 24
	RaceAll        Race = 26
)

var raceNames = map[int]string{
	int(RaceInvalid):    "INVALID",
	int(RaceMurloc):     "MURLOC",
	int(RaceDemon):      "DEMON",
	int(RaceMechanical): "MECHANICAL",
	int(RaceElemental):  "ELEMENTAL",
	int(RaceBeast):      "PET",
	int(RaceTotem):      "TOTEM",
	int(RacePirate):     "PIRATE",
	int(RaceDragon):     "DRAGON",
	int(RaceAll):        "ALL",
}

func (r Race) String() string { return enumName(raceNames, int(r), "Race") }

// BlockType classifies a BLOCK_START bracket.
type BlockType int

const (
	BlockTypeInvalid    BlockType = 0
	BlockTypeAttack     BlockType = 1
	BlockTypeJoust      BlockType = 2
	BlockTypePower      BlockType = 3
	BlockTypeTrigger    BlockType = 5
	BlockTypeDeaths     BlockType = 6
	BlockTypePlay       BlockType = 7
	BlockTypeFatigue    BlockType = 8
	BlockTypeRitual     BlockType = 9
	BlockTypeRevealCard BlockType = 10
	BlockTypeGameReset  BlockType = 11
	BlockTypeMoveMinion BlockType = 12
)

var blockTypeNames = map[int]string{
	int(BlockTypeInvalid):    "INVALID",
	int(BlockTypeAttack):     "ATTACK",
	int(BlockTypeJoust):      "JOUST",
	int(BlockTypePower):      "POWER",
	int(BlockTypeTrigger):    "TRIGGER",
	int(BlockTypeDeaths):     "DEATHS",
	int(BlockTypePlay):       "PLAY",
	int(BlockTypeFatigue):    "FATIGUE",
	int(BlockTypeRitual):     "RITUAL",
	int(BlockTypeRevealCard): "REVEAL_CARD",
	int(BlockTypeGameReset):  "GAME_RESET",
	int(BlockTypeMoveMinion): "MOVE_MINION",
}

func (b BlockType) String() string { return enumName(blockTypeNames, int(b), "BlockType") }

func enumName(names map[int]string, v int, typ string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}
