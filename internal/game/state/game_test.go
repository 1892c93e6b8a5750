package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/collections"
	"github.com/Jin42/SabberStone/internal/game/enums"
	"github.com/Jin42/SabberStone/internal/game/history"
)

func yeti() *cards.Card {
	return cards.New("CS2_182", "Chillwind Yeti", map[enums.GameTag]int{
		enums.TagCardType: int(enums.CardTypeMinion),
		enums.TagCost:     4,
		enums.TagAtk:      4,
		enums.TagHealth:   5,
	})
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *Controller, *Controller) {
	t.Helper()
	g, err := NewGame(zaptest.NewLogger(t), nil, []ControllerSpec{
		{Name: "Garrosh", Account: history.AccountID{Hi: 1, Lo: 10}, CardBack: 2},
		{Name: "Jaina", Account: history.AccountID{Hi: 1, Lo: 11}, CardBack: 5},
	}, opts...)
	require.NoError(t, err)
	players := g.Players()
	require.Len(t, players, 2)
	return g, players[0], players[1]
}

func kinds(events []history.Event) []history.Kind {
	out := make([]history.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind()
	}
	return out
}

func TestNewGameRecordsCreateGame(t *testing.T) {
	g, p1, p2 := newTestGame(t)

	assert.NotEmpty(t, g.ID())
	assert.Equal(t, GameEntityID, g.GameEntity().ID())
	assert.Equal(t, 2, p1.ID())
	assert.Equal(t, 3, p2.ID())
	assert.Equal(t, 2, p2.PlayerID)
	assert.Equal(t, 3, g.Len())

	full := g.History().Full()
	require.Len(t, full, 1)
	created, ok := full[0].(history.CreateGame)
	require.True(t, ok)
	assert.Equal(t, GameEntityID, created.Game.ID)
	require.Len(t, created.Players, 2)
	assert.Equal(t, 1, created.Players[0].PlayerID)
	assert.Equal(t, uint64(11), created.Players[1].Account.Lo)
	assert.Equal(t, 5, created.Players[1].CardBack)
	assert.Equal(t, 3, created.Players[1].Entity.ID)
}

func TestNewGameRequiresPlayers(t *testing.T) {
	_, err := NewGame(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestAddEntityVisibleZone(t *testing.T) {
	g, p1, _ := newTestGame(t)
	g.History().ClearLast()

	a, err := g.AddEntity(yeti(), p1, enums.ZoneHand)
	require.NoError(t, err)
	b, err := g.AddEntity(yeti(), p1, enums.ZoneHand)
	require.NoError(t, err)

	assert.Equal(t, 4, a.ID())
	assert.Equal(t, 1, a.Position())
	assert.Equal(t, 2, b.Position())
	assert.Equal(t, 1, a.ControllerID())
	assert.True(t, a.Announced())

	last := g.History().Last()
	require.Equal(t, []history.Kind{history.KindFullEntity, history.KindFullEntity}, kinds(last))
	values := last[0].(history.FullEntity).TagMap()
	assert.Equal(t, int(enums.ZoneHand), values[enums.TagZone])
	assert.Equal(t, 1, values[enums.TagController])
	assert.Equal(t, 4, values[enums.TagEntityID])
	assert.Equal(t, 1, values[enums.TagZonePosition])

	hand := g.Zone(p1, enums.ZoneHand)
	require.Equal(t, 2, hand.Len())
	assert.Equal(t, 0, hand.IndexOf(a))
	assert.Equal(t, 1, hand.IndexOf(b))
}

func TestAddEntityHiddenZone(t *testing.T) {
	g, _, p2 := newTestGame(t)
	g.History().ClearLast()

	d, err := g.AddEntity(yeti(), p2, enums.ZoneDeck)
	require.NoError(t, err)
	assert.False(t, d.Announced())
	assert.Equal(t, 0, d.Position())
	assert.Empty(t, g.History().Last())

	require.NoError(t, g.SetTag(d, enums.TagCost, 1))
	assert.Empty(t, g.History().Last(), "hidden entities produce no tag changes")
}

func TestAddEntityErrors(t *testing.T) {
	g, p1, _ := newTestGame(t)
	_, q1, _ := newTestGame(t)

	_, err := g.AddEntity(nil, p1, enums.ZoneHand)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	_, err = g.AddEntity(yeti(), q1, enums.ZoneHand)
	assert.ErrorIs(t, err, ErrUnknownController)

	_, err = g.AddEntity(yeti(), p1, enums.ZoneInvalid)
	assert.ErrorIs(t, err, ErrInvalidZone)
}

func TestSetTagRecordsChanges(t *testing.T) {
	g, p1, _ := newTestGame(t)
	m, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)
	g.History().ClearLast()

	require.NoError(t, g.SetTag(m, enums.TagAtk, 4))
	assert.Empty(t, g.History().Last(), "unchanged value")

	require.NoError(t, g.SetTag(m, enums.TagAtk, 6))
	require.NoError(t, g.SetTag(m, enums.TagTaunt, 1))
	assert.Equal(t,
		"TAG_CHANGE Entity=[4] tag=ATK value=6\nTAG_CHANGE Entity=[4] tag=TAUNT value=1\n",
		g.History().Render(false))

	err = g.SetTag(m, enums.GameTag(enums.NumGameTags), 1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestSetTagRejectsForeignEntity(t *testing.T) {
	g, _, _ := newTestGame(t)
	other, q1, _ := newTestGame(t)
	foreign, err := other.AddEntity(yeti(), q1, enums.ZonePlay)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetTag(foreign, enums.TagAtk, 1), ErrUnknownEntity)
	assert.ErrorIs(t, g.SetTag(nil, enums.TagAtk, 1), collections.ErrInvalidArgument)
}

func TestSetTagRejectsZoneTags(t *testing.T) {
	g, p1, p2 := newTestGame(t)
	m, err := g.AddEntity(yeti(), p1, enums.ZoneDeck)
	require.NoError(t, err)

	for _, tag := range []enums.GameTag{enums.TagZone, enums.TagZonePosition, enums.TagController} {
		err := g.SetTag(m, tag, int(enums.ZonePlay))
		assert.ErrorIs(t, err, ErrZoneTag, tag.String())
	}
	assert.Equal(t, enums.ZoneDeck, m.Zone())
	assert.Equal(t, p1.PlayerID, m.ControllerID())

	require.NoError(t, g.Move(m, enums.ZoneHand))
	assert.False(t, g.Zone(p1, enums.ZoneDeck).Contains(m))
	assert.False(t, g.Zone(p1, enums.ZonePlay).Contains(m))
	assert.True(t, g.Zone(p1, enums.ZoneHand).Contains(m))
	assert.False(t, g.Zone(p2, enums.ZonePlay).Contains(m))
}

func TestResetRecordsVolatileChanges(t *testing.T) {
	g, p1, _ := newTestGame(t)
	m, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)
	require.NoError(t, g.SetTag(m, enums.TagAtk, 6))
	require.NoError(t, g.SetTag(m, enums.TagExhausted, 1))
	g.History().ClearLast()

	require.NoError(t, g.Reset(m))

	assert.Equal(t, "TAG_CHANGE Entity=[4] tag=ATK value=4\n", g.History().Render(false))
	assert.Equal(t, 1, m.Get(enums.TagExhausted))
}

func TestMoveBetweenVisibleZones(t *testing.T) {
	g, p1, _ := newTestGame(t)
	a, err := g.AddEntity(yeti(), p1, enums.ZoneHand)
	require.NoError(t, err)
	b, err := g.AddEntity(yeti(), p1, enums.ZoneHand)
	require.NoError(t, err)
	g.History().ClearLast()

	require.NoError(t, g.Move(a, enums.ZonePlay))

	assert.Equal(t, enums.ZonePlay, a.Zone())
	assert.Equal(t, 1, a.Position())
	assert.Equal(t, 1, b.Position())
	assert.Equal(t,
		"TAG_CHANGE Entity=[4] tag=ZONE value=PLAY\nTAG_CHANGE Entity=[5] tag=ZONE_POSITION value=1\n",
		g.History().Render(false))

	assert.Equal(t, 1, g.Zone(p1, enums.ZonePlay).Len())
	assert.Equal(t, 1, g.Zone(p1, enums.ZoneHand).Len())
	assert.NoError(t, g.Move(a, enums.ZonePlay), "moving into the same zone is a no-op")
}

func TestMoveHidesAndShows(t *testing.T) {
	g, p1, _ := newTestGame(t)
	a, err := g.AddEntity(yeti(), p1, enums.ZoneHand)
	require.NoError(t, err)
	g.History().ClearLast()

	require.NoError(t, g.Move(a, enums.ZoneDeck))
	require.Equal(t, []history.Kind{history.KindHideEntity}, kinds(g.History().Last()))
	assert.Equal(t, history.NewHideEntity(4, enums.ZoneDeck), g.History().Last()[0])
	assert.Equal(t, 0, a.Position())
	assert.False(t, a.Tags().IsSet(enums.TagZonePosition))

	g.History().ClearLast()
	require.NoError(t, g.Move(a, enums.ZoneHand))
	last := g.History().Last()
	require.Equal(t, []history.Kind{history.KindShowEntity}, kinds(last))
	values := last[0].(history.ShowEntity).TagMap()
	assert.Equal(t, int(enums.ZoneHand), values[enums.TagZone])
	assert.Equal(t, 1, values[enums.TagZonePosition])
}

func TestMoveAnnouncesOnFirstReveal(t *testing.T) {
	g, p1, _ := newTestGame(t)
	d, err := g.AddEntity(yeti(), p1, enums.ZoneDeck)
	require.NoError(t, err)
	g.History().ClearLast()

	require.NoError(t, g.Move(d, enums.ZoneHand))
	assert.Equal(t, []history.Kind{history.KindFullEntity}, kinds(g.History().Last()))
	assert.True(t, d.Announced())
}

func TestStoppedRecorderLeavesEntitiesUnannounced(t *testing.T) {
	g, p1, _ := newTestGame(t, WithRecorderOptions(history.WithRecording(false)))
	m, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)
	assert.False(t, m.Announced())
	assert.Zero(t, g.History().Len())

	g.History().Start()
	require.NoError(t, g.SetTag(m, enums.TagAtk, 6))
	assert.Zero(t, g.History().Len(), "never introduced")

	require.NoError(t, g.Move(m, enums.ZoneGraveyard))
	last := g.History().Last()
	require.Equal(t, []history.Kind{history.KindFullEntity}, kinds(last))
	values := last[0].(history.FullEntity).TagMap()
	assert.Equal(t, 6, values[enums.TagAtk])
	assert.Equal(t, int(enums.ZoneGraveyard), values[enums.TagZone])
	assert.True(t, m.Announced())
}

func TestMovePlayerIsRejected(t *testing.T) {
	g, p1, _ := newTestGame(t)
	assert.ErrorIs(t, g.Move(p1.Playable, enums.ZoneGraveyard), ErrInvalidZone)
	assert.ErrorIs(t, g.Move(g.GameEntity(), enums.ZoneGraveyard), ErrInvalidZone)
}

func TestRevealAndHide(t *testing.T) {
	g, p1, _ := newTestGame(t)
	d, err := g.AddEntity(yeti(), p1, enums.ZoneDeck)
	require.NoError(t, err)
	g.History().ClearLast()

	require.NoError(t, g.Reveal(d))
	require.NoError(t, g.Hide(d))
	require.NoError(t, g.Reveal(d))

	assert.Equal(t,
		[]history.Kind{history.KindFullEntity, history.KindHideEntity, history.KindShowEntity},
		kinds(g.History().Last()))
	assert.Equal(t, enums.ZoneDeck, d.Zone())
}

func TestBlocks(t *testing.T) {
	g, p1, _ := newTestGame(t)
	attacker, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)
	g.History().ClearLast()

	err = g.Block(enums.BlockTypeAttack, attacker, func() error {
		start, ok := g.CurrentBlock()
		require.True(t, ok)
		assert.Equal(t, attacker.ID(), start.Source)

		return g.Block(enums.BlockTypeTrigger, attacker, func() error {
			assert.Len(t, g.OpenBlocks(), 2)
			return g.SetTag(attacker, enums.TagDamage, 3)
		}, history.WithEffectCardID("CS2_182"))
	}, history.WithTarget(3))
	require.NoError(t, err)

	assert.Empty(t, g.OpenBlocks())
	assert.Equal(t, []history.Kind{
		history.KindBlockStart,
		history.KindBlockStart,
		history.KindTagChange,
		history.KindBlockEnd,
		history.KindBlockEnd,
	}, kinds(g.History().Last()))

	outer := g.History().Last()[0].(history.BlockStart)
	assert.Equal(t, 3, outer.Target)
	assert.Equal(t, history.DefaultEffectIndex, outer.EffectIndex)
}

func TestBlockClosesOnError(t *testing.T) {
	g, p1, _ := newTestGame(t)
	m, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = g.Block(enums.BlockTypePower, m, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, g.OpenBlocks())

	full := g.History().Full()
	assert.Equal(t, history.KindBlockEnd, full[len(full)-1].Kind())
	assert.ErrorIs(t, g.EndBlock(), ErrNoOpenBlock)
}

func TestCloneIsIndependent(t *testing.T) {
	g, p1, _ := newTestGame(t)
	m, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)
	_, err = g.AddEntity(yeti(), p1, enums.ZoneHand)
	require.NoError(t, err)
	require.NoError(t, g.BeginBlock(enums.BlockTypePlay, m))

	c := g.Clone()
	assert.NotEqual(t, g.ID(), c.ID())
	assert.Equal(t, g.Checksum(), c.Checksum())
	assert.Equal(t, g.History().Render(true), c.History().Render(true))
	assert.Len(t, c.OpenBlocks(), 1)

	cm, ok := c.Entity(m.ID())
	require.True(t, ok)
	assert.NotSame(t, m, cm)
	assert.Same(t, m.Card(), cm.Card())

	cp1, err := c.Player(1)
	require.NoError(t, err)
	assert.NotSame(t, p1, cp1)
	assert.Equal(t, p1.Name, cp1.Name)

	require.NoError(t, c.SetTag(cm, enums.TagAtk, 9))
	require.NoError(t, c.Move(cm, enums.ZoneGraveyard))
	require.NoError(t, c.EndBlock())

	assert.Equal(t, 4, m.Get(enums.TagAtk))
	assert.Equal(t, enums.ZonePlay, m.Zone())
	assert.Equal(t, 1, g.Zone(p1, enums.ZonePlay).Len())
	assert.Equal(t, 0, c.Zone(cp1, enums.ZonePlay).Len())
	assert.Len(t, g.OpenBlocks(), 1)
	assert.NotEqual(t, g.Checksum(), c.Checksum())
	assert.Less(t, g.History().Len(), c.History().Len())

	_, err = c.AddEntity(yeti(), p1, enums.ZoneHand)
	assert.ErrorIs(t, err, ErrUnknownController, "controllers belong to their own game")
}

func TestChecksumIgnoresBookkeeping(t *testing.T) {
	g, p1, _ := newTestGame(t)
	m, err := g.AddEntity(yeti(), p1, enums.ZonePlay)
	require.NoError(t, err)

	before := g.Checksum()
	require.NoError(t, g.SetTag(m, enums.TagJustPlayed, 1))
	assert.Equal(t, before, g.Checksum())

	require.NoError(t, g.SetTag(m, enums.TagAtk, 1))
	assert.NotEqual(t, before, g.Checksum())
}

func TestEntitiesPromoteIndex(t *testing.T) {
	g, p1, _ := newTestGame(t, WithIndexThreshold(4))
	for i := 0; i < 10; i++ {
		_, err := g.AddEntity(yeti(), p1, enums.ZoneDeck)
		require.NoError(t, err)
	}

	assert.Equal(t, 13, g.Len())
	ids := make([]int, 0, g.Len())
	for _, p := range g.Entities() {
		ids = append(ids, p.ID())
	}
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}
	deck := g.Zone(p1, enums.ZoneDeck)
	assert.True(t, deck.Indexed())
	last, ok := g.Entity(13)
	require.True(t, ok)
	assert.Equal(t, 9, deck.IndexOf(last))
}

func TestPlayerLookup(t *testing.T) {
	g, _, p2 := newTestGame(t)
	got, err := g.Player(2)
	require.NoError(t, err)
	assert.Same(t, p2, got)

	_, err = g.Player(3)
	assert.ErrorIs(t, err, ErrUnknownController)
}
