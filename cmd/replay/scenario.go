package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/enums"
	"github.com/Jin42/SabberStone/internal/game/history"
	"github.com/Jin42/SabberStone/internal/game/state"
)

type seat struct {
	name string
	hero string
	deck []string
}

var seats = []seat{
	{name: "Garrosh", hero: "HERO_01", deck: []string{"CS2_106", "CS2_124", "CS2_179", "EX1_008"}},
	{name: "Jaina", hero: "HERO_08", deck: []string{"CS2_029", "CS2_120", "CS2_182", "EX1_008"}},
}

// playScenario plays a short fixed opening: both players draw, the first
// player plays a charger and trades it into the second player's minion.
func playScenario(logger *zap.Logger, catalog *cards.Catalog, opts ...state.Option) (*state.Game, error) {
	specs := make([]state.ControllerSpec, len(seats))
	for i, s := range seats {
		specs[i] = state.ControllerSpec{
			Name:     s.name,
			Account:  history.AccountID{Hi: 144115193835963207, Lo: uint64(1000 + i)},
			CardBack: i,
		}
	}
	g, err := state.NewGame(logger, nil, specs, opts...)
	if err != nil {
		return nil, err
	}
	s := &script{g: g, catalog: catalog}

	ge := g.GameEntity()
	s.set(ge, enums.TagState, int(enums.StateRunning))
	s.set(ge, enums.TagStep, int(enums.StepBeginMulligan))

	players := g.Players()
	decks := make([][]*state.Playable, len(players))
	for i, p := range players {
		hero := s.add(seats[i].hero, p, enums.ZonePlay)
		s.set(p.Playable, enums.TagHeroEntity, s.id(hero))
		s.set(p.Playable, enums.TagMaxResources, 10)
		for _, id := range seats[i].deck {
			decks[i] = append(decks[i], s.add(id, p, enums.ZoneDeck))
		}
	}
	if s.err != nil {
		return nil, s.err
	}

	// opening hands
	for i, p := range players {
		for _, card := range decks[i][:3] {
			s.move(card, enums.ZoneHand)
		}
		s.set(p.Playable, enums.TagNumCardsDrawnThisTurn, 3)
	}
	s.set(ge, enums.TagStep, int(enums.StepMainAction))
	s.set(ge, enums.TagTurn, 1)

	first, second := players[0], players[1]
	s.set(first.Playable, enums.TagCurrentPlayer, 1)

	// player two already has a minion on the board
	croc := decks[1][1]
	s.move(croc, enums.ZonePlay)

	// wolfrider: play and attack the crocolisk
	wolf := decks[0][1]
	s.block(enums.BlockTypePlay, wolf, func() {
		s.set(first.Playable, enums.TagResourcesUsed, wolf.Get(enums.TagCost))
		s.move(wolf, enums.ZonePlay)
		s.set(wolf, enums.TagJustPlayed, 1)
	})
	s.block(enums.BlockTypeAttack, wolf, func() {
		s.set(wolf, enums.TagAttacking, 1)
		s.set(croc, enums.TagDefending, 1)
		s.set(croc, enums.TagDamage, wolf.Get(enums.TagAtk))
		s.set(wolf, enums.TagDamage, croc.Get(enums.TagAtk))
		s.set(wolf, enums.TagNumAttacksThisTurn, 1)
		s.set(wolf, enums.TagAttacking, 0)
		s.set(croc, enums.TagDefending, 0)
	}, history.WithTarget(croc.ID()))

	s.block(enums.BlockTypeDeaths, ge, func() {
		for _, p := range []*state.Playable{wolf, croc} {
			if p.Get(enums.TagDamage) >= p.Get(enums.TagHealth) {
				s.set(p, enums.TagToBeDestroyed, 1)
				s.move(p, enums.ZoneGraveyard)
			}
		}
	})

	// second player's squire is revealed from the deck then shuffled back
	squire := decks[1][3]
	s.reveal(squire)
	s.hide(squire)

	s.set(first.Playable, enums.TagCurrentPlayer, 0)
	s.set(second.Playable, enums.TagCurrentPlayer, 1)
	s.set(ge, enums.TagTurn, 2)

	if s.err != nil {
		return nil, s.err
	}
	return g, nil
}

// script runs game operations and keeps the first error.
type script struct {
	g       *state.Game
	catalog *cards.Catalog
	err     error
}

func (s *script) fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *script) add(cardID string, c *state.Controller, zone enums.Zone) *state.Playable {
	if s.err != nil {
		return nil
	}
	card, ok := s.catalog.Get(cardID)
	if !ok {
		s.fail(fmt.Errorf("card %s not in catalog", cardID))
		return nil
	}
	p, err := s.g.AddEntity(card, c, zone)
	s.fail(err)
	return p
}

func (s *script) id(p *state.Playable) int {
	if p == nil {
		return 0
	}
	return p.ID()
}

func (s *script) set(p *state.Playable, tag enums.GameTag, value int) {
	if s.err == nil {
		s.fail(s.g.SetTag(p, tag, value))
	}
}

func (s *script) move(p *state.Playable, zone enums.Zone) {
	if s.err == nil {
		s.fail(s.g.Move(p, zone))
	}
}

func (s *script) reveal(p *state.Playable) {
	if s.err == nil {
		s.fail(s.g.Reveal(p))
	}
}

func (s *script) hide(p *state.Playable) {
	if s.err == nil {
		s.fail(s.g.Hide(p))
	}
}

func (s *script) block(blockType enums.BlockType, source *state.Playable, fn func(), opts ...history.BlockOption) {
	if s.err != nil {
		return
	}
	s.fail(s.g.Block(blockType, source, func() error {
		fn()
		return nil
	}, opts...))
}
