// Package state owns the entities of one game, the zones they live in and the
// power history their observable changes produce.
package state

import (
	"fmt"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/enums"
	"github.com/Jin42/SabberStone/internal/game/history"
	"github.com/Jin42/SabberStone/internal/game/tags"
)

// Playable is a concrete game object: a card reference plus its own tags.
type Playable struct {
	id    int
	store *tags.Store

	// announced is set once a FullEntity has been recorded for the entity.
	announced bool
}

var _ history.Entity = (*Playable)(nil)

func newPlayable(id int, card *cards.Card) *Playable {
	return &Playable{id: id, store: tags.New(card)}
}

// ID returns the entity id.
func (p *Playable) ID() int { return p.id }

// Card returns the shared card definition.
func (p *Playable) Card() *cards.Card { return p.store.Card() }

// Tags returns the entity's tag store. Writing to it directly bypasses the
// power history; use Game.SetTag for observable changes.
func (p *Playable) Tags() *tags.Store { return p.store }

// Get resolves tag.
func (p *Playable) Get(tag enums.GameTag) int { return p.store.Get(tag) }

// Zone returns the zone the entity is in.
func (p *Playable) Zone() enums.Zone { return enums.Zone(p.store.Get(enums.TagZone)) }

// Position returns the 1-based ZONE_POSITION, or 0 outside ordered zones.
func (p *Playable) Position() int { return p.store.Get(enums.TagZonePosition) }

// ControllerID returns the player id of the controlling player.
func (p *Playable) ControllerID() int { return p.store.Get(enums.TagController) }

// Announced reports whether observers have been sent the entity.
func (p *Playable) Announced() bool { return p.announced }

func (p *Playable) String() string {
	if c := p.Card(); c != nil && c.ID != "" {
		return fmt.Sprintf("%s#%d", c.ID, p.id)
	}
	return fmt.Sprintf("#%d", p.id)
}

func (p *Playable) clone() *Playable {
	return &Playable{id: p.id, store: p.store.Clone(), announced: p.announced}
}

// Controller is a player entity.
type Controller struct {
	*Playable
	PlayerID int
	Name     string
	Account  history.AccountID
	CardBack int
}

// ControllerSpec describes a player joining the game.
type ControllerSpec struct {
	Name     string
	Account  history.AccountID
	CardBack int
}

func (c *Controller) info() history.PlayerInfo {
	return history.PlayerInfo{
		PlayerID: c.PlayerID,
		Account:  c.Account,
		CardBack: c.CardBack,
		Entity:   history.Snapshot(c),
	}
}
