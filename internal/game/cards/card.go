// Package cards holds the immutable card definitions that entities are built
// from.
package cards

import (
	"iter"

	"github.com/Jin42/SabberStone/internal/game/enums"
)

// Card is the base definition shared by every entity created from it.
// A Card is never modified after New returns; share it by pointer.
type Card struct {
	ID    string
	Name  string
	DbfID int

	defaults [enums.NumGameTags]int
	defined  [enums.NumGameTags]bool
}

// New creates a card with the given default tag values.
func New(id, name string, defaults map[enums.GameTag]int) *Card {
	c := &Card{ID: id, Name: name}
	for tag, value := range defaults {
		if tag.Valid() {
			c.defaults[tag] = value
			c.defined[tag] = true
		}
	}
	return c
}

// GameCard backs the game entity.
var GameCard = New("", "Game", map[enums.GameTag]int{
	enums.TagCardType: int(enums.CardTypeGame),
	enums.TagZone:     int(enums.ZonePlay),
})

// PlayerCard backs player entities.
var PlayerCard = New("", "Player", map[enums.GameTag]int{
	enums.TagCardType:      int(enums.CardTypePlayer),
	enums.TagZone:          int(enums.ZonePlay),
	enums.TagMaxHandSize:   10,
	enums.TagStartHandSize: 4,
})

// Default returns the card's value for tag, or 0.
func (c *Card) Default(tag enums.GameTag) int {
	v, _ := c.Lookup(tag)
	return v
}

// Lookup returns the card's value for tag and whether the card defines it.
func (c *Card) Lookup(tag enums.GameTag) (int, bool) {
	if c == nil || !tag.Valid() || !c.defined[tag] {
		return 0, false
	}
	return c.defaults[tag], true
}

// Has reports whether the card defines tag.
func (c *Card) Has(tag enums.GameTag) bool {
	_, ok := c.Lookup(tag)
	return ok
}

// Tags iterates over the defined defaults in tag order.
func (c *Card) Tags() iter.Seq2[enums.GameTag, int] {
	return func(yield func(enums.GameTag, int) bool) {
		if c == nil {
			return
		}
		for i, v := range c.defaults {
			if !c.defined[i] {
				continue
			}
			if !yield(enums.GameTag(i), v) {
				return
			}
		}
	}
}

// Type returns the card type.
func (c *Card) Type() enums.CardType {
	return enums.CardType(c.Default(enums.TagCardType))
}

// Cost returns the printed cost.
func (c *Card) Cost() int {
	return c.Default(enums.TagCost)
}

func (c *Card) String() string {
	if c == nil {
		return "<nil card>"
	}
	if c.ID == "" {
		return c.Name
	}
	return c.Name + " [" + c.ID + "]"
}
