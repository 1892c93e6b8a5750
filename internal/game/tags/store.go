// Package tags implements the per-entity tag store: explicit values layered
// over a card's defaults.
package tags

import (
	"crypto/sha256"
	"encoding/hex"
	"iter"
	"strconv"
	"strings"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/enums"
)

var volatile = [...]enums.GameTag{
	enums.TagAtk,
	enums.TagHealth,
	enums.TagCost,
	enums.TagDamage,
	enums.TagTaunt,
	enums.TagFrozen,
	enums.TagEnraged,
	enums.TagCharge,
	enums.TagWindfury,
	enums.TagDivineShield,
	enums.TagStealth,
	enums.TagDeathrattle,
	enums.TagBattlecry,
	enums.TagSilenced,
}

var bookkeeping = [...]enums.GameTag{
	enums.TagPremium,
	enums.TagJustPlayed,
	enums.TagCardTarget,
	enums.TagNumCardsDrawnThisTurn,
	enums.TagLastKnownCostInHand,
}

// Volatile returns the tags cleared by Reset.
func Volatile() []enums.GameTag {
	return append([]enums.GameTag(nil), volatile[:]...)
}

// Bookkeeping returns the tags HashState leaves out: values that do not
// change what an entity can do.
func Bookkeeping() []enums.GameTag {
	return append([]enums.GameTag(nil), bookkeeping[:]...)
}

// Store holds an entity's explicit tag values over its card's defaults.
// It is not safe for concurrent use.
type Store struct {
	card    *cards.Card
	overlay [enums.NumGameTags]int
	present [enums.NumGameTags]bool
	count   int
}

// New creates an empty store over card. card may be nil for entities without
// a definition; every lookup then falls through to 0.
func New(card *cards.Card) *Store {
	s := &Store{card: card}
	s.clear()
	return s
}

// Card returns the base definition.
func (s *Store) Card() *cards.Card {
	return s.card
}

// Get returns the explicit value, else the card default, else 0.
func (s *Store) Get(tag enums.GameTag) int {
	if !tag.Valid() {
		return 0
	}
	if s.present[tag] {
		return s.overlay[tag]
	}
	return s.card.Default(tag)
}

// Lookup returns the explicit value only.
func (s *Store) Lookup(tag enums.GameTag) (int, bool) {
	if !tag.Valid() || !s.present[tag] {
		return 0, false
	}
	return s.overlay[tag], true
}

// IsSet reports whether tag has an explicit value. An explicit 0 counts.
func (s *Store) IsSet(tag enums.GameTag) bool {
	_, ok := s.Lookup(tag)
	return ok
}

// Set writes an explicit value. Every int is a valid value.
func (s *Store) Set(tag enums.GameTag, value int) {
	if !tag.Valid() {
		return
	}
	if !s.present[tag] {
		s.present[tag] = true
		s.count++
	}
	s.overlay[tag] = value
}

// Delete removes the explicit value so tag falls back to the card default.
func (s *Store) Delete(tag enums.GameTag) bool {
	if !s.IsSet(tag) {
		return false
	}
	s.overlay[tag] = 0
	s.present[tag] = false
	s.count--
	return true
}

// Reset drops the explicit values of the volatile tags. Other explicit
// values are kept.
func (s *Store) Reset() {
	for _, tag := range volatile {
		s.Delete(tag)
	}
}

// Stamp replaces every explicit value with a copy of other's. The card is not
// changed; callers stamp between stores of compatible cards. A nil other
// clears the overlay.
func (s *Store) Stamp(other *Store) {
	if other == nil {
		s.clear()
		return
	}
	s.overlay = other.overlay
	s.present = other.present
	s.count = other.count
}

// Clone returns an independent store sharing the same card.
func (s *Store) Clone() *Store {
	clone := &Store{card: s.card}
	clone.Stamp(s)
	return clone
}

// Len returns the number of explicit values.
func (s *Store) Len() int {
	return s.count
}

// Overlay iterates over the explicit values in tag order.
func (s *Store) Overlay() iter.Seq2[enums.GameTag, int] {
	return func(yield func(enums.GameTag, int) bool) {
		for i, v := range s.overlay {
			if !s.present[i] {
				continue
			}
			if !yield(enums.GameTag(i), v) {
				return
			}
		}
	}
}

// All iterates over the effective values: card defaults overridden by
// explicit values, in tag order.
func (s *Store) All() iter.Seq2[enums.GameTag, int] {
	return func(yield func(enums.GameTag, int) bool) {
		for i, v := range s.overlay {
			tag := enums.GameTag(i)
			if !s.present[i] {
				d, ok := s.card.Lookup(tag)
				if !ok {
					continue
				}
				v = d
			}
			if !yield(tag, v) {
				return
			}
		}
	}
}

// Hash renders the card id followed by every explicit value as [TAG:value],
// in ascending tag order, skipping ignored tags. Two stores with the same card
// and the same explicit values produce the same string regardless of the
// order the values were set in.
func (s *Store) Hash(ignore ...enums.GameTag) string {
	var skip [enums.NumGameTags]bool
	for _, tag := range ignore {
		if tag.Valid() {
			skip[tag] = true
		}
	}

	var b strings.Builder
	if s.card != nil {
		b.WriteString(s.card.ID)
	}
	for tag, v := range s.Overlay() {
		if skip[tag] {
			continue
		}
		b.WriteByte('[')
		b.WriteString(tag.String())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(']')
	}
	return b.String()
}

// HashState is Hash without the bookkeeping tags, for detecting entities that
// are equivalent for play purposes.
func (s *Store) HashState() string {
	return s.Hash(bookkeeping[:]...)
}

// Digest returns the hex SHA-256 of Hash(ignore...).
func (s *Store) Digest(ignore ...enums.GameTag) string {
	sum := sha256.Sum256([]byte(s.Hash(ignore...)))
	return hex.EncodeToString(sum[:])
}

func (s *Store) clear() {
	s.overlay = [enums.NumGameTags]int{}
	s.present = [enums.NumGameTags]bool{}
	s.count = 0
}
