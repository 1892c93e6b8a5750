package state

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
)

// Checksum returns the SHA-256 of the game's canonical representation: entity
// ids with their semantic tags, and zone membership in order. The game id,
// history and bookkeeping tags are left out.
func (g *Game) Checksum() string {
	sum := sha256.Sum256([]byte(g.canonical()))
	return hex.EncodeToString(sum[:])
}

// canonical renders the state independent of map iteration order. Bookkeeping
// tags are left out.
func (g *Game) canonical() string {
	var buf bytes.Buffer

	for _, p := range g.entities.All() {
		fmt.Fprintf(&buf, "ENTITY:%d|%s\n", p.id, p.store.HashState())
	}

	keys := make([]zoneKey, 0, len(g.zones))
	for key, set := range g.zones {
		if set.Len() > 0 {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b zoneKey) int {
		if c := cmp.Compare(a.controller, b.controller); c != 0 {
			return c
		}
		return cmp.Compare(a.zone, b.zone)
	})

	for _, key := range keys {
		fmt.Fprintf(&buf, "ZONE:%d|%s", key.controller, key.zone)
		for _, p := range g.zones[key].All() {
			fmt.Fprintf(&buf, "|%d", p.id)
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}
