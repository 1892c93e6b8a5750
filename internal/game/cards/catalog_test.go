package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jin42/SabberStone/internal/game/enums"
)

const testCatalog = `
cards:
  - id: CS2_182
    name: Chillwind Yeti
    dbf_id: 1623
    tags:
      CARDTYPE: MINION
      COST: 4
      ATK: 4
      HEALTH: 5
      RARITY: FREE
  - id: EX1_012
    name: Bloodmage Thalnos
    tags:
      CARDTYPE: minion
      COST: 2
      ATK: 1
      HEALTH: 1
      SPELLPOWER: 1
      DEATHRATTLE: true
`

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(testCatalog))
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"CS2_182", "EX1_012"}, catalog.IDs())

	yeti, ok := catalog.Get("CS2_182")
	require.True(t, ok)
	assert.Equal(t, "Chillwind Yeti", yeti.Name)
	assert.Equal(t, 1623, yeti.DbfID)
	assert.Equal(t, enums.CardTypeMinion, yeti.Type())
	assert.Equal(t, 4, yeti.Cost())
	assert.Equal(t, 5, yeti.Default(enums.TagHealth))
	assert.Equal(t, int(enums.RarityFree), yeti.Default(enums.TagRarity))
	assert.False(t, yeti.Has(enums.TagTaunt))
	assert.Equal(t, 0, yeti.Default(enums.TagTaunt))

	thalnos := catalog.MustGet("EX1_012")
	assert.Equal(t, 1, thalnos.Default(enums.TagDeathrattle))
	assert.Equal(t, enums.CardTypeMinion, thalnos.Type())
}

func TestParseCatalogErrors(t *testing.T) {
	cases := map[string]string{
		"unknown tag":  "cards:\n  - id: A\n    tags:\n      NOPE: 1\n",
		"bad value":    "cards:\n  - id: A\n    tags:\n      ZONE: NOWHERE\n",
		"missing id":   "cards:\n  - name: Nameless\n",
		"duplicate id": "cards:\n  - id: A\n  - id: A\n",
		"bad yaml":     "cards: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCardTagsInOrder(t *testing.T) {
	card := New("T", "Test", map[enums.GameTag]int{
		enums.TagHealth:  2,
		enums.TagPremium: 0,
		enums.TagAtk:     1,
	})

	var got []enums.GameTag
	for tag := range card.Tags() {
		got = append(got, tag)
	}
	assert.Equal(t, []enums.GameTag{enums.TagPremium, enums.TagHealth, enums.TagAtk}, got)
	assert.True(t, card.Has(enums.TagPremium), "explicit zero default is defined")
	assert.Equal(t, "Test [T]", card.String())
}

func TestMustGetPanics(t *testing.T) {
	catalog, err := ParseCatalog([]byte(testCatalog))
	require.NoError(t, err)
	assert.Panics(t, func() { catalog.MustGet("missing") })
}
